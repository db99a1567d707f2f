package converter

import (
	"styleapp-backend/internal/domain/servicerequest"
	sqlc "styleapp-backend/internal/infra/sqlc/generated"
	"styleapp-backend/internal/pkg/pgconv"
)

func ServiceRequestToCreateParams(r *servicerequest.ServiceRequest) sqlc.CreateServiceRequestParams {
	return sqlc.CreateServiceRequestParams{
		ID:          r.ID(),
		ClientID:    r.ClientID(),
		ServiceType: r.ServiceType().String(),
		Address:     r.Address().String(),
		Latitude:    pgconv.Float64PtrToPgtype(r.Coordinates().Latitude()),
		Longitude:   pgconv.Float64PtrToPgtype(r.Coordinates().Longitude()),
		Price:       r.Price().Value(),
		Status:      r.Status().String(),
		CreatedAt:   pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func TransitionToParams(t servicerequest.Transition) sqlc.TransitionServiceRequestParams {
	return sqlc.TransitionServiceRequestParams{
		ToStatus:         t.To.String(),
		AssignedBarberID: pgconv.UUIDPtrToPgtype(t.AssignedBarberID),
		AcceptedBidID:    pgconv.UUIDPtrToPgtype(t.AcceptedBidID),
		AgreedPrice:      pgconv.Int64PtrToPgtype(t.AgreedPrice),
		AppCommission:    pgconv.Int64PtrToPgtype(t.AppCommission),
		ChangedAt:        pgconv.TimeToPgtype(t.At),
		ID:               t.RequestID,
		FromStatus:       t.From.String(),
	}
}

func ServiceRequestFromRow(row sqlc.ServiceRequests) *servicerequest.ServiceRequest {
	return servicerequest.ReconstructServiceRequest(servicerequest.ReconstructParams{
		ID:               row.ID,
		ClientID:         row.ClientID,
		ServiceType:      row.ServiceType,
		Address:          row.Address,
		Latitude:         pgconv.Float64PtrFromPgtype(row.Latitude),
		Longitude:        pgconv.Float64PtrFromPgtype(row.Longitude),
		Price:            row.Price,
		Status:           servicerequest.Status(row.Status),
		AssignedBarberID: pgconv.UUIDPtrFromPgtype(row.AssignedBarberID),
		AcceptedBidID:    pgconv.UUIDPtrFromPgtype(row.AcceptedBidID),
		AgreedPrice:      pgconv.Int64PtrFromPgtype(row.AgreedPrice),
		AppCommission:    pgconv.Int64PtrFromPgtype(row.AppCommission),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
		AcceptedAt:       pgconv.TimePtrFromPgtype(row.AcceptedAt),
		CompletedAt:      pgconv.TimePtrFromPgtype(row.CompletedAt),
		CancelledAt:      pgconv.TimePtrFromPgtype(row.CancelledAt),
	})
}
