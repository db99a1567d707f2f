package readstore

import (
	"context"
	"time"

	"styleapp-backend/internal/infra"
	sqlc "styleapp-backend/internal/infra/sqlc/generated"
	"styleapp-backend/internal/pkg/pgconv"
	"styleapp-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceRequestReadQueries interface {
	GetServiceRequestByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ServiceRequests, error)
	ListOpenServiceRequests(ctx context.Context, db sqlc.DBTX, rowLimit int32) ([]sqlc.ServiceRequests, error)
	ListOpenServiceRequestsAfter(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOpenServiceRequestsAfterParams) ([]sqlc.ServiceRequests, error)
	ListServiceRequestsByClient(ctx context.Context, db sqlc.DBTX, clientID uuid.UUID) ([]sqlc.ServiceRequests, error)
	ListServiceRequestsAssignedToBarber(ctx context.Context, db sqlc.DBTX, arg sqlc.ListServiceRequestsAssignedToBarberParams) ([]sqlc.ServiceRequests, error)
}

type ServiceRequestReadStore struct {
	queries ServiceRequestReadQueries
	db      sqlc.DBTX
}

func NewServiceRequestReadStore(queries ServiceRequestReadQueries, db sqlc.DBTX) *ServiceRequestReadStore {
	return &ServiceRequestReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ServiceRequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceRequestView, error) {
	row, err := r.queries.GetServiceRequestByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get service request by id", err)
	}
	return ToServiceRequestView(row), nil
}

func (r *ServiceRequestReadStore) ListOpenFirstPage(ctx context.Context, limit int32) ([]*queries.ServiceRequestView, error) {
	rows, err := r.queries.ListOpenServiceRequests(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open service requests", err)
	}
	return toServiceRequestViews(rows), nil
}

func (r *ServiceRequestReadStore) ListOpenKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ServiceRequestView, error) {
	rows, err := r.queries.ListOpenServiceRequestsAfter(ctx, r.db, sqlc.ListOpenServiceRequestsAfterParams{
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		RowLimit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open service requests after cursor", err)
	}
	return toServiceRequestViews(rows), nil
}

func (r *ServiceRequestReadStore) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*queries.ServiceRequestView, error) {
	rows, err := r.queries.ListServiceRequestsByClient(ctx, r.db, clientID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list service requests by client", err)
	}
	return toServiceRequestViews(rows), nil
}

func (r *ServiceRequestReadStore) ListAssignedToBarber(ctx context.Context, barberID uuid.UUID, statuses []string) ([]*queries.ServiceRequestView, error) {
	rows, err := r.queries.ListServiceRequestsAssignedToBarber(ctx, r.db, sqlc.ListServiceRequestsAssignedToBarberParams{
		BarberID: pgconv.UUIDToPgtype(barberID),
		Statuses: statuses,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list service requests assigned to barber", err)
	}
	return toServiceRequestViews(rows), nil
}

func ToServiceRequestView(row sqlc.ServiceRequests) *queries.ServiceRequestView {
	return &queries.ServiceRequestView{
		ID:               row.ID,
		ClientID:         row.ClientID,
		ServiceType:      row.ServiceType,
		Address:          row.Address,
		Latitude:         pgconv.Float64PtrFromPgtype(row.Latitude),
		Longitude:        pgconv.Float64PtrFromPgtype(row.Longitude),
		Price:            row.Price,
		Status:           row.Status,
		AssignedBarberID: pgconv.UUIDPtrFromPgtype(row.AssignedBarberID),
		AcceptedBidID:    pgconv.UUIDPtrFromPgtype(row.AcceptedBidID),
		AgreedPrice:      pgconv.Int64PtrFromPgtype(row.AgreedPrice),
		AppCommission:    pgconv.Int64PtrFromPgtype(row.AppCommission),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
		AcceptedAt:       pgconv.TimePtrFromPgtype(row.AcceptedAt),
		CompletedAt:      pgconv.TimePtrFromPgtype(row.CompletedAt),
		CancelledAt:      pgconv.TimePtrFromPgtype(row.CancelledAt),
	}
}

func toServiceRequestViews(rows []sqlc.ServiceRequests) []*queries.ServiceRequestView {
	result := make([]*queries.ServiceRequestView, len(rows))
	for i, row := range rows {
		result[i] = ToServiceRequestView(row)
	}
	return result
}
