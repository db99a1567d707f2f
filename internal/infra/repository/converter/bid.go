package converter

import (
	"styleapp-backend/internal/domain/barber"
	"styleapp-backend/internal/domain/bid"
	sqlc "styleapp-backend/internal/infra/sqlc/generated"
	"styleapp-backend/internal/pkg/pgconv"
)

func BidToCreateParams(b *bid.Bid) sqlc.CreateBidParams {
	return sqlc.CreateBidParams{
		ID:               b.ID(),
		ServiceRequestID: b.ServiceRequestID(),
		BarberID:         b.BarberID(),
		Amount:           b.Amount(),
		Status:           b.Status().String(),
		CreatedAt:        pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BidFromRow(row sqlc.Bids) *bid.Bid {
	return bid.ReconstructBid(
		row.ID,
		row.ServiceRequestID,
		row.BarberID,
		row.Amount,
		bid.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimePtrFromPgtype(row.DecidedAt),
	)
}

func BidsFromRows(rows []sqlc.Bids) []*bid.Bid {
	out := make([]*bid.Bid, len(rows))
	for i, row := range rows {
		out[i] = BidFromRow(row)
	}
	return out
}

func BarberFromRow(row sqlc.Barbers) *barber.Profile {
	return barber.ReconstructProfile(row.ID, row.DisplayName, row.IsActive, pgconv.TimeFromPgtype(row.UpdatedAt))
}
