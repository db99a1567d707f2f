package readstore

import (
	"context"
	"time"

	"styleapp-backend/internal/infra"
	sqlc "styleapp-backend/internal/infra/sqlc/generated"
	"styleapp-backend/internal/pkg/pgconv"
	"styleapp-backend/internal/usecase/queries"
)

type ReportReadQueries interface {
	ListCommissionReport(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCommissionReportParams) ([]sqlc.ListCommissionReportRow, error)
}

type ReportReadStore struct {
	queries ReportReadQueries
	db      sqlc.DBTX
}

func NewReportReadStore(queries ReportReadQueries, db sqlc.DBTX) *ReportReadStore {
	return &ReportReadStore{
		queries: queries,
		db:      db,
	}
}

// CommissionRows groups ledger entries recorded in [from, to) by barber.
func (r *ReportReadStore) CommissionRows(ctx context.Context, from, to time.Time) ([]queries.CommissionReportRow, error) {
	rows, err := r.queries.ListCommissionReport(ctx, r.db, sqlc.ListCommissionReportParams{
		FromTime: pgconv.TimeToPgtype(from),
		ToTime:   pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list commission report", err)
	}

	result := make([]queries.CommissionReportRow, len(rows))
	for i, row := range rows {
		result[i] = queries.CommissionReportRow{
			BarberID:        row.BarberID,
			BarberName:      row.BarberName,
			CompletedCount:  row.CompletedCount,
			CompletedTotal:  row.CompletedTotal,
			CommissionTotal: row.CommissionTotal,
			NetTotal:        row.NetTotal,
		}
	}
	return result, nil
}
