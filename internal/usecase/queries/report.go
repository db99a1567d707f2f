package queries

import (
	"context"
	"time"

	"styleapp-backend/internal/domain/commission"
	"styleapp-backend/internal/domain/user"
	"styleapp-backend/internal/pkg/clock"
)

// DefaultReportWindow is used when the caller gives no start date.
const DefaultReportWindow = 30 * 24 * time.Hour

type ReportReadStore interface {
	CommissionRows(ctx context.Context, from, to time.Time) ([]CommissionReportRow, error)
}

type WorkbookRenderer interface {
	Render(rep CommissionReport) ([]byte, error)
	FileName(rep CommissionReport) string
}

type ReportRange struct {
	From *time.Time
	To   *time.Time
}

type ExportedReport struct {
	FileName string
	Content  []byte
}

type ReportQueries interface {
	Commissions(ctx context.Context, actor user.Actor, rng ReportRange) (*CommissionReport, error)
	Export(ctx context.Context, actor user.Actor, rng ReportRange) (*ExportedReport, error)
}

type reportQueriesImpl struct {
	repo     ReportReadStore
	renderer WorkbookRenderer
	calc     commission.Calculator
	clock    clock.Clock
}

func NewReportQueries(repo ReportReadStore, renderer WorkbookRenderer, calc commission.Calculator, clk clock.Clock) ReportQueries {
	return &reportQueriesImpl{
		repo:     repo,
		renderer: renderer,
		calc:     calc,
		clock:    clk,
	}
}

func (q *reportQueriesImpl) Commissions(ctx context.Context, actor user.Actor, rng ReportRange) (*CommissionReport, error) {
	if !actor.IsAdmin() {
		return nil, ErrRoleNotAllowed
	}

	from, to, err := q.resolveRange(rng)
	if err != nil {
		return nil, err
	}

	rows, err := q.repo.CommissionRows(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []CommissionReportRow{}
	}

	rep := &CommissionReport{
		From:    from,
		To:      to,
		RateBPS: q.calc.RateBPS(),
		Rows:    rows,
	}
	for _, row := range rows {
		rep.Totals.CompletedCount += row.CompletedCount
		rep.Totals.CompletedTotal += row.CompletedTotal
		rep.Totals.CommissionTotal += row.CommissionTotal
		rep.Totals.NetTotal += row.NetTotal
	}
	return rep, nil
}

func (q *reportQueriesImpl) Export(ctx context.Context, actor user.Actor, rng ReportRange) (*ExportedReport, error) {
	rep, err := q.Commissions(ctx, actor, rng)
	if err != nil {
		return nil, err
	}
	content, err := q.renderer.Render(*rep)
	if err != nil {
		return nil, err
	}
	return &ExportedReport{
		FileName: q.renderer.FileName(*rep),
		Content:  content,
	}, nil
}

func (q *reportQueriesImpl) resolveRange(rng ReportRange) (time.Time, time.Time, error) {
	to := q.clock.Now().UTC()
	if rng.To != nil {
		to = rng.To.UTC()
	}
	from := to.Add(-DefaultReportWindow)
	if rng.From != nil {
		from = rng.From.UTC()
	}
	if !from.Before(to) {
		return time.Time{}, time.Time{}, ErrInvalidReportRange
	}
	return from, to, nil
}
