package repository

import (
	"bytes"
	"context"
	"slices"
	"time"

	"styleapp-backend/internal/infra"
	sqlc "styleapp-backend/internal/infra/sqlc/generated"
	"styleapp-backend/internal/pkg/pgconv"
	"styleapp-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueNotificationJobsParams) ([]sqlc.ClaimDueNotificationJobsRow, error)
	MarkNotificationJobSent(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	RescheduleNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.RescheduleNotificationJobParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{queries: queries}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, eventType string, requestID uuid.UUID, payload []byte, runAt time.Time) error {
	params := sqlc.CreateNotificationJobParams{
		EventType: eventType,
		RequestID: requestID,
		Payload:   payload,
		RunAt:     pgconv.TimeToPgtype(runAt),
	}

	if err := r.queries.CreateNotificationJob(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

// ClaimDue leases up to limit due jobs by moving their run_at to leaseUntil,
// so other relays skip them until the lease runs out. Jobs come back in due
// order.
func (r *NotificationRepository) ClaimDue(ctx context.Context, tx sqlc.DBTX, now, leaseUntil time.Time, limit int32) ([]shared.NotificationJob, error) {
	rows, err := r.queries.ClaimDueNotificationJobs(ctx, tx, sqlc.ClaimDueNotificationJobsParams{
		Now:        pgconv.TimeToPgtype(now),
		BatchSize:  limit,
		LeaseUntil: pgconv.TimeToPgtype(leaseUntil),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]shared.NotificationJob, len(rows))
	for i, row := range rows {
		jobs[i] = shared.NotificationJob{
			ID:        row.ID,
			EventType: row.EventType,
			RequestID: row.RequestID,
			Payload:   row.Payload,
			Attempts:  row.Attempts,
			RunAt:     pgconv.TimeFromPgtype(row.DueAt),
		}
	}
	// UPDATE ... RETURNING does not keep the CTE order
	slices.SortStableFunc(jobs, func(a, b shared.NotificationJob) int {
		if c := a.RunAt.Compare(b.RunAt); c != 0 {
			return c
		}
		return bytes.Compare(a.ID[:], b.ID[:])
	})
	return jobs, nil
}

// MarkSent and Reschedule only touch queued rows, so a job another relay
// finished after the lease ran out stays as that relay left it.
func (r *NotificationRepository) MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID) error {
	if err := r.queries.MarkNotificationJobSent(ctx, tx, jobID); err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

// Reschedule records a failed attempt; status failed parks the job.
func (r *NotificationRepository) Reschedule(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status, lastError string, runAt time.Time) error {
	params := sqlc.RescheduleNotificationJobParams{
		Status:    status,
		LastError: pgconv.StringToPgtype(lastError),
		RunAt:     pgconv.TimeToPgtype(runAt),
		ID:        jobID,
	}
	if err := r.queries.RescheduleNotificationJob(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to reschedule notification job", err)
	}
	return nil
}
