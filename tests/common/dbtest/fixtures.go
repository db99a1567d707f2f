//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateBarberProfile(t *testing.T, db DBLike, barberID uuid.UUID, displayName string, isActive bool) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO barbers (id, display_name, is_active) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET display_name = EXCLUDED.display_name, is_active = EXCLUDED.is_active`,
		barberID, displayName, isActive)
	require.NoError(t, err)
}

type LedgerEntry struct {
	BarberID   uuid.UUID
	Gross      int64
	Commission int64
	Net        int64
}

func LedgerEntriesForRequest(t *testing.T, db DBLike, requestID uuid.UUID) []LedgerEntry {
	t.Helper()

	rows, err := db.Query(context.Background(), `
		SELECT barber_id, gross_amount, commission_amount, net_amount
		FROM barber_ledger_entries WHERE service_request_id = $1`, requestID)
	require.NoError(t, err)
	defer rows.Close()

	var entries []LedgerEntry
	for rows.Next() {
		var e LedgerEntry
		require.NoError(t, rows.Scan(&e.BarberID, &e.Gross, &e.Commission, &e.Net))
		entries = append(entries, e)
	}
	require.NoError(t, rows.Err())
	return entries
}

// EventTypesForRequest lists outbox events of one request in insertion order.
func EventTypesForRequest(t *testing.T, db DBLike, requestID uuid.UUID) []string {
	t.Helper()

	rows, err := db.Query(context.Background(), `
		SELECT event_type FROM notification_jobs
		WHERE request_id = $1 ORDER BY created_at, event_type`, requestID)
	require.NoError(t, err)
	defer rows.Close()

	var types []string
	for rows.Next() {
		var et string
		require.NoError(t, rows.Scan(&et))
		types = append(types, et)
	}
	require.NoError(t, rows.Err())
	return types
}

func CountBidsByStatus(t *testing.T, db DBLike, requestID uuid.UUID, status string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM bids WHERE service_request_id = $1 AND status = $2", requestID, status).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
