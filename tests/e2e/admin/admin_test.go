//go:build e2e

package admin_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"styleapp-backend/internal/handler/dto/request"
	"styleapp-backend/internal/handler/dto/response"
	"styleapp-backend/internal/infra/repository"
	sqlc "styleapp-backend/internal/infra/sqlc/generated"
	"styleapp-backend/tests/common/authtest"
	"styleapp-backend/tests/common/dbtest"
	"styleapp-backend/tests/common/httptest"
	"styleapp-backend/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
)

const (
	commissionsURL  = "/api/admin/commissions"
	exportURL       = "/api/admin/commissions/export"
	availabilityURL = "/api/barbers/me/availability"
	statsURL        = "/api/barbers/me/stats"
)

type AdminSuite struct {
	e2e.SharedSuite
}

func TestAdminSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AdminSuite))
}

// completeJob runs a request through direct acceptance to completion.
func (s *AdminSuite) completeJob(t *testing.T, barber authtest.TestActor, price int64) uuid.UUID {
	t.Helper()

	client := s.JWT.Client(t)
	req := s.CreateRequest(t, client, price)
	s.MustUpdateStatus(t, barber, req.ID, "accepted", nil)
	s.MustUpdateStatus(t, barber, req.ID, "on_route", nil)
	s.MustUpdateStatus(t, barber, req.ID, "completed", nil)
	return req.ID
}

func reportRange() string {
	today := time.Now().UTC()
	return fmt.Sprintf("from=%s&to=%s",
		today.AddDate(0, 0, -1).Format(time.DateOnly),
		today.AddDate(0, 0, 1).Format(time.DateOnly))
}

// =============================================================================
// TestCommissionReport
// =============================================================================

func (s *AdminSuite) TestCommissionReport() {
	s.Run("Normal case: completed jobs are aggregated per barber", func() {
		t := s.T()
		admin := s.JWT.Admin(t)
		top, other := s.JWT.Barber(t), s.JWT.Barber(t)
		dbtest.CreateBarberProfile(t, s.DB, top.ID, "Barberia Centro", true)

		s.completeJob(t, top, 50000)
		s.completeJob(t, top, 30000)
		s.completeJob(t, other, 20000)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, commissionsURL+"?"+reportRange(), nil, admin.Token)
		var rep response.CommissionReportResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &rep)

		want := response.CommissionReportResponse{
			RateBPS: 1000,
			Rows: []response.CommissionRowResponse{
				{BarberID: top.ID, BarberName: "Barberia Centro", CompletedCount: 2, CompletedTotal: 80000, CommissionTotal: 8000, NetTotal: 72000},
				{BarberID: other.ID, BarberName: "", CompletedCount: 1, CompletedTotal: 20000, CommissionTotal: 2000, NetTotal: 18000},
			},
			Totals: response.CommissionTotalsResponse{CompletedCount: 3, CompletedTotal: 100000, CommissionTotal: 10000, NetTotal: 90000},
		}
		opts := cmpopts.IgnoreFields(response.CommissionReportResponse{}, "From", "To")
		if diff := cmp.Diff(want, rep, opts); diff != "" {
			t.Errorf("commission report mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: a window without completions is empty", func() {
		t := s.T()
		admin := s.JWT.Admin(t)
		s.completeJob(t, s.JWT.Barber(t), 50000)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, commissionsURL+"?from=2020-01-01&to=2020-01-31", nil, admin.Token)
		var rep response.CommissionReportResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &rep)
		assert.Empty(t, rep.Rows)
		assert.Equal(t, int64(0), rep.Totals.CommissionTotal)
	})

	s.Run("Error case: clients cannot read the report", func() {
		t := s.T()
		client := s.JWT.Client(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, commissionsURL, nil, client.Token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})

	s.Run("Normal case: the export is a workbook with one row per barber", func() {
		t := s.T()
		admin := s.JWT.Admin(t)
		barber := s.JWT.Barber(t)
		s.completeJob(t, barber, 50000)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, exportURL+"?"+reportRange(), nil, admin.Token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "commissions_")

		book, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
		require.NoError(t, err)
		defer book.Close()

		rows, err := book.GetRows("Barbers")
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, barber.ID.String(), rows[1][0])
		assert.Equal(t, "5000", rows[1][4])
		assert.Equal(t, "Total", rows[2][1])

		net, err := book.GetCellValue("Summary", "B7")
		require.NoError(t, err)
		assert.Equal(t, "45000", net)
	})
}

// =============================================================================
// TestBarberSelfService
// =============================================================================

func (s *AdminSuite) TestBarberSelfService() {
	s.Run("Normal case: a barber toggles availability", func() {
		t := s.T()
		barber := s.JWT.Barber(t)
		off, name := false, "Barberia Sur"

		body := request.SetAvailabilityRequest{IsActive: &off, DisplayName: &name}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, availabilityURL, body, barber.Token)
		var profile response.BarberProfileResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &profile)
		assert.Equal(t, barber.ID, profile.ID)
		assert.False(t, profile.IsActive)
		assert.Equal(t, "Barberia Sur", profile.DisplayName)

		req := s.CreateRequest(t, s.JWT.Client(t), 30000)
		bw := s.TrySubmitBid(t, barber, req.ID, 28000)
		httptest.AssertErrorResponse(t, bw, http.StatusUnprocessableEntity, "")

		on := true
		body = request.SetAvailabilityRequest{IsActive: &on}
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, availabilityURL, body, barber.Token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &profile)
		assert.True(t, profile.IsActive)
		assert.Equal(t, "Barberia Sur", profile.DisplayName)

		s.SubmitBid(t, barber, req.ID, 28000)
	})

	s.Run("Normal case: stats reflect assigned, completed and cancelled jobs", func() {
		t := s.T()
		barber := s.JWT.Barber(t)
		client := s.JWT.Client(t)

		s.completeJob(t, barber, 50000)

		active := s.CreateRequest(t, client, 20000)
		s.MustUpdateStatus(t, barber, active.ID, "accepted", nil)

		dropped := s.CreateRequest(t, client, 25000)
		s.MustUpdateStatus(t, barber, dropped.ID, "accepted", nil)
		s.MustUpdateStatus(t, barber, dropped.ID, "cancelled", nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, statsURL, nil, barber.Token)
		var stats response.BarberStatsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &stats)

		want := response.BarberStatsResponse{
			BarberID:   barber.ID,
			IsActive:   true,
			Assigned:   1,
			Completed:  1,
			Cancelled:  1,
			Gross:      50000,
			Commission: 5000,
			Net:        45000,
		}
		if diff := cmp.Diff(want, stats); diff != "" {
			t.Errorf("barber stats mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: clients have no barber stats", func() {
		t := s.T()
		client := s.JWT.Client(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, statsURL, nil, client.Token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})
}

// =============================================================================
// TestOutboxRelay
// =============================================================================

func (s *AdminSuite) TestOutboxRelay() {
	s.Run("Normal case: queued events are dispatched once", func() {
		t := s.T()
		client := s.JWT.Client(t)
		req := s.CreateRequest(t, client, 30000)
		s.SubmitBid(t, s.JWT.Barber(t), req.ID, 29000)

		stats, err := s.Relay.RunOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, stats.Sent)
		assert.Equal(t, 0, stats.Failed)

		var queued int
		err = s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM notification_jobs WHERE request_id = $1 AND status = 'queued'", req.ID).Scan(&queued)
		require.NoError(t, err)
		assert.Zero(t, queued)

		again, err := s.Relay.RunOnce(context.Background())
		require.NoError(t, err)
		assert.Zero(t, again.Claimed)
	})
}

func (s *AdminSuite) TestOutboxLease() {
	s.Run("Normal case: claimed events stay leased until the lease runs out", func() {
		t := s.T()
		ctx := context.Background()
		req := s.CreateRequest(t, s.JWT.Client(t), 30000)
		repo := repository.NewNotificationRepository(sqlc.New())
		now := time.Now().Add(time.Second)

		jobs, err := repo.ClaimDue(ctx, s.DB, now, now.Add(time.Minute), 10)
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, req.ID, jobs[0].RequestID)

		again, err := repo.ClaimDue(ctx, s.DB, now, now.Add(time.Minute), 10)
		require.NoError(t, err)
		assert.Empty(t, again)

		later := now.Add(2 * time.Minute)
		reclaimed, err := repo.ClaimDue(ctx, s.DB, later, later.Add(time.Minute), 10)
		require.NoError(t, err)
		require.Len(t, reclaimed, 1)
		assert.Equal(t, jobs[0].ID, reclaimed[0].ID)

		require.NoError(t, repo.MarkSent(ctx, s.DB, jobs[0].ID))
		require.NoError(t, repo.Reschedule(ctx, s.DB, jobs[0].ID, "queued", "late failure", now))

		var status string
		err = s.DB.QueryRow(ctx, "SELECT status FROM notification_jobs WHERE id = $1", jobs[0].ID).Scan(&status)
		require.NoError(t, err)
		assert.Equal(t, "sent", status)
	})
}

// =============================================================================
// TestHealth
// =============================================================================

func (s *AdminSuite) TestHealth() {
	s.Run("Normal case: health needs no token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/health", nil, "")
		var body map[string]string
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		assert.Equal(t, "ok", body["status"])
	})
}
