//go:build e2e

package negotiation_test

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"styleapp-backend/internal/handler/dto/response"
	"styleapp-backend/tests/common/dbtest"
	"styleapp-backend/tests/common/httptest"
	"styleapp-backend/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

type NegotiationSuite struct {
	e2e.SharedSuite
}

func TestNegotiationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(NegotiationSuite))
}

// =============================================================================
// Bid acceptance and the job lifecycle
// =============================================================================

func (s *NegotiationSuite) TestAcceptBidFlow() {
	s.Run("Normal case: accepting one bid assigns the barber and rejects the rest", func() {
		t := s.T()
		client := s.JWT.Client(t)
		barberA, barberB := s.JWT.Barber(t), s.JWT.Barber(t)

		req := s.CreateRequest(t, client, 50000)
		bidA := s.SubmitBid(t, barberA, req.ID, 45000)
		bidB := s.SubmitBid(t, barberB, req.ID, 48000)

		w := s.AcceptBid(t, client, bidB.ID)
		var accepted response.AcceptBidResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &accepted)

		require.NotNil(t, accepted.ServiceRequest)
		assert.Equal(t, "accepted", accepted.ServiceRequest.Status)
		require.NotNil(t, accepted.ServiceRequest.AssignedBarberID)
		assert.Equal(t, barberB.ID, *accepted.ServiceRequest.AssignedBarberID)
		require.NotNil(t, accepted.ServiceRequest.AgreedPrice)
		assert.Equal(t, int64(48000), *accepted.ServiceRequest.AgreedPrice)
		assert.Equal(t, "accepted", accepted.Bid.Status)
		require.Len(t, accepted.RejectedBids, 1)
		assert.Equal(t, bidA.ID, accepted.RejectedBids[0].ID)

		bids := s.ListBids(t, client, req.ID)
		statuses := map[uuid.UUID]string{}
		for _, b := range bids {
			statuses[b.ID] = b.Status
		}
		want := map[uuid.UUID]string{bidA.ID: "rejected", bidB.ID: "accepted"}
		if diff := cmp.Diff(want, statuses); diff != "" {
			t.Errorf("bid statuses mismatch (-want +got):\n%s", diff)
		}

		assert.Equal(t,
			[]string{"service_request.created", "bid.created", "bid.created", "bid.accepted", "bid.rejected", "service_request.accepted"},
			dbtest.EventTypesForRequest(t, s.DB, req.ID),
		)
	})

	s.Run("Normal case: the assigned barber drives the job to completion", func() {
		t := s.T()
		client := s.JWT.Client(t)
		barber := s.JWT.Barber(t)

		req := s.CreateRequest(t, client, 50000)
		b := s.SubmitBid(t, barber, req.ID, 48000)
		httptest.AssertSuccessResponse(t, s.AcceptBid(t, client, b.ID), http.StatusOK, nil)

		s.MustUpdateStatus(t, barber, req.ID, "on_route", nil)
		completed := s.MustUpdateStatus(t, barber, req.ID, "completed", nil)

		require.NotNil(t, completed.AppCommission)
		assert.Equal(t, int64(4800), *completed.AppCommission)
		assert.NotNil(t, completed.CompletedAt)

		entries := dbtest.LedgerEntriesForRequest(t, s.DB, req.ID)
		want := []dbtest.LedgerEntry{{BarberID: barber.ID, Gross: 48000, Commission: 4800, Net: 43200}}
		if diff := cmp.Diff(want, entries); diff != "" {
			t.Errorf("ledger mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: completed jobs cannot be cancelled", func() {
		t := s.T()
		client := s.JWT.Client(t)
		barber := s.JWT.Barber(t)

		req := s.CreateRequest(t, client, 30000)
		s.MustUpdateStatus(t, barber, req.ID, "accepted", nil)
		s.MustUpdateStatus(t, barber, req.ID, "on_route", nil)
		s.MustUpdateStatus(t, barber, req.ID, "completed", nil)

		w := s.UpdateStatus(t, client, req.ID, "cancelled", nil)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "")
	})

	s.Run("Error case: only the assigned barber may start the route", func() {
		t := s.T()
		client := s.JWT.Client(t)
		assigned, other := s.JWT.Barber(t), s.JWT.Barber(t)

		req := s.CreateRequest(t, client, 30000)
		s.MustUpdateStatus(t, assigned, req.ID, "accepted", nil)

		w := s.UpdateStatus(t, other, req.ID, "on_route", nil)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})
}

// =============================================================================
// Pending bid rules
// =============================================================================

func (s *NegotiationSuite) TestPendingBids() {
	s.Run("Error case: a barber cannot hold two pending bids on one request", func() {
		t := s.T()
		client := s.JWT.Client(t)
		barber := s.JWT.Barber(t)

		req := s.CreateRequest(t, client, 50000)
		s.SubmitBid(t, barber, req.ID, 45000)

		w := s.TrySubmitBid(t, barber, req.ID, 44000)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "pending bid")
		assert.Equal(t, 1, dbtest.CountBidsByStatus(t, s.DB, req.ID, "pending"))
	})

	s.Run("Normal case: rejecting a bid keeps the request open and allows a new bid", func() {
		t := s.T()
		client := s.JWT.Client(t)
		barber := s.JWT.Barber(t)

		req := s.CreateRequest(t, client, 50000)
		first := s.SubmitBid(t, barber, req.ID, 52000)

		var rejected response.BidResponse
		httptest.AssertSuccessResponse(t, s.RejectBid(t, client, first.ID), http.StatusOK, &rejected)
		assert.Equal(t, "rejected", rejected.Status)
		assert.NotNil(t, rejected.DecidedAt)

		assert.Equal(t, "open", s.GetRequest(t, client, req.ID).Status)

		second := s.SubmitBid(t, barber, req.ID, 50000)
		assert.Equal(t, "pending", second.Status)
	})

	s.Run("Error case: inactive barbers cannot bid", func() {
		t := s.T()
		client := s.JWT.Client(t)
		barber := s.JWT.Barber(t)
		dbtest.CreateBarberProfile(t, s.DB, barber.ID, "Barberia Norte", false)

		req := s.CreateRequest(t, client, 50000)

		w := s.TrySubmitBid(t, barber, req.ID, 45000)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "")
	})

	s.Run("Error case: bidding on an accepted request is refused", func() {
		t := s.T()
		client := s.JWT.Client(t)
		winner, late := s.JWT.Barber(t), s.JWT.Barber(t)

		req := s.CreateRequest(t, client, 50000)
		s.MustUpdateStatus(t, winner, req.ID, "accepted", nil)

		w := s.TrySubmitBid(t, late, req.ID, 40000)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "")
	})

	s.Run("Normal case: a barber only sees their own bids", func() {
		t := s.T()
		client := s.JWT.Client(t)
		barberA, barberB := s.JWT.Barber(t), s.JWT.Barber(t)

		req := s.CreateRequest(t, client, 50000)
		mine := s.SubmitBid(t, barberA, req.ID, 45000)
		s.SubmitBid(t, barberB, req.ID, 47000)

		bids := s.ListBids(t, barberA, req.ID)
		require.Len(t, bids, 1)
		assert.Equal(t, mine.ID, bids[0].ID)
		assert.Len(t, s.ListBids(t, client, req.ID), 2)
	})
}

// =============================================================================
// Concurrency
// =============================================================================

func (s *NegotiationSuite) TestConcurrentAcceptance() {
	s.Run("Concurrency: racing acceptances on one request have a single winner", func() {
		t := s.T()
		client := s.JWT.Client(t)

		req := s.CreateRequest(t, client, 50000)
		const bidders = 5
		bidIDs := make([]uuid.UUID, bidders)
		for i := range bidders {
			bidIDs[i] = s.SubmitBid(t, s.JWT.Barber(t), req.ID, int64(40000+i*1000)).ID
		}

		var ok, conflict atomic.Int32
		g, _ := errgroup.WithContext(context.Background())
		for _, id := range bidIDs {
			g.Go(func() error {
				w := s.AcceptBid(t, client, id)
				switch w.Code {
				case http.StatusOK:
					ok.Add(1)
				case http.StatusConflict:
					conflict.Add(1)
				default:
					t.Errorf("unexpected status %d: %s", w.Code, w.Body.String())
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())

		assert.Equal(t, int32(1), ok.Load())
		assert.Equal(t, int32(bidders-1), conflict.Load())
		assert.Equal(t, 1, dbtest.CountBidsByStatus(t, s.DB, req.ID, "accepted"))
		assert.Equal(t, bidders-1, dbtest.CountBidsByStatus(t, s.DB, req.ID, "rejected"))
		assert.Equal(t, 0, dbtest.CountBidsByStatus(t, s.DB, req.ID, "pending"))
	})

	s.Run("Concurrency: direct acceptance races a bid acceptance", func() {
		t := s.T()
		client := s.JWT.Client(t)
		bidder, direct := s.JWT.Barber(t), s.JWT.Barber(t)

		req := s.CreateRequest(t, client, 50000)
		b := s.SubmitBid(t, bidder, req.ID, 45000)

		codes := make([]int, 2)
		g := new(errgroup.Group)
		g.Go(func() error {
			codes[0] = s.AcceptBid(t, client, b.ID).Code
			return nil
		})
		g.Go(func() error {
			codes[1] = s.UpdateStatus(t, direct, req.ID, "accepted", nil).Code
			return nil
		})
		require.NoError(t, g.Wait())

		assert.ElementsMatch(t, []int{http.StatusOK, http.StatusConflict}, codes)
		got := s.GetRequest(t, client, req.ID)
		assert.Equal(t, "accepted", got.Status)
		require.NotNil(t, got.AssignedBarberID)
		assert.Contains(t, []uuid.UUID{bidder.ID, direct.ID}, *got.AssignedBarberID)
	})
}
