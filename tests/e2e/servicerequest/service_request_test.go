//go:build e2e

package servicerequest_test

import (
	"fmt"
	"net/http"
	"testing"

	"styleapp-backend/internal/handler/dto/request"
	"styleapp-backend/internal/handler/dto/response"
	"styleapp-backend/tests/common/dbtest"
	"styleapp-backend/tests/common/httptest"
	"styleapp-backend/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const openURL = "/api/service-requests/open"

type ServiceRequestSuite struct {
	e2e.SharedSuite
}

func TestServiceRequestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ServiceRequestSuite))
}

// =============================================================================
// TestCreate
// =============================================================================

func (s *ServiceRequestSuite) TestCreate() {
	s.Run("Normal case: client posts a request", func() {
		t := s.T()
		client := s.JWT.Client(t)
		lat, lng := 4.6486, -74.0628

		body := request.CreateServiceRequestRequest{
			ServiceType: "  Corte + barba ",
			Address:     "Calle 93 #11-27, Bogota",
			Latitude:    &lat,
			Longitude:   &lng,
			Price:       50000,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, e2e.ServiceRequestsURL, body, client.Token)

		var created response.ServiceRequestResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		expected := &response.ServiceRequestResponse{
			ClientID:    client.ID,
			ServiceType: "Corte + barba",
			Address:     "Calle 93 #11-27, Bogota",
			Latitude:    &lat,
			Longitude:   &lng,
			Price:       50000,
			Status:      "open",
		}
		opts := cmpopts.IgnoreFields(response.ServiceRequestResponse{}, "ID", "CreatedAt", "UpdatedAt")
		if diff := cmp.Diff(expected, &created, opts); diff != "" {
			t.Errorf("created request mismatch (-want +got):\n%s", diff)
		}

		assert.Equal(t, []string{"service_request.created"}, dbtest.EventTypesForRequest(t, s.DB, created.ID))
	})

	s.Run("Error case: non-positive price is rejected", func() {
		t := s.T()
		client := s.JWT.Client(t)

		body := request.CreateServiceRequestRequest{ServiceType: "Corte", Address: "Calle 1", Price: 0}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, e2e.ServiceRequestsURL, body, client.Token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})

	s.Run("Error case: price past the supported maximum is rejected", func() {
		t := s.T()
		client := s.JWT.Client(t)

		body := request.CreateServiceRequestRequest{ServiceType: "Corte", Address: "Calle 1", Price: 10_000_000_000_000_000}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, e2e.ServiceRequestsURL, body, client.Token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "price exceeds")
	})

	s.Run("Error case: bid amount past the supported maximum is rejected", func() {
		t := s.T()
		req := s.CreateRequest(t, s.JWT.Client(t), 30000)

		w := s.TrySubmitBid(t, s.JWT.Barber(t), req.ID, 10_000_000_000_000_000)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "bid amount exceeds")
	})

	s.Run("Error case: barbers cannot post requests", func() {
		t := s.T()
		barber := s.JWT.Barber(t)

		body := request.CreateServiceRequestRequest{ServiceType: "Corte", Address: "Calle 1", Price: 20000}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, e2e.ServiceRequestsURL, body, barber.Token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})

	s.Run("Error case: missing token", func() {
		t := s.T()

		body := request.CreateServiceRequestRequest{ServiceType: "Corte", Address: "Calle 1", Price: 20000}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, e2e.ServiceRequestsURL, body, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("Error case: expired token", func() {
		t := s.T()
		token := s.JWT.CreateExpiredToken(t, uuid.New(), "client")

		body := request.CreateServiceRequestRequest{ServiceType: "Corte", Address: "Calle 1", Price: 20000}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, e2e.ServiceRequestsURL, body, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "")
	})
}

// =============================================================================
// TestIdempotentCreate
// =============================================================================

func (s *ServiceRequestSuite) TestIdempotentCreate() {
	body := request.CreateServiceRequestRequest{ServiceType: "Corte", Address: "Avenida 19 #100-12", Price: 35000}

	s.Run("Normal case: a retried create returns the original request", func() {
		t := s.T()
		client := s.JWT.Client(t)
		headers := map[string]string{"Idempotency-Key": uuid.NewString()}

		w1 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, e2e.ServiceRequestsURL, body, headers, client.Token)
		var first response.ServiceRequestResponse
		httptest.AssertSuccessResponse(t, w1, http.StatusCreated, &first)

		w2 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, e2e.ServiceRequestsURL, body, headers, client.Token)
		var second response.ServiceRequestResponse
		httptest.AssertSuccessResponse(t, w2, http.StatusOK, &second)
		httptest.AssertHeaders(t, w2, map[string]string{"Idempotent-Replayed": "true"})

		assert.Equal(t, first.ID, second.ID)

		var count int
		err := s.DB.QueryRow(t.Context(), "SELECT count(*) FROM service_requests WHERE client_id = $1", client.ID).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	s.Run("Error case: the same key with a different body", func() {
		t := s.T()
		client := s.JWT.Client(t)
		headers := map[string]string{"Idempotency-Key": uuid.NewString()}

		w1 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, e2e.ServiceRequestsURL, body, headers, client.Token)
		require.Equal(t, http.StatusCreated, w1.Code)

		changed := body
		changed.Price = 36000
		w2 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, e2e.ServiceRequestsURL, changed, headers, client.Token)
		httptest.AssertErrorResponse(t, w2, http.StatusConflict, "")
	})

	s.Run("Normal case: keys are scoped per client", func() {
		t := s.T()
		alice, bob := s.JWT.Client(t), s.JWT.Client(t)
		headers := map[string]string{"Idempotency-Key": uuid.NewString()}

		w1 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, e2e.ServiceRequestsURL, body, headers, alice.Token)
		require.Equal(t, http.StatusCreated, w1.Code)
		w2 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, e2e.ServiceRequestsURL, body, headers, bob.Token)
		require.Equal(t, http.StatusCreated, w2.Code)
	})

	s.Run("Error case: malformed key", func() {
		t := s.T()
		client := s.JWT.Client(t)
		headers := map[string]string{"Idempotency-Key": "retry-1"}

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, e2e.ServiceRequestsURL, body, headers, client.Token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Idempotency-Key")
	})
}

// =============================================================================
// TestListAndGet
// =============================================================================

func (s *ServiceRequestSuite) TestListAndGet() {
	s.Run("Normal case: open requests are paged oldest first", func() {
		t := s.T()
		client := s.JWT.Client(t)
		barber := s.JWT.Barber(t)

		var ids []uuid.UUID
		for i := range 3 {
			ids = append(ids, s.CreateRequest(t, client, int64(20000+i*1000)).ID)
		}
		taken := s.CreateRequest(t, client, 90000)
		s.MustUpdateStatus(t, s.JWT.Barber(t), taken.ID, "accepted", nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, openURL+"?limit=2", nil, barber.Token)
		var page1 response.ServiceRequestListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page1)
		require.Len(t, page1.Items, 2)
		require.NotNil(t, page1.NextCursor)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("%s?limit=2&cursor=%s", openURL, *page1.NextCursor), nil, barber.Token)
		var page2 response.ServiceRequestListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page2)
		require.Len(t, page2.Items, 1)
		assert.Nil(t, page2.NextCursor)

		got := []uuid.UUID{page1.Items[0].ID, page1.Items[1].ID, page2.Items[0].ID}
		assert.Equal(t, ids, got)
	})

	s.Run("Normal case: a client lists only their own requests", func() {
		t := s.T()
		alice, bob := s.JWT.Client(t), s.JWT.Client(t)

		mine := s.CreateRequest(t, alice, 25000)
		s.CreateRequest(t, bob, 26000)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, e2e.ServiceRequestsURL, nil, alice.Token)
		var list []response.ServiceRequestResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list, 1)
		assert.Equal(t, mine.ID, list[0].ID)
	})

	s.Run("Normal case: status filter narrows the list", func() {
		t := s.T()
		client := s.JWT.Client(t)

		open := s.CreateRequest(t, client, 25000)
		cancelled := s.CreateRequest(t, client, 26000)
		s.MustUpdateStatus(t, client, cancelled.ID, "cancelled", nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, e2e.ServiceRequestsURL+"?status=cancelled", nil, client.Token)
		var list []response.ServiceRequestResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list, 1)
		assert.Equal(t, cancelled.ID, list[0].ID)
		assert.NotEqual(t, open.ID, list[0].ID)
	})

	s.Run("Error case: another client cannot read the request", func() {
		t := s.T()
		owner, stranger := s.JWT.Client(t), s.JWT.Client(t)
		req := s.CreateRequest(t, owner, 25000)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(e2e.ServiceRequestURL, req.ID), nil, stranger.Token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})

	s.Run("Error case: unknown request", func() {
		t := s.T()
		client := s.JWT.Client(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(e2e.ServiceRequestURL, uuid.New()), nil, client.Token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})
}

// =============================================================================
// TestCancel
// =============================================================================

func (s *ServiceRequestSuite) TestCancel() {
	s.Run("Normal case: cancelling an open request rejects its pending bids", func() {
		t := s.T()
		client := s.JWT.Client(t)

		req := s.CreateRequest(t, client, 40000)
		s.SubmitBid(t, s.JWT.Barber(t), req.ID, 38000)
		s.SubmitBid(t, s.JWT.Barber(t), req.ID, 39000)

		cancelled := s.MustUpdateStatus(t, client, req.ID, "cancelled", nil)
		assert.NotNil(t, cancelled.CancelledAt)
		assert.Equal(t, 0, dbtest.CountBidsByStatus(t, s.DB, req.ID, "pending"))
		assert.Equal(t, 2, dbtest.CountBidsByStatus(t, s.DB, req.ID, "rejected"))
	})

	s.Run("Normal case: the assigned barber may back out of an accepted job", func() {
		t := s.T()
		client := s.JWT.Client(t)
		barber := s.JWT.Barber(t)

		req := s.CreateRequest(t, client, 40000)
		s.MustUpdateStatus(t, barber, req.ID, "accepted", nil)
		s.MustUpdateStatus(t, barber, req.ID, "cancelled", nil)
	})

	s.Run("Error case: a job on route cannot be cancelled", func() {
		t := s.T()
		client := s.JWT.Client(t)
		barber := s.JWT.Barber(t)

		req := s.CreateRequest(t, client, 40000)
		s.MustUpdateStatus(t, barber, req.ID, "accepted", nil)
		s.MustUpdateStatus(t, barber, req.ID, "on_route", nil)

		w := s.UpdateStatus(t, client, req.ID, "cancelled", nil)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "")
		assert.Equal(t, "on_route", s.GetRequest(t, client, req.ID).Status)
	})
}
