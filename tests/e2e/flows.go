//go:build e2e

package e2e

import (
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"styleapp-backend/internal/handler/dto/request"
	"styleapp-backend/internal/handler/dto/response"
	"styleapp-backend/tests/common/authtest"
	"styleapp-backend/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	ServiceRequestsURL = "/api/service-requests"
	ServiceRequestURL  = "/api/service-requests/%s"
	StatusURL          = "/api/service-requests/%s/status"
	BidsURL            = "/api/bids"
	AcceptBidURL       = "/api/bids/accept/%s"
	RejectBidURL       = "/api/bids/reject/%s"
	RequestBidsURL     = "/api/bids/request/%s"
)

// CreateRequest posts a request at price and fails the test unless it is created.
func (s *SharedSuite) CreateRequest(t *testing.T, client authtest.TestActor, price int64) response.ServiceRequestResponse {
	t.Helper()

	body := request.CreateServiceRequestRequest{
		ServiceType: "Corte clasico",
		Address:     "Carrera 7 #72-41, Bogota",
		Price:       price,
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, ServiceRequestsURL, body, client.Token)

	var created response.ServiceRequestResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	require.NotEqual(t, uuid.Nil, created.ID)
	return created
}

func (s *SharedSuite) SubmitBid(t *testing.T, barber authtest.TestActor, requestID uuid.UUID, amount int64) response.BidResponse {
	t.Helper()

	w := s.TrySubmitBid(t, barber, requestID, amount)

	var created response.BidResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	return created
}

func (s *SharedSuite) TrySubmitBid(t *testing.T, barber authtest.TestActor, requestID uuid.UUID, amount int64) *nethttptest.ResponseRecorder {
	t.Helper()

	body := request.SubmitBidRequest{ServiceRequestID: requestID, Amount: amount}
	return httptest.PerformRequest(t, s.Router, http.MethodPost, BidsURL, body, barber.Token)
}

func (s *SharedSuite) AcceptBid(t *testing.T, client authtest.TestActor, bidID uuid.UUID) *nethttptest.ResponseRecorder {
	t.Helper()
	return httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(AcceptBidURL, bidID), nil, client.Token)
}

func (s *SharedSuite) RejectBid(t *testing.T, client authtest.TestActor, bidID uuid.UUID) *nethttptest.ResponseRecorder {
	t.Helper()
	return httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(RejectBidURL, bidID), nil, client.Token)
}

func (s *SharedSuite) UpdateStatus(t *testing.T, actor authtest.TestActor, requestID uuid.UUID, status string, barberID *uuid.UUID) *nethttptest.ResponseRecorder {
	t.Helper()

	body := request.UpdateStatusRequest{Status: status, BarberID: barberID}
	return httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(StatusURL, requestID), body, actor.Token)
}

// MustUpdateStatus applies a transition that the test expects to succeed.
func (s *SharedSuite) MustUpdateStatus(t *testing.T, actor authtest.TestActor, requestID uuid.UUID, status string, barberID *uuid.UUID) response.ServiceRequestResponse {
	t.Helper()

	w := s.UpdateStatus(t, actor, requestID, status, barberID)

	var updated response.ServiceRequestResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)
	require.Equal(t, status, updated.Status)
	return updated
}

func (s *SharedSuite) GetRequest(t *testing.T, actor authtest.TestActor, requestID uuid.UUID) response.ServiceRequestResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(ServiceRequestURL, requestID), nil, actor.Token)

	var got response.ServiceRequestResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
	return got
}

func (s *SharedSuite) ListBids(t *testing.T, actor authtest.TestActor, requestID uuid.UUID) []response.BidResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(RequestBidsURL, requestID), nil, actor.Token)

	var bids []response.BidResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &bids)
	return bids
}
