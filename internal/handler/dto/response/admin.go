package response

import (
	"time"

	"styleapp-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type CommissionRowResponse struct {
	BarberID        uuid.UUID `json:"barber_id"`
	BarberName      string    `json:"barber_name"`
	CompletedCount  int64     `json:"completed_count"`
	CompletedTotal  int64     `json:"completed_total"`
	CommissionTotal int64     `json:"commission_total"`
	NetTotal        int64     `json:"net_total"`
}

type CommissionTotalsResponse struct {
	CompletedCount  int64 `json:"completed_count"`
	CompletedTotal  int64 `json:"completed_total"`
	CommissionTotal int64 `json:"commission_total"`
	NetTotal        int64 `json:"net_total"`
}

type CommissionReportResponse struct {
	From    time.Time                `json:"from"`
	To      time.Time                `json:"to"`
	RateBPS int64                    `json:"rate_bps"`
	Rows    []CommissionRowResponse  `json:"rows"`
	Totals  CommissionTotalsResponse `json:"totals"`
}

func FromCommissionReport(rep *queries.CommissionReport) *CommissionReportResponse {
	res := copyTo[CommissionReportResponse](rep)
	if res.Rows == nil {
		res.Rows = []CommissionRowResponse{}
	}
	return res
}
