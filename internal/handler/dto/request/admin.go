package request

import (
	"time"

	"styleapp-backend/internal/usecase/queries"
)

// Dates are inclusive calendar days (YYYY-MM-DD) or RFC 3339 instants.
type CommissionReportQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
}

func (q CommissionReportQuery) ToRange() (queries.ReportRange, error) {
	var rng queries.ReportRange
	if q.From != "" {
		from, err := parseReportTime(q.From, false)
		if err != nil {
			return rng, err
		}
		rng.From = &from
	}
	if q.To != "" {
		to, err := parseReportTime(q.To, true)
		if err != nil {
			return rng, err
		}
		rng.To = &to
	}
	return rng, nil
}

// A bare date used as the upper bound covers the whole day.
func parseReportTime(s string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		if endOfDay {
			return t.AddDate(0, 0, 1), nil
		}
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
