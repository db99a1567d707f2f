package report

import (
	"fmt"
	"time"

	"styleapp-backend/internal/usecase/queries"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Summary"
	barbersSheet = "Barbers"
	dateLayout   = "2006-01-02"
)

// CommissionWorkbook renders the commission report as an xlsx file.
type CommissionWorkbook struct{}

func NewCommissionWorkbook() *CommissionWorkbook {
	return &CommissionWorkbook{}
}

func (w *CommissionWorkbook) Render(rep queries.CommissionReport) ([]byte, error) {
	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	if err := file.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	w.writeSummary(file, rep)

	if _, err := file.NewSheet(barbersSheet); err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	if err := w.writeBarbers(file, rep); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// FileName is the attachment name for the report period.
func (w *CommissionWorkbook) FileName(rep queries.CommissionReport) string {
	return fmt.Sprintf("commissions_%s_%s.xlsx", formatDate(rep.From), formatDate(rep.To))
}

func (w *CommissionWorkbook) writeSummary(file *excelize.File, rep queries.CommissionReport) {
	set := func(cell string, value any) {
		_ = file.SetCellValue(summarySheet, cell, value)
	}

	set("A1", "Period start")
	set("B1", formatDate(rep.From))
	set("A2", "Period end")
	set("B2", formatDate(rep.To))
	set("A3", "Commission rate (%)")
	set("B3", float64(rep.RateBPS)/100)
	set("A4", "Completed services")
	set("B4", rep.Totals.CompletedCount)
	set("A5", "Gross total")
	set("B5", rep.Totals.CompletedTotal)
	set("A6", "Commission total")
	set("B6", rep.Totals.CommissionTotal)
	set("A7", "Net paid to barbers")
	set("B7", rep.Totals.NetTotal)

	_ = file.SetColWidth(summarySheet, "A", "A", 28)
	_ = file.SetColWidth(summarySheet, "B", "B", 18)
}

func (w *CommissionWorkbook) writeBarbers(file *excelize.File, rep queries.CommissionReport) error {
	set := func(cell string, value any) {
		_ = file.SetCellValue(barbersSheet, cell, value)
	}

	headers := []string{
		"Barber ID",
		"Barber",
		"Completed",
		"Gross",
		"Commission",
		"Net",
	}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		set(cell, header)
	}

	for i, row := range rep.Rows {
		r := i + 2
		set(fmt.Sprintf("A%d", r), row.BarberID.String())
		set(fmt.Sprintf("B%d", r), row.BarberName)
		set(fmt.Sprintf("C%d", r), row.CompletedCount)
		set(fmt.Sprintf("D%d", r), row.CompletedTotal)
		set(fmt.Sprintf("E%d", r), row.CommissionTotal)
		set(fmt.Sprintf("F%d", r), row.NetTotal)
	}

	totalRow := len(rep.Rows) + 2
	set(fmt.Sprintf("B%d", totalRow), "Total")
	set(fmt.Sprintf("C%d", totalRow), rep.Totals.CompletedCount)
	set(fmt.Sprintf("D%d", totalRow), rep.Totals.CompletedTotal)
	set(fmt.Sprintf("E%d", totalRow), rep.Totals.CommissionTotal)
	set(fmt.Sprintf("F%d", totalRow), rep.Totals.NetTotal)

	_ = file.SetColWidth(barbersSheet, "A", "A", 38)
	_ = file.SetColWidth(barbersSheet, "B", "B", 28)
	_ = file.SetColWidth(barbersSheet, "C", "F", 14)
	return nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateLayout)
}
