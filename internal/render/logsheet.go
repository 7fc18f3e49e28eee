package render

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"trip-planner-service/internal/domain"
)

// Rendering is capped at the first 40 daily entries; the schedule
// itself never exceeds 30 days, so the cap only guards stored records
// from older schema versions.
const maxRenderedLogs = 40

// LogSheet writes a paginated PDF of the trip's daily-log schedule:
// a header with the three addresses followed by one line per day.
func LogSheet(w io.Writer, rec domain.TripRecord) error {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	_, pageHeight := pdf.GetPageSize()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(72, 72, fmt.Sprintf("ELD Trip Logs - Trip %s", rec.ID))

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(72, 90, "Current: "+rec.CurrentAddress)
	pdf.Text(72, 105, "Pickup: "+rec.PickupAddress)
	pdf.Text(72, 120, "Drop-off: "+rec.DropoffAddress)

	y := 150.0
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(72, y, "Daily Logs:")
	y += 18

	pdf.SetFont("Helvetica", "", 9)
	logs := rec.Plan.DailyLogs
	if len(logs) > maxRenderedLogs {
		logs = logs[:maxRenderedLogs]
	}

	for _, entry := range logs {
		line := fmt.Sprintf(
			"Day %d: Drive %vh, On-duty %vh, Off-duty %vh, Miles %d",
			entry.Day, entry.DriveHours, entry.OnDutyHours, entry.OffDutyHours, entry.Miles,
		)
		pdf.Text(72, y, line)
		y += 12
		if y > pageHeight-72 {
			pdf.AddPage()
			pdf.SetFont("Helvetica", "", 9)
			y = 72
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render log sheet: %w", err)
	}
	return nil
}
