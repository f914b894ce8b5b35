package booking

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/dharmasatrya/transitbook/internal/models"
	"github.com/dharmasatrya/transitbook/pkg/currency"
)

const itineraryDateLayout = "02 Jan 2006 (Mon), 15:04"

// Itinerary renders a one-page PDF summary of a booking.
func Itinerary(b models.Booking) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Header bar
	pdf.SetFillColor(24, 46, 86)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Transitbook", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Booking itinerary", "", 1, "L", false, 0, "")

	pdf.SetY(36)
	pdf.SetTextColor(0, 0, 0)

	sectionHeader := func(title string) {
		pdf.SetFillColor(24, 46, 86)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	sectionHeader("Booking")
	row("Reference", b.Reference)
	row("Status", strings.ToUpper(string(b.Status)))
	row("Booked on", b.CreatedAt.Format(itineraryDateLayout))
	pdf.Ln(4)

	sectionHeader("Trip")
	row("Type", strings.ToUpper(string(b.Type)))
	row("Provider", b.Provider)
	row("Route", fmt.Sprintf("%s to %s", b.From, b.To))
	row("Departure", b.DepartDate.Format(itineraryDateLayout))
	if b.ReturnDate != nil {
		row("Return", b.ReturnDate.Format(itineraryDateLayout))
	}
	pdf.Ln(4)

	sectionHeader(fmt.Sprintf("Passengers (%d)", len(b.Passengers)))
	for i, p := range b.Passengers {
		row(fmt.Sprintf("Passenger %d", i+1), fmt.Sprintf("%s %s <%s>", p.FirstName, p.LastName, p.Email))
	}
	if b.SpecialRequests != "" {
		row("Special requests", b.SpecialRequests)
	}
	pdf.Ln(4)

	pdf.SetFillColor(230, 236, 245)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(55, 9, "TOTAL PAID", "", 0, "L", true, 0, "")
	pdf.CellFormat(115, 9, currency.FormatUSD(b.TotalPrice), "", 1, "L", true, 0, "")

	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8, "Demo itinerary - not a travel document", "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("itinerary output failed: %w", err)
	}
	return buf.Bytes(), nil
}
