package services

import (
	"bytes"
	"fmt"
	"strings"

	"transit/internal/domain/models"
	"transit/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders downloadable ticket documents.
type DocsService struct {
	RequestID string
}

// GenerateTicketPDF renders one rendered ticket as a single A5 page and
// returns the document with a suggested filename.
func (s DocsService) GenerateTicketPDF(t models.RenderedTicket) ([]byte, string, error) {
	data, err := buildTicketPDF(t)
	if err != nil {
		return nil, "", fmt.Errorf("build ticket pdf: %w", err)
	}
	utils.LogEvent(s.RequestID, "docs", "generate_ticket", fmt.Sprintf("booking_id=%s bytes=%d", t.BookingID, len(data)))
	return data, fmt.Sprintf("ticket-%s.pdf", safeFilenamePart(t.BookingID)), nil
}

func buildTicketPDF(t models.RenderedTicket) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetTitle(t.Operator+" Ticket", true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, tr(utils.Safe(t.Operator, "KSRTC")), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Smart Transit", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Booking ID", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr(t.BookingID), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	rows := [][2]string{
		{"Passenger Name", t.PassengerName},
		{"Bus Number", t.Bus},
		{"From", t.Source},
		{"To", t.Destination},
		{"Date", utils.HumanDate(t.Date)},
		{"Departure", t.Departure},
		{"Seat Number", t.Seat},
		{"Fare", utils.FormatRupeesASCII(t.Fare)},
	}
	for _, row := range rows {
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(50, 8, row[0], "B", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 8, tr(utils.Safe(row[1], "-")), "B", 1, "R", false, 0, "")
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "Show this ticket to the conductor during your journey.", "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
