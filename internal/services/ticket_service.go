package services

import (
	"fmt"
	"math/rand/v2"

	"transit/internal/domain/models"
	"transit/internal/repositories"
	"transit/internal/utils"
)

const (
	ticketOperator   = "KSRTC"
	defaultDeparture = "08:00 AM"
	defaultFare      = int64(450)
	seatsPerBus      = 40
	bookingIDSpace   = 1000000
)

// TicketService issues booking ids and seats and projects drafts into the
// ticket screen.
type TicketService struct {
	Catalog   repositories.CatalogRepository
	RequestID string
	// Rand returns a value in [0, n). Defaults to math/rand/v2.
	Rand func(n int) int
}

func (s TicketService) intn(n int) int {
	if s.Rand != nil {
		return s.Rand(n)
	}
	return rand.IntN(n)
}

// NewBookingID returns "KSRTC" followed by a number below one million.
func (s TicketService) NewBookingID() string {
	return fmt.Sprintf("%s%d", ticketOperator, s.intn(bookingIDSpace))
}

// NewSeat returns a seat between A1 and A40.
func (s TicketService) NewSeat() string {
	return fmt.Sprintf("A%d", s.intn(seatsPerBus)+1)
}

// Issue fixes the booking id and seat for a finished draft once, so every
// later render of the same payload shows the same values.
func (s TicketService) Issue(draft models.BookingDraft) models.TicketPayload {
	p := models.TicketPayload{
		Draft:     draft,
		BookingID: s.NewBookingID(),
		Seat:      s.NewSeat(),
	}
	utils.LogEvent(s.RequestID, "ticket", "issue", fmt.Sprintf("booking_id=%s bus=%s", p.BookingID, draft.Bus))
	return p
}

// Render projects a payload into the ticket view. A nil payload renders
// with empty draft fields; a payload without id or seat gets fresh ones on
// every call.
func (s TicketService) Render(p *models.TicketPayload) models.RenderedTicket {
	var out models.RenderedTicket
	if p != nil {
		out.BookingDraft = p.Draft
		out.BookingID = p.BookingID
		out.Seat = p.Seat
	}
	if out.BookingID == "" {
		out.BookingID = s.NewBookingID()
	}
	if out.Seat == "" {
		out.Seat = s.NewSeat()
	}

	out.Operator = ticketOperator
	out.Departure = defaultDeparture
	out.Fare = defaultFare
	if bus, ok := s.Catalog.BusOption(out.Bus); ok {
		if bus.Departure != "" {
			out.Departure = bus.Departure
		}
		if bus.Fare > 0 {
			out.Fare = bus.Fare
		}
	}
	return out
}

// List returns the sample bookings for the My Tickets screen.
func (s TicketService) List() []models.Ticket {
	return s.Catalog.Tickets()
}
