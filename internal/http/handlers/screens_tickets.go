package handlers

import (
	"transit/internal/domain/models"

	"github.com/gin-gonic/gin"
)

type myTicketsData struct {
	Tickets []models.Ticket
}

// GET /my-tickets lists the sample bookings. Its buttons are inert.
func (h *Handler) MyTickets(c *gin.Context) {
	screen(c, "my_tickets.html", "My Tickets", nil, myTicketsData{Tickets: h.tickets(c).List()})
}
