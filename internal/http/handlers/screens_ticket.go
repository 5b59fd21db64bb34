package handlers

import (
	"net/http"

	"transit/internal/domain"
	"transit/internal/domain/models"
	"transit/internal/http/middleware"
	"transit/internal/http/views"
	"transit/internal/services"
	"transit/internal/utils"

	"github.com/gin-gonic/gin"
)

type ticketData struct {
	Ticket models.RenderedTicket
	Token  string
}

// payloadFromToken decodes the navigation token. Anything unusable counts
// as no payload; the ticket screen never fails on it.
func (h *Handler) payloadFromToken(c *gin.Context, raw string) *models.TicketPayload {
	p, err := h.Tokens.Decode(raw)
	if err != nil {
		if raw != "" {
			utils.LogEvent(middleware.GetRequestID(c), "ticket", "payload_rejected", err.Error())
		}
		return nil
	}
	return &p
}

// GET /digital-ticket
func (h *Handler) DigitalTicket(c *gin.Context) {
	token := c.Query("t")
	ticket := h.tickets(c).Render(h.payloadFromToken(c, token))

	var notice *domain.Notice
	if c.Query("booked") == "1" {
		notice = domain.Success(services.NoticeBooked)
	}

	render(c, http.StatusOK, "digital_ticket.html", views.Page{
		Title:   "Digital Ticket",
		BackURL: "/dashboard",
		Notice:  notice,
		Data:    ticketData{Ticket: ticket, Token: token},
	})
}

// GET /digital-ticket/download
func (h *Handler) DownloadTicket(c *gin.Context) {
	ticket := h.tickets(c).Render(h.payloadFromToken(c, c.Query("t")))

	pdf, filename, err := h.docs(c).GenerateTicketPDF(ticket)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "ticket_pdf_failed", "failed to generate ticket", nil)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
