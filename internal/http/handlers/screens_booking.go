package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"transit/internal/domain"
	"transit/internal/domain/models"
	"transit/internal/http/middleware"
	"transit/internal/http/views"
	"transit/internal/services"
	"transit/internal/utils"

	"github.com/gin-gonic/gin"
)

type wizardData struct {
	State   services.WizardState
	Steps   []services.WizardStep
	Buses   []models.BusOption
	Genders []models.Gender
}

// GET /book-ticket starts a fresh wizard.
func (h *Handler) BookTicketForm(c *gin.Context) {
	h.renderWizard(c, services.NewWizardState(), nil)
}

// POST /book-ticket applies one wizard event. The form carries the step and
// every draft field, so the server holds no state between requests.
func (h *Handler) BookTicket(c *gin.Context) {
	step, _ := strconv.Atoi(c.PostForm("step"))
	state := services.WizardState{
		Step:  services.WizardStep(step),
		Draft: services.DraftFromValues(c.PostForm),
	}
	event := services.WizardEvent{Kind: services.WizardEventKind(c.DefaultPostForm("action", string(services.EventNext)))}

	next, outcome := services.Transition(state, event)
	switch outcome.Kind {
	case services.OutcomeExited:
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	case services.OutcomeCompleted:
		_, token, err := h.issueTicket(c, *outcome.Draft)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "ticket_issue_failed", "failed to issue ticket", nil)
			return
		}
		c.Redirect(http.StatusSeeOther, ticketURL(token, true))
		return
	}
	h.renderWizard(c, next, outcome.Notice)
}

// issueTicket fixes booking id and seat for a finished draft and wraps it
// into the navigation token for the ticket screen.
func (h *Handler) issueTicket(c *gin.Context, draft models.BookingDraft) (models.TicketPayload, string, error) {
	payload := h.tickets(c).Issue(draft)
	token, err := h.Tokens.Encode(payload)
	if err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "ticket", "encode_failed", err.Error())
		return payload, "", fmt.Errorf("issue ticket: %w", err)
	}
	return payload, token, nil
}

func ticketURL(token string, booked bool) string {
	q := url.Values{}
	q.Set("t", token)
	if booked {
		q.Set("booked", "1")
	}
	return "/digital-ticket?" + q.Encode()
}

func (h *Handler) renderWizard(c *gin.Context, state services.WizardState, notice *domain.Notice) {
	render(c, http.StatusOK, "book_ticket.html", views.Page{
		Title:  "Book Ticket",
		Notice: notice,
		Data: wizardData{
			State:   state,
			Steps:   services.WizardSteps,
			Buses:   h.Catalog.BusOptions(),
			Genders: models.Genders,
		},
	})
}
