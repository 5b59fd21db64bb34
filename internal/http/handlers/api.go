package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"transit/internal/domain/models"
	"transit/internal/services"

	"github.com/gin-gonic/gin"
)

type wizardTransitionRequest struct {
	State services.WizardState `json:"state"`
	Event services.WizardEvent `json:"event"`
}

type wizardTransitionResponse struct {
	State   services.WizardState   `json:"state"`
	Outcome services.WizardOutcome `json:"outcome"`
	Ticket  *models.RenderedTicket `json:"ticket,omitempty"`
	Token   string                 `json:"token,omitempty"`
}

// POST /api/wizard/transition
//
// A rejected step is a normal outcome, not an HTTP error: the response is
// 200 with outcome.kind "rejected" and the notice to show.
func (h *Handler) WizardTransition(c *gin.Context) {
	var req wizardTransitionRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	req.State.Draft.Gender = models.ParseGender(string(req.State.Draft.Gender))

	state, outcome := services.Transition(req.State, req.Event)
	resp := wizardTransitionResponse{State: state, Outcome: outcome}

	if outcome.Kind == services.OutcomeCompleted {
		payload, token, err := h.issueTicket(c, *outcome.Draft)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "ticket_issue_failed", "failed to issue ticket", nil)
			return
		}
		ticket := h.tickets(c).Render(&payload)
		resp.Ticket = &ticket
		resp.Token = token
	}
	c.JSON(http.StatusOK, resp)
}

type searchRequest struct {
	Mode  string `json:"mode"`
	Query string `json:"query"`
}

// POST /api/track
func (h *Handler) APITrack(c *gin.Context) {
	var req searchRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	result, err := h.search(c).Track(services.ParseTrackMode(req.Mode), req.Query)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result, "message": services.NoticeBusFound})
}

// POST /api/timetable
func (h *Handler) APITimetable(c *gin.Context) {
	var req searchRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	results, err := h.search(c).Timetable(services.ParseTimetableMode(req.Mode), req.Query)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results, "message": services.NoticeBusesFound})
}

// GET /api/timetable/:id
func (h *Handler) APITimetableEntry(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_id", "invalid timetable id", nil)
		return
	}
	entry, err := h.search(c).TimetableEntry(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// GET /api/tickets
func (h *Handler) APITickets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tickets": h.tickets(c).List()})
}

type renderTicketRequest struct {
	Token string `json:"token"`
}

// POST /api/tickets/render renders a ticket from an optional token. An empty
// body behaves like a missing payload.
func (h *Handler) APIRenderTicket(c *gin.Context) {
	var req renderTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return
	}
	p := h.payloadFromToken(c, req.Token)
	c.JSON(http.StatusOK, gin.H{
		"ticket":  h.tickets(c).Render(p),
		"payload": p != nil,
	})
}
