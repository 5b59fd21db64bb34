package handlers

import (
	"strconv"

	"transit/internal/domain"
	"transit/internal/domain/models"
	"transit/internal/services"

	"github.com/gin-gonic/gin"
)

type trackData struct {
	Mode   services.TrackMode
	Query  string
	Result *models.BusLocation
}

type timetableData struct {
	Mode     services.TimetableMode
	Query    string
	Results  []models.BusSearchResult
	Selected *models.BusSearchResult
}

// GET /track-bus
func (h *Handler) TrackBusForm(c *gin.Context) {
	screen(c, "track_bus.html", "Track Bus", nil, trackData{Mode: services.ParseTrackMode(c.Query("mode"))})
}

// POST /track-bus
func (h *Handler) TrackBus(c *gin.Context) {
	data := trackData{
		Mode:  services.ParseTrackMode(c.PostForm("mode")),
		Query: c.PostForm("q"),
	}
	result, err := h.search(c).Track(data.Mode, data.Query)
	if err != nil {
		screen(c, "track_bus.html", "Track Bus", domain.NoticeFromError(err), data)
		return
	}
	data.Result = &result
	screen(c, "track_bus.html", "Track Bus", domain.Success(services.NoticeBusFound), data)
}

// GET /timetable
func (h *Handler) TimetableForm(c *gin.Context) {
	screen(c, "timetable.html", "Bus Timetable", nil, timetableData{Mode: services.ParseTimetableMode(c.Query("mode"))})
}

// POST /timetable searches, and with "selected" also opens the details of
// one row.
func (h *Handler) Timetable(c *gin.Context) {
	data := timetableData{
		Mode:  services.ParseTimetableMode(c.PostForm("mode")),
		Query: c.PostForm("q"),
	}
	svc := h.search(c)
	results, err := svc.Timetable(data.Mode, data.Query)
	if err != nil {
		screen(c, "timetable.html", "Bus Timetable", domain.NoticeFromError(err), data)
		return
	}
	data.Results = results

	notice := domain.Success(services.NoticeBusesFound)
	if raw := c.PostForm("selected"); raw != "" {
		if id, convErr := strconv.Atoi(raw); convErr == nil {
			if entry, lookupErr := svc.TimetableEntry(id); lookupErr == nil {
				data.Selected = &entry
				notice = nil
			}
		}
	}
	screen(c, "timetable.html", "Bus Timetable", notice, data)
}
