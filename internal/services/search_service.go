package services

import (
	"fmt"

	"transit/internal/domain"
	"transit/internal/domain/models"
	"transit/internal/repositories"
	"transit/internal/utils"
)

// TrackMode selects what the tracking query is matched against. It only
// changes labels; the result set is fixed.
type TrackMode string

const (
	TrackByRoute   TrackMode = "route"
	TrackByVehicle TrackMode = "vehicle"
)

func ParseTrackMode(s string) TrackMode {
	if TrackMode(s) == TrackByVehicle {
		return TrackByVehicle
	}
	return TrackByRoute
}

func (m TrackMode) Placeholder() string {
	if m == TrackByVehicle {
		return "Enter vehicle registration number"
	}
	return "Enter route number"
}

// TimetableMode selects how the timetable query is phrased.
type TimetableMode string

const (
	TimetableByRoute  TimetableMode = "route"
	TimetableByCities TimetableMode = "cities"
)

func ParseTimetableMode(s string) TimetableMode {
	if TimetableMode(s) == TimetableByCities {
		return TimetableByCities
	}
	return TimetableByRoute
}

func (m TimetableMode) Placeholder() string {
	if m == TimetableByCities {
		return "Enter source and destination"
	}
	return "Enter route name (e.g., Bangalore-Mysore)"
}

const (
	noticeTrackEmpty     = "Please enter a search term"
	noticeTimetableEmpty = "Please enter search details"

	NoticeBusFound   = "Bus found!"
	NoticeBusesFound = "Found buses!"
)

// SearchService backs the Track Bus and Timetable screens. The query is
// only checked for presence; its content, whitespace included, never affects
// the result.
type SearchService struct {
	Catalog   repositories.CatalogRepository
	RequestID string
}

func (s SearchService) Track(mode TrackMode, query string) (models.BusLocation, error) {
	if query == "" {
		return models.BusLocation{}, domain.ValidationError{Field: "query", Msg: noticeTrackEmpty}
	}
	result := s.Catalog.Tracking()
	utils.LogEvent(s.RequestID, "track", "search", fmt.Sprintf("mode=%s", mode))
	return result, nil
}

func (s SearchService) Timetable(mode TimetableMode, query string) ([]models.BusSearchResult, error) {
	if query == "" {
		return nil, domain.ValidationError{Field: "query", Msg: noticeTimetableEmpty}
	}
	results := s.Catalog.Timetable()
	utils.LogEvent(s.RequestID, "timetable", "search", fmt.Sprintf("mode=%s results=%d", mode, len(results)))
	return results, nil
}

// TimetableEntry returns the details of one timetable row.
func (s SearchService) TimetableEntry(id int) (models.BusSearchResult, error) {
	return s.Catalog.TimetableByID(id)
}
