package models

// BusOption is one bus offered on the wizard's bus selection step.
type BusOption struct {
	Name         string `json:"name" yaml:"name"`
	Departure    string `json:"departure" yaml:"departure"`
	Fare         int64  `json:"fare" yaml:"fare"`
	Availability string `json:"availability" yaml:"availability"`
}

// BusLocation is the tracking screen result.
type BusLocation struct {
	BusNumber       string `json:"busNumber" yaml:"bus_number"`
	Route           string `json:"route" yaml:"route"`
	Status          string `json:"status" yaml:"status"`
	ETA             string `json:"eta" yaml:"eta"`
	CurrentLocation string `json:"currentLocation" yaml:"current_location"`
}

// BusSearchResult is a timetable entry.
type BusSearchResult struct {
	ID        int    `json:"id" yaml:"id"`
	BusNumber string `json:"busNumber" yaml:"bus_number"`
	Route     string `json:"route" yaml:"route"`
	Departure string `json:"departure" yaml:"departure"`
	Arrival   string `json:"arrival" yaml:"arrival"`
	Type      string `json:"type" yaml:"type"`
	Driver    string `json:"driver" yaml:"driver"`
	Conductor string `json:"conductor" yaml:"conductor"`
	Contact   string `json:"contact" yaml:"contact"`
}

type TicketStatus string

const (
	TicketUpcoming  TicketStatus = "Upcoming"
	TicketCompleted TicketStatus = "Completed"
)

// Ticket is a past or upcoming booking on the listing screen.
type Ticket struct {
	ID        string       `json:"id" yaml:"id"`
	BusNumber string       `json:"busNumber" yaml:"bus_number"`
	From      string       `json:"from" yaml:"from"`
	To        string       `json:"to" yaml:"to"`
	Date      string       `json:"date" yaml:"date"`
	Time      string       `json:"time" yaml:"time"`
	Seat      string       `json:"seat" yaml:"seat"`
	Status    TicketStatus `json:"status" yaml:"status"`
}

// Cancellable reports whether the listing shows a cancel action.
func (t Ticket) Cancellable() bool {
	return t.Status == TicketUpcoming
}

// MenuItem is a dashboard tile.
type MenuItem struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Path        string `json:"path" yaml:"path"`
}
