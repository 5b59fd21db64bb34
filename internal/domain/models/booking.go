package models

// Gender is the passenger gender picked on the last wizard step. The zero
// value means nothing was selected yet.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Genders lists the selectable values in display order.
var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

// ParseGender returns the matching Gender, or "" for anything unknown.
func ParseGender(s string) Gender {
	for _, g := range Genders {
		if string(g) == s {
			return g
		}
	}
	return ""
}

// BookingDraft is the in-progress booking edited across wizard steps.
type BookingDraft struct {
	Source        string `json:"source"`
	Destination   string `json:"destination"`
	Date          string `json:"date"`
	Bus           string `json:"bus"`
	PassengerName string `json:"passengerName"`
	Age           string `json:"age"`
	Gender        Gender `json:"gender"`
}

// TicketPayload is what the wizard hands to the ticket screen on completion.
type TicketPayload struct {
	Draft     BookingDraft `json:"draft"`
	BookingID string       `json:"bookingId"`
	Seat      string       `json:"seat"`
}

// RenderedTicket is the ticket screen projection of a draft.
type RenderedTicket struct {
	BookingDraft
	BookingID string `json:"bookingId"`
	Seat      string `json:"seat"`
	Departure string `json:"departure"`
	Fare      int64  `json:"fare"`
	Operator  string `json:"operator"`
}
