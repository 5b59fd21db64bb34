package services

import (
	"fmt"

	"transit/internal/domain"
	"transit/internal/domain/models"
)

// WizardStep is the current stage of the booking wizard.
type WizardStep int

const (
	StepJourney   WizardStep = 1
	StepBusSelect WizardStep = 2
	StepPassenger WizardStep = 3
)

// Label is the short name shown in the step indicator.
func (s WizardStep) Label() string {
	switch s {
	case StepJourney:
		return "Journey"
	case StepBusSelect:
		return "Select Bus"
	case StepPassenger:
		return "Passenger"
	default:
		return fmt.Sprintf("Step %d", int(s))
	}
}

// Valid reports whether s is one of the three wizard stages.
func (s WizardStep) Valid() bool {
	return s >= StepJourney && s <= StepPassenger
}

// WizardSteps lists the stages in order, for step indicators.
var WizardSteps = []WizardStep{StepJourney, StepBusSelect, StepPassenger}

// WizardState is everything the wizard owns: where it is and the draft.
type WizardState struct {
	Step  WizardStep          `json:"step"`
	Draft models.BookingDraft `json:"draft"`
}

// NewWizardState returns the initial state: Journey with an empty draft.
func NewWizardState() WizardState {
	return WizardState{Step: StepJourney}
}

type WizardEventKind string

const (
	// EventEdit sets one draft field without validating it.
	EventEdit WizardEventKind = "edit"
	// EventNext advances; on the passenger step it submits the booking.
	EventNext WizardEventKind = "next"
	// EventBack goes one step back, or leaves the wizard from Journey.
	EventBack WizardEventKind = "back"
)

// Draft field names accepted by EventEdit. They match the form input names.
const (
	FieldSource        = "source"
	FieldDestination   = "destination"
	FieldDate          = "date"
	FieldBus           = "bus"
	FieldPassengerName = "passengerName"
	FieldAge           = "age"
	FieldGender        = "gender"
)

type WizardEvent struct {
	Kind  WizardEventKind `json:"kind"`
	Field string          `json:"field,omitempty"`
	Value string          `json:"value,omitempty"`
}

type OutcomeKind string

const (
	OutcomeEdited    OutcomeKind = "edited"
	OutcomeAdvanced  OutcomeKind = "advanced"
	OutcomeRejected  OutcomeKind = "rejected"
	OutcomeRetreated OutcomeKind = "retreated"
	OutcomeExited    OutcomeKind = "exited"
	OutcomeCompleted OutcomeKind = "completed"
)

// WizardOutcome describes what a transition did. Draft is only set on
// OutcomeCompleted and is the copy handed to the ticket screen.
type WizardOutcome struct {
	Kind   OutcomeKind          `json:"kind"`
	Notice *domain.Notice       `json:"notice,omitempty"`
	Draft  *models.BookingDraft `json:"draft,omitempty"`
	Err    error                `json:"-"`
}

const (
	noticeJourneyIncomplete   = "Please fill all fields"
	noticeBusMissing          = "Please select a bus"
	noticePassengerIncomplete = "Please fill all passenger details"

	NoticeBooked = "Ticket booked successfully!"
)

// Transition applies one event to the wizard. It never mutates its input;
// the returned state replaces the old one. After OutcomeCompleted the
// returned state is a fresh wizard and the finished draft lives only in the
// outcome.
func Transition(state WizardState, event WizardEvent) (WizardState, WizardOutcome) {
	if !state.Step.Valid() {
		state.Step = StepJourney
	}

	switch event.Kind {
	case EventEdit:
		draft, err := editDraft(state.Draft, event.Field, event.Value)
		if err != nil {
			return state, rejected(err)
		}
		state.Draft = draft
		return state, WizardOutcome{Kind: OutcomeEdited}

	case EventBack:
		if state.Step == StepJourney {
			return NewWizardState(), WizardOutcome{Kind: OutcomeExited}
		}
		state.Step--
		return state, WizardOutcome{Kind: OutcomeRetreated}

	case EventNext:
		if err := validateStep(state.Step, state.Draft); err != nil {
			return state, rejected(err)
		}
		if state.Step == StepPassenger {
			finished := state.Draft
			return NewWizardState(), WizardOutcome{
				Kind:   OutcomeCompleted,
				Notice: domain.Success(NoticeBooked),
				Draft:  &finished,
			}
		}
		state.Step++
		return state, WizardOutcome{Kind: OutcomeAdvanced}
	}

	return state, rejected(domain.ValidationError{Field: "event", Msg: fmt.Sprintf("unknown wizard event %q", event.Kind)})
}

// ApplyAll folds events over a state and returns the last outcome. It stops
// at the first completion or exit.
func ApplyAll(state WizardState, events ...WizardEvent) (WizardState, WizardOutcome) {
	var outcome WizardOutcome
	for _, ev := range events {
		state, outcome = Transition(state, ev)
		if outcome.Kind == OutcomeCompleted || outcome.Kind == OutcomeExited {
			break
		}
	}
	return state, outcome
}

func rejected(err error) WizardOutcome {
	return WizardOutcome{Kind: OutcomeRejected, Notice: domain.NoticeFromError(err), Err: err}
}

// validateStep checks only the fields that belong to step. Presence is
// literal: a value of spaces is present.
func validateStep(step WizardStep, d models.BookingDraft) error {
	switch step {
	case StepJourney:
		if d.Source == "" || d.Destination == "" || d.Date == "" {
			return domain.ValidationError{Field: "journey", Msg: noticeJourneyIncomplete}
		}
	case StepBusSelect:
		if d.Bus == "" {
			return domain.ValidationError{Field: FieldBus, Msg: noticeBusMissing}
		}
	case StepPassenger:
		if d.PassengerName == "" || d.Age == "" || d.Gender == "" {
			return domain.ValidationError{Field: "passenger", Msg: noticePassengerIncomplete}
		}
	}
	return nil
}

func editDraft(d models.BookingDraft, field, value string) (models.BookingDraft, error) {
	switch field {
	case FieldSource:
		d.Source = value
	case FieldDestination:
		d.Destination = value
	case FieldDate:
		d.Date = value
	case FieldBus:
		d.Bus = value
	case FieldPassengerName:
		d.PassengerName = value
	case FieldAge:
		d.Age = value
	case FieldGender:
		d.Gender = models.ParseGender(value)
	default:
		return d, domain.ValidationError{Field: field, Msg: fmt.Sprintf("unknown field %q", field)}
	}
	return d, nil
}

// DraftFromValues builds a draft from form-style values, e.g. a posted
// wizard form that carries every field. Missing keys stay empty.
func DraftFromValues(get func(key string) string) models.BookingDraft {
	return models.BookingDraft{
		Source:        get(FieldSource),
		Destination:   get(FieldDestination),
		Date:          get(FieldDate),
		Bus:           get(FieldBus),
		PassengerName: get(FieldPassengerName),
		Age:           get(FieldAge),
		Gender:        models.ParseGender(get(FieldGender)),
	}
}
