package main

import (
	"fmt"
	"strings"

	"transit/internal/domain"
	"transit/internal/domain/models"
	"transit/internal/repositories"
	"transit/internal/services"
	"transit/internal/utils"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type field struct {
	name  string
	label string
}

// stepFields are the text inputs shown on each step. The bus step has none;
// it is a list picked with the arrow keys.
var stepFields = map[services.WizardStep][]field{
	services.StepJourney: {
		{services.FieldSource, "Source city"},
		{services.FieldDestination, "Destination city"},
		{services.FieldDate, "Journey date (YYYY-MM-DD)"},
	},
	services.StepPassenger: {
		{services.FieldPassengerName, "Passenger name"},
		{services.FieldAge, "Age"},
		{services.FieldGender, "Gender (male/female/other)"},
	},
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("35"))
	activeStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	ticketStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

// model is the bubbletea model for the booking wizard. All booking rules
// live in services.Transition; the model only maps keys to wizard events.
type model struct {
	state   services.WizardState
	buses   []models.BusOption
	tickets services.TicketService

	fields []field
	inputs []textinput.Model
	focus  int
	cursor int

	notice *domain.Notice
	ticket *models.RenderedTicket
	exited bool
}

func newModel(catalog repositories.CatalogRepository, tickets services.TicketService) model {
	m := model{
		state:   services.NewWizardState(),
		buses:   catalog.BusOptions(),
		tickets: tickets,
	}
	m.loadStep()
	return m
}

// loadStep rebuilds the inputs for the current step from the draft, so
// going back shows what was typed before.
func (m *model) loadStep() {
	m.fields = stepFields[m.state.Step]
	m.inputs = make([]textinput.Model, len(m.fields))
	for i, f := range m.fields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = f.label
		in.SetValue(draftValue(m.state.Draft, f.name))
		m.inputs[i] = in
	}
	m.focus = 0
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}

	m.cursor = 0
	for i, b := range m.buses {
		if b.Name == m.state.Draft.Bus {
			m.cursor = i
		}
	}
}

func draftValue(d models.BookingDraft, name string) string {
	switch name {
	case services.FieldSource:
		return d.Source
	case services.FieldDestination:
		return d.Destination
	case services.FieldDate:
		return d.Date
	case services.FieldBus:
		return d.Bus
	case services.FieldPassengerName:
		return d.PassengerName
	case services.FieldAge:
		return d.Age
	case services.FieldGender:
		return string(d.Gender)
	}
	return ""
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocused(msg)
	}

	switch key.Type {
	case tea.KeyCtrlC:
		m.exited = true
		return m, tea.Quit
	case tea.KeyEsc:
		m.syncDraft()
		return m.apply(services.WizardEvent{Kind: services.EventBack})
	case tea.KeyEnter:
		m.syncDraft()
		return m.apply(services.WizardEvent{Kind: services.EventNext})
	case tea.KeyTab, tea.KeyDown:
		m.move(1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.move(-1)
		return m, nil
	}
	return m.updateFocused(msg)
}

func (m model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(m.inputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// syncDraft feeds what is on screen into the wizard as edit events. It runs
// before both Next and Back so leaving a step never drops typed input.
func (m *model) syncDraft() {
	events := make([]services.WizardEvent, 0, len(m.inputs)+1)
	for i, f := range m.fields {
		events = append(events, services.WizardEvent{Kind: services.EventEdit, Field: f.name, Value: m.inputs[i].Value()})
	}
	if m.state.Step == services.StepBusSelect && len(m.buses) > 0 {
		events = append(events, services.WizardEvent{Kind: services.EventEdit, Field: services.FieldBus, Value: m.buses[m.cursor].Name})
	}
	m.state, _ = services.ApplyAll(m.state, events...)
}

func (m *model) move(delta int) {
	if m.state.Step == services.StepBusSelect {
		m.cursor = clamp(m.cursor+delta, 0, len(m.buses)-1)
		return
	}
	if len(m.inputs) == 0 {
		return
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (m model) apply(event services.WizardEvent) (tea.Model, tea.Cmd) {
	before := m.state.Step
	state, outcome := services.Transition(m.state, event)
	m.state = state
	m.notice = outcome.Notice

	switch outcome.Kind {
	case services.OutcomeExited:
		m.exited = true
		return m, tea.Quit
	case services.OutcomeCompleted:
		p := m.tickets.Issue(*outcome.Draft)
		t := m.tickets.Render(&p)
		m.ticket = &t
		return m, tea.Quit
	}

	if m.state.Step != before {
		m.loadStep()
	}
	return m, nil
}

func (m model) View() string {
	if m.ticket != nil || m.exited {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Book Ticket"))
	b.WriteString("\n\n")

	steps := make([]string, 0, len(services.WizardSteps))
	for _, s := range services.WizardSteps {
		label := fmt.Sprintf("%d. %s", int(s), s.Label())
		if s <= m.state.Step {
			steps = append(steps, activeStyle.Render(label))
		} else {
			steps = append(steps, mutedStyle.Render(label))
		}
	}
	b.WriteString(strings.Join(steps, "  →  "))
	b.WriteString("\n\n")

	if m.state.Step == services.StepBusSelect {
		for i, bus := range m.buses {
			marker := "  "
			line := fmt.Sprintf("%-18s Departure: %s  %s  %s", bus.Name, bus.Departure, utils.FormatRupees(bus.Fare), bus.Availability)
			if i == m.cursor {
				marker = "> "
				line = activeStyle.Render(line)
			}
			b.WriteString(marker + line + "\n")
		}
	} else {
		for i, f := range m.fields {
			b.WriteString(mutedStyle.Render(f.label))
			b.WriteString("\n")
			b.WriteString(m.inputs[i].View())
			b.WriteString("\n\n")
		}
	}

	if m.notice != nil {
		style := successStyle
		if m.notice.Kind == domain.NoticeError {
			style = errorStyle
		}
		b.WriteString("\n" + style.Render(m.notice.Message) + "\n")
	}
	b.WriteString("\n" + mutedStyle.Render("enter next · esc back · tab/↑↓ move · ctrl+c quit") + "\n")
	return b.String()
}

// renderTicket formats a finished ticket for printing after the program
// exits.
func renderTicket(t models.RenderedTicket) string {
	rows := [][2]string{
		{"Booking ID", t.BookingID},
		{"Passenger Name", t.PassengerName},
		{"Bus Number", t.Bus},
		{"From", t.Source},
		{"To", t.Destination},
		{"Date", t.Date},
		{"Departure", t.Departure},
		{"Seat Number", t.Seat},
		{"Fare", utils.FormatRupees(t.Fare)},
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(t.Operator+" · Smart Transit") + "\n\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "%-16s %s\n", r[0], r[1])
	}
	b.WriteString("\n" + mutedStyle.Render("Show this ticket to the conductor during your journey"))
	return ticketStyle.Render(b.String())
}
