package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"tavolo/internal/api"
	"tavolo/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	bfName = iota
	bfPhone
	bfTable
	bfTime
	bfGuests
	bfStatus
	bfFieldCount
)

// BookingFormModel edits a reservation.
type BookingFormModel struct {
	client    *api.Client
	bookingID string

	inputs       []textinput.Model
	focusedField int
	error        string
}

func NewBookingFormModel(client *api.Client, b model.Booking) *BookingFormModel {
	inputs := make([]textinput.Model, bfFieldCount)
	inputs[bfName] = newFormInput("Customer name", 100)
	inputs[bfPhone] = newFormInput("Phone", 20)
	inputs[bfTable] = newFormInput("Table", 10)
	inputs[bfTime] = newFormInput("19:30", 10)
	inputs[bfGuests] = newFormInput("2", 3)
	inputs[bfStatus] = newFormInput("Confirmed, Pending or Cancelled", 12)

	inputs[bfName].SetValue(b.CustomerName)
	inputs[bfPhone].SetValue(b.CustomerPhone)
	inputs[bfTable].SetValue(b.TableNo)
	inputs[bfTime].SetValue(b.BookingTime)
	inputs[bfGuests].SetValue(strconv.Itoa(b.NoOfPerson))
	inputs[bfStatus].SetValue(b.Status)
	inputs[bfName].Focus()

	return &BookingFormModel{
		client:    client,
		bookingID: b.ID,
		inputs:    inputs,
	}
}

func (m BookingFormModel) Update(msg tea.KeyMsg) (BookingFormModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, func() tea.Msg { return model.FormCancelledMsg{} }
	case "ctrl+s":
		return m, m.save()
	case "tab", "enter":
		m.nextField()
		return m, nil
	case "shift+tab":
		m.prevField()
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focusedField], cmd = m.inputs[m.focusedField].Update(msg)
	return m, cmd
}

func (m *BookingFormModel) nextField() {
	m.inputs[m.focusedField].Blur()
	m.focusedField = (m.focusedField + 1) % len(m.inputs)
	m.inputs[m.focusedField].Focus()
}

func (m *BookingFormModel) prevField() {
	m.inputs[m.focusedField].Blur()
	m.focusedField--
	if m.focusedField < 0 {
		m.focusedField = len(m.inputs) - 1
	}
	m.inputs[m.focusedField].Focus()
}

func (m *BookingFormModel) View(width, height int) string {
	var fields []string
	fields = append(fields, renderFormField("Customer *", m.inputs[bfName], m.focusedField == bfName))
	fields = append(fields, renderFormField("Phone", m.inputs[bfPhone], m.focusedField == bfPhone))
	fields = append(fields, renderFormField("Table", m.inputs[bfTable], m.focusedField == bfTable))
	fields = append(fields, renderFormField("Time", m.inputs[bfTime], m.focusedField == bfTime))
	fields = append(fields, renderFormField("Guests", m.inputs[bfGuests], m.focusedField == bfGuests))
	fields = append(fields, renderFormField("Status", m.inputs[bfStatus], m.focusedField == bfStatus))

	return PanelStyle.
		Width(width - 4).
		Height(height - 4).
		Render(joinFields(fields, m.error))
}

func (m *BookingFormModel) save() tea.Cmd {
	name := strings.TrimSpace(m.inputs[bfName].Value())
	guestsRaw := strings.TrimSpace(m.inputs[bfGuests].Value())
	status := strings.TrimSpace(m.inputs[bfStatus].Value())

	return func() tea.Msg {
		if name == "" {
			return model.ErrorMsg{Err: fmt.Errorf("customer name is required")}
		}
		guests, err := strconv.Atoi(guestsRaw)
		if err != nil || guests < 1 {
			return model.ErrorMsg{Err: fmt.Errorf("guests must be a positive number")}
		}
		switch status {
		case model.BookingConfirmed, model.BookingPending, model.BookingCancelled:
		default:
			return model.ErrorMsg{Err: fmt.Errorf("status must be Confirmed, Pending or Cancelled")}
		}

		err = m.client.UpdateBooking(context.Background(), m.bookingID, model.UpdateBooking{
			CustomerName:  name,
			CustomerPhone: strings.TrimSpace(m.inputs[bfPhone].Value()),
			TableNo:       strings.TrimSpace(m.inputs[bfTable].Value()),
			BookingTime:   strings.TrimSpace(m.inputs[bfTime].Value()),
			NoOfPerson:    guests,
			Status:        status,
		})
		if err != nil {
			return mutationErr("update booking", err)
		}
		return model.BookingSavedMsg{ID: m.bookingID}
	}
}
