package ui

import (
	"context"
	"fmt"

	"tavolo/internal/api"
	"tavolo/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pfCurrent = iota
	pfNew
	pfConfirm
	pfFieldCount
)

// PasswordFormModel changes the signed-in admin's password.
type PasswordFormModel struct {
	client *api.Client

	inputs       []textinput.Model
	focusedField int
	error        string
}

func NewPasswordFormModel(client *api.Client) *PasswordFormModel {
	inputs := make([]textinput.Model, pfFieldCount)
	inputs[pfCurrent] = newFormInput("Current password", 120)
	inputs[pfNew] = newFormInput("New password", 120)
	inputs[pfConfirm] = newFormInput("Repeat new password", 120)
	for i := range inputs {
		inputs[i].EchoMode = textinput.EchoPassword
	}
	inputs[pfCurrent].Focus()

	return &PasswordFormModel{
		client: client,
		inputs: inputs,
	}
}

func (m PasswordFormModel) Update(msg tea.KeyMsg) (PasswordFormModel, tea.Cmd) {
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

func (m *PasswordFormModel) nextField() {
	m.inputs[m.focusedField].Blur()
	m.focusedField = (m.focusedField + 1) % len(m.inputs)
	m.inputs[m.focusedField].Focus()
}

func (m *PasswordFormModel) prevField() {
	m.inputs[m.focusedField].Blur()
	m.focusedField--
	if m.focusedField < 0 {
		m.focusedField = len(m.inputs) - 1
	}
	m.inputs[m.focusedField].Focus()
}

func (m *PasswordFormModel) View(width, height int) string {
	var fields []string
	fields = append(fields, renderFormField("Current password *", m.inputs[pfCurrent], m.focusedField == pfCurrent))
	fields = append(fields, renderFormField("New password *", m.inputs[pfNew], m.focusedField == pfNew))
	fields = append(fields, renderFormField("Confirm new password *", m.inputs[pfConfirm], m.focusedField == pfConfirm))

	return PanelStyle.
		Width(width - 4).
		Height(height - 4).
		Render(joinFields(fields, m.error))
}

func (m *PasswordFormModel) save() tea.Cmd {
	current := m.inputs[pfCurrent].Value()
	next := m.inputs[pfNew].Value()
	confirm := m.inputs[pfConfirm].Value()

	return func() tea.Msg {
		if current == "" || next == "" {
			return model.ErrorMsg{Err: fmt.Errorf("current and new passwords are required")}
		}
		if next != confirm {
			return model.ErrorMsg{Err: fmt.Errorf("new passwords do not match")}
		}
		if next == current {
			return model.ErrorMsg{Err: fmt.Errorf("the new password must differ from the current one")}
		}
		if err := m.client.ChangePassword(context.Background(), current, next); err != nil {
			return mutationErr("change password", err)
		}
		return model.PasswordChangedMsg{}
	}
}
