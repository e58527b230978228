package ui

import (
	"context"
	"fmt"
	"net/mail"
	"strconv"
	"strings"

	"tavolo/internal/api"
	"tavolo/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	tfUsername = iota
	tfEmail
	tfPhone
	tfPassword
	tfRestaurant
	tfAddress
	tfFixedFields
)

// TenantFormModel registers a new restaurant account or edits an existing
// one. Below the profile fields it shows one count input per catalog table
// type; a registration needs at least one type with a positive count.
type TenantFormModel struct {
	client   *api.Client
	tenantID string // empty for registration
	adminID  string

	inputs       []textinput.Model
	types        []model.TableType
	typeInputs   []textinput.Model
	loaded       *model.Tenant
	focusedField int
	error        string
}

func NewTenantFormModel(client *api.Client, adminID string) *TenantFormModel {
	inputs := make([]textinput.Model, tfFixedFields)
	inputs[tfUsername] = newFormInput("Owner username", 60)
	inputs[tfEmail] = newFormInput("owner@restaurant.com", 120)
	inputs[tfPhone] = newFormInput("Phone number", 20)
	inputs[tfPassword] = newFormInput("Initial password", 80)
	inputs[tfPassword].EchoMode = textinput.EchoPassword
	inputs[tfRestaurant] = newFormInput("Restaurant name", 100)
	inputs[tfAddress] = newFormInput("Street address", 200)
	inputs[tfUsername].Focus()

	return &TenantFormModel{
		client:  client,
		adminID: adminID,
		inputs:  inputs,
	}
}

// SetTableTypes installs the catalog rows, one count input each.
func (m *TenantFormModel) SetTableTypes(types []model.TableType) {
	m.types = m.types[:0]
	for _, t := range types {
		if t.Status {
			m.types = append(m.types, t)
		}
	}
	m.typeInputs = make([]textinput.Model, len(m.types))
	for i := range m.typeInputs {
		m.typeInputs[i] = newFormInput("0", 4)
		m.typeInputs[i].Width = 6
	}
	// The catalog usually arrives after LoadTenant; re-seed the counts.
	if m.loaded != nil {
		m.applyCounts(*m.loaded)
	}
}

// LoadTenant switches the form into edit mode.
func (m *TenantFormModel) LoadTenant(t model.Tenant) {
	m.tenantID = t.ID
	m.loaded = &t
	m.inputs[tfUsername].SetValue(t.Username)
	m.inputs[tfEmail].SetValue(t.Email)
	m.inputs[tfPhone].SetValue(t.PhoneNumber)
	m.inputs[tfRestaurant].SetValue(t.RestaurantName)
	m.inputs[tfAddress].SetValue(t.RestaurantAddress)
	m.applyCounts(t)
}

func (m *TenantFormModel) applyCounts(t model.Tenant) {
	for i, catalog := range m.types {
		for _, have := range t.TableTypes {
			if have.ID == catalog.ID || strings.EqualFold(have.Name, catalog.TypeName) {
				m.typeInputs[i].SetValue(strconv.Itoa(have.NoOfTables))
			}
		}
	}
}

func (m *TenantFormModel) fieldCount() int {
	return len(m.inputs) + len(m.typeInputs)
}

func (m *TenantFormModel) input(idx int) *textinput.Model {
	if idx < len(m.inputs) {
		return &m.inputs[idx]
	}
	return &m.typeInputs[idx-len(m.inputs)]
}

func (m TenantFormModel) Update(msg tea.KeyMsg) (TenantFormModel, tea.Cmd) {
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
	in := m.input(m.focusedField)
	*in, cmd = in.Update(msg)
	return m, cmd
}

func (m *TenantFormModel) nextField() {
	m.input(m.focusedField).Blur()
	m.focusedField = (m.focusedField + 1) % m.fieldCount()
	m.input(m.focusedField).Focus()
}

func (m *TenantFormModel) prevField() {
	m.input(m.focusedField).Blur()
	m.focusedField--
	if m.focusedField < 0 {
		m.focusedField = m.fieldCount() - 1
	}
	m.input(m.focusedField).Focus()
}

func (m *TenantFormModel) View(width, height int) string {
	var fields []string
	fields = append(fields, renderFormField("Owner username *", m.inputs[tfUsername], m.focusedField == tfUsername))
	fields = append(fields, renderFormField("Email *", m.inputs[tfEmail], m.focusedField == tfEmail))
	fields = append(fields, renderFormField("Phone", m.inputs[tfPhone], m.focusedField == tfPhone))
	if m.tenantID == "" {
		fields = append(fields, renderFormField("Password *", m.inputs[tfPassword], m.focusedField == tfPassword))
	}
	fields = append(fields, renderFormField("Restaurant name *", m.inputs[tfRestaurant], m.focusedField == tfRestaurant))
	fields = append(fields, renderFormField("Address", m.inputs[tfAddress], m.focusedField == tfAddress))

	if len(m.types) > 0 {
		var rows []string
		rows = append(rows, LabelStyle.Render("Tables per type"))
		for i, t := range m.types {
			rows = append(rows, renderFormField("  "+t.TypeName, m.typeInputs[i], m.focusedField == len(m.inputs)+i))
		}
		fields = append(fields, strings.Join(rows, "\n"))
	}

	return PanelStyle.
		Width(width - 4).
		Height(height - 4).
		Render(joinFields(fields, m.error))
}

func (m *TenantFormModel) collectTableTypes() ([]model.TableTypeConfig, error) {
	var out []model.TableTypeConfig
	for i, t := range m.types {
		raw := strings.TrimSpace(m.typeInputs[i].Value())
		if raw == "" || raw == "0" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("table count for %s must be a non-negative number", t.TypeName)
		}
		if n == 0 {
			continue
		}
		out = append(out, model.TableTypeConfig{
			ID:         t.ID,
			Name:       t.TypeName,
			Status:     true,
			NoOfTables: n,
		})
	}
	return out, nil
}

func (m *TenantFormModel) save() tea.Cmd {
	username := strings.TrimSpace(m.inputs[tfUsername].Value())
	email := strings.TrimSpace(m.inputs[tfEmail].Value())
	password := m.inputs[tfPassword].Value()
	restaurant := strings.TrimSpace(m.inputs[tfRestaurant].Value())

	return func() tea.Msg {
		if username == "" || restaurant == "" {
			return model.ErrorMsg{Err: fmt.Errorf("owner username and restaurant name are required")}
		}
		if _, err := mail.ParseAddress(email); err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("a valid email is required")}
		}

		types, err := m.collectTableTypes()
		if err != nil {
			return model.ErrorMsg{Err: err}
		}

		ctx := context.Background()
		if m.tenantID != "" {
			err := m.client.UpdateTenantProfile(ctx, m.tenantID, model.UpdateTenant{
				Username:          username,
				Email:             email,
				PhoneNumber:       strings.TrimSpace(m.inputs[tfPhone].Value()),
				RestaurantName:    restaurant,
				RestaurantAddress: strings.TrimSpace(m.inputs[tfAddress].Value()),
				TableTypes:        types,
			})
			if err != nil {
				return mutationErr("update tenant", err)
			}
			return model.TenantSavedMsg{Operation: "update"}
		}

		if password == "" {
			return model.ErrorMsg{Err: fmt.Errorf("an initial password is required")}
		}
		if len(types) == 0 {
			return model.ErrorMsg{Err: fmt.Errorf("assign at least one table type with a positive count")}
		}
		err = m.client.RegisterTenant(ctx, model.NewTenant{
			Username:          username,
			Email:             email,
			PhoneNumber:       strings.TrimSpace(m.inputs[tfPhone].Value()),
			Password:          password,
			RestaurantName:    restaurant,
			RestaurantAddress: strings.TrimSpace(m.inputs[tfAddress].Value()),
			TableTypes:        types,
			CreatedBy:         m.adminID,
		})
		if err != nil {
			return mutationErr("register tenant", err)
		}
		return model.TenantSavedMsg{Operation: "register"}
	}
}
