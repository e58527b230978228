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
	mfName = iota
	mfCategory
	mfPrice
	mfDescription
	mfAvailable
	mfFieldCount
)

// MenuFormModel creates or edits a dish.
type MenuFormModel struct {
	client       *api.Client
	restaurantID string
	itemID       string // empty for create

	inputs       []textinput.Model
	focusedField int
	error        string
}

func NewMenuFormModel(client *api.Client, restaurantID string) *MenuFormModel {
	inputs := make([]textinput.Model, mfFieldCount)
	inputs[mfName] = newFormInput("Dish name", 100)
	inputs[mfCategory] = newFormInput("Category", 60)
	inputs[mfPrice] = newFormInput("12.50", 10)
	inputs[mfDescription] = newFormInput("Description", 200)
	inputs[mfAvailable] = newFormInput("yes / no", 3)
	inputs[mfAvailable].SetValue("yes")
	inputs[mfName].Focus()

	return &MenuFormModel{
		client:       client,
		restaurantID: restaurantID,
		inputs:       inputs,
	}
}

// LoadItem switches the form into edit mode.
func (m *MenuFormModel) LoadItem(item model.MenuItem) {
	m.itemID = item.ID
	m.inputs[mfName].SetValue(item.Name)
	m.inputs[mfCategory].SetValue(item.Category)
	m.inputs[mfPrice].SetValue(strconv.FormatFloat(item.Price, 'f', 2, 64))
	m.inputs[mfDescription].SetValue(item.Description)
	if item.IsAvailable {
		m.inputs[mfAvailable].SetValue("yes")
	} else {
		m.inputs[mfAvailable].SetValue("no")
	}
}

func (m MenuFormModel) Update(msg tea.KeyMsg) (MenuFormModel, tea.Cmd) {
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

func (m *MenuFormModel) nextField() {
	m.inputs[m.focusedField].Blur()
	m.focusedField = (m.focusedField + 1) % len(m.inputs)
	m.inputs[m.focusedField].Focus()
}

func (m *MenuFormModel) prevField() {
	m.inputs[m.focusedField].Blur()
	m.focusedField--
	if m.focusedField < 0 {
		m.focusedField = len(m.inputs) - 1
	}
	m.inputs[m.focusedField].Focus()
}

func (m *MenuFormModel) View(width, height int) string {
	var fields []string
	fields = append(fields, renderFormField("Dish *", m.inputs[mfName], m.focusedField == mfName))
	fields = append(fields, renderFormField("Category *", m.inputs[mfCategory], m.focusedField == mfCategory))
	fields = append(fields, renderFormField("Price *", m.inputs[mfPrice], m.focusedField == mfPrice))
	fields = append(fields, renderFormField("Description", m.inputs[mfDescription], m.focusedField == mfDescription))
	fields = append(fields, renderFormField("Available", m.inputs[mfAvailable], m.focusedField == mfAvailable))

	return PanelStyle.
		Width(width - 4).
		Height(height - 4).
		Render(joinFields(fields, m.error))
}

func (m *MenuFormModel) save() tea.Cmd {
	name := strings.TrimSpace(m.inputs[mfName].Value())
	category := strings.TrimSpace(m.inputs[mfCategory].Value())
	priceRaw := strings.TrimSpace(m.inputs[mfPrice].Value())
	available := strings.EqualFold(strings.TrimSpace(m.inputs[mfAvailable].Value()), "yes")

	return func() tea.Msg {
		if name == "" || category == "" {
			return model.ErrorMsg{Err: fmt.Errorf("dish name and category are required")}
		}
		price, err := strconv.ParseFloat(priceRaw, 64)
		if err != nil || price < 0 {
			return model.ErrorMsg{Err: fmt.Errorf("price must be a non-negative number")}
		}

		item := model.NewMenuItem{
			Name:        name,
			Category:    category,
			Price:       price,
			Description: strings.TrimSpace(m.inputs[mfDescription].Value()),
			IsAvailable: available,
		}

		ctx := context.Background()
		if m.itemID != "" {
			if err := m.client.UpdateMenuItem(ctx, m.itemID, item); err != nil {
				return mutationErr("update dish", err)
			}
			return model.MenuItemSavedMsg{Operation: "update"}
		}
		if err := m.client.CreateMenuItem(ctx, m.restaurantID, item); err != nil {
			return mutationErr("create dish", err)
		}
		return model.MenuItemSavedMsg{Operation: "create"}
	}
}
