package ui

import (
	"sort"
	"time"

	"tavolo/internal/listview"
	"tavolo/internal/model"
	"tavolo/internal/util"

	tea "github.com/charmbracelet/bubbletea"
)

// MenusModel is the menu-management screen. "c" cycles through the
// categories present in the loaded items.
type MenusModel struct {
	*listScreen[model.MenuItem]
	categories []string
	catIdx     int
}

func NewMenusModel(interval time.Duration) *MenusModel {
	cfg := listview.Config[model.MenuItem]{
		SearchFields: func(i model.MenuItem) []string {
			return []string{i.ID, i.Name, i.Category, i.Description}
		},
		Category: func(i model.MenuItem) string { return i.Category },
		Status: func(i model.MenuItem) string {
			if i.IsAvailable {
				return "available"
			}
			return "unavailable"
		},
		CreatedAt:           func(i model.MenuItem) time.Time { return i.CreatedAt },
		ResetOnFilterChange: true,
		PageSize:            listview.DefaultPageSize,
		PollInterval:        interval,
	}
	columns := []column[model.MenuItem]{
		{label: "dish", width: 24, cell: func(i model.MenuItem) string { return i.Name }},
		{label: "category", width: 16, cell: func(i model.MenuItem) string { return i.Category }},
		{label: "price", width: 10, cell: func(i model.MenuItem) string { return util.FormatMoney(i.Price) }},
		{label: "status", width: 12, cell: func(i model.MenuItem) string {
			if i.IsAvailable {
				return "available"
			}
			return "unavailable"
		}},
		{label: "description", width: 30, cell: func(i model.MenuItem) string { return i.Description }},
	}
	tabs := []string{listview.TabAll, "available", "unavailable"}
	return &MenusModel{listScreen: newListScreen("Menu items", cfg, columns, tabs, nil)}
}

// SetItems replaces the backing rows and recomputes the category cycle.
func (m *MenusModel) SetItems(items []model.MenuItem, categories []model.MenuCategory, now time.Time) {
	seen := map[string]bool{}
	m.categories = m.categories[:0]
	for _, c := range categories {
		if c.Name != "" && !seen[c.Name] {
			seen[c.Name] = true
			m.categories = append(m.categories, c.Name)
		}
	}
	for _, i := range items {
		if i.Category != "" && !seen[i.Category] {
			seen[i.Category] = true
			m.categories = append(m.categories, i.Category)
		}
	}
	sort.Strings(m.categories)
	m.SetRows(items, now)
}

// HandleKey adds the category cycle on top of the shared list keys.
func (m *MenusModel) HandleKey(msg tea.KeyMsg, now time.Time) (tea.Cmd, bool) {
	if !m.searching && !m.rangeInput && msg.String() == "c" && len(m.categories) > 0 {
		m.catIdx = (m.catIdx + 1) % (len(m.categories) + 1)
		if m.catIdx == 0 {
			m.filters.Category = ""
		} else {
			m.filters.Category = m.categories[m.catIdx-1]
		}
		m.rebuild(now, true)
		return nil, true
	}
	return m.listScreen.HandleKey(msg, now)
}
