package ui

import (
	"strconv"
	"time"

	"tavolo/internal/listview"
	"tavolo/internal/model"
	"tavolo/internal/util"

	tea "github.com/charmbracelet/bubbletea"
)

// FeedbackModel is the customer-reviews screen. Its date windows treat the
// end day as part of the range, and "r" cycles a minimum-free exact rating
// filter through the categorical dimension.
type FeedbackModel struct {
	*listScreen[model.Feedback]
	rating int // 0 means any
}

func NewFeedbackModel(interval time.Duration) *FeedbackModel {
	cfg := listview.Config[model.Feedback]{
		SearchFields: func(f model.Feedback) []string {
			return []string{f.ID, f.Username, f.Customer, f.Comments, f.OrderID}
		},
		Category:            func(f model.Feedback) string { return strconv.Itoa(f.Rating) },
		Status:              func(f model.Feedback) string { return util.FormatVisibility(f.IsVisible) },
		CreatedAt:           func(f model.Feedback) time.Time { return f.Date },
		IncludeEnd:          true,
		ResetOnFilterChange: true,
		PageSize:            listview.DefaultPageSize,
		PollInterval:        interval,
	}
	columns := []column[model.Feedback]{
		{label: "customer", width: 18, cell: func(f model.Feedback) string { return f.Customer }},
		{label: "rating", width: 8, cell: func(f model.Feedback) string { return util.FormatRatingStars(f.Rating) }},
		{label: "order", width: 10, cell: func(f model.Feedback) string { return f.OrderID }},
		{label: "date", width: 13, cell: func(f model.Feedback) string { return util.FormatTimestamp(f.Date) }},
		{label: "shown", width: 8, cell: func(f model.Feedback) string { return util.FormatVisibility(f.IsVisible) }},
		{label: "comments", width: 30, cell: func(f model.Feedback) string { return f.Comments }},
	}
	tabs := []string{listview.TabAll, "visible", "hidden"}
	dates := []string{"", "today", "yesterday", "last7days", "last30days", "last-month"}
	return &FeedbackModel{listScreen: newListScreen("Feedback", cfg, columns, tabs, dates)}
}

// HandleKey adds the rating cycle on top of the shared list keys.
func (m *FeedbackModel) HandleKey(msg tea.KeyMsg, now time.Time) (tea.Cmd, bool) {
	if !m.searching && !m.rangeInput && msg.String() == "r" {
		m.rating = (m.rating + 1) % 6
		if m.rating == 0 {
			m.filters.Category = ""
		} else {
			m.filters.Category = strconv.Itoa(m.rating)
		}
		m.rebuild(now, true)
		return nil, true
	}
	return m.listScreen.HandleKey(msg, now)
}

// SetVisibility patches one row in place so the toggle shows immediately;
// the next poll reconciles with the backend.
func (m *FeedbackModel) SetVisibility(id string, visible bool, now time.Time) {
	for i := range m.all {
		if m.all[i].ID == id {
			m.all[i].IsVisible = visible
		}
	}
	m.rebuild(now, false)
}
