package ui

import (
	"strings"
	"time"

	"tavolo/internal/listview"
	"tavolo/internal/model"
	"tavolo/internal/util"

	"github.com/charmbracelet/lipgloss"
)

// CallLogsModel is the AI phone-assistant activity screen.
type CallLogsModel struct {
	*listScreen[model.CallLog]
}

func NewCallLogsModel(interval time.Duration) *CallLogsModel {
	cfg := listview.Config[model.CallLog]{
		SearchFields: func(c model.CallLog) []string {
			return []string{c.ID, c.CallerName, c.CallerNumber, c.Purpose}
		},
		Status:              func(c model.CallLog) string { return c.CallType },
		CreatedAt:           func(c model.CallLog) time.Time { return c.CalledAt },
		ResetOnFilterChange: true,
		PageSize:            listview.DefaultPageSize,
		PollInterval:        interval,
	}
	columns := []column[model.CallLog]{
		{label: "caller", width: 20, cell: func(c model.CallLog) string { return c.CallerName }},
		{label: "number", width: 15, cell: func(c model.CallLog) string { return c.CallerNumber }},
		{label: "type", width: 10, cell: func(c model.CallLog) string { return c.CallType }},
		{label: "duration", width: 9, cell: func(c model.CallLog) string { return c.CallDuration }},
		{label: "when", width: 13, cell: func(c model.CallLog) string { return util.FormatTimestamp(c.CalledAt) }},
		{label: "purpose", width: 24, cell: func(c model.CallLog) string { return c.Purpose }},
	}
	tabs := []string{listview.TabAll, "incoming", "outgoing"}
	dates := []string{"", "today", "yesterday", "week", "month", "last-month"}
	return &CallLogsModel{newListScreen("Call logs", cfg, columns, tabs, dates)}
}

// CallLogDetailModel shows one call's transcript.
type CallLogDetailModel struct {
	log model.CallLog
}

func NewCallLogDetailModel(log model.CallLog) *CallLogDetailModel {
	return &CallLogDetailModel{log: log}
}

func (m *CallLogDetailModel) View(width, height int) string {
	var b strings.Builder
	b.WriteString(LabelStyle.Render("Caller: "))
	b.WriteString(m.log.CallerName + "  " + m.log.CallerNumber + "\n")
	b.WriteString(LabelStyle.Render("Type: "))
	b.WriteString(m.log.CallType + "  ")
	b.WriteString(LabelStyle.Render("Duration: "))
	b.WriteString(m.log.CallDuration + "\n")
	b.WriteString(LabelStyle.Render("When: "))
	b.WriteString(util.FormatTimestamp(m.log.CalledAt) + "\n")
	if m.log.Purpose != "" {
		b.WriteString(LabelStyle.Render("Purpose: "))
		b.WriteString(m.log.Purpose + "\n")
	}
	b.WriteString("\n")
	b.WriteString(LabelStyle.Render("Transcript") + "\n\n")
	transcript := m.log.CallConversation
	if strings.TrimSpace(transcript) == "" {
		transcript = EmptyStateStyle.Render("No transcript recorded.")
	}
	b.WriteString(transcript)

	return PanelStyle.Width(width - 4).Render(lipgloss.NewStyle().MaxHeight(height).Render(b.String()))
}
