package ui

import (
	"time"

	"tavolo/internal/listview"
	"tavolo/internal/model"
	"tavolo/internal/util"
)

// RecordingsModel lists stored call audio files.
type RecordingsModel struct {
	*listScreen[model.Recording]
}

func NewRecordingsModel(interval time.Duration) *RecordingsModel {
	cfg := listview.Config[model.Recording]{
		SearchFields:        func(r model.Recording) []string { return []string{r.ID, r.Filename} },
		CreatedAt:           func(r model.Recording) time.Time { return r.CreatedAt },
		ResetOnFilterChange: true,
		PageSize:            listview.DefaultPageSize,
		PollInterval:        interval,
	}
	columns := []column[model.Recording]{
		{label: "file", width: 44, cell: func(r model.Recording) string { return r.Filename }},
		{label: "recorded", width: 14, cell: func(r model.Recording) string { return util.FormatTimestamp(r.CreatedAt) }},
	}
	dates := []string{"", "today", "yesterday", "week", "month", "last-month"}
	return &RecordingsModel{newListScreen("Recordings", cfg, columns, nil, dates)}
}
