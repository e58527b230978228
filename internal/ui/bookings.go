package ui

import (
	"strconv"
	"strings"
	"time"

	"tavolo/internal/listview"
	"tavolo/internal/model"
	"tavolo/internal/util"
)

// BookingsModel is the reservations list screen. Its pending tab hides
// reservations whose business date has already passed.
type BookingsModel struct {
	*listScreen[model.Booking]
}

func NewBookingsModel(interval time.Duration) *BookingsModel {
	cfg := listview.Config[model.Booking]{
		SearchFields: func(b model.Booking) []string {
			return []string{b.ID, b.UserID, b.CustomerName, b.CustomerPhone}
		},
		Status:              func(b model.Booking) string { return b.Status },
		CreatedAt:           func(b model.Booking) time.Time { return b.CreatedAt },
		BusinessDate:        func(b model.Booking) string { return b.Date },
		ExcludeStalePending: true,
		ResetOnFilterChange: true,
		PageSize:            listview.DefaultPageSize,
		PollInterval:        interval,
	}
	columns := []column[model.Booking]{
		{label: "customer", width: 20, cell: func(b model.Booking) string { return b.CustomerName }},
		{label: "phone", width: 14, cell: func(b model.Booking) string { return b.CustomerPhone }},
		{label: "date", width: 12, cell: func(b model.Booking) string { return b.Date }},
		{label: "time", width: 8, cell: func(b model.Booking) string { return b.BookingTime }},
		{label: "table", width: 7, cell: func(b model.Booking) string { return b.TableNo }},
		{label: "guests", width: 7, cell: func(b model.Booking) string { return strconv.Itoa(b.NoOfPerson) }},
		{label: "status", width: 11, cell: func(b model.Booking) string { return b.Status }},
	}
	tabs := []string{listview.TabAll, "confirmed", "pending", "cancelled"}
	dates := []string{"", "today", "yesterday", "tomorrow", "week", "month", "last-month"}
	return &BookingsModel{newListScreen("Bookings", cfg, columns, tabs, dates)}
}

// rowByID finds a booking in the unfiltered backing rows.
func (m *BookingsModel) rowByID(id string) (model.Booking, bool) {
	for _, b := range m.all {
		if b.ID == id {
			return b, true
		}
	}
	return model.Booking{}, false
}

// BookingDetailModel shows one reservation.
type BookingDetailModel struct {
	booking model.Booking
}

func NewBookingDetailModel(b model.Booking) *BookingDetailModel {
	return &BookingDetailModel{booking: b}
}

func (m *BookingDetailModel) Booking() model.Booking { return m.booking }

func (m *BookingDetailModel) View(width, height int) string {
	b := m.booking
	var sb strings.Builder
	sb.WriteString(LabelStyle.Render("Reservation for "+b.CustomerName) + "\n\n")
	writeDetailRow(&sb, "Phone", b.CustomerPhone)
	writeDetailRow(&sb, "Date", util.FormatDate(b.Date))
	writeDetailRow(&sb, "Time", b.BookingTime)
	writeDetailRow(&sb, "Table", b.TableNo)
	writeDetailRow(&sb, "Guests", strconv.Itoa(b.NoOfPerson))
	writeDetailRow(&sb, "Status", b.Status)
	writeDetailRow(&sb, "Created", util.FormatTimestamp(b.CreatedAt))
	return PanelStyle.Width(width - 4).Height(height - 4).Render(sb.String())
}
