package model

// Bubble Tea message types

// ErrorMsg represents an error surfaced to the banner.
type ErrorMsg struct {
	Err error
}

// PollTickMsg fires a screen's polling timer.
type PollTickMsg struct {
	Screen Screen
}

// PollFailedMsg is sent when a list fetch fails. The screen keeps its
// current collection and marks itself stale.
type PollFailedMsg struct {
	Screen Screen
	Seq    int
	Err    error
}

// SessionExpiredMsg is sent when the backend rejects the credential.
// The app stops polling and exits to the login wizard.
type SessionExpiredMsg struct{}

// TenantsLoadedMsg is sent when the tenant list is loaded.
// Cached marks data restored from the local snapshot store rather than
// a live fetch.
type TenantsLoadedMsg struct {
	Seq     int
	Tenants []Tenant
	Cached  bool
}

// TenantDetailLoadedMsg is sent when a tenant profile is loaded.
type TenantDetailLoadedMsg struct {
	Tenant Tenant
}

// TenantSavedMsg is sent after a tenant create or update is acknowledged.
type TenantSavedMsg struct {
	Operation string // register, update
}

// TenantStatusChangedMsg is sent after a block/unblock is acknowledged.
type TenantStatusChangedMsg struct {
	ID     string
	Status string
}

// TableTypesLoadedMsg carries the table-type catalog for the tenant form.
type TableTypesLoadedMsg struct {
	Types []TableType
}

// BookingsLoadedMsg is sent when a tenant's bookings are loaded.
type BookingsLoadedMsg struct {
	Seq      int
	Bookings []Booking
	Cached   bool
}

// BookingDetailLoadedMsg is sent when a single booking is loaded. Err is
// set when the detail fetch failed and Booking carries list-row data
// shown as a fallback.
type BookingDetailLoadedMsg struct {
	Booking Booking
	Err     error
}

// BookingSavedMsg is sent after a booking update is acknowledged.
type BookingSavedMsg struct {
	ID string
}

// BookingDeletedMsg is sent after a booking delete is acknowledged.
type BookingDeletedMsg struct {
	ID string
}

// OrdersLoadedMsg is sent when a tenant's orders are loaded.
type OrdersLoadedMsg struct {
	Seq    int
	Orders []Order
	Cached bool
}

// OrderDetailLoadedMsg is sent when a single order is loaded.
type OrderDetailLoadedMsg struct {
	Order Order
}

// OrderSavedMsg is sent after an order update is acknowledged.
type OrderSavedMsg struct {
	ID string
}

// OrderDeletedMsg is sent after an order is removed.
type OrderDeletedMsg struct {
	ID string
}

// CallLogsLoadedMsg is sent when a tenant's call logs are loaded.
type CallLogsLoadedMsg struct {
	Seq    int
	Calls  []CallLog
	Cached bool
}

// FeedbackLoadedMsg is sent when a tenant's feedback list is loaded.
type FeedbackLoadedMsg struct {
	Seq      int
	Feedback []Feedback
	Cached   bool
}

// FeedbackVisibilityMsg is sent after a hide/show toggle is acknowledged.
// The screen patches the record locally, then the next poll re-syncs.
type FeedbackVisibilityMsg struct {
	ID        string
	IsVisible bool
}

// MenusLoadedMsg is sent when a tenant's menu items and categories load.
type MenusLoadedMsg struct {
	Seq        int
	Items      []MenuItem
	Categories []MenuCategory
	Cached     bool
}

// MenuItemSavedMsg is sent after a dish create or update is acknowledged.
type MenuItemSavedMsg struct {
	Operation string // create, update
}

// MenuItemDeletedMsg is sent after a dish delete is acknowledged.
type MenuItemDeletedMsg struct {
	ID string
}

// RecordingsLoadedMsg is sent when the audio recording list is loaded.
type RecordingsLoadedMsg struct {
	Seq        int
	Recordings []Recording
	Cached     bool
}

// FormCancelledMsg is sent when a form is cancelled.
type FormCancelledMsg struct{}

// PasswordChangedMsg is sent after the admin's password change is
// acknowledged.
type PasswordChangedMsg struct{}

// Screen represents different app screens.
type Screen int

const (
	ScreenTenants Screen = iota
	ScreenTenantDetail
	ScreenTenantForm
	ScreenBookings
	ScreenBookingDetail
	ScreenBookingForm
	ScreenOrders
	ScreenOrderDetail
	ScreenCallLogs
	ScreenCallLogDetail
	ScreenFeedback
	ScreenMenus
	ScreenMenuForm
	ScreenRecordings
	ScreenPasswordForm
)

// String names screens for logging and snapshot keys.
func (s Screen) String() string {
	switch s {
	case ScreenTenants:
		return "tenants"
	case ScreenTenantDetail:
		return "tenant_detail"
	case ScreenTenantForm:
		return "tenant_form"
	case ScreenBookings:
		return "bookings"
	case ScreenBookingDetail:
		return "booking_detail"
	case ScreenBookingForm:
		return "booking_form"
	case ScreenOrders:
		return "orders"
	case ScreenOrderDetail:
		return "order_detail"
	case ScreenCallLogs:
		return "call_logs"
	case ScreenCallLogDetail:
		return "call_log_detail"
	case ScreenFeedback:
		return "feedback"
	case ScreenMenus:
		return "menus"
	case ScreenMenuForm:
		return "menu_form"
	case ScreenRecordings:
		return "recordings"
	case ScreenPasswordForm:
		return "password_form"
	default:
		return "unknown"
	}
}

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNav Mode = iota
	ModeInsert
)
