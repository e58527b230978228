package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"tavolo/internal/api"
	"tavolo/internal/listview"
	"tavolo/internal/model"
	"tavolo/internal/session"
	"tavolo/internal/store"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type listHandler interface {
	HandleKey(msg tea.KeyMsg, now time.Time) (tea.Cmd, bool)
}

// Model is the root Bubble Tea model.
type Model struct {
	client *api.Client
	store  *store.Store
	sess   *session.Session
	log    *slog.Logger

	screen model.Screen
	mode   model.Mode

	width  int
	height int

	error       string
	info        string
	showingHelp bool
	sessionDead bool

	activeTenant     string
	activeTenantName string

	tenants    *TenantsModel
	bookings   *BookingsModel
	orders     *OrdersModel
	callLogs   *CallLogsModel
	feedback   *FeedbackModel
	menus      *MenusModel
	recordings *RecordingsModel

	tenantDetail  *TenantDetailModel
	bookingDetail *BookingDetailModel
	orderDetail   *OrderDetailModel
	callDetail    *CallLogDetailModel

	tenantForm   *TenantFormModel
	bookingForm  *BookingFormModel
	menuForm     *MenuFormModel
	passwordForm *PasswordFormModel

	pollers  map[model.Screen]*listview.Poller
	keys     KeyMap
	prefs    UIPreferences
	interval time.Duration
}

// New creates the root model.
func New(client *api.Client, st *store.Store, sess *session.Session, log *slog.Logger, interval time.Duration) Model {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	prefs := loadUIPreferences()
	now := time.Now()

	m := Model{
		client:       client,
		store:        st,
		sess:         sess,
		log:          log,
		screen:       model.ScreenTenants,
		mode:         model.ModeNav,
		keys:         DefaultKeyMap(),
		prefs:        prefs,
		interval:     interval,
		activeTenant: prefs.ActiveTenant,
		tenants:      NewTenantsModel(interval),
		bookings:     NewBookingsModel(interval),
		orders:       NewOrdersModel(interval),
		callLogs:     NewCallLogsModel(interval),
		feedback:     NewFeedbackModel(interval),
		menus:        NewMenusModel(interval),
		recordings:   NewRecordingsModel(interval),
		pollers:      make(map[model.Screen]*listview.Poller),
	}
	for _, s := range listScreens() {
		m.pollers[s] = listview.NewPoller(interval)
	}
	m.tenants.ApplyPrefs(prefs.Tenants, now)
	m.bookings.ApplyPrefs(prefs.Bookings, now)
	m.orders.ApplyPrefs(prefs.Orders, now)
	m.callLogs.ApplyPrefs(prefs.CallLogs, now)
	m.feedback.ApplyPrefs(prefs.Feedback, now)
	m.menus.ApplyPrefs(prefs.Menus, now)
	m.recordings.ApplyPrefs(prefs.Recordings, now)
	return m
}

func listScreens() []model.Screen {
	return []model.Screen{
		model.ScreenTenants,
		model.ScreenBookings,
		model.ScreenOrders,
		model.ScreenCallLogs,
		model.ScreenFeedback,
		model.ScreenMenus,
		model.ScreenRecordings,
	}
}

// Init loads the cached tenant snapshot, starts the first fetch and the
// polling clock.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadSnapshotCmd(model.ScreenTenants),
		m.refreshCmd(model.ScreenTenants),
		m.tickCmd(),
	)
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return model.PollTickMsg{Screen: m.screen}
	})
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	now := time.Now()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Help) && m.mode == model.ModeNav && !m.searchActive() {
			m.showingHelp = !m.showingHelp
			return m, nil
		}
		if m.showingHelp {
			if msg.String() == "esc" || key.Matches(msg, m.keys.Help) {
				m.showingHelp = false
			}
			return m, nil
		}
		if m.mode == model.ModeNav {
			return m.handleNavMode(msg, now)
		}
		return m.handleInsertMode(msg)

	case model.ErrorMsg:
		m.error = msg.Err.Error()
		m.log.Warn("operation failed", slog.Any("error", msg.Err))
		return m, nil

	case model.PollTickMsg:
		return m.handlePollTick()

	case model.PollFailedMsg:
		return m.handlePollFailed(msg)

	case model.SessionExpiredMsg:
		return m.expireSession()

	case model.TenantsLoadedMsg:
		var cmd tea.Cmd
		if m.applyLoad(model.ScreenTenants, msg.Seq, msg.Cached, now, func() { m.tenants.SetRows(msg.Tenants, now) }) {
			m.syncActiveTenantName(msg.Tenants)
			cmd = m.saveSnapshotCmd(model.ScreenTenants, msg.Tenants, now)
		}
		return m, cmd

	case model.BookingsLoadedMsg:
		var cmd tea.Cmd
		if m.applyLoad(model.ScreenBookings, msg.Seq, msg.Cached, now, func() { m.bookings.SetRows(msg.Bookings, now) }) {
			cmd = m.saveSnapshotCmd(model.ScreenBookings, msg.Bookings, now)
		}
		return m, cmd

	case model.OrdersLoadedMsg:
		var cmd tea.Cmd
		if m.applyLoad(model.ScreenOrders, msg.Seq, msg.Cached, now, func() { m.orders.SetRows(msg.Orders, now) }) {
			cmd = m.saveSnapshotCmd(model.ScreenOrders, msg.Orders, now)
		}
		return m, cmd

	case model.CallLogsLoadedMsg:
		var cmd tea.Cmd
		if m.applyLoad(model.ScreenCallLogs, msg.Seq, msg.Cached, now, func() { m.callLogs.SetRows(msg.Calls, now) }) {
			cmd = m.saveSnapshotCmd(model.ScreenCallLogs, msg.Calls, now)
		}
		return m, cmd

	case model.FeedbackLoadedMsg:
		var cmd tea.Cmd
		if m.applyLoad(model.ScreenFeedback, msg.Seq, msg.Cached, now, func() { m.feedback.SetRows(msg.Feedback, now) }) {
			cmd = m.saveSnapshotCmd(model.ScreenFeedback, msg.Feedback, now)
		}
		return m, cmd

	case model.MenusLoadedMsg:
		var cmd tea.Cmd
		if m.applyLoad(model.ScreenMenus, msg.Seq, msg.Cached, now, func() { m.menus.SetItems(msg.Items, msg.Categories, now) }) {
			cmd = m.saveSnapshotCmd(model.ScreenMenus, msg.Items, now)
		}
		return m, cmd

	case model.RecordingsLoadedMsg:
		var cmd tea.Cmd
		if m.applyLoad(model.ScreenRecordings, msg.Seq, msg.Cached, now, func() { m.recordings.SetRows(msg.Recordings, now) }) {
			cmd = m.saveSnapshotCmd(model.ScreenRecordings, msg.Recordings, now)
		}
		return m, cmd

	case model.TenantDetailLoadedMsg:
		m.tenantDetail = NewTenantDetailModel(msg.Tenant)
		m.screen = model.ScreenTenantDetail
		m.error = ""
		return m, nil

	case model.BookingDetailLoadedMsg:
		m.bookingDetail = NewBookingDetailModel(msg.Booking)
		m.screen = model.ScreenBookingDetail
		if msg.Err != nil {
			m.error = fmt.Sprintf("failed to load booking: %v (showing list data)", msg.Err)
		} else {
			m.error = ""
		}
		return m, nil

	case model.OrderDetailLoadedMsg:
		m.orderDetail = NewOrderDetailModel(msg.Order)
		m.screen = model.ScreenOrderDetail
		m.error = ""
		return m, nil

	case model.TableTypesLoadedMsg:
		if m.tenantForm != nil {
			m.tenantForm.SetTableTypes(msg.Types)
		}
		return m, nil

	case model.TenantSavedMsg:
		m.mode = model.ModeNav
		m.screen = model.ScreenTenants
		m.tenantForm = nil
		m.tenantDetail = nil
		if msg.Operation == "register" {
			m.info = "Tenant registered"
		} else {
			m.info = "Tenant updated"
		}
		return m, m.refreshCmd(model.ScreenTenants)

	case model.TenantStatusChangedMsg:
		if m.tenantDetail != nil && m.tenantDetail.Tenant().ID == msg.ID {
			t := m.tenantDetail.Tenant()
			t.Status = msg.Status
			m.tenantDetail = NewTenantDetailModel(t)
		}
		m.info = "Tenant " + msg.Status
		return m, m.refreshCmd(model.ScreenTenants)

	case model.BookingSavedMsg:
		m.mode = model.ModeNav
		m.screen = model.ScreenBookings
		m.bookingForm = nil
		m.bookingDetail = nil
		m.info = "Booking saved"
		return m, m.refreshCmd(model.ScreenBookings)

	case model.BookingDeletedMsg:
		m.screen = model.ScreenBookings
		m.bookingDetail = nil
		m.info = "Booking deleted"
		return m, m.refreshCmd(model.ScreenBookings)

	case model.OrderSavedMsg:
		m.info = "Order updated"
		cmds := []tea.Cmd{m.refreshCmd(model.ScreenOrders)}
		if m.orderDetail != nil && m.orderDetail.Order().ID == msg.ID {
			cmds = append(cmds, m.loadOrderDetailCmd(msg.ID))
		}
		return m, tea.Batch(cmds...)

	case model.OrderDeletedMsg:
		m.screen = model.ScreenOrders
		m.orderDetail = nil
		m.info = "Order deleted"
		return m, m.refreshCmd(model.ScreenOrders)

	case model.FeedbackVisibilityMsg:
		m.feedback.SetVisibility(msg.ID, msg.IsVisible, now)
		if msg.IsVisible {
			m.info = "Feedback shown"
		} else {
			m.info = "Feedback hidden"
		}
		return m, m.refreshCmd(model.ScreenFeedback)

	case model.MenuItemSavedMsg:
		m.mode = model.ModeNav
		m.screen = model.ScreenMenus
		m.menuForm = nil
		if msg.Operation == "create" {
			m.info = "Dish added"
		} else {
			m.info = "Dish updated"
		}
		return m, m.refreshCmd(model.ScreenMenus)

	case model.MenuItemDeletedMsg:
		m.info = "Dish deleted"
		return m, m.refreshCmd(model.ScreenMenus)

	case model.PasswordChangedMsg:
		m.mode = model.ModeNav
		m.screen = model.ScreenTenants
		m.passwordForm = nil
		m.info = "Password changed"
		m.error = ""
		return m, nil

	case model.FormCancelledMsg:
		m.mode = model.ModeNav
		m.tenantForm = nil
		m.bookingForm = nil
		m.menuForm = nil
		m.passwordForm = nil
		switch m.screen {
		case model.ScreenTenantForm, model.ScreenPasswordForm:
			m.screen = model.ScreenTenants
		case model.ScreenBookingForm:
			m.screen = model.ScreenBookings
		case model.ScreenMenuForm:
			m.screen = model.ScreenMenus
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) searchActive() bool {
	switch m.screen {
	case model.ScreenTenants:
		return m.tenants.searching || m.tenants.rangeInput
	case model.ScreenBookings:
		return m.bookings.searching || m.bookings.rangeInput
	case model.ScreenOrders:
		return m.orders.searching || m.orders.rangeInput
	case model.ScreenCallLogs:
		return m.callLogs.searching || m.callLogs.rangeInput
	case model.ScreenFeedback:
		return m.feedback.searching || m.feedback.rangeInput
	case model.ScreenMenus:
		return m.menus.searching || m.menus.rangeInput
	case model.ScreenRecordings:
		return m.recordings.searching || m.recordings.rangeInput
	}
	return false
}

func (m *Model) currentList() listHandler {
	switch m.screen {
	case model.ScreenTenants:
		return m.tenants
	case model.ScreenBookings:
		return m.bookings
	case model.ScreenOrders:
		return m.orders
	case model.ScreenCallLogs:
		return m.callLogs
	case model.ScreenFeedback:
		return m.feedback
	case model.ScreenMenus:
		return m.menus
	case model.ScreenRecordings:
		return m.recordings
	}
	return nil
}

// applyLoad runs apply when the result should be taken: live results pass the
// poller's supersession check, cached snapshots only fill a view that has
// nothing better yet. It reports whether a live result was applied.
func (m *Model) applyLoad(screen model.Screen, seq int, cached bool, now time.Time, apply func()) bool {
	p := m.pollers[screen]
	if cached {
		if p.LastSync().IsZero() {
			apply()
			p.MarkStale()
		}
		return false
	}
	if !p.Accept(seq, now) {
		m.log.Debug("stale poll result discarded", slog.String("screen", screen.String()), slog.Int("seq", seq))
		return false
	}
	apply()
	m.error = ""
	return true
}

func (m Model) handlePollTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{m.tickCmd()}
	if p, ok := m.pollers[m.screen]; ok && !m.sessionDead {
		if seq := p.Begin(); seq != 0 {
			cmds = append(cmds, m.fetchCmd(m.screen, seq))
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handlePollFailed(msg model.PollFailedMsg) (tea.Model, tea.Cmd) {
	err := msg.Err
	if errors.Is(err, api.ErrUnauthorized) || errors.Is(err, api.ErrNoToken) {
		err = listview.ErrSessionExpired
	}
	m.pollers[msg.Screen].Fail(msg.Seq, err)
	m.log.Warn("poll failed",
		slog.String("screen", msg.Screen.String()),
		slog.Int("seq", msg.Seq),
		slog.Any("error", msg.Err))
	if errors.Is(err, listview.ErrSessionExpired) {
		return m.expireSession()
	}
	return m, nil
}

func (m Model) expireSession() (tea.Model, tea.Cmd) {
	if m.sessionDead {
		return m, nil
	}
	m.sessionDead = true
	m.error = "Session expired. Restart tavolo to sign in again."
	st := m.store
	return m, func() tea.Msg {
		if err := st.ClearSession(); err != nil {
			return model.ErrorMsg{Err: err}
		}
		return nil
	}
}

// gotoScreen switches to a list screen, restoring its snapshot and forcing
// a fresh fetch.
func (m *Model) gotoScreen(s model.Screen) tea.Cmd {
	if s != model.ScreenTenants && s != model.ScreenRecordings && m.activeTenant == "" {
		m.error = "Pick a tenant first (enter on the Tenants screen)"
		return nil
	}
	m.screen = s
	m.info = ""
	m.persistPrefs()
	return tea.Batch(m.loadSnapshotCmd(s), m.refreshCmd(s))
}

func (m *Model) refreshCmd(s model.Screen) tea.Cmd {
	if m.sessionDead {
		return nil
	}
	p, ok := m.pollers[s]
	if !ok {
		return nil
	}
	seq := p.Refresh()
	if seq == 0 {
		return nil
	}
	return m.fetchCmd(s, seq)
}

// selectTenant makes t the context for the per-tenant screens. Switching
// tenants resets those screens; their rows belong to the previous one.
func (m *Model) selectTenant(t model.Tenant) {
	if t.ID == m.activeTenant {
		return
	}
	m.activeTenant = t.ID
	m.activeTenantName = t.RestaurantName
	m.prefs.ActiveTenant = t.ID
	m.bookings = NewBookingsModel(m.interval)
	m.orders = NewOrdersModel(m.interval)
	m.callLogs = NewCallLogsModel(m.interval)
	m.feedback = NewFeedbackModel(m.interval)
	m.menus = NewMenusModel(m.interval)
	now := time.Now()
	m.bookings.ApplyPrefs(m.prefs.Bookings, now)
	m.orders.ApplyPrefs(m.prefs.Orders, now)
	m.callLogs.ApplyPrefs(m.prefs.CallLogs, now)
	m.feedback.ApplyPrefs(m.prefs.Feedback, now)
	m.menus.ApplyPrefs(m.prefs.Menus, now)
	// Keep the pollers: Supersede preserves the sequence counters, so a
	// fetch still in flight for the previous tenant is rejected instead
	// of landing in the new tenant's view.
	for _, s := range []model.Screen{model.ScreenBookings, model.ScreenOrders, model.ScreenCallLogs, model.ScreenFeedback, model.ScreenMenus} {
		m.pollers[s].Supersede()
	}
	m.persistPrefs()
}

func (m *Model) syncActiveTenantName(tenants []model.Tenant) {
	for _, t := range tenants {
		if t.ID == m.activeTenant {
			m.activeTenantName = t.RestaurantName
			return
		}
	}
}

func (m *Model) persistPrefs() {
	m.prefs.Tenants = m.tenants.Prefs()
	m.prefs.Bookings = m.bookings.Prefs()
	m.prefs.Orders = m.orders.Prefs()
	m.prefs.CallLogs = m.callLogs.Prefs()
	m.prefs.Feedback = m.feedback.Prefs()
	m.prefs.Menus = m.menus.Prefs()
	m.prefs.Recordings = m.recordings.Prefs()
	_ = saveUIPreferences(m.prefs)
}

// handleNavMode handles navigation mode input.
func (m Model) handleNavMode(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if list := m.currentList(); list != nil {
		if cmd, consumed := list.HandleKey(msg, now); consumed {
			m.persistPrefs()
			return m, cmd
		}
	}

	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Refresh) {
		if _, ok := m.pollers[m.screen]; ok {
			m.info = "Refreshing..."
			return m, m.refreshCmd(m.screen)
		}
	}

	switch msg.String() {
	case "1":
		return m, m.gotoScreen(model.ScreenTenants)
	case "2":
		return m, m.gotoScreen(model.ScreenBookings)
	case "3":
		return m, m.gotoScreen(model.ScreenOrders)
	case "4":
		return m, m.gotoScreen(model.ScreenCallLogs)
	case "5":
		return m, m.gotoScreen(model.ScreenFeedback)
	case "6":
		return m, m.gotoScreen(model.ScreenMenus)
	case "7":
		return m, m.gotoScreen(model.ScreenRecordings)
	}

	switch m.screen {
	case model.ScreenTenants:
		return m.handleTenantsNav(msg)
	case model.ScreenBookings:
		return m.handleBookingsNav(msg)
	case model.ScreenOrders:
		return m.handleOrdersNav(msg)
	case model.ScreenCallLogs:
		return m.handleCallLogsNav(msg)
	case model.ScreenFeedback:
		return m.handleFeedbackNav(msg)
	case model.ScreenMenus:
		return m.handleMenusNav(msg)
	case model.ScreenTenantDetail:
		return m.handleTenantDetailNav(msg)
	case model.ScreenBookingDetail:
		return m.handleBookingDetailNav(msg)
	case model.ScreenOrderDetail:
		return m.handleOrderDetailNav(msg)
	case model.ScreenCallLogDetail:
		if key.Matches(msg, m.keys.Back) {
			m.screen = model.ScreenCallLogs
			m.callDetail = nil
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleTenantsNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Add):
		m.mode = model.ModeInsert
		m.screen = model.ScreenTenantForm
		m.tenantForm = NewTenantFormModel(m.client, m.sess.AdminID)
		return m, m.loadTableTypesCmd()
	case key.Matches(msg, m.keys.Select):
		if t, ok := m.tenants.Selected(); ok {
			m.selectTenant(t)
			return m, m.loadTenantDetailCmd(t.ID)
		}
	case msg.String() == "p":
		m.mode = model.ModeInsert
		m.screen = model.ScreenPasswordForm
		m.passwordForm = NewPasswordFormModel(m.client)
	case msg.String() == "B":
		if t, ok := m.tenants.Selected(); ok {
			next := model.TenantBlocked
			if t.Status == model.TenantBlocked {
				next = model.TenantActive
			}
			return m, m.setTenantStatusCmd(t.ID, next)
		}
	case msg.String() == "b", msg.String() == "o", msg.String() == "c", msg.String() == "f", msg.String() == "m", msg.String() == "v":
		// Jump straight into one of the selected tenant's views.
		if t, ok := m.tenants.Selected(); ok {
			m.selectTenant(t)
			target := map[string]model.Screen{
				"b": model.ScreenBookings,
				"o": model.ScreenOrders,
				"c": model.ScreenCallLogs,
				"f": model.ScreenFeedback,
				"m": model.ScreenMenus,
				"v": model.ScreenRecordings,
			}[msg.String()]
			return m, m.gotoScreen(target)
		}
	}
	return m, nil
}

func (m Model) handleTenantDetailNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.tenantDetail == nil {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Back):
		m.screen = model.ScreenTenants
		m.tenantDetail = nil
		return m, nil
	case key.Matches(msg, m.keys.Edit):
		m.mode = model.ModeInsert
		m.screen = model.ScreenTenantForm
		m.tenantForm = NewTenantFormModel(m.client, m.sess.AdminID)
		m.tenantForm.LoadTenant(m.tenantDetail.Tenant())
		return m, m.loadTableTypesCmd()
	case msg.String() == "B":
		t := m.tenantDetail.Tenant()
		next := model.TenantBlocked
		if t.Status == model.TenantBlocked {
			next = model.TenantActive
		}
		return m, m.setTenantStatusCmd(t.ID, next)
	}
	return m, nil
}

func (m Model) handleBookingsNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		if b, ok := m.bookings.Selected(); ok {
			return m, m.loadBookingDetailCmd(b.ID)
		}
	case key.Matches(msg, m.keys.Edit):
		if b, ok := m.bookings.Selected(); ok {
			m.mode = model.ModeInsert
			m.screen = model.ScreenBookingForm
			m.bookingForm = NewBookingFormModel(m.client, b)
		}
	case key.Matches(msg, m.keys.Delete):
		if b, ok := m.bookings.Selected(); ok {
			return m, m.deleteBookingCmd(b.ID)
		}
	}
	return m, nil
}

func (m Model) handleBookingDetailNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.bookingDetail == nil {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Back):
		m.screen = model.ScreenBookings
		m.bookingDetail = nil
	case key.Matches(msg, m.keys.Edit):
		m.mode = model.ModeInsert
		m.screen = model.ScreenBookingForm
		m.bookingForm = NewBookingFormModel(m.client, m.bookingDetail.Booking())
	case key.Matches(msg, m.keys.Delete):
		return m, m.deleteBookingCmd(m.bookingDetail.Booking().ID)
	}
	return m, nil
}

func (m Model) handleOrdersNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		if o, ok := m.orders.Selected(); ok {
			return m, m.loadOrderDetailCmd(o.ID)
		}
	case key.Matches(msg, m.keys.Delete):
		if o, ok := m.orders.Selected(); ok {
			return m, m.deleteOrderCmd(o.ID)
		}
	}
	return m, nil
}

func (m Model) handleOrderDetailNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.orderDetail == nil {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Back):
		m.screen = model.ScreenOrders
		m.orderDetail = nil
	case msg.String() == "s":
		if next := m.orderDetail.NextStatus(); next != "" {
			return m, m.updateOrderStatusCmd(m.orderDetail.Order().ID, next)
		}
	case key.Matches(msg, m.keys.Delete):
		return m, m.deleteOrderCmd(m.orderDetail.Order().ID)
	}
	return m, nil
}

func (m Model) handleCallLogsNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Select) {
		if c, ok := m.callLogs.Selected(); ok {
			m.callDetail = NewCallLogDetailModel(c)
			m.screen = model.ScreenCallLogDetail
		}
	}
	return m, nil
}

func (m Model) handleFeedbackNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "v":
		if f, ok := m.feedback.Selected(); ok {
			return m, m.setFeedbackVisibilityCmd(f.ID, !f.IsVisible)
		}
	}
	return m, nil
}

func (m Model) handleMenusNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Add):
		m.mode = model.ModeInsert
		m.screen = model.ScreenMenuForm
		m.menuForm = NewMenuFormModel(m.client, m.activeTenant)
	case key.Matches(msg, m.keys.Edit):
		if item, ok := m.menus.Selected(); ok {
			m.mode = model.ModeInsert
			m.screen = model.ScreenMenuForm
			m.menuForm = NewMenuFormModel(m.client, m.activeTenant)
			m.menuForm.LoadItem(item)
		}
	case key.Matches(msg, m.keys.Delete):
		if item, ok := m.menus.Selected(); ok {
			return m, m.deleteMenuItemCmd(item.ID)
		}
	case msg.String() == "v":
		if item, ok := m.menus.Selected(); ok {
			return m, m.toggleAvailabilityCmd(item)
		}
	}
	return m, nil
}

// handleInsertMode routes keys to the open form.
func (m Model) handleInsertMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case model.ScreenTenantForm:
		if m.tenantForm != nil {
			form, cmd := m.tenantForm.Update(msg)
			m.tenantForm = &form
			return m, cmd
		}
	case model.ScreenBookingForm:
		if m.bookingForm != nil {
			form, cmd := m.bookingForm.Update(msg)
			m.bookingForm = &form
			return m, cmd
		}
	case model.ScreenMenuForm:
		if m.menuForm != nil {
			form, cmd := m.menuForm.Update(msg)
			m.menuForm = &form
			return m, cmd
		}
	case model.ScreenPasswordForm:
		if m.passwordForm != nil {
			form, cmd := m.passwordForm.Update(msg)
			m.passwordForm = &form
			return m, cmd
		}
	}
	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.showingHelp {
		return RenderFullHelp(m.width, m.height)
	}

	contentHeight := m.height - 4

	var content string
	var crumbs []string

	switch m.screen {
	case model.ScreenTenants:
		crumbs = []string{"Tenants"}
		content = m.tenants.View(m.width, contentHeight, m.pollers[model.ScreenTenants].LastSync(), m.pollers[model.ScreenTenants].Stale())
	case model.ScreenBookings:
		crumbs = []string{"Bookings"}
		content = m.bookings.View(m.width, contentHeight, m.pollers[model.ScreenBookings].LastSync(), m.pollers[model.ScreenBookings].Stale())
	case model.ScreenOrders:
		crumbs = []string{"Orders"}
		content = m.orders.View(m.width, contentHeight, m.pollers[model.ScreenOrders].LastSync(), m.pollers[model.ScreenOrders].Stale())
	case model.ScreenCallLogs:
		crumbs = []string{"Call Logs"}
		content = m.callLogs.View(m.width, contentHeight, m.pollers[model.ScreenCallLogs].LastSync(), m.pollers[model.ScreenCallLogs].Stale())
	case model.ScreenFeedback:
		crumbs = []string{"Feedback"}
		content = m.feedback.View(m.width, contentHeight, m.pollers[model.ScreenFeedback].LastSync(), m.pollers[model.ScreenFeedback].Stale())
	case model.ScreenMenus:
		crumbs = []string{"Menu"}
		content = m.menus.View(m.width, contentHeight, m.pollers[model.ScreenMenus].LastSync(), m.pollers[model.ScreenMenus].Stale())
	case model.ScreenRecordings:
		crumbs = []string{"Recordings"}
		content = m.recordings.View(m.width, contentHeight, m.pollers[model.ScreenRecordings].LastSync(), m.pollers[model.ScreenRecordings].Stale())
	case model.ScreenTenantDetail:
		crumbs = []string{"Tenants", "Detail"}
		if m.tenantDetail != nil {
			crumbs = []string{"Tenants", m.tenantDetail.Tenant().RestaurantName}
			content = m.tenantDetail.View(m.width, contentHeight)
		}
	case model.ScreenTenantForm:
		crumbs = []string{"Tenants", "Form"}
		if m.tenantForm != nil {
			content = m.tenantForm.View(m.width, contentHeight)
		}
	case model.ScreenBookingDetail:
		crumbs = []string{"Bookings", "Detail"}
		if m.bookingDetail != nil {
			content = m.bookingDetail.View(m.width, contentHeight)
		}
	case model.ScreenBookingForm:
		crumbs = []string{"Bookings", "Edit"}
		if m.bookingForm != nil {
			content = m.bookingForm.View(m.width, contentHeight)
		}
	case model.ScreenOrderDetail:
		crumbs = []string{"Orders", "Detail"}
		if m.orderDetail != nil {
			crumbs = []string{"Orders", m.orderDetail.Order().OrderNo}
			content = m.orderDetail.View(m.width, contentHeight)
		}
	case model.ScreenCallLogDetail:
		crumbs = []string{"Call Logs", "Transcript"}
		if m.callDetail != nil {
			content = m.callDetail.View(m.width, contentHeight)
		}
	case model.ScreenMenuForm:
		crumbs = []string{"Menu", "Form"}
		if m.menuForm != nil {
			content = m.menuForm.View(m.width, contentHeight)
		}
	case model.ScreenPasswordForm:
		crumbs = []string{"Account", "Password"}
		if m.passwordForm != nil {
			content = m.passwordForm.View(m.width, contentHeight)
		}
	}

	header := m.renderHeader(crumbs)
	footer := RenderHelp(m.screen, m.mode, m.width)

	content = lipgloss.NewStyle().Width(m.width).Height(contentHeight).Render(content)

	parts := []string{header}
	if m.error != "" {
		parts = append(parts, ErrorStyle.Width(m.width).Render("Error: "+m.error))
	}
	if m.info != "" {
		parts = append(parts, SuccessStyle.Width(m.width).Render(m.info))
	}
	parts = append(parts, content, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHeader(crumbs []string) string {
	title := HeaderStyle.Render("tavolo")

	var breadcrumb string
	if len(crumbs) > 0 {
		separator := BreadcrumbStyle.Render(" › ")
		parts := make([]string, len(crumbs))
		for i, part := range crumbs {
			if i == len(crumbs)-1 {
				parts[i] = BreadcrumbActiveStyle.Render(part)
			} else {
				parts[i] = BreadcrumbStyle.Render(part)
			}
		}
		breadcrumb = separator + strings.Join(parts, separator)
	}
	left := "  " + title + breadcrumb

	right := BreadcrumbStyle.Render(time.Now().Format("Mon 02 Jan")) + "  "
	if m.activeTenantName != "" {
		right = BreadcrumbActiveStyle.Render(m.activeTenantName) + BreadcrumbStyle.Render(" · ") + right
	}

	padding := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}
	return TitleStyle.Width(m.width).Render(left + strings.Repeat(" ", padding) + right)
}

// Commands

// mutationErr classifies a failed one-shot request. Auth failures end the
// session the same way a failed poll does; anything else lands on the
// error banner.
func mutationErr(action string, err error) tea.Msg {
	if errors.Is(err, api.ErrUnauthorized) || errors.Is(err, api.ErrNoToken) {
		return model.SessionExpiredMsg{}
	}
	return model.ErrorMsg{Err: fmt.Errorf("failed to %s: %w", action, err)}
}

func (m Model) fetchCmd(screen model.Screen, seq int) tea.Cmd {
	client := m.client
	tenant := m.activeTenant
	log := m.log
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		log.Debug("poll fetch", slog.String("screen", screen.String()), slog.Int("seq", seq))

		switch screen {
		case model.ScreenTenants:
			tenants, err := client.Tenants(ctx)
			if err != nil {
				return model.PollFailedMsg{Screen: screen, Seq: seq, Err: err}
			}
			return model.TenantsLoadedMsg{Seq: seq, Tenants: tenants}
		case model.ScreenBookings:
			rows, err := client.Bookings(ctx, tenant)
			if err != nil {
				return model.PollFailedMsg{Screen: screen, Seq: seq, Err: err}
			}
			return model.BookingsLoadedMsg{Seq: seq, Bookings: rows}
		case model.ScreenOrders:
			rows, err := client.Orders(ctx, tenant)
			if err != nil {
				return model.PollFailedMsg{Screen: screen, Seq: seq, Err: err}
			}
			return model.OrdersLoadedMsg{Seq: seq, Orders: rows}
		case model.ScreenCallLogs:
			rows, err := client.CallLogs(ctx, tenant)
			if err != nil {
				return model.PollFailedMsg{Screen: screen, Seq: seq, Err: err}
			}
			return model.CallLogsLoadedMsg{Seq: seq, Calls: rows}
		case model.ScreenFeedback:
			rows, err := client.Feedback(ctx, tenant)
			if err != nil {
				return model.PollFailedMsg{Screen: screen, Seq: seq, Err: err}
			}
			return model.FeedbackLoadedMsg{Seq: seq, Feedback: rows}
		case model.ScreenMenus:
			items, err := client.MenuItems(ctx, tenant)
			if err != nil {
				return model.PollFailedMsg{Screen: screen, Seq: seq, Err: err}
			}
			categories, err := client.MenuCategories(ctx, tenant)
			if err != nil {
				return model.PollFailedMsg{Screen: screen, Seq: seq, Err: err}
			}
			return model.MenusLoadedMsg{Seq: seq, Items: items, Categories: categories}
		case model.ScreenRecordings:
			rows, err := client.Recordings(ctx)
			if err != nil {
				return model.PollFailedMsg{Screen: screen, Seq: seq, Err: err}
			}
			return model.RecordingsLoadedMsg{Seq: seq, Recordings: rows}
		}
		return model.PollFailedMsg{Screen: screen, Seq: seq, Err: fmt.Errorf("screen %s is not pollable", screen)}
	}
}

func (m Model) snapshotKey(screen model.Screen) string {
	switch screen {
	case model.ScreenTenants, model.ScreenRecordings:
		return screen.String()
	default:
		return screen.String() + "/" + m.activeTenant
	}
}

func (m Model) saveSnapshotCmd(screen model.Screen, rows any, at time.Time) tea.Cmd {
	st := m.store
	key := m.snapshotKey(screen)
	return func() tea.Msg {
		if err := st.SaveSnapshot(key, rows, at); err != nil {
			return model.ErrorMsg{Err: err}
		}
		return nil
	}
}

func (m Model) loadSnapshotCmd(screen model.Screen) tea.Cmd {
	st := m.store
	key := m.snapshotKey(screen)
	return func() tea.Msg {
		switch screen {
		case model.ScreenTenants:
			var rows []model.Tenant
			if _, ok, err := st.LoadSnapshot(key, &rows); err == nil && ok {
				return model.TenantsLoadedMsg{Tenants: rows, Cached: true}
			}
		case model.ScreenBookings:
			var rows []model.Booking
			if _, ok, err := st.LoadSnapshot(key, &rows); err == nil && ok {
				return model.BookingsLoadedMsg{Bookings: rows, Cached: true}
			}
		case model.ScreenOrders:
			var rows []model.Order
			if _, ok, err := st.LoadSnapshot(key, &rows); err == nil && ok {
				return model.OrdersLoadedMsg{Orders: rows, Cached: true}
			}
		case model.ScreenCallLogs:
			var rows []model.CallLog
			if _, ok, err := st.LoadSnapshot(key, &rows); err == nil && ok {
				return model.CallLogsLoadedMsg{Calls: rows, Cached: true}
			}
		case model.ScreenFeedback:
			var rows []model.Feedback
			if _, ok, err := st.LoadSnapshot(key, &rows); err == nil && ok {
				return model.FeedbackLoadedMsg{Feedback: rows, Cached: true}
			}
		case model.ScreenMenus:
			var rows []model.MenuItem
			if _, ok, err := st.LoadSnapshot(key, &rows); err == nil && ok {
				return model.MenusLoadedMsg{Items: rows, Cached: true}
			}
		case model.ScreenRecordings:
			var rows []model.Recording
			if _, ok, err := st.LoadSnapshot(key, &rows); err == nil && ok {
				return model.RecordingsLoadedMsg{Recordings: rows, Cached: true}
			}
		}
		return nil
	}
}

func (m Model) loadTenantDetailCmd(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		t, err := client.TenantProfile(context.Background(), id)
		if err != nil {
			return mutationErr("load tenant", err)
		}
		return model.TenantDetailLoadedMsg{Tenant: *t}
	}
}

func (m Model) loadTableTypesCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		types, err := client.TableTypes(context.Background())
		if err != nil {
			return mutationErr("load table types", err)
		}
		return model.TableTypesLoadedMsg{Types: types}
	}
}

func (m Model) setTenantStatusCmd(id, status string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if err := client.SetTenantStatus(context.Background(), id, status); err != nil {
			return mutationErr("change tenant status", err)
		}
		return model.TenantStatusChangedMsg{ID: id, Status: status}
	}
}

func (m Model) loadBookingDetailCmd(id string) tea.Cmd {
	client := m.client
	bookings := m.bookings
	return func() tea.Msg {
		b, err := client.Booking(context.Background(), id)
		if err != nil {
			// The list row is a usable fallback when the detail fetch
			// fails; Err keeps the failure on the banner.
			if row, ok := bookings.rowByID(id); ok {
				return model.BookingDetailLoadedMsg{Booking: row, Err: err}
			}
			return mutationErr("load booking", err)
		}
		return model.BookingDetailLoadedMsg{Booking: *b}
	}
}

func (m Model) deleteBookingCmd(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if err := client.DeleteBooking(context.Background(), id); err != nil {
			return mutationErr("delete booking", err)
		}
		return model.BookingDeletedMsg{ID: id}
	}
}

func (m Model) loadOrderDetailCmd(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		o, err := client.Order(context.Background(), id)
		if err != nil {
			return mutationErr("load order", err)
		}
		return model.OrderDetailLoadedMsg{Order: *o}
	}
}

func (m Model) updateOrderStatusCmd(id, status string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if err := client.UpdateOrderStatus(context.Background(), id, status); err != nil {
			return mutationErr("update order", err)
		}
		return model.OrderSavedMsg{ID: id}
	}
}

func (m Model) deleteOrderCmd(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if err := client.DeleteOrder(context.Background(), id); err != nil {
			return mutationErr("delete order", err)
		}
		return model.OrderDeletedMsg{ID: id}
	}
}

func (m Model) setFeedbackVisibilityCmd(id string, visible bool) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if err := client.SetFeedbackVisibility(context.Background(), id, visible); err != nil {
			return mutationErr("toggle feedback", err)
		}
		return model.FeedbackVisibilityMsg{ID: id, IsVisible: visible}
	}
}

func (m Model) toggleAvailabilityCmd(item model.MenuItem) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		updated := model.NewMenuItem{
			Name:        item.Name,
			Category:    item.Category,
			Price:       item.Price,
			Description: item.Description,
			IsAvailable: !item.IsAvailable,
		}
		if err := client.UpdateMenuItem(context.Background(), item.ID, updated); err != nil {
			return mutationErr("toggle availability", err)
		}
		return model.MenuItemSavedMsg{Operation: "update"}
	}
}

func (m Model) deleteMenuItemCmd(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if err := client.DeleteMenuItem(context.Background(), id); err != nil {
			return mutationErr("delete dish", err)
		}
		return model.MenuItemDeletedMsg{ID: id}
	}
}
