package ui

import (
	"fmt"
	"strings"
	"time"

	"tavolo/internal/listview"
	"tavolo/internal/util"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type column[T any] struct {
	label string
	width int
	cell  func(T) string
}

// listScreen is the shared machinery behind every list view: the filter
// dimensions, the paginator, cursor movement and table rendering. Screens
// wrap it with their columns and accessors.
type listScreen[T any] struct {
	title      string
	cfg        listview.Config[T]
	columns    []column[T]
	tabs       []string
	dateTokens []string

	all     []T
	rows    []T
	filters listview.Filters
	pag     *listview.Paginator
	counts  map[string]int
	cursor  int

	searching  bool
	rangeInput bool
	search     textinput.Model
	dateIdx    int
	loaded     bool
}

func newListScreen[T any](title string, cfg listview.Config[T], columns []column[T], tabs, dateTokens []string) *listScreen[T] {
	if cfg.PageSize <= 0 {
		cfg.PageSize = listview.DefaultPageSize
	}
	in := textinput.New()
	in.Placeholder = "search"
	in.CharLimit = 120
	in.Width = 40
	return &listScreen[T]{
		title:      title,
		cfg:        cfg,
		columns:    columns,
		tabs:       tabs,
		dateTokens: dateTokens,
		pag:        listview.NewPaginator(cfg.PageSize),
		search:     in,
	}
}

// SetRows replaces the backing collection. Filters, tab and page survive a
// poll refresh; only the result of applying them changes.
func (s *listScreen[T]) SetRows(rows []T, now time.Time) {
	s.all = append([]T(nil), rows...)
	s.loaded = true
	s.rebuild(now, false)
}

func (s *listScreen[T]) rebuild(now time.Time, filterChanged bool) {
	s.rows = listview.Apply(s.cfg, s.filters, s.all, now)
	if len(s.tabs) > 0 {
		s.counts = listview.StatusCounts(s.cfg, s.all, s.tabs)
	}
	if filterChanged && s.cfg.ResetOnFilterChange {
		s.pag.Reset()
	}
	s.pag.SetCount(len(s.rows))
	s.clampCursor()
}

func (s *listScreen[T]) clampCursor() {
	page := listview.PageSlice(s.pag, s.rows)
	if s.cursor >= len(page) {
		s.cursor = len(page) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

// Selected returns the record under the cursor.
func (s *listScreen[T]) Selected() (T, bool) {
	var zero T
	page := listview.PageSlice(s.pag, s.rows)
	if s.cursor < 0 || s.cursor >= len(page) {
		return zero, false
	}
	return page[s.cursor], true
}

func (s *listScreen[T]) Filters() listview.Filters { return s.filters }

// ApplyPrefs restores the tab, date token and category saved from a
// previous run. Unknown values fall back to defaults at match time.
func (s *listScreen[T]) ApplyPrefs(p ViewPrefs, now time.Time) {
	if p.Tab != "" {
		s.filters.Tab = p.Tab
	}
	if p.Category != "" {
		s.filters.Category = p.Category
	}
	for i, token := range s.dateTokens {
		if token == p.DateToken {
			s.dateIdx = i
			s.filters.DateToken = token
		}
	}
	s.rebuild(now, true)
}

func (s *listScreen[T]) Prefs() ViewPrefs {
	return ViewPrefs{
		Tab:       s.filters.Tab,
		DateToken: s.filters.DateToken,
		Category:  s.filters.Category,
	}
}

// HandleKey processes nav-mode keys. It reports whether the key was
// consumed; unconsumed keys fall through to the app for screen switching.
func (s *listScreen[T]) HandleKey(msg tea.KeyMsg, now time.Time) (tea.Cmd, bool) {
	if s.searching || s.rangeInput {
		return s.handleInput(msg, now), true
	}

	switch msg.String() {
	case "j", "down":
		page := listview.PageSlice(s.pag, s.rows)
		if s.cursor < len(page)-1 {
			s.cursor++
		} else if s.pag.Page() < s.pag.TotalPages() {
			s.pag.Next()
			s.cursor = 0
		}
		return nil, true
	case "k", "up":
		if s.cursor > 0 {
			s.cursor--
		} else if s.pag.Page() > 1 {
			s.pag.Prev()
			s.cursor = s.pag.PageSize() - 1
			s.clampCursor()
		}
		return nil, true
	case "]", "right":
		s.pag.Next()
		s.clampCursor()
		return nil, true
	case "[", "left":
		s.pag.Prev()
		s.clampCursor()
		return nil, true
	case "G":
		s.pag.GoTo(s.pag.TotalPages())
		page := listview.PageSlice(s.pag, s.rows)
		s.cursor = len(page) - 1
		s.clampCursor()
		return nil, true
	case "tab":
		s.cycleTab(1, now)
		return nil, true
	case "shift+tab":
		s.cycleTab(-1, now)
		return nil, true
	case "/":
		s.searching = true
		s.search.SetValue(s.filters.Query)
		s.search.Placeholder = "search"
		s.search.Focus()
		return textinput.Blink, true
	case "d":
		s.cycleDate(now)
		return nil, true
	case "D":
		s.rangeInput = true
		s.search.SetValue("")
		s.search.Placeholder = "YYYY-MM-DD..YYYY-MM-DD"
		s.search.Focus()
		return textinput.Blink, true
	case "x":
		if s.filters != (listview.Filters{}) {
			s.filters = listview.Filters{}
			s.dateIdx = 0
			s.rebuild(now, true)
		}
		return nil, true
	}
	return nil, false
}

func (s *listScreen[T]) handleInput(msg tea.KeyMsg, now time.Time) tea.Cmd {
	switch msg.String() {
	case "esc":
		if s.searching {
			s.filters.Query = ""
			s.searching = false
			s.rebuild(now, true)
		}
		s.rangeInput = false
		s.search.Blur()
		return nil
	case "enter":
		if s.rangeInput {
			s.applyCustomRange(s.search.Value(), now)
			s.rangeInput = false
		}
		s.searching = false
		s.search.Blur()
		return nil
	}

	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	if s.searching {
		s.filters.Query = s.search.Value()
		s.rebuild(now, true)
	}
	return cmd
}

func (s *listScreen[T]) applyCustomRange(value string, now time.Time) {
	start, end := "", ""
	if parts := strings.SplitN(value, "..", 2); len(parts) == 2 {
		start, _ = util.ParseDateInput(parts[0])
		end, _ = util.ParseDateInput(parts[1])
	}
	s.filters.DateToken = "custom"
	s.filters.CustomStart = start
	s.filters.CustomEnd = end
	s.dateIdx = 0
	s.rebuild(now, true)
}

func (s *listScreen[T]) cycleTab(dir int, now time.Time) {
	if len(s.tabs) == 0 {
		return
	}
	idx := 0
	for i, t := range s.tabs {
		if t == s.filters.Tab {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(s.tabs)) % len(s.tabs)
	s.filters.Tab = s.tabs[idx]
	s.rebuild(now, true)
}

func (s *listScreen[T]) cycleDate(now time.Time) {
	if len(s.dateTokens) == 0 {
		return
	}
	s.dateIdx = (s.dateIdx + 1) % len(s.dateTokens)
	s.filters.DateToken = s.dateTokens[s.dateIdx]
	s.filters.CustomStart = ""
	s.filters.CustomEnd = ""
	s.rebuild(now, true)
}

// View renders tabs, table and the status line into the given box.
func (s *listScreen[T]) View(width, height int, lastSync time.Time, stale bool) string {
	var sections []string

	if len(s.tabs) > 0 {
		sections = append(sections, s.renderTabs(width))
		height -= 2
	}
	if s.searching || s.rangeInput {
		sections = append(sections, InputStyle.Render(s.search.View()))
		height -= 1
	}

	sections = append(sections, s.renderTable(width, height-2))
	sections = append(sections, s.renderStatus(width, lastSync, stale))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (s *listScreen[T]) renderTabs(width int) string {
	var parts []string
	for _, t := range s.tabs {
		label := tabLabel(t)
		if s.counts != nil {
			label = fmt.Sprintf("%s (%d)", label, s.counts[t])
		}
		style := TabInactiveStyle
		if t == s.filters.Tab || (s.filters.Tab == "" && t == listview.TabAll) {
			style = TabActiveStyle
		}
		parts = append(parts, style.Render(label))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Left, parts...)
	return lipgloss.NewStyle().
		Width(width).
		BorderBottom(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		Render(bar)
}

func (s *listScreen[T]) renderTable(width, height int) string {
	if !s.loaded {
		return EmptyStateStyle.Width(width).Height(height).Render("Loading " + strings.ToLower(s.title) + "...")
	}
	if len(s.rows) == 0 {
		msg := "No " + strings.ToLower(s.title) + " match the current filters."
		if s.filters == (listview.Filters{}) {
			msg = "No " + strings.ToLower(s.title) + " yet."
		}
		return EmptyStateStyle.Width(width).Height(height).Render(msg)
	}

	headers := make([]string, len(s.columns))
	widths := make([]int, len(s.columns))
	total := 0
	for i, c := range s.columns {
		headers[i] = strings.ToUpper(c.label)
		widths[i] = c.width
		total += c.width + 1
	}
	if extra := width - total - 2; extra > 0 && len(widths) > 0 {
		widths[len(widths)-1] += extra
	}

	var b strings.Builder
	b.WriteString(renderRow(headers, widths, TableHeaderStyle))
	b.WriteString("\n")

	page := listview.PageSlice(s.pag, s.rows)
	for i, rec := range page {
		cells := make([]string, len(s.columns))
		for j, c := range s.columns {
			cells[j] = util.TruncateString(c.cell(rec), widths[j]-1)
		}
		style := NormalRowStyle
		if i == s.cursor {
			style = SelectedRowStyle
		}
		b.WriteString(renderRow(cells, widths, style))
		if i < len(page)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (s *listScreen[T]) renderStatus(width int, lastSync time.Time, stale bool) string {
	parts := []string{
		fmt.Sprintf("page %d/%d", s.pag.Page(), s.pag.TotalPages()),
		fmt.Sprintf("%d records", len(s.rows)),
	}
	if clock := util.FormatClock(lastSync); clock != "" {
		parts = append(parts, "synced "+clock)
	}
	line := strings.Join(parts, " · ")
	if stale {
		line += " " + StaleStyle.Render("(stale)")
	}
	return StatusBarStyle.Width(width).Render(line)
}

func renderRow(cells []string, widths []int, style lipgloss.Style) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		w := widths[i]
		if lipgloss.Width(cell) > w {
			cell = util.TruncateString(cell, w)
		}
		padded[i] = cell + strings.Repeat(" ", maxInt(0, w-lipgloss.Width(cell)))
	}
	return style.Render(strings.Join(padded, " "))
}

func tabLabel(tab string) string {
	switch tab {
	case listview.TabAll:
		return "All"
	default:
		words := strings.Split(tab, "-")
		for i, w := range words {
			if w != "" {
				words[i] = strings.ToUpper(w[:1]) + w[1:]
			}
		}
		return strings.Join(words, " ")
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
