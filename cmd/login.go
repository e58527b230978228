package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tavolo/internal/api"
	"tavolo/internal/session"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type loginStep int

const (
	stepEmail loginStep = iota
	stepPassword
	stepBusy
	stepDone
)

type loginResultMsg struct {
	result *api.SignInResult
	err    error
}

type loginModel struct {
	client *api.Client

	step       loginStep
	emailInput textinput.Model
	passInput  textinput.Model
	result     *api.SignInResult
	errMsg     string
	width      int
	height     int
}

var (
	liColorMuted  = lipgloss.Color("#8A8794")
	liColorText   = lipgloss.Color("#E8E6ED")
	liColorAccent = lipgloss.Color("#D9A05B")
	liColorDanger = lipgloss.Color("#f38ba8")

	liTitleStyle = lipgloss.NewStyle().
			Foreground(liColorAccent).
			Bold(true)

	liHeaderStyle = lipgloss.NewStyle().
			Foreground(liColorAccent).
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(liColorMuted)

	liPanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(liColorMuted).
			Padding(1, 2)

	liInputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(liColorAccent).
			Padding(0, 1)

	liLabelStyle = lipgloss.NewStyle().
			Foreground(liColorAccent).
			Bold(true)

	liMutedStyle = lipgloss.NewStyle().
			Foreground(liColorMuted)

	liWarnStyle = lipgloss.NewStyle().
			Foreground(liColorDanger)

	liFooterStyle = lipgloss.NewStyle().
			Foreground(liColorMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(liColorMuted)
)

func newLoginModel(client *api.Client) loginModel {
	email := textinput.New()
	email.Placeholder = "admin@example.com"
	email.CharLimit = 120
	email.Prompt = "email> "
	email.TextStyle = lipgloss.NewStyle().Foreground(liColorText)
	email.PlaceholderStyle = lipgloss.NewStyle().Foreground(liColorMuted)
	email.Focus()

	pass := textinput.New()
	pass.Placeholder = "password"
	pass.CharLimit = 120
	pass.Prompt = "pass>  "
	pass.EchoMode = textinput.EchoPassword
	pass.TextStyle = lipgloss.NewStyle().Foreground(liColorText)
	pass.PlaceholderStyle = lipgloss.NewStyle().Foreground(liColorMuted)

	return loginModel{
		client:     client,
		step:       stepEmail,
		emailInput: email,
		passInput:  pass,
	}
}

func (m loginModel) Init() tea.Cmd { return textinput.Blink }

func (m loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loginResultMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.step = stepPassword
			m.passInput.SetValue("")
			m.passInput.Focus()
			return m, nil
		}
		m.result = msg.result
		m.step = stepDone
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.step = stepDone
			return m, tea.Quit
		}
		switch m.step {
		case stepEmail:
			switch msg.String() {
			case "enter", "tab":
				if strings.TrimSpace(m.emailInput.Value()) == "" {
					m.errMsg = "Email is required"
					return m, nil
				}
				m.errMsg = ""
				m.emailInput.Blur()
				m.passInput.Focus()
				m.step = stepPassword
				return m, nil
			}
			var cmd tea.Cmd
			m.emailInput, cmd = m.emailInput.Update(msg)
			return m, cmd
		case stepPassword:
			switch msg.String() {
			case "enter":
				if m.passInput.Value() == "" {
					m.errMsg = "Password is required"
					return m, nil
				}
				m.errMsg = ""
				m.step = stepBusy
				return m, m.signInCmd()
			case "esc", "shift+tab":
				m.passInput.Blur()
				m.emailInput.Focus()
				m.step = stepEmail
				return m, nil
			}
			var cmd tea.Cmd
			m.passInput, cmd = m.passInput.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m loginModel) signInCmd() tea.Cmd {
	client := m.client
	email := strings.TrimSpace(m.emailInput.Value())
	password := m.passInput.Value()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		res, err := client.SignIn(ctx, email, password)
		return loginResultMsg{result: res, err: err}
	}
}

func (m loginModel) View() string {
	width := m.width
	height := m.height
	if width <= 0 {
		width = 100
	}
	if height <= 0 {
		height = 28
	}

	header := m.renderHeader(width)
	footer := m.renderFooter(width)

	contentHeight := height - 4
	if contentHeight < 8 {
		contentHeight = 8
	}
	content := m.renderContent(width, contentHeight)
	ui := lipgloss.JoinVertical(lipgloss.Left, header, content, footer)

	return lipgloss.NewStyle().
		Foreground(liColorText).
		Width(width).
		Height(height).
		Render(ui)
}

func (m loginModel) renderHeader(width int) string {
	left := "  " + liTitleStyle.Render("tavolo") + " " + liMutedStyle.Render("› Sign In")
	right := liMutedStyle.Render(time.Now().Format("Mon 02 Jan")) + "  "
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}
	return liHeaderStyle.Width(width).Render(left + strings.Repeat(" ", padding) + right)
}

func (m loginModel) renderFooter(width int) string {
	switch m.step {
	case stepEmail:
		return liFooterStyle.Width(width).Render("enter next  ctrl+c quit")
	case stepPassword:
		return liFooterStyle.Width(width).Render("enter sign in  esc back  ctrl+c quit")
	case stepBusy:
		return liFooterStyle.Width(width).Render("Signing in...")
	default:
		return liFooterStyle.Width(width).Render("")
	}
}

func (m loginModel) renderContent(width, height int) string {
	cardWidth := width - 6
	if cardWidth > 72 {
		cardWidth = 72
	}
	if cardWidth < 40 {
		cardWidth = width - 2
	}
	inputWidth := cardWidth - 8
	if inputWidth < 30 {
		inputWidth = 30
	}

	rows := []string{
		liLabelStyle.Render("Super admin sign in"),
		"",
		liLabelStyle.Render("Email"),
		liInputStyle.Width(inputWidth).Render(m.emailInput.View()),
		"",
		liLabelStyle.Render("Password"),
		liInputStyle.Width(inputWidth).Render(m.passInput.View()),
	}
	if m.step == stepBusy {
		rows = append(rows, "", liMutedStyle.Render("Contacting the backend..."))
	}
	if m.errMsg != "" {
		rows = append(rows, "", liWarnStyle.Render(m.errMsg))
	}

	card := liPanelStyle.Width(cardWidth).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, card)
}

// RunLogin walks the sign-in wizard and returns the authenticated session.
func RunLogin(client *api.Client) (*session.Session, error) {
	prog := tea.NewProgram(newLoginModel(client), tea.WithAltScreen())
	finalModel, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("login tui failed: %w", err)
	}
	m, ok := finalModel.(loginModel)
	if !ok {
		return nil, fmt.Errorf("unexpected login model type")
	}
	if m.result == nil {
		return nil, fmt.Errorf("sign in cancelled")
	}
	return &session.Session{
		Token:     m.result.Token,
		AdminID:   m.result.User.ID,
		Email:     m.result.User.Email,
		Username:  m.result.User.Username,
		CreatedAt: time.Now(),
	}, nil
}
