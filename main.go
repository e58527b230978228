package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"tavolo/cmd"
	"tavolo/internal/api"
	"tavolo/internal/logging"
	"tavolo/internal/store"
	"tavolo/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	// Parse CLI flags
	config, err := cmd.ParseFlags(version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns stdout, so logs go to a file.
	logger, logCloser, err := logging.Open(logging.Config{
		Level:  config.LogLevel,
		Format: "json",
		File:   config.LogFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	// Open the local cache
	st, err := store.Open(config.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open cache: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if config.Logout {
		if err := st.ClearSession(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to clear session: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Signed out.")
		return
	}

	sess, err := st.LoadSession()
	if err != nil && !errors.Is(err, store.ErrNoSession) {
		fmt.Fprintf(os.Stderr, "Failed to load session: %v\n", err)
		os.Exit(1)
	}
	if sess != nil && sess.Expired(time.Now()) {
		logger.Info("stored session expired", slog.String("email", sess.Email))
		sess = nil
		_ = st.ClearSession()
	}

	client := api.NewClient(config.APIBase, api.TokenFunc(func() string {
		if sess == nil {
			return ""
		}
		return sess.Token
	}), logger)

	if sess == nil {
		fresh, err := cmd.RunLogin(client)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Sign in failed: %v\n", err)
			os.Exit(1)
		}
		sess = fresh
		if err := st.SaveSession(sess); err != nil {
			logger.Warn("failed to persist session", slog.Any("error", err))
		}
	}

	logger.Info("starting tavolo",
		slog.String("version", version),
		slog.String("api", config.APIBase),
		slog.String("admin", sess.Email))

	p := tea.NewProgram(ui.New(client, st, sess, logger, config.PollInterval), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}
