package ui

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ViewPrefs stores a list view's sticky filter state. The free-text query
// is deliberately not persisted; stale searches confuse more than they help.
type ViewPrefs struct {
	Tab       string `json:"tab,omitempty"`
	DateToken string `json:"date_token,omitempty"`
	Category  string `json:"category,omitempty"`
}

// UIPreferences stores persisted app preferences per view.
type UIPreferences struct {
	ActiveTenant string    `json:"active_tenant,omitempty"`
	Tenants      ViewPrefs `json:"tenants"`
	Bookings     ViewPrefs `json:"bookings"`
	Orders       ViewPrefs `json:"orders"`
	CallLogs     ViewPrefs `json:"call_logs"`
	Feedback     ViewPrefs `json:"feedback"`
	Menus        ViewPrefs `json:"menus"`
	Recordings   ViewPrefs `json:"recordings"`
}

func prefsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home dir: %w", err)
	}
	return filepath.Join(home, ".tavolo", "ui_prefs.json"), nil
}

func loadUIPreferences() UIPreferences {
	path, err := prefsPath()
	if err != nil {
		return UIPreferences{}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return UIPreferences{}
	}

	var prefs UIPreferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return UIPreferences{}
	}
	return prefs
}

func saveUIPreferences(prefs UIPreferences) error {
	path, err := prefsPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create prefs dir: %w", err)
	}

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal prefs: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write prefs: %w", err)
	}
	return nil
}
