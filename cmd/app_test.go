package cmd

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := loadSettings()
	if err != nil {
		t.Fatalf("loadSettings() error = %v", err)
	}
	if s.PriorityMin != 1 || s.PriorityMax != 5 {
		t.Errorf("priority bounds = %d-%d, want 1-5", s.PriorityMin, s.PriorityMax)
	}
	if len(s.RequiredColumns) != 9 {
		t.Errorf("required columns = %d, want 9", len(s.RequiredColumns))
	}
}

func TestLoadSettingsEnvOverrides(t *testing.T) {
	t.Setenv("BOARD_XLSX_PATH", "/data/tasks.xlsx")
	t.Setenv("BOARD_REFRESH_SECONDS", "30")
	t.Setenv("STOCK_TTL_SECONDS", "120")
	t.Setenv("TICKERS", " voo, pltr ,")

	s, err := loadSettings()
	if err != nil {
		t.Fatalf("loadSettings() error = %v", err)
	}
	if s.SpreadsheetPath != "/data/tasks.xlsx" {
		t.Errorf("SpreadsheetPath = %q", s.SpreadsheetPath)
	}
	if s.RefreshSeconds != 30 || s.QuoteTTLSeconds != 120 {
		t.Errorf("intervals = %d, %d, want 30, 120", s.RefreshSeconds, s.QuoteTTLSeconds)
	}
	if want := []string{"VOO", "PLTR"}; !reflect.DeepEqual(s.Tickers, want) {
		t.Errorf("Tickers = %v, want %v", s.Tickers, want)
	}
}

func TestLoadSettingsYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	content := "spreadsheet_path: /srv/projects.xlsx\nsheet_name: Plan\nquote_ttl_seconds: 60\ntickers: [voo, pltr]\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	old := *settingsFile
	*settingsFile = path
	defer func() { *settingsFile = old }()

	s, err := loadSettings()
	if err != nil {
		t.Fatalf("loadSettings() error = %v", err)
	}
	if s.SpreadsheetPath != "/srv/projects.xlsx" || s.SheetName != "Plan" || s.QuoteTTLSeconds != 60 {
		t.Errorf("settings = %+v", s)
	}
	// Values absent from the file keep their defaults.
	if s.PriorityMax != 5 {
		t.Errorf("PriorityMax = %d, want default 5", s.PriorityMax)
	}
	// Tickers from the file are canonicalized like the TICKERS variable.
	if want := []string{"VOO", "PLTR"}; !reflect.DeepEqual(s.Tickers, want) {
		t.Errorf("Tickers = %v, want %v", s.Tickers, want)
	}

	*settingsFile = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := loadSettings(); err == nil {
		t.Error("loadSettings() with an explicit missing file should fail")
	}
}
