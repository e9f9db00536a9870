package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"shiptracker/internal/config"
	"shiptracker/internal/ingest"
	"shiptracker/internal/shipment"
	"shiptracker/internal/stats"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const export = `Date, Time, Status
2017-01-23, 16:02:24, Departed Facility in CINCINNATI HUB,OH-USA
2017-01-24, 18:10:36, Customs status updated;
2017-01-25, 07:41:12, Arrived at Sort Facility LEIPZIG - DE
`

func TestAnalyzeFile(t *testing.T) {
	a, err := New(&config.AppConfig{Workers: 2})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	summary, err := a.AnalyzeFile(writeFile(t, "export.txt", export))
	if err != nil {
		t.Fatalf("AnalyzeFile failed: %v", err)
	}

	if summary.RecordCount != 3 {
		t.Errorf("RecordCount = %d, want 3", summary.RecordCount)
	}
	if len(summary.Layovers) != 2 {
		t.Fatalf("Expected 2 layovers, got %d", len(summary.Layovers))
	}
	if summary.Layovers[0].Locale.Name() != "United States" || summary.Layovers[1].Locale.Name() != "Germany" {
		t.Errorf("Unexpected layovers: %s, %s", summary.Layovers[0].Locale, summary.Layovers[1].Locale)
	}
	if summary.LongestDelay.Minutes != 1568 {
		t.Errorf("LongestDelay = %d, want 1568", summary.LongestDelay.Minutes)
	}
}

func TestAnalyzeFile_Errors(t *testing.T) {
	a := NewWithCatalog(mapCatalog{}, shipment.Options{})

	if _, err := a.AnalyzeFile(writeFile(t, "export.pdf", export)); !errors.Is(err, ingest.ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := a.AnalyzeFile(writeFile(t, "header-only.txt", "Date, Time, Status\n")); !errors.Is(err, stats.ErrEmptyInput) {
		t.Errorf("Expected ErrEmptyInput, got %v", err)
	}
	if _, err := a.AnalyzeFile(writeFile(t, "bad.txt", "header\nnot a record\n")); !errors.Is(err, shipment.ErrMalformedLine) {
		t.Errorf("Expected ErrMalformedLine, got %v", err)
	}
}

func TestNew_CustomCatalog(t *testing.T) {
	path := writeFile(t, "catalog.yaml", "countries:\n  - {alpha2: XA, name: Atlantis}\n")
	a, err := New(&config.AppConfig{CatalogPath: path})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := a.ResolveLocale("Arrived at harbour, XA").Name(); got != "Atlantis" {
		t.Errorf("ResolveLocale() = %q, want Atlantis", got)
	}
	if a.ResolveLocale("Arrived at hub, US").Resolved() {
		t.Errorf("US should not resolve with a custom catalog")
	}

	if _, err := New(&config.AppConfig{CatalogPath: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Errorf("Expected an error for a missing catalog")
	}
}

type mapCatalog map[string]string

func (m mapCatalog) Lookup(token string) (string, bool) {
	name, ok := m[token]
	return name, ok
}
