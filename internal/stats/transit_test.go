package stats

import (
	"errors"
	"testing"
	"time"

	"shiptracker/internal/shipment"
)

type catalog map[string]string

func (c catalog) Lookup(token string) (string, bool) {
	name, ok := c[token]
	return name, ok
}

var testCatalog = catalog{"USA": "United States", "US": "United States", "CA": "Canada", "DE": "Germany"}

func rec(ts, locale string) shipment.Record {
	t, err := time.Parse(shipment.TimestampLayout, ts)
	if err != nil {
		panic(err)
	}
	r := shipment.Record{Timestamp: t, Status: "scan " + ts}
	if locale != "" {
		r.Locale = shipment.NewLocale(locale)
	}
	return r
}

func TestMinutesBetween(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected int64
	}{
		{"AcrossMidnight", "2017-01-22 15:23:58", "2017-01-23 16:02:24", 1478},
		{"Same", "2017-01-22 15:23:58", "2017-01-22 15:23:58", 0},
		{"Truncates", "2017-01-22 15:23:58", "2017-01-22 15:24:57", 0},
		{"Negative", "2017-01-22 15:25:00", "2017-01-22 15:23:00", -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MinutesBetween(rec(tt.start, "").Timestamp, rec(tt.end, "").Timestamp)
			if got != tt.expected {
				t.Errorf("MinutesBetween() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestAnalyze_CustomsScenario(t *testing.T) {
	records, err := shipment.Build([]string{
		"2017-01-23, 16:02:24, Departed Facility in CINCINNATI HUB,OH-USA",
		"2017-01-24, 18:10:36, Customs status updated;",
	}, testCatalog, shipment.Options{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	summary, err := Analyze(records)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	// 1 day 2h 8m 12s
	if summary.TotalMinutes != 1568 {
		t.Errorf("Expected total 1568 minutes, got %d", summary.TotalMinutes)
	}
	if summary.LongestDelay.Minutes != 1568 {
		t.Errorf("Expected longest delay 1568 minutes, got %d", summary.LongestDelay.Minutes)
	}
	if summary.LongestDelay.From.Line != 1 || summary.LongestDelay.To.Line != 2 {
		t.Errorf("Unexpected longest delay bounds: %d -> %d", summary.LongestDelay.From.Line, summary.LongestDelay.To.Line)
	}
	if len(summary.Layovers) != 1 {
		t.Fatalf("Expected 1 layover, got %d", len(summary.Layovers))
	}
	if got := summary.Layovers[0].Locale.Name(); got != "United States" {
		t.Errorf("Expected layover in United States, got %q", got)
	}
	if summary.Layovers[0].Minutes != 1568 {
		t.Errorf("Expected layover of 1568 minutes, got %d", summary.Layovers[0].Minutes)
	}
}

func TestSingleRecord(t *testing.T) {
	records := []shipment.Record{rec("2017-01-23 16:02:24", "United States")}

	total, err := TotalShipmentTime(records)
	if err != nil || total != 0 {
		t.Errorf("TotalShipmentTime() = %d, %v; want 0, nil", total, err)
	}

	if _, err := LongestDelay(records); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Expected ErrEmptyInput from LongestDelay, got %v", err)
	}

	layovers, err := LayoverTimes(records)
	if err != nil {
		t.Fatalf("LayoverTimes failed: %v", err)
	}
	if len(layovers) != 1 || layovers[0].Minutes != 0 {
		t.Errorf("Expected one zero-length layover, got %+v", layovers)
	}

	if _, err := Analyze(records); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Expected Analyze to fail on a single record, got %v", err)
	}
}

func TestEmptyInput(t *testing.T) {
	if _, err := TotalShipmentTime(nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("TotalShipmentTime: expected ErrEmptyInput, got %v", err)
	}
	if _, err := LongestDelay(nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("LongestDelay: expected ErrEmptyInput, got %v", err)
	}
	if _, err := LayoverTimes(nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("LayoverTimes: expected ErrEmptyInput, got %v", err)
	}
	if _, err := Analyze(nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Analyze: expected ErrEmptyInput, got %v", err)
	}
}

func TestLongestDelay_FirstMaximumWins(t *testing.T) {
	records := []shipment.Record{
		rec("2017-01-01 00:00:00", "Canada"),
		rec("2017-01-01 01:00:00", "Canada"),
		rec("2017-01-01 01:30:00", "Canada"),
		rec("2017-01-01 02:30:00", "Canada"),
	}
	records[1].Line, records[3].Line = 2, 4

	longest, err := LongestDelay(records)
	if err != nil {
		t.Fatalf("LongestDelay failed: %v", err)
	}
	if longest.Minutes != 60 {
		t.Errorf("Expected 60 minutes, got %d", longest.Minutes)
	}
	if longest.To.Line != 2 {
		t.Errorf("Expected the first 60 minute transfer, got one ending at line %d", longest.To.Line)
	}
}

func TestTransferProperties(t *testing.T) {
	records := []shipment.Record{
		rec("2017-01-01 00:00:00", "Canada"),
		rec("2017-01-01 03:17:00", "Canada"),
		rec("2017-01-02 11:05:00", "United States"),
		rec("2017-01-02 11:05:00", "United States"),
		rec("2017-01-04 08:00:00", "Germany"),
		rec("2017-01-04 09:45:00", "Germany"),
	}

	total, err := TotalShipmentTime(records)
	if err != nil {
		t.Fatalf("TotalShipmentTime failed: %v", err)
	}
	longest, err := LongestDelay(records)
	if err != nil {
		t.Fatalf("LongestDelay failed: %v", err)
	}

	var sum int64
	for _, tr := range Transfers(records) {
		sum += tr.Minutes
		if tr.Minutes < 0 {
			t.Errorf("Negative transfer on sorted input: %d", tr.Minutes)
		}
		if longest.Minutes < tr.Minutes {
			t.Errorf("Longest delay %d shorter than transfer %d", longest.Minutes, tr.Minutes)
		}
	}
	if sum != total {
		t.Errorf("Sum of transfers %d != total %d", sum, total)
	}
}

func TestLayoverTimes_NonContiguousLocale(t *testing.T) {
	records := []shipment.Record{
		rec("2017-01-01 00:00:00", "Canada"),
		rec("2017-01-01 02:00:00", "United States"),
		rec("2017-01-01 05:00:00", "Canada"),
		rec("2017-01-01 06:00:00", "Germany"),
	}

	layovers, err := LayoverTimes(records)
	if err != nil {
		t.Fatalf("LayoverTimes failed: %v", err)
	}

	expected := []struct {
		locale  string
		minutes int64
	}{
		{"Canada", 300},
		{"United States", 0},
		{"Germany", 0},
	}
	if len(layovers) != len(expected) {
		t.Fatalf("Expected %d layovers, got %d", len(expected), len(layovers))
	}
	for i, e := range expected {
		if layovers[i].Locale.Name() != e.locale || layovers[i].Minutes != e.minutes {
			t.Errorf("Layover %d = %s/%d, want %s/%d", i, layovers[i].Locale, layovers[i].Minutes, e.locale, e.minutes)
		}
	}
}

func TestLayoverTimes_UnresolvedIsItsOwnGroup(t *testing.T) {
	records := []shipment.Record{
		rec("2017-01-01 00:00:00", ""),
		rec("2017-01-01 00:30:00", ""),
		rec("2017-01-01 01:00:00", "Canada"),
	}

	layovers, err := LayoverTimes(records)
	if err != nil {
		t.Fatalf("LayoverTimes failed: %v", err)
	}
	if len(layovers) != 2 {
		t.Fatalf("Expected 2 layovers, got %d", len(layovers))
	}
	if layovers[0].Locale.Resolved() || layovers[0].Minutes != 30 {
		t.Errorf("Expected unresolved layover of 30 minutes, got %s/%d", layovers[0].Locale, layovers[0].Minutes)
	}
}

func TestLayoverFor_LocaleNotFound(t *testing.T) {
	records := []shipment.Record{rec("2017-01-01 00:00:00", "United States")}

	_, err := LayoverFor(records, shipment.NewLocale("Canada"))
	if !errors.Is(err, ErrLocaleNotFound) {
		t.Fatalf("Expected ErrLocaleNotFound, got %v", err)
	}
	var notFound *LocaleNotFoundError
	if !errors.As(err, &notFound) || notFound.Locale.Name() != "Canada" {
		t.Errorf("Expected LocaleNotFoundError for Canada, got %v", err)
	}
}

func TestLocales_FirstAppearanceOrder(t *testing.T) {
	records := []shipment.Record{
		rec("2017-01-01 00:00:00", "Germany"),
		rec("2017-01-01 01:00:00", "Canada"),
		rec("2017-01-01 02:00:00", "Germany"),
		rec("2017-01-01 03:00:00", ""),
	}

	got := Locales(records)
	if len(got) != 3 {
		t.Fatalf("Expected 3 locales, got %d", len(got))
	}
	if got[0].Name() != "Germany" || got[1].Name() != "Canada" || got[2].Resolved() {
		t.Errorf("Unexpected locale order: %v", got)
	}
}
