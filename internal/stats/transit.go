package stats

import (
	"errors"
	"fmt"
	"time"

	"shiptracker/internal/shipment"
)

var (
	// ErrEmptyInput is returned when there are too few records to measure anything.
	ErrEmptyInput = errors.New("no records to analyze")
	// ErrLocaleNotFound is matched by every *LocaleNotFoundError.
	ErrLocaleNotFound = errors.New("locale not found")
)

// LocaleNotFoundError is returned when a layover is requested for a locale that no record carries.
type LocaleNotFoundError struct {
	Locale shipment.Locale
}

func (e *LocaleNotFoundError) Error() string {
	return fmt.Sprintf("no records found for locale %s", e.Locale)
}

func (e *LocaleNotFoundError) Is(target error) bool { return target == ErrLocaleNotFound }

// Transfer is the interval between two records.
type Transfer struct {
	From    shipment.Record
	To      shipment.Record
	Minutes int64
}

// Layover is the span between the first and last record seen in one locale.
type Layover struct {
	Locale shipment.Locale
	Transfer
}

// Summary holds every transit metric for one shipment.
type Summary struct {
	RecordCount  int
	Start        time.Time
	End          time.Time
	TotalMinutes int64
	LongestDelay Transfer
	Layovers     []Layover
	Records      []shipment.Record
}

// MinutesBetween returns whole minutes from start to end, truncated toward zero.
func MinutesBetween(start, end time.Time) int64 {
	return int64(end.Sub(start) / time.Minute)
}

// NewTransfer builds the transfer between two records.
func NewTransfer(from, to shipment.Record) Transfer {
	return Transfer{From: from, To: to, Minutes: MinutesBetween(from.Timestamp, to.Timestamp)}
}

// TotalShipmentTime returns the minutes between the first and last record.
func TotalShipmentTime(records []shipment.Record) (int64, error) {
	if len(records) == 0 {
		return 0, ErrEmptyInput
	}
	return MinutesBetween(records[0].Timestamp, records[len(records)-1].Timestamp), nil
}

// Transfers returns one transfer per pair of adjacent records.
func Transfers(records []shipment.Record) []Transfer {
	if len(records) < 2 {
		return nil
	}
	transfers := make([]Transfer, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		transfers = append(transfers, NewTransfer(records[i-1], records[i]))
	}
	return transfers
}

// LongestDelay returns the longest gap between adjacent records. On ties the
// earliest transfer wins.
func LongestDelay(records []shipment.Record) (Transfer, error) {
	transfers := Transfers(records)
	if len(transfers) == 0 {
		return Transfer{}, fmt.Errorf("%w: longest delay needs at least two records, got %d", ErrEmptyInput, len(records))
	}

	longest := transfers[0]
	for _, t := range transfers[1:] {
		if t.Minutes > longest.Minutes {
			longest = t
		}
	}
	return longest, nil
}

// Locales returns the distinct locales in order of first appearance.
func Locales(records []shipment.Record) []shipment.Locale {
	var locales []shipment.Locale
	for _, rec := range records {
		seen := false
		for _, l := range locales {
			if l.Same(rec.Locale) {
				seen = true
				break
			}
		}
		if !seen {
			locales = append(locales, rec.Locale)
		}
	}
	return locales
}

// LayoverFor spans the first and last record carrying loc, even when the shipment
// left the locale and came back in between.
func LayoverFor(records []shipment.Record, loc shipment.Locale) (Layover, error) {
	first, last := -1, -1
	for i, rec := range records {
		if !rec.Locale.Same(loc) {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	if first < 0 {
		return Layover{}, &LocaleNotFoundError{Locale: loc}
	}
	return Layover{
		Locale:   records[first].Locale,
		Transfer: NewTransfer(records[first], records[last]),
	}, nil
}

// LayoverTimes returns one layover per distinct locale, in order of first appearance.
func LayoverTimes(records []shipment.Record) ([]Layover, error) {
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}
	locales := Locales(records)
	layovers := make([]Layover, 0, len(locales))
	for _, loc := range locales {
		l, err := LayoverFor(records, loc)
		if err != nil {
			return nil, err
		}
		layovers = append(layovers, l)
	}
	return layovers, nil
}

// Analyze computes the full transit summary. Any failing metric aborts the summary.
func Analyze(records []shipment.Record) (*Summary, error) {
	total, err := TotalShipmentTime(records)
	if err != nil {
		return nil, err
	}
	longest, err := LongestDelay(records)
	if err != nil {
		return nil, err
	}
	layovers, err := LayoverTimes(records)
	if err != nil {
		return nil, err
	}

	return &Summary{
		RecordCount:  len(records),
		Start:        records[0].Timestamp,
		End:          records[len(records)-1].Timestamp,
		TotalMinutes: total,
		LongestDelay: longest,
		Layovers:     layovers,
		Records:      records,
	}, nil
}
