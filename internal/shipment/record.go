package shipment

import "time"

// Origin records how a Locale was obtained.
type Origin int

const (
	// Unresolved is the zero Origin: no locale is known for the record.
	Unresolved Origin = iota
	// Parsed indicates the locale was matched in the record's own status text.
	Parsed
	// Propagated indicates the locale was carried forward from an earlier record.
	Propagated
)

func (o Origin) String() string {
	switch o {
	case Parsed:
		return "parsed"
	case Propagated:
		return "propagated"
	default:
		return "unresolved"
	}
}

// Locale is a tagged locale value. The zero Locale is the explicit unresolved marker
// and is never equal to a resolved locale, whatever its name.
type Locale struct {
	name   string
	origin Origin
}

// NewLocale returns a resolved locale parsed from status text.
func NewLocale(name string) Locale {
	return Locale{name: name, origin: Parsed}
}

// Name returns the canonical country name, or "" when unresolved.
func (l Locale) Name() string { return l.name }

// Origin reports how the locale was obtained.
func (l Locale) Origin() Origin { return l.origin }

// Resolved reports whether the locale carries a country name.
func (l Locale) Resolved() bool { return l.origin != Unresolved }

// Same reports whether two locales designate the same place. Origin is ignored.
func (l Locale) Same(other Locale) bool {
	return l.Resolved() == other.Resolved() && l.name == other.name
}

// String returns the display form used in reports.
func (l Locale) String() string {
	if !l.Resolved() {
		return "Unresolved"
	}
	return l.name
}

func (l Locale) propagated() Locale {
	if !l.Resolved() {
		return Locale{}
	}
	return Locale{name: l.name, origin: Propagated}
}

// Record is one tracking event reconstructed from a log line.
type Record struct {
	// Line is the 1-based position of the source line in the input.
	Line int
	// Timestamp is the event time (second precision, no timezone).
	Timestamp time.Time
	// Status is the carrier status message.
	Status string
	// Locale stays unresolved until the resolver or the propagator fills it.
	Locale Locale
}
