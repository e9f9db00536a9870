package shipment

import "strings"

// Lookup resolves a token to a canonical locale name.
type Lookup interface {
	Lookup(token string) (string, bool)
}

const (
	localeDelimiters = ".,-; "
	localeSplitLimit = 3
)

// ResolveLocale looks for a country at the end of a status message, where carriers
// usually put it ("... CINCINNATI HUB,OH-USA"). It returns the unresolved Locale when
// the rightmost token is unknown to the catalog.
func ResolveLocale(status string, catalog Lookup) Locale {
	for _, token := range rsplitN(status, localeDelimiters, localeSplitLimit) {
		if token == "" {
			continue
		}
		if name, ok := catalog.Lookup(token); ok {
			return NewLocale(name)
		}
		return Locale{}
	}
	return Locale{}
}

// rsplitN splits s from the right on any rune in seps into at most n pieces,
// rightmost first. The last piece is the unsplit remainder.
func rsplitN(s, seps string, n int) []string {
	var pieces []string
	for len(pieces) < n-1 {
		idx := strings.LastIndexAny(s, seps)
		if idx < 0 {
			break
		}
		pieces = append(pieces, s[idx+1:])
		s = s[:idx]
	}
	return append(pieces, s)
}

// ResolveLocales attempts a locale for every record. Records whose text does not
// end in a known country keep the unresolved Locale.
func ResolveLocales(records []Record, catalog Lookup) []Record {
	out := make([]Record, len(records))
	for i, rec := range records {
		rec.Locale = ResolveLocale(rec.Status, catalog)
		out[i] = rec
	}
	return out
}
