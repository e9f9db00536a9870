package shipment

// PropagateLocales forward-fills unresolved locales with the most recent resolved
// one. Records before the first resolved record stay unresolved. The result never
// depends on later records, and applying it twice changes nothing.
func PropagateLocales(records []Record) []Record {
	out, _ := fold(records, Locale{}, func(current Locale, rec Record) (Record, Locale) {
		if rec.Locale.Resolved() {
			return rec, rec.Locale
		}
		rec.Locale = current.propagated()
		return rec, current
	})
	return out
}

func fold(records []Record, acc Locale, step func(Locale, Record) (Record, Locale)) ([]Record, Locale) {
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		var next Record
		next, acc = step(acc, rec)
		out = append(out, next)
	}
	return out, acc
}

// LeadingUnresolved counts the records before the first resolved locale.
func LeadingUnresolved(records []Record) int {
	for i, rec := range records {
		if rec.Locale.Resolved() {
			return i
		}
	}
	return len(records)
}
