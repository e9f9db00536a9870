package shipment

import (
	"regexp"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// TimestampLayout is the fixed layout of the joined date and time tokens.
const TimestampLayout = "2006-01-02 15:04:05"

var (
	dateRegex   = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	timeRegex   = regexp.MustCompile(`\d{2}:\d{2}:\d{2}`)
	statusRegex = regexp.MustCompile(`[a-zA-Z].*$`)
)

// ParseLine turns one raw log line into a Record with an unresolved locale.
// The date, time and status tokens are located independently, so their order in
// the line does not matter.
func ParseLine(line string, lineNum int) (Record, error) {
	line = strings.TrimRight(line, "\r\n")

	date := dateRegex.FindString(line)
	if date == "" {
		return Record{}, &LineError{Line: lineNum, Content: line, Reason: "missing date token (YYYY-MM-DD)"}
	}
	clock := timeRegex.FindString(line)
	if clock == "" {
		return Record{}, &LineError{Line: lineNum, Content: line, Reason: "missing time token (HH:MM:SS)"}
	}
	status := statusRegex.FindString(line)
	if status == "" {
		return Record{}, &LineError{Line: lineNum, Content: line, Reason: "missing status text"}
	}

	ts, err := time.Parse(TimestampLayout, date+" "+clock)
	if err != nil {
		return Record{}, &LineError{Line: lineNum, Content: line, Reason: "invalid timestamp", Err: err}
	}

	return Record{
		Line:      lineNum,
		Timestamp: ts,
		Status:    status,
	}, nil
}

// ExtractRecords parses every line and returns the records sorted by timestamp.
// Lines are parsed by up to workers goroutines; the sort is stable on input order
// and the error returned is always the one for the lowest-numbered bad line.
func ExtractRecords(lines []string, workers int) ([]Record, error) {
	records := make([]Record, len(lines))
	errs := make([]error, len(lines))

	if workers <= 1 {
		for i, line := range lines {
			records[i], errs[i] = ParseLine(line, i+1)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(workers)
		for i, line := range lines {
			g.Go(func() error {
				records[i], errs[i] = ParseLine(line, i+1)
				return nil
			})
		}
		_ = g.Wait()
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	slices.SortStableFunc(records, func(a, b Record) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return records, nil
}
