package shipment

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine is matched by every *LineError.
	ErrMalformedLine = errors.New("malformed line")
	// ErrNoLocale is returned when a locale is required but none resolved.
	ErrNoLocale = errors.New("no locale could be resolved from the input")
)

// LineError describes a raw line that could not be turned into a Record.
type LineError struct {
	Line    int
	Content string
	Reason  string
	Err     error
}

func (e *LineError) Error() string {
	msg := fmt.Sprintf("malformed line %d: %s: %q", e.Line, e.Reason, e.Content)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LineError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrMalformedLine) hold for any *LineError.
func (e *LineError) Is(target error) bool { return target == ErrMalformedLine }
