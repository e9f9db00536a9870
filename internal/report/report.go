// Package report renders transit summaries for people and for other tools.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"shiptracker/internal/stats"
	"shiptracker/internal/visuals"
)

// Format selects the report encoding.
type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatMsgpack Format = "msgpack"
)

// Options tunes report output.
type Options struct {
	// Mermaid appends a layover Gantt chart to text reports.
	Mermaid bool
	// Records includes every record in structured reports.
	Records bool
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML, FormatMsgpack:
		return f, nil
	case "txt":
		return FormatText, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown report format %q (expected text, json, yaml or msgpack)", s)
	}
}

// FormatFromPath picks a format from an output file extension, defaulting to text.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".msgpack", ".mp":
		return FormatMsgpack
	default:
		return FormatText
	}
}

// Encode writes the summary to w in the requested format.
func Encode(w io.Writer, s *stats.Summary, format Format, opts Options) error {
	switch format {
	case FormatText, "":
		if err := Text(w, s); err != nil {
			return err
		}
		if opts.Mermaid {
			if chart := visuals.GenerateLayoverGantt(s); chart != "" {
				_, err := fmt.Fprintf(w, "%s\n", chart)
				return err
			}
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(NewDocument(s, opts.Records))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewDocument(s, opts.Records)); err != nil {
			return err
		}
		return enc.Close()
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(NewDocument(s, opts.Records))
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// Text writes the human-readable report.
func Text(w io.Writer, s *stats.Summary) error {
	var sb strings.Builder

	sb.WriteString("\n\t*All times formatted [hh:mm]\n\n\n")
	sb.WriteString(fmt.Sprintf("Total transit time: %s\n\n\n", FormatMinutes(s.TotalMinutes)))

	sb.WriteString("Total layover times:\n")
	for _, l := range s.Layovers {
		sb.WriteString(fmt.Sprintf("%s: %s\n", l.Locale, FormatMinutes(l.Minutes)))
	}
	sb.WriteString("\n\n")

	d := s.LongestDelay
	sb.WriteString("The longest delay occured:\n")
	sb.WriteString(fmt.Sprintf("From: %s - %s\n", d.From.Locale, d.From.Status))
	sb.WriteString(fmt.Sprintf("To: %s - %s\n", d.To.Locale, d.To.Status))
	sb.WriteString(fmt.Sprintf("Duration: %s\n\n", FormatMinutes(d.Minutes)))

	_, err := io.WriteString(w, sb.String())
	return err
}
