// Package ingest turns tracking exports into the raw lines the shipment pipeline consumes.
package ingest

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies the layout of an input file.
type Format string

const (
	FormatText Format = "txt"
	FormatCSV  Format = "csv"
)

// MaxLineSize bounds a single line of a text export.
const MaxLineSize = 16 << 20

// ErrUnsupportedFormat is returned for inputs that are neither text nor CSV.
var ErrUnsupportedFormat = errors.New("shiptracker can only parse '.txt' & '.csv' files")

// DetectFormat infers the format from the file extension.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch Format(ext) {
	case FormatText, FormatCSV:
		return Format(ext), nil
	case "":
		return "", fmt.Errorf("%w: no file extension detected in %s", ErrUnsupportedFormat, path)
	default:
		return "", fmt.Errorf("%w: got %s", ErrUnsupportedFormat, path)
	}
}

// ReadFile reads a tracking export from disk.
func ReadFile(path string) ([]string, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	lines, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("error parsing data from %s: %w", path, err)
	}
	return lines, nil
}

// Read reads every data line from r. The first line or row is a header and is skipped.
func Read(r io.Reader, format Format) ([]string, error) {
	switch format {
	case FormatText:
		return readText(r, MaxLineSize)
	case FormatCSV:
		return readCSV(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func readText(r io.Reader, maxLine int) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(64*1024, maxLine)), maxLine)
	header := true
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if header {
			header = false
			continue
		}
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNum+1, err)
	}
	return lines, nil
}

func readCSV(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var lines []string
	header := true
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if header {
			header = false
			continue
		}

		fields := make([]string, 0, len(row))
		for _, field := range row {
			if f := strings.TrimSpace(field); f != "" {
				fields = append(fields, f)
			}
		}
		if len(fields) == 0 {
			continue
		}
		lines = append(lines, strings.Join(fields, ", "))
	}
	return lines, nil
}
