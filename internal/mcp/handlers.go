package mcp

import (
	"fmt"

	"shiptracker/internal/report"
	"shiptracker/internal/stats"
)

func (s *Server) handleAnalyzeShipment(args map[string]interface{}) (interface{}, error) {
	path, _ := args["path"].(string)
	withRecords, _ := args["include_records"].(bool)

	var summary *stats.Summary
	var err error

	switch {
	case path != "":
		summary, err = s.analyzer.AnalyzeFile(path)
	case args["lines"] != nil:
		raw, ok := args["lines"].([]interface{})
		if !ok {
			return nil, fmt.Errorf("'lines' must be an array of strings")
		}
		lines := make([]string, 0, len(raw))
		for i, v := range raw {
			line, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("'lines[%d]' must be a string", i)
			}
			lines = append(lines, line)
		}
		summary, err = s.analyzer.AnalyzeLines(lines)
	default:
		return nil, fmt.Errorf("either 'path' or 'lines' is required")
	}
	if err != nil {
		return nil, err
	}

	return report.NewDocument(summary, withRecords), nil
}

func (s *Server) handleResolveLocale(args map[string]interface{}) (interface{}, error) {
	text, ok := args["text"].(string)
	if !ok {
		return nil, fmt.Errorf("'text' is required")
	}

	loc := s.analyzer.ResolveLocale(text)
	return map[string]interface{}{
		"text":     text,
		"locale":   loc.Name(),
		"resolved": loc.Resolved(),
		"origin":   loc.Origin().String(),
	}, nil
}
