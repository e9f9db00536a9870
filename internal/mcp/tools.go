package mcp

func (s *Server) listTools() interface{} {
	return map[string]interface{}{
		"tools": []interface{}{
			map[string]interface{}{
				"name": "analyze_shipment",
				"description": "Analyze a shipment tracking log: total transit time, layover time per country and the longest delay between two consecutive events. " +
					"Provide either 'path' to a .txt or .csv export (first line is a header) or 'lines' with raw tracking lines. All durations are in minutes.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"path":            map[string]interface{}{"type": "string", "description": "Path to a .txt or .csv tracking export"},
						"lines":           map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}, "description": "Raw tracking lines, e.g. '2017-01-23, 16:02:24, Departed Facility in CINCINNATI HUB,OH-USA'"},
						"include_records": map[string]interface{}{"type": "boolean", "description": "If true, also return every reconstructed record with its locale."},
					},
				},
			},
			map[string]interface{}{
				"name":        "resolve_locale",
				"description": "Resolve the country at the end of a single carrier status message. Returns an unresolved origin when the last token is not a known country name or code.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"text": map[string]interface{}{"type": "string", "description": "Carrier status message"},
					},
					"required": []string{"text"},
				},
			},
		},
	}
}
