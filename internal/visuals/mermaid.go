package visuals

import (
	"fmt"
	"strings"

	"shiptracker/internal/stats"
)

const ganttTimeLayout = "2006-01-02 15:04:05"

// GenerateLayoverGantt creates a Mermaid gantt chart with one bar per locale layover
// and a critical bar for the longest delay.
func GenerateLayoverGantt(s *stats.Summary) string {
	if s == nil || len(s.Layovers) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("gantt\n")
	sb.WriteString("    title Shipment Layovers\n")
	sb.WriteString("    dateFormat YYYY-MM-DD HH:mm:ss\n")
	sb.WriteString("    axisFormat %m-%d %H:%M\n")

	for i, l := range s.Layovers {
		name := ganttLabel(l.Locale.String())
		sb.WriteString(fmt.Sprintf("    section %s\n", name))
		sb.WriteString(fmt.Sprintf("    %s %s :l%d, %s, %s\n",
			name,
			humanMinutes(l.Minutes),
			i,
			l.From.Timestamp.Format(ganttTimeLayout),
			l.To.Timestamp.Format(ganttTimeLayout),
		))
	}

	d := s.LongestDelay
	sb.WriteString("    section Longest delay\n")
	sb.WriteString(fmt.Sprintf("    %s to %s %s :crit, delay, %s, %s\n",
		ganttLabel(d.From.Locale.String()),
		ganttLabel(d.To.Locale.String()),
		humanMinutes(d.Minutes),
		d.From.Timestamp.Format(ganttTimeLayout),
		d.To.Timestamp.Format(ganttTimeLayout),
	))
	sb.WriteString("```")
	return sb.String()
}

// Mermaid treats ':' and '#' as syntax inside gantt lines.
func ganttLabel(s string) string {
	return strings.NewReplacer(":", " ", "#", " ", ";", " ").Replace(s)
}

func humanMinutes(minutes int64) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
