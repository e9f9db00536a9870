package engine

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// GeneratorConfig describes one synthetic shipment. A zero Start begins the
// shipment on 2017-01-22 08:00 UTC and Hubs below 1 is treated as 1.
type GeneratorConfig struct {
	Scenario     string   // "mild", "chaos" or "unresolved"
	Distribution string   // "uniform" or "weibull"
	Route        []string // country codes in travel order
	Hubs         int      // scans per country
	Seed         int64
	Start        time.Time
}

// Event is one synthetic tracking line.
type Event struct {
	Timestamp time.Time
	Status    string
}

var scanTemplates = []string{
	"Arrived at Sort Facility %s - %s",
	"Processed at %s - %s",
	"Departed Facility in %s - %s",
	"Clearance processing complete at %s - %s",
}

var hubNames = []string{"GATEWAY", "HUB", "SORT CENTER", "SERVICE POINT", "AIRPORT"}

// Generate walks the route and emits scans with sampled dwell times between them.
func Generate(cfg GeneratorConfig) []Event {
	if cfg.Start.IsZero() {
		cfg.Start = time.Date(2017, 1, 22, 8, 0, 0, 0, time.UTC)
	}
	if cfg.Hubs < 1 {
		cfg.Hubs = 1
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	// Mild: most dwell times between 2 and 12 hours
	k, lambda := 1.8, 8.0
	if cfg.Scenario == "chaos" {
		k = 0.8
		if cfg.Distribution == "weibull" {
			lambda = 14.0
		}
	}

	var events []Event
	now := cfg.Start
	events = append(events, Event{Timestamp: now, Status: "Shipment information received"})

	for ci, country := range cfg.Route {
		for h := 0; h < cfg.Hubs; h++ {
			var hours float64
			if cfg.Distribution == "weibull" {
				hours = weibullSample(rng, k, lambda)
			} else {
				hours = 2.0 + rng.Float64()*10.0
				if cfg.Scenario == "chaos" && rng.Float64() < 0.2 {
					hours += 24 + rng.Float64()*48 // customs hold
				}
			}
			hours = math.Max(hours, 1.0/60) // keep scans at least a minute apart
			now = now.Add(time.Duration(hours*3600) * time.Second)

			hub := fmt.Sprintf("%s %s", strings.ToUpper(country), hubNames[rng.Intn(len(hubNames))])
			status := fmt.Sprintf(scanTemplates[(ci+h)%len(scanTemplates)], hub, country)
			if cfg.Scenario == "unresolved" && ci == 0 {
				status = fmt.Sprintf("Processed at %s", hub)
			}
			events = append(events, Event{Timestamp: now, Status: status})

			if h == 0 && ci > 0 && rng.Float64() < 0.5 {
				now = now.Add(time.Duration(rng.Intn(90)+1) * time.Minute)
				events = append(events, Event{Timestamp: now, Status: "Customs status updated;"})
			}
		}
	}

	now = now.Add(time.Duration(rng.Intn(8)+1) * time.Hour)
	events = append(events, Event{Timestamp: now, Status: "Delivered - Signed for by: RECEPTION"})
	return events
}

func weibullSample(rng *rand.Rand, k, lambda float64) float64 {
	u := rng.Float64()
	if u == 0 {
		u = 0.0001
	}
	// X = lambda * (-ln(1-u))^(1/k)
	return lambda * math.Pow(-math.Log(1.0-u), 1.0/k)
}

// Save writes the events newest first, the way carriers list them, as .txt or .csv
// depending on the path's extension.
func Save(path string, events []Event) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".txt" && ext != ".csv" {
		return fmt.Errorf("unsupported output extension %q (use .txt or .csv)", filepath.Ext(path))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if ext == ".csv" {
		cw := csv.NewWriter(w)
		_ = cw.Write([]string{"Date", "Time", "Status"})
		for i := len(events) - 1; i >= 0; i-- {
			e := events[i]
			_ = cw.Write([]string{e.Timestamp.Format("2006-01-02"), e.Timestamp.Format("15:04:05"), e.Status})
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(w, "Date, Time, Status")
		for i := len(events) - 1; i >= 0; i-- {
			e := events[i]
			fmt.Fprintf(w, "%s, %s\n", e.Timestamp.Format("2006-01-02, 15:04:05"), e.Status)
		}
	}
	return w.Flush()
}
