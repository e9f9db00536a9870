package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"shiptracker/cmd/mockgen/engine"
)

func main() {
	scenario := flag.String("scenario", "mild", "Scenario to generate: mild, chaos, unresolved")
	distribution := flag.String("distribution", "uniform", "Distribution to use: uniform, weibull")
	route := flag.String("route", "US,CA,DE", "Comma-separated country codes in travel order")
	hubs := flag.Int("hubs", 3, "Scans per country")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed")
	out := flag.String("out", "./testdata/shipment.txt", "Output file (.txt or .csv)")
	flag.Parse()

	cfg := engine.GeneratorConfig{
		Scenario:     *scenario,
		Distribution: *distribution,
		Route:        strings.Split(*route, ","),
		Hubs:         *hubs,
		Seed:         *seed,
	}

	fmt.Printf("Generating scenario '%s' (Distribution: %s, Route: %s) to %s...\n", cfg.Scenario, cfg.Distribution, *route, *out)

	events := engine.Generate(cfg)
	if err := engine.Save(*out, events); err != nil {
		fmt.Printf("Failed to save mock data: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Done. %d events written.\n", len(events))
}
