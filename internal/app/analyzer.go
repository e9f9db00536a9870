// Package app wires ingestion, the shipment pipeline and transit analytics together
// for the CLI and the tool server.
package app

import (
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"shiptracker/internal/config"
	"shiptracker/internal/ingest"
	"shiptracker/internal/locale"
	"shiptracker/internal/shipment"
	"shiptracker/internal/stats"
)

// Analyzer runs complete analyses against one locale catalog.
type Analyzer struct {
	catalog shipment.Lookup
	opts    shipment.Options
}

// New builds an Analyzer from configuration, loading a custom catalog when one is configured.
func New(cfg *config.AppConfig) (*Analyzer, error) {
	var catalog *locale.Catalog
	if cfg.CatalogPath != "" {
		c, err := locale.LoadFile(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		catalog = c
		log.Debug().Str("path", cfg.CatalogPath).Int("countries", c.Len()).Msg("Loaded custom locale catalog")
	} else {
		catalog = locale.Default()
	}

	return NewWithCatalog(catalog, shipment.Options{
		Workers:       cfg.Workers,
		RequireLocale: cfg.RequireLocale,
	}), nil
}

// NewWithCatalog builds an Analyzer around an existing catalog.
func NewWithCatalog(catalog shipment.Lookup, opts shipment.Options) *Analyzer {
	return &Analyzer{catalog: catalog, opts: opts}
}

// AnalyzeFile reads a .txt or .csv tracking export and analyzes it.
func (a *Analyzer) AnalyzeFile(path string) (*stats.Summary, error) {
	logger := log.With().Str("run_id", uuid.NewString()).Str("file", path).Logger()

	if info, err := os.Stat(path); err == nil {
		logger.Info().Str("size", humanize.Bytes(uint64(info.Size()))).Msg("Reading tracking export")
	}

	lines, err := ingest.ReadFile(path)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to read tracking export")
		return nil, err
	}
	return a.analyze(lines, logger)
}

// AnalyzeLines analyzes raw tracking lines.
func (a *Analyzer) AnalyzeLines(lines []string) (*stats.Summary, error) {
	return a.analyze(lines, log.With().Str("run_id", uuid.NewString()).Logger())
}

func (a *Analyzer) analyze(lines []string, logger zerolog.Logger) (*stats.Summary, error) {
	start := time.Now()

	records, err := shipment.Build(lines, a.catalog, a.opts)
	if err != nil {
		logger.Error().Err(err).Int("lines", len(lines)).Msg("Failed to build shipment records")
		return nil, err
	}

	summary, err := stats.Analyze(records)
	if err != nil {
		logger.Error().Err(err).Int("records", len(records)).Msg("Failed to analyze shipment")
		return nil, err
	}

	logger.Info().
		Str("lines", humanize.Comma(int64(len(lines)))).
		Int("layovers", len(summary.Layovers)).
		Int64("total_minutes", summary.TotalMinutes).
		Dur("elapsed", time.Since(start)).
		Msg("Shipment analyzed")
	return summary, nil
}

// ResolveLocale runs the locale resolver alone on a status message.
func (a *Analyzer) ResolveLocale(status string) shipment.Locale {
	return shipment.ResolveLocale(status, a.catalog)
}
