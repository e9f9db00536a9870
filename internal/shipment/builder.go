package shipment

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/zoobzio/pipz"
)

// Options tunes Build.
type Options struct {
	// Workers bounds parallel line extraction. Values below 2 extract sequentially.
	Workers int
	// RequireLocale makes Build fail with ErrNoLocale when nothing resolves.
	RequireLocale bool
}

// Stage names, as they appear in pipeline error paths.
const (
	PipelineName       = "shipment"
	ResolveStage       = "resolve"
	PropagateStage     = "propagate"
	RequireLocaleStage = "require-locale"
)

// NewPipeline returns the locale stages that run over extracted, sorted records.
func NewPipeline(catalog Lookup, opts Options) *pipz.Sequence[[]Record] {
	return pipz.NewSequence[[]Record](PipelineName,
		pipz.Apply(ResolveStage, func(_ context.Context, records []Record) ([]Record, error) {
			return ResolveLocales(records, catalog), nil
		}),
		pipz.Apply(PropagateStage, func(_ context.Context, records []Record) ([]Record, error) {
			return PropagateLocales(records), nil
		}),
		pipz.Apply(RequireLocaleStage, func(_ context.Context, records []Record) ([]Record, error) {
			return checkLeading(records, opts.RequireLocale)
		}),
	)
}

func checkLeading(records []Record, required bool) ([]Record, error) {
	leading := LeadingUnresolved(records)
	if leading == 0 {
		return records, nil
	}
	if leading == len(records) && required {
		return nil, ErrNoLocale
	}
	log.Warn().
		Int("records", leading).
		Int("total", len(records)).
		Msg("Records precede the first resolvable locale and stay unresolved")
	return records, nil
}

// Build runs extraction, locale resolution and propagation over raw lines and
// returns the completed, chronologically sorted records.
func Build(lines []string, catalog Lookup, opts Options) ([]Record, error) {
	records, err := ExtractRecords(lines, opts.Workers)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("records", len(records)).Int("workers", opts.Workers).Msg("Extracted records")

	out, err := NewPipeline(catalog, opts).Process(context.Background(), records)
	if err != nil {
		var pipeErr *pipz.Error[[]Record]
		if errors.As(err, &pipeErr) && pipeErr.Err != nil {
			return nil, pipeErr.Err
		}
		return nil, err
	}
	return out, nil
}
