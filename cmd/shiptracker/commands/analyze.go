package commands

import (
	"bytes"
	"fmt"
	"os"

	"shiptracker/internal/report"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <FILE> [OUTPUT]",
	Short: "Analyze a tracking export and print or write the report",
	Long: `Analyze a tracking export. Without OUTPUT the report is printed to stdout.
With OUTPUT the report is written to that file, in the format implied by its
extension (.json, .yaml, .msgpack, anything else is text) unless --format is set.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runAnalyze,
}

func addReportFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&format, "format", "f", "text", "report format: text, json, yaml or msgpack")
	f.BoolVar(&mermaid, "mermaid", false, "append a Mermaid gantt chart of the layovers to text reports")
	f.BoolVar(&withRecords, "records", false, "include every reconstructed record in structured reports")
}

func init() {
	addReportFlags(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	input := args[0]
	output := ""
	if len(args) == 2 {
		output = args[1]
	}

	outFormat, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	if output != "" && !cmd.Flags().Changed("format") {
		outFormat = report.FormatFromPath(output)
	}

	summary, err := analyzer.AnalyzeFile(input)
	if err != nil {
		return err
	}

	// Render fully before touching the output so a failure never leaves a partial report.
	var buf bytes.Buffer
	opts := report.Options{Mermaid: cfg.EnableMermaidCharts, Records: withRecords}
	if err := report.Encode(&buf, summary, outFormat, opts); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if output == "" {
		_, err = cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	log.Info().Str("path", output).Str("format", string(outFormat)).Msg("Report written")
	return nil
}
