package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/snowlit/vndb-timeline/internal"
	"github.com/snowlit/vndb-timeline/internal/export"
	"github.com/spf13/cobra"
)

var (
	format    string
	outputDir string
	toStdout  bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract span records from the latest export",
	Long: `Select the most recent export in the directory, normalize its entries
into span records, and write them in the chosen format (json, jsonl, yaml,
md, csv).

Records are emitted in document order; entries started before the cutoff
date or lacking a start date are excluded.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cutoff, err := parseCutoff()
		if err != nil {
			return err
		}

		file, err := internal.SelectLatest(exportDir)
		if err != nil {
			return err
		}

		extractor := internal.NewExtractor(cutoff)
		records, err := extractor.ExtractFile(file.Path)
		if err != nil {
			return err
		}
		internal.LogInfo("Extracted %d record(s) from %s", len(records), file.Path)

		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}

		if toStdout {
			return exporter.Export(records, cmd.OutOrStdout())
		}

		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		filename := fmt.Sprintf("%s-%s-spans.%s", file.Owner, file.ExportTime.Format("20060102150405"), exporter.Extension())
		outPath := filepath.Join(outputDir, filename)

		out, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}

		if err := exporter.Export(records, out); err != nil {
			_ = out.Close()
			return fmt.Errorf("failed to export records: %w", err)
		}
		if err := out.Close(); err != nil {
			return fmt.Errorf("failed to close output file: %w", err)
		}

		fmt.Println(successStyle.Render(fmt.Sprintf("✅ Wrote %d record(s) to %s", len(records), outPath)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVarP(&format, "format", "f", "json", "Export format (json, jsonl, yaml, md, csv)")
	extractCmd.Flags().StringVarP(&outputDir, "out", "o", "./spans", "Output directory")
	extractCmd.Flags().BoolVar(&toStdout, "stdout", false, "Write records to stdout instead of a file")
}
