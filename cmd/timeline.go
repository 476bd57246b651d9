package cmd

import (
	"fmt"

	"github.com/snowlit/vndb-timeline/internal"
	"github.com/spf13/cobra"
)

var timelineWidth int

// timelineCmd represents the timeline command
var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Draw the latest export as a terminal timeline",
	Long: `Select the most recent export, extract its span records, and draw one
colored lane per entry between the cutoff date and today. Lanes are sorted
by start date; bar colors follow the entry labels.`,
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

		if len(records) == 0 {
			fmt.Println(headerStyle.Render("📂 No entries on or after " + cutoff.Format(internal.DateLayout)))
			return nil
		}

		renderer := internal.NewRenderer(cutoff, extractor.Today, timelineWidth)
		return renderer.Render(cmd.OutOrStdout(), file, records)
	},
}

func init() {
	rootCmd.AddCommand(timelineCmd)
	timelineCmd.Flags().IntVar(&timelineWidth, "width", 80, "Bar width in columns")
}
