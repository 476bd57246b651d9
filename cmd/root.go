package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/snowlit/vndb-timeline/internal"
	"github.com/spf13/cobra"
)

var (
	verbose   bool
	exportDir string
	cutoffStr string
	version   string = "dev"
	commit    string = "unknown"
	date      string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vndb-timeline",
	Short: "Turn vndb list exports into timeline span records",
	Long: `A CLI tool that reads vndb list-export XML files and derives
renderer-ready time spans from them.

It scans a directory for files named vndb-list-export-<owner>-<timestamp>.xml,
picks the most recent export for a single owner, and normalizes every entry
into a span record (title, started, finished, label). Entries without a
finish date get one derived: ongoing entries run to today, stalled entries
get a log-scaled bar so they don't stretch forever.

Quick Start:
  vndb-timeline list                  # List candidate export files
  vndb-timeline extract --format json # Write span records to a file
  vndb-timeline timeline              # Draw the timeline in the terminal

For detailed usage, see: https://github.com/snowlit/vndb-timeline`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseCutoff resolves the --cutoff flag into the minimum started date.
func parseCutoff() (time.Time, error) {
	t, err := time.Parse(internal.DateLayout, cutoffStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --cutoff %q (want YYYY-MM-DD): %w", cutoffStr, err)
	}
	return t, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&exportDir, "dir", ".", "Directory containing vndb list export files")
	rootCmd.PersistentFlags().StringVar(&cutoffStr, "cutoff", internal.DefaultCutoff.Format(internal.DateLayout), "Minimum started date for an entry to be included (YYYY-MM-DD)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
