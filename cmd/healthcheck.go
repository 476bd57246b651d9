package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/snowlit/vndb-timeline/internal"
	"github.com/spf13/cobra"
)

var (
	healthcheckVerbose bool
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check if vndb-timeline can find and read export data",
	Long: `Check the health of vndb-timeline by verifying:
  • Export directory is readable
  • Candidate export files exist and parse
  • All candidates belong to one owner
  • The latest export's entries extract cleanly

Useful for debugging a directory of exports before extracting.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(sectionStyle.Render("🔍 vndb-timeline Health Check"))
		fmt.Println()

		// Step 1: Scan the export directory
		fmt.Println(infoStyle.Render("Step 1: Scanning export directory..."))
		files, err := internal.ListCandidates(exportDir)
		if err != nil {
			fmt.Println(errStyle.Render("❌ Cannot read export directory:"), err)
			return fmt.Errorf("health check failed: %w", err)
		}
		fmt.Println(successStyle.Render(fmt.Sprintf("✅ Directory readable, %d candidate file(s)", len(files))))
		if healthcheckVerbose {
			for i, f := range files {
				if i < 5 { // Show first 5
					fmt.Printf("   [%d] %s (owner %s)\n", i+1, f.Path, f.Owner)
				}
			}
			if len(files) > 5 {
				fmt.Printf("   ... and %d more\n", len(files)-5)
			}
		}
		fmt.Println()

		// Step 2: Select the latest export
		fmt.Println(infoStyle.Render("Step 2: Selecting latest export..."))
		file, err := internal.SelectLatest(exportDir)
		if err != nil {
			var multi *internal.MultipleOwnersError
			var none *internal.NoMatchingFileError
			switch {
			case errors.As(err, &multi):
				fmt.Println(errStyle.Render("❌ Exports from more than one owner:"), multi.Owners)
				fmt.Println("   Move other owners' exports out of the directory.")
			case errors.As(err, &none):
				fmt.Println(errStyle.Render("❌ No export files match the pattern"))
				fmt.Println("   Expected: vndb-list-export-<owner>-<YYYYMMDDHHMMSS>.xml")
			default:
				fmt.Println(errStyle.Render("❌ Selection failed:"), err)
			}
			return fmt.Errorf("health check failed: %w", err)
		}
		fmt.Println(successStyle.Render("✅ Latest export selected"))
		if healthcheckVerbose {
			fmt.Printf("   Owner: %s\n", file.Owner)
			fmt.Printf("   Exported: %s\n", file.ExportTime.Format("2006-01-02 15:04:05"))
			fmt.Printf("   Path: %s\n", file.Path)
		}
		fmt.Println()

		// Step 3: Extract entries
		fmt.Println(infoStyle.Render("Step 3: Extracting entries..."))
		cutoff, err := parseCutoff()
		if err != nil {
			fmt.Println(errStyle.Render("❌ Bad cutoff:"), err)
			return fmt.Errorf("health check failed: %w", err)
		}
		extractor := internal.NewExtractor(cutoff)
		records, err := extractor.ExtractFile(file.Path)
		if err != nil {
			fmt.Println(errStyle.Render("❌ Extraction failed:"), err)
			return fmt.Errorf("health check failed: %w", err)
		}
		if len(records) > 0 {
			fmt.Println(successStyle.Render(fmt.Sprintf("✅ Extracted %d record(s)", len(records))))
			if healthcheckVerbose {
				for i, rec := range records {
					if i < 5 { // Show first 5
						fmt.Printf("   [%d] %s (%s)\n", i+1, rec.Title, rec.Label)
					}
				}
				if len(records) > 5 {
					fmt.Printf("   ... and %d more\n", len(records)-5)
				}
			}
		} else {
			fmt.Println(warningStyle.Render("⚠️  Export parsed but produced no records"))
			fmt.Println("   This could mean:")
			fmt.Println("   • Every entry started before the cutoff date")
			fmt.Println("   • Entries have no started dates")
			fmt.Printf("   Current cutoff: %s\n", cutoff.Format(internal.DateLayout))
		}
		fmt.Println()

		// Summary
		fmt.Println(sectionStyle.Render("📊 Summary"))
		fmt.Println()
		fmt.Println(successStyle.Render("✅ Health check passed!"))
		fmt.Println(successStyle.Render(fmt.Sprintf("   • Owner: %s", file.Owner)))
		fmt.Println(successStyle.Render(fmt.Sprintf("   • Records: %d", len(records))))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
	healthcheckCmd.Flags().BoolVar(&healthcheckVerbose, "detail", false, "Show detailed diagnostic information")
}
