package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/snowlit/vndb-timeline/internal"
	"github.com/spf13/cobra"
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	ownerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135")).
			Italic(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	latestStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List candidate export files",
	Long:  `List every file in the export directory that matches the vndb list-export naming pattern, with its owner and export time.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := internal.ListCandidates(exportDir)
		if err != nil {
			return fmt.Errorf("failed to scan export directory: %w", err)
		}

		if len(files) == 0 {
			fmt.Println(headerStyle.Render("📂 No export files found in " + exportDir))
			return nil
		}

		// Selection may legitimately fail here (multiple owners); the
		// listing still prints so the user can see why.
		latest, selectErr := internal.SelectLatest(exportDir)

		header := headerStyle.Render(fmt.Sprintf("📂 Found %d export file(s)", len(files)))
		fmt.Println(header)
		fmt.Println()

		w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', 0)
		_, _ = fmt.Fprintln(w, titleStyle.Render("Owner")+"\t"+titleStyle.Render("Exported")+"\t"+titleStyle.Render("File")+"\t")
		_, _ = fmt.Fprintln(w, strings.Repeat("─", 80))

		for _, f := range files {
			marker := ""
			if selectErr == nil && f.Path == latest.Path {
				marker = latestStyle.Render(" ← latest")
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s%s\t\n",
				ownerStyle.Render(f.Owner),
				dateStyle.Render(f.ExportTime.Format("2006-01-02 15:04:05")),
				pathStyle.Render(f.Path),
				marker)
		}

		_ = w.Flush()

		if selectErr != nil {
			fmt.Println()
			return selectErr
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
