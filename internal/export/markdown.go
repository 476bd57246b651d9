package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/snowlit/vndb-timeline/internal"
)

// MarkdownExporter exports span records as a Markdown table
type MarkdownExporter struct{}

// displayTimeLayout keeps derived fractional-day finishes visible in
// tabular output.
const displayTimeLayout = "2006-01-02 15:04"

// Export exports records to Markdown format
func (e *MarkdownExporter) Export(records []internal.SpanRecord, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "| Title | Started | Finished | Label |\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "| --- | --- | --- | --- |\n"); err != nil {
		return err
	}

	for _, rec := range records {
		_, err := fmt.Fprintf(w, "| %s | %s | %s | %s |\n",
			escapeCell(rec.Title),
			rec.Started.Format(internal.DateLayout),
			formatFinished(rec.Finished),
			escapeCell(rec.Label))
		if err != nil {
			return err
		}
	}

	return nil
}

// formatFinished drops the time component when the finish falls exactly on
// midnight (explicit dates and today-finishes do).
func formatFinished(t time.Time) string {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	if t.Equal(midnight) {
		return t.Format(internal.DateLayout)
	}
	return t.Format(displayTimeLayout)
}

// escapeCell escapes characters that would break a table cell
func escapeCell(text string) string {
	text = strings.ReplaceAll(text, "|", "\\|")
	return strings.ReplaceAll(text, "\n", " ")
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
