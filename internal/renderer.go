package internal

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// labelColors carries the label palette of the original chart.
var labelColors = map[string]lipgloss.Color{
	"Finished": lipgloss.Color("#377eb8"),
	"Dropped":  lipgloss.Color("#b30000"),
	"Stalled":  lipgloss.Color("#b800e6"),
	"Playing":  lipgloss.Color("#00ffff"),
	"Wishlist": lipgloss.Color("#ffff99"),
}

var unknownLabelColor = lipgloss.Color("245")

var (
	timelineHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62"))

	axisStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	annotationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

const titleGutter = 32

// Renderer draws span records as horizontal lanes in a terminal window
// spanning [Start, End]. Spans are clamped to the window; lanes are sorted
// by start date.
type Renderer struct {
	Start time.Time
	End   time.Time
	Width int // bar columns, excluding the title gutter
}

// NewRenderer creates a Renderer. Non-positive widths fall back to 80
// columns.
func NewRenderer(start, end time.Time, width int) *Renderer {
	if width <= 0 {
		width = 80
	}
	return &Renderer{Start: start, End: end, Width: width}
}

// Render writes one lane per record to w, headed by the export's owner and
// timestamp.
func (r *Renderer) Render(w io.Writer, file ExportFile, records []SpanRecord) error {
	header := timelineHeaderStyle.Render(fmt.Sprintf(
		"Timeline for %s (exported %s, %d entries)",
		file.Owner, file.ExportTime.Format("2006-01-02 15:04:05"), len(records)))
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, r.axis()); err != nil {
		return err
	}

	sorted := make([]SpanRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Started.Before(sorted[j].Started)
	})

	for _, rec := range sorted {
		if _, err := fmt.Fprintln(w, r.lane(rec)); err != nil {
			return err
		}
	}
	return nil
}

// axis renders the window boundaries under the title gutter.
func (r *Renderer) axis() string {
	left := r.Start.Format(DateLayout)
	right := r.End.Format(DateLayout)
	gap := r.Width - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	return strings.Repeat(" ", titleGutter) + axisStyle.Render(left+strings.Repeat("·", gap)+right)
}

// lane renders one record: padded title, then the span bar positioned and
// scaled within the window. Same-day spans render as a point marker with
// the date annotated next to it.
func (r *Renderer) lane(rec SpanRecord) string {
	title := padTitle(rec.Title, titleGutter-2)
	style := lipgloss.NewStyle().Foreground(r.labelColor(rec.Label))

	from := r.column(rec.Started)
	to := r.column(rec.Finished)
	if to < from {
		to = from
	}

	var bar string
	if sameDay(rec.Started, rec.Finished) {
		bar = style.Render("◆") + " " + annotationStyle.Render(rec.Started.Format("01-02"))
	} else {
		bar = style.Render(strings.Repeat("█", to-from+1))
	}

	return title + "  " + strings.Repeat(" ", from) + bar
}

// column maps an instant to a bar column, clamped to the window.
func (r *Renderer) column(t time.Time) int {
	window := r.End.Sub(r.Start)
	if window <= 0 {
		return 0
	}
	pos := float64(t.Sub(r.Start)) / float64(window)
	col := int(pos * float64(r.Width-1))
	if col < 0 {
		return 0
	}
	if col > r.Width-1 {
		return r.Width - 1
	}
	return col
}

func (r *Renderer) labelColor(label string) lipgloss.Color {
	if c, ok := labelColors[label]; ok {
		return c
	}
	return unknownLabelColor
}

func sameDay(a, b time.Time) bool {
	return a.Format(DateLayout) == b.Format(DateLayout)
}

// padTitle truncates or right-pads a title to width cells. Counting runes
// rather than bytes keeps original-script titles from blowing up the
// gutter.
func padTitle(title string, width int) string {
	runes := []rune(title)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	return title + strings.Repeat(" ", width-len(runes))
}
