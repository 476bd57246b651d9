package internal

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"
)

// stalledLogBase sizes the bar drawn for stalled entries: an entry open for
// d days gets a span of log_1.27(d+1) days, so long-stalled entries grow
// slowly instead of stretching to today. Empirically chosen tuning
// constant.
const stalledLogBase = 1.27

// DefaultCutoff is the default minimum started date for inclusion.
var DefaultCutoff = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// Extractor turns the entries of one list export into span records.
//
// Today anchors derived finish dates and is injected rather than read from
// the clock, so extraction is deterministic: the same document, cutoff and
// Today always produce the same records.
type Extractor struct {
	Cutoff time.Time
	Today  time.Time
}

// NewExtractor returns an Extractor with Today set to midnight of the
// current local day.
func NewExtractor(cutoff time.Time) *Extractor {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return &Extractor{Cutoff: cutoff, Today: today}
}

// ExtractFile opens path and extracts its span records. The file handle is
// released on every exit path, parse failure included.
func (x *Extractor) ExtractFile(path string) ([]SpanRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open export file: %w", err)
	}
	defer func() { _ = f.Close() }()

	records, err := x.Extract(f)
	var malformed *MalformedStructureError
	if errors.As(err, &malformed) {
		malformed.Path = path
	}
	return records, err
}

// Extract decodes one export document and emits a span record per
// qualifying entry, in document order. Output is not re-sorted; display
// ordering belongs to the consumer.
//
// An entry with no started date, an unparsable one, or one before Cutoff
// is skipped: it carries no information for the timeline. That skip is the
// only per-entry recovery — an entry lacking any title aborts the whole
// run with *MissingTitleError, since emitting an empty title downstream is
// not allowed and a titleless entry means the export itself is suspect.
func (x *Extractor) Extract(r io.Reader) ([]SpanRecord, error) {
	var doc exportDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, &MalformedStructureError{Err: err}
	}
	if doc.VNs == nil {
		return nil, &MalformedStructureError{Err: errors.New("missing <vns> container")}
	}

	records := make([]SpanRecord, 0, len(doc.VNs.Entries))
	for i, entry := range doc.VNs.Entries {
		started, ok := x.startedDate(entry)
		if !ok {
			continue
		}

		title, ok := entry.title()
		if !ok {
			return nil, &MissingTitleError{Index: i}
		}

		label := entry.label()

		var finished time.Time
		if text := entry.finished(); text != "" {
			// An explicit finish date is used verbatim regardless of label.
			parsed, err := time.Parse(DateLayout, text)
			if err != nil {
				LogWarn("Skipping %q: unparsable finished date %q", title, text)
				continue
			}
			finished = parsed
		} else if label == LabelStalled {
			finished = x.stalledFinish(started)
		} else {
			// Ongoing entry: the span runs to today.
			finished = x.Today
		}

		records = append(records, SpanRecord{
			Title:    title,
			Started:  started,
			Finished: finished,
			Label:    label,
		})
	}
	return records, nil
}

// startedDate applies the start-date gate. Only a missing element or a
// value failing strict YYYY-MM-DD parsing counts as skippable; structural
// XML problems never reach this point.
func (x *Extractor) startedDate(entry rawEntry) (time.Time, bool) {
	if entry.Started == nil {
		return time.Time{}, false
	}
	started, err := time.Parse(DateLayout, *entry.Started)
	if err != nil {
		LogDebug("Skipping entry: unparsable started date %q", *entry.Started)
		return time.Time{}, false
	}
	if started.Before(x.Cutoff) {
		return time.Time{}, false
	}
	return started, true
}

// stalledFinish derives a display finish date for an open stalled entry
// from how long it has been open. The fractional day component of the
// offset is kept. A start date in the future counts as zero days open, so
// the finish never precedes the start.
func (x *Extractor) stalledFinish(started time.Time) time.Time {
	daysDiff := calendarDays(started, x.Today)
	if daysDiff < 0 {
		daysDiff = 0
	}
	lineLength := math.Log(float64(daysDiff)+1) / math.Log(stalledLogBase)
	return started.Add(time.Duration(lineLength * float64(24*time.Hour)))
}

// calendarDays counts whole calendar days from a to b using only their
// date components. Started dates parse in UTC while Today may carry a
// local zone; comparing instants directly would come up short of a whole
// day in zones east of UTC.
func calendarDays(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}
