package internal

import (
	"strings"
	"time"
)

// DateLayout is the calendar date format used by vndb exports.
const DateLayout = "2006-01-02"

// DefaultLabel is assumed when an entry carries no label element.
const DefaultLabel = "Finished"

// LabelStalled marks entries that are neither finished nor actively in
// progress; open stalled entries get a derived finish date.
const LabelStalled = "Stalled"

// ExportFile identifies one candidate list export in the scanned directory.
type ExportFile struct {
	Owner      string
	ExportTime time.Time
	Path       string
}

// SpanRecord is the normalized, renderer-ready representation of one list
// entry's time extent. Finished is always resolved.
type SpanRecord struct {
	Title    string    `json:"title" yaml:"title"`
	Started  time.Time `json:"started" yaml:"started"`
	Finished time.Time `json:"finished" yaml:"finished"`
	Label    string    `json:"label" yaml:"label"`
}

// exportDoc mirrors the XML layout of a vndb list export: a root element
// holding a <vns> container with one <vn> per entry. The root element name
// is not checked.
type exportDoc struct {
	VNs *entryList `xml:"vns"`
}

type entryList struct {
	Entries []rawEntry `xml:"vn"`
}

// rawEntry is one <vn> element as exported. Pointer fields distinguish a
// missing element from an empty one.
type rawEntry struct {
	Title    *titleElem `xml:"title"`
	Started  *string    `xml:"started"`
	Finished *string    `xml:"finished"`
	Label    *labelElem `xml:"label"`
}

// titleElem carries the romanized title as text and, when the original is
// not already in roman letters, the original-script title as an attribute.
type titleElem struct {
	Original string `xml:"original,attr"`
	Value    string `xml:",chardata"`
}

type labelElem struct {
	Label string `xml:"label,attr"`
}

// title resolves the display title, preferring the original-script form and
// falling back to the element text. Returns false when neither is present.
func (e *rawEntry) title() (string, bool) {
	if e.Title == nil {
		return "", false
	}
	if e.Title.Original != "" {
		return e.Title.Original, true
	}
	v := strings.TrimSpace(e.Title.Value)
	if v == "" {
		return "", false
	}
	return v, true
}

// label resolves the status label, defaulting to DefaultLabel when the
// element or its attribute is absent.
func (e *rawEntry) label() string {
	if e.Label == nil || e.Label.Label == "" {
		return DefaultLabel
	}
	return e.Label.Label
}

// finished returns the trimmed finished-date text, or "" when the element
// is absent or empty.
func (e *rawEntry) finished() string {
	if e.Finished == nil {
		return ""
	}
	return strings.TrimSpace(*e.Finished)
}
