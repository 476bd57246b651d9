package internal

import (
	"time"
)

// CreateTestRecord creates a span record with fixed dates for tests
func CreateTestRecord(title, label string) SpanRecord {
	return SpanRecord{
		Title:    title,
		Started:  time.Date(2021, time.May, 1, 0, 0, 0, 0, time.UTC),
		Finished: time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC),
		Label:    label,
	}
}

// CreateTestRecords creates one test record per title, with staggered
// start dates so ordering is observable
func CreateTestRecords(titles ...string) []SpanRecord {
	records := make([]SpanRecord, 0, len(titles))
	for i, title := range titles {
		rec := CreateTestRecord(title, DefaultLabel)
		rec.Started = rec.Started.AddDate(0, 0, i)
		rec.Finished = rec.Finished.AddDate(0, 0, i)
		records = append(records, rec)
	}
	return records
}
