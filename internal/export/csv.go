package export

import (
	"encoding/csv"
	"io"

	"github.com/snowlit/vndb-timeline/internal"
)

// CSVExporter exports span records as CSV with a header row
type CSVExporter struct{}

// Export exports records to CSV format
func (e *CSVExporter) Export(records []internal.SpanRecord, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"title", "started", "finished", "label"}); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.Title,
			rec.Started.Format(internal.DateLayout),
			formatFinished(rec.Finished),
			rec.Label,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Extension returns the file extension for this format
func (e *CSVExporter) Extension() string {
	return "csv"
}
