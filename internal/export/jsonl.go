package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/snowlit/vndb-timeline/internal"
)

// JSONLExporter exports span records in JSONL format (one record per line)
type JSONLExporter struct{}

// Export exports records to JSONL format
func (e *JSONLExporter) Export(records []internal.SpanRecord, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
