package export

import (
	"encoding/json"
	"io"

	"github.com/snowlit/vndb-timeline/internal"
)

// JSONExporter exports span records as a JSON array (pretty-printed)
type JSONExporter struct{}

// Export exports records to JSON format
func (e *JSONExporter) Export(records []internal.SpanRecord, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(records)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
