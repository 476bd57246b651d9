package export

import (
	"io"

	"github.com/snowlit/vndb-timeline/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports span records in YAML format
type YAMLExporter struct{}

// Export exports records to YAML format
func (e *YAMLExporter) Export(records []internal.SpanRecord, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(records)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
