package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// SampleExportXML returns a small well-formed vndb list export document
// with one entry per label kind.
func SampleExportXML() []byte {
	return []byte(`<vndb-export>
  <vns>
    <vn>
      <title original="月姫">Tsukihime</title>
      <started>2021-03-10</started>
      <finished>2021-04-02</finished>
      <label label="Finished"/>
    </vn>
    <vn>
      <title>Clannad</title>
      <started>2022-01-15</started>
      <label label="Playing"/>
    </vn>
    <vn>
      <title original="素晴らしき日々">Subarashiki Hibi</title>
      <started>2021-07-01</started>
      <label label="Stalled"/>
    </vn>
    <vn>
      <title>Old Entry</title>
      <started>2015-06-01</started>
      <finished>2015-07-01</finished>
    </vn>
  </vns>
</vndb-export>`)
}

// WriteExportFile writes content into dir under the export naming pattern
// and returns the full path. timestamp must be 14 digits (YYYYMMDDHHMMSS).
func WriteExportFile(t *testing.T, dir, owner, timestamp string, content []byte) string {
	t.Helper()
	name := fmt.Sprintf("vndb-list-export-%s-%s.xml", owner, timestamp)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to write export fixture %s: %v", name, err)
	}
	return path
}

// WriteJunkFile writes a file that must not match the export pattern.
func WriteJunkFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("junk"), 0644); err != nil {
		t.Fatalf("Failed to write junk fixture %s: %v", name, err)
	}
	return path
}

// CreateExportDir creates a temp directory holding one sample export for
// owner and returns the directory.
func CreateExportDir(t *testing.T, owner, timestamp string) string {
	t.Helper()
	dir := t.TempDir()
	WriteExportFile(t, dir, owner, timestamp, SampleExportXML())
	return dir
}
