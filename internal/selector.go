package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"
)

// exportNamePattern matches vndb list export filenames:
// vndb-list-export-<owner>-<YYYYMMDDHHMMSS>.xml
var exportNamePattern = regexp.MustCompile(`^vndb-list-export-(\w+)-(\d{14})\.xml$`)

// exportTimeLayout is the timestamp embedded in export filenames.
const exportTimeLayout = "20060102150405"

// ParseExportFilename extracts the owner and export time from an export
// filename. Returns *MalformedFilenameError when the name does not match
// the pattern or the embedded timestamp is not a valid instant.
func ParseExportFilename(name string) (string, time.Time, error) {
	m := exportNamePattern.FindStringSubmatch(name)
	if m == nil {
		return "", time.Time{}, &MalformedFilenameError{Name: name}
	}
	ts, err := time.Parse(exportTimeLayout, m[2])
	if err != nil {
		return "", time.Time{}, &MalformedFilenameError{Name: name}
	}
	return m[1], ts, nil
}

// ListCandidates returns every file in dir whose name matches the export
// pattern, in directory-listing order. Non-matching names are excluded,
// not fatal. Only the listing is read; no file content is touched.
func ListCandidates(dir string) ([]ExportFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read export directory: %w", err)
	}

	var files []ExportFile
	for _, de := range entries {
		if de.IsDir() {
			continue
		}
		owner, ts, err := ParseExportFilename(de.Name())
		if err != nil {
			LogDebug("Ignoring %s: %v", de.Name(), err)
			continue
		}
		files = append(files, ExportFile{
			Owner:      owner,
			ExportTime: ts,
			Path:       filepath.Join(dir, de.Name()),
		})
	}
	return files, nil
}

// SelectLatest picks the candidate export with the greatest embedded
// timestamp. All candidates must belong to a single owner
// (*MultipleOwnersError otherwise); an empty candidate set is
// *NoMatchingFileError. Ties keep the first file seen.
func SelectLatest(dir string) (ExportFile, error) {
	files, err := ListCandidates(dir)
	if err != nil {
		return ExportFile{}, err
	}
	if len(files) == 0 {
		return ExportFile{}, &NoMatchingFileError{Dir: dir}
	}

	owners := make(map[string]bool)
	latest := files[0]
	for _, f := range files {
		owners[f.Owner] = true
		if f.ExportTime.After(latest.ExportTime) {
			latest = f
		}
	}
	if len(owners) > 1 {
		names := make([]string, 0, len(owners))
		for o := range owners {
			names = append(names, o)
		}
		sort.Strings(names)
		return ExportFile{}, &MultipleOwnersError{Owners: names}
	}

	LogDebug("Selected %s (owner %s, exported %s)", latest.Path, latest.Owner, latest.ExportTime.Format(time.RFC3339))
	return latest, nil
}
