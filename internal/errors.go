package internal

import (
	"fmt"
	"strings"
)

// MalformedFilenameError reports a filename that does not match the export
// naming pattern. It disqualifies that file only, never the whole run.
type MalformedFilenameError struct {
	Name string
}

func (e *MalformedFilenameError) Error() string {
	return fmt.Sprintf("filename does not match export pattern: %s", e.Name)
}

// NoMatchingFileError reports a directory with no candidate export files.
type NoMatchingFileError struct {
	Dir string
}

func (e *NoMatchingFileError) Error() string {
	return fmt.Sprintf("no vndb list exports found in %s", e.Dir)
}

// MultipleOwnersError reports candidate exports belonging to more than one
// owner. Selection refuses to guess whose data to use.
type MultipleOwnersError struct {
	Owners []string
}

func (e *MultipleOwnersError) Error() string {
	return fmt.Sprintf("exports belong to multiple owners: %s", strings.Join(e.Owners, ", "))
}

// MalformedStructureError reports an export file that is not well-formed
// XML or lacks the expected <vns> container.
type MalformedStructureError struct {
	Path string
	Err  error
}

func (e *MalformedStructureError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed export document: %v", e.Err)
	}
	return fmt.Sprintf("malformed export document %s: %v", e.Path, e.Err)
}

func (e *MalformedStructureError) Unwrap() error {
	return e.Err
}

// MissingTitleError reports an entry with neither an original-script title
// nor a text title. Index is the entry's position in document order.
type MissingTitleError struct {
	Index int
}

func (e *MissingTitleError) Error() string {
	return fmt.Sprintf("entry %d has no title", e.Index)
}
