package internal

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeCandidate(t *testing.T, dir, name string) {
	t.Helper()
	// Selection never reads file contents, so any bytes will do.
	if err := os.WriteFile(filepath.Join(dir, name), []byte("unread"), 0644); err != nil {
		t.Fatalf("Failed to write candidate %s: %v", name, err)
	}
}

func TestParseExportFilename(t *testing.T) {
	tests := []struct {
		name      string
		filename  string
		wantOwner string
		wantTime  time.Time
		wantErr   bool
	}{
		{
			name:      "valid filename",
			filename:  "vndb-list-export-alice-20230101000000.xml",
			wantOwner: "alice",
			wantTime:  time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "owner with digits and underscore",
			filename:  "vndb-list-export-user_42-20240229120000.xml",
			wantOwner: "user_42",
			wantTime:  time.Date(2024, time.February, 29, 12, 0, 0, 0, time.UTC),
		},
		{
			name:     "wrong prefix",
			filename: "list-export-alice-20230101000000.xml",
			wantErr:  true,
		},
		{
			name:     "timestamp too short",
			filename: "vndb-list-export-alice-202301010000.xml",
			wantErr:  true,
		},
		{
			name:     "timestamp not a valid instant",
			filename: "vndb-list-export-alice-20231301000000.xml",
			wantErr:  true,
		},
		{
			name:     "owner with hyphen",
			filename: "vndb-list-export-a-b-20230101000000.xml",
			wantErr:  true,
		},
		{
			name:     "wrong extension",
			filename: "vndb-list-export-alice-20230101000000.json",
			wantErr:  true,
		},
		{
			name:     "missing owner",
			filename: "vndb-list-export--20230101000000.xml",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, ts, err := ParseExportFilename(tt.filename)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseExportFilename(%q) error = %v, wantErr %v", tt.filename, err, tt.wantErr)
			}
			if tt.wantErr {
				var malformed *MalformedFilenameError
				if !errors.As(err, &malformed) {
					t.Errorf("error should be *MalformedFilenameError, got %T", err)
				}
				return
			}
			if owner != tt.wantOwner {
				t.Errorf("owner = %q, want %q", owner, tt.wantOwner)
			}
			if !ts.Equal(tt.wantTime) {
				t.Errorf("export time = %v, want %v", ts, tt.wantTime)
			}
		})
	}
}

func TestListCandidates_ExcludesNonMatching(t *testing.T) {
	dir := t.TempDir()
	writeCandidate(t, dir, "vndb-list-export-alice-20230101000000.xml")
	writeCandidate(t, dir, "notes.txt")
	writeCandidate(t, dir, "vndb-list-export-alice-broken.xml")
	if err := os.Mkdir(filepath.Join(dir, "vndb-list-export-alice-20230101000001.xml"), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	files, err := ListCandidates(dir)
	if err != nil {
		t.Fatalf("ListCandidates() error = %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("ListCandidates() returned %d files, want 1", len(files))
	}
	if files[0].Owner != "alice" {
		t.Errorf("owner = %q, want alice", files[0].Owner)
	}
}

func TestSelectLatest_PicksNewest(t *testing.T) {
	dir := t.TempDir()
	writeCandidate(t, dir, "vndb-list-export-alice-20230101000000.xml")
	writeCandidate(t, dir, "vndb-list-export-alice-20240101000000.xml")

	file, err := SelectLatest(dir)
	if err != nil {
		t.Fatalf("SelectLatest() error = %v", err)
	}
	if !strings.HasSuffix(file.Path, "vndb-list-export-alice-20240101000000.xml") {
		t.Errorf("SelectLatest() picked %s, want the 2024 export", file.Path)
	}
	want := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !file.ExportTime.Equal(want) {
		t.Errorf("export time = %v, want %v", file.ExportTime, want)
	}
	if file.Owner != "alice" {
		t.Errorf("owner = %q, want alice", file.Owner)
	}
}

func TestSelectLatest_NoMatchingFiles(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, dir string)
	}{
		{
			name:  "empty directory",
			setup: func(t *testing.T, dir string) {},
		},
		{
			name: "only non-matching files",
			setup: func(t *testing.T, dir string) {
				writeCandidate(t, dir, "readme.md")
				writeCandidate(t, dir, "vndb-list-export-alice-2023.xml")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.setup(t, dir)

			_, err := SelectLatest(dir)
			var noMatch *NoMatchingFileError
			if !errors.As(err, &noMatch) {
				t.Fatalf("SelectLatest() error = %v, want *NoMatchingFileError", err)
			}
			if noMatch.Dir != dir {
				t.Errorf("error dir = %q, want %q", noMatch.Dir, dir)
			}
		})
	}
}

func TestSelectLatest_MultipleOwners(t *testing.T) {
	dir := t.TempDir()
	writeCandidate(t, dir, "vndb-list-export-bob-20230101000000.xml")
	writeCandidate(t, dir, "vndb-list-export-alice-20240101000000.xml")

	_, err := SelectLatest(dir)
	var multi *MultipleOwnersError
	if !errors.As(err, &multi) {
		t.Fatalf("SelectLatest() error = %v, want *MultipleOwnersError", err)
	}
	if len(multi.Owners) != 2 || multi.Owners[0] != "alice" || multi.Owners[1] != "bob" {
		t.Errorf("owners = %v, want [alice bob]", multi.Owners)
	}
}

func TestSelectLatest_MissingDirectory(t *testing.T) {
	_, err := SelectLatest(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("SelectLatest() should fail for a missing directory")
	}
}
