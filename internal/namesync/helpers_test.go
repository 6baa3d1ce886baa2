//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package namesync_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/joe/sync-names/internal/namesync"
	"github.com/joe/sync-names/pkg/fsops"
)

// writeFile creates a file with throwaway content under dir.
func writeFile(t *testing.T, dir, name string) {
	t.Helper()

	err := os.WriteFile(filepath.Join(dir, name), []byte("content of "+name), 0o600)
	if err != nil {
		t.Fatalf("failed to create test file %s: %v", name, err)
	}
}

// listNames returns the sorted base names of all files in dir.
func listNames(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to list %s: %v", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	sort.Strings(names)

	return names
}

// newTestSyncer creates a syncer over the real local filesystem.
func newTestSyncer() *namesync.Syncer {
	return namesync.NewSyncer(fsops.NewLocal())
}

// recordingEmitter collects every emitted event for inspection.
type recordingEmitter struct {
	events []namesync.Event
}

func (r *recordingEmitter) Emit(event namesync.Event) {
	r.events = append(r.events, event)
}

// descriptorFor builds a descriptor for an existing file in a directory.
func descriptorFor(dir, base string) namesync.Descriptor {
	return namesync.NewDescriptor(dir, base)
}
