package namesync

import (
	"fmt"
	"path/filepath"

	krfs "github.com/kr/fs"

	"github.com/joe/sync-names/pkg/fsops"
)

// ProgressFunc is called with the full path of each source file as it
// finishes processing, and once per resolved collision. Purely
// observational; the engine ignores anything it does.
type ProgressFunc func(path string)

// Syncer reconciles names between a source and a target tree. It performs
// no concurrent filesystem operations; one Syncer drives one run at a time.
type Syncer struct {
	FS       fsops.FileSystem // filesystem access (swap for fsops.DryRun to preview)
	Match    Predicate        // matching strategy (default NormalizedPrefixMatch)
	Filter   *ArtifactFilter  // listing filter for both trees
	Progress ProgressFunc     // optional progress sink
	emitter  EventEmitter     // optional event emitter for UI consumption

	// per-run counters, reset by SyncNames
	processed int
	renamed   int
	copied    int
}

// NewSyncer creates a syncer with the default matching strategy and filter.
func NewSyncer(fs fsops.FileSystem) *Syncer {
	return &Syncer{
		FS:     fs,
		Match:  NormalizedPrefixMatch,
		Filter: NewArtifactFilter(nil),
	}
}

// SetEventEmitter sets the event emitter. The emitter is optional; when nil,
// no events are emitted.
func (s *Syncer) SetEventEmitter(emitter EventEmitter) {
	s.emitter = emitter
}

func (s *Syncer) emit(event Event) {
	if s.emitter != nil {
		s.emitter.Emit(event)
	}
}

// notify drives the progress sink for one processed source path.
func (s *Syncer) notify(path string) {
	if s.Progress != nil {
		s.Progress(path)
	}
}

// SyncNames matches every file in the source tree against the mirrored
// target tree, directory by directory. The root pair is matched first, then
// every source subdirectory in deterministic pre-order; the accumulated
// result threads through the whole walk. Target directories missing from the
// mirror are created; nothing in the target tree is ever deleted.
//
// The returned result holds every claimed target and every deferred
// collision; pass the collisions to ResolveCollisions exactly once.
func (s *Syncer) SyncNames(sourceRoot, targetRoot string) (*Result, error) {
	s.processed = 0
	s.renamed = 0
	s.copied = 0

	result := &Result{}

	err := s.matchDirectory(sourceRoot, targetRoot, result)
	if err != nil {
		return nil, err
	}

	walker := krfs.WalkFS(sourceRoot, s.FS)

	for walker.Step() {
		err := walker.Err()
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", walker.Path(), err)
		}

		if !walker.Stat().IsDir() || walker.Path() == sourceRoot {
			continue
		}

		rel, err := filepath.Rel(sourceRoot, walker.Path())
		if err != nil {
			return nil, fmt.Errorf("failed to relativize %s: %w", walker.Path(), err)
		}

		err = s.matchDirectory(walker.Path(), s.FS.Join(targetRoot, rel), result)
		if err != nil {
			return nil, err
		}
	}

	s.emit(WalkComplete{
		Processed:  s.processed,
		Renamed:    s.renamed,
		Copied:     s.copied,
		Collisions: len(result.Collisions),
	})

	return result, nil
}
