//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package namesync_test

import (
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/sync-names/internal/namesync"
)

func TestSyncNamesEmitsWalkEventSequence(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	sourceDir := t.TempDir()
	targetDir := t.TempDir()

	writeFile(t, sourceDir, "Budget_2024.xlsx")
	writeFile(t, sourceDir, "Photo.jpg")
	writeFile(t, targetDir, "Budget.xlsx")

	recorder := &recordingEmitter{}

	syncer := newTestSyncer()
	syncer.SetEventEmitter(recorder)

	_, err := syncer.SyncNames(sourceDir, targetDir)
	g.Expect(err).ShouldNot(HaveOccurred())

	// Budget_2024 renames the lone candidate, Photo has none and is copied.
	g.Expect(recorder.events).To(Equal([]namesync.Event{
		namesync.DirStarted{Source: sourceDir, Target: targetDir},
		namesync.FileRenamed{
			OldPath: filepath.Join(targetDir, "Budget.xlsx"),
			NewBase: "Budget_2024.xlsx",
		},
		namesync.FileProcessed{Path: filepath.Join(sourceDir, "Budget_2024.xlsx")},
		namesync.FileCopied{
			Source: filepath.Join(sourceDir, "Photo.jpg"),
			Dest:   filepath.Join(targetDir, "Photo.jpg"),
		},
		namesync.FileProcessed{Path: filepath.Join(sourceDir, "Photo.jpg")},
		namesync.WalkComplete{Processed: 2, Renamed: 1, Copied: 1, Collisions: 0},
	}))
}

func TestSyncNamesEmitsCollisionFound(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	sourceDir := t.TempDir()
	targetDir := t.TempDir()

	writeFile(t, sourceDir, "Song_Remastered.mp3")
	writeFile(t, targetDir, "Song.mp3")
	writeFile(t, targetDir, "SongR.mp3")

	recorder := &recordingEmitter{}

	syncer := newTestSyncer()
	syncer.SetEventEmitter(recorder)

	result, err := syncer.SyncNames(sourceDir, targetDir)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(result.Collisions).To(HaveLen(1))

	g.Expect(recorder.events).To(ContainElement(namesync.CollisionFound{
		Source:     filepath.Join(sourceDir, "Song_Remastered.mp3"),
		Candidates: 2,
	}))
	g.Expect(recorder.events).To(ContainElement(
		namesync.WalkComplete{Processed: 1, Renamed: 0, Copied: 0, Collisions: 1},
	))
}

func TestResolveCollisionsEmitsResolveEvents(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	sourceDir := t.TempDir()
	targetDir := t.TempDir()

	writeFile(t, sourceDir, "Song_Remastered.mp3")
	writeFile(t, sourceDir, "Song_Live.mp3")
	writeFile(t, targetDir, "Song.mp3")

	sharedCandidate := descriptorFor(targetDir, "Song.mp3")
	collisions := []namesync.Collision{
		{Source: descriptorFor(sourceDir, "Song_Live.mp3"), Candidates: []namesync.Descriptor{sharedCandidate}},
		{Source: descriptorFor(sourceDir, "Song_Remastered.mp3"), Candidates: []namesync.Descriptor{sharedCandidate}},
	}

	recorder := &recordingEmitter{}

	syncer := newTestSyncer()
	syncer.SetEventEmitter(recorder)

	err := syncer.ResolveCollisions(sourceDir, targetDir, collisions, "copy")
	g.Expect(err).ShouldNot(HaveOccurred())

	g.Expect(recorder.events).To(Equal([]namesync.Event{
		namesync.CollisionResolved{
			Source:  filepath.Join(sourceDir, "Song_Remastered.mp3"),
			Target:  filepath.Join(targetDir, "Song.mp3"),
			NewBase: "Song_Remastered copy.mp3",
		},
		namesync.CollisionResolved{
			Source:  filepath.Join(sourceDir, "Song_Live.mp3"),
			Target:  filepath.Join(targetDir, "Song_Live copy.mp3"),
			NewBase: "Song_Live copy.mp3",
			Copied:  true,
		},
		namesync.ResolveComplete{Renamed: 1, Copied: 1},
	}))
}
