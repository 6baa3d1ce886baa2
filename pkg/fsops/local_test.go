//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package fsops_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/sync-names/pkg/fsops"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	err := os.WriteFile(path, []byte(content), 0o600)
	if err != nil {
		t.Fatalf("failed to create test file %s: %v", name, err)
	}

	return path
}

func TestLocalListFilesReturnsRegularFilesSorted(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	dir := t.TempDir()
	writeFile(t, dir, "zebra.txt", "z")
	writeFile(t, dir, "apple.txt", "a")

	err := os.Mkdir(filepath.Join(dir, "subdir"), 0o750)
	g.Expect(err).ShouldNot(HaveOccurred())

	entries, err := fsops.NewLocal().ListFiles(dir)
	g.Expect(err).ShouldNot(HaveOccurred())

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}

	// Directories are skipped; files come back in name order
	g.Expect(names).To(Equal([]string{"apple.txt", "zebra.txt"}))
	g.Expect(entries[0].Size).To(Equal(int64(1)))
}

func TestLocalListFilesFailsOnMissingDir(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, err := fsops.NewLocal().ListFiles(filepath.Join(t.TempDir(), "nope"))
	g.Expect(err).Should(HaveOccurred())
}

func TestLocalDirExists(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	dir := t.TempDir()
	file := writeFile(t, dir, "plain.txt", "x")

	local := fsops.NewLocal()

	exists, err := local.DirExists(dir)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(exists).To(BeTrue())

	exists, err = local.DirExists(filepath.Join(dir, "missing"))
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(exists).To(BeFalse())

	// A regular file is not a directory
	exists, err = local.DirExists(file)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(exists).To(BeFalse())
}

func TestLocalRenameKeepsDirectory(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	dir := t.TempDir()
	path := writeFile(t, dir, "old.txt", "payload")

	err := fsops.NewLocal().Rename(path, "new.txt")
	g.Expect(err).ShouldNot(HaveOccurred())

	moved, err := os.ReadFile(filepath.Join(dir, "new.txt"))
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(string(moved)).To(Equal("payload"))

	_, err = os.Stat(path)
	g.Expect(os.IsNotExist(err)).To(BeTrue())
}

func TestLocalCopyPreservesContentAndModTime(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	dir := t.TempDir()
	src := writeFile(t, dir, "src.txt", "copy me")

	past := time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC)

	err := os.Chtimes(src, past, past)
	g.Expect(err).ShouldNot(HaveOccurred())

	dst := filepath.Join(dir, "dst.txt")

	err = fsops.NewLocal().Copy(src, dst)
	g.Expect(err).ShouldNot(HaveOccurred())

	content, err := os.ReadFile(dst)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(string(content)).To(Equal("copy me"))

	info, err := os.Stat(dst)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(info.ModTime().Equal(past)).To(BeTrue())
}

func TestLocalCopyRefusesExistingDestination(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	dir := t.TempDir()
	src := writeFile(t, dir, "src.txt", "new")
	dst := writeFile(t, dir, "dst.txt", "precious")

	err := fsops.NewLocal().Copy(src, dst)
	g.Expect(errors.Is(err, fsops.ErrDestinationExists)).To(BeTrue())

	// The existing destination is untouched
	content, err := os.ReadFile(dst)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(string(content)).To(Equal("precious"))
}

func TestLocalReadDirSortedByName(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	dir := t.TempDir()
	writeFile(t, dir, "c.txt", "c")
	writeFile(t, dir, "a.txt", "a")

	err := os.Mkdir(filepath.Join(dir, "b"), 0o750)
	g.Expect(err).ShouldNot(HaveOccurred())

	infos, err := fsops.NewLocal().ReadDir(dir)
	g.Expect(err).ShouldNot(HaveOccurred())

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}

	g.Expect(names).To(Equal([]string{"a.txt", "b", "c.txt"}))
}

func TestLocalMkdirAllCreatesNestedDirs(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	nested := filepath.Join(t.TempDir(), "a", "b", "c")

	local := fsops.NewLocal()

	err := local.MkdirAll(nested)
	g.Expect(err).ShouldNot(HaveOccurred())

	exists, err := local.DirExists(nested)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(exists).To(BeTrue())
}
