//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package fsops_test

import (
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/sync-names/pkg/fsops"
)

func TestDryRunRecordsMutationsWithoutPerformingThem(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	dir := t.TempDir()
	path := writeFile(t, dir, "old.txt", "payload")

	dry := fsops.NewDryRun(fsops.NewLocal())

	err := dry.Rename(path, "new.txt")
	g.Expect(err).ShouldNot(HaveOccurred())

	err = dry.Copy(path, filepath.Join(dir, "copy.txt"))
	g.Expect(err).ShouldNot(HaveOccurred())

	g.Expect(dry.Ops()).To(Equal([]fsops.Op{
		{Kind: "rename", Path: path, To: "new.txt"},
		{Kind: "copy", Path: path, To: filepath.Join(dir, "copy.txt")},
	}))

	// The real filesystem is untouched
	entries, err := fsops.NewLocal().ListFiles(dir)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(entries).To(HaveLen(1))
	g.Expect(entries[0].Name).To(Equal("old.txt"))
}

func TestDryRunReadsPassThrough(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	dir := t.TempDir()
	writeFile(t, dir, "real.txt", "x")

	dry := fsops.NewDryRun(fsops.NewLocal())

	entries, err := dry.ListFiles(dir)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(entries).To(HaveLen(1))
	g.Expect(entries[0].Name).To(Equal("real.txt"))

	exists, err := dry.DirExists(dir)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(exists).To(BeTrue())
}

func TestDryRunCreatedDirsActEmptyAndPresent(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	phantom := filepath.Join(t.TempDir(), "phantom")

	dry := fsops.NewDryRun(fsops.NewLocal())

	exists, err := dry.DirExists(phantom)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(exists).To(BeFalse())

	err = dry.MkdirAll(phantom)
	g.Expect(err).ShouldNot(HaveOccurred())

	exists, err = dry.DirExists(phantom)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(exists).To(BeTrue())

	entries, err := dry.ListFiles(phantom)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(entries).To(BeEmpty())

	infos, err := dry.ReadDir(phantom)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(infos).To(BeEmpty())

	g.Expect(dry.Ops()).To(Equal([]fsops.Op{{Kind: "mkdir", Path: phantom}}))
}
