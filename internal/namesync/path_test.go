//nolint:varnamelen // Test files use idiomatic short variable names (t, g, d, etc.)
package namesync_test

import (
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/sync-names/internal/namesync"
)

func TestParsePathRoundTrips(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	paths := []string{
		filepath.FromSlash("/data/photos/IMG_0001.jpg"),
		filepath.FromSlash("relative/dir/report.txt"),
		"lonely.txt",
		filepath.FromSlash("/no/extension/README"),
	}

	for _, p := range paths {
		d := namesync.ParsePath(p)
		g.Expect(d.FullPath()).To(Equal(filepath.Clean(p)), "round trip for %q", p)
	}
}

func TestParsePathDecomposes(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	d := namesync.ParsePath(filepath.FromSlash("/data/photos/IMG_0001.jpg"))

	g.Expect(d.Dir).To(Equal(filepath.FromSlash("/data/photos")))
	g.Expect(d.Name).To(Equal("IMG_0001"))
	g.Expect(d.Ext).To(Equal(".jpg"))
	g.Expect(d.BaseName()).To(Equal("IMG_0001.jpg"))
}

func TestParsePathWithoutExtension(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	d := namesync.ParsePath("Makefile")

	g.Expect(d.Name).To(Equal("Makefile"))
	g.Expect(d.Ext).To(BeEmpty())
	g.Expect(d.Dir).To(BeEmpty())
	g.Expect(d.FullPath()).To(Equal("Makefile"))
}

func TestWithNameDoesNotMutate(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	original := namesync.NewDescriptor("dir", "old.txt")
	renamed := original.WithName("new")

	g.Expect(renamed.BaseName()).To(Equal("new.txt"))
	g.Expect(original.BaseName()).To(Equal("old.txt"))
}

func TestWithParentPreservesSubPath(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	d := namesync.NewDescriptor(filepath.FromSlash("sub/deep"), "file.txt")
	reparented := d.WithParent(filepath.FromSlash("/target/root"))

	g.Expect(reparented.FullPath()).To(Equal(filepath.FromSlash("/target/root/sub/deep/file.txt")))
	g.Expect(d.Dir).To(Equal(filepath.FromSlash("sub/deep")))
}

func TestRelativeTo(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	d := namesync.NewDescriptor(filepath.FromSlash("/source/sub/deep"), "file.txt")

	rel, err := d.RelativeTo(filepath.FromSlash("/source"))
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(rel.FullPath()).To(Equal(filepath.FromSlash("sub/deep/file.txt")))
}

func TestRelativeToRootItself(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	d := namesync.NewDescriptor(filepath.FromSlash("/source"), "file.txt")

	rel, err := d.RelativeTo(filepath.FromSlash("/source"))
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(rel.FullPath()).To(Equal("file.txt"))
}

func TestRelativeToThenReparent(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	// The fallback-copy destination computation: source path made relative
	// to the source root, reparented under the target root
	d := namesync.ParsePath(filepath.FromSlash("/src/albums/2019/track.flac"))

	rel, err := d.RelativeTo(filepath.FromSlash("/src"))
	g.Expect(err).ShouldNot(HaveOccurred())

	dest := rel.WithParent(filepath.FromSlash("/dst")).WithName("track copy")
	g.Expect(dest.FullPath()).To(Equal(filepath.FromSlash("/dst/albums/2019/track copy.flac")))
}

func TestEqualIsPathStringEquality(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	a := namesync.ParsePath(filepath.FromSlash("/data/a/file.txt"))
	b := namesync.ParsePath(filepath.FromSlash("/data/a/file.txt"))
	c := namesync.ParsePath(filepath.FromSlash("/data/b/file.txt"))

	g.Expect(a.Equal(b)).To(BeTrue())
	g.Expect(a.Equal(c)).To(BeFalse())
}
