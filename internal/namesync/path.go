// Package namesync reconciles file names between two mirrored directory
// trees: every source file is matched against the target tree by a fuzzy
// name rule, matched targets are renamed to the source name, unmatched
// sources are copied in, and ambiguous matches are deferred to a second
// resolution pass.
package namesync

import (
	"path/filepath"
	"strings"
)

// Descriptor is a decomposition of a file path into directory, stem, and
// extension. Descriptors are values; the derived operations return modified
// copies and never touch the original.
type Descriptor struct {
	Dir  string // directory portion of the path
	Name string // stem: base name without extension
	Ext  string // extension including the leading dot, or empty
}

// ParsePath decomposes a raw path string. Any string decomposes; a path
// without an extension simply has an empty Ext. For well-formed paths the
// decomposition round-trips: ParsePath(p).FullPath() == filepath.Clean(p).
func ParsePath(path string) Descriptor {
	dir := filepath.Dir(path)
	if dir == "." {
		dir = ""
	}

	return NewDescriptor(dir, filepath.Base(path))
}

// NewDescriptor builds a descriptor for a base name inside a directory,
// the form directory listings produce.
func NewDescriptor(dir, base string) Descriptor {
	ext := filepath.Ext(base)

	return Descriptor{
		Dir:  dir,
		Name: strings.TrimSuffix(base, ext),
		Ext:  ext,
	}
}

// BaseName returns the file name including its extension.
func (d Descriptor) BaseName() string {
	return d.Name + d.Ext
}

// FullPath formats the descriptor back into a path string.
func (d Descriptor) FullPath() string {
	return filepath.Join(d.Dir, d.BaseName())
}

// WithName returns a copy with the stem replaced. The extension is kept.
func (d Descriptor) WithName(stem string) Descriptor {
	d.Name = stem

	return d
}

// WithParent returns a copy reparented under parent, preserving whatever
// sub-path is already present in Dir.
func (d Descriptor) WithParent(parent string) Descriptor {
	d.Dir = filepath.Join(parent, d.Dir)

	return d
}

// RelativeTo returns a copy whose Dir is made relative to base.
func (d Descriptor) RelativeTo(base string) (Descriptor, error) {
	rel, err := filepath.Rel(base, d.Dir)
	if err != nil {
		return d, err //nolint:wrapcheck // filepath.Rel error carries both paths already
	}

	if rel == "." {
		rel = ""
	}

	d.Dir = rel

	return d, nil
}

// Equal reports whether two descriptors format to the same path string.
// Descriptors built independently from the same string are equal.
func (d Descriptor) Equal(other Descriptor) bool {
	return d.FullPath() == other.FullPath()
}
