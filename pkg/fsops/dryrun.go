package fsops

import (
	"io"
	"os"
	"time"
)

// Op records one mutation a dry run would have performed.
type Op struct {
	Kind string // "rename", "copy", or "mkdir"
	Path string // file being renamed, copy source, or directory created
	To   string // new base name for renames, destination path for copies
}

// DryRun wraps a FileSystem, passing reads through and recording mutations
// instead of performing them. Substituting it for the real filesystem turns a
// sync run into a plan preview.
type DryRun struct {
	fs   FileSystem
	ops  []Op
	dirs map[string]bool // directories "created" during the run
}

// NewDryRun creates a dry-run wrapper around the given filesystem.
func NewDryRun(fs FileSystem) *DryRun {
	return &DryRun{
		fs:   fs,
		dirs: make(map[string]bool),
	}
}

// Ops returns the mutations recorded so far, in order.
func (d *DryRun) Ops() []Op {
	return d.ops
}

// ListFiles passes through to the wrapped filesystem. Directories "created"
// during the run list as empty.
func (d *DryRun) ListFiles(dir string) ([]Entry, error) {
	if d.dirs[dir] {
		return nil, nil
	}

	return d.fs.ListFiles(dir)
}

// DirExists reports true for directories "created" earlier in the run.
func (d *DryRun) DirExists(dir string) (bool, error) {
	if d.dirs[dir] {
		return true, nil
	}

	return d.fs.DirExists(dir)
}

// MkdirAll records the directory creation without performing it.
func (d *DryRun) MkdirAll(dir string) error {
	d.dirs[dir] = true
	d.ops = append(d.ops, Op{Kind: "mkdir", Path: dir})

	return nil
}

// Rename records the rename without performing it.
func (d *DryRun) Rename(path, newBase string) error {
	d.ops = append(d.ops, Op{Kind: "rename", Path: path, To: newBase})

	return nil
}

// Copy records the copy without performing it.
func (d *DryRun) Copy(src, dst string) error {
	d.ops = append(d.ops, Op{Kind: "copy", Path: src, To: dst})

	return nil
}

// Open passes through to the wrapped filesystem.
func (d *DryRun) Open(path string) (File, error) {
	return d.fs.Open(path)
}

// Create returns a handle that discards all writes.
func (d *DryRun) Create(_ string) (File, error) {
	return discardFile{}, nil
}

// Chtimes is a no-op in a dry run.
func (d *DryRun) Chtimes(_ string, _, _ time.Time) error {
	return nil
}

// ReadDir passes through to the wrapped filesystem. Directories "created"
// during the run read as empty.
func (d *DryRun) ReadDir(dirname string) ([]os.FileInfo, error) {
	if d.dirs[dirname] {
		return nil, nil
	}

	return d.fs.ReadDir(dirname)
}

// Lstat passes through to the wrapped filesystem.
func (d *DryRun) Lstat(name string) (os.FileInfo, error) {
	return d.fs.Lstat(name)
}

// Join passes through to the wrapped filesystem.
func (d *DryRun) Join(elem ...string) string {
	return d.fs.Join(elem...)
}

// discardFile is a write-only sink used by DryRun.Create.
type discardFile struct{}

func (discardFile) Read(_ []byte) (int, error)  { return 0, io.EOF }
func (discardFile) Write(p []byte) (int, error) { return len(p), nil }
func (discardFile) Close() error                { return nil }
func (discardFile) Stat() (os.FileInfo, error)  { return nil, os.ErrInvalid }
