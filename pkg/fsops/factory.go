package fsops

import (
	"os"
	"strings"
	"time"
)

// ForRoots builds the filesystem for a pair of root arguments, each either a
// local path or an sftp:// URL. It returns the filesystem to inject into the
// engine, the two roots with URL syntax stripped, and a closer that releases
// any remote connections.
func ForRoots(sourceRaw, targetRaw string) (FileSystem, string, string, func(), error) {
	sourceParsed, err := ParsePath(sourceRaw)
	if err != nil {
		return nil, "", "", nil, err
	}

	targetParsed, err := ParsePath(targetRaw)
	if err != nil {
		return nil, "", "", nil, err
	}

	if !sourceParsed.IsRemote && !targetParsed.IsRemote {
		return NewLocal(), sourceParsed.LocalPath, targetParsed.LocalPath, func() {}, nil
	}

	sourceFS, sourcePath, sourceClose, err := forRoot(sourceParsed)
	if err != nil {
		return nil, "", "", nil, err
	}

	targetFS, targetPath, targetClose, err := forRoot(targetParsed)
	if err != nil {
		sourceClose()
		return nil, "", "", nil, err
	}

	dual := &Dual{
		Source:     sourceFS,
		SourceRoot: sourcePath,
		Target:     targetFS,
		TargetRoot: targetPath,
	}

	closer := func() {
		sourceClose()
		targetClose()
	}

	return dual, sourcePath, targetPath, closer, nil
}

func forRoot(parsed *ParsedPath) (FileSystem, string, func(), error) {
	if !parsed.IsRemote {
		return NewLocal(), parsed.LocalPath, func() {}, nil
	}

	remote, err := NewSFTP(parsed)
	if err != nil {
		return nil, "", nil, err
	}

	return remote, parsed.Path, func() { _ = remote.Close() }, nil
}

// Dual routes filesystem operations to a source or target filesystem by path
// prefix, so a run can span local and remote trees. Copies between the two
// sides stream through CopyBetween.
type Dual struct {
	Source     FileSystem
	SourceRoot string
	Target     FileSystem
	TargetRoot string
}

// route picks the side a path belongs to. Paths under neither root default to
// the target side; the engine only ever writes into the target tree.
func (d *Dual) route(p string) FileSystem {
	if pathIsUnder(p, d.SourceRoot) && !pathIsUnder(p, d.TargetRoot) {
		return d.Source
	}

	return d.Target
}

func pathIsUnder(p, root string) bool {
	if p == root {
		return true
	}

	return strings.HasPrefix(p, strings.TrimSuffix(root, "/")+"/") ||
		strings.HasPrefix(p, strings.TrimSuffix(root, string(os.PathSeparator))+string(os.PathSeparator))
}

// ListFiles lists the directory on whichever side it belongs to.
func (d *Dual) ListFiles(dir string) ([]Entry, error) {
	return d.route(dir).ListFiles(dir)
}

// DirExists checks the directory on whichever side it belongs to.
func (d *Dual) DirExists(dir string) (bool, error) {
	return d.route(dir).DirExists(dir)
}

// MkdirAll creates the directory on whichever side it belongs to.
func (d *Dual) MkdirAll(dir string) error {
	return d.route(dir).MkdirAll(dir)
}

// Rename renames on whichever side the path belongs to.
func (d *Dual) Rename(path, newBase string) error {
	return d.route(path).Rename(path, newBase)
}

// Copy streams between the two sides when src and dst differ.
func (d *Dual) Copy(src, dst string) error {
	return CopyBetween(d.route(src), src, d.route(dst), dst)
}

// Open opens on whichever side the path belongs to.
func (d *Dual) Open(path string) (File, error) {
	return d.route(path).Open(path)
}

// Create creates on whichever side the path belongs to.
func (d *Dual) Create(path string) (File, error) {
	return d.route(path).Create(path)
}

// Chtimes sets times on whichever side the path belongs to.
func (d *Dual) Chtimes(path string, atime, mtime time.Time) error {
	return d.route(path).Chtimes(path, atime, mtime)
}

// ReadDir reads on whichever side the path belongs to.
func (d *Dual) ReadDir(dirname string) ([]os.FileInfo, error) {
	return d.route(dirname).ReadDir(dirname)
}

// Lstat stats on whichever side the path belongs to.
func (d *Dual) Lstat(name string) (os.FileInfo, error) {
	return d.route(name).Lstat(name)
}

// Join joins using whichever side the first element belongs to.
func (d *Dual) Join(elem ...string) string {
	if len(elem) > 0 {
		return d.route(elem[0]).Join(elem...)
	}

	return ""
}
