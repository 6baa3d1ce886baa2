package fsops

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Local implements FileSystem using the os package.
type Local struct{}

// NewLocal creates a new local filesystem instance.
func NewLocal() *Local {
	return &Local{}
}

// ListFiles returns the regular files in dir, sorted by name.
func (l *Local) ListFiles(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(dirEntries))

	// os.ReadDir returns entries sorted by name already
	for _, de := range dirEntries {
		if !de.Type().IsRegular() {
			continue
		}

		info, err := de.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", filepath.Join(dir, de.Name()), err)
		}

		entries = append(entries, Entry{
			Name:    de.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	return entries, nil
}

// DirExists reports whether dir exists and is a directory.
func (l *Local) DirExists(dir string) (bool, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", dir, err)
	}

	return info.IsDir(), nil
}

// MkdirAll creates dir and any missing parents.
func (l *Local) MkdirAll(dir string) error {
	err := os.MkdirAll(dir, DefaultDirPermissions)
	if err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	return nil
}

// Rename renames the file at path to newBase within its directory.
func (l *Local) Rename(path, newBase string) error {
	newPath := filepath.Join(filepath.Dir(path), newBase)

	err := os.Rename(path, newPath)
	if err != nil {
		return fmt.Errorf("failed to rename %s to %s: %w", path, newBase, err)
	}

	return nil
}

// Copy copies src to dst, preserving the modification time.
// Fails with ErrDestinationExists if dst already exists.
func (l *Local) Copy(src, dst string) error {
	return CopyBetween(l, src, l, dst)
}

// Open opens a file for reading.
func (l *Local) Open(path string) (File, error) {
	file, err := os.Open(path) // #nosec G304 - file path is controlled by caller
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	return file, nil
}

// Create creates a file for writing. Fails if the path already exists.
func (l *Local) Create(path string) (File, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, DefaultFilePermissions) // #nosec G304 - file path is controlled by caller
	if err != nil {
		if os.IsExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDestinationExists, path)
		}

		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}

	return file, nil
}

// Chtimes sets the access and modification times of a file.
func (l *Local) Chtimes(path string, atime, mtime time.Time) error {
	err := os.Chtimes(path, atime, mtime)
	if err != nil {
		return fmt.Errorf("failed to change times for %s: %w", path, err)
	}

	return nil
}

// Remove removes a file. Used only to clean up partial copies.
func (l *Local) Remove(path string) error {
	err := os.Remove(path)
	if err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}

	return nil
}

// ReadDir reads a directory, returning all entries sorted by name.
// Part of the kr/fs.FileSystem interface used for tree walking.
func (l *Local) ReadDir(dirname string) ([]os.FileInfo, error) {
	dirEntries, err := os.ReadDir(dirname)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dirname, err)
	}

	infos := make([]os.FileInfo, 0, len(dirEntries))

	for _, de := range dirEntries {
		info, err := de.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", filepath.Join(dirname, de.Name()), err)
		}

		infos = append(infos, info)
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Name() < infos[j].Name() })

	return infos, nil
}

// Lstat returns file info without following symlinks.
func (l *Local) Lstat(name string) (os.FileInfo, error) {
	info, err := os.Lstat(name)
	if err != nil {
		return nil, fmt.Errorf("failed to lstat %s: %w", name, err)
	}

	return info, nil
}

// Join joins path elements using the local separator.
func (l *Local) Join(elem ...string) string {
	return filepath.Join(elem...)
}
