// Package fsops provides an abstraction layer for the filesystem operations
// the name-sync engine performs, so callers can inject dry-run, mock, or
// remote (SFTP) implementations without touching the engine.
package fsops

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// Exported constants.
const (
	// BufferSize is the size of the buffer used for file copy operations (32KB)
	BufferSize = 32 * 1024
	// DefaultDirPermissions is the default permission mode for created directories
	DefaultDirPermissions = 0o750
	// DefaultFilePermissions is the default permission mode for created files
	DefaultFilePermissions = 0o644
)

// Exported variables.
var (
	// ErrDestinationExists is returned when a copy would overwrite an existing file.
	ErrDestinationExists = errors.New("destination file already exists")
)

// Entry describes one regular file found in a directory listing.
type Entry struct {
	Name    string // base name, including extension
	Size    int64
	ModTime time.Time
}

// File abstracts an open file handle so copy loops work across
// local and remote filesystems alike.
type File interface {
	io.Reader
	io.Writer
	io.Closer
	Stat() (os.FileInfo, error)
}

// FileSystem is the access layer the engine is parametrized over.
//
// ListFiles, DirExists, MkdirAll, Rename, and Copy are the operations the
// engine invokes directly. ReadDir, Lstat, and Join satisfy kr/fs.FileSystem
// so the same injected object drives the tree walk. Open, Create, and Chtimes
// exist for copy implementations that span two filesystems.
//
// ReadDir must return entries sorted by name; walk order depends on it.
type FileSystem interface {
	// ListFiles returns the regular files in dir, sorted by name.
	// Directories and non-regular entries are omitted.
	ListFiles(dir string) ([]Entry, error)

	// DirExists reports whether dir exists and is a directory.
	DirExists(dir string) (bool, error)

	// MkdirAll creates dir and any missing parents.
	MkdirAll(dir string) error

	// Rename renames the file at path to newBase within its directory.
	Rename(path, newBase string) error

	// Copy copies the file at src to dst, preserving the modification
	// time. It fails with ErrDestinationExists if dst already exists.
	Copy(src, dst string) error

	// Open opens a file for reading.
	Open(path string) (File, error)

	// Create creates a file for writing. It fails if the path exists.
	Create(path string) (File, error)

	// Chtimes sets the access and modification times of a file.
	Chtimes(path string, atime, mtime time.Time) error

	// kr/fs.FileSystem methods for tree walking.
	ReadDir(dirname string) ([]os.FileInfo, error)
	Lstat(name string) (os.FileInfo, error)
	Join(elem ...string) string
}

// CopyBetween copies srcPath on src to dstPath on dst, preserving the source
// modification time. The two filesystems may be the same object or different
// ones (e.g. local source, SFTP target). Fails if dstPath already exists.
func CopyBetween(src FileSystem, srcPath string, dst FileSystem, dstPath string) error {
	sourceFile, err := src.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", srcPath, err)
	}

	defer func() {
		_ = sourceFile.Close()
	}()

	sourceInfo, err := sourceFile.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat source file %s: %w", srcPath, err)
	}

	destFile, err := dst.Create(dstPath)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dstPath, err)
	}

	copyCompleted := false

	defer func() {
		_ = destFile.Close()
		// Don't leave a partial file behind on failure
		if !copyCompleted {
			_ = removeIfPossible(dst, dstPath)
		}
	}()

	_, err = copyLoop(sourceFile, destFile)
	if err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", srcPath, dstPath, err)
	}

	// Close before setting times; required on some network filesystems
	err = destFile.Close()
	if err != nil {
		return fmt.Errorf("failed to close destination file %s: %w", dstPath, err)
	}

	copyCompleted = true

	err = dst.Chtimes(dstPath, sourceInfo.ModTime(), sourceInfo.ModTime())
	if err != nil {
		return fmt.Errorf("failed to preserve modification time for %s: %w", dstPath, err)
	}

	return nil
}

// copyLoop performs a buffered copy between two open files.
func copyLoop(sourceFile, destFile File) (int64, error) {
	var written int64

	buf := make([]byte, BufferSize)

	for {
		nr, err := sourceFile.Read(buf) //nolint:varnamelen // nr is idiomatic for bytes read
		if nr > 0 {
			nw, werr := destFile.Write(buf[0:nr]) //nolint:varnamelen // nw is idiomatic for bytes written
			if werr != nil {
				return written, fmt.Errorf("failed to write to destination: %w", werr)
			}

			if nr != nw {
				return written, fmt.Errorf("short write: %w", io.ErrShortWrite)
			}

			written += int64(nw)
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return written, fmt.Errorf("failed to read from source: %w", err)
		}
	}

	return written, nil
}

// remover is implemented by filesystems that can delete a file, used only to
// clean up partial copies.
type remover interface {
	Remove(path string) error
}

func removeIfPossible(fs FileSystem, path string) error {
	if r, ok := fs.(remover); ok {
		return r.Remove(path)
	}

	return nil
}
