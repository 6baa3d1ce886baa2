package fsops

import (
	"fmt"
	"os"
	"path"
	"sort"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

// SFTP implements FileSystem against a remote host over a single SFTP
// session. The engine is single-threaded, so one client is enough.
type SFTP struct {
	sshClient  *ssh.Client
	sftpClient *sftp.Client
}

// NewSFTP opens a connection to the host described by the parsed URL and
// returns a filesystem rooted at the remote server.
func NewSFTP(parsed *ParsedPath) (*SFTP, error) {
	sshClient, sftpClient, err := Connect(parsed.Host, parsed.Port, parsed.User)
	if err != nil {
		return nil, err
	}

	return &SFTP{sshClient: sshClient, sftpClient: sftpClient}, nil
}

// Close shuts down the SFTP session and the underlying SSH connection.
func (s *SFTP) Close() error {
	var firstErr error

	if s.sftpClient != nil {
		firstErr = s.sftpClient.Close()
	}

	if s.sshClient != nil {
		err := s.sshClient.Close()
		if firstErr == nil {
			firstErr = err
		}
	}

	if firstErr != nil {
		return fmt.Errorf("failed to close SFTP connection: %w", firstErr)
	}

	return nil
}

// ListFiles returns the regular files in a remote directory, sorted by name.
func (s *SFTP) ListFiles(dir string) ([]Entry, error) {
	infos, err := s.sftpClient.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list remote directory %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(infos))

	for _, info := range infos {
		if !info.Mode().IsRegular() {
			continue
		}

		entries = append(entries, Entry{
			Name:    info.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	return entries, nil
}

// DirExists reports whether a remote directory exists.
func (s *SFTP) DirExists(dir string) (bool, error) {
	info, err := s.sftpClient.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, fmt.Errorf("failed to stat remote path %s: %w", dir, err)
	}

	return info.IsDir(), nil
}

// MkdirAll creates a remote directory and all necessary parents.
func (s *SFTP) MkdirAll(dir string) error {
	err := s.sftpClient.MkdirAll(dir)
	if err != nil {
		return fmt.Errorf("failed to create remote directory %s: %w", dir, err)
	}

	return nil
}

// Rename renames a remote file to newBase within its directory.
func (s *SFTP) Rename(p, newBase string) error {
	newPath := path.Join(path.Dir(p), newBase)

	err := s.sftpClient.Rename(p, newPath)
	if err != nil {
		return fmt.Errorf("failed to rename remote file %s to %s: %w", p, newBase, err)
	}

	return nil
}

// Copy copies a remote file to another remote path on the same host.
func (s *SFTP) Copy(src, dst string) error {
	return CopyBetween(s, src, s, dst)
}

// Open opens a remote file for reading.
func (s *SFTP) Open(p string) (File, error) {
	file, err := s.sftpClient.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open remote file %s: %w", p, err)
	}

	return file, nil
}

// Create creates a remote file for writing. Fails if the path exists.
func (s *SFTP) Create(p string) (File, error) {
	_, err := s.sftpClient.Lstat(p)
	if err == nil {
		return nil, fmt.Errorf("%w: %s", ErrDestinationExists, p)
	}

	file, err := s.sftpClient.Create(p)
	if err != nil {
		return nil, fmt.Errorf("failed to create remote file %s: %w", p, err)
	}

	return file, nil
}

// Chtimes sets the access and modification times of a remote file.
func (s *SFTP) Chtimes(p string, atime, mtime time.Time) error {
	err := s.sftpClient.Chtimes(p, atime, mtime)
	if err != nil {
		return fmt.Errorf("failed to change times for remote file %s: %w", p, err)
	}

	return nil
}

// Remove removes a remote file. Used only to clean up partial copies.
func (s *SFTP) Remove(p string) error {
	err := s.sftpClient.Remove(p)
	if err != nil {
		return fmt.Errorf("failed to remove remote file %s: %w", p, err)
	}

	return nil
}

// ReadDir reads a remote directory, sorted by name.
// Part of the kr/fs.FileSystem interface used for tree walking.
func (s *SFTP) ReadDir(dirname string) ([]os.FileInfo, error) {
	infos, err := s.sftpClient.ReadDir(dirname)
	if err != nil {
		return nil, fmt.Errorf("failed to read remote directory %s: %w", dirname, err)
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Name() < infos[j].Name() })

	return infos, nil
}

// Lstat returns remote file info without following symlinks.
func (s *SFTP) Lstat(name string) (os.FileInfo, error) {
	info, err := s.sftpClient.Lstat(name)
	if err != nil {
		return nil, fmt.Errorf("failed to lstat remote path %s: %w", name, err)
	}

	return info, nil
}

// Join joins remote path elements with forward slashes.
func (s *SFTP) Join(elem ...string) string {
	return path.Join(elem...)
}
