package fsops

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// DefaultSSHPort is used when an SFTP URL does not name a port.
const DefaultSSHPort = 22

// ParsedPath represents either a local path or a path on a remote SFTP host.
type ParsedPath struct {
	IsRemote bool

	// For local paths
	LocalPath string

	// For SFTP paths
	Host string
	Port int
	User string
	Path string
}

// ParsePath classifies a raw root argument. Anything starting with sftp://
// is parsed as an SFTP URL of the form sftp://user@host:port/path; everything
// else is a local path.
func ParsePath(raw string) (*ParsedPath, error) {
	if strings.HasPrefix(raw, "sftp://") {
		return parseSFTPURL(raw)
	}

	return &ParsedPath{IsRemote: false, LocalPath: raw}, nil
}

func parseSFTPURL(sftpURL string) (*ParsedPath, error) {
	u, err := url.Parse(sftpURL) //nolint:varnamelen // u is idiomatic for URL
	if err != nil {
		return nil, fmt.Errorf("invalid SFTP URL: %w", err)
	}

	if u.Scheme != "sftp" {
		return nil, fmt.Errorf("expected sftp:// scheme, got %s://", u.Scheme) //nolint:err113 // URL validation with actual scheme
	}

	if u.User == nil || u.User.Username() == "" {
		return nil, fmt.Errorf("SFTP URL must include username (sftp://user@host/path)") //nolint:err113,perfsprint // URL validation with format guidance
	}

	host := u.Hostname()
	if host == "" {
		return nil, fmt.Errorf("SFTP URL must include host") //nolint:err113,perfsprint // URL validation error
	}

	port := DefaultSSHPort

	if portStr := u.Port(); portStr != "" {
		port, err = strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid port number: %w", err)
		}
	}

	remotePath := u.Path
	if remotePath == "" {
		remotePath = "/"
	}

	return &ParsedPath{
		IsRemote: true,
		Host:     host,
		Port:     port,
		User:     u.User.Username(),
		Path:     remotePath,
	}, nil
}
