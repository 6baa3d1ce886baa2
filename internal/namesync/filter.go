package namesync

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// systemArtifacts are filesystem metadata files that never take part in
// matching on either side.
var systemArtifacts = map[string]bool{
	".DS_Store":   true,
	".localized":  true,
	"Thumbs.db":   true,
	"desktop.ini": true,
}

// ArtifactFilter excludes system artifacts and user-supplied glob patterns
// from directory listings. Pattern matching is case-insensitive.
type ArtifactFilter struct {
	patterns []string
}

// NewArtifactFilter creates a filter with optional exclude patterns.
// A nil or empty pattern list excludes only the fixed system artifacts.
func NewArtifactFilter(excludes []string) *ArtifactFilter {
	patterns := make([]string, 0, len(excludes))
	for _, p := range excludes {
		patterns = append(patterns, strings.ToLower(p))
	}

	return &ArtifactFilter{patterns: patterns}
}

// ShouldInclude returns true if a file with the given base name should take
// part in matching.
func (f *ArtifactFilter) ShouldInclude(base string) bool {
	if systemArtifacts[base] {
		return false
	}

	lower := strings.ToLower(base)

	for _, pattern := range f.patterns {
		matched, err := doublestar.Match(pattern, lower)
		if err != nil {
			// Invalid pattern excludes nothing
			continue
		}

		if matched {
			return false
		}
	}

	return true
}
