package errors

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Enricher enriches standard errors with actionable suggestions.
type Enricher interface {
	Enrich(err error, affectedPath string) error
}

// NewEnricher creates a new Enricher.
func NewEnricher() Enricher {
	return &enricher{}
}

//nolint:gochecknoglobals // Compiled once, shared across enricher instances
var pathExtractionPatterns = []*regexp.Regexp{
	// "open /path/to/file: permission denied" and similar Go error shapes
	regexp.MustCompile(`\b\w+\s+([./][^\s:]+):`),
	regexp.MustCompile(`\b\w+\s+([A-Za-z]:\\[^\s:]+):`),
}

type enricher struct{}

// Enrich categorizes an error and attaches suggestions. Errors that are
// already actionable pass through unchanged. When affectedPath is empty, a
// path is extracted from the error message if one is present.
func (e *enricher) Enrich(err error, affectedPath string) error {
	var actionableErr ActionableError
	if errors.As(err, &actionableErr) {
		return actionableErr
	}

	errMsg := err.Error()

	if affectedPath == "" {
		affectedPath = extractPath(errMsg)
	}

	category := categorize(errMsg)

	return NewActionableError(errMsg, category, suggestionsFor(category, affectedPath), affectedPath)
}

// categorize maps an error message to a category by its wording.
func categorize(errMsg string) ErrorCategory {
	lower := strings.ToLower(errMsg)

	switch {
	case strings.Contains(lower, "permission denied") || strings.Contains(lower, "operation not permitted"):
		return CategoryPermission
	case strings.Contains(lower, "no such file or directory") || strings.Contains(lower, "not a directory"):
		return CategoryPath
	case strings.Contains(lower, "rename"):
		return CategoryRename
	case strings.Contains(lower, "copy") || strings.Contains(lower, "already exists") || strings.Contains(lower, "no space left"):
		return CategoryCopy
	default:
		return CategoryUnknown
	}
}

func suggestionsFor(category ErrorCategory, path string) []string {
	switch category {
	case CategoryPermission:
		return permissionSuggestions(path)
	case CategoryPath:
		return pathSuggestions(path)
	case CategoryRename:
		return []string{
			"Check that the target tree is writable",
			"Verify no other process holds the file open",
			"Re-run with --dry-run to preview the renames first",
		}
	case CategoryCopy:
		return []string{
			"Check if there is sufficient disk space on the target",
			"A fallback copy refuses to overwrite an existing file; rename or remove the conflicting file",
			"Re-run with --dry-run to preview the copies first",
		}
	case CategoryUnknown:
		return unknownSuggestions(path)
	default:
		return unknownSuggestions(path)
	}
}

func permissionSuggestions(path string) []string {
	suggestions := []string{
		"Check that you have read access to the source tree and write access to the target tree",
	}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("Inspect permissions with 'ls -la %s'", path))
	}

	return append(suggestions, "Run as a user that owns the files, or adjust permissions with chmod/chown")
}

func pathSuggestions(path string) []string {
	suggestions := []string{
		"Verify both root directories exist and are spelled correctly",
	}

	if path != "" {
		suggestions = append(suggestions, "Check whether "+path+" was moved or deleted during the run")
	}

	return append(suggestions, "For sftp:// roots, confirm the remote path exists on the server")
}

func unknownSuggestions(path string) []string {
	suggestions := []string{
		"Try the operation again - this may be a transient I/O error",
	}

	if path != "" {
		suggestions = append(suggestions, "Check "+path+" manually")
	}

	return suggestions
}

// extractPath pulls a file path out of standard Go error message formats
// like "open /path/to/file: permission denied". Returns an empty string when
// no path is found.
func extractPath(errMsg string) string {
	for _, pattern := range pathExtractionPatterns {
		matches := pattern.FindStringSubmatch(errMsg)
		if len(matches) > 1 {
			return matches[1]
		}
	}

	return ""
}
