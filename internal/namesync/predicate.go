package namesync

import "strings"

// Predicate decides whether a target file is a plausible match for a source
// file. Predicates must be pure: no filesystem access, no side effects.
type Predicate func(source, target Descriptor) bool

// NormalizedPrefixMatch is the shipped matching strategy. Both stems are
// normalized by stripping every character that is not an ASCII letter or
// digit; the files match iff the normalized source stem starts with the
// normalized target stem.
//
// The rule is directional: a longer source name can match a shorter target
// name, not the other way around.
func NormalizedPrefixMatch(source, target Descriptor) bool {
	return strings.HasPrefix(NormalizeStem(source.Name), NormalizeStem(target.Name))
}

// NormalizeStem strips every non-alphanumeric ASCII character from a stem.
// Normalized stems are used only for matching, never for output naming.
func NormalizeStem(stem string) string {
	var b strings.Builder

	b.Grow(len(stem))

	for _, r := range stem {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
