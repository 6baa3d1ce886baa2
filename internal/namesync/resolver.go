package namesync

import (
	"errors"
	"sort"
)

// ErrEmptyPostfix is returned when ResolveCollisions is called with an empty
// postfix. An empty postfix would make the fallback names collide with the
// names the matching pass just assigned.
var ErrEmptyPostfix = errors.New("collision postfix must not be empty")

// ResolveCollisions consumes the collision list produced by SyncNames,
// resolving every entry to exactly one rename or one postfixed fallback copy.
//
// Collisions are processed in order of descending source stem length, so a
// short generic source name cannot steal a candidate that a longer, more
// specific source name also matches. Per collision, candidates claimed by an
// earlier iteration of this pass are skipped and the longest-stemmed
// remaining candidate is renamed to `sourceStem + " " + postfix` (candidate
// order breaks ties). When every candidate is already claimed, the source
// file is instead copied to its mirrored location under the target root with
// the same postfixed name.
func (s *Syncer) ResolveCollisions(sourceRoot, targetRoot string, collisions []Collision, postfix string) error {
	if postfix == "" {
		return ErrEmptyPostfix
	}

	// Sort a copy; the caller's list stays in discovery order. Stable keeps
	// equal-length keys deterministic.
	ordered := make([]Collision, len(collisions))
	copy(ordered, collisions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Source.Name) > len(ordered[j].Source.Name)
	})

	claimed := make(map[string]bool)
	renamedCount := 0
	copiedCount := 0

	for _, collision := range ordered {
		candidate, found := pickCandidate(collision.Candidates, claimed)
		newStem := collision.Source.Name + " " + postfix

		if found {
			newBase := candidate.WithName(newStem).BaseName()

			err := s.FS.Rename(candidate.FullPath(), newBase)
			if err != nil {
				return err
			}

			claimed[candidate.FullPath()] = true
			renamedCount++
			s.emit(CollisionResolved{
				Source:  collision.Source.FullPath(),
				Target:  candidate.FullPath(),
				NewBase: newBase,
			})
		} else {
			dest, err := s.fallbackDestination(collision.Source, sourceRoot, targetRoot, newStem)
			if err != nil {
				return err
			}

			err = s.FS.Copy(collision.Source.FullPath(), dest.FullPath())
			if err != nil {
				return err
			}

			copiedCount++
			s.emit(CollisionResolved{
				Source:  collision.Source.FullPath(),
				Target:  dest.FullPath(),
				NewBase: dest.BaseName(),
				Copied:  true,
			})
		}

		s.notify(collision.Source.FullPath())
	}

	s.emit(ResolveComplete{Renamed: renamedCount, Copied: copiedCount})

	return nil
}

// pickCandidate returns the unclaimed candidate with the longest stem.
// Original candidate order breaks length ties.
func pickCandidate(candidates []Descriptor, claimed map[string]bool) (Descriptor, bool) {
	var best Descriptor

	found := false

	for _, candidate := range candidates {
		if claimed[candidate.FullPath()] {
			continue
		}

		if !found || len(candidate.Name) > len(best.Name) {
			best = candidate
			found = true
		}
	}

	return best, found
}

// fallbackDestination computes the mirrored target path for a fallback copy:
// the source path made relative to the source root, reparented under the
// target root, with the postfixed stem.
func (s *Syncer) fallbackDestination(source Descriptor, sourceRoot, targetRoot, newStem string) (Descriptor, error) {
	rel, err := source.RelativeTo(sourceRoot)
	if err != nil {
		return Descriptor{}, err
	}

	return rel.WithParent(targetRoot).WithName(newStem), nil
}
