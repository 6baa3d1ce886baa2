package namesync

// Collision records one source file that matched more than one unclaimed
// target file in its directory, together with the full candidate list as it
// stood when the ambiguity was found.
type Collision struct {
	Source     Descriptor
	Candidates []Descriptor
}

// Result accumulates across a whole tree walk. Resolved holds every target
// descriptor claimed so far, in claim order; Collisions holds the deferred
// ambiguous matches in discovery order. Both grow monotonically and never
// shrink until the resolution pass consumes them.
//
// Collisions is an ordered list of (source, candidates) pairs rather than a
// map: descriptor equality is path-string equality, which Go map keys cannot
// express, and list order keeps runs deterministic.
type Result struct {
	Resolved   []Descriptor
	Collisions []Collision
}

// Claimed reports whether the target descriptor has already been claimed by
// an earlier match during this walk.
func (r *Result) Claimed(target Descriptor) bool {
	for _, d := range r.Resolved {
		if d.Equal(target) {
			return true
		}
	}

	return false
}

func (r *Result) addResolved(target Descriptor) {
	r.Resolved = append(r.Resolved, target)
}

func (r *Result) addCollision(source Descriptor, candidates []Descriptor) {
	r.Collisions = append(r.Collisions, Collision{Source: source, Candidates: candidates})
}
