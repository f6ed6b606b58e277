package chad

// DiversityChecker rejects candidate sequences that share a substring of length
// maxHomology-1 with any sequence accepted so far.
//
// Accepted sequences are indexed by all of their substrings of that length, so a
// check costs one set lookup per window of the candidate. The outcome is the
// same as scanning every accepted sequence for every window.
type DiversityChecker struct {
	// window is the length of substrings that may not be shared (maxHomology-1)
	window int

	// kmers is every window-length substring of every accepted sequence
	kmers map[string]struct{}
}

// NewDiversityChecker returns a checker with an empty accepted set.
//
// With maxHomology <= 1 the window is empty, an empty substring is contained in
// every sequence, and every candidate is rejected.
func NewDiversityChecker(maxHomology int) *DiversityChecker {
	return &DiversityChecker{
		window: maxHomology - 1,
		kmers:  make(map[string]struct{}),
	}
}

// Window returns the length of the substrings candidates may not share.
func (d *DiversityChecker) Window() int {
	return d.window
}

// Add indexes an accepted sequence.
func (d *DiversityChecker) Add(dna string) {
	if d.window <= 0 {
		return
	}
	for i := 0; i+d.window <= len(dna); i++ {
		d.kmers[dna[i:i+d.window]] = struct{}{}
	}
}

// Check returns whether the candidate shares no window-length substring with the
// accepted sequences.
func (d *DiversityChecker) Check(candidate string) bool {
	if d.window <= 0 {
		return false
	}
	for i := 0; i+d.window <= len(candidate); i++ {
		if _, shared := d.kmers[candidate[i:i+d.window]]; shared {
			return false
		}
	}
	return true
}
