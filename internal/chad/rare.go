package chad

// RareCodonChecker decides whether a candidate's use of rare codons is acceptable.
type RareCodonChecker interface {
	Check(candidate string, info RareCodonInfo) bool
}

// AllowRareCodons accepts every candidate. Rare codon flags are loaded with the
// codon usage table but not yet used to reject sequences.
type AllowRareCodons struct{}

// Check always returns true.
func (AllowRareCodons) Check(string, RareCodonInfo) bool {
	return true
}
