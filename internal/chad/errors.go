package chad

import "errors"

var (
	// ErrUnknownAminoAcid is returned when a sequence uses an amino acid with no
	// codons in the codon usage table.
	ErrUnknownAminoAcid = errors.New("amino acid has no codons in the usage table")

	// ErrNoCodonWeight is returned when every codon of an amino acid has a weight of zero.
	ErrNoCodonWeight = errors.New("amino acid codons have no positive weight")

	// ErrNegativeWeight is returned for a codon usage row with a negative frequency.
	ErrNegativeWeight = errors.New("codon frequency is negative")

	// ErrInvalidSite is returned for a recognition site with non-ACGT bases.
	ErrInvalidSite = errors.New("invalid recognition site")

	// ErrNoSequences is returned when an input file has no sequence records.
	ErrNoSequences = errors.New("no sequences found")

	// ErrOrphanSequence is returned for sequence lines before the first FASTA header.
	ErrOrphanSequence = errors.New("sequence line before a FASTA header")
)
