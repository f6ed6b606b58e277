package chad

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler draws codons for amino acids in proportion to their usage weights.
//
// Every draw consumes the single random source the Sampler was created with, so
// a fixed seed and a fixed order of calls reproduce the same codons. A Sampler is
// not safe for concurrent use.
type Sampler struct {
	usage *CodonUsage

	// dists is a categorical distribution over each amino acid's codons
	dists map[string]distuv.Categorical
}

// NewSeededSource returns the random source used for codon sampling.
func NewSeededSource(seed int64) rand.Source {
	return rand.NewPCG(uint64(seed), uint64(seed))
}

// NewSampler returns a Sampler over the codon usage model that draws from src.
func NewSampler(usage *CodonUsage, src rand.Source) *Sampler {
	s := &Sampler{
		usage: usage,
		dists: make(map[string]distuv.Categorical),
	}

	for _, aa := range usage.AminoAcids() {
		codons, _ := usage.Codons(aa)
		weights := make([]float64, len(codons))
		total := 0.0
		for i, c := range codons {
			weights[i] = c.Weight
			total += c.Weight
		}
		if total <= 0 {
			continue // sampling it is an error, see Sample
		}
		s.dists[aa] = distuv.NewCategorical(weights, src)
	}

	return s
}

// Sample draws one codon for the amino acid.
func (s *Sampler) Sample(aminoAcid string) (string, error) {
	dist, ok := s.dists[aminoAcid]
	if !ok {
		if _, known := s.usage.Codons(aminoAcid); known {
			return "", fmt.Errorf("%w: %q", ErrNoCodonWeight, aminoAcid)
		}
		return "", fmt.Errorf("%w: %q", ErrUnknownAminoAcid, aminoAcid)
	}

	codons, _ := s.usage.Codons(aminoAcid)
	return codons[int(dist.Rand())].Seq, nil
}

// SampleSequence draws a codon for each amino acid of the sequence, in order, and
// returns the concatenated DNA sequence.
func (s *Sampler) SampleSequence(aaSeq string) (string, error) {
	var dna strings.Builder
	dna.Grow(3 * len(aaSeq))

	for _, aa := range aaSeq {
		codon, err := s.Sample(string(aa))
		if err != nil {
			return "", err
		}
		dna.WriteString(codon)
	}

	return dna.String(), nil
}
