package chad

import "gonum.org/v1/gonum/stat/distuv"

// CodonProbability is a codon's weight and its probability of being sampled.
type CodonProbability struct {
	Codon  string
	Weight float64
	Prob   float64
}

// AminoAcidUsage describes how codons are sampled for one amino acid.
type AminoAcidUsage struct {
	AminoAcid string
	Codons    []CodonProbability

	// Entropy (nats) of the codon distribution. Zero when one codon is always used.
	Entropy float64
}

// SummarizeUsage returns the sampling distribution of every amino acid in the
// model, in model order. Amino acids without positive weight have zero
// probabilities.
func SummarizeUsage(u *CodonUsage) []AminoAcidUsage {
	var summary []AminoAcidUsage
	for _, aa := range u.AminoAcids() {
		codons, _ := u.Codons(aa)
		weights := make([]float64, len(codons))
		total := 0.0
		for i, c := range codons {
			weights[i] = c.Weight
			total += c.Weight
		}

		aaUsage := AminoAcidUsage{AminoAcid: aa}
		var dist distuv.Categorical
		if total > 0 {
			dist = distuv.NewCategorical(weights, nil)
			aaUsage.Entropy = dist.Entropy()
		}

		for i, c := range codons {
			cp := CodonProbability{Codon: c.Seq, Weight: c.Weight}
			if total > 0 {
				cp.Prob = dist.Prob(float64(i))
			}
			aaUsage.Codons = append(aaUsage.Codons, cp)
		}
		summary = append(summary, aaUsage)
	}

	return summary
}
