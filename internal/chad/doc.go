// Package chad generates diverse DNA coding sequences for amino acid sequences.
//
// Codons are sampled for each amino acid in proportion to their usage in a
// reference organism. A candidate DNA sequence is kept only if it shares no long
// substring with the sequences generated before it and contains none of a set of
// forbidden restriction enzyme recognition sites, so that the sequences can be
// assembled together without mispriming or unwanted digestion. Candidates are
// resampled until one passes or an attempt budget runs out.
package chad
