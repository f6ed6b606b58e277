package chad

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
)

// Codon is a nucleotide triplet and its relative usage weight.
type Codon struct {
	Seq    string
	Weight float64
}

// RareCodonInfo maps a codon to its rarity flags (0 or 1), one per usage table
// row that listed the codon.
type RareCodonInfo map[string][]int

// CodonUsage is the codon usage model: for each amino acid, the synonymous codons
// that encode it and their relative usage weights. Amino acids and codons keep
// the order they were first added in.
type CodonUsage struct {
	// Rare holds the rarity flags of each codon
	Rare RareCodonInfo

	aminoAcids []string
	codons     map[string][]Codon
	decode     map[string]string
}

// NewCodonUsage returns an empty codon usage model.
func NewCodonUsage() *CodonUsage {
	return &CodonUsage{
		Rare:   make(RareCodonInfo),
		codons: make(map[string][]Codon),
		decode: make(map[string]string),
	}
}

// Add appends a synonymous codon to an amino acid. The first amino acid a codon is
// added under is the one it decodes to.
func (u *CodonUsage) Add(aminoAcid string, c Codon) {
	if _, exists := u.codons[aminoAcid]; !exists {
		u.aminoAcids = append(u.aminoAcids, aminoAcid)
	}
	u.codons[aminoAcid] = append(u.codons[aminoAcid], c)

	if _, exists := u.decode[c.Seq]; !exists {
		u.decode[c.Seq] = aminoAcid
	}
}

// AminoAcids returns the amino acids in the model in first-seen order.
func (u *CodonUsage) AminoAcids() []string {
	return append([]string(nil), u.aminoAcids...)
}

// Codons returns the synonymous codons of an amino acid.
func (u *CodonUsage) Codons(aminoAcid string) ([]Codon, bool) {
	codons, ok := u.codons[aminoAcid]
	return codons, ok
}

// AminoAcidOf returns the amino acid a codon decodes to.
func (u *CodonUsage) AminoAcidOf(codon string) (string, bool) {
	aa, ok := u.decode[codon]
	return aa, ok
}

// Decode translates a DNA coding sequence back to its amino acid sequence
// through the model's codons.
func (u *CodonUsage) Decode(dna string) (string, error) {
	if len(dna)%3 != 0 {
		return "", fmt.Errorf("failed to decode sequence of length %d: not a multiple of 3", len(dna))
	}

	var aas strings.Builder
	for i := 0; i < len(dna); i += 3 {
		aa, ok := u.decode[dna[i:i+3]]
		if !ok {
			return "", fmt.Errorf("failed to decode codon %s at %d: not in the usage table", dna[i:i+3], i)
		}
		aas.WriteString(aa)
	}

	return aas.String(), nil
}

// ReadCodonUsage reads a codon usage table from a CSV file on the local filesystem.
func ReadCodonUsage(path string, log *slog.Logger) (*CodonUsage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open codon usage table: %w", err)
	}
	defer f.Close()

	usage, err := ParseCodonUsage(f, log)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return usage, nil
}

// ParseCodonUsage parses a codon usage table with a header row and the columns:
//
//	codon, amino_acid, frequency, rare_flag
//
// Rows without exactly four columns, and rows whose codon isn't a triplet, are
// skipped with a warning.
func ParseCodonUsage(r io.Reader, log *slog.Logger) (*CodonUsage, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // column count is checked per row
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty codon usage table")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	usage := NewCodonUsage()
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)

		if len(row) != 4 {
			log.Warn("skipping malformed codon usage row, requires 4 columns",
				slog.Int("line", line), slog.Int("columns", len(row)))
			continue
		}

		codon := strings.ToUpper(strings.TrimSpace(row[0]))
		aa := strings.TrimSpace(row[1])
		if len(codon) != 3 {
			log.Warn("skipping codon usage row, codon is not a triplet",
				slog.Int("line", line), slog.String("codon", codon))
			continue
		}

		freq, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: failed to parse frequency: %w", line, err)
		}
		if math.IsNaN(freq) || math.IsInf(freq, 0) {
			return nil, fmt.Errorf("line %d: frequency of %s is not a finite number", line, codon)
		}
		if freq < 0 {
			return nil, fmt.Errorf("line %d: %w: %s %v", line, ErrNegativeWeight, codon, freq)
		}

		rare, err := strconv.Atoi(strings.TrimSpace(row[3]))
		if err != nil {
			return nil, fmt.Errorf("line %d: failed to parse rare flag: %w", line, err)
		}

		if other, exists := usage.AminoAcidOf(codon); exists && other != aa {
			log.Warn("codon listed for more than one amino acid, decoding keeps the first",
				slog.String("codon", codon), slog.String("first", other), slog.String("also", aa))
		}

		usage.Add(aa, Codon{Seq: codon, Weight: freq})
		usage.Rare[codon] = append(usage.Rare[codon], rare)
	}

	return usage, nil
}
