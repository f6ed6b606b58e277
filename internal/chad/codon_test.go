package chad

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jjtimmons/chad/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCodonUsage(t *testing.T) {
	input := `codon,amino_acid,frequency,rare_flag
ATG, M, 1.0, 0
GCT,A,0.5,0
GCC,A,0.5,1
bad,row
GCA,A,0.25,0,extra
gcg,A,0.1,0
`
	var logs bytes.Buffer
	usage, err := ParseCodonUsage(strings.NewReader(input), logger.New(logger.WithOutput(&logs)))
	require.NoError(t, err)

	assert.Equal(t, []string{"M", "A"}, usage.AminoAcids())

	codons, ok := usage.Codons("A")
	require.True(t, ok)
	assert.Equal(t, []Codon{{"GCT", 0.5}, {"GCC", 0.5}, {"GCG", 0.1}}, codons)

	codons, ok = usage.Codons("M")
	require.True(t, ok)
	assert.Equal(t, []Codon{{"ATG", 1.0}}, codons)

	assert.Equal(t, []int{1}, usage.Rare["GCC"])
	assert.Equal(t, []int{0}, usage.Rare["ATG"])

	// both malformed rows are reported
	assert.Equal(t, 2, strings.Count(logs.String(), "malformed codon usage row"))
	assert.Contains(t, logs.String(), "line=5")
	assert.Contains(t, logs.String(), "line=6")
}

func TestParseCodonUsage_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			"empty file",
			"",
			nil,
		},
		{
			"unparsable frequency",
			"codon,amino_acid,frequency,rare_flag\nATG,M,high,0\n",
			nil,
		},
		{
			"negative frequency",
			"codon,amino_acid,frequency,rare_flag\nATG,M,-1,0\n",
			ErrNegativeWeight,
		},
		{
			"not a number frequency",
			"codon,amino_acid,frequency,rare_flag\nATG,M,NaN,0\n",
			nil,
		},
		{
			"unparsable rare flag",
			"codon,amino_acid,frequency,rare_flag\nATG,M,1,yes\n",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCodonUsage(strings.NewReader(tt.input), logger.Discard())
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
		})
	}
}

func TestParseCodonUsage_SkipsNonTriplets(t *testing.T) {
	input := "codon,amino_acid,frequency,rare_flag\nATGA,M,1,0\nATG,M,1,0\n"
	usage, err := ParseCodonUsage(strings.NewReader(input), logger.Discard())
	require.NoError(t, err)

	codons, _ := usage.Codons("M")
	assert.Equal(t, []Codon{{"ATG", 1}}, codons)
}

func TestReadCodonUsage(t *testing.T) {
	usage, err := ReadCodonUsage(filepath.Join("testdata", "ecoli_codons.csv"), logger.Discard())
	require.NoError(t, err)

	assert.Len(t, usage.AminoAcids(), 21)
	for _, aa := range usage.AminoAcids() {
		codons, _ := usage.Codons(aa)
		for _, c := range codons {
			got, ok := usage.AminoAcidOf(c.Seq)
			assert.True(t, ok)
			assert.Equal(t, aa, got)
		}
	}

	_, err = ReadCodonUsage(filepath.Join("testdata", "missing.csv"), logger.Discard())
	assert.Error(t, err)
}

func TestCodonUsage_Decode(t *testing.T) {
	usage := NewCodonUsage()
	usage.Add("M", Codon{"ATG", 1})
	usage.Add("A", Codon{"GCT", 0.5})
	usage.Add("A", Codon{"GCC", 0.5})
	usage.Add("V", Codon{"GCC", 1}) // GCC still decodes to A

	tests := []struct {
		name    string
		dna     string
		want    string
		wantErr bool
	}{
		{"empty", "", "", false},
		{"two codons", "ATGGCT", "MA", false},
		{"first amino acid wins", "GCCATG", "AM", false},
		{"not a multiple of three", "ATGG", "", true},
		{"unknown codon", "ATGTTT", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := usage.Decode(tt.dna)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
