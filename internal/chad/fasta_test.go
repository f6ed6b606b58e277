package chad

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jjtimmons/chad/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSequences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     []Sequence
		wantWarn string
	}{
		{
			"single record",
			">seq1\nMA\n",
			[]Sequence{{"seq1", "MA"}},
			"",
		},
		{
			"blank lines and whitespace",
			"\n> seq1 \n  MA  \n\n\n>seq2\nMKV\n",
			[]Sequence{{"seq1", "MA"}, {"seq2", "MKV"}},
			"",
		},
		{
			"sequence over several lines",
			">seq1\nMAAA\nKKKK\nV\n",
			[]Sequence{{"seq1", "MAAAKKKKV"}},
			"",
		},
		{
			"header without a sequence",
			">empty\n>seq1\nMA\n",
			[]Sequence{{"seq1", "MA"}},
			"without a sequence",
		},
		{
			"duplicate names keep the first position and last sequence",
			">seq1\nMA\n>seq2\nMK\n>seq1\nMV\n",
			[]Sequence{{"seq1", "MV"}, {"seq2", "MK"}},
			"duplicate FASTA record",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			got, err := ParseSequences(strings.NewReader(tt.input), logger.New(logger.WithOutput(&logs)))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if tt.wantWarn != "" {
				assert.Contains(t, logs.String(), tt.wantWarn)
			} else {
				assert.Empty(t, logs.String())
			}
		})
	}
}

func TestParseSequences_Errors(t *testing.T) {
	_, err := ParseSequences(strings.NewReader("MA\n>seq1\nMA\n"), logger.Discard())
	assert.True(t, errors.Is(err, ErrOrphanSequence))

	_, err = ParseSequences(strings.NewReader("\n\n"), logger.Discard())
	assert.True(t, errors.Is(err, ErrNoSequences))

	_, err = ReadSequences(filepath.Join("testdata", "missing.fa"), logger.Discard())
	assert.Error(t, err)
}

func TestReadSequences(t *testing.T) {
	seqs, err := ReadSequences(filepath.Join("testdata", "proteins.fa"), logger.Discard())
	require.NoError(t, err)

	require.Len(t, seqs, 3)
	assert.Equal(t, "gfp_fragment", seqs[0].Name)
	assert.Equal(t, "lacz_fragment", seqs[1].Name)
	assert.Len(t, seqs[1].Seq, 100)
	assert.Equal(t, "rfp_fragment", seqs[2].Name)
}

func TestFormatSequences(t *testing.T) {
	var out bytes.Buffer
	err := FormatSequences(&out, []Sequence{{"seq1", "ATGGCT"}, {"seq2", "ATG"}})
	require.NoError(t, err)

	assert.Equal(t, ">seq1\nATGGCT\n\n>seq2\nATG\n\n", out.String())
}

func TestWriteSequences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.fa")
	seqs := []Sequence{{"seq1", "ATGGCT"}, {"seq2", "ATGGCC"}}
	require.NoError(t, WriteSequences(path, seqs))

	// output is readable as input
	got, err := ReadSequences(path, logger.Discard())
	require.NoError(t, err)
	assert.Equal(t, seqs, got)

	require.NoError(t, WriteSequences(path, nil))
	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, contents)

	assert.Error(t, WriteSequences(filepath.Join(t.TempDir(), "missing", "out.fa"), seqs))
}

func TestAcceptedSet(t *testing.T) {
	a := NewAcceptedSet()
	assert.Zero(t, a.Len())
	assert.Empty(t, a.Sequences())

	a.Add("b", "ATG")
	a.Add("a", "GCT")
	a.Add("b", "GCC")

	assert.Equal(t, 2, a.Len())
	assert.Equal(t, []Sequence{{"b", "GCC"}, {"a", "GCT"}}, a.Sequences())

	dna, ok := a.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "GCT", dna)

	_, ok = a.Get("c")
	assert.False(t, ok)
}
