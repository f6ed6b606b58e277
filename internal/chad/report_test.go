package chad

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResult(gcs ...float64) *Result {
	result := &Result{Accepted: NewAcceptedSet()}
	for i, gc := range gcs {
		name := string(rune('a' + i))
		result.Accepted.Add(name, "ATG")
		result.Outcomes = append(result.Outcomes, Outcome{Name: name, Status: Accepted, Attempts: 1, GC: gc})
	}
	return result
}

func TestNewReport(t *testing.T) {
	id := uuid.New()

	t.Run("gc summary", func(t *testing.T) {
		r := NewReport(id, testResult(0.4, 0.6), 1500*time.Millisecond)

		assert.Equal(t, id.String(), r.ID)
		assert.Equal(t, 1.5, r.Execution)
		assert.Equal(t, 2, r.Accepted)
		assert.Equal(t, []string{}, r.Failed)
		assert.InDelta(t, 0.5, r.GCMean, 1e-9)
		assert.InDelta(t, math.Sqrt(0.02), r.GCStdDev, 1e-9)
		assert.Len(t, r.Sequences, 2)
		assert.NotEmpty(t, r.Time)
	})

	t.Run("single sequence", func(t *testing.T) {
		r := NewReport(id, testResult(0.3), time.Second)
		assert.Equal(t, 0.3, r.GCMean)
		assert.Zero(t, r.GCStdDev)
	})

	t.Run("failed sequences", func(t *testing.T) {
		result := testResult(0.5)
		result.Outcomes = append(result.Outcomes, Outcome{Name: "z", Status: Failed, Attempts: 10})

		r := NewReport(id, result, time.Second)
		assert.Equal(t, 1, r.Accepted)
		assert.Equal(t, []string{"z"}, r.Failed)
		assert.Equal(t, 0.5, r.GCMean, "failed sequences are left out of the GC summary")
	})

	t.Run("nothing accepted", func(t *testing.T) {
		r := NewReport(id, &Result{Accepted: NewAcceptedSet()}, 0)
		assert.Zero(t, r.Accepted)
		assert.Zero(t, r.GCMean)
		assert.Zero(t, r.GCStdDev)
	})
}

func TestWriteReport(t *testing.T) {
	r := NewReport(uuid.New(), testResult(0.4, 0.6), time.Second)
	r.Seed = 42
	r.MaxHomology = 20

	filename := filepath.Join(t.TempDir(), "report.json")
	output, err := WriteReport(filename, r)
	require.NoError(t, err)

	written, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, output, written)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(written, &got))
	assert.Equal(t, float64(42), got["seed"])
	assert.Equal(t, float64(20), got["maxHomology"])
	assert.Equal(t, []interface{}{}, got["failed"])
	assert.Len(t, got["sequences"], 2)

	_, err = WriteReport(filepath.Join(t.TempDir(), "missing", "report.json"), r)
	assert.Error(t, err)
}

func TestGCContent(t *testing.T) {
	tests := []struct {
		seq  string
		want float64
	}{
		{"", 0},
		{"ATAT", 0},
		{"GCGC", 1},
		{"ATGGCT", 0.5},
		{"ATGC", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.seq, func(t *testing.T) {
			assert.Equal(t, tt.want, gcContent(tt.seq))
		})
	}
}
