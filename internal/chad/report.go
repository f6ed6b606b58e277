package chad

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"
)

// Report summarizes a generation run. It is written as JSON next to the FASTA output.
type Report struct {
	// ID is a unique id for the run, also attached to its log records
	ID string `json:"id"`

	// Time, ex: "2018/01/01 20:41:00"
	Time string `json:"time"`

	// Execution is the number of seconds it took to generate the sequences
	Execution float64 `json:"execution"`

	// Seed of the codon sampler
	Seed int64 `json:"seed"`

	// MaxHomology is one more than the longest substring sequences may share
	MaxHomology int `json:"maxHomology"`

	// MaxAttempts is the number of candidates sampled per sequence before failing
	MaxAttempts int `json:"maxAttempts"`

	// Accepted is the number of generated sequences
	Accepted int `json:"accepted"`

	// Failed is the names of the sequences that couldn't be generated
	Failed []string `json:"failed"`

	// GCMean and GCStdDev are over the GC fraction of the generated sequences
	GCMean   float64 `json:"gcMean"`
	GCStdDev float64 `json:"gcStdDev"`

	// Sequences has the outcome of every input sequence
	Sequences []Outcome `json:"sequences"`
}

// NewReport summarizes the result of a run that took elapsed.
func NewReport(id uuid.UUID, result *Result, elapsed time.Duration) Report {
	// same format as log.Println https://golang.org/pkg/log/#Println
	t := time.Now()
	timestamp := fmt.Sprintf(
		"%d/%02d/%02d %02d:%02d:%02d",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
	)

	var gcs []float64
	for _, o := range result.Outcomes {
		if o.Status == Accepted {
			gcs = append(gcs, o.GC)
		}
	}

	r := Report{
		ID:        id.String(),
		Time:      timestamp,
		Execution: elapsed.Seconds(),
		Accepted:  result.Accepted.Len(),
		Failed:    result.Failed(),
		Sequences: result.Outcomes,
	}
	if r.Failed == nil {
		r.Failed = []string{}
	}

	switch {
	case len(gcs) == 1:
		r.GCMean = gcs[0]
	case len(gcs) > 1:
		r.GCMean, r.GCStdDev = stat.MeanStdDev(gcs, nil)
	}

	return r
}

// WriteReport serializes the report and writes it to filename.
func WriteReport(filename string, r Report) (output []byte, err error) {
	output, err = json.MarshalIndent(r, "", "  ")
	if err != nil {
		return output, fmt.Errorf("failed to serialize the report: %w", err)
	}

	if err = os.WriteFile(filename, output, 0666); err != nil {
		return output, fmt.Errorf("failed to write the report: %w", err)
	}

	return output, nil
}

// gcContent returns the fraction of G and C bases in a DNA sequence.
func gcContent(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}
	gc := strings.Count(seq, "G") + strings.Count(seq, "C")
	return float64(gc) / float64(len(seq))
}
