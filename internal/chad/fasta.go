package chad

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Sequence is a named amino acid or DNA sequence.
type Sequence struct {
	Name string `json:"name"`
	Seq  string `json:"seq"`
}

// AcceptedSet is the DNA sequences generated so far, by name, in the order they
// were accepted.
type AcceptedSet struct {
	names []string
	seqs  map[string]string
}

// NewAcceptedSet returns an empty AcceptedSet.
func NewAcceptedSet() *AcceptedSet {
	return &AcceptedSet{seqs: make(map[string]string)}
}

// Add stores a sequence under a name.
func (a *AcceptedSet) Add(name, dna string) {
	if _, exists := a.seqs[name]; !exists {
		a.names = append(a.names, name)
	}
	a.seqs[name] = dna
}

// Get returns the sequence stored under a name.
func (a *AcceptedSet) Get(name string) (string, bool) {
	dna, ok := a.seqs[name]
	return dna, ok
}

// Len returns the number of accepted sequences.
func (a *AcceptedSet) Len() int {
	return len(a.names)
}

// Sequences returns the accepted sequences in the order they were accepted.
func (a *AcceptedSet) Sequences() []Sequence {
	seqs := make([]Sequence, 0, len(a.names))
	for _, name := range a.names {
		seqs = append(seqs, Sequence{Name: name, Seq: a.seqs[name]})
	}
	return seqs
}

// ReadSequences reads a FASTA file from the local filesystem.
func ReadSequences(path string, log *slog.Logger) ([]Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input sequences: %w", err)
	}
	defer f.Close()

	seqs, err := ParseSequences(f, log)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return seqs, nil
}

// ParseSequences parses FASTA records: a ">name" line followed by the lines of
// its sequence. Blank lines are ignored. A header without a sequence is skipped
// and a repeated name replaces the earlier record's sequence, both with a warning.
func ParseSequences(r io.Reader, log *slog.Logger) ([]Sequence, error) {
	var seqs []Sequence
	index := make(map[string]int) // name to position in seqs

	name := ""
	inRecord := false
	var seq strings.Builder
	flush := func() {
		if !inRecord {
			return
		}
		if seq.Len() == 0 {
			log.Warn("skipping FASTA record without a sequence", slog.String("name", name))
			return
		}
		if i, exists := index[name]; exists {
			log.Warn("duplicate FASTA record, keeping the last sequence", slog.String("name", name))
			seqs[i].Seq = seq.String()
			return
		}
		index[name] = len(seqs)
		seqs = append(seqs, Sequence{Name: name, Seq: seq.String()})
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ">") {
			flush()
			name = strings.TrimSpace(line[1:])
			inRecord = true
			seq.Reset()
			continue
		}

		if !inRecord {
			return nil, fmt.Errorf("line %d: %w", lineNum, ErrOrphanSequence)
		}
		seq.WriteString(strings.Join(strings.Fields(line), ""))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()

	if len(seqs) == 0 {
		return nil, ErrNoSequences
	}

	return seqs, nil
}

// WriteSequences writes the sequences to a FASTA file.
func WriteSequences(path string, seqs []Sequence) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err = FormatSequences(f, seqs); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return f.Close()
}

// FormatSequences writes each sequence as a ">name" line, its sequence, and a
// blank line.
func FormatSequences(w io.Writer, seqs []Sequence) error {
	bw := bufio.NewWriter(w)
	for _, s := range seqs {
		if _, err := fmt.Fprintf(bw, ">%s\n%s\n\n", s.Name, s.Seq); err != nil {
			return err
		}
	}
	return bw.Flush()
}
