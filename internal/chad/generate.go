package chad

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/jjtimmons/chad/internal/logger"
)

const (
	// DefaultSeed seeds the codon sampler when no seed is configured.
	DefaultSeed int64 = 123

	// DefaultMaxAttempts is the number of candidates sampled for a sequence
	// before it is reported as failed.
	DefaultMaxAttempts = 500000
)

// Status is the outcome of generating a DNA sequence for one input.
type Status string

const (
	// Accepted sequences passed every check and are in the AcceptedSet.
	Accepted Status = "accepted"

	// Failed sequences ran out of attempts and are left out of the output.
	Failed Status = "failed"
)

// Rejections counts the candidates rejected by each check.
type Rejections struct {
	Diversity int `json:"diversity"`
	Cloning   int `json:"cloning"`
	RareCodon int `json:"rareCodon"`
}

// Outcome is the result of generating a DNA sequence for one input sequence.
type Outcome struct {
	Name       string     `json:"name"`
	Status     Status     `json:"status"`
	Attempts   int        `json:"attempts"`
	Rejections Rejections `json:"rejections"`

	// GC is the GC fraction of the accepted sequence (zero if it failed)
	GC float64 `json:"gc"`
}

// Result is the product of a Generate call.
type Result struct {
	// Accepted is the generated DNA sequences in input order
	Accepted *AcceptedSet

	// Outcomes has one entry per input sequence, in input order
	Outcomes []Outcome
}

// Failed returns the names of the input sequences without a generated sequence.
func (r *Result) Failed() (names []string) {
	for _, o := range r.Outcomes {
		if o.Status == Failed {
			names = append(names, o.Name)
		}
	}
	return
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the random source codons are drawn from.
func WithSource(src rand.Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// WithSeed seeds the random source codons are drawn from.
func WithSeed(seed int64) Option {
	return WithSource(NewSeededSource(seed))
}

// WithEnzymes sets the enzymes whose recognition sites are forbidden.
func WithEnzymes(enzymes []Enzyme) Option {
	return func(g *Generator) { g.enzymes = enzymes }
}

// WithRareCodonChecker replaces the rare codon check.
func WithRareCodonChecker(rc RareCodonChecker) Option {
	return func(g *Generator) {
		if rc != nil {
			g.rare = rc
		}
	}
}

// WithMaxAttempts sets the number of candidates sampled per sequence before it
// fails. Values below one are ignored.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithLogger sets the logger progress and failures are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// Generator turns amino acid sequences into diverse, cloning compatible DNA
// sequences by rejection sampling codons from a codon usage model.
//
// Inputs are processed one at a time in order. Each candidate is checked
// against the sequences accepted before it, so the order of the inputs changes
// which sequences are generated, and whether some can be generated at all.
type Generator struct {
	usage       *CodonUsage
	maxHomology int
	maxAttempts int
	enzymes     []Enzyme
	rare        RareCodonChecker
	src         rand.Source
	log         *slog.Logger
}

// NewGenerator returns a Generator for the codon usage model. Generated sequences
// share no substring of length maxHomology-1.
func NewGenerator(usage *CodonUsage, maxHomology int, opts ...Option) *Generator {
	g := &Generator{
		usage:       usage,
		maxHomology: maxHomology,
		maxAttempts: DefaultMaxAttempts,
		enzymes:     DefaultEnzymes(),
		rare:        AllowRareCodons{},
		log:         logger.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.src == nil {
		g.src = NewSeededSource(DefaultSeed)
	}

	return g
}

// Generate samples a DNA sequence for each amino acid sequence, in order.
//
// A sequence that can't be generated within the attempt budget is left out of
// the AcceptedSet and reported as Failed. An amino acid that can't be sampled
// aborts the run with an error.
func (g *Generator) Generate(seqs []Sequence) (*Result, error) {
	sampler := NewSampler(g.usage, g.src)
	diversity := NewDiversityChecker(g.maxHomology)
	cloning := NewCloningChecker(g.enzymes)

	result := &Result{Accepted: NewAcceptedSet()}
	for _, s := range seqs {
		outcome := Outcome{Name: s.Name, Status: Failed}

		for outcome.Attempts < g.maxAttempts {
			outcome.Attempts++

			candidate, err := sampler.SampleSequence(s.Seq)
			if err != nil {
				return nil, fmt.Errorf("failed to sample %s: %w", s.Name, err)
			}

			if !diversity.Check(candidate) {
				outcome.Rejections.Diversity++
				continue
			}
			if !cloning.Check(candidate) {
				outcome.Rejections.Cloning++
				continue
			}
			if !g.rare.Check(candidate, g.usage.Rare) {
				outcome.Rejections.RareCodon++
				continue
			}

			outcome.Status = Accepted
			outcome.GC = gcContent(candidate)
			result.Accepted.Add(s.Name, candidate)
			diversity.Add(candidate)
			break
		}

		if outcome.Status == Accepted {
			g.log.Info("generated sequence",
				slog.String("name", s.Name),
				slog.Int("attempts", outcome.Attempts))
		} else {
			g.log.Warn("could not generate compatible sequence",
				slog.String("name", s.Name),
				slog.Int("attempts", outcome.Attempts),
				slog.Int("diversity_rejections", outcome.Rejections.Diversity),
				slog.Int("cloning_rejections", outcome.Rejections.Cloning),
				slog.Int("rare_codon_rejections", outcome.Rejections.RareCodon))
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	return result, nil
}
