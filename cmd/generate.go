package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jjtimmons/chad/config"
	"github.com/jjtimmons/chad/internal/chad"
	"github.com/jjtimmons/chad/internal/logger"
	"github.com/spf13/cobra"
)

// generate reads the codon usage table and amino acid sequences, generates a DNA
// sequence for each, and writes the ones it could generate to the output FASTA.
func generate(cmd *cobra.Command, args []string) error {
	maxHomology, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("MAX_HOMOLOGY_BP must be an integer, got %q", args[0])
	}
	codonPath, inPath, outPath := args[1], args[2], args[3]

	conf, err := config.New()
	if err != nil {
		return err
	}

	log, err := newLogger(conf)
	if err != nil {
		return err
	}
	runID := uuid.New()
	log = log.With(slog.String("run", runID.String()))

	log.Info("Codon Harmonization And Diversification (CHAD) algorithm",
		slog.Int("max_homology", maxHomology),
		slog.Int64("seed", conf.Seed))
	if maxHomology <= 1 {
		log.Warn("MAX_HOMOLOGY_BP <= 1 rejects every candidate, no sequences will be generated")
	}

	usage, err := chad.ReadCodonUsage(codonPath, log)
	if err != nil {
		return err
	}

	seqs, err := chad.ReadSequences(inPath, log)
	if err != nil {
		return err
	}

	enzymes, err := loadEnzymes(conf)
	if err != nil {
		return err
	}

	start := time.Now()
	gen := chad.NewGenerator(
		usage,
		maxHomology,
		chad.WithSeed(conf.Seed),
		chad.WithMaxAttempts(conf.MaxAttempts),
		chad.WithEnzymes(enzymes),
		chad.WithLogger(log),
	)
	result, err := gen.Generate(seqs)
	if err != nil {
		log.Error("generation aborted", logger.Error(err))
		return err
	}
	elapsed := time.Since(start)

	if err = chad.WriteSequences(outPath, result.Accepted.Sequences()); err != nil {
		return err
	}

	if conf.Report != "" {
		report := chad.NewReport(runID, result, elapsed)
		report.Seed = conf.Seed
		report.MaxHomology = maxHomology
		report.MaxAttempts = conf.MaxAttempts
		if _, err = chad.WriteReport(conf.Report, report); err != nil {
			return err
		}
	}

	log.Info("wrote sequences",
		slog.String("out", outPath),
		slog.Int("accepted", result.Accepted.Len()),
		slog.Int("failed", len(result.Failed())),
		slog.Duration("elapsed", elapsed))
	if conf.Verbose {
		for _, o := range result.Outcomes {
			log.Debug("outcome", slog.String("name", o.Name), slog.String("status", string(o.Status)),
				slog.Int("attempts", o.Attempts), slog.Float64("gc", o.GC))
		}
	}

	return nil
}

// loadEnzymes returns the enzyme table from the settings, or the built in enzymes.
func loadEnzymes(conf *config.Config) ([]chad.Enzyme, error) {
	if conf.Enzymes == "" {
		return chad.DefaultEnzymes(), nil
	}

	return chad.ReadEnzymes(conf.Enzymes)
}
