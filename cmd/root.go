// Package cmd is for command line interactions with the chad application
package cmd

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/jjtimmons/chad/config"
	"github.com/jjtimmons/chad/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// RootCmd generates diverse DNA sequences for a FASTA file of amino acid sequences.
var RootCmd = &cobra.Command{
	Use:   "chad MAX_HOMOLOGY_BP CODON_DATA_FILE INPUT_AA_FILE OUTPUT_DNA_FILE",
	Short: "Codon Harmonization And Diversification (CHAD) algorithm",
	Long: `Codon Harmonization And Diversification (CHAD) algorithm

Generate a DNA coding sequence for each amino acid sequence in INPUT_AA_FILE
(FASTA) and write them to OUTPUT_DNA_FILE (FASTA).

Codons are sampled in proportion to their usage frequency in CODON_DATA_FILE
(CSV with the columns codon, amino_acid, frequency, rare_flag). A sequence is
resampled until it shares no substring of MAX_HOMOLOGY_BP-1 bp with the
sequences generated before it and contains no forbidden enzyme recognition
site. Sequences that can't be generated within the attempt budget are left out
of the output.

Output is reproducible: the same seed and input give the same sequences.`,
	Example:       "  chad 20 ecoli_codons.csv proteins.fa proteins_dna.fa",
	Version:       "0.1.0",
	Args:          exactArgs(4),
	RunE:          generate,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		stderr.Fatalf("%v", err)
	}
}

// exactArgs is cobra.ExactArgs with a pointer to the help flag.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%s requires %d arguments. Type `%s -h` for help", cmd.Name(), n, cmd.CommandPath())
		}
		return nil
	}
}

// newLogger builds the logger for a command from its settings.
func newLogger(conf *config.Config) (*slog.Logger, error) {
	format, err := logger.ParseFormat(conf.LogFormat)
	if err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	if conf.Verbose {
		level = slog.LevelDebug
	}

	return logger.New(logger.WithFormat(format), logger.WithLevel(level)), nil
}

// set flags
func init() {
	// settings is an optional settings file (YAML, TOML, JSON) that overrides the defaults
	RootCmd.PersistentFlags().StringP("settings", "s", "", "settings file")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug messages")
	RootCmd.PersistentFlags().String("log-format", "text", `log format, "text" or "json"`)
	RootCmd.PersistentFlags().StringP("enzymes", "e", "", "enzyme table (YAML or TSV) with forbidden recognition sites")

	RootCmd.Flags().Int64("seed", 123, "seed for codon sampling")
	RootCmd.Flags().IntP("max-attempts", "n", 500000, "candidates sampled per sequence before giving up")
	RootCmd.Flags().StringP("report", "r", "", "path to write a JSON run report")

	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log-format", RootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("seed", RootCmd.Flags().Lookup("seed"))
	viper.BindPFlag("max-attempts", RootCmd.Flags().Lookup("max-attempts"))
	viper.BindPFlag("enzymes", RootCmd.PersistentFlags().Lookup("enzymes"))
	viper.BindPFlag("report", RootCmd.Flags().Lookup("report"))
}
