package cmd

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/jjtimmons/chad/config"
	"github.com/jjtimmons/chad/internal/chad"
	"github.com/spf13/cobra"
)

// usageCmd is for checking a codon usage table before generating sequences with it.
var usageCmd = &cobra.Command{
	Use:   "usage CODON_DATA_FILE",
	Short: "Show how codons are sampled from a codon usage table",
	RunE:  showUsage,
	Args:  cobra.ExactArgs(1),
	Long: `Read a codon usage table (CSV: codon, amino_acid, frequency, rare_flag) and
list each amino acid's codons with the probability of sampling each one.

The entropy (nats) of each amino acid's codon distribution is a measure of how
much room there is to diversify sequences with it. Amino acids with an entropy
of 0 always use the same codon.`,
	Example: "  chad usage ecoli_codons.csv",
}

func showUsage(cmd *cobra.Command, args []string) error {
	conf, err := config.New()
	if err != nil {
		return err
	}

	log, err := newLogger(conf)
	if err != nil {
		return err
	}

	usage, err := chad.ReadCodonUsage(args[0], log)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 3, ' ', 0)
	fmt.Fprintf(w, "amino acid\tcodon\tfrequency\tprobability\trare\tentropy\t\n")
	for _, aa := range chad.SummarizeUsage(usage) {
		for i, c := range aa.Codons {
			entropy := ""
			if i == 0 {
				entropy = fmt.Sprintf("%.3f", aa.Entropy)
			}
			fmt.Fprintf(w, "%s\t%s\t%g\t%.3f\t%v\t%s\t\n", aa.AminoAcid, c.Codon, c.Weight, c.Prob, usage.Rare[c.Codon], entropy)
		}
		if aa.Entropy == 0 && len(aa.Codons) > 1 {
			log.Debug("amino acid has one usable codon", slog.String("amino_acid", aa.AminoAcid))
		}
	}
	return w.Flush()
}

// set flags
func init() {
	RootCmd.AddCommand(usageCmd)
}
