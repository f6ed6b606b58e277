package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/jjtimmons/chad/config"
	"github.com/jjtimmons/chad/internal/chad"
	"github.com/spf13/cobra"
)

// enzymesCmd is for listing the enzymes whose recognition sites are kept out of
// generated sequences.
var enzymesCmd = &cobra.Command{
	Use:                        "enzymes [name]",
	Short:                      "List enzymes with forbidden recognition sites",
	RunE:                       listEnzymes,
	Args:                       cobra.MaximumNArgs(1),
	SuggestionsMinimumDistance: 2,
	Long: `List the enzymes whose recognition sites may not appear in generated sequences,
with their forward and reverse complement sites:

	<Name>	<Site> <Site>

Without --enzymes the built in Golden Gate enzymes (BsaI, BbsI, SapI) are used.
If [name] is passed, only that enzyme is listed, or those with similar names.`,
	Aliases: []string{"enzyme"},
}

func listEnzymes(cmd *cobra.Command, args []string) error {
	conf, err := config.New()
	if err != nil {
		return err
	}

	enzymes, err := loadEnzymes(conf)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		enzymes = chad.FindEnzymes(enzymes, args[0])
		if len(enzymes) == 0 {
			return fmt.Errorf("failed to find any enzymes for %s", args[0])
		}
	}

	// from https://golang.org/pkg/text/tabwriter/
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', tabwriter.TabIndent)
	for _, enz := range enzymes {
		fmt.Fprintf(w, "%s\t%s\n", enz.Name, strings.Join(enz.Sites, " "))
	}
	return w.Flush()
}

// set flags
func init() {
	RootCmd.AddCommand(enzymesCmd)
}
