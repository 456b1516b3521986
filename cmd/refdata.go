package main

import (
	"fmt"
	"io"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/ngscreen/internal/refdata"
)

var refdataDump bool

var refdataCmd = &cobra.Command{
	Use:   "refdata",
	Short: "Show the reference lists used by the address screen",
	Long: `Prints the size of each reference list after merging refdata.path, if set.
With --dump, prints the merged lists as YAML; the output is a valid
refdata.path file.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ref, err := loadReference()
		if err != nil {
			return err
		}
		if refdataDump {
			return dumpReference(cmd.OutOrStdout(), ref)
		}
		return printReferenceStats(cmd.OutOrStdout(), ref.Stats())
	},
}

func dumpReference(w io.Writer, ref *refdata.ReferenceData) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ref); err != nil {
		return eris.Wrap(err, "refdata: encode yaml")
	}
	return eris.Wrap(enc.Close(), "refdata: flush yaml")
}

func printReferenceStats(w io.Writer, st refdata.Stats) error {
	_, err := fmt.Fprintf(w, "states:           %d\ncities:           %d\naddress_keywords: %d\nforeign_terms:    %d\n",
		st.States, st.Cities, st.AddressKeywords, st.ForeignTerms)
	return err
}

func init() {
	refdataCmd.Flags().BoolVar(&refdataDump, "dump", false, "print the merged lists as YAML")
	rootCmd.AddCommand(refdataCmd)
}
