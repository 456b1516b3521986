package main

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/ngscreen/internal/pipeline"
	"github.com/sells-group/ngscreen/internal/report"
)

var (
	addressInput  string
	addressOutput string
	addressXLSX   string
	addressLimit  int
)

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Flag accounts whose nationality, location or address is non-Nigerian",
	Long: `Classifies every account with a valid email using, in order: nationality,
geographic location, state of residence, free-text address, and finally an
unrecognized state. Writes the non-Nigerian accounts to --output, their
emails to <output>_emails_only.txt, and undecided accounts to
<output>_unknown.csv for review.

Examples:
  ngscreen address --input "All Accts.txt" --output non_nigerian_address.csv

  # Remote export, with a workbook for reviewers
  ngscreen address --input https://exports.example.com/accts.txt \
    --output out.csv --xlsx out.xlsx`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := runAddress(cmd.Context(), addressInput, addressOutput, addressXLSX, addressLimit)
		if err != nil {
			return err
		}
		return s.Print(cmd.OutOrStdout())
	},
}

// runAddress runs the address pipeline end to end and returns its summary.
func runAddress(ctx context.Context, input, output, workbook string, limit int) (*report.Summary, error) {
	started := time.Now()

	c, err := newClassifier()
	if err != nil {
		return nil, err
	}

	rc, err := openInput(ctx, input)
	if err != nil {
		return nil, eris.Wrap(err, "address: open input")
	}
	defer rc.Close()

	res, err := pipeline.NewAddressPipeline(c, pipelineOptions(limit)).Run(ctx, rc)
	if err != nil {
		return nil, eris.Wrap(err, "address: run pipeline")
	}

	paths, err := report.WriteAddressOutputs(output, workbook, res)
	if err != nil {
		return nil, eris.Wrap(err, "address: write outputs")
	}

	s := report.AddressSummary(input, started, res, paths, cfg.Output.SampleSize)
	s.Log(zap.L())
	return s, nil
}

func init() {
	addressCmd.Flags().StringVar(&addressInput, "input", "", "account export path or URL (required)")
	addressCmd.Flags().StringVar(&addressOutput, "output", "non_nigerian_address.csv", "non-Nigerian results CSV")
	addressCmd.Flags().StringVar(&addressXLSX, "xlsx", "", "also write results to this XLSX workbook")
	addressCmd.Flags().IntVar(&addressLimit, "limit", 0, "process at most this many data lines (0 = all)")
	_ = addressCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(addressCmd)
}
