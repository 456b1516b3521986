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
	phoneInput  string
	phoneOutput string
	phoneXLSX   string
	phoneLimit  int
)

var phoneCmd = &cobra.Command{
	Use:   "phone",
	Short: "Flag accounts whose mobile number is non-Nigerian",
	Long: `Classifies the mobile number of every account with a valid email. Numbers
starting with 234, or a local 070x/080x/081x/090x/091x prefix, are Nigerian;
placeholders and numbers without seven consecutive digits are counted as
invalid. Writes the non-Nigerian accounts to --output and their emails to
<output>_emails_only.txt. With --xlsx, the non-Nigerian accounts are also
written to a workbook.

Example:
  ngscreen phone --input "All Accts.txt" --output non_nigerian_emails.csv`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := runPhone(cmd.Context(), phoneInput, phoneOutput, phoneXLSX, phoneLimit)
		if err != nil {
			return err
		}
		return s.Print(cmd.OutOrStdout())
	},
}

// runPhone runs the phone pipeline end to end and returns its summary.
func runPhone(ctx context.Context, input, output, workbook string, limit int) (*report.Summary, error) {
	started := time.Now()

	rc, err := openInput(ctx, input)
	if err != nil {
		return nil, eris.Wrap(err, "phone: open input")
	}
	defer rc.Close()

	res, err := pipeline.NewPhonePipeline(pipelineOptions(limit)).Run(ctx, rc)
	if err != nil {
		return nil, eris.Wrap(err, "phone: run pipeline")
	}

	paths, err := report.WritePhoneOutputs(output, workbook, res)
	if err != nil {
		return nil, eris.Wrap(err, "phone: write outputs")
	}

	s := report.PhoneSummary(input, started, res, paths, min(cfg.Output.SampleSize, report.PhoneSampleSize))
	s.Log(zap.L())
	return s, nil
}

func init() {
	phoneCmd.Flags().StringVar(&phoneInput, "input", "", "account export path or URL (required)")
	phoneCmd.Flags().StringVar(&phoneOutput, "output", "non_nigerian_emails.csv", "non-Nigerian phone results CSV")
	phoneCmd.Flags().StringVar(&phoneXLSX, "xlsx", "", "also write results to this XLSX workbook")
	phoneCmd.Flags().IntVar(&phoneLimit, "limit", 0, "process at most this many data lines (0 = all)")
	_ = phoneCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(phoneCmd)
}
