package main

import (
	"errors"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/ngscreen/internal/report"
)

var (
	allInput         string
	allAddressOutput string
	allPhoneOutput   string
	allXLSX          string
	allPhoneXLSX     string
	allLimit         int
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run the address and phone screens over the same export",
	Long: `Runs the address and phone screens concurrently. Each screen opens the
input on its own, so a remote export is fetched twice. The screens are
independent: if one fails, the other still finishes and writes its outputs.
Summaries of the screens that succeeded are printed once both finish, and
the command then reports any failure.

Example:
  ngscreen all --input "All Accts.txt" \
    --address-output non_nigerian_address.csv \
    --phone-output non_nigerian_emails.csv`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		// No shared context: a failed screen must not cancel the other.
		var (
			g                     errgroup.Group
			addrSummary, phoneSum *report.Summary
			addrErr, phoneErr     error
		)
		g.Go(func() error {
			addrSummary, addrErr = runAddress(ctx, allInput, allAddressOutput, allXLSX, allLimit)
			return nil
		})
		g.Go(func() error {
			phoneSum, phoneErr = runPhone(ctx, allInput, allPhoneOutput, allPhoneXLSX, allLimit)
			return nil
		})
		_ = g.Wait()

		for _, s := range []*report.Summary{addrSummary, phoneSum} {
			if s == nil {
				continue
			}
			if err := s.Print(cmd.OutOrStdout()); err != nil {
				return err
			}
		}
		return errors.Join(addrErr, phoneErr)
	},
}

func init() {
	allCmd.Flags().StringVar(&allInput, "input", "", "account export path or URL (required)")
	allCmd.Flags().StringVar(&allAddressOutput, "address-output", "non_nigerian_address.csv", "non-Nigerian address results CSV")
	allCmd.Flags().StringVar(&allPhoneOutput, "phone-output", "non_nigerian_emails.csv", "non-Nigerian phone results CSV")
	allCmd.Flags().StringVar(&allXLSX, "xlsx", "", "also write address results to this XLSX workbook")
	allCmd.Flags().StringVar(&allPhoneXLSX, "phone-xlsx", "", "also write phone results to this XLSX workbook")
	allCmd.Flags().IntVar(&allLimit, "limit", 0, "process at most this many data lines (0 = all)")
	_ = allCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(allCmd)
}
