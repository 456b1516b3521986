package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/ngscreen/internal/classify"
	"github.com/sells-group/ngscreen/internal/config"
	"github.com/sells-group/ngscreen/internal/pipeline"
	"github.com/sells-group/ngscreen/internal/refdata"
	"github.com/sells-group/ngscreen/internal/source"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "ngscreen",
	Short: "Screen bank account exports for non-Nigerian customers",
	Long:  "Reads a pipe-delimited account export and flags customers whose nationality, location, address or mobile number points outside Nigeria.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	SilenceUsage: true,
}

// loadReference returns the built-in reference data merged with the
// configured override file, if any.
func loadReference() (*refdata.ReferenceData, error) {
	ref, err := refdata.Load(cfg.RefData.Path)
	if err != nil {
		return nil, eris.Wrap(err, "load reference data")
	}
	if cfg.RefData.Path != "" {
		st := ref.Stats()
		zap.L().Info("reference data loaded",
			zap.String("path", cfg.RefData.Path),
			zap.Int("states", st.States),
			zap.Int("cities", st.Cities),
			zap.Int("foreign_terms", st.ForeignTerms),
		)
	}
	return ref, nil
}

func newClassifier() (*classify.Classifier, error) {
	ref, err := loadReference()
	if err != nil {
		return nil, err
	}
	return classify.New(ref, classify.WithAddressLimit(cfg.Output.AddressTruncate)), nil
}

// openInput resolves a local path or remote URL to a reader.
func openInput(ctx context.Context, location string) (io.ReadCloser, error) {
	opener := source.NewOpener(source.Options{
		Timeout:    time.Duration(cfg.Fetch.TimeoutSecs) * time.Second,
		MaxRetries: cfg.Fetch.MaxRetries,
		UserAgent:  cfg.Fetch.UserAgent,
	})
	return opener.Open(ctx, location)
}

func pipelineOptions(limit int) pipeline.Options {
	return pipeline.Options{
		Delimiter: cfg.Input.DelimiterRune(),
		Charset:   cfg.Input.Charset,
		Limit:     limit,
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
