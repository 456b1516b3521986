package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/ngscreen/internal/model"
	"github.com/sells-group/ngscreen/internal/pipeline"
)

// Sample caps for the console summary.
const (
	AddressSampleSize = 15
	PhoneSampleSize   = 10
)

const sampleNameWidth = 30

// Count is one tallied figure of a run.
type Count struct {
	Key   string // log field name
	Label string
	Value int
}

// Output is one file written by a run.
type Output struct {
	Key   string
	Label string
	Path  string
}

// Summary describes a finished run for the console and the log.
type Summary struct {
	RunID    string
	Title    string
	Input    string
	Started  time.Time
	Finished time.Time
	Counts   []Count
	Outputs  []Output

	SampleTitle string
	Sample      []string
	EmptyNote   string
}

func newSummary(title, input string, started time.Time) *Summary {
	return &Summary{
		RunID:    uuid.New().String(),
		Title:    title,
		Input:    input,
		Started:  started,
		Finished: time.Now(),
	}
}

// AddressSummary summarizes an address run. At most sample records are
// listed; a sample of zero omits the listing.
func AddressSummary(input string, started time.Time, res *pipeline.AddressResult, paths AddressPaths, sample int) *Summary {
	s := newSummary("EXTRACTION SUMMARY - NON-NIGERIAN ADDRESSES", input, started)
	s.Counts = []Count{
		{"total", "Total records processed", res.Counts.Total},
		{"skipped", "Short rows skipped", res.Counts.Skipped},
		{"with_email", "Records with valid email", res.Counts.WithEmail},
		{"nigerian", "NIGERIAN records", res.Counts.Nigerian},
		{"non_nigerian", "NON-NIGERIAN records", res.Counts.NonNigerian},
		{"unknown", "UNKNOWN records", res.Counts.Unknown},
	}
	s.Outputs = []Output{
		{"non_nigerian", "Non-Nigerian (full)", paths.NonNigerian},
		{"emails", "Non-Nigerian (emails)", paths.Emails},
		{"unknown", "Unknown (for review)", paths.Unknown},
	}
	if paths.Workbook != "" {
		s.Outputs = append(s.Outputs, Output{"workbook", "Workbook", paths.Workbook})
	}

	n := min(sample, len(res.NonNigerian))
	s.SampleTitle = fmt.Sprintf("Sample NON-NIGERIAN records (first %d):", n)
	s.EmptyNote = "No records with non-Nigerian addresses found."
	for _, r := range res.NonNigerian[:max(n, 0)] {
		s.Sample = append(s.Sample, fmt.Sprintf("%s\n   Reason: %s\n   Nationality: %s | State: %s\n",
			r.Email, r.Reason, r.Nationality, r.State))
	}
	return s
}

// PhoneSummary summarizes a phone run.
func PhoneSummary(input string, started time.Time, res *pipeline.PhoneResult, paths PhonePaths, sample int) *Summary {
	s := newSummary("EXTRACTION SUMMARY - NON-NIGERIAN PHONE NUMBERS", input, started)
	s.Counts = []Count{
		{"total", "Total records processed", res.Counts.Total},
		{"skipped", "Short rows skipped", res.Counts.Skipped},
		{"with_email", "Records with valid email", res.Counts.WithEmail},
		{"nigerian", "Nigerian numbers", res.Counts.Nigerian},
		{"non_nigerian", "Non-Nigerian numbers", res.Counts.NonNigerian},
		{"invalid", "Missing or invalid numbers", res.Counts.Invalid},
	}
	s.Outputs = []Output{
		{"non_nigerian", "Full details", paths.NonNigerian},
		{"emails", "Emails only", paths.Emails},
	}
	if paths.Workbook != "" {
		s.Outputs = append(s.Outputs, Output{"workbook", "Workbook", paths.Workbook})
	}

	n := min(sample, len(res.NonNigerian))
	s.SampleTitle = fmt.Sprintf("Sample of extracted records (first %d):", n)
	s.EmptyNote = "No records with non-Nigerian phone numbers found."
	for _, r := range res.NonNigerian[:max(n, 0)] {
		s.Sample = append(s.Sample, fmt.Sprintf("%s | Phone: %s | Name: %s",
			r.Email, r.Phone, model.Truncate(r.CustomerName, sampleNameWidth)))
	}
	return s
}

// Elapsed is the wall time of the run.
func (s *Summary) Elapsed() time.Duration {
	return s.Finished.Sub(s.Started)
}

// Print writes the human-readable summary block to w.
func (s *Summary) Print(w io.Writer) error {
	p := message.NewPrinter(language.English)
	rule := strings.Repeat("=", 60)

	var b strings.Builder
	b.WriteString("\n" + rule + "\n" + s.Title + "\n" + rule + "\n")
	fmt.Fprintf(&b, "%-28s %s\n", "Run ID:", s.RunID)
	fmt.Fprintf(&b, "%-28s %s\n", "Input:", s.Input)
	fmt.Fprintf(&b, "%-28s %s\n", "Elapsed:", s.Elapsed().Round(time.Millisecond))
	for _, c := range s.Counts {
		b.WriteString(p.Sprintf("%-28s %d\n", c.Label+":", c.Value))
	}
	b.WriteString("\nOutput files:\n")
	for _, o := range s.Outputs {
		fmt.Fprintf(&b, "  - %-23s %s\n", o.Label+":", o.Path)
	}
	b.WriteString(rule + "\n")

	if len(s.Sample) == 0 {
		if s.EmptyNote != "" && s.nonNigerian() == 0 {
			b.WriteString("\n" + s.EmptyNote + "\n")
		}
	} else {
		b.WriteString("\n" + s.SampleTitle + "\n")
		b.WriteString(strings.Repeat("-", 80) + "\n")
		for i, line := range s.Sample {
			fmt.Fprintf(&b, "%d. %s\n", i+1, line)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (s *Summary) nonNigerian() int {
	for _, c := range s.Counts {
		if c.Key == "non_nigerian" {
			return c.Value
		}
	}
	return 0
}

// Log records the summary as a single structured entry.
func (s *Summary) Log(log *zap.Logger) {
	fields := []zap.Field{
		zap.String("summary", s.Title),
		zap.String("run_id", s.RunID),
		zap.String("input", s.Input),
		zap.Duration("elapsed", s.Elapsed()),
	}
	for _, c := range s.Counts {
		fields = append(fields, zap.Int(c.Key, c.Value))
	}
	for _, o := range s.Outputs {
		fields = append(fields, zap.String("output_"+o.Key, o.Path))
	}
	log.Info("run complete", fields...)
}
