package pipeline

import (
	"context"
	"io"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/ngscreen/internal/classify"
	"github.com/sells-group/ngscreen/internal/ingest"
	"github.com/sells-group/ngscreen/internal/model"
)

// PhoneColumns are the export columns the phone pipeline requires.
// CUST_NAME and ACCT_NO are read when present.
var PhoneColumns = []string{model.ColEmail, model.ColMobile}

// PhoneCounts tallies one phone pipeline run.
type PhoneCounts struct {
	Total       int `json:"total"`
	Skipped     int `json:"skipped"`
	WithEmail   int `json:"with_email"`
	Nigerian    int `json:"nigerian"`
	NonNigerian int `json:"non_nigerian"`
	Invalid     int `json:"invalid"`
}

// PhoneResult is the outcome of a phone pipeline run.
type PhoneResult struct {
	Counts      PhoneCounts
	NonNigerian []model.PhoneRecord
}

// PhonePipeline classifies accounts by mobile number.
type PhonePipeline struct {
	opts Options
}

// NewPhonePipeline creates a PhonePipeline.
func NewPhonePipeline(opts Options) *PhonePipeline {
	return &PhonePipeline{opts: opts}
}

// Run reads the export from r in a single pass. Placeholder or unparseable
// numbers are counted as invalid and never reported as non-Nigerian.
func (p *PhonePipeline) Run(ctx context.Context, r io.Reader) (*PhoneResult, error) {
	log := zap.L().With(zap.String("pipeline", "phone"))

	rd, err := ingest.NewReader(r, p.opts.readerOptions())
	if err != nil {
		return nil, eris.Wrap(err, "phone pipeline: open reader")
	}

	header, err := rd.ReadHeader(PhoneColumns)
	if err != nil {
		return nil, eris.Wrap(err, "phone pipeline: read header")
	}
	log.Info("processing export",
		zap.Strings("columns", header.Required()),
		zap.String("delimiter", string(rd.Delimiter())),
		zap.Bool("has_name", header.Has(model.ColName)),
		zap.Bool("has_account", header.Has(model.ColAccountNo)),
	)

	res := &PhoneResult{}
	for {
		if err := ctx.Err(); err != nil {
			return nil, eris.Wrap(err, "phone pipeline: cancelled")
		}
		if p.opts.Limit > 0 && res.Counts.Total >= p.opts.Limit {
			break
		}

		fields, err := rd.ReadFields()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "phone pipeline")
		}
		res.Counts.Total++

		if !header.Complete(len(fields)) {
			res.Counts.Skipped++
			log.Debug("short line skipped", zap.Int("line", rd.Line()), zap.Int("fields", len(fields)))
			continue
		}

		acct := ingest.Extract(ingest.Raw(header, fields))
		if !ingest.ValidEmail(acct.Email) {
			continue
		}
		res.Counts.WithEmail++

		verdict := classify.IsNigerianNumber(acct.Phone)
		switch verdict {
		case model.VerdictAffirmative:
			res.Counts.Nigerian++
		case model.VerdictNegative:
			res.Counts.NonNigerian++
			res.NonNigerian = append(res.NonNigerian, model.PhoneRecord{
				AccountNo:    acct.AccountNo,
				CustomerName: acct.CustomerName,
				Email:        acct.Email,
				Phone:        acct.Phone,
				Status:       model.PhoneStatusOf(verdict),
			})
		default:
			res.Counts.Invalid++
		}
	}

	log.Info("export processed",
		zap.Int("total", res.Counts.Total),
		zap.Int("skipped", res.Counts.Skipped),
		zap.Int("with_email", res.Counts.WithEmail),
		zap.Int("nigerian", res.Counts.Nigerian),
		zap.Int("non_nigerian", res.Counts.NonNigerian),
		zap.Int("invalid", res.Counts.Invalid),
	)

	return res, nil
}
