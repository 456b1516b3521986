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

// AddressColumns are the export columns the address pipeline requires.
var AddressColumns = []string{
	model.ColEmail,
	model.ColName,
	model.ColAccountNo,
	model.ColNationality,
	model.ColGeoLocation,
	model.ColState,
	model.ColAddress,
}

// AddressCounts tallies one address pipeline run.
type AddressCounts struct {
	Total       int `json:"total"`
	Skipped     int `json:"skipped"`
	WithEmail   int `json:"with_email"`
	Nigerian    int `json:"nigerian"`
	NonNigerian int `json:"non_nigerian"`
	Unknown     int `json:"unknown"`
}

// AddressResult is the outcome of an address pipeline run.
type AddressResult struct {
	Counts      AddressCounts
	NonNigerian []model.ClassifiedRecord
	Unknown     []model.ClassifiedRecord
}

// AddressPipeline classifies accounts by nationality, location and address.
type AddressPipeline struct {
	classifier *classify.Classifier
	opts       Options
}

// NewAddressPipeline creates an AddressPipeline.
func NewAddressPipeline(c *classify.Classifier, opts Options) *AddressPipeline {
	return &AddressPipeline{classifier: c, opts: opts}
}

// Run reads the export from r in a single pass. It fails only if the header
// lacks a required column, the input cannot be read, or ctx is cancelled;
// bad rows are skipped.
func (p *AddressPipeline) Run(ctx context.Context, r io.Reader) (*AddressResult, error) {
	log := zap.L().With(zap.String("pipeline", "address"))

	rd, err := ingest.NewReader(r, p.opts.readerOptions())
	if err != nil {
		return nil, eris.Wrap(err, "address pipeline: open reader")
	}

	header, err := rd.ReadHeader(AddressColumns)
	if err != nil {
		return nil, eris.Wrap(err, "address pipeline: read header")
	}
	log.Info("processing export",
		zap.Strings("columns", header.Required()),
		zap.String("delimiter", string(rd.Delimiter())),
	)

	res := &AddressResult{}
	for {
		if err := ctx.Err(); err != nil {
			return nil, eris.Wrap(err, "address pipeline: cancelled")
		}
		if p.opts.Limit > 0 && res.Counts.Total >= p.opts.Limit {
			break
		}

		fields, err := rd.ReadFields()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "address pipeline")
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

		rec := p.classifier.Classify(acct)
		switch rec.Status {
		case model.StatusNonNigerian:
			res.Counts.NonNigerian++
			res.NonNigerian = append(res.NonNigerian, rec)
		case model.StatusUnknown:
			res.Counts.Unknown++
			res.Unknown = append(res.Unknown, rec)
		default:
			res.Counts.Nigerian++
		}
	}

	log.Info("export processed",
		zap.Int("total", res.Counts.Total),
		zap.Int("skipped", res.Counts.Skipped),
		zap.Int("with_email", res.Counts.WithEmail),
		zap.Int("nigerian", res.Counts.Nigerian),
		zap.Int("non_nigerian", res.Counts.NonNigerian),
		zap.Int("unknown", res.Counts.Unknown),
	)

	return res, nil
}
