// Package classify decides whether an account is Nigerian from its
// nationality, geo-location, state, address and phone fields.
package classify

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/sells-group/ngscreen/internal/model"
	"github.com/sells-group/ngscreen/internal/refdata"
	"github.com/sells-group/ngscreen/internal/textnorm"
)

const (
	// minAddressLen is the shortest address text worth analysing.
	minAddressLen = 5
	// maxBoundaryTermLen is the longest foreign term that must match as a
	// whole word rather than a substring.
	maxBoundaryTermLen = 3
	// minCityLen is the shortest city name matched inside address text.
	minCityLen = 4
)

// noData holds the normalized values that mean a structured field was left
// blank.
var noData = map[string]bool{
	"":       true,
	"OTHERS": true,
	"OTHER":  true,
	"N/A":    true,
	"/":      true,
}

// Classifier runs the single-signal checks and the cascade against one set
// of reference data. It is safe for concurrent use.
type Classifier struct {
	ref          *refdata.ReferenceData
	foreign      []foreignTerm
	states       []string
	cities       []string
	addressLimit int
}

type foreignTerm struct {
	term     string
	boundary *regexp.Regexp // non-nil for short terms
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithAddressLimit sets how many characters of address are kept on
// classified records.
func WithAddressLimit(n int) Option {
	return func(c *Classifier) {
		if n > 0 {
			c.addressLimit = n
		}
	}
}

// New builds a Classifier over ref. Word-boundary patterns for short foreign
// terms are compiled here once.
func New(ref *refdata.ReferenceData, opts ...Option) *Classifier {
	c := &Classifier{
		ref:          ref,
		addressLimit: model.DefaultAddressLimit,
	}
	for _, opt := range opts {
		opt(c)
	}

	for _, term := range ref.ForeignTerms.Values() {
		ft := foreignTerm{term: term}
		if utf8.RuneCountInString(term) <= maxBoundaryTermLen {
			ft.boundary = regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
		}
		c.foreign = append(c.foreign, ft)
	}
	c.states = ref.States.Values()
	for _, city := range ref.Cities.Values() {
		if utf8.RuneCountInString(city) >= minCityLen {
			c.cities = append(c.cities, city)
		}
	}

	return c
}

// Reference returns the reference data the classifier matches against.
func (c *Classifier) Reference() *refdata.ReferenceData {
	return c.ref
}

// ByNationality checks the nationality column.
func ByNationality(value string) model.Verdict {
	v := textnorm.Normalize(value)
	if noData[v] {
		return model.VerdictUnknown
	}
	if v == "NIGERIA" || v == "NIGERIAN" {
		return model.VerdictAffirmative
	}
	return model.VerdictNegative
}

// ByGeoLocation checks the customer geo-location column.
func ByGeoLocation(value string) model.Verdict {
	v := textnorm.Normalize(value)
	if noData[v] {
		return model.VerdictUnknown
	}
	if v == "NIGERIA" {
		return model.VerdictAffirmative
	}
	return model.VerdictNegative
}

// ByState checks the state-of-residence column against the Nigerian states.
func (c *Classifier) ByState(value string) model.Verdict {
	v := textnorm.Normalize(value)
	if noData[v] {
		return model.VerdictUnknown
	}
	if c.ref.States.Contains(v) {
		return model.VerdictAffirmative
	}
	return model.VerdictNegative
}

// ByAddressText looks for place names in free-text address. A foreign place
// wins over any Nigerian one found in the same text.
func (c *Classifier) ByAddressText(value string) model.Verdict {
	addr := textnorm.Normalize(value)
	if utf8.RuneCountInString(addr) < minAddressLen {
		return model.VerdictUnknown
	}

	if c.hasForeignTerm(addr) {
		return model.VerdictNegative
	}

	if strings.Contains(addr, "NIGERIA") {
		return model.VerdictAffirmative
	}

	for _, state := range c.states {
		if strings.Contains(addr, state) {
			return model.VerdictAffirmative
		}
	}

	for _, city := range c.cities {
		if strings.Contains(addr, city) {
			return model.VerdictAffirmative
		}
	}

	return model.VerdictUnknown
}

// ForeignTermIn returns the first foreign term found in the normalized
// address, or "".
func (c *Classifier) ForeignTermIn(addr string) string {
	for _, ft := range c.foreign {
		if !strings.Contains(addr, ft.term) {
			continue
		}
		if ft.boundary != nil && !ft.boundary.MatchString(addr) {
			continue
		}
		return ft.term
	}
	return ""
}

func (c *Classifier) hasForeignTerm(addr string) bool {
	return c.ForeignTermIn(addr) != ""
}
