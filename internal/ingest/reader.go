package ingest

import (
	"bufio"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/sells-group/ngscreen/internal/model"
)

// DefaultDelimiter separates fields in the account export.
const DefaultDelimiter = '|'

// Options configures a Reader.
type Options struct {
	Delimiter rune   // default '|'
	Charset   string // source encoding label; empty = UTF-8
}

// Reader streams an export one line at a time. It is not safe for
// concurrent use.
type Reader struct {
	br    *bufio.Reader
	delim rune
	line  int
}

// NewReader wraps r. Bytes that are not valid UTF-8 after charset decoding
// are dropped.
func NewReader(r io.Reader, opts Options) (*Reader, error) {
	if opts.Delimiter == 0 {
		opts.Delimiter = DefaultDelimiter
	}

	if opts.Charset != "" {
		enc, err := htmlindex.Get(opts.Charset)
		if err != nil {
			return nil, eris.Wrapf(err, "ingest: unsupported charset %q", opts.Charset)
		}
		r = enc.NewDecoder().Reader(r)
	}

	clean := runes.Remove(runes.Predicate(func(r rune) bool { return r == utf8.RuneError }))
	r = transform.NewReader(r, clean)

	return &Reader{
		br:    bufio.NewReaderSize(r, 64*1024),
		delim: opts.Delimiter,
	}, nil
}

// Delimiter returns the field delimiter.
func (r *Reader) Delimiter() rune {
	return r.delim
}

// Line returns the number of lines read so far.
func (r *Reader) Line() int {
	return r.line
}

// ReadLine returns the next line without its trailing newline. It returns
// io.EOF once the input is exhausted.
func (r *Reader) ReadLine() (string, error) {
	s, err := r.br.ReadString('\n')
	if err == io.EOF && s == "" {
		return "", io.EOF
	}
	if err != nil && err != io.EOF {
		return "", eris.Wrapf(err, "ingest: read line %d", r.line+1)
	}
	r.line++
	return strings.TrimRight(s, "\r\n"), nil
}

// ReadHeader reads the first line and parses it as the header.
func (r *Reader) ReadHeader(required []string) (*Header, error) {
	line, err := r.ReadLine()
	if err == io.EOF {
		return nil, eris.New("ingest: empty input, no header line")
	}
	if err != nil {
		return nil, err
	}
	return ParseHeader(strings.TrimSpace(line), r.delim, required)
}

// ReadFields reads the next data line and splits it.
func (r *Reader) ReadFields() ([]string, error) {
	line, err := r.ReadLine()
	if err != nil {
		return nil, err
	}
	return SplitFields(strings.TrimSpace(line), r.delim), nil
}

// Raw returns the split line as a RawRecord keyed by the header.
func Raw(h *Header, fields []string) model.RawRecord {
	return model.RawRecord{Columns: h.Columns, Values: fields}
}

// Extract pulls the trimmed account fields out of a record. Absent columns
// come back empty.
func Extract(rec model.RawRecord) model.AccountRecord {
	get := func(name string) string { return strings.TrimSpace(rec.Get(name)) }
	return model.AccountRecord{
		Email:            get(model.ColEmail),
		CustomerName:     get(model.ColName),
		AccountNo:        get(model.ColAccountNo),
		Nationality:      get(model.ColNationality),
		GeoLocation:      get(model.ColGeoLocation),
		StateOfResidence: get(model.ColState),
		Address:          get(model.ColAddress),
		Phone:            get(model.ColMobile),
	}
}

// emailNonValues are placeholders seen in the email column.
var emailNonValues = map[string]bool{
	"":    true,
	"nil": true,
	"N/A": true,
	".":   true,
	"/":   true,
	"N/a": true,
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidEmail reports whether s is a usable email address.
func ValidEmail(s string) bool {
	if emailNonValues[s] {
		return false
	}
	return emailPattern.MatchString(s)
}
