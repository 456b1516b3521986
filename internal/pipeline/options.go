// Package pipeline runs single-pass classification over an account export.
package pipeline

import "github.com/sells-group/ngscreen/internal/ingest"

// Options configures how a pipeline reads its input.
type Options struct {
	Delimiter rune   // default '|'
	Charset   string // empty = UTF-8
	Limit     int    // stop after this many data lines; 0 = all
}

func (o Options) readerOptions() ingest.Options {
	return ingest.Options{Delimiter: o.Delimiter, Charset: o.Charset}
}
