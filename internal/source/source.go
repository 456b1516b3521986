// Package source opens account exports from local paths, HTTP(S) URLs, or
// FTP URLs.
package source

import (
	"context"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Fetcher retrieves a remote export.
type Fetcher interface {
	// Download fetches the URL and returns the response body.
	Download(ctx context.Context, url string) (io.ReadCloser, error)
}

// Options configures remote retrieval.
type Options struct {
	Timeout    time.Duration
	MaxRetries int
	UserAgent  string
}

// Opener resolves an input location to a reader.
type Opener struct {
	http Fetcher
	ftp  Fetcher
}

// NewOpener builds an Opener with HTTP and FTP fetchers.
func NewOpener(opts Options) *Opener {
	return &Opener{
		http: NewHTTPFetcher(HTTPOptions{
			UserAgent:  opts.UserAgent,
			Timeout:    opts.Timeout,
			MaxRetries: opts.MaxRetries,
		}),
		ftp: NewFTPFetcher(FTPOptions{Timeout: opts.Timeout}),
	}
}

// Kind classifies an input location.
type Kind string

const (
	KindFile Kind = "file"
	KindHTTP Kind = "http"
	KindFTP  Kind = "ftp"
)

// KindOf reports how location will be opened.
func KindOf(location string) Kind {
	if !strings.Contains(location, "://") {
		return KindFile
	}
	u, err := url.Parse(location)
	if err != nil {
		return KindFile
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return KindHTTP
	case "ftp":
		return KindFTP
	default:
		return KindFile
	}
}

// Open returns a reader for location. The caller must close it.
func (o *Opener) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	kind := KindOf(location)
	zap.L().Debug("source: opening input", zap.String("location", redact(location)), zap.String("kind", string(kind)))

	switch kind {
	case KindHTTP:
		return o.http.Download(ctx, location)
	case KindFTP:
		return o.ftp.Download(ctx, location)
	default:
		f, err := os.Open(strings.TrimPrefix(location, "file://"))
		if err != nil {
			return nil, eris.Wrap(err, "source: open file")
		}
		return f, nil
	}
}

// redact strips credentials from a URL before it is logged.
func redact(location string) string {
	u, err := url.Parse(location)
	if err != nil || u.User == nil {
		return location
	}
	return u.Redacted()
}
