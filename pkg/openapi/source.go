package openapi

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/goliatone/go-formfield/pkg/field"
)

// Source fetches a raw OpenAPI document from somewhere: disk, an fs.FS, or
// HTTP. Sources stay offline unless an HTTP source is constructed explicitly.
type Source interface {
	Location() string
	Read(ctx context.Context) ([]byte, error)
}

// fileSource reads on-disk documents.
type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Read(ctx context.Context) ([]byte, error) {
	if s.path == "" {
		return nil, errors.New("openapi: file path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	abs, err := filepath.Abs(s.path)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(abs)
}

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// fsSource reads a path within an fs.FS, typically an embedded bundle.
type fsSource struct {
	fs   fs.FS
	name string
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Read(ctx context.Context) ([]byte, error) {
	if s.fs == nil {
		return nil, errors.New("openapi: filesystem is not configured")
	}
	if s.name == "" {
		return nil, errors.New("openapi: fs path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	return fs.ReadFile(s.fs, s.name)
}

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(filesystem fs.FS, name string) Source {
	return fsSource{fs: filesystem, name: name}
}

// urlSource fetches documents over HTTP/HTTPS.
type urlSource struct {
	url     string
	client  *http.Client
	timeout time.Duration
}

func (s urlSource) Location() string {
	return s.url
}

func (s urlSource) Read(ctx context.Context) ([]byte, error) {
	if s.url == "" {
		return nil, errors.New("openapi: url is required")
	}
	client := s.client
	if client == nil {
		client = http.DefaultClient
	}

	reqCtx := ctx
	var cancel context.CancelFunc
	if s.timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New("openapi: unexpected status " + resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// URLOption adjusts how a URL source fetches its document.
type URLOption func(*urlSource)

// WithHTTPClient injects a custom HTTP client (timeouts, proxies).
func WithHTTPClient(client *http.Client) URLOption {
	return func(s *urlSource) {
		s.client = client
	}
}

// WithRequestTimeout caps the remote fetch duration.
func WithRequestTimeout(timeout time.Duration) URLOption {
	return func(s *urlSource) {
		s.timeout = timeout
	}
}

// SourceFromURL returns a Source fetching the document over HTTP.
func SourceFromURL(raw string, options ...URLOption) Source {
	src := urlSource{url: raw}
	for _, opt := range options {
		if opt != nil {
			opt(&src)
		}
	}
	return src
}

// DefinitionsFrom reads the document from a source and extracts definitions.
func DefinitionsFrom(ctx context.Context, src Source, component string) ([]Definition, error) {
	if src == nil {
		return nil, errors.New("openapi: source is nil")
	}
	raw, err := src.Read(ctx)
	if err != nil {
		return nil, err
	}
	return Definitions(ctx, raw, component)
}

// FieldsFrom reads the document from a source and builds its text fields.
func FieldsFrom(ctx context.Context, src Source, component string) ([]*field.Text, error) {
	if src == nil {
		return nil, errors.New("openapi: source is nil")
	}
	raw, err := src.Read(ctx)
	if err != nil {
		return nil, err
	}
	return Fields(ctx, raw, component)
}
