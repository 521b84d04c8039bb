package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	gerrors "github.com/gstanzl/gstanzl/internal/errors"
)

// Source retrieves and decodes a catalog resource.
type Source interface {
	// Load performs one retrieval of the resource. It blocks until the
	// resource arrives, fails, or ctx is cancelled. Every failure is a
	// catalog-unavailable error; there is no retry.
	Load(ctx context.Context) (Catalog, error)

	// Location returns the path or URL the source reads.
	Location() string
}

// Ensure sources implement Source at compile time.
var (
	_ Source = (*FileSource)(nil)
	_ Source = (*HTTPSource)(nil)
)

// Load resolves a source for location and loads the catalog from it.
func Load(ctx context.Context, location string) (Catalog, error) {
	return SourceFor(location).Load(ctx)
}

// SourceFor picks an HTTPSource for http(s) URLs and a FileSource otherwise.
// An empty location means DefaultLocation.
func SourceFor(location string) Source {
	if location == "" {
		location = DefaultLocation
	}
	if isURL(location) {
		return NewHTTPSource(location)
	}
	return NewFileSource(location)
}

func isURL(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Decode parses a JSON array of records. A JSON null decodes to an empty
// catalog, and missing or null lyrics and tags decode to empty lists.
func Decode(r io.Reader, location string) (Catalog, error) {
	var records []Record
	dec := json.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		return Catalog{}, gerrors.CatalogError(gerrors.ErrCodeCatalogMalformed, location,
			fmt.Sprintf("catalog %s is not a valid JSON array of songs", location), err).
			WithSuggestion("Check that the file contains a JSON array of song objects")
	}
	for i := range records {
		if records[i].Lyrics == nil {
			records[i].Lyrics = []string{}
		}
		if records[i].Tags == nil {
			records[i].Tags = []string{}
		}
	}
	return New(location, records), nil
}

// FileSource reads the catalog from the local filesystem.
type FileSource struct {
	path string
}

// NewFileSource creates a source for a file path, relative paths resolving
// against the working directory.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Location implements Source.
func (s *FileSource) Location() string {
	return s.path
}

// Load implements Source.
func (s *FileSource) Load(ctx context.Context) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return Catalog{}, gerrors.CatalogError(gerrors.ErrCodeCatalogFetch, s.path,
			"catalog load cancelled", err)
	}

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Catalog{}, gerrors.CatalogError(gerrors.ErrCodeCatalogNotFound, s.path,
				fmt.Sprintf("catalog %s not found", s.path), err).
				WithSuggestion("Pass --catalog or set catalog.location in .gstanzl.yaml")
		}
		return Catalog{}, gerrors.CatalogError(gerrors.ErrCodeCatalogFetch, s.path,
			fmt.Sprintf("cannot read catalog %s", s.path), err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f, s.path)
}

// HTTPSource fetches the catalog with a single GET request. The request is
// bounded only by the caller's context.
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource creates a source for an http(s) URL.
func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{url: url, client: &http.Client{}}
}

// Location implements Source.
func (s *HTTPSource) Location() string {
	return s.url
}

// Load implements Source.
func (s *HTTPSource) Load(ctx context.Context) (Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return Catalog{}, gerrors.CatalogError(gerrors.ErrCodeCatalogFetch, s.url,
			fmt.Sprintf("invalid catalog URL %s", s.url), err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return Catalog{}, gerrors.CatalogError(gerrors.ErrCodeCatalogFetch, s.url,
			fmt.Sprintf("cannot fetch catalog %s", s.url), err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		code := gerrors.ErrCodeCatalogFetch
		if resp.StatusCode == http.StatusNotFound {
			code = gerrors.ErrCodeCatalogNotFound
		}
		return Catalog{}, gerrors.CatalogError(code, s.url,
			fmt.Sprintf("HTTP %d for %s", resp.StatusCode, s.url), nil).
			WithDetail("status", resp.Status)
	}

	return Decode(resp.Body, s.url)
}
