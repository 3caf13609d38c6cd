// Package history imports historical quotes and purchases from spreadsheets,
// CSV and JSON files, locally or from S3.
package history

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/domain"
)

var ErrUnsupportedFormat = errors.New("unsupported format")

// Importer parses historical records from a stream in one file format
type Importer interface {
	Import(ctx context.Context, r io.Reader) ([]domain.HistoricalRecord, error)
}

// ImporterFunc adapts a function to the Importer interface
type ImporterFunc func(ctx context.Context, r io.Reader) ([]domain.HistoricalRecord, error)

func (f ImporterFunc) Import(ctx context.Context, r io.Reader) ([]domain.HistoricalRecord, error) {
	return f(ctx, r)
}

// Registry manages importers by format name
type Registry interface {
	// Register adds an importer for format
	Register(format string, importer Importer) error
	// Get returns the importer registered for format
	Get(format string) (Importer, error)
	// ListFormats returns the registered formats in alphabetical order
	ListFormats() []string
}

type registry struct {
	mu        sync.RWMutex
	importers map[string]Importer
}

// NewRegistry creates an empty importer registry
func NewRegistry() Registry {
	return &registry{
		importers: make(map[string]Importer),
	}
}

// NewDefaultRegistry creates a registry with the csv, json and xlsx importers
func NewDefaultRegistry() Registry {
	r := NewRegistry()
	_ = r.Register(FormatCSV, ImporterFunc(ImportCSV))
	_ = r.Register(FormatJSON, ImporterFunc(ImportJSON))
	_ = r.Register(FormatXLSX, ImporterFunc(ImportXLSX))
	return r
}

func (r *registry) Register(format string, importer Importer) error {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		return fmt.Errorf("format name cannot be empty")
	}
	if importer == nil {
		return fmt.Errorf("importer cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.importers[format]; exists {
		return fmt.Errorf("format %q is already registered", format)
	}

	r.importers[format] = importer
	return nil
}

func (r *registry) Get(format string) (Importer, error) {
	r.mu.RLock()
	importer, exists := r.importers[strings.ToLower(format)]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return importer, nil
}

func (r *registry) ListFormats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	formats := make([]string, 0, len(r.importers))
	for format := range r.importers {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}
