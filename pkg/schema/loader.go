// Package schema derives form field definitions from OpenAPI documents.
// A component schema's properties become ordered model fields with the
// validation metadata the attribute mixer consumes, so a form can be
// generated straight from an API contract.
package schema

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/getkin/kin-openapi/openapi3"
)

// LoaderOptions configures document loading.
type LoaderOptions struct {
	// FileSystem backs LoadFS calls. Optional.
	FileSystem fs.FS
	// ResolveReferences validates the document and follows $ref targets.
	ResolveReferences bool
}

// Loader reads OpenAPI documents from disk, an fs.FS, or raw bytes.
type Loader struct {
	options LoaderOptions
}

// NewLoader constructs a Loader from the given options.
func NewLoader(options LoaderOptions) *Loader {
	return &Loader{options: options}
}

// LoadFile reads and parses an OpenAPI document from disk.
func (l *Loader) LoadFile(ctx context.Context, path string) (*openapi3.T, error) {
	if path == "" {
		return nil, errors.New("schema: path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: read %s: %w", path, err)
	}
	return l.LoadData(ctx, data)
}

// LoadFS reads and parses an OpenAPI document from the configured fs.FS.
func (l *Loader) LoadFS(ctx context.Context, path string) (*openapi3.T, error) {
	if l.options.FileSystem == nil {
		return nil, errors.New("schema: no filesystem configured")
	}
	data, err := fs.ReadFile(l.options.FileSystem, path)
	if err != nil {
		return nil, fmt.Errorf("schema: read %s: %w", path, err)
	}
	return l.LoadData(ctx, data)
}

// LoadData parses an OpenAPI document from raw YAML or JSON bytes.
func (l *Loader) LoadData(ctx context.Context, data []byte) (*openapi3.T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("schema: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: l.options.ResolveReferences,
	}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("schema: load document: %w", err)
	}
	if l.options.ResolveReferences {
		if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("schema: validate document: %w", err)
		}
	}
	return doc, nil
}
