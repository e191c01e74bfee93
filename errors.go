package md2cv

import "errors"

// Sentinel errors for library operations.
var (
	ErrInputNotFound   = errors.New("input file not found")
	ErrInvalidMetadata = errors.New("invalid metadata")
	ErrInvalidFormat   = errors.New("invalid format")
	ErrEmptyMarkdown   = errors.New("markdown content cannot be empty")
	ErrHTMLConversion  = errors.New("HTML conversion failed")
	ErrTemplateRender  = errors.New("template rendering failed")

	// PDF rendering errors.
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// DOCX serialization errors.
	ErrDocxWrite = errors.New("DOCX write failed")
)
