// Package document implements offer-template management and offer assembly:
// template upload and validation, placeholder substitution, and export to
// docx or PDF.
package document

import "context"

// Renderer validates template files and substitutes placeholder values.
type Renderer interface {
	// Validate checks that data is a well-formed template file.
	Validate(data []byte) error
	// Render substitutes context values into the template placeholders.
	// Context keys with no matching placeholder are ignored.
	Render(data []byte, context map[string]string) ([]byte, error)
}

// PDFConverter converts a rendered document to PDF.
type PDFConverter interface {
	Convert(ctx context.Context, doc []byte) ([]byte, error)
}
