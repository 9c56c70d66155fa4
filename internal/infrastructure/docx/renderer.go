// Package docx validates and renders Word templates. A template is an
// ordinary docx with {placeholder} markers; rendering substitutes a
// caller-supplied context into the markers.
package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/beevik/etree"
	godocx "github.com/lukasjarosch/go-docx"

	"github.com/mshagov/ecooffer-api/internal/application/document"
	"github.com/mshagov/ecooffer-api/internal/domain"
)

var _ document.Renderer = (*Renderer)(nil)

// Renderer implements the document.Renderer port with go-docx for
// substitution and etree for structural validation.
type Renderer struct{}

// NewRenderer builds the renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Validate checks that data is a well-formed docx: a readable zip archive
// whose word/document.xml parses as XML. Returns domain.ErrBadTemplateFile
// otherwise.
func (r *Renderer) Validate(data []byte) error {
	body, err := documentXML(data)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBadTemplateFile, err)
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return fmt.Errorf("%w: parse document.xml: %v", domain.ErrBadTemplateFile, err)
	}
	return nil
}

// Render substitutes context into the template placeholders and returns the
// filled document. Context keys with no matching placeholder are ignored, so
// a superset context always renders. A substitution failure returns
// domain.ErrBadOfferContext.
func (r *Renderer) Render(data []byte, context map[string]string) ([]byte, error) {
	doc, err := godocx.OpenBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBadTemplateFile, err)
	}

	for key, value := range context {
		if err := doc.Replace(key, value); err != nil {
			if errors.Is(err, godocx.ErrPlaceholderNotFound) {
				continue
			}
			return nil, fmt.Errorf("%w: replace %q: %v", domain.ErrBadOfferContext, key, err)
		}
	}

	var out bytes.Buffer
	if err := doc.Write(&out); err != nil {
		return nil, fmt.Errorf("%w: write filled document: %v", domain.ErrBadOfferContext, err)
	}
	return out.Bytes(), nil
}

// documentXML extracts word/document.xml from the docx zip container.
func documentXML(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open document.xml: %w", err)
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("word/document.xml missing")
}
