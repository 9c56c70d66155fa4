package document

import (
	"fmt"

	"github.com/mshagov/ecooffer-api/internal/domain"
)

// Format is a download format for template and offer files.
type Format string

const (
	FormatDocx Format = "docx"
	FormatPDF  Format = "pdf"
)

// ParseFormat parses a file_format query value. An empty value defaults to
// docx.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", string(FormatDocx):
		return FormatDocx, nil
	case string(FormatPDF):
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, s)
	}
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string {
	if f == FormatPDF {
		return ".pdf"
	}
	return ".docx"
}
