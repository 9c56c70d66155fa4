package docx_test

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mshagov/ecooffer-api/internal/domain"
	"github.com/mshagov/ecooffer-api/internal/infrastructure/docx"
)

// zipWith builds an in-memory zip archive from name -> content pairs.
func zipWith(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

const minimalDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body><w:p><w:r><w:t>{client} offer</w:t></w:r></w:p></w:body>
</w:document>`

func TestValidate_WellFormedDocx(t *testing.T) {
	r := docx.NewRenderer()
	data := zipWith(t, map[string]string{"word/document.xml": minimalDocumentXML})
	assert.NoError(t, r.Validate(data))
}

func TestValidate_NotAZip(t *testing.T) {
	r := docx.NewRenderer()
	err := r.Validate([]byte("plain text, not an archive"))
	assert.ErrorIs(t, err, domain.ErrBadTemplateFile)
}

func TestValidate_MissingDocumentXML(t *testing.T) {
	r := docx.NewRenderer()
	data := zipWith(t, map[string]string{"word/styles.xml": "<styles/>"})
	err := r.Validate(data)
	assert.ErrorIs(t, err, domain.ErrBadTemplateFile)
}

func TestValidate_MalformedXML(t *testing.T) {
	r := docx.NewRenderer()
	data := zipWith(t, map[string]string{"word/document.xml": "<w:document><unclosed"})
	err := r.Validate(data)
	assert.ErrorIs(t, err, domain.ErrBadTemplateFile)
}

func TestRender_RejectsNonDocx(t *testing.T) {
	r := docx.NewRenderer()
	_, err := r.Render([]byte("not a docx"), map[string]string{"client": "Acme"})
	assert.ErrorIs(t, err, domain.ErrBadTemplateFile)
}
