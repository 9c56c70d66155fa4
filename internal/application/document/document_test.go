package document_test

import (
	"context"
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mshagov/ecooffer-api/internal/application/document"
	"github.com/mshagov/ecooffer-api/internal/domain"
	"github.com/mshagov/ecooffer-api/internal/domain/pagination"
	"github.com/mshagov/ecooffer-api/internal/infrastructure/memory"
	"github.com/mshagov/ecooffer-api/pkg/logger"
)

// fakeRenderer substitutes placeholders by appending the context; it rejects
// payloads that don't start with the magic marker.
type fakeRenderer struct{}

func (fakeRenderer) Validate(data []byte) error {
	if len(data) < 4 || string(data[:4]) != "DOCX" {
		return domain.ErrBadTemplateFile
	}
	return nil
}

func (fakeRenderer) Render(data []byte, context map[string]string) ([]byte, error) {
	out := append([]byte{}, data...)
	for k, v := range context {
		out = append(out, []byte(k+"="+v+";")...)
	}
	return out, nil
}

// fakeConverter converts by prefixing, or fails on demand.
type fakeConverter struct {
	fail bool
}

func (f *fakeConverter) Convert(ctx context.Context, doc []byte) ([]byte, error) {
	if f.fail {
		return nil, fmt.Errorf("%w: upstream said no", domain.ErrConversionFailed)
	}
	return append([]byte("PDF:"), doc...), nil
}

type fixture struct {
	templates *document.TemplateUseCase
	offers    *document.OfferUseCase
	tplRepo   *memory.OfferTemplateRepo
	offerRepo *memory.OfferRepo
	tplBlobs  *memory.BlobStore
	offBlobs  *memory.BlobStore
	converter *fakeConverter
}

func newFixture() *fixture {
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	tplRepo := memory.NewOfferTemplateRepository()
	offerRepo := memory.NewOfferRepository()
	tplBlobs := memory.NewBlobStore()
	offBlobs := memory.NewBlobStore()
	converter := &fakeConverter{}
	renderer := fakeRenderer{}

	return &fixture{
		templates: document.NewTemplateUseCase(tplRepo, tplBlobs, renderer, converter, log),
		offers:    document.NewOfferUseCase(offerRepo, tplRepo, offBlobs, tplBlobs, renderer, converter, log),
		tplRepo:   tplRepo,
		offerRepo: offerRepo,
		tplBlobs:  tplBlobs,
		offBlobs:  offBlobs,
		converter: converter,
	}
}

func b64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func TestTemplateCreate_BadBase64(t *testing.T) {
	f := newFixture()
	_, err := f.templates.Create(context.Background(), "tpl", "%%%not-base64%%%")
	assert.ErrorIs(t, err, domain.ErrBadFileEncoding)
	assert.Zero(t, f.tplBlobs.Len(), "failed validation writes nothing")
}

func TestTemplateCreate_RejectsBadFile(t *testing.T) {
	f := newFixture()
	_, err := f.templates.Create(context.Background(), "tpl", b64("garbage"))
	assert.ErrorIs(t, err, domain.ErrBadTemplateFile)
	assert.Zero(t, f.tplBlobs.Len())
}

func TestTemplateUpdate_RevalidatesNewFile(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	tpl, err := f.templates.Create(ctx, "tpl", b64("DOCX v1"))
	require.NoError(t, err)

	bad := b64("broken")
	_, err = f.templates.Update(ctx, tpl.ID, nil, &bad)
	assert.ErrorIs(t, err, domain.ErrBadTemplateFile)

	// The stored file stays at v1 after the failed update.
	data, err := f.tplBlobs.Get(ctx, tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("DOCX v1"), data)

	name := "renamed"
	good := b64("DOCX v2")
	updated, err := f.templates.Update(ctx, tpl.ID, &name, &good)
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)

	data, err = f.tplBlobs.Get(ctx, tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("DOCX v2"), data)
}

func TestTemplateDelete_RemovesMetadataAndBlob(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	tpl, err := f.templates.Create(ctx, "tpl", b64("DOCX"))
	require.NoError(t, err)

	deleted, err := f.templates.Delete(ctx, tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, tpl.ID, deleted.ID)
	assert.Zero(t, f.tplBlobs.Len())

	_, err = f.templates.Delete(ctx, tpl.ID)
	assert.ErrorIs(t, err, domain.ErrOfferTemplateNotFound)
}

func TestBuild_MissingTemplateCreatesNoOffer(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.offers.Build(ctx, "no-such-tpl", "offer", "Ivan", map[string]string{"k": "v"})
	assert.ErrorIs(t, err, domain.ErrOfferTemplateNotFound)

	offers, _, err := f.offers.List(ctx, pagination.Default)
	require.NoError(t, err)
	assert.Empty(t, offers, "a failed build leaves no partial offer")
	assert.Zero(t, f.offBlobs.Len())
}

func TestBuild_CreatesOfferWithRenderedBlob(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	tpl, err := f.templates.Create(ctx, "tpl", b64("DOCX body "))
	require.NoError(t, err)

	offer, err := f.offers.Build(ctx, tpl.ID, "Offer for Acme", "Ivan", map[string]string{"inn": "7707083893"})
	require.NoError(t, err)
	assert.Equal(t, "Offer for Acme", offer.Name)
	assert.Equal(t, "Ivan", offer.CreatedBy)
	assert.False(t, offer.CreatedAt.IsZero())
	assert.Equal(t, offer.CreatedAt, offer.ModifiedAt)

	data, err := f.offBlobs.Get(ctx, offer.ID)
	require.NoError(t, err)
	assert.Contains(t, string(data), "inn=7707083893;")
}

func TestDownload_PDFGoesThroughConverter(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	tpl, err := f.templates.Create(ctx, "tpl", b64("DOCX body"))
	require.NoError(t, err)

	_, data, err := f.templates.Download(ctx, tpl.ID, document.FormatDocx)
	require.NoError(t, err)
	assert.Equal(t, []byte("DOCX body"), data, "docx downloads verbatim")

	_, data, err = f.templates.Download(ctx, tpl.ID, document.FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, []byte("PDF:DOCX body"), data)

	f.converter.fail = true
	_, _, err = f.templates.Download(ctx, tpl.ID, document.FormatPDF)
	assert.ErrorIs(t, err, domain.ErrConversionFailed)
}

func TestOfferUpdate_BumpsModifiedAt(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	offer, err := f.offers.Create(ctx, "offer", "Ivan", b64("doc v1"))
	require.NoError(t, err)

	name := "renamed"
	updated, err := f.offers.Update(ctx, offer.ID, &name, nil)
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
	assert.False(t, updated.ModifiedAt.Before(offer.ModifiedAt))

	file := b64("doc v2")
	_, err = f.offers.Update(ctx, offer.ID, nil, &file)
	require.NoError(t, err)
	data, err := f.offBlobs.Get(ctx, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("doc v2"), data)
}

func TestParseFormat(t *testing.T) {
	format, err := document.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, document.FormatDocx, format)

	format, err = document.ParseFormat("pdf")
	require.NoError(t, err)
	assert.Equal(t, document.FormatPDF, format)

	_, err = document.ParseFormat("odt")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}
