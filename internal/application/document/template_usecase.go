package document

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"

	"github.com/mshagov/ecooffer-api/internal/domain"
	"github.com/mshagov/ecooffer-api/internal/domain/entity"
	"github.com/mshagov/ecooffer-api/internal/domain/pagination"
	"github.com/mshagov/ecooffer-api/internal/domain/repository"
	"github.com/mshagov/ecooffer-api/pkg/logger"
)

// TemplateUseCase manages offer templates: metadata CRUD plus the template
// file itself in the blob store.
type TemplateUseCase struct {
	repo      repository.OfferTemplateRepository
	blobs     repository.BlobStore
	renderer  Renderer
	converter PDFConverter
	log       *logger.Logger
}

// NewTemplateUseCase builds the template use case.
func NewTemplateUseCase(
	repo repository.OfferTemplateRepository,
	blobs repository.BlobStore,
	renderer Renderer,
	converter PDFConverter,
	log *logger.Logger,
) *TemplateUseCase {
	return &TemplateUseCase{repo: repo, blobs: blobs, renderer: renderer, converter: converter, log: log}
}

// List returns a page of templates and the cursor for the next one.
func (uc *TemplateUseCase) List(ctx context.Context, page pagination.Params) ([]*entity.OfferTemplate, string, error) {
	return uc.repo.List(ctx, page)
}

// Get returns a template by id.
func (uc *TemplateUseCase) Get(ctx context.Context, id string) (*entity.OfferTemplate, error) {
	tpl, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, domain.ErrOfferTemplateNotFound
	}
	return tpl, nil
}

// Create validates and stores a new template. fileB64 is the base64-encoded
// docx file.
func (uc *TemplateUseCase) Create(ctx context.Context, name, fileB64 string) (*entity.OfferTemplate, error) {
	data, err := decodeFile(fileB64)
	if err != nil {
		return nil, err
	}
	if err := uc.renderer.Validate(data); err != nil {
		return nil, err
	}

	tpl := &entity.OfferTemplate{ID: uuid.New().String(), Name: name}
	if err := uc.blobs.Put(ctx, tpl.ID, data); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, tpl); err != nil {
		return nil, err
	}
	uc.log.Info().Str("tpl_id", tpl.ID).Msg("offer template created")
	return tpl, nil
}

// Update applies a partial update. Nil fields keep their current value; a new
// file is validated before it replaces the stored one.
func (uc *TemplateUseCase) Update(ctx context.Context, id string, name, fileB64 *string) (*entity.OfferTemplate, error) {
	tpl, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if fileB64 != nil {
		data, err := decodeFile(*fileB64)
		if err != nil {
			return nil, err
		}
		if err := uc.renderer.Validate(data); err != nil {
			return nil, err
		}
		if err := uc.blobs.Put(ctx, tpl.ID, data); err != nil {
			return nil, err
		}
	}
	if name != nil {
		tpl.Name = *name
	}

	if err := uc.repo.Update(ctx, tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

// Delete removes the template metadata and its file. Returns the deleted
// record.
func (uc *TemplateUseCase) Delete(ctx context.Context, id string) (*entity.OfferTemplate, error) {
	tpl, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	if err := uc.blobs.Delete(ctx, id); err != nil {
		return nil, err
	}
	return tpl, nil
}

// Download returns the template file in the requested format together with
// its metadata. PDF output goes through the converter.
func (uc *TemplateUseCase) Download(ctx context.Context, id string, format Format) (*entity.OfferTemplate, []byte, error) {
	tpl, err := uc.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	data, err := uc.blobs.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if data == nil {
		return nil, nil, domain.ErrOfferTemplateNotFound
	}

	if format == FormatPDF {
		data, err = uc.converter.Convert(ctx, data)
		if err != nil {
			return nil, nil, err
		}
	}
	return tpl, data, nil
}

func decodeFile(fileB64 string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(fileB64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBadFileEncoding, err)
	}
	return data, nil
}
