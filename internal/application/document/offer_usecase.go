package document

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mshagov/ecooffer-api/internal/domain"
	"github.com/mshagov/ecooffer-api/internal/domain/entity"
	"github.com/mshagov/ecooffer-api/internal/domain/pagination"
	"github.com/mshagov/ecooffer-api/internal/domain/repository"
	"github.com/mshagov/ecooffer-api/pkg/logger"
)

// OfferUseCase manages generated offers: building them from templates,
// metadata CRUD and file download.
type OfferUseCase struct {
	offers    repository.OfferRepository
	templates repository.OfferTemplateRepository
	blobs     repository.BlobStore // offer files
	tplBlobs  repository.BlobStore // template files
	renderer  Renderer
	converter PDFConverter
	log       *logger.Logger
	now       func() time.Time
}

// NewOfferUseCase builds the offer use case.
func NewOfferUseCase(
	offers repository.OfferRepository,
	templates repository.OfferTemplateRepository,
	blobs repository.BlobStore,
	tplBlobs repository.BlobStore,
	renderer Renderer,
	converter PDFConverter,
	log *logger.Logger,
) *OfferUseCase {
	return &OfferUseCase{
		offers:    offers,
		templates: templates,
		blobs:     blobs,
		tplBlobs:  tplBlobs,
		renderer:  renderer,
		converter: converter,
		log:       log,
		now:       time.Now,
	}
}

// Build renders a template with the given context and stores the result as a
// new offer. The template is resolved before anything is written, so a
// missing template leaves no partial offer behind.
func (uc *OfferUseCase) Build(ctx context.Context, tplID, name, createdBy string, values map[string]string) (*entity.Offer, error) {
	tpl, err := uc.templates.GetByID(ctx, tplID)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, domain.ErrOfferTemplateNotFound
	}

	tplData, err := uc.tplBlobs.Get(ctx, tpl.ID)
	if err != nil {
		return nil, err
	}
	if tplData == nil {
		return nil, domain.ErrOfferTemplateNotFound
	}

	rendered, err := uc.renderer.Render(tplData, values)
	if err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	offer := &entity.Offer{
		ID:         uuid.New().String(),
		Name:       name,
		CreatedBy:  createdBy,
		CreatedAt:  now,
		ModifiedAt: now,
	}
	if err := uc.blobs.Put(ctx, offer.ID, rendered); err != nil {
		return nil, err
	}
	if err := uc.offers.Create(ctx, offer); err != nil {
		return nil, err
	}
	uc.log.Info().Str("offer_id", offer.ID).Str("tpl_id", tpl.ID).Msg("offer built")
	return offer, nil
}

// Create stores a directly uploaded offer file with fresh metadata. fileB64
// is the base64-encoded document. Unlike templates the file is stored as-is.
func (uc *OfferUseCase) Create(ctx context.Context, name, createdBy, fileB64 string) (*entity.Offer, error) {
	data, err := decodeFile(fileB64)
	if err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	offer := &entity.Offer{
		ID:         uuid.New().String(),
		Name:       name,
		CreatedBy:  createdBy,
		CreatedAt:  now,
		ModifiedAt: now,
	}
	if err := uc.blobs.Put(ctx, offer.ID, data); err != nil {
		return nil, err
	}
	if err := uc.offers.Create(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

// List returns a page of offers and the cursor for the next one.
func (uc *OfferUseCase) List(ctx context.Context, page pagination.Params) ([]*entity.Offer, string, error) {
	return uc.offers.List(ctx, page)
}

// Get returns an offer by id.
func (uc *OfferUseCase) Get(ctx context.Context, id string) (*entity.Offer, error) {
	offer, err := uc.offers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, domain.ErrOfferNotFound
	}
	return offer, nil
}

// Update applies a partial update and bumps the modification timestamp. Nil
// fields keep their current value; a non-nil fileB64 replaces the stored file.
func (uc *OfferUseCase) Update(ctx context.Context, id string, name, fileB64 *string) (*entity.Offer, error) {
	offer, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if fileB64 != nil {
		data, err := decodeFile(*fileB64)
		if err != nil {
			return nil, err
		}
		if err := uc.blobs.Put(ctx, offer.ID, data); err != nil {
			return nil, err
		}
	}
	if name != nil {
		offer.Name = *name
	}
	offer.Touch(uc.now().UTC())
	if err := uc.offers.Update(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

// Delete removes the offer metadata and its file. Returns the deleted record.
func (uc *OfferUseCase) Delete(ctx context.Context, id string) (*entity.Offer, error) {
	offer, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.offers.Delete(ctx, id); err != nil {
		return nil, err
	}
	if err := uc.blobs.Delete(ctx, id); err != nil {
		return nil, err
	}
	return offer, nil
}

// Download returns the offer file in the requested format together with its
// metadata. PDF output goes through the converter.
func (uc *OfferUseCase) Download(ctx context.Context, id string, format Format) (*entity.Offer, []byte, error) {
	offer, err := uc.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	data, err := uc.blobs.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if data == nil {
		return nil, nil, domain.ErrOfferNotFound
	}

	if format == FormatPDF {
		data, err = uc.converter.Convert(ctx, data)
		if err != nil {
			return nil, nil, err
		}
	}
	return offer, data, nil
}
