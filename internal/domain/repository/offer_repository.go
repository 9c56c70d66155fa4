package repository

import (
	"context"

	"github.com/mshagov/ecooffer-api/internal/domain/entity"
	"github.com/mshagov/ecooffer-api/internal/domain/pagination"
)

// OfferRepository is the persistence port for Offer metadata. The rendered
// document bytes live in a BlobStore keyed by the offer id.
type OfferRepository interface {
	Create(ctx context.Context, offer *entity.Offer) error
	GetByID(ctx context.Context, id string) (*entity.Offer, error)
	Update(ctx context.Context, offer *entity.Offer) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page pagination.Params) ([]*entity.Offer, string, error)
}

// OfferTemplateRepository is the persistence port for OfferTemplate metadata.
type OfferTemplateRepository interface {
	Create(ctx context.Context, tpl *entity.OfferTemplate) error
	GetByID(ctx context.Context, id string) (*entity.OfferTemplate, error)
	Update(ctx context.Context, tpl *entity.OfferTemplate) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page pagination.Params) ([]*entity.OfferTemplate, string, error)
}
