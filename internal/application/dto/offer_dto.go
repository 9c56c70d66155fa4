package dto

import (
	"time"

	"github.com/mshagov/ecooffer-api/internal/domain/entity"
)

// CreateOfferRequest input for direct offer upload; OfferFile is base64.
type CreateOfferRequest struct {
	Name      string `json:"name"`
	OfferFile string `json:"offer_file"`
}

// UpdateOfferRequest partial update; nil fields keep the current value.
type UpdateOfferRequest struct {
	Name      *string `json:"name"`
	OfferFile *string `json:"offer_file"`
}

// OfferView offer record on the wire.
type OfferView struct {
	OfferID    string    `json:"offer_id"`
	Name       string    `json:"name"`
	CreatedBy  string    `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// OfferResponse envelope for one offer.
type OfferResponse struct {
	Offer OfferView `json:"offer"`
}

// OfferListResponse envelope for a page of offers.
type OfferListResponse struct {
	Offers []OfferView `json:"offers"`
	Last   string      `json:"last"`
}

// NewOfferView maps an entity to its wire shape.
func NewOfferView(o *entity.Offer) OfferView {
	return OfferView{
		OfferID:    o.ID,
		Name:       o.Name,
		CreatedBy:  o.CreatedBy,
		CreatedAt:  o.CreatedAt,
		ModifiedAt: o.ModifiedAt,
	}
}

// NewOfferListResponse maps a page of offers.
func NewOfferListResponse(offers []*entity.Offer, last string) OfferListResponse {
	views := make([]OfferView, 0, len(offers))
	for _, o := range offers {
		views = append(views, NewOfferView(o))
	}
	return OfferListResponse{Offers: views, Last: last}
}
