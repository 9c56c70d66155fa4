package dto

import "github.com/mshagov/ecooffer-api/internal/domain/entity"

// CreateOfferTemplateRequest input for template upload; OfferTplFile is the
// base64-encoded docx.
type CreateOfferTemplateRequest struct {
	Name         string `json:"name"`
	OfferTplFile string `json:"offer_tpl_file"`
}

// UpdateOfferTemplateRequest partial update; nil fields keep the current
// value, a new file is revalidated.
type UpdateOfferTemplateRequest struct {
	Name         *string `json:"name"`
	OfferTplFile *string `json:"offer_tpl_file"`
}

// BuildOfferRequest input for rendering a template into a new offer. Context
// maps placeholder names to values; Name is the new offer's name and falls
// back to the template name when empty.
type BuildOfferRequest struct {
	Name    string            `json:"name"`
	Context map[string]string `json:"context"`
}

// OfferTemplateView template record on the wire.
type OfferTemplateView struct {
	OfferTplID string `json:"offer_tpl_id"`
	Name       string `json:"name"`
}

// OfferTemplateResponse envelope for one template.
type OfferTemplateResponse struct {
	OfferTpl OfferTemplateView `json:"offer_tpl"`
}

// OfferTemplateListResponse envelope for a page of templates.
type OfferTemplateListResponse struct {
	OfferTpls []OfferTemplateView `json:"offer_tpls"`
	Last      string              `json:"last"`
}

// NewOfferTemplateView maps an entity to its wire shape.
func NewOfferTemplateView(t *entity.OfferTemplate) OfferTemplateView {
	return OfferTemplateView{OfferTplID: t.ID, Name: t.Name}
}

// NewOfferTemplateListResponse maps a page of templates.
func NewOfferTemplateListResponse(tpls []*entity.OfferTemplate, last string) OfferTemplateListResponse {
	views := make([]OfferTemplateView, 0, len(tpls))
	for _, t := range tpls {
		views = append(views, NewOfferTemplateView(t))
	}
	return OfferTemplateListResponse{OfferTpls: views, Last: last}
}
