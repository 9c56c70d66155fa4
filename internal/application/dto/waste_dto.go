package dto

import "github.com/mshagov/ecooffer-api/internal/domain/entity"

// CreateWasteRequest input for waste creation.
type CreateWasteRequest struct {
	Name     string `json:"name"`
	FKKOCode string `json:"fkko_code"`
}

// UpdateWasteRequest partial update; nil fields keep the current value.
type UpdateWasteRequest struct {
	Name     *string `json:"name"`
	FKKOCode *string `json:"fkko_code"`
}

// WasteListQuery filter query params for the waste listing. All predicates
// combine with AND; matching ignores case, punctuation and FKKO spacing.
type WasteListQuery struct {
	Name         string `query:"name"`
	NameContains string `query:"name_contains"`
	NamePrefix   string `query:"name_prefix"`

	FKKOCode         string `query:"fkko_code"`
	FKKOCodeContains string `query:"fkko_code_contains"`
	FKKOCodePrefix   string `query:"fkko_code_prefix"`
}

// WasteView waste record on the wire.
type WasteView struct {
	WasteID  string `json:"waste_id"`
	Name     string `json:"name"`
	FKKOCode string `json:"fkko_code"`
}

// WasteResponse envelope for one waste.
type WasteResponse struct {
	Waste WasteView `json:"waste"`
}

// WasteListResponse envelope for a page of wastes.
type WasteListResponse struct {
	Wastes []WasteView `json:"wastes"`
	Last   string      `json:"last"`
}

// NewWasteView maps an entity to its wire shape.
func NewWasteView(w *entity.Waste) WasteView {
	return WasteView{WasteID: w.ID, Name: w.Name, FKKOCode: w.FKKOCode}
}

// NewWasteListResponse maps a page of wastes.
func NewWasteListResponse(wastes []*entity.Waste, last string) WasteListResponse {
	views := make([]WasteView, 0, len(wastes))
	for _, w := range wastes {
		views = append(views, NewWasteView(w))
	}
	return WasteListResponse{Wastes: views, Last: last}
}
