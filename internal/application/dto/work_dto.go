package dto

import "github.com/mshagov/ecooffer-api/internal/domain/entity"

// CreateWorkRequest input for work creation.
type CreateWorkRequest struct {
	Name string `json:"name"`
}

// UpdateWorkRequest partial update; nil fields keep the current value.
type UpdateWorkRequest struct {
	Name *string `json:"name"`
}

// WorkListQuery filter query params for the work listing.
type WorkListQuery struct {
	Name         string `query:"name"`
	NameContains string `query:"name_contains"`
	NamePrefix   string `query:"name_prefix"`
}

// WorkView work record on the wire.
type WorkView struct {
	WorkID string `json:"work_id"`
	Name   string `json:"name"`
}

// WorkResponse envelope for one work.
type WorkResponse struct {
	Work WorkView `json:"work"`
}

// WorkListResponse envelope for a page of works.
type WorkListResponse struct {
	Works []WorkView `json:"works"`
	Last  string     `json:"last"`
}

// NewWorkView maps an entity to its wire shape.
func NewWorkView(w *entity.Work) WorkView {
	return WorkView{WorkID: w.ID, Name: w.Name}
}

// NewWorkListResponse maps a page of works.
func NewWorkListResponse(works []*entity.Work, last string) WorkListResponse {
	views := make([]WorkView, 0, len(works))
	for _, w := range works {
		views = append(views, NewWorkView(w))
	}
	return WorkListResponse{Works: views, Last: last}
}
