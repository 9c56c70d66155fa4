package dto

import "github.com/mshagov/ecooffer-api/internal/domain/entity"

// CreateCompanyRequest input for company creation.
type CreateCompanyRequest struct {
	Name string `json:"name"`
}

// UpdateCompanyRequest partial update; nil fields keep the current value.
type UpdateCompanyRequest struct {
	Name *string `json:"name"`
}

// CompanyView company record on the wire.
type CompanyView struct {
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
}

// CompanyResponse envelope for one company.
type CompanyResponse struct {
	Company CompanyView `json:"company"`
}

// CompanyListResponse envelope for a page of companies.
type CompanyListResponse struct {
	Companies []CompanyView `json:"companies"`
	Last      string        `json:"last"`
}

// NewCompanyView maps an entity to its wire shape.
func NewCompanyView(c *entity.Company) CompanyView {
	return CompanyView{CompanyID: c.ID, Name: c.Name}
}

// NewCompanyListResponse maps a page of companies.
func NewCompanyListResponse(companies []*entity.Company, last string) CompanyListResponse {
	views := make([]CompanyView, 0, len(companies))
	for _, c := range companies {
		views = append(views, NewCompanyView(c))
	}
	return CompanyListResponse{Companies: views, Last: last}
}
