// Package dto defines the wire shapes of the HTTP API. Response envelopes
// wrap each record under a singular key and each page under a plural key plus
// the `last` cursor.
package dto

import "github.com/mshagov/ecooffer-api/internal/domain/pagination"

// PageRequest cursor pagination for listings.
type PageRequest struct {
	Limit int    `query:"limit"`
	Last  string `query:"last"`
}

// Params converts the request into normalized pagination parameters.
func (p PageRequest) Params() pagination.Params {
	return pagination.Params{Limit: p.Limit, Last: p.Last}.Normalize()
}

// ErrorResponse HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
