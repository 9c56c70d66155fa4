package domain

import "errors"

// Domain errors (no external dependencies). Handlers map these 1:1 to HTTP
// status codes at the route boundary.
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrCompanyNotFound       = errors.New("company not found")
	ErrWasteNotFound         = errors.New("waste not found")
	ErrWorkNotFound          = errors.New("work not found")
	ErrOfferNotFound         = errors.New("offer not found")
	ErrOfferTemplateNotFound = errors.New("offer template not found")
	ErrAgentNotFound         = errors.New("agent not found")

	ErrLoginTaken = errors.New("login already taken")

	ErrInvalidRole       = errors.New("invalid user role")
	ErrInvalidFKKOCode   = errors.New("invalid FKKO code")
	ErrBadFileEncoding   = errors.New("file is not valid base64")
	ErrBadTemplateFile   = errors.New("file is not a well-formed docx template")
	ErrBadOfferContext   = errors.New("offer context does not match template")
	ErrUnsupportedFormat = errors.New("unsupported file format")

	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	ErrConversionFailed = errors.New("pdf conversion failed")
)
