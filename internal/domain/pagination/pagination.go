// Package pagination defines the cursor-based page contract shared by all
// list operations: a page-size bound plus an opaque "last seen id" token.
package pagination

// Limits for page size. A zero limit takes the default.
const (
	DefaultLimit = 1000
	MaxLimit     = 1000
)

// Params is a page request.
type Params struct {
	// Limit of items per page, 1..MaxLimit.
	Limit int

	// Last item id from the previous page; empty for the first page.
	Last string
}

// Default is the page request used when the caller supplies nothing.
var Default = Params{Limit: DefaultLimit}

// Normalize clamps Limit into 1..MaxLimit, applying the default for zero or
// negative values.
func (p Params) Normalize() Params {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}
