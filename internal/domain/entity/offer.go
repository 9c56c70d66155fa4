package entity

import "time"

// Offer is a generated commercial offer. The rendered document bytes live in
// the blob store under the offer id; this record holds only metadata.
type Offer struct {
	ID         string
	Name       string
	CreatedBy  string // author display name
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// Touch bumps the modification timestamp.
func (o *Offer) Touch(now time.Time) {
	o.ModifiedAt = now
}
