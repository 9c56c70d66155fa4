package entity

// OfferTemplate is a Word document with placeholders for data from the
// catalogs. The template bytes live in the blob store under the template id.
type OfferTemplate struct {
	ID   string
	Name string
}
