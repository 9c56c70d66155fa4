package entity

// Work is a service the company provides.
type Work struct {
	ID             string
	Name           string
	NormalizedName string
}

// NewWork builds a work with its normalized name derived from name.
func NewWork(id, name string) *Work {
	return &Work{
		ID:             id,
		Name:           name,
		NormalizedName: NormalizeName(name),
	}
}

// Rename sets a new name and keeps the normalized form in sync.
func (w *Work) Rename(name string) {
	w.Name = name
	w.NormalizedName = NormalizeName(name)
}
