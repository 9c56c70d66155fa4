package entity

import "regexp"

// FKKO codes are restricted to digits and spaces.
// See http://kod-fkko.ru/ for the classification itself.
var fkkoCodePattern = regexp.MustCompile(`^(\d| )+$`)

// ValidateFKKOCode reports whether code matches the digits-and-spaces grammar.
// The empty string is invalid.
func ValidateFKKOCode(code string) bool {
	return fkkoCodePattern.MatchString(code)
}

// Waste is a type of waste a company can recycle. Waste items are substituted
// into offer templates.
//
// NormalizedName and NormalizedCode are stored alongside the originals so the
// backing store can filter case- and punctuation-insensitively without any
// in-process filtering.
type Waste struct {
	ID             string
	Name           string
	NormalizedName string
	FKKOCode       string
	NormalizedCode string // FKKO code with whitespace stripped
}

// NewWaste builds a waste with its normalized fields derived from name and code.
func NewWaste(id, name, fkkoCode string) *Waste {
	return &Waste{
		ID:             id,
		Name:           name,
		NormalizedName: NormalizeName(name),
		FKKOCode:       fkkoCode,
		NormalizedCode: NormalizeFKKOCode(fkkoCode),
	}
}

// Rename sets a new name and keeps the normalized form in sync.
func (w *Waste) Rename(name string) {
	w.Name = name
	w.NormalizedName = NormalizeName(name)
}

// Recode sets a new FKKO code and keeps the normalized form in sync.
func (w *Waste) Recode(fkkoCode string) {
	w.FKKOCode = fkkoCode
	w.NormalizedCode = NormalizeFKKOCode(fkkoCode)
}
