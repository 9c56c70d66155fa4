package entity

// Company is an issuer of commercial offers.
type Company struct {
	ID   string
	Name string
}
