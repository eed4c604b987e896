package entities

// Customer is the billed party (cliente).
//
// NationalID (CI) is kept as an opaque string. Some upstream records carry
// non-numeric identifiers; those can be listed but never joined to invoices.
type Customer struct {
	NationalID string `json:"ci"`
	Name       string `json:"nombre"`
	Category   string `json:"categoria"`
}
