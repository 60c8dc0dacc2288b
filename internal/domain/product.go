package domain

// Product is a catalog entry as served by the commerce backend. Created,
// edited and deleted by administrators; read by any user.
type Product struct {
	ID          string  `json:"_id"`
	Name        string  `json:"nome"`
	Price       float64 `json:"preco"`
	PhotoURL    string  `json:"urlfoto,omitempty"`
	Description string  `json:"descricao,omitempty"`
}

// Validate checks the fields an administrator can set.
func (p *Product) Validate(op string) error {
	if p.Name == "" {
		return NewValidationError(op, "nome", "name is required")
	}
	if p.Price < 0 {
		return NewValidationError(op, "preco", "price must not be negative")
	}
	return nil
}
