package product

type Category string

const (
	CategorySale Category = "sale"
	CategoryRent Category = "rent"
)

// Product is a catalog entry. IDs are externally assigned short codes
// (e.g. "001"), not generated here. Prices are integer minor currency units.
type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Stock       int      `json:"stock"`
	Category    Category `json:"category"`
	Size        string   `json:"size"`
	Price       int64    `json:"price"`
	HourlyPrice *int64   `json:"hourlyPrice,omitempty"`
}

// Validate checks the invariants a product must satisfy before it
// enters the catalog. A price of zero is valid; negatives are not.
func (p Product) Validate() error {
	if p.ID == "" {
		return ErrMissingID
	}
	if p.Title == "" {
		return ErrMissingTitle
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	if p.Stock < 0 {
		return ErrNegativeStock
	}
	if p.Category != CategorySale && p.Category != CategoryRent {
		return ErrInvalidCategory
	}
	return nil
}
