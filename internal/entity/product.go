package entity

// Product represents a row in the products table.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CreateProductRequest is the payload for creating a single product.
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

// Ordering columns accepted by the product filter listing.
const (
	OrderByID          = "id"
	OrderByName        = "name"
	OrderByDescription = "description"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Pagination bounds for the product filter listing.
const (
	DefaultItemsPerPage = 10
	MaxItemsPerPage     = 20
	DefaultPage         = 1
)

// ProductFilter is the explicit specification consumed by the filtered
// product listing. Zero-valued string fields mean "not filtered"; OrderBy,
// Order, ItemsPerPage and Page are always populated with defaults before
// the query runs.
type ProductFilter struct {
	Name            string
	NameLike        string
	DescriptionLike string
	OrderBy         string
	Order           string
	ItemsPerPage    int
	Page            int
}

// DefaultProductFilter returns a filter with no predicates and default
// ordering and pagination.
func DefaultProductFilter() ProductFilter {
	return ProductFilter{
		OrderBy:      OrderByID,
		Order:        OrderAsc,
		ItemsPerPage: DefaultItemsPerPage,
		Page:         DefaultPage,
	}
}

// Offset returns the number of rows to skip for the requested page.
func (f ProductFilter) Offset() int {
	return f.ItemsPerPage * (f.Page - 1)
}
