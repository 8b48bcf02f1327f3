package repositories

import "jajis/internal/models"

// ProductFilter narrows a product listing. Zero values mean "no filter".
// MinPrice/MaxPrice apply to a product's cheapest variant.
type ProductFilter struct {
	Category string
	Search   string
	MinPrice *float64
	MaxPrice *float64
}

// CatalogRepository defines the interface for product and variant data access.
type CatalogRepository interface {
	ListProducts(filter ProductFilter) ([]models.Product, error)
	ListCategories() ([]models.Category, error)
	GetProductByID(id string) (*models.Product, error)
	GetVariantByID(id string) (*models.ProductVariant, error)
	CreateCategory(category *models.Category) error
	CreateProduct(product *models.Product) error
	CreateVariant(variant *models.ProductVariant) error
}
