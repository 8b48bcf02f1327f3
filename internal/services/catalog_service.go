package services

import (
	"jajis/internal/models"
	"jajis/internal/repositories"
)

// CatalogService handles business logic for product browsing.
type CatalogService struct {
	catalogRepo repositories.CatalogRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(catalogRepo repositories.CatalogRepository) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
	}
}

// ListProducts returns products matching the filter plus all categories
// for the storefront's filter bar.
func (s *CatalogService) ListProducts(filter repositories.ProductFilter) ([]models.Product, []models.Category, error) {
	products, err := s.catalogRepo.ListProducts(filter)
	if err != nil {
		return nil, nil, err
	}
	categories, err := s.catalogRepo.ListCategories()
	if err != nil {
		return nil, nil, err
	}
	return products, categories, nil
}

// GetProduct retrieves a single product with its variants.
func (s *CatalogService) GetProduct(id string) (*models.Product, error) {
	return s.catalogRepo.GetProductByID(id)
}
