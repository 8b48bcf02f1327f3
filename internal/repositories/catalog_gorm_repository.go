package repositories

import (
	"fmt"
	"strings"

	"jajis/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCatalogRepository is a GORM implementation of CatalogRepository.
type GORMCatalogRepository struct {
	db *gorm.DB
}

// NewGORMCatalogRepository creates a new instance of GORMCatalogRepository.
func NewGORMCatalogRepository(db *gorm.DB) *GORMCatalogRepository {
	return &GORMCatalogRepository{
		db: db,
	}
}

// ListProducts retrieves products matching the filter, newest first.
func (r *GORMCatalogRepository) ListProducts(filter ProductFilter) ([]models.Product, error) {
	query := r.db.Model(&models.Product{}).
		Preload("Variants").
		Preload("Category")

	if filter.Category != "" && !strings.EqualFold(filter.Category, "all") {
		query = query.
			Joins("JOIN categories ON categories.id = products.category_id").
			Where("LOWER(categories.name) = LOWER(?)", filter.Category)
	}

	if filter.Search != "" {
		query = query.Where("LOWER(products.title) LIKE LOWER(?)", "%"+filter.Search+"%")
	}

	// Price filters apply to the cheapest variant of each product.
	lowest := "(SELECT MIN(pv.price) FROM product_variants pv WHERE pv.product_id = products.id AND pv.deleted_at IS NULL)"
	if filter.MinPrice != nil {
		query = query.Where(lowest+" >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where(lowest+" <= ?", *filter.MaxPrice)
	}

	var products []models.Product
	if err := query.Order("products.created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// ListCategories retrieves all categories.
func (r *GORMCatalogRepository) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// GetProductByID retrieves a single product with its variants and category.
func (r *GORMCatalogRepository) GetProductByID(id string) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Variants").Preload("Category").First(&product, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// GetVariantByID retrieves a single product variant by its ID.
func (r *GORMCatalogRepository) GetVariantByID(id string) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	if err := r.db.First(&variant, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("variant with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get variant by ID %s: %w", id, err)
	}
	return &variant, nil
}

// CreateCategory creates a new category in the database.
func (r *GORMCatalogRepository) CreateCategory(category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// CreateProduct creates a new product in the database.
func (r *GORMCatalogRepository) CreateProduct(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// CreateVariant creates a new product variant in the database.
func (r *GORMCatalogRepository) CreateVariant(variant *models.ProductVariant) error {
	if variant.ID == "" {
		variant.ID = uuid.New().String()
	}
	if err := r.db.Create(variant).Error; err != nil {
		return fmt.Errorf("failed to create variant: %w", err)
	}
	return nil
}
