package services_test

import (
	"fmt"
	"testing"

	"jajis/internal/models"
	"jajis/internal/repositories"
	"jajis/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCatalogRepository is a mock implementation of repositories.CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListProducts(filter repositories.ProductFilter) ([]models.Product, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockCatalogRepository) ListCategories() ([]models.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCatalogRepository) GetProductByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCatalogRepository) GetVariantByID(id string) (*models.ProductVariant, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductVariant), args.Error(1)
}

func (m *MockCatalogRepository) CreateCategory(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCatalogRepository) CreateProduct(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockCatalogRepository) CreateVariant(variant *models.ProductVariant) error {
	args := m.Called(variant)
	return args.Error(0)
}

func TestGetCart_ComputesTotal(t *testing.T) {
	cartRepo := new(MockCartRepository)
	service := services.NewCartService(cartRepo, new(MockCatalogRepository))

	cartRepo.On("GetByUser", "user-1").Return([]models.CartItem{
		cartLine("line-1", "user-1", "var-1", 2, 500.0, 10),
		cartLine("line-2", "user-1", "var-2", 1, 120.0, 3),
	}, nil).Once()

	view, err := service.GetCart("user-1")

	assert.NoError(t, err)
	assert.Len(t, view.Items, 2)
	assert.Equal(t, 1120.0, view.Total)
}

func TestAddToCart_NewLine(t *testing.T) {
	cartRepo := new(MockCartRepository)
	catalogRepo := new(MockCatalogRepository)
	service := services.NewCartService(cartRepo, catalogRepo)

	catalogRepo.On("GetVariantByID", "var-1").
		Return(&models.ProductVariant{ID: "var-1", Price: 500.0, Stock: 5}, nil).Once()
	cartRepo.On("GetLine", "user-1", "var-1").
		Return(nil, fmt.Errorf("cart item not found")).Once()
	cartRepo.On("Create", mock.MatchedBy(func(item *models.CartItem) bool {
		return item.UserID == "user-1" && item.VariantID == "var-1" && item.Quantity == 2
	})).Return(nil).Once()

	err := service.AddToCart("user-1", "var-1", 2)

	assert.NoError(t, err)
	cartRepo.AssertExpectations(t)
}

func TestAddToCart_MergesExistingLine(t *testing.T) {
	cartRepo := new(MockCartRepository)
	catalogRepo := new(MockCatalogRepository)
	service := services.NewCartService(cartRepo, catalogRepo)

	catalogRepo.On("GetVariantByID", "var-1").
		Return(&models.ProductVariant{ID: "var-1", Price: 500.0, Stock: 10}, nil).Once()
	existing := cartLine("line-1", "user-1", "var-1", 3, 500.0, 10)
	cartRepo.On("GetLine", "user-1", "var-1").Return(&existing, nil).Once()
	cartRepo.On("UpdateQuantity", "line-1", 5).Return(nil).Once()

	err := service.AddToCart("user-1", "var-1", 2)

	assert.NoError(t, err)
	cartRepo.AssertExpectations(t)
}

func TestAddToCart_VariantNotFound(t *testing.T) {
	cartRepo := new(MockCartRepository)
	catalogRepo := new(MockCatalogRepository)
	service := services.NewCartService(cartRepo, catalogRepo)

	catalogRepo.On("GetVariantByID", "var-x").
		Return(nil, fmt.Errorf("product variant with ID var-x not found")).Once()

	err := service.AddToCart("user-1", "var-x", 1)

	assert.ErrorIs(t, err, services.ErrVariantNotFound)
}

func TestAddToCart_InsufficientStock(t *testing.T) {
	cartRepo := new(MockCartRepository)
	catalogRepo := new(MockCatalogRepository)
	service := services.NewCartService(cartRepo, catalogRepo)

	catalogRepo.On("GetVariantByID", "var-1").
		Return(&models.ProductVariant{ID: "var-1", Price: 500.0, Stock: 1}, nil).Once()

	err := service.AddToCart("user-1", "var-1", 2)

	assert.ErrorIs(t, err, services.ErrInsufficientStock)
	cartRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAddToCart_MergeBeyondStockRejected(t *testing.T) {
	cartRepo := new(MockCartRepository)
	catalogRepo := new(MockCatalogRepository)
	service := services.NewCartService(cartRepo, catalogRepo)

	catalogRepo.On("GetVariantByID", "var-1").
		Return(&models.ProductVariant{ID: "var-1", Price: 500.0, Stock: 4}, nil).Once()
	existing := cartLine("line-1", "user-1", "var-1", 3, 500.0, 4)
	cartRepo.On("GetLine", "user-1", "var-1").Return(&existing, nil).Once()

	err := service.AddToCart("user-1", "var-1", 2)

	assert.ErrorIs(t, err, services.ErrStockLimit)
	cartRepo.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything)
}

func TestUpdateQuantity_BelowOneRemovesLine(t *testing.T) {
	cartRepo := new(MockCartRepository)
	service := services.NewCartService(cartRepo, new(MockCatalogRepository))

	existing := cartLine("line-1", "user-1", "var-1", 2, 500.0, 10)
	cartRepo.On("GetLineByID", "user-1", "line-1").Return(&existing, nil).Once()
	cartRepo.On("Delete", "line-1").Return(nil).Once()

	removed, err := service.UpdateQuantity("user-1", "line-1", 0)

	assert.NoError(t, err)
	assert.True(t, removed)
	cartRepo.AssertExpectations(t)
}

func TestUpdateQuantity_SetsQuantity(t *testing.T) {
	cartRepo := new(MockCartRepository)
	service := services.NewCartService(cartRepo, new(MockCatalogRepository))

	existing := cartLine("line-1", "user-1", "var-1", 2, 500.0, 10)
	cartRepo.On("GetLineByID", "user-1", "line-1").Return(&existing, nil).Once()
	cartRepo.On("UpdateQuantity", "line-1", 4).Return(nil).Once()

	removed, err := service.UpdateQuantity("user-1", "line-1", 4)

	assert.NoError(t, err)
	assert.False(t, removed)
}

func TestUpdateQuantity_AboveStockRejected(t *testing.T) {
	cartRepo := new(MockCartRepository)
	service := services.NewCartService(cartRepo, new(MockCatalogRepository))

	existing := cartLine("line-1", "user-1", "var-1", 2, 500.0, 3)
	cartRepo.On("GetLineByID", "user-1", "line-1").Return(&existing, nil).Once()

	_, err := service.UpdateQuantity("user-1", "line-1", 5)

	assert.ErrorIs(t, err, services.ErrInsufficientStock)
}

func TestRemoveItem_UnknownLine(t *testing.T) {
	cartRepo := new(MockCartRepository)
	service := services.NewCartService(cartRepo, new(MockCatalogRepository))

	cartRepo.On("GetLineByID", "user-1", "line-x").
		Return(nil, fmt.Errorf("cart item with ID line-x not found")).Once()

	err := service.RemoveItem("user-1", "line-x")

	assert.ErrorIs(t, err, services.ErrCartItemNotFound)
}
