package services

import (
	"jajis/internal/models"
	"jajis/internal/repositories"
)

// OrderService handles reads over committed orders. Orders are only ever
// created by the checkout flow; this service never mutates them.
type OrderService struct {
	orderRepo repositories.OrderRepository
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
	}
}

// ListOrders retrieves the caller's orders, newest first.
func (s *OrderService) ListOrders(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUser(userID)
}

// GetOrder retrieves a single order with its items, ownership-checked.
func (s *OrderService) GetOrder(userID string, orderID string) (*models.Order, error) {
	return s.orderRepo.GetByID(userID, orderID)
}
