package handlers

import (
	"errors"
	"log"

	"jajis/internal/middleware"
	"jajis/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the shopping cart.
type CartHandler struct {
	service *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service: service,
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/add", h.HandleAddToCart)
	cartRoutes.Post("/update", h.HandleUpdateQuantity)
	cartRoutes.Post("/remove", h.HandleRemoveItem)
}

// HandleGetCart retrieves the caller's cart with totals.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	cart, err := h.service.GetCart(middleware.UserID(c))
	if err != nil {
		log.Printf("Error getting cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(cart)
}

// AddToCartRequest represents the request body for adding a cart line.
type AddToCartRequest struct {
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

// HandleAddToCart adds a variant to the caller's cart.
func (h *CartHandler) HandleAddToCart(c *fiber.Ctx) error {
	var req AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.VariantID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "variant_id is required",
		})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	err := h.service.AddToCart(middleware.UserID(c), req.VariantID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrVariantNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Variant not found"})
		case errors.Is(err, services.ErrInsufficientStock):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Not enough stock"})
		case errors.Is(err, services.ErrStockLimit):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Stock limit reached"})
		}
		log.Printf("Error adding to cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add to cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Added to cart successfully"})
}

// UpdateCartRequest represents the request body for a quantity change.
type UpdateCartRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// HandleUpdateQuantity changes a cart line's quantity; below one removes it.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	var req UpdateCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.ItemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "item_id is required",
		})
	}

	removed, err := h.service.UpdateQuantity(middleware.UserID(c), req.ItemID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCartItemNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Cart item not found"})
		case errors.Is(err, services.ErrInsufficientStock):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Stock limit exceeded"})
		}
		log.Printf("Error updating cart quantity: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update cart",
			"error":   err.Error(),
		})
	}
	if removed {
		return c.JSON(fiber.Map{"message": "Item removed from cart"})
	}
	return c.JSON(fiber.Map{"message": "Quantity updated successfully"})
}

// RemoveCartRequest represents the request body for removing a cart line.
type RemoveCartRequest struct {
	ItemID string `json:"item_id"`
}

// HandleRemoveItem deletes a cart line.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	var req RemoveCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	err := h.service.RemoveItem(middleware.UserID(c), req.ItemID)
	if err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found"})
		}
		log.Printf("Error removing cart item: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not remove item",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Item removed"})
}
