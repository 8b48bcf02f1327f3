package handlers

import (
	"errors"
	"log"

	"jajis/internal/middleware"
	"jajis/internal/services"

	"github.com/gofiber/fiber/v2"
)

// WishlistHandler handles HTTP requests for wishlists.
type WishlistHandler struct {
	service *services.WishlistService
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(service *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		service: service,
	}
}

// RegisterRoutes registers the wishlist routes with the Fiber app.
func (h *WishlistHandler) RegisterRoutes(router fiber.Router) {
	wishlistRoutes := router.Group("/wishlist")
	wishlistRoutes.Get("/", h.HandleGetWishlist)
	wishlistRoutes.Post("/add", h.HandleAdd)
	wishlistRoutes.Post("/remove", h.HandleRemove)
	wishlistRoutes.Post("/toggle", h.HandleToggle)
}

// WishlistRequest represents a request targeting one variant.
type WishlistRequest struct {
	VariantID string `json:"variant_id"`
}

// HandleGetWishlist retrieves the caller's wishlist.
func (h *WishlistHandler) HandleGetWishlist(c *fiber.Ctx) error {
	items, err := h.service.GetWishlist(middleware.UserID(c))
	if err != nil {
		log.Printf("Error getting wishlist: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve wishlist",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"items": items})
}

// HandleAdd puts a variant on the wishlist.
func (h *WishlistHandler) HandleAdd(c *fiber.Ctx) error {
	req, ok := parseWishlistRequest(c)
	if !ok {
		return nil
	}

	created, err := h.service.Add(middleware.UserID(c), req.VariantID)
	if err != nil {
		if errors.Is(err, services.ErrVariantNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Variant not found"})
		}
		log.Printf("Error adding to wishlist: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add to wishlist",
			"error":   err.Error(),
		})
	}
	if !created {
		return c.JSON(fiber.Map{"message": "Already in wishlist"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Added to wishlist"})
}

// HandleRemove takes a variant off the wishlist.
func (h *WishlistHandler) HandleRemove(c *fiber.Ctx) error {
	req, ok := parseWishlistRequest(c)
	if !ok {
		return nil
	}

	if err := h.service.Remove(middleware.UserID(c), req.VariantID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found"})
	}
	return c.JSON(fiber.Map{"message": "Removed from wishlist"})
}

// HandleToggle flips a variant's wishlist membership.
func (h *WishlistHandler) HandleToggle(c *fiber.Ctx) error {
	req, ok := parseWishlistRequest(c)
	if !ok {
		return nil
	}

	added, err := h.service.Toggle(middleware.UserID(c), req.VariantID)
	if err != nil {
		if errors.Is(err, services.ErrVariantNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Variant not found"})
		}
		log.Printf("Error toggling wishlist: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not toggle wishlist",
			"error":   err.Error(),
		})
	}
	if added {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"toggled": true,
			"message": "Added to wishlist",
		})
	}
	return c.JSON(fiber.Map{
		"toggled": false,
		"message": "Removed from wishlist",
	})
}

// parseWishlistRequest parses and validates the shared request body. When
// it reports false the error response has already been written.
func parseWishlistRequest(c *fiber.Ctx) (*WishlistRequest, bool) {
	var req WishlistRequest
	if err := c.BodyParser(&req); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return nil, false
	}
	if req.VariantID == "" {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "variant_id is required",
		})
		return nil, false
	}
	return &req, true
}
