package handlers

import (
	"errors"
	"log"

	"jajis/internal/middleware"
	"jajis/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PaymentHandler handles HTTP requests for the checkout flow: payment
// intent creation and post-payment verification.
type PaymentHandler struct {
	service *services.CheckoutService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(service *services.CheckoutService) *PaymentHandler {
	return &PaymentHandler{
		service: service,
	}
}

// RegisterRoutes registers the payment routes with the Fiber app.
func (h *PaymentHandler) RegisterRoutes(router fiber.Router) {
	paymentRoutes := router.Group("/payment")
	paymentRoutes.Post("/create", h.HandleCreatePayment)
	paymentRoutes.Post("/verify", h.HandleVerifyPayment)
}

// CreatePaymentRequest represents the request body for intent creation.
type CreatePaymentRequest struct {
	ShippingAddressID string `json:"shipping_address_id"`
	BillingAddressID  string `json:"billing_address_id"`
}

// HandleCreatePayment prices the caller's cart and creates a payment
// intent at the gateway.
func (h *PaymentHandler) HandleCreatePayment(c *fiber.Ctx) error {
	var req CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	intent, err := h.service.CreatePaymentIntent(middleware.UserID(c), req.ShippingAddressID, req.BillingAddressID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAddress):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid shipping address"})
		case errors.Is(err, services.ErrEmptyCart):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cart is empty"})
		case errors.Is(err, services.ErrGateway):
			// Pass the gateway's error text through to the client.
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("Error creating payment intent: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create payment order",
			"error":   err.Error(),
		})
	}

	return c.JSON(intent)
}

// VerifyPaymentRequest represents the gateway callback payload the client
// relays after completing payment.
type VerifyPaymentRequest struct {
	GatewayOrderID   string `json:"razorpay_order_id"`
	GatewayPaymentID string `json:"razorpay_payment_id"`
	GatewaySignature string `json:"razorpay_signature"`
}

// HandleVerifyPayment validates the payment signature and commits the order.
func (h *PaymentHandler) HandleVerifyPayment(c *fiber.Ctx) error {
	var req VerifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	orderID, err := h.service.VerifyPayment(middleware.UserID(c), req.GatewayOrderID, req.GatewayPaymentID, req.GatewaySignature)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing payment information"})
		case errors.Is(err, services.ErrTransactionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transaction not found"})
		case errors.Is(err, services.ErrAlreadyProcessed):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Transaction already processed"})
		case errors.Is(err, services.ErrVerificationFailed):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payment verification failed"})
		case errors.Is(err, services.ErrAddressGone):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Saved address not found"})
		}
		log.Printf("Error verifying payment: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not verify payment",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message":  "Payment verified successfully",
		"order_id": orderID,
	})
}
