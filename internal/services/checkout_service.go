package services

import (
	"fmt"
	"log"
	"math"

	"jajis/internal/models"
	"jajis/internal/repositories"
	"jajis/pkg/razorpay"

	"github.com/google/uuid"
)

// PaymentGateway is the boundary to the remote payment provider.
type PaymentGateway interface {
	CreateOrder(amountMinor int64, currency string, receipt string) (*razorpay.OrderResponse, error)
	VerifySignature(orderID string, paymentID string, signature string) bool
	KeyID() string
}

// OrderNotifier delivers order confirmations. Checkout logs and swallows
// its errors: a failed notification never affects a committed order.
type OrderNotifier interface {
	NotifyOrderConfirmed(user *models.User, order *models.Order, items []models.OrderItem) error
}

// IntentResult is returned to the client so it can open the gateway's
// payment widget.
type IntentResult struct {
	OrderID  string  `json:"order_id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Key      string  `json:"key"`
}

// CheckoutService converts a mutable cart into an immutable order exactly
// once: it creates the payment intent at the gateway, then on verified
// payment commits order, stock, cart, and transaction state atomically.
type CheckoutService struct {
	addressRepo repositories.AddressRepository
	cartRepo    repositories.CartRepository
	paymentRepo repositories.PaymentTransactionRepository
	userRepo    repositories.UserRepository
	txRunner    repositories.TxRunner
	gateway     PaymentGateway
	notifier    OrderNotifier
	currency    string
}

// NewCheckoutService creates a new CheckoutService. The notifier may be nil.
func NewCheckoutService(
	addressRepo repositories.AddressRepository,
	cartRepo repositories.CartRepository,
	paymentRepo repositories.PaymentTransactionRepository,
	userRepo repositories.UserRepository,
	txRunner repositories.TxRunner,
	gateway PaymentGateway,
	notifier OrderNotifier,
	currency string,
) *CheckoutService {
	return &CheckoutService{
		addressRepo: addressRepo,
		cartRepo:    cartRepo,
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		txRunner:    txRunner,
		gateway:     gateway,
		notifier:    notifier,
		currency:    currency,
	}
}

// CreatePaymentIntent prices the caller's cart, creates a payment order at
// the gateway, and records a pending transaction. Billing falls back to
// shipping when omitted. Stock is not checked here; it is re-validated at
// commit time so variant rows are not locked across two network round trips.
func (s *CheckoutService) CreatePaymentIntent(userID string, shippingAddressID string, billingAddressID string) (*IntentResult, error) {
	shipping, err := s.addressRepo.GetByID(userID, shippingAddressID)
	if err != nil {
		return nil, ErrInvalidAddress
	}
	billing := shipping
	if billingAddressID != "" {
		billing, err = s.addressRepo.GetByID(userID, billingAddressID)
		if err != nil {
			return nil, ErrInvalidAddress
		}
	}

	items, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	var total float64
	for _, item := range items {
		if item.Variant == nil {
			return nil, fmt.Errorf("cart item %s has no variant", item.ID)
		}
		total += float64(item.Quantity) * item.Variant.Price
	}
	amountMinor := int64(math.Round(total * 100))

	gatewayOrder, err := s.gateway.CreateOrder(amountMinor, s.currency, userID)
	if err != nil {
		// No local records are written when the gateway call fails.
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	tx := &models.PaymentTransaction{
		UserID:            userID,
		GatewayOrderID:    gatewayOrder.ID,
		Amount:            total,
		Status:            models.TxStatusCreated,
		ShippingAddressID: shipping.ID,
		BillingAddressID:  billing.ID,
	}
	if err := s.paymentRepo.ReplacePending(tx); err != nil {
		return nil, fmt.Errorf("failed to record pending transaction: %w", err)
	}

	return &IntentResult{
		OrderID:  gatewayOrder.ID,
		Amount:   total,
		Currency: s.currency,
		Key:      s.gateway.KeyID(),
	}, nil
}

// VerifyPayment validates the gateway's signature over the payment and, on
// success, commits the order in a single transaction: order row, item
// snapshots, stock decrements, cart clear, and transaction finalize all
// become visible together or not at all. A second call for the same
// transaction returns ErrAlreadyProcessed and writes nothing.
func (s *CheckoutService) VerifyPayment(userID string, gatewayOrderID string, paymentID string, signature string) (string, error) {
	if gatewayOrderID == "" || paymentID == "" || signature == "" {
		return "", ErrMissingFields
	}

	tx, err := s.paymentRepo.GetByGatewayOrderID(userID, gatewayOrderID)
	if err != nil {
		return "", ErrTransactionNotFound
	}
	if tx.Status != models.TxStatusCreated {
		return "", ErrAlreadyProcessed
	}

	if !s.gateway.VerifySignature(gatewayOrderID, paymentID, signature) {
		s.markFailed(tx)
		return "", ErrVerificationFailed
	}

	// The addresses may have been deleted between intent creation and now.
	if _, err := s.addressRepo.GetByID(userID, tx.ShippingAddressID); err != nil {
		s.markFailed(tx)
		return "", ErrAddressGone
	}
	if _, err := s.addressRepo.GetByID(userID, tx.BillingAddressID); err != nil {
		s.markFailed(tx)
		return "", ErrAddressGone
	}

	order := &models.Order{
		ID:                uuid.New().String(),
		UserID:            userID,
		ShippingAddressID: tx.ShippingAddressID,
		BillingAddressID:  tx.BillingAddressID,
		TotalAmount:       tx.Amount, // frozen at intent time, not recomputed
		Status:            models.OrderStatusConfirmed,
		PaymentMethod:     "razorpay",
		PaymentStatus:     "paid",
		TransactionID:     paymentID,
	}

	var committedItems []models.OrderItem
	err = s.txRunner.RunInTransaction(func(store repositories.CheckoutStore) error {
		if err := store.CreateOrder(order); err != nil {
			return err
		}

		items, err := store.GetCartItems(userID)
		if err != nil {
			return err
		}
		for _, item := range items {
			variant := item.Variant
			if variant == nil {
				variant, err = store.GetVariantByID(item.VariantID)
				if err != nil {
					return err
				}
			}

			// Unit price is the variant's price at commit time, which can
			// differ from the frozen order total if the price changed since
			// intent creation.
			orderItem := models.OrderItem{
				OrderID:    order.ID,
				VariantID:  item.VariantID,
				Quantity:   item.Quantity,
				UnitPrice:  variant.Price,
				TotalPrice: float64(item.Quantity) * variant.Price,
			}
			if err := store.CreateOrderItem(&orderItem); err != nil {
				return err
			}

			// Stock floors at zero. Concurrent checkouts of the same variant
			// may oversell; the commit is not an admission gate.
			newStock := variant.Stock - item.Quantity
			if newStock < 0 {
				newStock = 0
			}
			if err := store.UpdateVariantStock(variant.ID, newStock); err != nil {
				return err
			}

			if err := store.DeleteCartItem(item.ID); err != nil {
				return err
			}
			committedItems = append(committedItems, orderItem)
		}

		tx.OrderID = order.ID
		tx.GatewayPaymentID = paymentID
		tx.GatewaySignature = signature
		tx.Status = models.TxStatusSuccess
		return store.UpdateTransaction(tx)
	})
	if err != nil {
		// The rollback left the transaction row in "created", so the client
		// may safely retry verification with the same ids.
		return "", fmt.Errorf("failed to commit order: %w", err)
	}

	order.Items = committedItems
	s.notifyConfirmed(userID, order, committedItems)

	return order.ID, nil
}

// markFailed moves a transaction to its terminal failed state.
func (s *CheckoutService) markFailed(tx *models.PaymentTransaction) {
	tx.Status = models.TxStatusFailed
	if err := s.paymentRepo.Update(tx); err != nil {
		log.Printf("Failed to mark transaction %s as failed: %v", tx.ID, err)
	}
}

// notifyConfirmed sends the order confirmation. Delivery failure must never
// roll back or mis-report the committed order, so errors are only logged.
func (s *CheckoutService) notifyConfirmed(userID string, order *models.Order, items []models.OrderItem) {
	if s.notifier == nil {
		return
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		log.Printf("Order confirmation skipped, user %s not loaded: %v", userID, err)
		return
	}
	if err := s.notifier.NotifyOrderConfirmed(user, order, items); err != nil {
		log.Printf("Order confirmation failed for %s: %v", user.Email, err)
	}
}
