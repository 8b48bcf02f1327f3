package services

import "errors"

// Checkout errors. Handlers map these to 4xx responses; anything else
// surfaces as a server error.
var (
	ErrInvalidAddress      = errors.New("invalid address")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrGateway             = errors.New("failed to create payment order")
	ErrMissingFields       = errors.New("missing payment information")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrAlreadyProcessed    = errors.New("transaction already processed")
	ErrVerificationFailed  = errors.New("payment verification failed")
	ErrAddressGone         = errors.New("saved address not found")
)

// Cart and catalog errors.
var (
	ErrVariantNotFound   = errors.New("variant not found")
	ErrInsufficientStock = errors.New("not enough stock")
	ErrStockLimit        = errors.New("stock limit reached")
	ErrCartItemNotFound  = errors.New("cart item not found")
)
