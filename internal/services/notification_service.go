package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"jajis/internal/models"
	"jajis/pkg/rabbitmq"
)

// Mailer delivers a plain-text email to a single recipient.
type Mailer interface {
	Send(to string, subject string, body string) error
}

// EventPublisher publishes order lifecycle events to the message broker.
type EventPublisher interface {
	PublishOrderEvent(event rabbitmq.OrderEvent) error
}

// NotificationService sends transactional email and publishes order
// events. Either collaborator may be nil, in which case that channel is
// skipped.
type NotificationService struct {
	mailer Mailer
	events EventPublisher
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(mailer Mailer, events EventPublisher) *NotificationService {
	return &NotificationService{
		mailer: mailer,
		events: events,
	}
}

// NotifyOrderConfirmed emails the order confirmation and publishes an
// order.created event. Both channels are attempted; the first failure is
// returned so the caller can log it.
func (s *NotificationService) NotifyOrderConfirmed(user *models.User, order *models.Order, items []models.OrderItem) error {
	var firstErr error

	if s.events != nil {
		err := s.events.PublishOrderEvent(rabbitmq.OrderEvent{
			Event:     "order.created",
			OrderID:   order.ID,
			UserID:    order.UserID,
			Total:     order.TotalAmount,
			Status:    order.Status,
			Timestamp: time.Now().Format(time.RFC3339),
		})
		if err != nil {
			log.Printf("Failed to publish order event for order %s: %v", order.ID, err)
			firstErr = err
		}
	}

	if s.mailer != nil {
		subject := fmt.Sprintf("Order Confirmation - Order #%s", order.ID)
		if err := s.mailer.Send(user.Email, subject, orderConfirmationBody(user, order, items)); err != nil {
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// SendPasswordResetOTP emails a password reset code to the user.
func (s *NotificationService) SendPasswordResetOTP(user *models.User, otp string) error {
	if s.mailer == nil {
		return nil
	}
	body := fmt.Sprintf(
		"Hello %s,\n\nYour password reset code is: %s\n\nIt expires in 10 minutes. If you did not request a reset, ignore this email.\n",
		user.DisplayName(), otp,
	)
	return s.mailer.Send(user.Email, "Password Reset Code", body)
}

// orderConfirmationBody renders the plain-text confirmation email.
func orderConfirmationBody(user *models.User, order *models.Order, items []models.OrderItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", user.DisplayName())
	b.WriteString("Your payment was successful.\n\n")
	fmt.Fprintf(&b, "Order ID: %s\n", order.ID)
	fmt.Fprintf(&b, "Payment ID: %s\n", order.TransactionID)
	fmt.Fprintf(&b, "Total Amount: %.2f\n\n", order.TotalAmount)

	if len(items) > 0 {
		b.WriteString("Items:\n")
		for _, item := range items {
			fmt.Fprintf(&b, "  - variant %s x %d @ %.2f = %.2f\n",
				item.VariantID, item.Quantity, item.UnitPrice, item.TotalPrice)
		}
		b.WriteString("\n")
	}

	b.WriteString("Thank you for shopping with us.\n")
	return b.String()
}
