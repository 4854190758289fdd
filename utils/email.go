package utils

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"shopapi/models"
)

// Notifier is the outbound notification boundary. Implementations make no
// delivery guarantee and callers do not retry.
type Notifier interface {
	OrderConfirmation(order *models.Order) error
	PasswordReset(email, token string) error
}

// ConsoleNotifier simulates sending email by writing the message to the log.
// In a real deployment this would use an email service provider
// (e.g. SendGrid, Mailgun).
type ConsoleNotifier struct{}

var _ Notifier = ConsoleNotifier{}

func (ConsoleNotifier) OrderConfirmation(order *models.Order) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\nYour order has been placed successfully!\n\n", order.UserName)
	fmt.Fprintf(&b, "Order ID: %s\nTotal Amount: $%.2f\n\nItems:\n", order.Id, order.TotalAmount)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "  - %s (Size: %s, Color: %s) x%d - $%.2f\n",
			item.ProductName, item.Size, item.Color, item.Quantity, item.Price)
	}
	addr := order.ShippingAddress
	fmt.Fprintf(&b, "\nShipping Address:\n  %s\n  %s\n  %s, %s %s\n",
		addr.Name, addr.Address, addr.City, addr.State, addr.Zip)

	logrus.WithFields(logrus.Fields{
		"to":      order.UserEmail,
		"subject": "Order Confirmation - " + order.Id,
	}).Info("SIMULATING SENDING ORDER CONFIRMATION EMAIL\n" + b.String())
	return nil
}

func (ConsoleNotifier) PasswordReset(email, token string) error {
	resetLink := fmt.Sprintf("http://localhost:8080/reset-password-page?token=%s", token)
	logrus.WithFields(logrus.Fields{
		"to":      email,
		"subject": "Reset Your Password",
	}).Infof("SIMULATING SENDING PASSWORD RESET EMAIL: to reset your password, click %s", resetLink)
	return nil
}
