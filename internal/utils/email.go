package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/wneessen/go-mail"

	"velora_back_end/internal/models"
)

// Mailer sends order confirmation mails. It is optional: a nil *Mailer is a
// no-op, so the rest of the app never has to care whether SMTP is configured.
type Mailer struct {
	host string
	port int
	from string
	user string
	pass string
}

func NewMailerFromEnv() *Mailer {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		log.Println("⚠️ SMTP not configured, order confirmation mails disabled")
		return nil
	}

	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@velora.shop"
	}

	return &Mailer{
		host: host,
		port: port,
		from: from,
		user: os.Getenv("SMTP_USERNAME"),
		pass: os.Getenv("SMTP_PASSWORD"),
	}
}

// SendOrderConfirmation mails a plain-text receipt for a committed order.
// Failures are the caller's problem to log, never to surface to the shopper.
func (m *Mailer) SendOrderConfirmation(to string, order *models.Order) error {
	if m == nil {
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(fmt.Sprintf("Your order #%d is confirmed", order.ID))
	msg.SetBodyString(mail.TypeTextPlain, orderConfirmationBody(order))

	client, err := mail.NewClient(m.host,
		mail.WithPort(m.port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(m.user),
		mail.WithPassword(m.pass),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Sending order confirmation to", to)
	return client.DialAndSend(msg)
}

func orderConfirmationBody(order *models.Order) string {
	body := fmt.Sprintf("Thank you for your order #%d.\n\n", order.ID)
	for _, item := range order.Items {
		name := fmt.Sprintf("product %d", item.ProductID)
		if item.Product != nil {
			name = item.Product.Name
		}
		body += fmt.Sprintf("  %s x%d — %.2f\n", name, item.Quantity, item.PriceAtPurchase*float64(item.Quantity))
	}
	body += fmt.Sprintf("\nTotal: %.2f\nStatus: %s\n", order.TotalAmount, order.Status)
	return body
}
