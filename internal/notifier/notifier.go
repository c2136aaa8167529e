// Package notifier consumes domain events from the notification queue
// and sends the corresponding customer and kitchen emails.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"strings"

	"naija-aroma/internal/config"
	"naija-aroma/internal/logger"
	"naija-aroma/internal/messaging"
)

// Sender delivers a rendered email. Implemented by smtpSender; tests
// substitute a recording fake.
type Sender interface {
	Send(to, subject, body string) error
}

// Notifier turns bus events into emails. When no SMTP host is
// configured it logs each notification and drops it, which keeps
// development environments working without a mail server.
type Notifier struct {
	consumer *messaging.Consumer
	sender   Sender
	log      *logger.Logger
}

// New builds a notifier over the given consumer.
func New(consumer *messaging.Consumer, cfg config.SMTPConfig, log *logger.Logger) *Notifier {
	var sender Sender
	if cfg.Host != "" {
		sender = &smtpSender{cfg: cfg}
	}
	return &Notifier{consumer: consumer, sender: sender, log: log}
}

// Run consumes events until ctx is cancelled.
func (n *Notifier) Run(ctx context.Context) error {
	n.log.Info("notifier_started", "", "Notification worker started", nil)
	return n.consumer.StartConsuming(ctx, n.handle)
}

func (n *Notifier) handle(ctx context.Context, body []byte) error {
	var event messaging.Event
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("failed to decode event: %w", err)
	}

	to, subject, text := n.render(event)
	if to == "" {
		n.log.Debug("notification_skipped", event.RequestID, "Event has no recipient", map[string]interface{}{
			"event_type": event.Type,
		})
		return nil
	}

	if n.sender == nil {
		n.log.Info("notification_logged", event.RequestID, "SMTP not configured, notification dropped", map[string]interface{}{
			"event_type": event.Type,
			"to":         to,
			"subject":    subject,
		})
		return nil
	}

	if err := n.sender.Send(to, subject, text); err != nil {
		n.log.Error("notification_failed", event.RequestID, "Failed to send email", err, map[string]interface{}{
			"event_type": event.Type,
			"to":         to,
		})
		return err
	}

	n.log.Info("notification_sent", event.RequestID, "Email sent", map[string]interface{}{
		"event_type": event.Type,
		"to":         to,
	})
	return nil
}

// render picks the recipient, subject and body for an event. Unknown
// event types render an empty recipient and are skipped.
func (n *Notifier) render(event messaging.Event) (to, subject, body string) {
	switch event.Type {
	case messaging.EventOrderCreated:
		return event.CustomerEmail,
			fmt.Sprintf("Order %s received", event.OrderNumber),
			fmt.Sprintf("Hi %s,\n\nWe have received your order %s for %s NGN. We will confirm it shortly.\n\nNaija Aroma",
				event.CustomerName, event.OrderNumber, event.TotalAmount)
	case messaging.EventOrderStatusChanged:
		return event.CustomerEmail,
			fmt.Sprintf("Order %s is now %s", event.OrderNumber, event.OrderStatus),
			fmt.Sprintf("Hi %s,\n\nYour order %s is now %s.\n\nNaija Aroma",
				event.CustomerName, event.OrderNumber, event.OrderStatus)
	case messaging.EventOrderCancelled:
		return event.CustomerEmail,
			fmt.Sprintf("Order %s cancelled", event.OrderNumber),
			fmt.Sprintf("Hi %s,\n\nYour order %s has been cancelled.\n\nNaija Aroma",
				event.CustomerName, event.OrderNumber)
	case messaging.EventPaymentSucceeded:
		return event.CustomerEmail,
			fmt.Sprintf("Payment received for order %s", event.OrderNumber),
			fmt.Sprintf("Hi %s,\n\nWe have received your payment of %s NGN for order %s. Thank you!\n\nNaija Aroma",
				event.CustomerName, event.TotalAmount, event.OrderNumber)
	case messaging.EventPaymentFailed:
		return event.CustomerEmail,
			fmt.Sprintf("Payment failed for order %s", event.OrderNumber),
			fmt.Sprintf("Hi %s,\n\nYour payment for order %s did not go through. Please try again or choose a different payment method.\n\nNaija Aroma",
				event.CustomerName, event.OrderNumber)
	case messaging.EventCateringCreated:
		return event.InquiryEmail,
			"We received your catering inquiry",
			fmt.Sprintf("Hi %s,\n\nThank you for your catering inquiry. Our team will get back to you with a quote soon.\n\nNaija Aroma",
				event.CustomerName)
	case messaging.EventCateringStatusChanged:
		body := fmt.Sprintf("Hi %s,\n\nYour catering inquiry is now %s.", event.CustomerName, event.InquiryStatus)
		if event.QuotedAmount != "" {
			body += fmt.Sprintf(" Quoted amount: %s NGN.", event.QuotedAmount)
		}
		body += "\n\nNaija Aroma"
		return event.InquiryEmail,
			fmt.Sprintf("Catering inquiry update: %s", event.InquiryStatus),
			body
	default:
		return "", "", ""
	}
}

type smtpSender struct {
	cfg config.SMTPConfig
}

func (s *smtpSender) Send(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var auth smtp.Auth
	if s.cfg.User != "" {
		auth = smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	}

	msg := strings.Join([]string{
		"From: " + s.cfg.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}, "\r\n")

	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg))
}
