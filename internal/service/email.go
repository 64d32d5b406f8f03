package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)

	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendLongHoldAlert(ctx context.Context, to string, items []HoldAlertItem) error {
	var b strings.Builder
	b.WriteString("The following cylinders have been held past the reporting threshold:\n\n")
	for _, it := range items {
		fmt.Fprintf(&b, "- %s held by %s for %d days\n", it.SerialCode, it.CompanyName, it.HeldDays)
	}
	return s.send(to, "Long-held cylinders", b.String())
}

func (s *emailService) SendLowStockAlert(ctx context.Context, to string, items []StockAlertItem) error {
	var b strings.Builder
	b.WriteString("Available stock is low for:\n\n")
	for _, it := range items {
		fmt.Fprintf(&b, "- %s %s: %d available\n", it.GasType, it.Size, it.Available)
	}
	return s.send(to, "Low cylinder stock", b.String())
}

func (s *emailService) SendRefundReadyAlert(ctx context.Context, to string, items []RefundAlertItem) error {
	var b strings.Builder
	b.WriteString("The following members have completed the cooling period and can be refunded:\n\n")
	for _, it := range items {
		fmt.Fprintf(&b, "- %s: payout %d\n", it.CompanyName, it.PayoutCents)
	}
	return s.send(to, "Deposit refunds ready", b.String())
}
