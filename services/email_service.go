package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"candle-shop/config"
)

type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

// NewEmailService returns nil when SMTP is not configured; order
// confirmations are simply skipped in that case.
func NewEmailService(cfg *config.Config) *EmailService {
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil
	}
	return &EmailService{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
	}
}

func (s *EmailService) SendOrderConfirmation(toEmail, orderID string, total int) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order Confirmation %s - Candle Shop", orderID))

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px;">
        <h2 style="color: #333;">Thank you for your order!</h2>
        <div style="background-color: #fdf6ec; padding: 20px; margin: 20px 0; border-radius: 8px;">
            <p><strong>Order Number:</strong> %s</p>
            <p><strong>Total Amount:</strong> Rs. %d</p>
        </div>
        <p>Your order has been received and is being processed. Expected delivery is within 7 days.</p>
        <p style="color: #666; font-size: 12px; margin-top: 30px;">This is an automated email. Please do not reply.</p>
    </div>
</body>
</html>
	`, orderID, total)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
