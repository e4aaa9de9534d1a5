package notify

import (
	"crypto/tls"
	"fmt"
	"net/smtp"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"BACK_CHARITY_GO/models"
)

// EmailSender delivers receipt emails over SMTP with implicit TLS
type EmailSender struct {
	smtpHost string
	smtpPort string
	username string
	password string
}

func NewEmailSender(host, port, user, pass string) *EmailSender {
	return &EmailSender{
		smtpHost: host,
		smtpPort: port,
		username: user,
		password: pass,
	}
}

// Configured reports whether SMTP credentials are present
func (e *EmailSender) Configured() bool {
	return e.smtpHost != "" && e.username != "" && e.password != ""
}

// SendReceipt emails the donor an acknowledgement of the recorded donation
func (e *EmailSender) SendReceipt(donation *models.Donation) error {
	if !e.Configured() {
		return fmt.Errorf("email sender is not configured")
	}

	from := e.username
	body := buildReceiptEmail(donation)
	msg := []byte(
		fmt.Sprintf("From: %s\r\n", from) +
			fmt.Sprintf("To: %s\r\n", donation.Email) +
			"Subject: Acknowledgement and gratitude\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/plain; charset=\"utf-8\"\r\n" +
			"\r\n" +
			body,
	)

	serverAddr := e.smtpHost + ":" + e.smtpPort

	// Implicit TLS for port 465
	tlsConfig := &tls.Config{
		ServerName: e.smtpHost,
	}

	conn, err := tls.Dial("tcp", serverAddr, tlsConfig)
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, e.smtpHost)
	if err != nil {
		return err
	}
	defer client.Quit()

	auth := smtp.PlainAuth("", e.username, e.password, e.smtpHost)
	if err := client.Auth(auth); err != nil {
		return err
	}

	if err := client.Mail(from); err != nil {
		return err
	}
	if err := client.Rcpt(donation.Email); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

// buildReceiptEmail composes the plaintext acknowledgement body
func buildReceiptEmail(donation *models.Donation) string {
	return fmt.Sprintf(`Dear %s,

Thank you for your generous donation to The Entire Charity.

Your donation has been successfully processed, and your support will make a meaningful difference in the lives of those in need.

Donation Details:
- Amount: %s
- Date: %s
- Time: %s

Your kindness and compassion are truly appreciated, and we are grateful for your commitment to our cause.

With your help, we can continue to make a positive impact in the community.

Thank you for making a difference!

Best regards,
The Entire Charity Team,
JAPA
`, donation.Name, FormatNaira(donation.Amount), donation.Date, donation.Time)
}

// FormatNaira renders a major-unit amount with a currency symbol and
// thousands separators, e.g. 5000 -> ₦5,000.00
func FormatNaira(amount float64) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("₦%.2f", amount)
}
