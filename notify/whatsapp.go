package notify

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"BACK_CHARITY_GO/models"
)

// WhatsAppSender delivers receipt messages through the Twilio API
type WhatsAppSender struct {
	accountSID string
	authToken  string
	from       string
	baseURL    string
	client     *http.Client
}

func NewWhatsAppSender(accountSID, authToken, from string) *WhatsAppSender {
	return &WhatsAppSender{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		baseURL:    "https://api.twilio.com",
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured reports whether Twilio credentials are present
func (s *WhatsAppSender) Configured() bool {
	return s.accountSID != "" && s.authToken != ""
}

// SendReceipt sends the donor a WhatsApp acknowledgement of the
// recorded donation. gatewayDetail is the provider's settlement detail
// included in the message body.
func (s *WhatsAppSender) SendReceipt(donation *models.Donation, gatewayDetail string) error {
	if !s.Configured() {
		return fmt.Errorf("whatsapp sender is not configured")
	}

	// Build form data
	form := url.Values{}
	form.Set("From", "whatsapp:"+s.from)
	form.Set("To", "whatsapp:"+donation.Phone)
	form.Set("Body", buildReceiptMessage(donation, gatewayDetail))

	apiURL := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", s.baseURL, s.accountSID)
	req, err := http.NewRequest("POST", apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("error creating request: %v", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(s.accountSID, s.authToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("twilio returned status %d: %s", resp.StatusCode, body)
	}

	return nil
}

// buildReceiptMessage composes the WhatsApp acknowledgement body
func buildReceiptMessage(donation *models.Donation, gatewayDetail string) string {
	return fmt.Sprintf(`Dear %s,

Thank you for your generous contribution!

Donation details:
- Reference: %s
- Amount: %s
- Date: %s
- Time: %s
- Status: %s

Your support makes a difference and helps us continue our work in improving lives.

We are truly grateful for your kindness and commitment to our cause.

Best regards,
The Entire Charity Team
JAPA`, donation.Name, donation.Reference, FormatNaira(donation.Amount),
		donation.Date, donation.Time, gatewayDetail)
}
