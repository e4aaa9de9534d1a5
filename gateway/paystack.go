package gateway

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"BACK_CHARITY_GO/models"
)

// ErrMissingSecretKey is returned before any provider call when no
// Paystack secret key is configured
var ErrMissingSecretKey = errors.New("paystack secret key is missing")

// APIError carries the status code and body of a provider rejection so
// handlers can relay the provider's own response
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("paystack returned status %d: %s", e.StatusCode, e.Body)
}

// InitResult holds the raw provider payload from a transaction
// initialization, plus the reference extracted from it
type InitResult struct {
	Reference string
	Body      []byte
}

// Client calls the Paystack transaction API
type Client struct {
	secretKey   string
	callbackURL string
	baseURL     string
	httpClient  *http.Client
}

// NewClient creates a Paystack client. The secret key may be empty;
// calls will then fail with ErrMissingSecretKey before reaching the
// provider.
func NewClient(secretKey, callbackURL string) *Client {
	return &Client{
		secretKey:   secretKey,
		callbackURL: callbackURL,
		baseURL:     "https://api.paystack.co",
		httpClient:  &http.Client{Timeout: 15 * time.Second},
	}
}

// InitializeTransaction submits a charge for the given email and amount
// (minor units) and returns the provider's session payload unchanged
func (c *Client) InitializeTransaction(email string, amount int64) (*InitResult, error) {
	if c.secretKey == "" {
		return nil, ErrMissingSecretKey
	}

	// Build the request body
	params := map[string]interface{}{
		"email":        email,
		"amount":       amount,
		"callback_url": c.callbackURL,
	}
	payload, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("error encoding request body: %v", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+"/transaction/initialize", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}

	// Set headers
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	// Send the request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: body}
	}

	// Parse only the reference; the payload itself is relayed verbatim
	var initResp models.PaystackInitResponse
	if err := json.Unmarshal(body, &initResp); err != nil {
		return nil, fmt.Errorf("error parsing response JSON: %v", err)
	}
	if initResp.Data.Reference == "" {
		return nil, fmt.Errorf("invalid provider response (reference missing)")
	}

	return &InitResult{Reference: initResp.Data.Reference, Body: body}, nil
}

// VerifyTransaction asks the provider for the settlement status of the
// given reference
func (c *Client) VerifyTransaction(reference string) (*models.PaystackVerifyData, error) {
	if c.secretKey == "" {
		return nil, ErrMissingSecretKey
	}

	req, err := http.NewRequest("GET", c.baseURL+"/transaction/verify/"+reference, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: body}
	}

	var verifyResp models.PaystackVerifyResponse
	if err := json.Unmarshal(body, &verifyResp); err != nil {
		return nil, fmt.Errorf("error parsing response JSON: %v", err)
	}

	return &verifyResp.Data, nil
}
