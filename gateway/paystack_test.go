package gateway

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, secretKey string, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(secretKey, "http://localhost:3000")
	client.baseURL = server.URL
	return client, server
}

func TestInitializeTransactionMissingKey(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	_, err := client.InitializeTransaction("a@b.com", 500000)
	if !errors.Is(err, ErrMissingSecretKey) {
		t.Errorf("expected ErrMissingSecretKey, got %v", err)
	}
	// The credential check happens before any provider call
	if calls != 0 {
		t.Errorf("expected no provider call, got %d", calls)
	}
}

func TestInitializeTransactionSuccess(t *testing.T) {
	response := `{"status":true,"message":"Authorization URL created","data":{"authorization_url":"https://checkout.paystack.com/abc","access_code":"abc","reference":"ref_123"}}`
	client, _ := newTestClient(t, "sk_test_xyz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/transaction/initialize" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer sk_test_xyz" {
			t.Errorf("unexpected Authorization header: %q", auth)
		}

		var params map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			t.Errorf("error decoding request body: %v", err)
		}
		if params["email"] != "a@b.com" || params["amount"] != float64(500000) {
			t.Errorf("unexpected request params: %v", params)
		}
		if params["callback_url"] != "http://localhost:3000" {
			t.Errorf("unexpected callback_url: %v", params["callback_url"])
		}

		w.Write([]byte(response))
	})

	result, err := client.InitializeTransaction("a@b.com", 500000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Reference != "ref_123" {
		t.Errorf("expected reference ref_123, got %q", result.Reference)
	}
	if string(result.Body) != response {
		t.Errorf("expected the provider payload unchanged, got %q", result.Body)
	}
}

func TestInitializeTransactionProviderRejection(t *testing.T) {
	client, _ := newTestClient(t, "sk_test_xyz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":false,"message":"Invalid key"}`))
	})

	_, err := client.InitializeTransaction("a@b.com", 500000)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", apiErr.StatusCode)
	}
	if string(apiErr.Body) != `{"status":false,"message":"Invalid key"}` {
		t.Errorf("expected the provider body preserved, got %q", apiErr.Body)
	}
}

func TestVerifyTransactionMissingKey(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	_, err := client.VerifyTransaction("ref_123")
	if !errors.Is(err, ErrMissingSecretKey) {
		t.Errorf("expected ErrMissingSecretKey, got %v", err)
	}
	if calls != 0 {
		t.Errorf("expected no provider call, got %d", calls)
	}
}

func TestVerifyTransaction(t *testing.T) {
	tests := []struct {
		name        string
		status      string
		wantSettled bool
	}{
		{name: "settled transaction", status: "success", wantSettled: true},
		{name: "failed transaction", status: "failed", wantSettled: false},
		{name: "abandoned transaction", status: "abandoned", wantSettled: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, "sk_test_xyz", func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/transaction/verify/ref_123" {
					t.Errorf("unexpected path: %s", r.URL.Path)
				}
				if auth := r.Header.Get("Authorization"); auth != "Bearer sk_test_xyz" {
					t.Errorf("unexpected Authorization header: %q", auth)
				}
				json.NewEncoder(w).Encode(map[string]interface{}{
					"status":  true,
					"message": "Verification successful",
					"data": map[string]interface{}{
						"status":           tt.status,
						"reference":        "ref_123",
						"amount":           500000,
						"currency":         "NGN",
						"gateway_response": "Successful",
					},
				})
			})

			data, err := client.VerifyTransaction("ref_123")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if data.Settled() != tt.wantSettled {
				t.Errorf("expected settled=%v for status %q", tt.wantSettled, tt.status)
			}
			if data.Amount != 500000 {
				t.Errorf("expected amount 500000, got %d", data.Amount)
			}
		})
	}
}

func TestVerifyTransactionProviderError(t *testing.T) {
	client, _ := newTestClient(t, "sk_test_xyz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status":false,"message":"Transaction reference not found"}`))
	})

	_, err := client.VerifyTransaction("ref_missing")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", apiErr.StatusCode)
	}
}
