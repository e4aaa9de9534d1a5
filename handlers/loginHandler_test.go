package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"BACK_CHARITY_GO/models"
)

func setupAdminEnv(t *testing.T) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("error hashing password: %v", err)
	}
	t.Setenv("ADMIN_EMAIL", "admin@charity.org")
	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))
	t.Setenv("JWT_SECRET", "test-secret")
}

func postLogin(t *testing.T, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	LoginHandler()(rr, req)
	return rr
}

func TestLoginIssuesValidToken(t *testing.T) {
	setupAdminEnv(t)

	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", "admin@charity.org")
	form.Set("password", "correct-horse")

	rr := postLogin(t, form)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp LoginResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(resp.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims["sub"] != "admin@charity.org" {
		t.Errorf("unexpected subject claim: %v", claims["sub"])
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	setupAdminEnv(t)

	tests := []struct {
		name      string
		username  string
		password  string
		grantType string
	}{
		{name: "wrong password", username: "admin@charity.org", password: "wrong", grantType: "password"},
		{name: "wrong username", username: "someone@else.org", password: "correct-horse", grantType: "password"},
		{name: "wrong grant type", username: "admin@charity.org", password: "correct-horse", grantType: "client_credentials"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := url.Values{}
			form.Set("grant_type", tt.grantType)
			form.Set("username", tt.username)
			form.Set("password", tt.password)

			rr := postLogin(t, form)
			if rr.Code == http.StatusOK {
				t.Errorf("expected a rejection, got 200")
			}
		})
	}
}

func TestListDonationsRequiresToken(t *testing.T) {
	setupAdminEnv(t)

	st := &mockStore{
		ListDonationsFunc: func() ([]models.Donation, error) {
			return []models.Donation{{Reference: "ref_123", Amount: 5000}}, nil
		},
	}
	handler := ListDonationsHandler(st)

	// No token
	rr := httptest.NewRecorder()
	handler(rr, httptest.NewRequest("GET", "/api/donations", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401 without a token, got %d", rr.Code)
	}

	// Garbage token
	req := httptest.NewRequest("GET", "/api/donations", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rr = httptest.NewRecorder()
	handler(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401 with an invalid token, got %d", rr.Code)
	}

	// Valid token from the login endpoint
	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", "admin@charity.org")
	form.Set("password", "correct-horse")
	loginRR := postLogin(t, form)

	var login LoginResponse
	if err := json.Unmarshal(loginRR.Body.Bytes(), &login); err != nil {
		t.Fatalf("error decoding login response: %v", err)
	}

	req = httptest.NewRequest("GET", "/api/donations", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	rr = httptest.NewRecorder()
	handler(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200 with a valid token, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Count     int               `json:"count"`
		Donations []models.Donation `json:"donations"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Count != 1 || len(resp.Donations) != 1 || resp.Donations[0].Reference != "ref_123" {
		t.Errorf("unexpected listing: %+v", resp)
	}
}
