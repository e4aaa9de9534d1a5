package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"BACK_CHARITY_GO/config"
)

// LoginResponse is the token envelope returned to the charity admin
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"`
}

// LoginHandler authenticates the charity admin and issues a JWT used to
// read the recorded donations
func LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Parse the form parameters
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing the request parameters", http.StatusBadRequest)
			return
		}

		username := r.FormValue("username")
		password := r.FormValue("password")
		grantType := r.FormValue("grant_type")

		if grantType != "password" || username == "" || password == "" {
			http.Error(w, "Invalid parameters", http.StatusBadRequest)
			return
		}

		adminEmail := config.GetAdminEmail()
		adminHash := config.GetAdminPasswordHash()
		if adminEmail == "" || adminHash == "" {
			http.Error(w, "Admin access is not configured", http.StatusUnauthorized)
			return
		}

		// Check the credentials
		if username != adminEmail ||
			bcrypt.CompareHashAndPassword([]byte(adminHash), []byte(password)) != nil {
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}

		// Issue the token
		expiresIn := 24 * time.Hour
		claims := jwt.MapClaims{
			"sub": username,
			"exp": time.Now().Add(expiresIn).Unix(),
			"iat": time.Now().Unix(),
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(config.GetJwtSecret()))
		if err != nil {
			http.Error(w, "Error signing the token", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(LoginResponse{
			Token:     signed,
			TokenType: "Bearer",
			ExpiresIn: int(expiresIn.Seconds()),
		})
	}
}
