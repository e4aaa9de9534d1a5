package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"

	"BACK_CHARITY_GO/config"
)

// ListDonationsHandler returns the recorded donations to the charity
// admin. Requires the JWT issued by the login endpoint.
func ListDonationsHandler(st DonationStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Validate the JWT from the Authorization header
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Token not provided", http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(config.GetJwtSecret()), nil
		})
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		donations, err := st.ListDonations()
		if err != nil {
			http.Error(w, "Error listing donations: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"count":     len(donations),
			"donations": donations,
		})
	}
}
