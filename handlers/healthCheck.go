package handlers

import (
	"encoding/json"
	"net/http"
)

// HealthCheckHandler reports whether the service is up
func HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		json.NewEncoder(w).Encode(map[string]string{
			"status": "online",
		})
	}
}
