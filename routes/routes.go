package routes

import (
	"database/sql"

	"github.com/gorilla/mux"

	"BACK_CHARITY_GO/config"
	"BACK_CHARITY_GO/gateway"
	"BACK_CHARITY_GO/handlers"
	"BACK_CHARITY_GO/middleware"
	"BACK_CHARITY_GO/notify"
	"BACK_CHARITY_GO/store"
)

func SetupRoutes(db *sql.DB) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.CorsMiddleware)

	// Collaborators
	gw := gateway.NewClient(config.GetPaystackSecretKey(), config.GetCallbackURL())
	st := store.NewDonationStore(db)
	email := notify.NewEmailSender(config.GetSMTPHost(), config.GetSMTPPort(),
		config.GetEmailUser(), config.GetEmailPassword())
	whatsapp := notify.NewWhatsAppSender(config.GetTwilioAccountSID(),
		config.GetTwilioAuthToken(), config.GetWhatsAppFrom())

	// Health Check
	router.HandleFunc("/health", handlers.HealthCheckHandler()).Methods("GET")

	// Payment routes
	router.HandleFunc("/api/payment/initialize", handlers.InitializePaymentHandler(gw, st)).Methods("POST")
	router.HandleFunc("/api/payment/verify/{reference}", handlers.VerifyPaymentHandler(gw, st, email, whatsapp)).Methods("GET")

	// Admin routes
	router.HandleFunc("/api/auth/login", handlers.LoginHandler()).Methods("POST")
	router.HandleFunc("/api/donations", handlers.ListDonationsHandler(st)).Methods("GET")

	return router
}
