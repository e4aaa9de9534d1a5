package main

import (
	"log"
	"net/http"

	"BACK_CHARITY_GO/config"
	"BACK_CHARITY_GO/database"
	"BACK_CHARITY_GO/routes"
)

func main() {
	// Load configuration
	config.LoadEnv()

	if config.GetPaystackSecretKey() == "" {
		log.Println("PAYSTACK_SECRET_KEY is not set; payment endpoints will reject requests.")
	}
	if config.GetSMTPHost() == "" || config.GetEmailUser() == "" {
		log.Println("SMTP settings incomplete; receipt emails are disabled.")
	}
	if config.GetTwilioAccountSID() == "" || config.GetTwilioAuthToken() == "" {
		log.Println("Twilio settings incomplete; WhatsApp receipts are disabled.")
	}

	// Connect to the database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}
	log.Println("Migrations ran successfully!")

	// Set up the routes
	router := routes.SetupRoutes(db)

	// Start the server
	port := config.GetPortServerStart()
	log.Println("Server running on port:", port, "...")
	log.Fatal(http.ListenAndServe(":"+port, router))
}
