package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from the .env file
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println(".env file not found, using system environment variables.")
	}
}

// GetDatabaseURL returns the database connection URL
func GetDatabaseURL() string {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set in the environment.")
	}
	return dbURL
}

// GetPortServerStart returns the port the HTTP server listens on
func GetPortServerStart() string {
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}
	return port
}

// GetPaystackSecretKey returns the Paystack secret key. It may be empty;
// the verify handler answers with its own error body in that case.
func GetPaystackSecretKey() string {
	return os.Getenv("PAYSTACK_SECRET_KEY")
}

// GetCallbackURL returns the URL Paystack redirects the donor to after checkout
func GetCallbackURL() string {
	callback := os.Getenv("PAYSTACK_CALLBACK_URL")
	if callback == "" {
		callback = "http://localhost:3000"
	}
	return callback
}

// GetSMTPHost returns the SMTP server host for receipt emails
func GetSMTPHost() string {
	return os.Getenv("SMTP_HOST")
}

// GetSMTPPort returns the SMTP server port (implicit TLS)
func GetSMTPPort() string {
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "465"
	}
	return port
}

// GetEmailUser returns the sender address used for receipt emails
func GetEmailUser() string {
	return os.Getenv("EMAIL_USER")
}

// GetEmailPassword returns the SMTP password for the sender address
func GetEmailPassword() string {
	return os.Getenv("EMAIL_PASSWORD")
}

// GetTwilioAccountSID returns the Twilio account SID
func GetTwilioAccountSID() string {
	return os.Getenv("ACCOUNTSID")
}

// GetTwilioAuthToken returns the Twilio auth token
func GetTwilioAuthToken() string {
	return os.Getenv("AUTHTOKEN")
}

// GetWhatsAppFrom returns the registered WhatsApp sender number
func GetWhatsAppFrom() string {
	from := os.Getenv("WHATSAPP_FROM")
	if from == "" {
		from = "+14155238886"
	}
	return from
}

func GetJwtSecret() string {
	return os.Getenv("JWT_SECRET")
}

func GetAdminEmail() string {
	return os.Getenv("ADMIN_EMAIL")
}

func GetAdminPasswordHash() string {
	return os.Getenv("ADMIN_PASSWORD_HASH")
}
