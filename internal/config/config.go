package config

import (
	"crypto/rsa"
	"encoding/base64"
	"os"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"

	"github.com/aryam-rgb/mall-rent-nexus/internal/utils"
)

const AppName = "mall-rent-nexus"

type Config struct {
	AppName           string
	AppPort           string
	AppUrl            string
	DBUrl             string
	RSAPublicKey      *rsa.PublicKey
	SendgridAPIKey    string
	SendgridFromName  string
	SendgridFromEmail string
	SuperadminEmail   string
	SuperadminName    string
}

// LoadConfig reads the environment (optionally seeded from a .env file) and
// fails fast on anything required. SENDGRID_* is optional; without it urgent
// notices are stored but not emailed.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		utils.Logger.Debug("No .env file found; relying on process environment")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		utils.Logger.Fatal("DATABASE_URL env var is missing")
	}
	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		appPort = "8080"
	}
	appUrl := os.Getenv("APP_URL")
	if appUrl == "" {
		utils.Logger.Fatal("APP_URL env var is missing")
	}

	publicKeyBase64 := os.Getenv("RSA_PUBLIC_KEY_BASE64")
	if publicKeyBase64 == "" {
		utils.Logger.Fatal("RSA_PUBLIC_KEY_BASE64 env var is missing")
	}
	publicKeyPEM, err := base64.StdEncoding.DecodeString(publicKeyBase64)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to decode base64 public key")
	}
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicKeyPEM)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to parse RSA public key")
	}

	sendgridAPIKey := os.Getenv("SENDGRID_API_KEY")
	sendgridFromName := os.Getenv("SENDGRID_FROM_NAME")
	if sendgridFromName == "" {
		sendgridFromName = "Mall Rent Nexus"
	}
	sendgridFromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	if sendgridAPIKey != "" && sendgridFromEmail == "" {
		utils.Logger.Fatal("SENDGRID_FROM_EMAIL env var is required when SENDGRID_API_KEY is set")
	}

	superadminEmail := os.Getenv("SEED_SUPERADMIN_EMAIL")
	if superadminEmail == "" {
		superadminEmail = "admin@mallrentnexus.com"
	}
	superadminName := os.Getenv("SEED_SUPERADMIN_NAME")
	if superadminName == "" {
		superadminName = "System Administrator"
	}

	return &Config{
		AppName:           AppName,
		AppPort:           appPort,
		AppUrl:            appUrl,
		DBUrl:             dbURL,
		RSAPublicKey:      publicKey,
		SendgridAPIKey:    sendgridAPIKey,
		SendgridFromName:  sendgridFromName,
		SendgridFromEmail: sendgridFromEmail,
		SuperadminEmail:   superadminEmail,
		SuperadminName:    superadminName,
	}
}
