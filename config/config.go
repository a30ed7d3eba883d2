package config

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup. It is loaded
// once in main and never mutated afterwards; rotating the JWT secret means
// redeploying every instance with the new value.
type Config struct {
	MongoURI  string
	DBName    string
	JWTSecret string
	Port      string
	GinMode   string
}

func Load() (*Config, error) {
	// .env is optional; real deployments set env vars directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	cfg := &Config{
		MongoURI:  os.Getenv("MONGODB_URI"),
		DBName:    os.Getenv("DB_NAME"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		Port:      os.Getenv("PORT"),
		GinMode:   os.Getenv("GIN_MODE"),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}
	if cfg.MongoURI == "" {
		return nil, errors.New("MONGODB_URI must be set")
	}
	if cfg.DBName == "" {
		cfg.DBName = "devconnect"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	return cfg, nil
}
