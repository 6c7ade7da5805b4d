package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var loaded bool

// Config membaca variabel dari .env (sekali saja) lalu dari environment
func Config(key string) string {
	if !loaded {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("file .env tidak ditemukan, pakai environment saja")
		}
		loaded = true
	}
	return os.Getenv(key)
}

func ConfigDefault(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}
