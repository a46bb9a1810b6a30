// Package config carga la configuración del servicio desde variables de
// entorno (con .env opcional para desarrollo local).
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Backend de storage: DB_DSN manda sobre REDIS_ADDR; sin ambos se usa
	// el store in-memory (modo dev).
	DBDSN     string
	RedisAddr string

	SendGridAPIKey string
	SendGridAPIURL string

	// Rate limit del envío de códigos de verificación.
	VerificationRatePerMinute int
	VerificationBurst         int
}

func Load() Config {
	// .env es opcional; en producción las vars vienen del entorno.
	_ = godotenv.Load()

	return Config{
		Port:                      getenv("PORT", "8080"),
		DBDSN:                     os.Getenv("DB_DSN"),
		RedisAddr:                 os.Getenv("REDIS_ADDR"),
		SendGridAPIKey:            os.Getenv("SENDGRID_API_KEY"),
		SendGridAPIURL:            getenv("SENDGRID_API_URL", "https://api.sendgrid.com/v3/mail/send"),
		VerificationRatePerMinute: getenvInt("VERIFICATION_RATE_PER_MINUTE", 5),
		VerificationBurst:         getenvInt("VERIFICATION_BURST", 5),
	}
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
