package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// devTicketSecret signs ticket tokens when TICKET_TOKEN_SECRET is unset.
const devTicketSecret = "dev-ticket-secret-change-me"

var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// DefaultCORSOrigins returns the local development origins allowed when
// none are configured.
func DefaultCORSOrigins() []string {
	return append([]string(nil), defaultCORSOrigins...)
}

type Env struct {
	AppAddr            string
	GinMode            string
	CORSAllowedOrigins []string
	TicketTokenSecret  []byte
	TicketTokenTTL     time.Duration
}

// LoadEnv reads an optional .env file and then the process environment.
// Variables already set in the environment win over .env entries.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: failed to read .env: %v", err)
	}
	return envFrom(os.Getenv)
}

func envFrom(getenv func(string) string) Env {
	appAddr := strings.TrimSpace(getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	secret := strings.TrimSpace(getenv("TICKET_TOKEN_SECRET"))
	if secret == "" {
		log.Println("warning: TICKET_TOKEN_SECRET not set, using development secret")
		secret = devTicketSecret
	}

	ttl := 30 * time.Minute
	if raw := strings.TrimSpace(getenv("TICKET_TOKEN_TTL")); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			log.Printf("warning: invalid TICKET_TOKEN_TTL %q, using %s", raw, ttl)
		} else {
			ttl = parsed
		}
	}

	return Env{
		AppAddr:            appAddr,
		GinMode:            strings.TrimSpace(getenv("GIN_MODE")),
		CORSAllowedOrigins: parseOrigins(getenv("CORS_ALLOWED_ORIGINS")),
		TicketTokenSecret:  []byte(secret),
		TicketTokenTTL:     ttl,
	}
}

// parseOrigins keeps only absolute http(s) origins and falls back to the
// local development origins when nothing usable is configured.
func parseOrigins(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if strings.HasPrefix(o, "http://") || strings.HasPrefix(o, "https://") {
			out = append(out, o)
		} else if o != "" {
			log.Printf("warning: ignoring CORS origin %q", o)
		}
	}
	if len(out) == 0 {
		return DefaultCORSOrigins()
	}
	return out
}
