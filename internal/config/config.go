package config

import (
	"log"
	"os"
	"strings"
	"time"
)

// JWTConfig defines issuer/secret pair for auth verification.
type JWTConfig struct {
	Issuer string
	Secret []byte
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr                 string
	MongoURI             string
	MongoDatabase        string
	PingCollection       string
	StoreCollection      string
	SeatStatusCollection string
	StoreLinkCollection  string
	Timeout              time.Duration
	Timezone             string
	ServerLog            *log.Logger
	JWTConfigs           []JWTConfig
	JWTAudience          string
	AdminAPIToken        string
	AllowedOrigins       []string
}

// Load reads environment variables and returns a fully populated Config.
func Load() Config {
	timeout := 10 * time.Second
	if v := os.Getenv("MONGO_CONNECT_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	allowedOrigins := parseList("API_ALLOWED_ORIGINS", []string{"*"})

	var jwtConfigs []JWTConfig
	if secret := strings.TrimSpace(os.Getenv("AUTH_LINE_JWT_SECRET")); secret != "" {
		jwtConfigs = append(jwtConfigs, JWTConfig{
			Issuer: envOrDefault("AUTH_LINE_JWT_ISSUER", "akiseki-navi-auth"),
			Secret: []byte(secret),
		})
	}
	if secret := strings.TrimSpace(os.Getenv("AUTH_TWITTER_JWT_SECRET")); secret != "" {
		jwtConfigs = append(jwtConfigs, JWTConfig{
			Issuer: envOrDefault("AUTH_TWITTER_JWT_ISSUER", "auth-twitter"),
			Secret: []byte(secret),
		})
	}

	if len(jwtConfigs) == 0 {
		log.Fatal("JWT secrets not configured. Set AUTH_TWITTER_JWT_SECRET or AUTH_LINE_JWT_SECRET.")
	}

	jwtAudience := strings.TrimSpace(os.Getenv("AUTH_JWT_AUDIENCE"))
	if jwtAudience == "" {
		jwtAudience = strings.TrimSpace(os.Getenv("AUTH_LINE_JWT_AUDIENCE"))
	}
	if jwtAudience == "" {
		jwtAudience = strings.TrimSpace(os.Getenv("AUTH_TWITTER_JWT_AUDIENCE"))
	}

	adminAPIToken := strings.TrimSpace(os.Getenv("ADMIN_API_TOKEN"))
	if adminAPIToken == "" {
		log.Fatal("ADMIN_API_TOKEN must be configured")
	}

	cfg := Config{
		Addr:                 envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:             envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:        envOrDefault("MONGO_DB", "akiseki-navi"),
		StoreCollection:      envOrDefault("STORE_COLLECTION", "stores"),
		SeatStatusCollection: envOrDefault("SEAT_STATUS_COLLECTION", "seat_status_updates"),
		StoreLinkCollection:  envOrDefault("STORE_LINK_COLLECTION", "store_user_links"),
		PingCollection:       envOrDefault("PING_COLLECTION", "pings"),
		Timeout:              timeout,
		Timezone:             envOrDefault("TIMEZONE", "Asia/Tokyo"),
		ServerLog:            log.New(os.Stdout, "[akiseki-navi-api] ", log.LstdFlags|log.Lshortfile),
		JWTConfigs:           jwtConfigs,
		JWTAudience:          jwtAudience,
		AdminAPIToken:        adminAPIToken,
		AllowedOrigins:       allowedOrigins,
	}

	cfg.ServerLog.Printf("loaded config: addr=%q db=%q issuers=%d", cfg.Addr, cfg.MongoDatabase, len(jwtConfigs))

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
