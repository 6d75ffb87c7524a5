package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Environment struct {
	Environment    string
	ServerAddress  string
	SecretKey      string
	DatabaseURL    string
	MigrationsPath string

	RedisAddress  string
	RedisUsername string
	RedisPassword string

	MQTTBrokerURL string

	UseSpaces       bool
	SpacesEndpoint  string
	SpacesRegion    string
	SpacesBucket    string
	SpacesCDNURL    string
	SpacesAccessKey string
	SpacesSecretKey string

	Timezone             string
	AladhanCity          string
	AladhanCountry       string
	AladhanMethod        int
	AdhanFallbackSeconds int

	GoogleCalendarAPIKey string
	GoogleCalendarIDs    []string

	SendgridAPIKey string
	EmailFromName  string
	EmailFromAddr  string
	AdminEmail     string
}

// LoadEnvironment reads and validates env vars
func LoadEnvironment() Environment {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	env := Environment{
		Environment:    os.Getenv("APP_ENV"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SecretKey:      os.Getenv("JWT_SECRET"),
		ServerAddress:  os.Getenv("SERVER_ADDRESS"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),

		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisUsername: os.Getenv("REDIS_USERNAME"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		MQTTBrokerURL: os.Getenv("MQTT_BROKER_URL"),

		UseSpaces:       os.Getenv("USE_SPACES") == "true",
		SpacesEndpoint:  os.Getenv("SPACES_ENDPOINT"),
		SpacesRegion:    os.Getenv("SPACES_REGION"),
		SpacesBucket:    os.Getenv("SPACES_BUCKET"),
		SpacesCDNURL:    os.Getenv("SPACES_CDN_URL"),
		SpacesAccessKey: os.Getenv("SPACES_ACCESS_KEY"),
		SpacesSecretKey: os.Getenv("SPACES_SECRET_KEY"),

		Timezone:       os.Getenv("SIGN_TIMEZONE"),
		AladhanCity:    os.Getenv("ALADHAN_CITY"),
		AladhanCountry: os.Getenv("ALADHAN_COUNTRY"),

		GoogleCalendarAPIKey: os.Getenv("GOOGLE_CALENDAR_API_KEY"),

		SendgridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		EmailFromName:  os.Getenv("EMAIL_FROM_NAME"),
		EmailFromAddr:  os.Getenv("EMAIL_FROM_ADDRESS"),
		AdminEmail:     os.Getenv("ADMIN_EMAIL"),
	}

	if env.MigrationsPath == "" {
		env.MigrationsPath = "./migrations"
	}
	if env.AladhanCity == "" {
		env.AladhanCity = "Chicago"
	}
	if env.AladhanCountry == "" {
		env.AladhanCountry = "US"
	}
	env.AladhanMethod = envInt("ALADHAN_METHOD", 2)
	env.AdhanFallbackSeconds = envInt("ADHAN_FALLBACK_SECONDS", 300)

	if raw := os.Getenv("GOOGLE_CALENDAR_IDS"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				env.GoogleCalendarIDs = append(env.GoogleCalendarIDs, id)
			}
		}
	}

	if env.DatabaseURL == "" || env.SecretKey == "" || env.ServerAddress == "" {
		log.Fatal().Msg("missing required environment variables")
	}

	return env
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatal().Str("key", key).Str("value", raw).Msg("environment variable must be an integer")
	}
	return v
}
