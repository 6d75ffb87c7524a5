package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/isevvweb/ISE-Website-sub000/internal/calendar"
	"github.com/isevvweb/ISE-Website-sub000/internal/db"
	"github.com/isevvweb/ISE-Website-sub000/internal/http/middleware"
	"github.com/isevvweb/ISE-Website-sub000/internal/mail"
	"github.com/isevvweb/ISE-Website-sub000/internal/prayerapi"
	"github.com/isevvweb/ISE-Website-sub000/internal/redis"
	"github.com/isevvweb/ISE-Website-sub000/internal/sign"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	env := LoadEnvironment()
	if env.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// initialize PostgreSQL
	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init failed")
	}

	// run pending migrations
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate failed")
	}

	redis.InitRedis(env.RedisAddress, env.RedisUsername, env.RedisPassword)

	if env.MQTTBrokerURL != "" {
		middleware.SetBrokerURL(env.MQTTBrokerURL)
	}
	if err := middleware.InitMQTT("ise-server"); err != nil {
		log.Warn().Err(err).Msg("MQTT unavailable, kiosks fall back to polling")
	}
	defer middleware.CleanupMQTT()

	store := db.NewStore()
	storageSystem := InitStorage(env)
	mailer := mail.NewService(env.SendgridAPIKey, env.EmailFromName, env.EmailFromAddr, env.AdminEmail)

	tz := env.Timezone
	if tz == "" {
		tz = sign.DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", tz).Msg("invalid timezone")
	}

	prayers := prayerapi.NewClient(env.AladhanCity, env.AladhanCountry, env.AladhanMethod)
	cal := calendar.NewClient(env.GoogleCalendarAPIKey, env.GoogleCalendarIDs)
	src := newSignDataSource(store, prayers, cal)

	scheduler := sign.NewScheduler(src, loc,
		time.Duration(env.AdhanFallbackSeconds)*time.Second,
		func(prayer string) {
			log.Info().Str("prayer", prayer).Msg("adhan audio cue")
			middleware.PublishRefreshAll()
		})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go scheduler.Run(ctx)

	if env.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	RegisterRoutes(r, env, store, storageSystem, mailer, scheduler, src, loc)

	log.Info().Str("address", env.ServerAddress).Msg("listening")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
