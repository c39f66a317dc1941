//go:build !cli

package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog/log"

	"woocommerce.GO/config"
	"woocommerce.GO/core/session"
	"woocommerce.GO/cron"
	"woocommerce.GO/cron/jobs"
	"woocommerce.GO/model/migrations"
	"woocommerce.GO/server"
)

func main() {
	config.LoadEnv()
	cfg := config.App()
	config.SetupLogging(cfg.LogLevel, cfg.Env)

	config.InitRedis()
	config.PingRedis(context.Background())

	db, err := config.NewDB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to DB")
	}
	sqldb, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get DB instance")
	}
	if err := sqldb.Ping(); err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := migrations.Up(db); err != nil {
			log.Fatal().Err(err).Msg("migration failed")
		}
	}

	sessions := session.NewStore(config.RedisClient, cfg.SessionTTL)
	jobs.Register(db, sessions)
	c, err := cron.StartCron()
	if err != nil {
		log.Fatal().Err(err).Msg("cron scheduler failed")
	}
	defer c.Stop()

	e := server.New(db, sessions, cfg)

	// ASCII banner on start (random font each run)
	fonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "doom", "larry3d", "puffy", "rectangles"}
	figure.NewFigure("WooGo GQL", fonts[rand.Intn(len(fonts))], true).Print()
	fmt.Println()

	log.Info().Str("port", cfg.Port).Msgf("GraphQL at %s/graphql  Playground at %s/playground", cfg.BaseURL, cfg.BaseURL)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := server.Run(ctx, e, cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
