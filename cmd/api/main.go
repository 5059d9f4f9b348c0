package main

import (
	"context"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"yelpcamp/internal/adapters/geocoding"
	httpserver "yelpcamp/internal/adapters/http_server"
	"yelpcamp/internal/adapters/imagestore"
	"yelpcamp/internal/adapters/observability"
	"yelpcamp/internal/app"
	"yelpcamp/internal/shared"
	mongorepo "yelpcamp/internal/storage/mongo"
)

func main() {
	_ = godotenv.Load()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	ctx := context.Background()

	// db
	client, err := mongorepo.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() { _ = client.Disconnect(ctx) }()
	db := client.Database(cfg.MongoDB)
	if err := mongorepo.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes failed")
	}
	log.Info().Msg("database connection ok")

	// sessions over redis
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPass, DB: cfg.RedisDB})
	sessions := httpserver.NewSessionManager(rdb, cfg.SessionTTL)

	// deps
	repo := mongorepo.New(db)
	geo := geocoding.New(cfg.GeocoderRegion, nil)
	images, err := imagestore.New(cfg.ImageBase, cfg.ImageKey, cfg.ImageRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize image store client")
	}
	camps := app.NewCampgroundService(repo, repo, repo, geo, images)
	revs := app.NewReviewService(repo, repo)
	users := app.NewUserService(repo)

	// http
	srv := httpserver.New(sessions)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&httpserver.Handlers{Camps: camps, Revs: revs, Users: users, Images: images, Sess: sessions})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("serving")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
