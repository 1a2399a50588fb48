package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/firstcode/wishlist-backend/api/routes"
	"github.com/firstcode/wishlist-backend/internal/auth"
	"github.com/firstcode/wishlist-backend/internal/productentries"
	"github.com/firstcode/wishlist-backend/internal/users"
	"github.com/firstcode/wishlist-backend/internal/wishlists"
	"github.com/firstcode/wishlist-backend/pkg/auth/session"
	"github.com/firstcode/wishlist-backend/pkg/config"
	"github.com/firstcode/wishlist-backend/pkg/db"
	"github.com/firstcode/wishlist-backend/pkg/logger"
	"github.com/firstcode/wishlist-backend/pkg/metrics"
	"github.com/firstcode/wishlist-backend/pkg/migrate"
	"github.com/firstcode/wishlist-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	var sessionChecker session.AccessSessionChecker
	var sessionOpener *session.Manager
	if cfg.Redis.Enabled() {
		redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()

		manager, err := session.NewManager(redisClient, cfg.JWT)
		if err != nil {
			logg.Error(context.Background(), "failed to create session manager", err)
			os.Exit(1)
		}
		sessionChecker = manager
		sessionOpener = manager
	} else {
		logg.Warn(context.Background(), "redis not configured, session revocation disabled")
	}

	authParams := auth.ServiceParams{
		UserRepo:       users.NewRepository(dbClient.DB()),
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	}
	if sessionOpener != nil {
		authParams.SessionManager = sessionOpener
	}
	authService, err := auth.NewService(authParams)
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	wishlistService, err := wishlists.NewService(wishlists.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create wishlist service", err)
		os.Exit(1)
	}

	productEntryService, err := productentries.NewService(productentries.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create product entry service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:              cfg,
			Logger:              logg,
			DB:                  dbClient,
			SessionChecker:      sessionChecker,
			HTTPMetrics:         metrics.NewHTTPMetrics(registry),
			Registry:            registry,
			AuthService:         authService,
			WishlistService:     wishlistService,
			ProductEntryService: productEntryService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
