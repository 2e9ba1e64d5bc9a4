package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/quintech/quintech-backend/api/controllers"
	"github.com/quintech/quintech-backend/api/routes"
	"github.com/quintech/quintech-backend/internal/accounts"
	"github.com/quintech/quintech-backend/internal/auth"
	"github.com/quintech/quintech-backend/internal/media"
	"github.com/quintech/quintech-backend/internal/notifications"
	"github.com/quintech/quintech-backend/internal/profiles"
	"github.com/quintech/quintech-backend/pkg/auth/session"
	"github.com/quintech/quintech-backend/pkg/config"
	"github.com/quintech/quintech-backend/pkg/db"
	"github.com/quintech/quintech-backend/pkg/logger"
	"github.com/quintech/quintech-backend/pkg/migrate"
	"github.com/quintech/quintech-backend/pkg/redis"
	"github.com/quintech/quintech-backend/pkg/storage/gcs"
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

	gcsClient, err := gcs.NewClient(context.Background(), cfg.GCS, cfg.GCP, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap gcs", err)
		os.Exit(1)
	}
	defer func() {
		if err := gcsClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing gcs client", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	accountRepo := accounts.NewRepository(dbClient.DB())
	profileRepo := profiles.NewRepository(dbClient.DB())
	notificationRepo := notifications.NewRepository(dbClient.DB())

	registerService, err := auth.NewRegisterService(auth.RegisterServiceParams{
		AccountRepo:    accountRepo,
		ProfileRepo:    profileRepo,
		SessionManager: sessionManager,
		PasswordConfig: cfg.Password,
		JWTConfig:      cfg.JWT,
		PlaceholderURL: gcsClient.PublicURL(cfg.GCS.PlaceholderObject),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create register service", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(auth.ServiceParams{
		AccountRepo:    accountRepo,
		ProfileRepo:    profileRepo,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	profileService, err := profiles.NewService(profiles.ServiceParams{
		ProfileRepo:      profileRepo,
		NotificationRepo: notificationRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create profile service", err)
		os.Exit(1)
	}

	mediaService, err := media.NewService(media.ServiceParams{
		Storage:     gcsClient,
		ProfileRepo: profileRepo,
		MaxUploadMB: cfg.Media.MaxUploadMB,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create media service", err)
		os.Exit(1)
	}

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
			Config:          cfg,
			Logger:          logg,
			RedisClient:     redisClient,
			SessionManager:  sessionManager,
			RegisterService: registerService,
			AuthService:     authService,
			ProfileService:  profileService,
			MediaService:    mediaService,
			ReadyChecks: map[string]controllers.Pinger{
				"db":    dbClient,
				"redis": redisClient,
				"gcs":   gcsClient,
			},
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
