package app

import (
	"context"
	"fmt"
	"log/slog"

	httpapp "premium_motors/internal/app/http"
	"premium_motors/internal/config"
	"premium_motors/internal/repository"
	carservice "premium_motors/internal/services/car_service"
	catalogservice "premium_motors/internal/services/catalog_service"
	exportservice "premium_motors/internal/services/export_service"
	leadservice "premium_motors/internal/services/lead_service"
	mediaservice "premium_motors/internal/services/media_service"
	plateservice "premium_motors/internal/services/plate_service"
	postservice "premium_motors/internal/services/post_service"
	siteservice "premium_motors/internal/services/site_service"
	tokenservice "premium_motors/internal/services/token_service"
	userservice "premium_motors/internal/services/user_service"
	filestorage "premium_motors/internal/storage/filestorage"
	redisapp "premium_motors/internal/storage/redis"
	transport "premium_motors/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server
	repo       *repository.Repository
	redis      *redisapp.Client
}

func New(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	const op = "app.New"

	repo, err := repository.NewRepository(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	redisClient := redisapp.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisClient.HealthCheck(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	fileStorage, uploadsDir, err := buildFileStorage(cfg.FileStorage)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	tokenRepo := repository.NewRedisTokenRepo(redisClient)

	routers := transport.NewRouter(
		log,
		catalogservice.NewCatalogService(log, repo.Car),
		carservice.NewCarService(log, repo.Car, fileStorage),
		leadservice.NewLeadService(log, repo.Lead, repo.Car),
		exportservice.NewExportService(log, repo.Car),
		plateservice.NewPlateService(log, cfg.PlateAPI.BaseURL, cfg.PlateAPI.Token, cfg.PlateAPI.Timeout, cfg.PlateAPI.CacheTTL),
		postservice.NewPostService(log, repo.Post),
		userservice.NewUserService(log, repo.User),
		tokenservice.NewTokenService(tokenRepo, cfg.TokenSecret),
		siteservice.NewSiteService(log, repo.Carousel, repo.Script, repo.Settings, fileStorage),
		mediaservice.NewMediaService(log, fileStorage, cfg.FileStorage.MaxSize),
	)

	server := httpapp.New(log, cfg.TokenSecret, cfg.HTTP.Host, cfg.HTTP.Port, uploadsDir, routers)

	return &App{
		HTTPServer: server,
		repo:       repo,
		redis:      redisClient,
	}, nil
}

// buildFileStorage picks the storage backend once at startup. The second
// return value is the directory to serve statically, empty for object storage.
func buildFileStorage(cfg config.FileStorageConfig) (filestorage.FileStorage, string, error) {
	if cfg.Backend == "s3" {
		fs, err := filestorage.NewObjectStorage(
			cfg.S3.Endpoint,
			cfg.S3.AccessKey,
			cfg.S3.SecretKey,
			cfg.S3.Bucket,
			cfg.S3.PublicURL,
			cfg.S3.UseSSL,
		)
		if err != nil {
			return nil, "", err
		}
		return fs, "", nil
	}

	fs, err := filestorage.NewLocalFileStorage(cfg.BaseDir, cfg.BaseURL)
	if err != nil {
		return nil, "", err
	}
	return fs, cfg.BaseDir, nil
}

func (a *App) Stop() error {
	if err := a.HTTPServer.Stop(); err != nil {
		return err
	}

	a.repo.Close()

	return a.redis.Close()
}
