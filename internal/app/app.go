// Package app wires configuration into the repositories and services shared
// by the server and the terminal client.
package app

import (
	"fmt"
	"log/slog"

	"frent-client/internal/api"
	"frent-client/internal/authz"
	"frent-client/internal/cache"
	"frent-client/internal/config"
	"frent-client/internal/database"
	"frent-client/internal/queue"
	"frent-client/internal/repository"
	"frent-client/internal/service"
	"frent-client/internal/storage"
)

// Options selects the optional parts of the graph.
type Options struct {
	// QueueWarnings sends due-date warnings through a worker pool instead of
	// inline. The caller must Start and Stop App.Processor.
	QueueWarnings bool
}

// App holds the wired dependency graph.
type App struct {
	Config     *config.Config
	Logger     *slog.Logger
	Client     *api.Client
	Cache      cache.Cache
	Views      *cache.Views
	Authorizer authz.Authorizer

	Movies  repository.MovieRepository
	Users   repository.UserRepository
	Rentals repository.RentalRepository

	AuthService       *service.AuthService
	CatalogService    *service.CatalogService
	CollectionService *service.CollectionService
	RentalService     *service.RentalService
	CheckoutService   *service.CheckoutService
	UserAdminService  *service.UserAdminService

	Queue     *queue.MemoryQueue
	Processor *queue.Processor

	closers []func()
}

// New builds the graph. Redis, Mongo and S3 are optional: an empty address
// falls back to the in-process cache, or disables the journal or uploads.
func New(cfg *config.Config, logger *slog.Logger, opts Options) (*App, error) {
	a := &App{Config: cfg, Logger: logger}

	client, err := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, logger)
	if err != nil {
		return nil, err
	}
	a.Client = client

	if cfg.RedisURI != "" {
		redisCache, err := cache.NewRedis(cfg.RedisURI, logger)
		if err != nil {
			return nil, err
		}
		a.Cache = redisCache
		a.closers = append(a.closers, redisCache.Close)
	} else {
		a.Cache = cache.NewMemory()
	}
	a.Views = cache.NewViews(a.Cache, cfg.ViewCacheTTL, logger)

	var journal repository.SagaLogRepository
	if cfg.JournalEnabled() {
		mongoDB, err := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase, logger)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, mongoDB.Close)
		journal = repository.NewSagaLogRepository(mongoDB.Database)
	}

	var store storage.Storage
	if cfg.StorageEnabled() {
		s3Client, err := storage.NewS3Client(storage.Options{
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			UseSSL:    cfg.S3UseSSL,
			PublicURL: cfg.S3PublicURL,
		}, logger)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to configure artwork storage: %w", err)
		}
		store = s3Client
	}

	// Repository layer
	authRepo := repository.NewAuthRepository(client)
	a.Movies = repository.NewMovieRepository(client)
	a.Users = repository.NewUserRepository(client)
	a.Rentals = repository.NewRentalRepository(client)

	// Authorization
	a.Authorizer = authz.NewLocalAuthorizer()

	var warnings queue.Queue
	if opts.QueueWarnings {
		a.Queue = queue.NewMemoryQueue(cfg.WarningQueueCapacity)
		a.Processor = queue.NewProcessor(a.Queue, a.Rentals, cfg.WarningWorkers, logger)
		warnings = a.Queue
	}

	// Service layer
	a.AuthService = service.NewAuthService(authRepo)
	a.CatalogService = service.NewCatalogService(a.Movies, store, a.Authorizer, logger)
	a.CollectionService = service.NewCollectionService(a.Users, a.Movies, a.Views, a.Authorizer, logger)
	a.RentalService = service.NewRentalService(a.Rentals, a.Movies, a.Views, a.Authorizer, warnings, logger)
	a.CheckoutService = service.NewCheckoutService(a.Users, a.Movies, a.Rentals, journal, a.Views, a.Authorizer, logger)
	a.UserAdminService = service.NewUserAdminService(a.Users, a.Authorizer, logger)

	return a, nil
}

// Close releases connections in reverse order of creation.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
