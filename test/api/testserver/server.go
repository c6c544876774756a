//go:build api

// Package testserver provides a fully wired BFF for API integration tests.
package testserver

import (
	"context"
	"time"

	"frent-client/internal/app"
	"frent-client/internal/config"
	"frent-client/internal/handler"
	"frent-client/internal/logger"
	"frent-client/internal/router"
	"frent-client/test/api/testdb"

	"github.com/gin-gonic/gin"
)

const (
	// TestDBName is the journal database used in tests.
	TestDBName = "test_api"
	// TestViewCacheTTL is long enough that only invalidation clears a view.
	TestViewCacheTTL = 10 * time.Minute
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Remote is the fake rental service behind the BFF.
	Remote *Remote

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer
	MinIO   *testdb.MinIOContainer

	// App is the wired graph, for direct service access in tests.
	App *app.App

	cancel context.CancelFunc
}

// New starts the containers and the fake remote, then wires the BFF the way
// cmd/server does.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	// Start containers
	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	minioContainer, err := testdb.SetupMinIO(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		return nil, err
	}

	remote := NewRemote()

	cfg := &config.Config{
		APIBaseURL:           remote.BaseURL(),
		HTTPTimeout:          10 * time.Second,
		RedisURI:             redisContainer.URI,
		ViewCacheTTL:         TestViewCacheTTL,
		MongoURI:             mongoDB.URI,
		MongoDatabase:        TestDBName,
		S3Endpoint:           minioContainer.Endpoint,
		S3AccessKey:          minioContainer.AccessKey,
		S3SecretKey:          minioContainer.SecretKey,
		S3Bucket:             minioContainer.Bucket,
		WarningWorkers:       2,
		WarningQueueCapacity: 16,
	}

	a, err := app.New(cfg, logger.Discard(), app.Options{QueueWarnings: true})
	if err != nil {
		remote.Close()
		_ = minioContainer.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:       handler.NewAuthHandler(a.AuthService),
		MovieHandler:      handler.NewMovieHandler(a.CatalogService),
		CollectionHandler: handler.NewCollectionHandler(a.CollectionService),
		RentalHandler:     handler.NewRentalHandler(a.RentalService),
		CheckoutHandler:   handler.NewCheckoutHandler(a.CheckoutService),
		UserHandler:       handler.NewUserHandler(a.UserAdminService),
		Authorizer:        a.Authorizer,
	})

	procCtx, cancel := context.WithCancel(context.Background())
	a.Processor.Start(procCtx)

	return &TestServer{
		Router:  r,
		Remote:  remote,
		MongoDB: mongoDB,
		Redis:   redisContainer,
		MinIO:   minioContainer,
		App:     a,
		cancel:  cancel,
	}, nil
}

// Cleanup stops the processor, then terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	ts.cancel()
	ts.App.Processor.Stop()
	ts.App.Close()
	ts.Remote.Close()

	if ts.MinIO != nil {
		_ = ts.MinIO.Cleanup(ctx)
	}
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}
