package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"midnightsoldiers-backend/internal/config"
	"midnightsoldiers-backend/internal/domains/artist"
	"midnightsoldiers-backend/internal/domains/contact"
	"midnightsoldiers-backend/internal/domains/reel"
	"midnightsoldiers-backend/internal/domains/submission"
	"midnightsoldiers-backend/internal/domains/subscription"
	"midnightsoldiers-backend/internal/domains/user"
	"midnightsoldiers-backend/internal/domains/video"
	infraCache "midnightsoldiers-backend/internal/infrastructure/cache"
	"midnightsoldiers-backend/internal/infrastructure/database"
	"midnightsoldiers-backend/internal/infrastructure/notifier"
	"midnightsoldiers-backend/internal/infrastructure/storage"
	"midnightsoldiers-backend/pkg/cache"
	"midnightsoldiers-backend/pkg/jwt"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, layer by layer: config, infrastructure,
// repositories, services, handlers.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Store      database.DocumentStore
	Cache      cache.Cache
	Storage    *storage.MinIOStorage
	Images     *storage.ImageProcessor
	Notifier   notifier.Notifier
	JWTManager *jwt.Manager

	Tracker  *submission.Tracker
	Pipeline *submission.Pipeline

	ArtistRepo       artist.Repository
	ReelRepo         reel.Repository
	VideoRepo        video.Repository
	SubscriptionRepo subscription.Repository
	ContactRepo      contact.Repository
	UserRepo         user.Repository

	ArtistService       artist.Service
	ReelService         reel.Service
	VideoService        video.Service
	SubscriptionService subscription.Service
	ContactService      contact.Service
	UserService         user.Service

	ArtistHandler       *artist.Handler
	ReelHandler         *reel.Handler
	VideoHandler        *video.Handler
	SubscriptionHandler *subscription.Handler
	ContactHandler      *contact.Handler
	UserHandler         *user.Handler
	SubmissionHandler   *submission.Handler
}

// NewContainer builds and wires the whole application. Initialization
// order matters: config first, then infrastructure, then the domain
// layers on top of it.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	// Seed the admin account when configured. Non-fatal: login simply
	// fails until the account exists.
	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := c.UserService.EnsureAdmin(seedCtx); err != nil {
		log.Printf("⚠️  Admin seeding failed (non-critical): %v", err)
	}

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

func (c *Container) initInfrastructure() error {
	log.Println("🗄️  Connecting to PostgreSQL...")

	db := database.NewPostgresDB(c.Config.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(ctx, db.Pool); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	c.DB = db
	c.Store = database.NewDocumentStore(db.Pool)
	log.Println("✅ Database connected")

	log.Println("🔴 Connecting to Redis...")
	redisCache := infraCache.NewRedisCache(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			// Redis failure is not critical, the app degrades to
			// uncached listings and unthrottled logins.
			log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
		} else {
			log.Println("✅ Redis connected")
		}
	}
	c.Cache = redisCache

	log.Println("📦 Connecting to MinIO...")
	store, err := storage.NewMinIOStorage(c.Config.MinIO)
	if err != nil {
		return fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = store
	c.Images = storage.NewImageProcessor()
	log.Println("✅ Object storage ready")

	c.Notifier = notifier.NewClient(c.Config.Notifier)
	c.JWTManager = jwt.NewManager(c.Config.JWT.Secret, c.Config.JWT.AccessTokenExpiry)

	c.Tracker = submission.NewTracker()
	c.Pipeline = submission.NewPipeline(c.Tracker, c.Config.Upload.StageTimeout)

	return nil
}

func (c *Container) initRepositories() {
	c.ArtistRepo = artist.NewRepository(c.Store, c.Cache)
	c.ReelRepo = reel.NewRepository(c.Store)
	c.VideoRepo = video.NewRepository(c.Store)
	c.SubscriptionRepo = subscription.NewRepository(c.Store)
	c.ContactRepo = contact.NewRepository(c.Store)
	c.UserRepo = user.NewRepository(c.Store)
}

func (c *Container) initServices() {
	upload := c.Config.Upload

	c.ArtistService = artist.NewService(c.ArtistRepo, c.Storage, c.Images, c.Pipeline, upload.MaxWorkImages)
	c.ReelService = reel.NewService(c.ReelRepo, c.Storage, c.Notifier, c.Pipeline, upload.MaxVideoMB)
	c.VideoService = video.NewService(c.VideoRepo, c.Storage, c.Notifier, c.Pipeline, upload.MaxVideoMB)
	c.SubscriptionService = subscription.NewService(c.SubscriptionRepo)
	c.ContactService = contact.NewService(c.ContactRepo)
	c.UserService = user.NewService(c.UserRepo, c.Cache, c.JWTManager, c.Config.Auth)
}

func (c *Container) initHandlers() {
	c.ArtistHandler = artist.NewHandler(c.ArtistService, c.Config.Upload.MaxWorkImages)
	c.ReelHandler = reel.NewHandler(c.ReelService)
	c.VideoHandler = video.NewHandler(c.VideoService)
	c.SubscriptionHandler = subscription.NewHandler(c.SubscriptionService)
	c.ContactHandler = contact.NewHandler(c.ContactService)
	c.UserHandler = user.NewHandler(c.UserService)
	c.SubmissionHandler = submission.NewHandler(c.Tracker)
}

// Cleanup releases infrastructure resources during graceful shutdown.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("✅ Database connections closed")
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("⚠️  Failed to close Redis: %v", err)
			} else {
				log.Println("✅ Redis connections closed")
			}
		}
	}

	log.Println("✅ Container cleanup completed")
}
