package container

import (
	"context"
	"fmt"
	"time"

	"redlenic/storefront/internal/assets"
	"redlenic/storefront/internal/catalog"
	"redlenic/storefront/internal/checkout"
	"redlenic/storefront/internal/config"
	"redlenic/storefront/internal/queue"
	"redlenic/storefront/internal/repository"
	"redlenic/storefront/internal/server"
	"redlenic/storefront/internal/service"
	"redlenic/storefront/internal/state"
	"redlenic/storefront/internal/view"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config    *config.Config
	Catalog   *catalog.Catalog
	Storage   state.Storage
	Publisher queue.Publisher
	Renderer  *view.Renderer

	Service *service.Service
	Server  *server.Server

	db    *pgxpool.Pool
	redis *redis.Client
}

// New creates a new container with all dependencies initialized
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	container.Catalog = NewCatalog(ctx, cfg)

	if cfg.NeedsRedis() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})

		// Test connection
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			rdb.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Info("✅ Connected to Redis successfully")
		container.redis = rdb
	}

	storage, err := container.newStorage(ctx)
	if err != nil {
		container.Close()
		return nil, err
	}
	container.Storage = storage

	if cfg.Events.Enabled {
		container.Publisher = queue.NewRedisQueue(container.redis, cfg.Events.StreamMaxLen)
		log.Info("✅ Publishing storefront events to Redis streams")
	} else {
		container.Publisher = queue.NewNopPublisher()
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		container.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	container.Renderer = renderer

	formatter := checkout.NewFormatter(cfg.Store.Name, cfg.Store.WhatsAppNumber, cfg.Store.InquiryText)
	settings := view.Settings{
		StoreName:       cfg.Store.Name,
		ContactURL:      "/contact",
		CheckoutURL:     "/checkout",
		HomeFeatured:    cfg.Catalog.HomeFeatured,
		CategoryPreview: cfg.Catalog.CategoryPreview,
	}

	container.Service = service.NewService(
		container.Catalog,
		container.Storage,
		container.Publisher,
		formatter,
		settings,
		cfg.Cart.StorageKey,
	)

	container.Server = server.New(server.Config{
		Host:                 cfg.Server.Host,
		Port:                 cfg.Server.Port,
		CookieName:           cfg.Cart.CookieName,
		MaxRequestsPerSecond: cfg.Server.MaxRequestsPerSecond,
		ShutdownTimeout:      time.Duration(cfg.Server.ShutdownTimeout) * time.Second,
	}, container.Service, container.Renderer)

	return container, nil
}

// NewCatalog generates the catalog described by the configuration, optionally
// checking that the shared product image is reachable first.
func NewCatalog(ctx context.Context, cfg *config.Config) *catalog.Catalog {
	image := cfg.Store.PlaceholderImage
	if cfg.Assets.Probe {
		image = assets.ResolvePlaceholder(ctx, image, time.Duration(cfg.Assets.ProbeTimeout)*time.Second)
	} else if image == "" {
		image = assets.FallbackImage
	}

	opts := catalog.DefaultOptions()
	opts.Seed = cfg.Catalog.Seed
	opts.ProductsPerLeaf = cfg.Catalog.ProductsPerLeaf
	opts.FeaturedPerLeaf = cfg.Catalog.FeaturedPerLeaf
	opts.MinPrice = cfg.Catalog.MinPrice
	opts.PriceSpan = cfg.Catalog.PriceSpan
	opts.PlaceholderImage = image

	return catalog.Generate(opts)
}

func (c *Container) newStorage(ctx context.Context) (state.Storage, error) {
	switch c.Config.Cart.Backend {
	case "redis":
		log.Info("🔄 Storing carts in Redis")
		return state.NewRedisStorage(c.redis, time.Duration(c.Config.Cart.TTL)*time.Second), nil

	case "postgres":
		db, err := pgxpool.New(ctx, c.Config.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
		}
		c.db = db

		repo := repository.NewStateRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("failed to prepare state table: %w", err)
		}
		log.Info("✅ Connected to Postgres successfully")
		return repo, nil

	default:
		log.Info("🔄 Storing carts in memory")
		return state.NewMemoryStorage(), nil
	}
}

// Run serves the storefront until the context is cancelled
func (c *Container) Run(ctx context.Context) error {
	return c.Server.Serve(ctx)
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Info("Shutting down container...")

	if c.db != nil {
		c.db.Close()
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			return fmt.Errorf("failed to close Redis client: %w", err)
		}
	}

	log.Info("Container shut down successfully")
	return nil
}
