package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Store    StoreConfig    `mapstructure:"store"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Cart     CartConfig     `mapstructure:"cart"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Events   EventsConfig   `mapstructure:"events"`
	Assets   AssetsConfig   `mapstructure:"assets"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port                 int    `mapstructure:"port"`
	Host                 string `mapstructure:"host"`
	MaxRequestsPerSecond int    `mapstructure:"max_requests_per_second"` // 0 disables pacing
	ShutdownTimeout      int    `mapstructure:"shutdown_timeout"`        // Seconds
}

// StoreConfig holds storefront identity and the WhatsApp handoff target
type StoreConfig struct {
	Name             string `mapstructure:"name"`
	Currency         string `mapstructure:"currency"`
	WhatsAppNumber   string `mapstructure:"whatsapp_number"`
	PlaceholderImage string `mapstructure:"placeholder_image"`
	InquiryText      string `mapstructure:"inquiry_text"`
}

// CatalogConfig controls synthetic catalog generation and page sizes
type CatalogConfig struct {
	Seed            int64 `mapstructure:"seed"` // 0 seeds from the clock
	ProductsPerLeaf int   `mapstructure:"products_per_leaf"`
	FeaturedPerLeaf int   `mapstructure:"featured_per_leaf"`
	MinPrice        int   `mapstructure:"min_price"`
	PriceSpan       int   `mapstructure:"price_span"`
	HomeFeatured    int   `mapstructure:"home_featured"`
	CategoryPreview int   `mapstructure:"category_preview"`
}

// CartConfig selects where carts are persisted
type CartConfig struct {
	Backend    string `mapstructure:"backend"` // memory, redis or postgres
	StorageKey string `mapstructure:"storage_key"`
	CookieName string `mapstructure:"cookie_name"`
	TTL        int    `mapstructure:"ttl"` // Seconds, redis backend only; 0 keeps carts forever
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

// DSN is the pgx connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name)
}

// RedisConfig holds Redis connection details
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
}

// Addr is host:port
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// EventsConfig toggles publishing cart and checkout events to Redis streams
type EventsConfig struct {
	Enabled      bool  `mapstructure:"enabled"`
	StreamMaxLen int64 `mapstructure:"stream_max_len"`
}

// AssetsConfig controls the startup check of the placeholder image
type AssetsConfig struct {
	Probe        bool `mapstructure:"probe"`
	ProbeTimeout int  `mapstructure:"probe_timeout"` // Seconds
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// NeedsRedis reports whether any component requires a Redis connection
func (c *Config) NeedsRedis() bool {
	return c.Cart.Backend == "redis" || c.Events.Enabled
}

// Load reads config.yaml from path (or the current directory when empty) with
// environment variable overrides. A missing file falls back to defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	switch c.Cart.Backend {
	case "memory", "redis", "postgres":
	default:
		return fmt.Errorf("unknown cart backend %q", c.Cart.Backend)
	}
	if c.Catalog.ProductsPerLeaf < 0 || c.Catalog.FeaturedPerLeaf < 0 {
		return fmt.Errorf("catalog product counts must not be negative")
	}
	if c.Catalog.HomeFeatured <= 0 || c.Catalog.CategoryPreview <= 0 {
		return fmt.Errorf("catalog.home_featured and catalog.category_preview must be positive")
	}
	if c.Cart.StorageKey == "" {
		return fmt.Errorf("cart.storage_key must not be empty")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.max_requests_per_second", 0)
	v.SetDefault("server.shutdown_timeout", 5)

	v.SetDefault("store.name", "Red Lenic")
	v.SetDefault("store.currency", "ARS")
	v.SetDefault("store.whatsapp_number", "5491136574678")
	v.SetDefault("store.placeholder_image", "https://placehold.co/300x300/e2e8f0/1e40af?text=Producto")
	v.SetDefault("store.inquiry_text", "Hola Red Lenic! Tengo una consulta.")

	v.SetDefault("catalog.seed", 0)
	v.SetDefault("catalog.products_per_leaf", 10)
	v.SetDefault("catalog.featured_per_leaf", 2)
	v.SetDefault("catalog.min_price", 50000)
	v.SetDefault("catalog.price_span", 500000)
	v.SetDefault("catalog.home_featured", 8)
	v.SetDefault("catalog.category_preview", 3)

	v.SetDefault("cart.backend", "memory")
	v.SetDefault("cart.storage_key", "redlenic_cart")
	v.SetDefault("cart.cookie_name", "redlenic_visitor")
	v.SetDefault("cart.ttl", 0)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "storefront")
	v.SetDefault("database.user", "storefront_user")
	v.SetDefault("database.password", "storefront_pass")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.database", 0)

	v.SetDefault("events.enabled", false)
	v.SetDefault("events.stream_max_len", 10000)

	v.SetDefault("assets.probe", false)
	v.SetDefault("assets.probe_timeout", 5)

	v.SetDefault("log.level", "info")
}
