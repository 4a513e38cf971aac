package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreBolt     = "bolt"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	Sources SourcesConfig
	Log     LogConfig
	App     AppConfig
}

type ServerConfig struct {
	Host string
	Port string
}

// Addr devuelve host:port listo para http.Server.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

type StoreConfig struct {
	Driver string
	Path   string // bolt / sqlite
	DSN    string // postgres
	Key    string // slot donde vive la lista de razas del usuario
}

type SourcesConfig struct {
	DogAPIBaseURL    string
	DogAPIKey        string
	PageSize         int
	DogCEOBaseURL    string
	Timeout          time.Duration
	ImageConcurrency int
}

type LogConfig struct {
	Level  string
	Format string
}

type AppConfig struct {
	Name           string
	MaxUploadBytes int64
}

// Load lee la configuración desde env con defaults razonables para uso local.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("BIND_HOST", "127.0.0.1")
	v.SetDefault("PORT", "8080")
	v.SetDefault("STORE_PATH", "./data/petcare.db")
	v.SetDefault("STORE_KEY", "userBreeds")
	v.SetDefault("DB_DSN", "")
	v.SetDefault("DOGAPI_BASE_URL", "https://api.thedogapi.com")
	v.SetDefault("DOGAPI_KEY", "")
	v.SetDefault("BREEDS_PAGE_SIZE", 20)
	v.SetDefault("DOGCEO_BASE_URL", "https://dog.ceo")
	v.SetDefault("REMOTE_TIMEOUT", "8s")
	v.SetDefault("IMAGE_CONCURRENCY", 8)
	v.SetDefault("MAX_UPLOAD_BYTES", 5*1024*1024) // 5MB
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("APP_NAME", "pet-care-scheduler")

	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("BIND_HOST"),
			Port: v.GetString("PORT"),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
			Path:   v.GetString("STORE_PATH"),
			DSN:    v.GetString("DB_DSN"),
			Key:    v.GetString("STORE_KEY"),
		},
		Sources: SourcesConfig{
			DogAPIBaseURL:    v.GetString("DOGAPI_BASE_URL"),
			DogAPIKey:        v.GetString("DOGAPI_KEY"),
			PageSize:         v.GetInt("BREEDS_PAGE_SIZE"),
			DogCEOBaseURL:    v.GetString("DOGCEO_BASE_URL"),
			Timeout:          v.GetDuration("REMOTE_TIMEOUT"),
			ImageConcurrency: v.GetInt("IMAGE_CONCURRENCY"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		App: AppConfig{
			Name:           v.GetString("APP_NAME"),
			MaxUploadBytes: v.GetInt64("MAX_UPLOAD_BYTES"),
		},
	}

	// Sin driver explícito: DB_DSN => Postgres, si no bolt local.
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = StoreBolt
		if strings.TrimSpace(cfg.Store.DSN) != "" {
			cfg.Store.Driver = StorePostgres
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case StoreBolt, StoreSQLite:
		if strings.TrimSpace(c.Store.Path) == "" {
			return fmt.Errorf("config: STORE_PATH required for driver %s", c.Store.Driver)
		}
	case StorePostgres:
		if strings.TrimSpace(c.Store.DSN) == "" {
			return fmt.Errorf("config: DB_DSN required for driver %s", c.Store.Driver)
		}
	case StoreMemory:
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.Store.Driver)
	}

	if strings.TrimSpace(c.Store.Key) == "" {
		return fmt.Errorf("config: STORE_KEY must not be empty")
	}
	if c.Sources.PageSize <= 0 {
		return fmt.Errorf("config: BREEDS_PAGE_SIZE must be positive")
	}
	if c.Sources.Timeout <= 0 {
		return fmt.Errorf("config: REMOTE_TIMEOUT must be positive")
	}
	if c.Sources.ImageConcurrency <= 0 {
		c.Sources.ImageConcurrency = 1
	}
	return nil
}
