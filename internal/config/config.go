package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Supported subscriber directory drivers.
const (
	DirectoryDriverPostgres = "postgres"
	DirectoryDriverHTTP     = "http"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// background workers, subscriber enrollment, the subscriber directory, the
// topic cache and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins restricts CORS to the listed origins; empty allows any origin
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
		// MaxBodyBytes caps the size of request bodies accepted by the API
		MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" env-default:"1048576" yaml:"maxBodyBytes"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"topics" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
		// InsertChunkSize is the maximum number of enrollment links written per INSERT statement
		InsertChunkSize int `env:"DATABASE_INSERT_CHUNK_SIZE" env-default:"500" yaml:"insertChunkSize"`
	} `yaml:"database"`

	// JWT holds the RSA key pair used to verify API tokens and to issue them from the CLI
	JWT struct {
		// PublicKey is the PEM encoded RSA public key used to verify bearer tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded RSA private key used by the jwt command
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// TTL is the lifetime of tokens issued by the jwt command
		TTL time.Duration `env:"JWT_TTL" env-default:"24h" yaml:"ttl"`
	} `yaml:"jwt"`

	// Worker configures the background job workers
	Worker struct {
		// MaxWorkers is the number of enrollment jobs processed concurrently
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
		// MaxAttempts is the maximum number of attempts for an enrollment job
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// JobTimeout bounds a single enrollment job
		JobTimeout time.Duration `env:"WORKER_JOB_TIMEOUT" env-default:"5m" yaml:"jobTimeout"`
		// RateLimitBackoff is how long a job waits after the directory rate limited it
		RateLimitBackoff time.Duration `env:"WORKER_RATE_LIMIT_BACKOFF" env-default:"30s" yaml:"rateLimitBackoff"`
	} `yaml:"worker"`

	// Enrollment configures subscriber enrollment
	Enrollment struct {
		// ProvisionalNamePrefix is prepended to the key of topics created on first reference
		ProvisionalNamePrefix string `env:"ENROLLMENT_PROVISIONAL_NAME_PREFIX" env-default:"Topic-On-The-Fly-" yaml:"provisionalNamePrefix"` //nolint: lll
		// MaxSubscribers caps the number of identities accepted per request; 0 disables the cap
		MaxSubscribers int `env:"ENROLLMENT_MAX_SUBSCRIBERS" env-default:"10000" yaml:"maxSubscribers"`
	} `yaml:"enrollment"`

	// Directory configures where subscribers are looked up
	Directory struct {
		// Driver selects the directory implementation: "postgres" or "http"
		Driver string `env:"DIRECTORY_DRIVER" env-default:"postgres" yaml:"driver"`
		// BaseURL is the address of the remote directory when Driver is "http"
		BaseURL string `env:"DIRECTORY_BASE_URL" yaml:"baseURL"`
		// Token is sent as a bearer token to the remote directory
		Token string `env:"DIRECTORY_TOKEN" yaml:"token"`
		// Timeout bounds a single remote directory request
		Timeout time.Duration `env:"DIRECTORY_TIMEOUT" env-default:"10s" yaml:"timeout"`
		// BatchSize is the number of identities sent per remote search request
		BatchSize int `env:"DIRECTORY_BATCH_SIZE" env-default:"100" yaml:"batchSize"`
	} `yaml:"directory"`

	// Redis configures the optional topic cache
	Redis struct {
		// Enabled turns the topic cache on
		Enabled bool `env:"REDIS_ENABLED" env-default:"false" yaml:"enabled"`
		// Addr is the host:port of the Redis server
		Addr string `env:"REDIS_ADDR" env-default:"localhost:6379" yaml:"addr"`
		// Password for Redis authentication
		Password string `env:"REDIS_PASSWORD" yaml:"password"`
		// DB is the Redis logical database
		DB int `env:"REDIS_DB" env-default:"0" yaml:"db"`
		// TTL is how long topics stay cached
		TTL time.Duration `env:"REDIS_TTL" env-default:"10m" yaml:"ttl"`
	} `yaml:"redis"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.Directory.Driver {
	case DirectoryDriverPostgres:
	case DirectoryDriverHTTP:
		if cfg.Directory.BaseURL == "" {
			return errors.New("directory.baseURL is required for the http directory driver")
		}
	default:
		return fmt.Errorf("unknown directory driver %q", cfg.Directory.Driver)
	}
	if cfg.Database.InsertChunkSize <= 0 {
		return errors.New("database.insertChunkSize must be positive")
	}
	if cfg.Enrollment.MaxSubscribers < 0 {
		return errors.New("enrollment.maxSubscribers must not be negative")
	}

	return nil
}
