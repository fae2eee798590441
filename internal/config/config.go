package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from the environment
// and, optionally, a YAML file.
type Config struct {
	ServerPort  string   `yaml:"server_port" env:"SERVER_PORT" env-default:"8080"`
	CORSOrigins []string `yaml:"cors_origins" env:"CORS_ORIGINS" env-separator:"," env-default:"*"`
	SwaggerHost string   `yaml:"swagger_host" env:"SWAGGER_HOST"`
	ResetDB     bool     `yaml:"reset_db" env:"RESET_DB" env-default:"false"`

	DB    DB    `yaml:"db"`
	Redis Redis `yaml:"redis"`
	Auth  Auth  `yaml:"auth"`
	Log   Log   `yaml:"log"`
}

// DB configures the MySQL connection pool.
type DB struct {
	DSN             string        `yaml:"dsn" env:"MYSQL_DSN" env-default:"root@tcp(localhost:3306)/kitesurfschool?charset=utf8mb4&parseTime=True&loc=UTC"`
	MaxOpenConns    int           `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns    int           `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS" env-default:"10"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"30m"`
	// Timeout bounds every service level database operation.
	Timeout time.Duration `yaml:"timeout" env:"DB_TIMEOUT" env-default:"5s"`
}

// Redis configures the optional cache. An unreachable redis behaves like a cache miss.
type Redis struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
}

// Auth configures credentials and sessions.
type Auth struct {
	JWTSecret      string        `yaml:"jwt_secret" env:"JWT_SECRET"`
	SessionTTL     time.Duration `yaml:"session_ttl" env:"SESSION_TTL" env-default:"24h"`
	BcryptCost     int           `yaml:"bcrypt_cost" env:"BCRYPT_COST" env-default:"12"`
	LoginRateLimit float64       `yaml:"login_rate_limit" env:"LOGIN_RATE_LIMIT" env-default:"5"`
}

// Log configures the zap logger.
type Log struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Dev   bool   `yaml:"dev" env:"LOG_DEV" env-default:"false"`
}

// Load builds Config. A .env file in the working directory is honoured when
// present; when path is non-empty the YAML file is read first and environment
// variables override it.
func Load(path string) (*Config, error) {
	// best effort: real environment wins, missing .env is fine
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad is Load that panics on error, for use in main packages.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func (c *Config) validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.DB.Timeout <= 0 {
		return fmt.Errorf("DB_TIMEOUT must be positive")
	}
	return nil
}
