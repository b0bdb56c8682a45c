package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "CUADERNO"

type Config struct {
	Env       string          `mapstructure:"env"`
	Service   ServiceConfig   `mapstructure:"service"`
	Server    ServerConfig    `mapstructure:"http_server"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Pg        PgConfig        `mapstructure:"postgres"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Clerk     ClerkConfig     `mapstructure:"clerk"`
	Billing   BillingConfig   `mapstructure:"billing"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

type ServiceConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

type ServerConfig struct {
	Host        string        `mapstructure:"host"`
	Port        int           `mapstructure:"port"`
	Timeout     time.Duration `mapstructure:"timeout"`
	CORSOrigins []string      `mapstructure:"cors_origins"`
}

// StorageConfig selects the subscription store: memory, postgres or redis.
type StorageConfig struct {
	Driver string `mapstructure:"driver"`
}

type PgConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Db       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"sslmode"`
}

// URL renders a postgres:// connection string usable by pgx and golang-migrate.
func (p PgConfig) URL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(p.User, p.Password),
		Host:   p.Host + ":" + strconv.Itoa(p.Port),
		Path:   "/" + p.Db,
	}
	if p.SSLMode != "" {
		u.RawQuery = "sslmode=" + url.QueryEscape(p.SSLMode)
	}
	return u.String()
}

type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

type ClerkConfig struct {
	APIURL    string `mapstructure:"api_url"`
	SecretKey string `mapstructure:"secret_key"`
	// JWTPublicKey - PEM key used to verify session tokens; empty disables verification
	JWTPublicKey      string   `mapstructure:"jwt_public_key"`
	AuthorizedParties []string `mapstructure:"authorized_parties"`
}

type BillingConfig struct {
	PortalURL string `mapstructure:"portal_url"`
}

// RateLimitConfig - token bucket per process; RPS <= 0 disables limiting
type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("service.name", "cuaderno-api")
	v.SetDefault("service.version", "0.1.0")
	v.SetDefault("http_server.host", "localhost")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.timeout", 5*time.Second)
	v.SetDefault("http_server.cors_origins", []string{})
	v.SetDefault("storage.driver", "memory")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.db", "")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "cuaderno:subscription:")
	v.SetDefault("clerk.api_url", "https://api.clerk.com")
	v.SetDefault("clerk.secret_key", "")
	v.SetDefault("clerk.jwt_public_key", "")
	v.SetDefault("clerk.authorized_parties", []string{})
	v.SetDefault("billing.portal_url", "")
	v.SetDefault("rate_limit.rps", 0)
	v.SetDefault("rate_limit.burst", 0)
	v.SetDefault("metrics.enabled", true)
}

func resolvePath(cwd, p string) string {
	if p == "" {
		return ""
	}
	if filepath.IsAbs(p) {
		return p
	}
	if up, ok := findUp(cwd, p, 8); ok {
		return up
	}
	return filepath.Join(cwd, p)
}

func findUp(start, rel string, max int) (string, bool) {
	dir := start
	for i := 0; i <= max; i++ {
		p := filepath.Join(dir, rel)
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false
}

// LoadConfig reads .env (ENV_FILE or .env/local.env), then the YAML file
// (CONFIG_PATH or configs/local.yaml) with ${VAR} expansion. CUADERNO_* variables
// override both, e.g. CUADERNO_HTTP_SERVER_PORT. Without a YAML file only
// defaults and environment are used.
func LoadConfig() (*Config, error) {
	cwd, _ := os.Getwd()

	// 1) .env
	envPath := os.Getenv("ENV_FILE")
	if envPath == "" {
		if up, ok := findUp(cwd, ".env/local.env", 8); ok {
			envPath = up
		}
	} else {
		envPath = resolvePath(cwd, envPath)
	}
	if envPath != "" {
		if err := godotenv.Overload(envPath); err != nil {
			return nil, fmt.Errorf("load env file: %w", err)
		}
	}

	// 2) YAML
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		if up, ok := findUp(cwd, "configs/local.yaml", 8); ok {
			path = up
		}
	} else {
		path = resolvePath(cwd, path)
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		expanded := os.ExpandEnv(string(raw))
		if err := v.ReadConfig(strings.NewReader(expanded)); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
