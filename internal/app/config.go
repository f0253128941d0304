package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/support371/Asset-Packet/internal/data/db"
	"github.com/support371/Asset-Packet/internal/observability"
	"github.com/support371/Asset-Packet/internal/platform/logger"
	"github.com/support371/Asset-Packet/internal/services"
	"github.com/support371/Asset-Packet/internal/utils"
)

type DatabaseConfig struct {
	Driver     string `yaml:"driver"`
	Host       string `yaml:"host"`
	Port       string `yaml:"port"`
	User       string `yaml:"user"`
	Password   string `yaml:"password"`
	Name       string `yaml:"name"`
	SSLMode    string `yaml:"sslmode"`
	SQLitePath string `yaml:"sqlite_path"`
	MaxOpen    int    `yaml:"max_open_conns"`
	MaxIdle    int    `yaml:"max_idle_conns"`
}

type OtelFileConfig struct {
	Enabled     bool    `yaml:"enabled"`
	ServiceName string  `yaml:"service_name"`
	Endpoint    string  `yaml:"endpoint"`
	Headers     string  `yaml:"headers"`
	Insecure    bool    `yaml:"insecure"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

type Config struct {
	Port        string `yaml:"port"`
	Version     string `yaml:"version"`
	Environment string `yaml:"environment"`

	Database DatabaseConfig `yaml:"database"`

	RedisAddr          string `yaml:"redis_addr"`
	RedisPassword      string `yaml:"redis_password"`
	RedisDB            int    `yaml:"redis_db"`
	PacketCacheTTLSecs int    `yaml:"packet_cache_ttl_seconds"`

	JWTSecretKey string   `yaml:"jwt_secret_key"`
	AuthMode     string   `yaml:"auth_mode"`
	AdminRoles   []string `yaml:"admin_roles"`

	CORSAllowOrigins []string `yaml:"cors_allow_origins"`
	DiagnosticsNodes []string `yaml:"diagnostics_nodes"`
	SeedOnStart      bool     `yaml:"seed_on_start"`

	MetricsEnabled bool   `yaml:"metrics_enabled"`
	MetricsAddr    string `yaml:"metrics_addr"`

	Otel OtelFileConfig `yaml:"otel"`
}

func defaultConfig() Config {
	return Config{
		Port:        "8080",
		Version:     "dev",
		Environment: "development",
		Database: DatabaseConfig{
			Driver:  db.DriverPostgres,
			Host:    "localhost",
			Port:    "5432",
			User:    "postgres",
			Name:    "asset_packet",
			SSLMode: "disable",
		},
		PacketCacheTTLSecs: 30,
		AuthMode:           services.AuthModeJWT,
		AdminRoles:         []string{"super_admin", "admin"},
		MetricsAddr:        ":9090",
		Otel: OtelFileConfig{
			ServiceName: "asset-packet",
			SampleRatio: 1,
		},
	}
}

// LoadConfig layers defaults, the optional YAML file at CONFIG_PATH and
// the environment, in that order.
func LoadConfig(log *logger.Logger) (Config, error) {
	cfg := defaultConfig()
	if path := strings.TrimSpace(os.Getenv("CONFIG_PATH")); path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			return Config{}, err
		}
		log.Info("Loaded config file", "path", path)
	}
	applyEnv(&cfg, log)
	return cfg, nil
}

func loadConfigFile(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config, log *logger.Logger) {
	cfg.Port = utils.GetEnv("PORT", cfg.Port, log)
	cfg.Version = utils.GetEnv("APP_VERSION", cfg.Version, log)
	cfg.Environment = utils.GetEnv("APP_ENV", cfg.Environment, log)

	d := &cfg.Database
	d.Driver = utils.GetEnv("DB_DRIVER", d.Driver, log)
	d.Host = utils.GetEnv("POSTGRES_HOST", d.Host, log)
	d.Port = utils.GetEnv("POSTGRES_PORT", d.Port, log)
	d.User = utils.GetEnv("POSTGRES_USER", d.User, log)
	d.Password = utils.GetEnv("POSTGRES_PASSWORD", d.Password, log)
	d.Name = utils.GetEnv("POSTGRES_NAME", d.Name, log)
	d.SSLMode = utils.GetEnv("POSTGRES_SSLMODE", d.SSLMode, log)
	d.SQLitePath = utils.GetEnv("SQLITE_PATH", d.SQLitePath, log)
	d.MaxOpen = utils.GetEnvAsInt("DB_MAX_OPEN_CONNS", d.MaxOpen, log)
	d.MaxIdle = utils.GetEnvAsInt("DB_MAX_IDLE_CONNS", d.MaxIdle, log)

	cfg.RedisAddr = utils.GetEnv("REDIS_ADDR", cfg.RedisAddr, log)
	cfg.RedisPassword = utils.GetEnv("REDIS_PASSWORD", cfg.RedisPassword, log)
	cfg.RedisDB = utils.GetEnvAsInt("REDIS_DB", cfg.RedisDB, log)
	cfg.PacketCacheTTLSecs = utils.GetEnvAsInt("PACKET_CACHE_TTL_SECONDS", cfg.PacketCacheTTLSecs, log)

	cfg.JWTSecretKey = utils.GetEnv("JWT_SECRET_KEY", cfg.JWTSecretKey, log)
	cfg.AuthMode = utils.GetEnv("AUTH_MODE", cfg.AuthMode, log)
	cfg.AdminRoles = utils.GetEnvAsList("ADMIN_ROLES", cfg.AdminRoles, log)

	cfg.CORSAllowOrigins = utils.GetEnvAsList("CORS_ALLOW_ORIGINS", cfg.CORSAllowOrigins, log)
	cfg.DiagnosticsNodes = utils.GetEnvAsList("DIAGNOSTICS_NODES", cfg.DiagnosticsNodes, log)
	cfg.SeedOnStart = utils.GetEnvAsBool("SEED_ON_START", cfg.SeedOnStart, log)

	cfg.MetricsEnabled = utils.GetEnvAsBool("METRICS_ENABLED", cfg.MetricsEnabled, log)
	cfg.MetricsAddr = utils.GetEnv("METRICS_ADDR", cfg.MetricsAddr, log)

	o := &cfg.Otel
	o.Enabled = utils.GetEnvAsBool("OTEL_ENABLED", o.Enabled, log)
	o.ServiceName = utils.GetEnv("OTEL_SERVICE_NAME", o.ServiceName, log)
	o.Endpoint = utils.GetEnv("OTEL_EXPORTER_OTLP_ENDPOINT", o.Endpoint, log)
	o.Headers = utils.GetEnv("OTEL_EXPORTER_OTLP_HEADERS", o.Headers, log)
	o.Insecure = utils.GetEnvAsBool("OTEL_EXPORTER_OTLP_INSECURE", o.Insecure, log)
	if raw := strings.TrimSpace(utils.GetEnv("OTEL_TRACES_SAMPLER_ARG", "", log)); raw != "" {
		if ratio, err := strconv.ParseFloat(raw, 64); err == nil {
			o.SampleRatio = ratio
		} else {
			log.Warn("Ignoring unparsable OTEL_TRACES_SAMPLER_ARG", "value", raw)
		}
	}
}

func (c Config) DB() db.Config {
	return db.Config{
		Driver:           c.Database.Driver,
		PostgresHost:     c.Database.Host,
		PostgresPort:     c.Database.Port,
		PostgresUser:     c.Database.User,
		PostgresPassword: c.Database.Password,
		PostgresName:     c.Database.Name,
		PostgresSSLMode:  c.Database.SSLMode,
		SQLitePath:       c.Database.SQLitePath,
		MaxOpenConns:     c.Database.MaxOpen,
		MaxIdleConns:     c.Database.MaxIdle,
	}
}

func (c Config) PacketCacheTTL() time.Duration {
	return time.Duration(c.PacketCacheTTLSecs) * time.Second
}

func (c Config) OtelConfig() observability.OtelConfig {
	return observability.OtelConfig{
		Enabled:     c.Otel.Enabled,
		ServiceName: c.Otel.ServiceName,
		Environment: c.Environment,
		Version:     c.Version,
		Endpoint:    c.Otel.Endpoint,
		Headers:     observability.ParseOtelHeaders(c.Otel.Headers),
		Insecure:    c.Otel.Insecure,
		SampleRatio: c.Otel.SampleRatio,
	}
}
