package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// this is a pointer so that if someone attempts to use it before loading it will
// panic and force them to load it first.
// it is also private so that it cannot be modified after loading.
var _loaded *Config

// Supported database drivers
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Supported environments
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config is the main configuration structure
type Config struct {
	Common Common `yaml:"common"`
}

// Load loads the configuration following proper precedence: defaults → config file → environment variables
func Load() {
	// Start with defaults
	cfg := defaultConfig
	_loaded = &cfg

	configFile := os.Getenv("USERMGMT_CONFIG_FILE")
	if configFile == "" {
		configFile = "usermanagement.yaml"
	}

	if err := LoadFromFile(configFile); err != nil {
		log.Printf("Failed to load config file: %v, using defaults", err)
	} else {
		log.Printf("Successfully loaded config from file: %s", configFile)
	}

	// Apply environment variable overrides (highest priority)
	ApplyEnvOverrides()
}

// LoadDefault installs the default configuration without reading files or the environment
func LoadDefault() {
	cfg := defaultConfig
	cfg.Common.Http.CorsAllowedOrigins = append([]string(nil), defaultConfig.Common.Http.CorsAllowedOrigins...)
	_loaded = &cfg
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return err
	}

	_loaded = cfg
	return nil
}

// Parse merges YAML values over the defaults without installing the result
func Parse(data []byte) (*Config, error) {
	cfg := defaultConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

// set sane defaults for all of the config options. when loading the config from
// the file, any options that are not set will be set to these defaults.
var defaultConfig = Config{
	Common: Common{
		Environment: EnvProduction,
		Log: logConfig{
			Level:  "info",
			Format: "json",
		},
		Http: httpConfig{
			Host:               "0.0.0.0",
			Port:               8080,
			CorsAllowedOrigins: []string{"https://localhost:7063"},
		},
		Database: databaseConfig{
			Driver:     DriverMemory,
			SQLitePath: "usermanagement.db",
			Postgres: postgresConfig{
				User:               "postgres",
				Password:           "postgres",
				Host:               "localhost",
				Port:               5432,
				Database:           "usermanagement",
				MaxOpenConnections: 10,
			},
			AutoMigrate: true,
		},
		AuditLogs: auditLogsConfig{
			DefaultPageSize: 10,
			MaxPageSize:     100,
		},
	},
}

type Common struct {
	Environment string          `yaml:"environment"`
	Log         logConfig       `yaml:"log"`
	Http        httpConfig      `yaml:"http"`
	Database    databaseConfig  `yaml:"database"`
	AuditLogs   auditLogsConfig `yaml:"audit_logs"`
}

type logConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type httpConfig struct {
	Host               string   `yaml:"host"`
	Port               int      `yaml:"port"`
	CorsAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

// Addr returns the listen address
func (c httpConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type databaseConfig struct {
	Driver      string         `yaml:"driver"`      // "memory", "sqlite" or "postgres"
	SQLitePath  string         `yaml:"sqlite_path"` // file path used by the sqlite driver
	Postgres    postgresConfig `yaml:"postgres"`
	AutoMigrate bool           `yaml:"auto_migrate"` // run migrations on serve startup
}

type postgresConfig struct {
	User               string `yaml:"user"`
	Password           string `yaml:"password"`
	Host               string `yaml:"host"`
	Port               int    `yaml:"port"`
	Database           string `yaml:"database"`
	MaxOpenConnections int    `yaml:"max_open_connections"`
}

func (c postgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		url.QueryEscape(c.User),
		url.QueryEscape(c.Password),
		c.Host,
		c.Port,
		url.QueryEscape(c.Database),
	)
}

type auditLogsConfig struct {
	DefaultPageSize int `yaml:"default_page_size"`
	MaxPageSize     int `yaml:"max_page_size"`
}

// Validate checks the values that have a closed set of options
func (c *Config) Validate() error {
	switch c.Common.Database.Driver {
	case DriverMemory, DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unknown database driver %q - expected memory, sqlite or postgres", c.Common.Database.Driver)
	}

	switch c.Common.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("unknown environment %q - expected development or production", c.Common.Environment)
	}

	if c.Common.Http.Port <= 0 {
		return fmt.Errorf("http port must be positive, got %d", c.Common.Http.Port)
	}

	if c.Common.AuditLogs.DefaultPageSize <= 0 || c.Common.AuditLogs.MaxPageSize < c.Common.AuditLogs.DefaultPageSize {
		return fmt.Errorf("audit_logs page sizes are inconsistent (default %d, max %d)",
			c.Common.AuditLogs.DefaultPageSize, c.Common.AuditLogs.MaxPageSize)
	}

	return nil
}

// IsDevelopment reports whether error details may be exposed to clients
func (c *Config) IsDevelopment() bool {
	return c.Common.Environment == EnvDevelopment
}

// there should be a getter for each top level field in the config struct.
// these getters will panic if the config has not been loaded.

func Logger() logConfig {
	if _loaded == nil {
		panic("config not loaded - call Load() first")
	}
	return _loaded.Common.Log
}

func Http() httpConfig {
	if _loaded == nil {
		panic("config not loaded - call Load() first")
	}
	return _loaded.Common.Http
}

func Database() databaseConfig {
	if _loaded == nil {
		panic("config not loaded - call Load() first")
	}
	return _loaded.Common.Database
}

func AuditLogs() auditLogsConfig {
	if _loaded == nil {
		panic("config not loaded - call Load() first")
	}
	return _loaded.Common.AuditLogs
}

func Get() *Config {
	if _loaded == nil {
		panic("config not loaded - call Load() first")
	}
	return _loaded
}

func ApplyEnvOverrides() {
	if _loaded == nil {
		return
	}

	if env := os.Getenv("USERMGMT_ENVIRONMENT"); env != "" {
		_loaded.Common.Environment = env
	}

	if level := os.Getenv("USERMGMT_LOG_LEVEL"); level != "" {
		_loaded.Common.Log.Level = level
	}
	if format := os.Getenv("USERMGMT_LOG_FORMAT"); format != "" {
		_loaded.Common.Log.Format = format
	}

	if httpHost := os.Getenv("USERMGMT_HTTP_HOST"); httpHost != "" {
		_loaded.Common.Http.Host = httpHost
	}
	if httpPort := os.Getenv("USERMGMT_HTTP_PORT"); httpPort != "" {
		if port, err := strconv.Atoi(httpPort); err == nil {
			_loaded.Common.Http.Port = port
		}
	}
	if origins := os.Getenv("USERMGMT_CORS_ALLOWED_ORIGINS"); origins != "" {
		_loaded.Common.Http.CorsAllowedOrigins = splitList(origins)
	}

	if driver := os.Getenv("USERMGMT_DB_DRIVER"); driver != "" {
		_loaded.Common.Database.Driver = driver
	}
	if path := os.Getenv("USERMGMT_SQLITE_PATH"); path != "" {
		_loaded.Common.Database.SQLitePath = path
	}
	if dbHost := os.Getenv("USERMGMT_DB_HOST"); dbHost != "" {
		_loaded.Common.Database.Postgres.Host = dbHost
	}
	if dbPort := os.Getenv("USERMGMT_DB_PORT"); dbPort != "" {
		if port, err := strconv.Atoi(dbPort); err == nil {
			_loaded.Common.Database.Postgres.Port = port
		}
	}
	if dbUser := os.Getenv("USERMGMT_DB_USER"); dbUser != "" {
		_loaded.Common.Database.Postgres.User = dbUser
	}
	if dbPassword := os.Getenv("USERMGMT_DB_PASSWORD"); dbPassword != "" {
		_loaded.Common.Database.Postgres.Password = dbPassword
	}
	if dbName := os.Getenv("USERMGMT_DB_NAME"); dbName != "" {
		_loaded.Common.Database.Postgres.Database = dbName
	}
	if autoMigrate := os.Getenv("USERMGMT_DB_AUTO_MIGRATE"); autoMigrate != "" {
		if enabled, err := strconv.ParseBool(autoMigrate); err == nil {
			_loaded.Common.Database.AutoMigrate = enabled
		}
	}
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
