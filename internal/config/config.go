package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Storage StorageConfig
	Parser  ParserConfig
	Log     LogConfig
	CORS    CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// StorageConfig holds local file storage settings.
type StorageConfig struct {
	DataDir       string `mapstructure:"data_dir"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
}

// MaxFileSizeBytes returns the upload size limit in bytes.
func (s *StorageConfig) MaxFileSizeBytes() int64 {
	return s.MaxFileSizeMB * 1024 * 1024
}

// ParserConfig holds the external resume parser API settings.
type ParserConfig struct {
	URL         string `mapstructure:"url"`
	SecretID    string `mapstructure:"secret_id"`
	SecretKey   string `mapstructure:"secret_key"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
	NeedAvatar  bool   `mapstructure:"need_avatar"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the RESUMEHUB_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("RESUMEHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "resumehub")
	v.SetDefault("db.password", "resumehub_secret")
	v.SetDefault("db.name", "resumehub_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Storage defaults
	v.SetDefault("storage.data_dir", "./data")
	v.SetDefault("storage.max_file_size_mb", 100)

	// Parser defaults
	v.SetDefault("parser.url", "")
	v.SetDefault("parser.secret_id", "")
	v.SetDefault("parser.secret_key", "")
	v.SetDefault("parser.timeout_secs", 60)
	v.SetDefault("parser.need_avatar", false)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "RESUMEHUB_SERVER_PORT",
		"server.read_timeout":      "RESUMEHUB_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "RESUMEHUB_SERVER_WRITE_TIMEOUT",
		"server.environment":       "RESUMEHUB_SERVER_ENVIRONMENT",
		"db.host":                  "RESUMEHUB_DB_HOST",
		"db.port":                  "RESUMEHUB_DB_PORT",
		"db.user":                  "RESUMEHUB_DB_USER",
		"db.password":              "RESUMEHUB_DB_PASSWORD",
		"db.name":                  "RESUMEHUB_DB_NAME",
		"db.sslmode":               "RESUMEHUB_DB_SSLMODE",
		"db.max_open":              "RESUMEHUB_DB_MAX_OPEN",
		"db.max_idle":              "RESUMEHUB_DB_MAX_IDLE",
		"storage.data_dir":         "RESUMEHUB_STORAGE_DATA_DIR",
		"storage.max_file_size_mb": "RESUMEHUB_STORAGE_MAX_FILE_SIZE_MB",
		"parser.url":               "RESUMEHUB_PARSER_URL",
		"parser.secret_id":         "RESUMEHUB_PARSER_SECRET_ID",
		"parser.secret_key":        "RESUMEHUB_PARSER_SECRET_KEY",
		"parser.timeout_secs":      "RESUMEHUB_PARSER_TIMEOUT_SECS",
		"parser.need_avatar":       "RESUMEHUB_PARSER_NEED_AVATAR",
		"log.level":                "RESUMEHUB_LOG_LEVEL",
		"log.format":               "RESUMEHUB_LOG_FORMAT",
		"cors.allowed_origins":     "RESUMEHUB_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if RESUMEHUB_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("RESUMEHUB_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Storage = StorageConfig{
		DataDir:       v.GetString("storage.data_dir"),
		MaxFileSizeMB: v.GetInt64("storage.max_file_size_mb"),
	}
	cfg.Parser = ParserConfig{
		URL:         v.GetString("parser.url"),
		SecretID:    v.GetString("parser.secret_id"),
		SecretKey:   v.GetString("parser.secret_key"),
		TimeoutSecs: v.GetInt("parser.timeout_secs"),
		NeedAvatar:  v.GetBool("parser.need_avatar"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
