package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Data     DataConfig     `mapstructure:"data"`
	Currency CurrencyConfig `mapstructure:"currency"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
	IdleTimeout  int    `mapstructure:"idle_timeout"`
}

// DatabaseConfig holds PostgreSQL configuration, used when the data
// backend is "postgres"
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxConns int    `mapstructure:"max_conns"`
}

// JWTConfig holds bearer token configuration
type JWTConfig struct {
	Secret          string `mapstructure:"secret"`
	ExpirationHours int    `mapstructure:"expiration_hours"`
	Issuer          string `mapstructure:"issuer"`
}

// AuthConfig holds session behavior configuration
type AuthConfig struct {
	// LoginDelayMillis simulates backend latency inside login
	LoginDelayMillis int `mapstructure:"login_delay_millis"`
	// SessionFile is where the session record is persisted between runs
	SessionFile string `mapstructure:"session_file"`
	// Verifier selects the credential policy: "demo" or "bcrypt"
	Verifier string `mapstructure:"verifier"`
}

// DataConfig selects the repository backend
type DataConfig struct {
	// Backend is "memory" (seeded demo data) or "postgres"
	Backend string `mapstructure:"backend"`
}

// CurrencyConfig holds the static conversion rate
type CurrencyConfig struct {
	INRToJPY float64 `mapstructure:"inr_to_jpy"`
}

// Load reads configuration from file and environment
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/smartvend")

	// Environment variable overrides
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, use defaults and env vars
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30)
	viper.SetDefault("server.write_timeout", 30)
	viper.SetDefault("server.idle_timeout", 60)

	// Database defaults
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "smartvend")
	viper.SetDefault("database.password", "smartvend")
	viper.SetDefault("database.dbname", "smartvend")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("database.max_conns", 20)

	// JWT defaults
	viper.SetDefault("jwt.secret", "your-super-secret-key-change-in-production")
	viper.SetDefault("jwt.expiration_hours", 24)
	viper.SetDefault("jwt.issuer", "smartvend360")

	// Auth defaults
	viper.SetDefault("auth.login_delay_millis", 1000)
	viper.SetDefault("auth.session_file", "/var/lib/smartvend/session.json")
	viper.SetDefault("auth.verifier", "demo")

	// Data defaults
	viper.SetDefault("data.backend", "memory")

	// Currency defaults
	viper.SetDefault("currency.inr_to_jpy", 1.8)
}

// DSN returns PostgreSQL connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// Addr returns server address
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
