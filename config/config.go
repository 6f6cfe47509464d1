package config

import (
	"fmt"
	"strings"
	"time"

	"hemstore-gateway/internal/core/domain"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Gateway  GatewayConfig  `mapstructure:"gateway"`
	Relay    RelayConfig    `mapstructure:"relay"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// CredentialConfig is one gateway credential set. Payment and logistics use
// separate key material; either may be left entirely empty to disable the
// corresponding feature.
type CredentialConfig struct {
	Identifier string `mapstructure:"identifier"`
	HashKey    string `mapstructure:"hash_key"`
	HashIV     string `mapstructure:"hash_iv"`
}

// Profile converts the raw config values into a domain credential profile.
func (c CredentialConfig) Profile(purpose domain.CredentialPurpose) domain.CredentialProfile {
	return domain.CredentialProfile{
		Purpose:    purpose,
		Identifier: c.Identifier,
		CipherKey:  c.HashKey,
		CipherIV:   c.HashIV,
	}
}

// GatewayConfig holds everything about the external payment/logistics
// provider: endpoints, callback bases, field-name revision and credentials.
type GatewayConfig struct {
	MPGURL         string           `mapstructure:"mpg_url"`
	StoreMapURL    string           `mapstructure:"store_map_url"`
	NotifyBaseURL  string           `mapstructure:"notify_base_url"`
	ClientBaseURL  string           `mapstructure:"client_base_url"`
	ItemDesc       string           `mapstructure:"item_desc"`
	TradeLimitSec  int              `mapstructure:"trade_limit_sec"`
	CipherEncoding string           `mapstructure:"cipher_encoding"` // hex or base64
	FieldSuffix    string           `mapstructure:"field_suffix"`    // logistics field revision
	Payment        CredentialConfig `mapstructure:"payment"`
	Logistics      CredentialConfig `mapstructure:"logistics"`
}

// RelayConfig controls the store-selection relay ticket.
type RelayConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: HEM_.
// Nested keys use underscore: HEM_DATABASE_HOST, HEM_GATEWAY_MPG_URL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "hemstore")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("gateway.mpg_url", "https://ccore.newebpay.com/MPG/mpg_gateway")
	v.SetDefault("gateway.store_map_url", "https://ccore.newebpay.com/API/Logistic/storeMap")
	v.SetDefault("gateway.notify_base_url", "")
	v.SetDefault("gateway.client_base_url", "")
	v.SetDefault("gateway.item_desc", "Hemstore order")
	v.SetDefault("gateway.trade_limit_sec", 600)
	v.SetDefault("gateway.cipher_encoding", "hex")
	v.SetDefault("gateway.field_suffix", "_")
	v.SetDefault("gateway.payment.identifier", "")
	v.SetDefault("gateway.payment.hash_key", "")
	v.SetDefault("gateway.payment.hash_iv", "")
	v.SetDefault("gateway.logistics.identifier", "")
	v.SetDefault("gateway.logistics.hash_key", "")
	v.SetDefault("gateway.logistics.hash_iv", "")
	v.SetDefault("relay.ttl", "5m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: HEM_DATABASE_HOST -> database.host
	v.SetEnvPrefix("HEM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
