// Package config loads the service configuration from the environment (and an
// optional config file) through viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"fundacoes_backoffice/internal/adapter/persistence/repository"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

const (
	StorageMemory   = "memory"
	StorageDynamoDB = "dynamodb"
)

type Config struct {
	Port            int
	LogLevel        string
	StorageType     string
	Timezone        string
	ShutdownTimeout time.Duration

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	KinesisEndpoint    string
	Tables             repository.Tables
	JobEventsStream    string

	GoogleMapsAPIKey  string
	GoogleMapsTimeout time.Duration

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool
	TestPayerEmail         string
	TestPayerUserID        string

	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int

	OTLPEndpoint string
}

// Defaults registers every key with its default value. Keys are bound to the
// upper-cased env var with dots replaced by underscores (tables.jobs ->
// TABLES_JOBS).
func Defaults(v *viper.Viper) {
	tables := repository.DefaultTables()

	v.SetDefault("port", 8080)
	v.SetDefault("log_level", "info")
	v.SetDefault("storage_type", StorageDynamoDB)
	v.SetDefault("timezone", "America/Sao_Paulo")
	v.SetDefault("shutdown_timeout", 15*time.Second)

	v.SetDefault("aws_region", "us-east-1")
	v.SetDefault("aws_access_key_id", "local")
	v.SetDefault("aws_secret_access_key", "local")
	v.SetDefault("dynamodb_endpoint", "")
	v.SetDefault("kinesis_endpoint", "")
	v.SetDefault("tables.travel_pricing_rules", tables.TravelPricingRules)
	v.SetDefault("tables.settings", tables.Settings)
	v.SetDefault("tables.budgets", tables.Budgets)
	v.SetDefault("tables.jobs", tables.Jobs)
	v.SetDefault("tables.teams", tables.Teams)
	v.SetDefault("tables.clients", tables.Clients)
	v.SetDefault("tables.counters", tables.Counters)
	v.SetDefault("tables.cash_transactions", tables.CashTransactions)
	v.SetDefault("job_events_stream", "")

	v.SetDefault("google_maps_api_key", "")
	v.SetDefault("google_maps_timeout", 10*time.Second)

	v.SetDefault("mercadopago_access_token", "")
	v.SetDefault("payment_gateway_mock", false)
	v.SetDefault("mercadopago_test_payer_email", "")
	v.SetDefault("mercadopago_test_payer_user_id", "")

	v.SetDefault("jwt_secret", "")
	v.SetDefault("jwt_ttl", 12*time.Hour)
	v.SetDefault("bcrypt_cost", bcrypt.DefaultCost)

	v.SetDefault("otel_exporter_otlp_endpoint", "")
}

// New returns a viper instance with defaults and env binding in place.
func New() *viper.Viper {
	v := viper.New()
	Defaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file, if one was set on v, and validates the result.
func Load(v *viper.Viper) (*Config, error) {
	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Port:            v.GetInt("port"),
		LogLevel:        v.GetString("log_level"),
		StorageType:     strings.ToLower(strings.TrimSpace(v.GetString("storage_type"))),
		Timezone:        v.GetString("timezone"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),

		AWSRegion:          v.GetString("aws_region"),
		AWSAccessKeyID:     v.GetString("aws_access_key_id"),
		AWSSecretAccessKey: v.GetString("aws_secret_access_key"),
		DynamoDBEndpoint:   v.GetString("dynamodb_endpoint"),
		KinesisEndpoint:    v.GetString("kinesis_endpoint"),
		Tables: repository.Tables{
			TravelPricingRules: v.GetString("tables.travel_pricing_rules"),
			Settings:           v.GetString("tables.settings"),
			Budgets:            v.GetString("tables.budgets"),
			Jobs:               v.GetString("tables.jobs"),
			Teams:              v.GetString("tables.teams"),
			Clients:            v.GetString("tables.clients"),
			Counters:           v.GetString("tables.counters"),
			CashTransactions:   v.GetString("tables.cash_transactions"),
		},
		JobEventsStream: v.GetString("job_events_stream"),

		GoogleMapsAPIKey:  strings.TrimSpace(v.GetString("google_maps_api_key")),
		GoogleMapsTimeout: v.GetDuration("google_maps_timeout"),

		MercadoPagoAccessToken: strings.TrimSpace(v.GetString("mercadopago_access_token")),
		PaymentGatewayMock:     v.GetBool("payment_gateway_mock"),
		TestPayerEmail:         v.GetString("mercadopago_test_payer_email"),
		TestPayerUserID:        v.GetString("mercadopago_test_payer_user_id"),

		JWTSecret:  v.GetString("jwt_secret"),
		JWTTTL:     v.GetDuration("jwt_ttl"),
		BcryptCost: v.GetInt("bcrypt_cost"),

		OTLPEndpoint: v.GetString("otel_exporter_otlp_endpoint"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageType {
	case StorageMemory, StorageDynamoDB:
	default:
		return fmt.Errorf("invalid STORAGE_TYPE %q (expected memory or dynamodb)", c.StorageType)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("invalid BCRYPT_COST %d", c.BcryptCost)
	}
	if c.JWTTTL <= 0 {
		return fmt.Errorf("invalid JWT_TTL %s", c.JWTTTL)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return nil
}

// Location returns the timezone used to render job titles.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
