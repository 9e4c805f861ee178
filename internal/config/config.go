package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress     string `env:"RUN_ADDRESS"`
	DatabaseDSN    string `env:"DATABASE_URI"`
	MigrationsDir  string `env:"MIGRATIONS_DIR"`
	JWTUserSecret  string `env:"JWT_USER_SECRET"`
	GatewayBaseURL string `env:"GATEWAY_BASE_URL"`
	GatewayAPIKey  string `env:"GATEWAY_API_KEY"`
	IPNSecret      string `env:"IPN_SECRET"`
	AppURL         string `env:"APP_URL"`
	PackagesFile   string `env:"PACKAGES_FILE"`
}

func LoadConfig() (*Config, error) {
	// .env необязателен, в проде переменные приходят из окружения.
	_ = godotenv.Load()

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTUserSecret == "" {
		return nil, errors.New("JWT secret is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.JWTUserSecret, "j", "", "JWT signing secret")
	flag.StringVar(&flagConfig.GatewayBaseURL, "g", "https://api.nowpayments.io", "Payment gateway base URL")
	flag.StringVar(&flagConfig.GatewayAPIKey, "k", "", "Payment gateway API key")
	flag.StringVar(&flagConfig.IPNSecret, "s", "", "Payment gateway IPN secret")
	flag.StringVar(&flagConfig.AppURL, "u", "http://localhost:8080", "Public URL of this app for IPN callbacks")
	flag.StringVar(&flagConfig.PackagesFile, "p", "", "Investment packages JSON file (empty for built-in tiers)")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:     defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:    defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:  defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTUserSecret:  defaultIfBlank(envConfig.JWTUserSecret, flagsConfig.JWTUserSecret),
		GatewayBaseURL: defaultIfBlank(envConfig.GatewayBaseURL, flagsConfig.GatewayBaseURL),
		GatewayAPIKey:  defaultIfBlank(envConfig.GatewayAPIKey, flagsConfig.GatewayAPIKey),
		IPNSecret:      defaultIfBlank(envConfig.IPNSecret, flagsConfig.IPNSecret),
		AppURL:         defaultIfBlank(envConfig.AppURL, flagsConfig.AppURL),
		PackagesFile:   defaultIfBlank(envConfig.PackagesFile, flagsConfig.PackagesFile),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
