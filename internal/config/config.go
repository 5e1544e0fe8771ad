package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Catalog CatalogConfig
	Order   OrderConfig
	Log     LogConfig
}

type CatalogConfig struct {
	Port int
}

type OrderConfig struct {
	Port              int
	CatalogURL        string
	ValidationTimeout time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("CATALOG_PORT", 8001)
	viper.SetDefault("ORDER_PORT", 8002)
	viper.SetDefault("CATALOG_URL", "http://localhost:8001")
	viper.SetDefault("VALIDATION_TIMEOUT", "5s")
	viper.SetDefault("LOG_LEVEL", "info")

	validationTimeout, err := time.ParseDuration(viper.GetString("VALIDATION_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Catalog: CatalogConfig{
			Port: viper.GetInt("CATALOG_PORT"),
		},
		Order: OrderConfig{
			Port:              viper.GetInt("ORDER_PORT"),
			CatalogURL:        viper.GetString("CATALOG_URL"),
			ValidationTimeout: validationTimeout,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}
