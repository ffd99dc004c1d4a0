// Package config resolves runtime settings: document paths and the listen
// address for the form UI.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config carries everything main needs to wire the application.
type Config struct {
	SalesFile     string `mapstructure:"sales_file"`
	InventoryFile string `mapstructure:"inventory_file"`
	ListenAddr    string `mapstructure:"listen_addr"`
}

// Load reads an optional ejwireless.yaml from the working directory, with
// EJWIRELESS_* environment variables taking precedence. A missing config
// file is fine.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("sales_file", "sales_records.json")
	v.SetDefault("inventory_file", "inventory.json")
	v.SetDefault("listen_addr", ":8081")

	v.SetConfigName("ejwireless")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("EJWIRELESS")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
