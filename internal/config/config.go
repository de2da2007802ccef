package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type AppConfig struct {
	API     *APIConfig     `mapstructure:"api"`
	Gin     *GinConfig     `mapstructure:"gin"`
	Admin   *AdminConfig   `mapstructure:"admin"`
	SignOut *SignOutConfig `mapstructure:"signout"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	JWTSigningKey      string   `mapstructure:"jwt_signing_key"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

// AdminConfig is the placeholder login gate: one credential, no user
// accounts.
type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// SeedPart is one inventory line loaded at startup. The store is
// in-memory only, so the seed is the whole initial state.
type SeedPart struct {
	Name  string `mapstructure:"name"`
	SKU   string `mapstructure:"sku"`
	Stock int    `mapstructure:"stock"`
}

type SignOutConfig struct {
	TeamCount int        `mapstructure:"team_count"`
	SeedParts []SeedPart `mapstructure:"seed_parts"`
}

// Load reads the YAML config at configPath. Environment variables
// override file values (e.g. SIGNOUT_API_PORT overrides api.port).
func Load(configPath string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)

	v.SetEnvPrefix("SIGNOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	var conf AppConfig
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	return &conf, nil
}
