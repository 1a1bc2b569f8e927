package subwayplanner

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// MBTAConfig holds MBTA API client settings. The API key is deliberately
// not part of the file; it comes from the MBTA_API_KEY environment variable.
type MBTAConfig struct {
	BaseURL    string `yaml:"baseURL" validate:"omitempty,url"`
	TimeoutMS  int    `yaml:"timeoutMS" validate:"gte=0"`
	MaxRetries int    `yaml:"maxRetries" validate:"gte=0"`
	BackoffMS  int    `yaml:"backoffMS" validate:"gte=0"`
}

// CacheConfig holds local snapshot cache settings.
type CacheConfig struct {
	Path          string `yaml:"path"`
	MaxAgeMinutes int    `yaml:"maxAgeMinutes" validate:"gte=0"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	MBTA  MBTAConfig  `yaml:"mbta"`
	Cache CacheConfig `yaml:"cache"`
}

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from
// config.yml. A missing file is not an error: defaults cover every field.
func LoadAppConfig() error {
	paths := []string{"config.yml", "./config/config.yml"}
	var cfg AppConfig
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return err
		}
		break
	}
	v := validator.New()
	if err := v.Struct(cfg.MBTA); err != nil {
		return err
	}
	if err := v.Struct(cfg.Cache); err != nil {
		return err
	}
	Config = cfg
	if Config.MBTA.BaseURL == "" {
		Config.MBTA.BaseURL = "https://api-v3.mbta.com"
	}
	if Config.MBTA.TimeoutMS == 0 {
		Config.MBTA.TimeoutMS = 10000
	}
	if Config.MBTA.MaxRetries == 0 {
		Config.MBTA.MaxRetries = 3
	}
	if Config.MBTA.BackoffMS == 0 {
		Config.MBTA.BackoffMS = 300
	}
	if Config.Cache.Path == "" {
		Config.Cache.Path = "subway-snapshot.db"
	}
	if Config.Cache.MaxAgeMinutes == 0 {
		Config.Cache.MaxAgeMinutes = 24 * 60
	}
	return nil
}
