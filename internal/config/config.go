package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type APICfg struct {
	BaseURL   string
	Phone     string
	ShortCode string
	Token     string
	Timeout   time.Duration
}

type LogCfg struct{ Debug bool }

type Cfg struct {
	API APICfg
	Log LogCfg
}

// Load reads configuration from the environment (and .env if present) and
// fails fast on missing required settings.
func Load() Cfg {
	// 1) Load .env into process env (if file exists)
	_ = godotenv.Load()

	// 2) Read from env via viper
	viper.AutomaticEnv()
	viper.SetDefault("FLOOSAK_TIMEOUT_SEC", 30)
	viper.SetDefault("FLOOSAK_DEBUG", false)

	cfg := Cfg{
		API: APICfg{
			BaseURL:   viper.GetString("FLOOSAK_BASE_URL"),
			Phone:     viper.GetString("FLOOSAK_PHONE"),
			ShortCode: viper.GetString("FLOOSAK_SHORT_CODE"),
			Token:     viper.GetString("FLOOSAK_TOKEN"),
			Timeout:   time.Duration(viper.GetInt("FLOOSAK_TIMEOUT_SEC")) * time.Second,
		},
		Log: LogCfg{Debug: viper.GetBool("FLOOSAK_DEBUG")},
	}

	// 3) Fail fast on required settings
	if cfg.API.BaseURL == "" {
		log.Fatal().Msg("FLOOSAK_BASE_URL is required")
	}
	if cfg.API.Phone == "" {
		log.Fatal().Msg("FLOOSAK_PHONE is required")
	}
	if cfg.API.ShortCode == "" {
		log.Fatal().Msg("FLOOSAK_SHORT_CODE is required")
	}

	return cfg
}
