package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/aurumline/insights/internal/inventory"
	"github.com/aurumline/insights/log"
)

// EngineConfig holds the knobs the report commands pass into the engine.
type EngineConfig struct {
	Range                     string `mapstructure:"range"`
	TopLimit                  int    `mapstructure:"top_limit"`
	DiscontinueStockThreshold int    `mapstructure:"discontinue_stock_threshold"`
	LowStockGlobalOverride    bool   `mapstructure:"low_stock_global_override"`
	LowStockThreshold         int    `mapstructure:"low_stock_threshold"`
	NewDesignYear             int    `mapstructure:"new_design_year"`
}

// LowStockPolicy converts the config into the engine's policy value.
func (ec EngineConfig) LowStockPolicy() inventory.LowStockPolicy {
	return inventory.LowStockPolicy{
		GlobalOverride: ec.LowStockGlobalOverride,
		Threshold:      ec.LowStockThreshold,
	}
}

// Config represents the global configuration for the report tool.
type Config struct {
	Logger   log.Config   `mapstructure:"logger"`
	Engine   EngineConfig `mapstructure:"engine"`
	Snapshot string       `mapstructure:"snapshot"`
}

// LoadConfig loads the configuration from a file and/or environment
// variables. Environment variables take precedence over file values.
func LoadConfig(cfgFile string) (*Config, error) {
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))
	bindEnvVars()

	viper.SetDefault("engine.range", "30d")
	viper.SetDefault("engine.top_limit", 20)
	viper.SetDefault("engine.discontinue_stock_threshold", inventory.DefaultDiscontinueStockThreshold)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("$HOME/config/aurumline-insights")
		// Config file is optional; env vars alone are enough.
		_ = viper.ReadInConfig()
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}
	return &config, nil
}

func bindEnvVars() {
	viper.BindEnv("logger.level", "LOG_LEVEL")
	viper.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	viper.BindEnv("engine.range", "ENGINE_RANGE")
	viper.BindEnv("engine.top_limit", "ENGINE_TOP_LIMIT")
	viper.BindEnv("engine.discontinue_stock_threshold", "ENGINE_DISCONTINUE_STOCK_THRESHOLD")
	viper.BindEnv("engine.low_stock_global_override", "ENGINE_LOW_STOCK_GLOBAL_OVERRIDE")
	viper.BindEnv("engine.low_stock_threshold", "ENGINE_LOW_STOCK_THRESHOLD")
	viper.BindEnv("engine.new_design_year", "ENGINE_NEW_DESIGN_YEAR")

	viper.BindEnv("snapshot", "SNAPSHOT")
}
