package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/Sumatoshi-tech/workchart/internal/heatmap"
)

// configName is the config file name without extension.
const configName = ".workchart"

// configType is the config file format.
const configType = "yaml"

// LoadConfig loads configuration from file and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// Missing config file is not an error; defaults are used.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("chart.days", DefaultDays)
	viperCfg.SetDefault("chart.box_size", DefaultBoxSize)
	viperCfg.SetDefault("chart.box_separation", DefaultBoxSeparation)
	viperCfg.SetDefault("chart.margin", DefaultMargin)
	viperCfg.SetDefault("chart.output", DefaultOutput)
	viperCfg.SetDefault("chart.open_viewer", true)
	viperCfg.SetDefault("chart.background", DefaultBackground)
	viperCfg.SetDefault("chart.palette", heatmap.DefaultPalette)
}
