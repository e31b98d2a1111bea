package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Settings holds the process configuration. Values come from an
// optional config file, overridden by environment variables.
type Settings struct {
	ServerHost string `mapstructure:"server_host"`
	ServerPort string `mapstructure:"server_port"`
	DataDir    string `mapstructure:"data_dir"`
}

// Load reads settings from the given config file path (empty means
// env/defaults only).
func Load(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("server_host", "0.0.0.0")
	v.SetDefault("server_port", "5000")
	v.SetDefault("data_dir", "data")

	_ = v.BindEnv("server_host", "SERVER_HOST")
	_ = v.BindEnv("server_port", "SERVER_PORT")
	_ = v.BindEnv("data_dir", "DATA_DIR")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &settings, nil
}
