package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string `mapstructure:"server_port"`
	MySQLDSN   string `mapstructure:"mysql_dsn"`
	AppEnv     string `mapstructure:"app_env"`
	LogLevel   string `mapstructure:"log_level"`
	ResetDB    bool   `mapstructure:"reset_db"`
}

// Load builds Config from the environment with sensible defaults. A .env file
// in the working directory is read first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("server_port", "8080")
	v.SetDefault("mysql_dsn", "user:password@tcp(localhost:3306)/userhub?charset=utf8mb4&parseTime=True&loc=Local")
	v.SetDefault("app_env", "production")
	v.SetDefault("log_level", "")
	v.SetDefault("reset_db", false)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
