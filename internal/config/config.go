package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	DB      DBConfig     `mapstructure:"db"`
	JWT     JWTConfig    `mapstructure:"jwt"`
	Tokens  TokensConfig `mapstructure:"tokens"`
	GitHub  GitHubConfig `mapstructure:"github"`
	Spaces  SpacesConfig `mapstructure:"spaces"`
	AppHost string       `mapstructure:"host"`
}

type DBConfig struct {
	Source string `mapstructure:"source"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

// TokensConfig wskazuje katalog, w którym trzymamy tokeny dostępowe
// do zewnętrznych serwisów (GitHub, Hugging Face).
type TokensConfig struct {
	Path string `mapstructure:"path"`
}

type GitHubConfig struct {
	APIURL string `mapstructure:"api_url"`
}

type SpacesConfig struct {
	APIURL string `mapstructure:"api_url"`
}

func Load() (*Config, error) {
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("/configs")
	viper.SetConfigName("settings")
	viper.SetConfigType("yml")

	viper.SetDefault("github.api_url", "https://api.github.com")
	viper.SetDefault("spaces.api_url", "https://huggingface.co")
	viper.SetDefault("tokens.path", "./data/tokens")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
