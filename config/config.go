package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port          string   `mapstructure:"port"`
	PolicyDir     string   `mapstructure:"policy_dir"`
	DataDir       string   `mapstructure:"data_dir"`
	AIProvider    string   `mapstructure:"ai_provider"` // "openai" or "gemini"
	AIEndpoint    string   `mapstructure:"ai_endpoint"`
	Model         string   `mapstructure:"model"`
	OpenAIAPIKey  string   `mapstructure:"OPENAI_API_KEY"`
	GeminiAPIKeys []string `mapstructure:"gemini_api_keys"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set up Viper to read from config file
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set up Viper to read from environment variables
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Bind environment variables
	v.BindEnv("OPENAI_API_KEY")

	v.SetDefault("port", "8080")
	v.SetDefault("policy_dir", "policies")
	v.SetDefault("data_dir", "data")
	v.SetDefault("ai_provider", "openai")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
