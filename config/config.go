package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

var defaultModels = map[string]string{
	ProviderGemini:    "gemini-2.5-flash",
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderAnthropic: "claude-sonnet-4-5",
}

// providerKeyEnv lists, per provider, the environment variables that may carry the credential.
var providerKeyEnv = map[string][]string{
	ProviderGemini:    {"GEMINI_API_KEY", "API_KEY"},
	ProviderOpenAI:    {"OPENAI_API_KEY", "API_KEY"},
	ProviderAnthropic: {"ANTHROPIC_API_KEY", "API_KEY"},
}

// Config stores all configuration of the application.
type Config struct {
	Provider  string `mapstructure:"provider"`
	APIKey    string `mapstructure:"api_key"`
	ModelName string `mapstructure:"model_name"`
	OutputDir string `mapstructure:"output_dir"`
	LogFile   string `mapstructure:"log_file"`
	TellmURL  string `mapstructure:"tellm_url"`
}

// ConfigurationError reports a setting the program cannot start without.
type ConfigurationError struct {
	Key string
	Env []string
}

func (e *ConfigurationError) Error() string {
	if len(e.Env) == 0 {
		return fmt.Sprintf("missing required configuration %q", e.Key)
	}
	return fmt.Sprintf("missing required configuration %q (set %s)", e.Key, strings.Join(e.Env, " or "))
}

func configDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".politica")
}

// LoadConfig reads configuration from a .env file, an optional config.yaml and environment variables.
// configPath may be empty. Flag overrides should be applied before calling Validate.
func LoadConfig(configPath string) (*Config, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("provider", ProviderGemini)
	v.SetDefault("output_dir", ".")
	v.SetDefault("log_file", filepath.Join(configDir(), "politica.log"))

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")
	if dir := configDir(); dir != "" {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("POLITICA")
	v.AutomaticEnv()
	for _, binding := range [][]string{{"api_key"}, {"model_name"}, {"tellm_url", "TELLM_URL"}} {
		if err := v.BindEnv(binding...); err != nil {
			return nil, fmt.Errorf("error binding environment for %s: %w", binding[0], err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Provider = strings.ToLower(config.Provider)
	return &config, nil
}

// ResolveAPIKey fills APIKey from the provider's environment variables when the
// config file did not set one.
func (c *Config) ResolveAPIKey() {
	if c.APIKey != "" {
		return
	}
	for _, env := range providerKeyEnv[c.Provider] {
		if key := os.Getenv(env); key != "" {
			c.APIKey = key
			return
		}
	}
}

// Validate fills defaults that depend on the provider and reports missing credentials.
func (c *Config) Validate() error {
	c.ResolveAPIKey()
	model, ok := defaultModels[c.Provider]
	if !ok {
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	if c.ModelName == "" {
		c.ModelName = model
	}
	if c.APIKey == "" {
		return &ConfigurationError{Key: "api_key", Env: providerKeyEnv[c.Provider]}
	}
	return nil
}
