package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path, applies environment overrides
// (after loading any .env in the working directory) and validates the result.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv("SOAP_STORE_PATH")); v != "" {
		c.Store.Path = v
	}
	if v := strings.TrimSpace(os.Getenv("SOAP_LOG_LEVEL")); v != "" {
		c.Logging.Level = v
	}

	keys := splitList(os.Getenv("GEMINI_API_KEYS"))
	if len(keys) == 0 {
		keys = splitList(os.Getenv("GEMINI_API_KEY"))
	}
	c.Gemini.APIKeys = keys
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
