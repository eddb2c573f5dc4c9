package config

import (
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port" default:"8080"`
		Host         string        `yaml:"host" default:"0.0.0.0"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"30s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"30s"`
		IdleTimeout  time.Duration `yaml:"idle_timeout" default:"60s"`
		MaxBodyBytes int64         `yaml:"max_body_bytes" default:"1048576"`
	} `yaml:"server"`

	LLM struct {
		Provider    string        `yaml:"provider" default:"claude"`
		APIKey      string        `yaml:"api_key"`
		Model       string        `yaml:"model"`
		BaseURL     string        `yaml:"base_url"`
		MaxTokens   int           `yaml:"max_tokens" default:"1024"`
		Temperature float32       `yaml:"temperature" default:"0.7"`
		Timeout     time.Duration `yaml:"timeout" default:"60s"`
		RateLimit   int           `yaml:"rate_limit" default:"120"` // requests per minute
	} `yaml:"llm"`

	Generator struct {
		BulletsPerItem int `yaml:"bullets_per_item" default:"3"`
		MaxConcurrent  int `yaml:"max_concurrent" default:"4"`
	} `yaml:"generator"`

	Renderer struct {
		Timeout      time.Duration `yaml:"timeout" default:"60s"`
		HeadlessMode bool          `yaml:"headless_mode" default:"true"`
	} `yaml:"renderer"`

	BrowserPool struct {
		MaxInstances       int           `yaml:"max_instances" default:"3"`
		MaxIdleTime        time.Duration `yaml:"max_idle_time" default:"5m"`
		AcquisitionTimeout time.Duration `yaml:"acquisition_timeout" default:"30s"`
		CleanupInterval    time.Duration `yaml:"cleanup_interval" default:"5m"`
	} `yaml:"browser_pool"`

	CORS struct {
		AllowedOrigin string `yaml:"allowed_origin" default:"*"`
	} `yaml:"cors"`

	Logging struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"json"`

		Adapters []struct {
			Name    string                 `yaml:"name"`
			Type    string                 `yaml:"type"`
			Enabled bool                   `yaml:"enabled"`
			Options map[string]interface{} `yaml:"options"`
		} `yaml:"adapters"`
	} `yaml:"logging"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second
	config.Server.MaxBodyBytes = 1 << 20

	config.LLM.Provider = "claude"
	config.LLM.MaxTokens = 1024
	config.LLM.Temperature = 0.7
	config.LLM.Timeout = 60 * time.Second
	config.LLM.RateLimit = 120

	config.Generator.BulletsPerItem = 3
	config.Generator.MaxConcurrent = 4

	config.Renderer.Timeout = 60 * time.Second
	config.Renderer.HeadlessMode = true

	config.BrowserPool.MaxInstances = 3
	config.BrowserPool.MaxIdleTime = 5 * time.Minute
	config.BrowserPool.AcquisitionTimeout = 30 * time.Second
	config.BrowserPool.CleanupInterval = 5 * time.Minute

	config.CORS.AllowedOrigin = "*"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			// Expand environment variables in the YAML content
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	return config, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if apiKey := os.Getenv("LLM_API_KEY"); apiKey != "" {
		c.LLM.APIKey = apiKey
	}

	// Also support OPENROUTER_API_KEY for compatibility
	if apiKey := os.Getenv("OPENROUTER_API_KEY"); apiKey != "" && c.LLM.APIKey == "" {
		c.LLM.APIKey = apiKey
	}

	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		c.LLM.Provider = provider
	}

	if model := os.Getenv("LLM_MODEL"); model != "" {
		c.LLM.Model = model
	}

	if baseURL := os.Getenv("LLM_BASE_URL"); baseURL != "" {
		c.LLM.BaseURL = baseURL
	}

	if timeout := os.Getenv("LLM_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.LLM.Timeout = d
		}
	}

	if rateLimit := os.Getenv("LLM_RATE_LIMIT"); rateLimit != "" {
		if n, err := strconv.Atoi(rateLimit); err == nil {
			c.LLM.RateLimit = n
		}
	}

	if origin := os.Getenv("PERMITTED_ORIGIN"); origin != "" {
		c.CORS.AllowedOrigin = origin
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}

	if timeout := os.Getenv("RENDERER_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Renderer.Timeout = d
		}
	}

	if headless := os.Getenv("RENDERER_HEADLESS"); headless != "" {
		c.Renderer.HeadlessMode = headless == "true" || headless == "1"
	}

	// Browser pool configuration
	if maxInstances := os.Getenv("BROWSER_POOL_MAX_INSTANCES"); maxInstances != "" {
		if instances, err := strconv.Atoi(maxInstances); err == nil {
			c.BrowserPool.MaxInstances = instances
		}
	}

	if maxIdleTime := os.Getenv("BROWSER_POOL_MAX_IDLE_TIME"); maxIdleTime != "" {
		if duration, err := time.ParseDuration(maxIdleTime); err == nil {
			c.BrowserPool.MaxIdleTime = duration
		}
	}

	if acquisitionTimeout := os.Getenv("BROWSER_POOL_ACQUISITION_TIMEOUT"); acquisitionTimeout != "" {
		if duration, err := time.ParseDuration(acquisitionTimeout); err == nil {
			c.BrowserPool.AcquisitionTimeout = duration
		}
	}

	if cleanupInterval := os.Getenv("BROWSER_POOL_CLEANUP_INTERVAL"); cleanupInterval != "" {
		if duration, err := time.ParseDuration(cleanupInterval); err == nil {
			c.BrowserPool.CleanupInterval = duration
		}
	}
}
