package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/techsouth/config"
	ConfigFileName    = "techsouth.yml"
)

// ValidRotationStrategies is the list of valid country rotation strategies.
var ValidRotationStrategies = []string{
	"random", "regional_focus", "balanced_regional",
}

// Config holds all TechSouth server settings that live outside the
// database. Automation settings that admins tune at runtime live in the
// settings table instead.
type Config struct {
	// Port is the HTTP listen port
	Port int `yaml:"port" json:"port"`

	// DatabaseURL is the database connection string
	DatabaseURL string `yaml:"database_url" json:"database_url"`

	// OpenAIAPIKey authenticates against the content generation API
	OpenAIAPIKey string `yaml:"openai_api_key" json:"openai_api_key"`

	// OpenAIModel is the chat model used for article generation
	OpenAIModel string `yaml:"openai_model" json:"openai_model"`

	// JWTSecret signs admin session tokens
	JWTSecret string `yaml:"jwt_secret" json:"jwt_secret"`

	// TokenTTLMinutes is the admin token lifetime in minutes
	TokenTTLMinutes int `yaml:"token_ttl_minutes" json:"token_ttl_minutes"`

	// SMTPHost is the mail server for newsletter delivery
	SMTPHost string `yaml:"smtp_host" json:"smtp_host"`

	// SMTPPort is the mail server port
	SMTPPort int `yaml:"smtp_port" json:"smtp_port"`

	// EmailAddress is the newsletter sender address and SMTP username
	EmailAddress string `yaml:"email_address" json:"email_address"`

	// EmailPassword is the SMTP password
	EmailPassword string `yaml:"email_password" json:"email_password"`

	// SiteURL is the public base URL used in share links and emails
	SiteURL string `yaml:"site_url" json:"site_url"`

	// CORSOrigins is a list of allowed CORS origins
	CORSOrigins []string `yaml:"cors_origins" json:"cors_origins"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *Config {
	return &Config{
		Port:            5000,
		OpenAIModel:     "gpt-4o",
		TokenTTLMinutes: 480,
		SMTPHost:        "smtp.gmail.com",
		SMTPPort:        587,
		SiteURL:         "http://localhost:5000",
		CORSOrigins:     []string{"*"},
		sources:         make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("TECHSOUTH_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"port", "database_url", "openai_api_key", "openai_model",
		"jwt_secret", "token_ttl_minutes", "smtp_host", "smtp_port",
		"email_address", "email_password", "site_url", "cors_origins",
	}
}

func (c *Config) applyFileConfig(file *Config) {
	if file.Port != 0 {
		c.Port = file.Port
		c.sources["port"] = "file"
	}
	if file.DatabaseURL != "" {
		c.DatabaseURL = file.DatabaseURL
		c.sources["database_url"] = "file"
	}
	if file.OpenAIAPIKey != "" {
		c.OpenAIAPIKey = file.OpenAIAPIKey
		c.sources["openai_api_key"] = "file"
	}
	if file.OpenAIModel != "" {
		c.OpenAIModel = file.OpenAIModel
		c.sources["openai_model"] = "file"
	}
	if file.JWTSecret != "" {
		c.JWTSecret = file.JWTSecret
		c.sources["jwt_secret"] = "file"
	}
	if file.TokenTTLMinutes != 0 {
		c.TokenTTLMinutes = file.TokenTTLMinutes
		c.sources["token_ttl_minutes"] = "file"
	}
	if file.SMTPHost != "" {
		c.SMTPHost = file.SMTPHost
		c.sources["smtp_host"] = "file"
	}
	if file.SMTPPort != 0 {
		c.SMTPPort = file.SMTPPort
		c.sources["smtp_port"] = "file"
	}
	if file.EmailAddress != "" {
		c.EmailAddress = file.EmailAddress
		c.sources["email_address"] = "file"
	}
	if file.EmailPassword != "" {
		c.EmailPassword = file.EmailPassword
		c.sources["email_password"] = "file"
	}
	if file.SiteURL != "" {
		c.SiteURL = file.SiteURL
		c.sources["site_url"] = "file"
	}
	if len(file.CORSOrigins) > 0 {
		c.CORSOrigins = file.CORSOrigins
		c.sources["cors_origins"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("PORT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.Port = i
			c.sources["port"] = "environment"
		}
	}
	if val := os.Getenv("DATABASE_URL"); val != "" {
		c.DatabaseURL = val
		c.sources["database_url"] = "environment"
	}
	if val := os.Getenv("OPENAI_API_KEY"); val != "" {
		c.OpenAIAPIKey = val
		c.sources["openai_api_key"] = "environment"
	}
	if val := os.Getenv("OPENAI_MODEL"); val != "" {
		c.OpenAIModel = val
		c.sources["openai_model"] = "environment"
	}
	if val := os.Getenv("TECHSOUTH_JWT_SECRET"); val != "" {
		c.JWTSecret = val
		c.sources["jwt_secret"] = "environment"
	}
	if val := os.Getenv("TECHSOUTH_TOKEN_TTL_MINUTES"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.TokenTTLMinutes = i
			c.sources["token_ttl_minutes"] = "environment"
		}
	}
	if val := os.Getenv("SMTP_HOST"); val != "" {
		c.SMTPHost = val
		c.sources["smtp_host"] = "environment"
	}
	if val := os.Getenv("SMTP_PORT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.SMTPPort = i
			c.sources["smtp_port"] = "environment"
		}
	}
	if val := os.Getenv("EMAIL_ADDRESS"); val != "" {
		c.EmailAddress = val
		c.sources["email_address"] = "environment"
	}
	if val := os.Getenv("EMAIL_PASSWORD"); val != "" {
		c.EmailPassword = val
		c.sources["email_password"] = "environment"
	}
	if val := os.Getenv("TECHSOUTH_SITE_URL"); val != "" {
		c.SiteURL = val
		c.sources["site_url"] = "environment"
	}
	if val := os.Getenv("TECHSOUTH_CORS_ORIGINS"); val != "" {
		c.CORSOrigins = splitAndTrim(val)
		c.sources["cors_origins"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.TokenTTLMinutes <= 0 {
		return fmt.Errorf("token_ttl_minutes must be positive")
	}
	return nil
}

// Attributes returns all configuration attributes with their values and
// sources. Secrets are redacted.
func (c *Config) Attributes() []Attribute {
	return []Attribute{
		{Name: "port", Value: strconv.Itoa(c.Port), Source: c.Source("port")},
		{Name: "database_url", Value: redact(c.DatabaseURL), Source: c.Source("database_url")},
		{Name: "openai_api_key", Value: redact(c.OpenAIAPIKey), Source: c.Source("openai_api_key")},
		{Name: "openai_model", Value: c.OpenAIModel, Source: c.Source("openai_model")},
		{Name: "jwt_secret", Value: redact(c.JWTSecret), Source: c.Source("jwt_secret")},
		{Name: "token_ttl_minutes", Value: strconv.Itoa(c.TokenTTLMinutes), Source: c.Source("token_ttl_minutes")},
		{Name: "smtp_host", Value: c.SMTPHost, Source: c.Source("smtp_host")},
		{Name: "smtp_port", Value: strconv.Itoa(c.SMTPPort), Source: c.Source("smtp_port")},
		{Name: "email_address", Value: c.EmailAddress, Source: c.Source("email_address")},
		{Name: "email_password", Value: redact(c.EmailPassword), Source: c.Source("email_password")},
		{Name: "site_url", Value: c.SiteURL, Source: c.Source("site_url")},
		{Name: "cors_origins", Value: strings.Join(c.CORSOrigins, ","), Source: c.Source("cors_origins")},
	}
}

// FormatText returns a text representation of the configuration
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *Config) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func redact(s string) string {
	if s == "" {
		return ""
	}
	return "(redacted)"
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
