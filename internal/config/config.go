package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/glabrego/cinemas-cli/internal/catalog"
	"github.com/glabrego/cinemas-cli/internal/rapidmock"
)

const envPrefix = "CINEMAS"

// Config holds runtime settings for the CLI app.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Search  SearchConfig  `mapstructure:"search"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

type SearchConfig struct {
	Mode       string   `mapstructure:"mode"`       // substring or fuzzy
	Locale     string   `mapstructure:"locale"`     // BCP 47 tag used for title collation
	Categories []string `mapstructure:"categories"` // type labels the home selector cycles through after All
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	File   string `mapstructure:"file"`
	Format string `mapstructure:"format"` // console or json
}

func DefaultConfigDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "cinemas")
}

func DefaultLogPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "cinemas", "cinemas.log")
}

// Load reads configPath if given, otherwise config.yaml from the working
// directory or DefaultConfigDir. A missing default file is not an error.
// CINEMAS_* environment variables override file values. Load does not
// validate: callers apply command-line overrides first, then call Validate.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(DefaultConfigDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", rapidmock.DefaultBaseURL)
	v.SetDefault("http.timeout", 10*time.Second)
	v.SetDefault("search.mode", string(catalog.MatchSubstring))
	v.SetDefault("search.locale", "en")
	v.SetDefault("search.categories", categoryLabels(catalog.DefaultCategories()))
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", DefaultLogPath())
	v.SetDefault("logging.format", "console")
}

func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	if strings.HasSuffix(c.API.BaseURL, "/") {
		return fmt.Errorf("api.base_url must not end with '/': %s", c.API.BaseURL)
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api.base_url must be an http(s) URL: %s", c.API.BaseURL)
	}
	if c.HTTP.Timeout <= 0 {
		return fmt.Errorf("http.timeout must be positive: %s", c.HTTP.Timeout)
	}
	if _, err := catalog.ParseMatchMode(c.Search.Mode); err != nil {
		return fmt.Errorf("search.mode must be substring or fuzzy: %s", c.Search.Mode)
	}
	if _, err := language.Parse(c.Search.Locale); err != nil {
		return fmt.Errorf("search.locale is not a valid language tag: %s", c.Search.Locale)
	}
	seen := make(map[catalog.Category]bool, len(c.Search.Categories))
	for _, raw := range c.Search.Categories {
		category := catalog.ParseCategory(raw)
		if category == catalog.All {
			return fmt.Errorf("search.categories must not contain %q", raw)
		}
		key := catalog.Category(strings.ToLower(string(category)))
		if seen[key] {
			return fmt.Errorf("search.categories lists %q twice", raw)
		}
		seen[key] = true
	}

	if !slices.Contains(LogLevels(), strings.ToLower(c.Logging.Level)) {
		return fmt.Errorf("invalid logging level: %s", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid logging format: %s", c.Logging.Format)
	}
	return nil
}

// LogLevels lists the accepted logging.level values, case-insensitive.
func LogLevels() []string {
	return []string{"debug", "info", "warn", "warning", "error"}
}

// MatchMode returns the parsed search mode; call after Validate.
func (c Config) MatchMode() catalog.MatchMode {
	mode, _ := catalog.ParseMatchMode(c.Search.Mode)
	return mode
}

// Categories returns the home selector labels, or the defaults when none are
// configured.
func (c Config) Categories() []catalog.Category {
	if len(c.Search.Categories) == 0 {
		return catalog.DefaultCategories()
	}
	out := make([]catalog.Category, 0, len(c.Search.Categories))
	for _, raw := range c.Search.Categories {
		out = append(out, catalog.ParseCategory(raw))
	}
	return out
}

func categoryLabels(categories []catalog.Category) []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = string(c)
	}
	return out
}

// Locale returns the collation tag, falling back to English.
func (c Config) Locale() language.Tag {
	tag, err := language.Parse(c.Search.Locale)
	if err != nil {
		return language.English
	}
	return tag
}
