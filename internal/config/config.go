package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"palette/internal/search"
)

const EnvPrefix = "PALETTE"

type Config struct {
	Database struct {
		Primary struct {
			// DSN selects PostgreSQL; empty serves the built-in fixture collections.
			DSN string `mapstructure:"dsn"`
		} `mapstructure:"primary"`
	} `mapstructure:"database"`

	Search struct {
		DefaultLimit        int            `mapstructure:"default_limit" validate:"gte=1,lte=500"`
		MinRelevance        float64        `mapstructure:"min_relevance" validate:"gte=0"`
		EmptyQuery          string         `mapstructure:"empty_query" validate:"oneof=none all"`
		ScriptExcerptLength int            `mapstructure:"script_excerpt_length" validate:"gte=0"`
		Weights             search.Weights `mapstructure:"weights"`
		Routes              struct {
			ArticlePath string `mapstructure:"article_path" validate:"required,startswith=/"`
			EventPath   string `mapstructure:"event_path" validate:"required,startswith=/"`
		} `mapstructure:"routes"`
	} `mapstructure:"search"`

	Redis struct {
		// Address enables queued history recording and the worker.
		Address  string `mapstructure:"address"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db" validate:"gte=0"`
	} `mapstructure:"redis"`

	Worker struct {
		Concurrency int            `mapstructure:"concurrency" validate:"gte=1"`
		Queues      map[string]int `mapstructure:"queues"`
	} `mapstructure:"worker"`

	Server struct {
		Addr string `mapstructure:"addr"`
		Port int    `mapstructure:"port" validate:"gte=1,lte=65535"`
	} `mapstructure:"server"`

	Log struct {
		Level  string `mapstructure:"level" validate:"oneof=trace debug info warn warning error fatal panic"`
		Format string `mapstructure:"format" validate:"oneof=text json"`
	} `mapstructure:"log"`
}

func setDefaults(v *viper.Viper) {
	w := search.DefaultWeights()

	v.SetDefault("database.primary.dsn", "")

	v.SetDefault("search.default_limit", 10)
	v.SetDefault("search.min_relevance", 0.0)
	v.SetDefault("search.empty_query", "none")
	v.SetDefault("search.script_excerpt_length", search.DefaultScriptExcerptLength)
	v.SetDefault("search.weights.title_exact", w.TitleExact)
	v.SetDefault("search.weights.title_substring", w.TitleSubstring)
	v.SetDefault("search.weights.tag_exact", w.TagExact)
	v.SetDefault("search.weights.tag_substring", w.TagSubstring)
	v.SetDefault("search.weights.description", w.Description)
	v.SetDefault("search.weights.resource_multiplier", w.ResourceMultiplier)
	v.SetDefault("search.routes.article_path", search.DefaultArticlePath)
	v.SetDefault("search.routes.event_path", search.DefaultEventPath)

	v.SetDefault("redis.address", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("worker.concurrency", 5)
	v.SetDefault("worker.queues", map[string]int{"history": 1})

	v.SetDefault("server.addr", "")
	v.SetDefault("server.port", 8080)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// LoadConfig reads config.yaml from the given directories (the working
// directory when none are given), then PALETTE_* environment variables.
func LoadConfig(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	// search.default_limit -> PALETTE_SEARCH_DEFAULT_LIMIT
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	return &config, nil
}

// RankerOptions translates the search section into ranking options.
func (c *Config) RankerOptions() []search.Option {
	return []search.Option{
		search.WithWeights(c.Search.Weights),
		search.WithExcerptLength(c.Search.ScriptExcerptLength),
		search.WithRoutes(search.Routes{
			ArticlePath: c.Search.Routes.ArticlePath,
			EventPath:   c.Search.Routes.EventPath,
		}),
	}
}

// ListenAddr is the host:port the HTTP server binds.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Addr, c.Server.Port)
}
