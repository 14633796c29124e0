// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	NLP      NLPConfig      `mapstructure:"nlp"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Address         string `mapstructure:"address"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

type DatabaseConfig struct {
	Postgres      PostgresConfig      `mapstructure:"postgres"`
	Redis         RedisConfig         `mapstructure:"redis"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string.
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// CacheTTL bounds how long checkpointed conversation analyses live, in seconds.
	CacheTTL int `mapstructure:"cache_ttl"`
}

type ElasticsearchConfig struct {
	Addresses []string `mapstructure:"addresses"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
	URL       string   `mapstructure:"url"`
	// InsightsIndex is where concluded-conversation insight documents go.
	InsightsIndex string `mapstructure:"insights_index"`
}

// GetURL returns the first address or the URL field.
func (e ElasticsearchConfig) GetURL() string {
	if e.URL != "" {
		return e.URL
	}
	if len(e.Addresses) > 0 {
		return e.Addresses[0]
	}
	return ""
}

// NLPConfig holds the calibration thresholds shared by the analysis engines.
// These values are the contract the engines are tested against; changing them
// moves classification boundaries across the whole pipeline.
type NLPConfig struct {
	// SentimentThreshold separates positivo/negativo from neutral, applied
	// symmetrically at ±threshold on the [-1,1] score.
	SentimentThreshold float64 `mapstructure:"sentiment_threshold"`
	// EmotionMinSupport is the minimum score an emotion needs to be reported.
	EmotionMinSupport float64 `mapstructure:"emotion_min_support"`
	// TrendThreshold is the |delta| below which a sentiment trend is "estable".
	TrendThreshold float64 `mapstructure:"trend_threshold"`
	// IntentThreshold is the purchase-intent probability cutoff.
	IntentThreshold float64 `mapstructure:"intent_threshold"`
	// IntentDetectionTimeout is the grace period, in seconds, before a
	// conversation without detected intent is abandoned.
	IntentDetectionTimeout int `mapstructure:"intent_detection_timeout"`
	// DefaultIndustry selects the intent model when the caller names none.
	DefaultIndustry string `mapstructure:"default_industry"`
	// MaxCachedConversations bounds every per-conversation cache; 0 = unbounded.
	MaxCachedConversations int `mapstructure:"max_cached_conversations"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
