package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Log         LogConfig         `yaml:"log"`
	CORS        CORSConfig        `yaml:"cors"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	Metrics     MetricsConfig     `yaml:"metrics"`
	Search      SearchConfig      `yaml:"search"`
	Translation TranslationConfig `yaml:"translation"`
	Analytics   AnalyticsConfig   `yaml:"analytics"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// TrustProxy takes the client address from X-Forwarded-For. Enable only behind a proxy.
	TrustProxy bool `yaml:"trust_proxy" env:"SERVER_TRUST_PROXY" env-default:"false"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// AutoMigrate applies embedded migrations at startup.
	AutoMigrate bool `yaml:"auto_migrate" env:"DATABASE_AUTO_MIGRATE" env-default:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig limits write endpoints per client IP.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	WritesPerMinute int           `yaml:"writes_per_minute" env:"RATE_LIMIT_WRITES_PER_MINUTE" env-default:"60"`
	Burst           int           `yaml:"burst"            env:"RATE_LIMIT_BURST"            env-default:"20"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// SearchConfig holds listing and matching limits.
type SearchConfig struct {
	DefaultPageSize       int `yaml:"default_page_size"       env:"SEARCH_DEFAULT_PAGE_SIZE"       env-default:"10"`
	MaxPageSize           int `yaml:"max_page_size"           env:"SEARCH_MAX_PAGE_SIZE"           env-default:"50"`
	SimilarLimit          int `yaml:"similar_limit"           env:"SEARCH_SIMILAR_LIMIT"           env-default:"3"`
	AlternativeLimit      int `yaml:"alternative_limit"       env:"SEARCH_ALTERNATIVE_LIMIT"       env-default:"50"`
	AlternativeCountLimit int `yaml:"alternative_count_limit" env:"SEARCH_ALTERNATIVE_COUNT_LIMIT" env-default:"100"`
}

// TranslationConfig configures the translation provider chain.
// A provider is part of the chain only when its credential or endpoint is set.
type TranslationConfig struct {
	OpenAIAPIKey      string  `yaml:"openai_api_key"     env:"OPENAI_API_KEY"`
	OpenAIModel       string  `yaml:"openai_model"       env:"OPENAI_MODEL"        env-default:"gpt-4o-mini"`
	OpenAIBaseURL     string  `yaml:"openai_base_url"    env:"OPENAI_BASE_URL"`
	OpenAITemperature float32 `yaml:"openai_temperature" env:"OPENAI_TEMPERATURE"  env-default:"0.3"`

	LibreTranslateURL    string `yaml:"libretranslate_url"     env:"LIBRETRANSLATE_URL"`
	LibreTranslateAPIKey string `yaml:"libretranslate_api_key" env:"LIBRETRANSLATE_API_KEY"`

	GoogleFreeEnabled bool   `yaml:"google_free_enabled" env:"USE_GOOGLE_TRANSLATE" env-default:"true"`
	GoogleFreeURL     string `yaml:"google_free_url"     env:"GOOGLE_TRANSLATE_URL" env-default:"https://translate.googleapis.com/translate_a/single"`

	RequestTimeout   time.Duration `yaml:"request_timeout"   env:"TRANSLATION_REQUEST_TIMEOUT"   env-default:"20s"`
	FieldConcurrency int           `yaml:"field_concurrency" env:"TRANSLATION_FIELD_CONCURRENCY" env-default:"4"`
	BatchMaxItems    int           `yaml:"batch_max_items"   env:"TRANSLATION_BATCH_MAX_ITEMS"   env-default:"50"`

	// SupportedLocalesRaw is a comma-separated list of accepted target locales.
	SupportedLocalesRaw string `yaml:"supported_locales" env:"TRANSLATION_SUPPORTED_LOCALES" env-default:"en,tr,fr,it,de,ar,hi"`

	// SupportedLocales is parsed from SupportedLocalesRaw during validation.
	SupportedLocales []string `yaml:"-" env:"-"`
}

// AnalyticsConfig holds analytics collector settings.
type AnalyticsConfig struct {
	// Secret gates the report endpoint. Empty disables the report entirely.
	Secret        string `yaml:"secret"          env:"ANALYTICS_SECRET"`
	TopPagesLimit int    `yaml:"top_pages_limit" env:"ANALYTICS_TOP_PAGES_LIMIT" env-default:"20"`
	RecentLimit   int    `yaml:"recent_limit"    env:"ANALYTICS_RECENT_LIMIT"    env-default:"50"`
	TrendDays     int    `yaml:"trend_days"      env:"ANALYTICS_TREND_DAYS"      env-default:"7"`
}

// HasOpenAI reports whether the chat-completion provider is configured.
func (c TranslationConfig) HasOpenAI() bool { return c.OpenAIAPIKey != "" }

// HasLibreTranslate reports whether the self-hosted provider is configured.
func (c TranslationConfig) HasLibreTranslate() bool { return c.LibreTranslateURL != "" }
