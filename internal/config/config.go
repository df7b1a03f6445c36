package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Import   ImportConfig   `yaml:"import"`
	Lookup   LookupConfig   `yaml:"lookup"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// CORSConfig holds CORS settings. The lookup API is public, so the default
// allows every origin.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods string `yaml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-default:"GET,POST,OPTIONS"`
	AllowedHeaders string `yaml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-default:"Authorization,Content-Type"`
	MaxAge         int    `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// RateLimit is the number of lookup requests allowed per client per
	// minute. Zero disables limiting.
	RateLimit int `yaml:"rate_limit" env:"SERVER_RATE_LIMIT" env-default:"600"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds the settings used to verify operator tokens on the admin
// endpoints. Without a secret the admin endpoints are not mounted.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"recval"`
}

// Enabled reports whether operator authentication is configured.
func (c AuthConfig) Enabled() bool {
	return c.JWTSecret != ""
}

// ImportConfig holds the settings of an import run.
type ImportConfig struct {
	RootDir      string `yaml:"root_dir"      env:"IMPORT_ROOT_DIR"`
	MetadataPath string `yaml:"metadata_path" env:"IMPORT_METADATA_PATH"`
	// Language is the slug of the language variant imported phrases belong to.
	Language string `yaml:"language" env:"IMPORT_LANGUAGE" env-default:"maskwacis"`
	// LanguageTag is written into the language tag of transcoded audio.
	LanguageTag string `yaml:"language_tag" env:"IMPORT_LANGUAGE_TAG" env-default:"crk"`
	// Origin is stored on phrases created by the import.
	Origin                  string `yaml:"origin"                    env:"IMPORT_ORIGIN"                    env-default:"maskwacis"`
	BlobDir                 string `yaml:"blob_dir"                  env:"IMPORT_BLOB_DIR"                  env-default:"./data/audio"`
	FFmpegPath              string `yaml:"ffmpeg_path"               env:"IMPORT_FFMPEG_PATH"               env-default:"ffmpeg"`
	Bitrate                 string `yaml:"bitrate"                   env:"IMPORT_BITRATE"                   env-default:"128k"`
	MaxConcurrentTranscodes int    `yaml:"max_concurrent_transcodes" env:"IMPORT_MAX_CONCURRENT_TRANSCODES" env-default:"4"`
}

// LookupConfig holds bulk lookup settings.
type LookupConfig struct {
	// AudioBaseURL prefixes blob references to form absolute recording URLs.
	AudioBaseURL   string        `yaml:"audio_base_url"   env:"LOOKUP_AUDIO_BASE_URL"   env-default:"http://localhost:8080/recording/audio/"`
	SampleSize     int           `yaml:"sample_size"      env:"LOOKUP_SAMPLE_SIZE"      env-default:"10"`
	MaxSearchTerms int           `yaml:"max_search_terms" env:"LOOKUP_MAX_SEARCH_TERMS" env-default:"3"`
	RequestTimeout time.Duration `yaml:"request_timeout"  env:"LOOKUP_REQUEST_TIMEOUT"  env-default:"5s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// MetricsConfig holds metrics exporter settings.
type MetricsConfig struct {
	Enabled     bool   `yaml:"enabled"      env:"METRICS_ENABLED"      env-default:"true"`
	ServiceName string `yaml:"service_name" env:"METRICS_SERVICE_NAME" env-default:"recval"`
}
