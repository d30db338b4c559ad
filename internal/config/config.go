package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Data     DataConfig     `yaml:"data"`
	Database DatabaseConfig `yaml:"database"`
	Cache    CacheConfig    `yaml:"cache"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`

	// ExampleRateLimit caps example-generation requests per IP per
	// minute. Zero disables the limiter.
	ExampleRateLimit int `yaml:"example_rate_limit" env:"SERVER_EXAMPLE_RATE_LIMIT" env-default:"60"`
}

// Lexicon source selection for DataConfig.
const (
	LexiconSourceJSON     = "json"
	LexiconSourcePostgres = "postgres"
)

// DataConfig holds dataset locations and the lexicon backend selection.
type DataConfig struct {
	// Dir is the directory holding verbs.json and the four lexicon
	// documents.
	Dir string `yaml:"dir" env:"DATA_DIR" env-default:"./data"`

	// OutputPath is where the batch builder writes processed verbs.
	OutputPath string `yaml:"output_path" env:"DATA_OUTPUT_PATH" env-default:"./dist/verbs.json"`

	// LexiconSource selects the noun/adjective lookup backend: "json"
	// (in-memory, loaded from Dir) or "postgres".
	LexiconSource string `yaml:"lexicon_source" env:"DATA_LEXICON_SOURCE" env-default:"json"`
}

// DatabaseConfig holds PostgreSQL connection settings. The DSN is only
// required when data.lexicon_source is "postgres".
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// CacheConfig holds memoization cache sizes. Zero disables a cache;
// output is identical either way.
type CacheConfig struct {
	GlossSize   int `yaml:"gloss_size"   env:"CACHE_GLOSS_SIZE"   env-default:"512"`
	ExampleSize int `yaml:"example_size" env:"CACHE_EXAMPLE_SIZE" env-default:"4096"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
