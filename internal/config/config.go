package config

import (
	"time"
)

// Default configuration values.
const (
	defaultServiceName      = "triage"
	defaultServiceVersion   = "1.0.0"
	defaultServicePort      = 8080
	defaultConcurrency      = 4
	defaultBatchSize        = 25
	defaultPollIntervalSec  = 30
	defaultRunsPerSecond    = 2
	defaultDBDriver         = "sqlite3"
	defaultDBPath           = "triage.db"
	defaultDBHost           = "localhost"
	defaultDBPort           = 5432
	defaultDBUser           = "postgres"
	defaultDBName           = "triage"
	defaultDBSSLMode        = "disable"
	defaultDBMaxConns       = 25
	defaultDBMaxIdleConns   = 5
	defaultRedisAddr        = "localhost:6379"
	defaultRedisTimeoutSec  = 5
	defaultLogLevel         = "info"
	defaultLogFormat        = "json"
	defaultGroqBaseURL      = "https://api.groq.com/openai/v1"
	defaultGroqModel        = "llama-3.3-70b-versatile"
	defaultGeminiBaseURL    = "https://generativelanguage.googleapis.com"
	defaultGeminiModel      = "gemini-1.5-flash"
	defaultGeocodeBaseURL   = "https://nominatim.openstreetmap.org"
	defaultGeocodeUserAgent = "civicgrid-triage"
	defaultCallTimeoutSec   = 5
	defaultReviewThreshold  = 3
)

// Config holds all configuration for the triage service.
type Config struct {
	Service  ServiceConfig  `yaml:"service"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Logging  LoggingConfig  `yaml:"logging"`
	Pipeline PipelineConfig `yaml:"pipeline"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name          string        `yaml:"name"`
	Version       string        `yaml:"version"`
	Port          int           `env:"TRIAGE_PORT"        yaml:"port"`
	Debug         bool          `env:"APP_DEBUG"          yaml:"debug"`
	Concurrency   int           `env:"TRIAGE_CONCURRENCY" yaml:"concurrency"`
	BatchSize     int           `yaml:"batch_size"`
	PollInterval  time.Duration `yaml:"poll_interval"`
	RunsPerSecond float64       `yaml:"runs_per_second"`
}

// DatabaseConfig holds database configuration. The sqlite3 driver only
// uses Path; the postgres driver uses the host/port fields.
type DatabaseConfig struct {
	Driver          string        `env:"DB_DRIVER"         yaml:"driver"`
	Path            string        `env:"DB_PATH"           yaml:"path"`
	Host            string        `env:"POSTGRES_HOST"     yaml:"host"`
	Port            int           `env:"POSTGRES_PORT"     yaml:"port"`
	User            string        `env:"POSTGRES_USER"     yaml:"user"`
	Password        string        `env:"POSTGRES_PASSWORD" yaml:"password"`
	Database        string        `env:"POSTGRES_DB"       yaml:"database"`
	SSLMode         string        `env:"POSTGRES_SSLMODE"  yaml:"sslmode"`
	MaxConnections  int           `yaml:"max_connections"`
	MaxIdleConns    int           `yaml:"max_idle_connections"`
	ConnMaxLifetime time.Duration `yaml:"connection_max_lifetime"`
}

// RedisConfig holds the review counter store configuration. When disabled
// the service falls back to an in-process counter store.
type RedisConfig struct {
	Enabled  bool          `env:"REDIS_ENABLED"  yaml:"enabled"`
	Addr     string        `env:"REDIS_ADDR"     yaml:"addr"`
	Password string        `env:"REDIS_PASSWORD" yaml:"password"`
	Database int           `yaml:"database"`
	Timeout  time.Duration `yaml:"timeout"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  yaml:"level"`
	Format string `env:"LOG_FORMAT" yaml:"format"`
}

// PipelineConfig holds settings for the analysis pipeline and its
// external collaborators.
type PipelineConfig struct {
	Reasoning       ReasoningConfig `yaml:"reasoning"`
	Transcription   SidecarConfig   `yaml:"transcription"`
	OCR             SidecarConfig   `yaml:"ocr"`
	Geocode         GeocodeConfig   `yaml:"geocode"`
	ReviewThreshold int             `yaml:"review_threshold"`
}

// ReasoningConfig holds the primary and secondary reasoning services.
type ReasoningConfig struct {
	Groq   GroqConfig   `yaml:"groq"`
	Gemini GeminiConfig `yaml:"gemini"`
}

// GroqConfig holds primary reasoning (OpenAI-compatible chat API) settings.
type GroqConfig struct {
	Enabled bool          `env:"GROQ_ENABLED" yaml:"enabled"`
	APIKey  string        `env:"GROQ_API_KEY" yaml:"api_key"`
	BaseURL string        `yaml:"base_url"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

// GeminiConfig holds secondary reasoning settings.
type GeminiConfig struct {
	Enabled bool          `env:"GEMINI_ENABLED" yaml:"enabled"`
	APIKey  string        `env:"GEMINI_API_KEY" yaml:"api_key"`
	BaseURL string        `yaml:"base_url"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

// SidecarConfig holds settings for an HTTP sidecar service (STT, OCR).
type SidecarConfig struct {
	Enabled bool          `yaml:"enabled"`
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

// GeocodeConfig holds reverse geocoding settings.
type GeocodeConfig struct {
	Enabled   bool          `yaml:"enabled"`
	BaseURL   string        `yaml:"base_url"`
	UserAgent string        `yaml:"user_agent"`
	Timeout   time.Duration `yaml:"timeout"`
}

// Load loads configuration from the specified path.
func Load(path string) (*Config, error) {
	return loadWithDefaults[Config](path, setDefaults)
}

// Default returns a configuration built from defaults and environment
// overrides only, for when no config file is present.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	applyEnvOverrides(cfg)
	return cfg
}

func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setDatabaseDefaults(&cfg.Database)
	setRedisDefaults(&cfg.Redis)
	setLoggingDefaults(&cfg.Logging)
	setPipelineDefaults(&cfg.Pipeline)
}

func setServiceDefaults(s *ServiceConfig) {
	if s.Name == "" {
		s.Name = defaultServiceName
	}
	if s.Version == "" {
		s.Version = defaultServiceVersion
	}
	if s.Port == 0 {
		s.Port = defaultServicePort
	}
	if s.Concurrency == 0 {
		s.Concurrency = defaultConcurrency
	}
	if s.BatchSize == 0 {
		s.BatchSize = defaultBatchSize
	}
	if s.PollInterval == 0 {
		s.PollInterval = defaultPollIntervalSec * time.Second
	}
	if s.RunsPerSecond == 0 {
		s.RunsPerSecond = defaultRunsPerSecond
	}
}

func setDatabaseDefaults(d *DatabaseConfig) {
	if d.Driver == "" {
		d.Driver = defaultDBDriver
	}
	if d.Path == "" {
		d.Path = defaultDBPath
	}
	if d.Host == "" {
		d.Host = defaultDBHost
	}
	if d.Port == 0 {
		d.Port = defaultDBPort
	}
	if d.User == "" {
		d.User = defaultDBUser
	}
	if d.Database == "" {
		d.Database = defaultDBName
	}
	if d.SSLMode == "" {
		d.SSLMode = defaultDBSSLMode
	}
	if d.MaxConnections == 0 {
		d.MaxConnections = defaultDBMaxConns
	}
	if d.MaxIdleConns == 0 {
		d.MaxIdleConns = defaultDBMaxIdleConns
	}
	if d.ConnMaxLifetime == 0 {
		d.ConnMaxLifetime = time.Hour
	}
}

func setRedisDefaults(r *RedisConfig) {
	if r.Addr == "" {
		r.Addr = defaultRedisAddr
	}
	if r.Timeout == 0 {
		r.Timeout = defaultRedisTimeoutSec * time.Second
	}
}

func setLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
	if l.Format == "" {
		l.Format = defaultLogFormat
	}
}

func setPipelineDefaults(p *PipelineConfig) {
	if p.Reasoning.Groq.BaseURL == "" {
		p.Reasoning.Groq.BaseURL = defaultGroqBaseURL
	}
	if p.Reasoning.Groq.Model == "" {
		p.Reasoning.Groq.Model = defaultGroqModel
	}
	if p.Reasoning.Groq.Timeout == 0 {
		p.Reasoning.Groq.Timeout = defaultCallTimeoutSec * time.Second
	}
	if p.Reasoning.Gemini.BaseURL == "" {
		p.Reasoning.Gemini.BaseURL = defaultGeminiBaseURL
	}
	if p.Reasoning.Gemini.Model == "" {
		p.Reasoning.Gemini.Model = defaultGeminiModel
	}
	if p.Reasoning.Gemini.Timeout == 0 {
		p.Reasoning.Gemini.Timeout = defaultCallTimeoutSec * time.Second
	}
	if p.Transcription.Timeout == 0 {
		p.Transcription.Timeout = defaultCallTimeoutSec * time.Second
	}
	if p.OCR.Timeout == 0 {
		p.OCR.Timeout = defaultCallTimeoutSec * time.Second
	}
	if p.Geocode.BaseURL == "" {
		p.Geocode.BaseURL = defaultGeocodeBaseURL
	}
	if p.Geocode.UserAgent == "" {
		p.Geocode.UserAgent = defaultGeocodeUserAgent
	}
	if p.Geocode.Timeout == 0 {
		p.Geocode.Timeout = defaultCallTimeoutSec * time.Second
	}
	if p.ReviewThreshold == 0 {
		p.ReviewThreshold = defaultReviewThreshold
	}
}
