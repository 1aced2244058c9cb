package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Bluesky  BlueskyConfig  `yaml:"bluesky"`
	Labeler  LabelerConfig  `yaml:"labeler"`
	Stream   StreamConfig   `yaml:"stream"`
	Resume   ResumeConfig   `yaml:"resume"`
	Export   ExportConfig   `yaml:"export"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// BlueskyConfig holds the account credentials and HTTP settings used for
// every XRPC call (session, labeler record, moderation events, post reads).
type BlueskyConfig struct {
	ServiceURL        string        `yaml:"service_url"         env:"BSKY_SERVICE_URL"         env-default:"https://bsky.social"`
	Identifier        string        `yaml:"identifier"          env:"BSKY_USER"`
	Password          string        `yaml:"password"            env:"BSKY_PASS"`
	RequestTimeout    time.Duration `yaml:"request_timeout"     env:"BSKY_REQUEST_TIMEOUT"     env-default:"15s"`
	RequestsPerSecond float64       `yaml:"requests_per_second" env:"BSKY_REQUESTS_PER_SECOND" env-default:"5"`
	Burst             int           `yaml:"burst"               env:"BSKY_BURST"               env-default:"10"`
}

// LabelerConfig identifies the labeler account and the curated account whose
// posts carry label definitions.
type LabelerConfig struct {
	DID       string `yaml:"did"        env:"OZONE_SERVICE_USER_DID"`
	TargetDID string `yaml:"target_did" env:"LABELER_TARGET_DID"`
	// RemapPath points to an optional YAML mapping of derived slug -> published slug.
	RemapPath string `yaml:"remap_path" env:"LABELER_REMAP_PATH"`
}

// StreamConfig holds Jetstream subscription and checkpoint settings.
type StreamConfig struct {
	Endpoint              string        `yaml:"endpoint"                env:"STREAM_ENDPOINT"                env-default:"wss://jetstream2.us-east.bsky.network/subscribe"`
	Collection            string        `yaml:"collection"              env:"STREAM_COLLECTION"              env-default:"app.bsky.feed.like"`
	StartupDelay          time.Duration `yaml:"startup_delay"           env:"STREAM_STARTUP_DELAY"           env-default:"15s"`
	CheckpointInterval    time.Duration `yaml:"checkpoint_interval"     env:"STREAM_CHECKPOINT_INTERVAL"     env-default:"30s"`
	BufferSize            int           `yaml:"buffer_size"             env:"STREAM_BUFFER_SIZE"             env-default:"256"`
	MaxCheckpointFailures int           `yaml:"max_checkpoint_failures" env:"STREAM_MAX_CHECKPOINT_FAILURES" env-default:"5"`
}

// ResumeConfig controls how the pipeline is restarted after it stops.
type ResumeConfig struct {
	Cooldown       time.Duration `yaml:"cooldown"        env:"RESUME_COOLDOWN"        env-default:"1m"`
	Margin         time.Duration `yaml:"margin"          env:"RESUME_MARGIN"          env-default:"3s"`
	StatusInterval time.Duration `yaml:"status_interval" env:"RESUME_STATUS_INTERVAL" env-default:"3h"`
}

// ExportConfig holds the optional diagnostic label dump settings.
type ExportConfig struct {
	Enabled  bool          `yaml:"enabled"   env:"GENERATE_JSON_FILE_OF_SPECIES" env-default:"false"`
	Dir      string        `yaml:"dir"       env:"EXPORT_DIR"                    env-default:"/tmp/labels"`
	FileName string        `yaml:"file_name" env:"EXPORT_FILE_NAME"              env-default:"labels.json"`
	Interval time.Duration `yaml:"interval"  env:"EXPORT_INTERVAL"               env-default:"10m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
