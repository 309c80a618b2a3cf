package config

// GlobalConfig contains all configuration sections for the application.
type GlobalConfig struct {
	InputConfig   InputConfig   `json:"input_config,omitempty" yaml:"input_config,omitempty"`
	LogConfig     LogConfig     `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	ProberConfig  ProberConfig  `json:"prober_config,omitempty" yaml:"prober_config,omitempty"`
	StorageConfig StorageConfig `json:"storage_config,omitempty" yaml:"storage_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values.
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		InputConfig:   NewDefaultInputConfig(),
		LogConfig:     NewDefaultLogConfig(),
		ProberConfig:  NewDefaultProberConfig(),
		StorageConfig: NewDefaultStorageConfig(),
	}
}

// InputConfig defines where raw addresses come from when the -file flag is
// not given: an inline list first, then an input file.
type InputConfig struct {
	InputURLs []string `json:"input_urls,omitempty" yaml:"input_urls,omitempty"`
	InputFile string   `json:"input_file,omitempty" yaml:"input_file,omitempty"`
}

// NewDefaultInputConfig creates default input configuration.
func NewDefaultInputConfig() InputConfig {
	return InputConfig{}
}

// LogConfig defines configuration for logging.
type LogConfig struct {
	LogFile       string `json:"log_file,omitempty" yaml:"log_file,omitempty"`
	LogFormat     string `json:"log_format,omitempty" yaml:"log_format,omitempty" validate:"omitempty,logformat"`
	LogLevel      string `json:"log_level,omitempty" yaml:"log_level,omitempty" validate:"omitempty,loglevel"`
	MaxLogBackups int    `json:"max_log_backups,omitempty" yaml:"max_log_backups,omitempty" validate:"min=0"`
	MaxLogSizeMB  int    `json:"max_log_size_mb,omitempty" yaml:"max_log_size_mb,omitempty" validate:"min=1"`
}

// NewDefaultLogConfig creates default log configuration.
func NewDefaultLogConfig() LogConfig {
	return LogConfig{
		LogFile:       DefaultLogFile,
		LogFormat:     DefaultLogFormat,
		LogLevel:      DefaultLogLevel,
		MaxLogBackups: DefaultMaxLogBackups,
		MaxLogSizeMB:  DefaultMaxLogSizeMB,
	}
}

// ProberConfig defines configuration for the latency prober.
type ProberConfig struct {
	// TimeoutSeconds bounds a single probe. 0 means no timeout: a hung
	// server stalls the run until the transport itself gives up.
	TimeoutSeconds     int    `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty" validate:"min=0"`
	UserAgent          string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	InsecureSkipVerify bool   `json:"insecure_skip_verify,omitempty" yaml:"insecure_skip_verify,omitempty"`
	FollowRedirects    bool   `json:"follow_redirects,omitempty" yaml:"follow_redirects,omitempty"`
	MaxRedirects       int    `json:"max_redirects,omitempty" yaml:"max_redirects,omitempty" validate:"min=0"`
	EnableHTTP2        bool   `json:"enable_http2,omitempty" yaml:"enable_http2,omitempty"`
}

// NewDefaultProberConfig creates default prober configuration.
func NewDefaultProberConfig() ProberConfig {
	return ProberConfig{
		TimeoutSeconds:     DefaultProberTimeoutSecs,
		UserAgent:          DefaultProberUserAgent,
		InsecureSkipVerify: false,
		FollowRedirects:    true,
		MaxRedirects:       DefaultProberMaxRedirects,
		EnableHTTP2:        false,
	}
}

// StorageConfig defines where results are written. OutputFile is the JSON
// artifact every run produces; ParquetBasePath and HistoryDBPath enable the
// optional Parquet export and SQLite run history when non-empty.
type StorageConfig struct {
	OutputFile       string `json:"output_file,omitempty" yaml:"output_file,omitempty"`
	ParquetBasePath  string `json:"parquet_base_path,omitempty" yaml:"parquet_base_path,omitempty"`
	CompressionCodec string `json:"compression_codec,omitempty" yaml:"compression_codec,omitempty" validate:"omitempty,compressioncodec"`
	HistoryDBPath    string `json:"history_db_path,omitempty" yaml:"history_db_path,omitempty"`
}

// NewDefaultStorageConfig creates default storage configuration.
func NewDefaultStorageConfig() StorageConfig {
	return StorageConfig{
		OutputFile:       DefaultOutputFile,
		CompressionCodec: DefaultStorageCompressionCodec,
	}
}
