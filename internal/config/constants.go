package config

const (
	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Prober Defaults. The zero timeout preserves the tool's classic
	// blocking behavior; set prober_config.timeout_seconds to bound requests.
	DefaultProberTimeoutSecs  = 0
	DefaultProberUserAgent    = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_10_5) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/47.0.2526.106 Safari/537.36"
	DefaultProberMaxRedirects = 10

	// Storage Defaults
	DefaultOutputFile              = "output.json"
	DefaultStorageCompressionCodec = "zstd"
)
