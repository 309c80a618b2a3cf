package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultGlobalConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()

	assert.Equal(t, DefaultLogLevel, cfg.LogConfig.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogConfig.LogFormat)
	assert.Equal(t, DefaultMaxLogSizeMB, cfg.LogConfig.MaxLogSizeMB)

	assert.Equal(t, DefaultProberTimeoutSecs, cfg.ProberConfig.TimeoutSeconds)
	assert.Equal(t, DefaultProberUserAgent, cfg.ProberConfig.UserAgent)
	assert.True(t, cfg.ProberConfig.FollowRedirects)
	assert.Equal(t, DefaultProberMaxRedirects, cfg.ProberConfig.MaxRedirects)

	assert.Equal(t, DefaultOutputFile, cfg.StorageConfig.OutputFile)
	assert.Equal(t, DefaultStorageCompressionCodec, cfg.StorageConfig.CompressionCodec)

	assert.Empty(t, cfg.InputConfig.InputURLs)
	assert.Empty(t, cfg.InputConfig.InputFile)
}

func TestLoadGlobalConfig_YAML(t *testing.T) {
	content := `
input_config:
  input_urls:
    - www.example.com
    - https://www.example.org
log_config:
  log_level: debug
prober_config:
  timeout_seconds: 30
  user_agent: custom-agent/2.0
storage_config:
  output_file: results.json
  parquet_base_path: exports
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadGlobalConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"www.example.com", "https://www.example.org"}, cfg.InputConfig.InputURLs)
	assert.Equal(t, "debug", cfg.LogConfig.LogLevel)
	assert.Equal(t, 30, cfg.ProberConfig.TimeoutSeconds)
	assert.Equal(t, "custom-agent/2.0", cfg.ProberConfig.UserAgent)
	assert.Equal(t, "results.json", cfg.StorageConfig.OutputFile)
	assert.Equal(t, "exports", cfg.StorageConfig.ParquetBasePath)

	// Sections absent from the file keep their defaults.
	assert.Equal(t, DefaultStorageCompressionCodec, cfg.StorageConfig.CompressionCodec)
	assert.Equal(t, DefaultProberMaxRedirects, cfg.ProberConfig.MaxRedirects)
}

func TestLoadGlobalConfig_JSON(t *testing.T) {
	content := `{
  "prober_config": {"timeout_seconds": 15},
  "storage_config": {"output_file": "out.json"}
}`
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadGlobalConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.ProberConfig.TimeoutSeconds)
	assert.Equal(t, "out.json", cfg.StorageConfig.OutputFile)
}

func TestLoadGlobalConfig_MissingProvidedPath(t *testing.T) {
	_, err := LoadGlobalConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadGlobalConfig_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prober_config: [not a map"), 0644))

	_, err := LoadGlobalConfig(path)
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, ValidateConfig(NewDefaultGlobalConfig()))
	})

	t.Run("bad log level", func(t *testing.T) {
		cfg := NewDefaultGlobalConfig()
		cfg.LogConfig.LogLevel = "shouting"

		err := ValidateConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "loglevel")
	})

	t.Run("bad log format", func(t *testing.T) {
		cfg := NewDefaultGlobalConfig()
		cfg.LogConfig.LogFormat = "xml"

		assert.Error(t, ValidateConfig(cfg))
	})

	t.Run("bad compression codec", func(t *testing.T) {
		cfg := NewDefaultGlobalConfig()
		cfg.StorageConfig.CompressionCodec = "lz9"

		assert.Error(t, ValidateConfig(cfg))
	})

	t.Run("negative timeout", func(t *testing.T) {
		cfg := NewDefaultGlobalConfig()
		cfg.ProberConfig.TimeoutSeconds = -1

		assert.Error(t, ValidateConfig(cfg))
	})
}

func TestGetConfigPath_ProvidedWins(t *testing.T) {
	assert.Equal(t, "/some/explicit/path.yaml", GetConfigPath("/some/explicit/path.yaml"))
}

func TestGetConfigPath_EnvFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env-config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))
	t.Setenv("HTTPLATENCY_CONFIG_PATH", path)

	assert.Equal(t, path, GetConfigPath(""))
}
