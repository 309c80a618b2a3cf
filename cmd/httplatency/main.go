package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/camford/httplatency/internal/config"
	"github.com/camford/httplatency/internal/datastore"
	"github.com/camford/httplatency/internal/logger"
	"github.com/camford/httplatency/internal/models"
	"github.com/camford/httplatency/internal/prober"
	"github.com/camford/httplatency/internal/runner"
	"github.com/camford/httplatency/internal/urlhandler"
)

func main() {
	flags := ParseFlags()

	gCfg, err := config.LoadGlobalConfig(flags.ConfigFile)
	if err != nil {
		log.Fatalf("[FATAL] Could not load config using path '%s': %v", flags.ConfigFile, err)
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		zLogger.Fatal().Err(err).Msg("Configuration validation failed")
	}

	if flags.OutputFile != "" {
		gCfg.StorageConfig.OutputFile = flags.OutputFile
	}

	zLogger.Info().Msg("HTTP(S) Latency tool starting")

	// Graceful shutdown: an interrupt stops probing after the current
	// address; whatever was measured so far is still written out.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		zLogger.Info().Str("signal", sig.String()).Msg("Received interrupt signal, finishing current probe")
		cancel()
	}()

	rawAddresses := loadAddresses(flags, gCfg, zLogger)
	if len(rawAddresses) == 0 {
		zLogger.Fatal().Msg("No addresses provided. Specify -file, or input_config in the config file.")
	}

	latencyProber, err := prober.New(gCfg.ProberConfig, zLogger)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to initialize prober")
	}

	startedAt := time.Now()
	records, _ := runner.New(latencyProber, zLogger).Run(ctx, rawAddresses)

	jsonWriter := datastore.NewJSONWriter(zLogger)
	if err := jsonWriter.Write(records, gCfg.StorageConfig.OutputFile); err != nil {
		zLogger.Fatal().Err(err).Str("file_path", gCfg.StorageConfig.OutputFile).Msg("Error writing output file")
	}

	// The Parquet export and the run history are conveniences layered on
	// top of the JSON artifact; their failures are logged, not fatal.
	if gCfg.StorageConfig.ParquetBasePath != "" {
		exportParquet(gCfg, records, startedAt, zLogger)
	}
	if gCfg.StorageConfig.HistoryDBPath != "" {
		recordHistory(ctx, gCfg, records, startedAt, zLogger)
	}

	zLogger.Info().Msg("Exiting")
}

// loadAddresses resolves the raw address list: the -file flag first, then
// the config's inline list, then the config's input file.
func loadAddresses(flags AppFlags, gCfg *config.GlobalConfig, zLogger zerolog.Logger) []string {
	if flags.InputFile != "" {
		addresses, err := urlhandler.ReadAddressesFromFile(flags.InputFile, zLogger)
		if err != nil {
			zLogger.Fatal().Err(err).Str("file_path", flags.InputFile).Msg("Unable to read input file")
		}
		return addresses
	}

	if len(gCfg.InputConfig.InputURLs) > 0 {
		zLogger.Info().Int("count", len(gCfg.InputConfig.InputURLs)).Msg("Using addresses from input_config.input_urls")
		return gCfg.InputConfig.InputURLs
	}

	if gCfg.InputConfig.InputFile != "" {
		addresses, err := urlhandler.ReadAddressesFromFile(gCfg.InputConfig.InputFile, zLogger)
		if err != nil {
			zLogger.Fatal().Err(err).Str("file_path", gCfg.InputConfig.InputFile).Msg("Unable to read config input file")
		}
		return addresses
	}

	return nil
}

func exportParquet(gCfg *config.GlobalConfig, records []models.LatencyRecord, startedAt time.Time, zLogger zerolog.Logger) {
	parquetWriter, err := datastore.NewParquetWriter(&gCfg.StorageConfig, zLogger)
	if err != nil {
		zLogger.Error().Err(err).Msg("Failed to initialize Parquet writer")
		return
	}
	if _, err := parquetWriter.Write(records, startedAt); err != nil {
		zLogger.Error().Err(err).Msg("Failed to export Parquet file")
	}
}

func recordHistory(ctx context.Context, gCfg *config.GlobalConfig, records []models.LatencyRecord, startedAt time.Time, zLogger zerolog.Logger) {
	store, err := datastore.NewHistoryStore(ctx, gCfg.StorageConfig.HistoryDBPath, zLogger)
	if err != nil {
		zLogger.Error().Err(err).Str("db_path", gCfg.StorageConfig.HistoryDBPath).Msg("Failed to open history database")
		return
	}
	defer store.Close()

	if _, err := store.RecordRun(ctx, startedAt, records); err != nil {
		zLogger.Error().Err(err).Msg("Failed to record run in history database")
	}
}
