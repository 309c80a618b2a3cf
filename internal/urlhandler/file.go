package urlhandler

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// ReadAddressesFromFile reads a file line by line and returns the non-blank
// lines as raw address strings. Lines are trimmed of surrounding whitespace
// but otherwise untouched: canonicalization is the pipeline's job, not the
// reader's.
func ReadAddressesFromFile(filePath string, logger zerolog.Logger) ([]string, error) {
	fileLogger := logger.With().Str("file_path", filePath).Logger()

	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		fileLogger.Error().Err(err).Msg("Input file not found")
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, filePath)
	}
	if err != nil {
		fileLogger.Error().Err(err).Msg("Error checking file stat")
		return nil, fmt.Errorf("error checking file %s: %v", filePath, err)
	}
	if info.IsDir() {
		fileLogger.Error().Msg("Input path is a directory, not a file")
		return nil, fmt.Errorf("input path is a directory, not a file: %s", filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		if os.IsPermission(err) {
			fileLogger.Error().Err(err).Msg("Permission denied reading input file")
			return nil, fmt.Errorf("%w: %s", ErrFilePermission, filePath)
		}
		fileLogger.Error().Err(err).Msg("Error opening input file")
		return nil, fmt.Errorf("%w: %s (cause: %v)", ErrReadingFile, filePath, err)
	}
	defer file.Close()

	if info.Size() == 0 {
		fileLogger.Warn().Msg("Input file is empty (0 bytes)")
		return nil, fmt.Errorf("%w: %s", ErrFileEmpty, filePath)
	}

	var addresses []string
	totalLinesRead := 0
	skippedBlank := 0

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		totalLinesRead++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			skippedBlank++
			continue
		}
		addresses = append(addresses, line)
	}
	if scanErr := scanner.Err(); scanErr != nil {
		fileLogger.Error().Err(scanErr).Msg("Error during scanning of file")
		return nil, fmt.Errorf("%w: %s (scan error: %v)", ErrReadingFile, filePath, scanErr)
	}

	fileLogger.Info().
		Int("total_lines_read", totalLinesRead).
		Int("addresses", len(addresses)).
		Int("skipped_blank", skippedBlank).
		Msg("Finished reading input file")

	return addresses, nil
}
