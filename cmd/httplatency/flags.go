package main

import "flag"

// AppFlags holds the parsed command-line arguments.
type AppFlags struct {
	InputFile  string
	OutputFile string
	ConfigFile string
}

// ParseFlags parses the command-line flags. Each flag has a long form and a
// single-letter alias; the long form wins when both are set.
func ParseFlags() AppFlags {
	inputFile := flag.String("file", "", "Path to a text file containing addresses to probe, one per line.")
	inputFileAlias := flag.String("f", "", "Alias for -file")

	outputFile := flag.String("output", "", "Path for the JSON output file. Defaults to output.json if not set here or in the config.")
	outputFileAlias := flag.String("o", "", "Alias for -output")

	configFile := flag.String("config", "", "Path to the YAML/JSON configuration file. If not set, searches default locations.")
	configFileAlias := flag.String("c", "", "Alias for -config")

	flag.Parse()

	flags := AppFlags{}

	if *inputFile != "" {
		flags.InputFile = *inputFile
	} else if *inputFileAlias != "" {
		flags.InputFile = *inputFileAlias
	}

	if *outputFile != "" {
		flags.OutputFile = *outputFile
	} else if *outputFileAlias != "" {
		flags.OutputFile = *outputFileAlias
	}

	if *configFile != "" {
		flags.ConfigFile = *configFile
	} else if *configFileAlias != "" {
		flags.ConfigFile = *configFileAlias
	}

	return flags
}
