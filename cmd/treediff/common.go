package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mutagen-io/treediff/pkg/configuration"
	"github.com/mutagen-io/treediff/pkg/logging"
	"github.com/mutagen-io/treediff/pkg/treediff"
)

// loadEnvironmentFile loads the environment file specified on the command
// line, if any. Variables already present in the environment take precedence.
func loadEnvironmentFile(_ *cobra.Command, _ []string) error {
	if rootConfiguration.environmentFile == "" {
		return nil
	}
	if err := godotenv.Load(rootConfiguration.environmentFile); err != nil {
		return fmt.Errorf("unable to load environment file: %w", err)
	}
	return nil
}

// settings bundles the resolved configuration and logger for a command.
type settings struct {
	// configuration is the resolved configuration.
	configuration *configuration.Configuration
	// logger is the root logger, writing to standard error.
	logger *logging.Logger
}

// loadSettings loads the configuration file, applies command line and
// environment overrides, and creates the root logger.
func loadSettings() (*settings, error) {
	// Load the configuration.
	path, err := configuration.Path()
	if err != nil {
		return nil, fmt.Errorf("unable to compute configuration path: %w", err)
	}
	config, err := configuration.Load(path)
	if err != nil {
		return nil, fmt.Errorf("unable to load configuration: %w", err)
	}

	// Apply the log level override, if any.
	if rootConfiguration.logLevel != "" {
		level, ok := logging.NameToLevel(rootConfiguration.logLevel)
		if !ok {
			return nil, fmt.Errorf("invalid log level: %s", rootConfiguration.logLevel)
		}
		config.Logging.Level = level
	}

	// Force debug logging if requested by the environment.
	if treediff.DebugEnabled && config.Logging.Level < logging.LevelDebug {
		config.Logging.Level = logging.LevelDebug
	}

	// Success.
	return &settings{
		configuration: config,
		logger:        logging.NewLogger(config.Logging.Level, os.Stderr),
	}, nil
}
