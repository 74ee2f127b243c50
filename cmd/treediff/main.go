package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mutagen-io/treediff/pkg/treediff"
)

// rootMain is the entry point for the root command.
func rootMain(command *cobra.Command, _ []string) error {
	// If no commands were given, then print help information and bail. We don't
	// have to worry about warning about arguments being present here (which
	// would be incorrect usage) because arguments can't even reach this point
	// (they will be mistaken for subcommands and a error will be displayed).
	command.Help()

	// Success.
	return nil
}

// rootCommand is the root command.
var rootCommand = &cobra.Command{
	Use:               "treediff",
	Version:           treediff.Version,
	Short:             "Detect filesystem changes between directory snapshots",
	RunE:              rootMain,
	PersistentPreRunE: loadEnvironmentFile,
	SilenceUsage:      true,
}

// rootConfiguration stores configuration for the root command.
var rootConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// environmentFile is the path to an environment file to load before
	// resolving configuration.
	environmentFile string
	// logLevel overrides the configured log level, if non-empty.
	logLevel string
}

func init() {
	// Disable Cobra's command sorting behavior. By default, it sorts commands
	// alphabetically in the help output.
	cobra.EnableCommandSorting = false

	// Set the template used by the version flag.
	rootCommand.SetVersionTemplate("treediff version {{ .Version }}\n")

	// Grab a handle for the command line flags.
	flags := rootCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&rootConfiguration.help, "help", "h", false, "Show help information")

	// Register flags shared by all commands.
	persistentFlags := rootCommand.PersistentFlags()
	persistentFlags.SortFlags = false
	persistentFlags.StringVar(&rootConfiguration.environmentFile, "env-file", "", "Load environment variables from the specified file")
	persistentFlags.StringVarP(&rootConfiguration.logLevel, "log-level", "l", "", "Override the configured log level")

	// Disable Cobra's completion command.
	rootCommand.CompletionOptions.DisableDefaultCmd = true

	// Register commands. We do this here (rather than in individual init
	// functions) so that we can control the order.
	rootCommand.AddCommand(
		scanCommand,
		diffCommand,
		versionCommand,
	)
}

func main() {
	// Execute the root command.
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
