package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/mutagen-io/treediff/cmd"
	"github.com/mutagen-io/treediff/cmd/profile"
	"github.com/mutagen-io/treediff/pkg/filesystem"
	"github.com/mutagen-io/treediff/pkg/snapshot"
)

// performScan scans the specified path while displaying a status line.
func performScan(path string, settings *settings, statusLinePrinter *cmd.StatusLinePrinter) (*snapshot.Tree, time.Duration, error) {
	statusLinePrinter.Print("Scanning " + path)
	start := time.Now()
	tree, err := snapshot.Scan(path, settings.logger.Sublogger("scan"))
	duration := time.Since(start)
	statusLinePrinter.Clear()
	return tree, duration, err
}

// printSummary prints snapshot statistics.
func printSummary(writer io.Writer, tree *snapshot.Tree, duration time.Duration) {
	statistics := tree.Statistics()
	fmt.Fprintln(writer, "Snapshot:", tree.Identifier)
	fmt.Fprintln(writer, "Root:", tree.RootPath())
	fmt.Fprintln(writer, "Directories:", statistics.Directories)
	fmt.Fprintln(writer, "Files:", statistics.Files)
	fmt.Fprintln(writer, "Total size:", humanize.Bytes(statistics.TotalFileSize))
	fmt.Fprintln(writer, "Scan time:", duration)
}

// scanMain is the entry point for the scan command.
func scanMain(command *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 1 {
		return errors.New("scan root path required")
	}

	// Load settings.
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	// Normalize the root path.
	path, err := filesystem.Normalize(arguments[0])
	if err != nil {
		return fmt.Errorf("unable to normalize root path: %w", err)
	}

	// Start profiling if requested.
	if scanConfiguration.profile != "" {
		profiler, err := profile.New(scanConfiguration.profile, "scan")
		if err != nil {
			return fmt.Errorf("unable to start profiling: %w", err)
		}
		defer func() {
			if err := profiler.Finalize(); err != nil {
				cmd.Warning(fmt.Sprintf("unable to finalize profile: %v", err))
			}
		}()
	}

	// Perform the scan.
	tree, duration, err := performScan(path, settings, &cmd.StatusLinePrinter{})
	if err != nil {
		return fmt.Errorf("unable to scan: %w", err)
	}

	// Print the summary or the file listing.
	output := command.OutOrStdout()
	if scanConfiguration.summary {
		printSummary(output, tree, duration)
	} else {
		for _, file := range tree.Files() {
			fmt.Fprintln(output, file)
		}
	}

	// Success.
	return nil
}

// scanCommand is the scan command.
var scanCommand = &cobra.Command{
	Use:          "scan <path>",
	Short:        "Scan a directory and list its files",
	Run:          cmd.Mainify(scanMain),
	SilenceUsage: true,
}

// scanConfiguration stores configuration for the scan command.
var scanConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// summary indicates whether or not to print statistics instead of the
	// file listing.
	summary bool
	// profile is the directory in which to write profiles, if non-empty.
	profile string
}

func init() {
	// Grab a handle for the command line flags.
	flags := scanCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&scanConfiguration.help, "help", "h", false, "Show help information")

	// Wire up scan flags.
	flags.BoolVarP(&scanConfiguration.summary, "summary", "s", false, "Print snapshot statistics instead of the file listing")
	flags.StringVar(&scanConfiguration.profile, "profile", "", "Write CPU and heap profiles to the specified directory")
}
