package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mutagen-io/treediff/cmd"
	"github.com/mutagen-io/treediff/cmd/treediff/common/templating"
	"github.com/mutagen-io/treediff/pkg/filesystem"
	"github.com/mutagen-io/treediff/pkg/ignore"
	"github.com/mutagen-io/treediff/pkg/snapshot"
)

// errInterrupted indicates that waiting between scans was interrupted by a
// termination signal.
var errInterrupted = errors.New("interrupted")

// report is the data structure provided to diff output templates.
type report struct {
	// Root is the absolute path of the snapshot root.
	Root string `json:"root"`
	// Older is the identifier of the older snapshot.
	Older string `json:"older"`
	// Newer is the identifier of the newer snapshot.
	Newer string `json:"newer"`
	// Changes are the reported changes.
	Changes []snapshot.Change `json:"changes"`
}

// changeLine formats a change as a single line of human-readable output.
func changeLine(change snapshot.Change) string {
	path := change.Path
	if change.Directory {
		path += string(os.PathSeparator)
	}
	switch change.Kind {
	case snapshot.ChangeKindAdd:
		return color.GreenString("+ %s", path)
	case snapshot.ChangeKindDelete:
		return color.RedString("- %s", path)
	default:
		return color.YellowString("~ %s", path)
	}
}

// printChanges prints changes in human-readable form.
func printChanges(writer io.Writer, changes []snapshot.Change) {
	if len(changes) == 0 {
		fmt.Fprintln(writer, "No changes")
		return
	}
	for _, change := range changes {
		fmt.Fprintln(writer, changeLine(change))
	}
}

// waitForRescan blocks until the next scan should be performed. If an interval
// is specified, then it waits for that interval. Otherwise it waits for the
// user to press Enter. Termination signals abort the wait.
func waitForRescan(interval time.Duration) error {
	// Set up signal handling.
	signalTermination := make(chan os.Signal, 1)
	signal.Notify(signalTermination, cmd.TerminationSignals...)
	defer signal.Stop(signalTermination)

	// Wait for the interval to elapse, if one is specified.
	if interval > 0 {
		timer := time.NewTimer(interval)
		defer timer.Stop()
		select {
		case <-timer.C:
			return nil
		case <-signalTermination:
			return errInterrupted
		}
	}

	// Otherwise wait for the user to press Enter.
	fmt.Fprint(color.Error, "Press Enter to rescan...")
	input := make(chan error, 1)
	go func() {
		_, err := bufio.NewReader(os.Stdin).ReadString('\n')
		input <- err
	}()
	select {
	case err := <-input:
		if err != nil {
			return fmt.Errorf("unable to read from standard input: %w", err)
		}
		return nil
	case <-signalTermination:
		return errInterrupted
	}
}

// diffMain is the entry point for the diff command.
func diffMain(command *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 1 {
		return errors.New("scan root path required")
	}

	// Determine how rescans will be triggered.
	if diffConfiguration.interval < 0 {
		return errors.New("negative rescan interval")
	} else if diffConfiguration.interval == 0 && !cmd.StandardInputIsTerminal() {
		return errors.New("rescan interval required when standard input is not a terminal")
	}

	// Load settings.
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	// Resolve the diff mode.
	mode := settings.configuration.Diff.Mode
	if diffConfiguration.mode != "" {
		if err := mode.UnmarshalText([]byte(diffConfiguration.mode)); err != nil {
			return fmt.Errorf("invalid diff mode: %w", err)
		}
	}

	// Create the ignorer.
	var patterns []string
	patterns = append(patterns, settings.configuration.Report.Ignore...)
	patterns = append(patterns, diffConfiguration.ignores...)
	ignorer, err := ignore.NewIgnorer(patterns)
	if err != nil {
		return fmt.Errorf("unable to parse ignore patterns: %w", err)
	}

	// Load the output template, if any.
	template, err := diffConfiguration.templateFlags.LoadTemplate()
	if err != nil {
		return fmt.Errorf("unable to load formatting template: %w", err)
	}

	// Normalize the root path.
	path, err := filesystem.Normalize(arguments[0])
	if err != nil {
		return fmt.Errorf("unable to normalize root path: %w", err)
	}

	// Perform the initial scan.
	statusLinePrinter := &cmd.StatusLinePrinter{}
	older, duration, err := performScan(path, settings, statusLinePrinter)
	if err != nil {
		return fmt.Errorf("unable to perform initial scan: %w", err)
	}
	settings.logger.Infof("Initial snapshot %s took %s", older.Identifier, duration)

	// Wait for the rescan trigger.
	if err := waitForRescan(diffConfiguration.interval); err != nil {
		return err
	}

	// Perform the second scan.
	newer, duration, err := performScan(path, settings, statusLinePrinter)
	if err != nil {
		return fmt.Errorf("unable to perform rescan: %w", err)
	}
	settings.logger.Infof("Rescan snapshot %s took %s", newer.Identifier, duration)

	// Compute, filter, and sort changes.
	changes := snapshot.DiffWithMode(older, newer, mode)
	changes = ignorer.FilterChanges(older.RootPath(), changes)
	if settings.configuration.Diff.Sort && !diffConfiguration.unsorted {
		snapshot.SortChanges(changes)
	}

	// Print the changes.
	output := command.OutOrStdout()
	if template != nil {
		data := &report{
			Root:    older.RootPath(),
			Older:   older.Identifier,
			Newer:   newer.Identifier,
			Changes: changes,
		}
		if err := template.Execute(output, data); err != nil {
			return fmt.Errorf("unable to execute formatting template: %w", err)
		}
	} else {
		printChanges(output, changes)
	}

	// Success.
	return nil
}

// diffCommand is the diff command.
var diffCommand = &cobra.Command{
	Use:          "diff <path>",
	Short:        "Scan a directory twice and report the changes between scans",
	Run:          cmd.Mainify(diffMain),
	SilenceUsage: true,
}

// diffConfiguration stores configuration for the diff command.
var diffConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// interval is the delay between scans. If zero, then the command waits
	// for the user to press Enter.
	interval time.Duration
	// mode overrides the configured diff mode, if non-empty.
	mode string
	// ignores are additional report ignore patterns.
	ignores []string
	// unsorted disables sorting of changes.
	unsorted bool
	// templateFlags stores command line formatting flags.
	templateFlags templating.TemplateFlags
}

func init() {
	// Grab a handle for the command line flags.
	flags := diffCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&diffConfiguration.help, "help", "h", false, "Show help information")

	// Wire up diff flags.
	flags.DurationVarP(&diffConfiguration.interval, "interval", "n", 0, "Rescan after the specified interval instead of waiting for Enter")
	flags.StringVarP(&diffConfiguration.mode, "mode", "m", "", "Override the diff mode (short-circuit|exhaustive)")
	flags.StringArrayVarP(&diffConfiguration.ignores, "ignore", "i", nil, "Exclude changes matching the specified pattern from the report")
	flags.BoolVar(&diffConfiguration.unsorted, "unsorted", false, "Report changes in detection order")

	// Wire up formatting flags.
	diffConfiguration.templateFlags.Register(flags)
}
