// Command simpleselect asks the user to pick one item in the terminal and
// prints the chosen value.
package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/simpleselect/pkg/simpleselect"
	"github.com/BrandonKowalski/simpleselect/pkg/simpleselect/tui"
)

var errAborted = errors.New("aborted")

type options struct {
	configPath string
	itemsPath  string
	value      string
	rows       int
	locale     string
	logPath    string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "simpleselect [flags] [item...]",
		Short: "pick one item from a list in the terminal",
		Example: `
simpleselect Alice Bob Clara
simpleselect --value bob "Alice=alice" "!Bob=bob" "Clara=clara"
simpleselect --items pets.txt --config select.toml
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "TOML settings file")
	flags.StringVarP(&opts.itemsPath, "items", "i", "", "file with one item per line")
	flags.StringVar(&opts.value, "value", "", "initially selected value")
	flags.IntVar(&opts.rows, "height", 10, "number of visible rows")
	flags.StringVar(&opts.locale, "locale", "", "message locale, overrides the settings file")
	flags.StringVar(&opts.logPath, "log-path", "", "write logs to this file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	if opts.logPath != "" {
		simpleselect.SetLogPath(opts.logPath)
	}
	if opts.logLevel != "" {
		simpleselect.SetRawLogLevel(opts.logLevel)
	}
	defer simpleselect.CloseLogger()

	settings := simpleselect.DefaultSettings()
	if opts.configPath != "" {
		loaded, err := simpleselect.LoadSettings(opts.configPath)
		if err != nil {
			return err
		}
		settings = loaded
	}
	if opts.locale != "" {
		settings.Locale = opts.locale
	}

	items, err := collectItems(opts.itemsPath, args)
	if err != nil {
		return err
	}

	messages, err := simpleselect.NewMessages(settings.Locale)
	if err != nil {
		return err
	}

	sel := simpleselect.New(items, settings)
	defer sel.Close()
	if opts.value != "" {
		sel.WriteValue(opts.value)
	}

	logger := simpleselect.GetLogger()
	logger.Debug("Starting select", "items", sel.Len(), "rows", opts.rows, "locale", messages.Tag().String())

	model := tui.New(sel, messages, opts.rows)
	if _, err := tea.NewProgram(model, tea.WithOutput(cmd.ErrOrStderr())).Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}

	if model.Aborted() {
		return errAborted
	}
	if value := sel.Value(); value != nil {
		fmt.Fprintln(cmd.OutOrStdout(), value)
	}
	return nil
}

func collectItems(path string, args []string) ([]*simpleselect.Item, error) {
	var items []*simpleselect.Item

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		items, err = readItems(f)
		if err != nil {
			return nil, err
		}
	}

	for _, arg := range args {
		if item, ok := parseItem(arg); ok {
			items = append(items, item)
		}
	}

	return items, nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if errors.Is(err, errAborted) {
			os.Exit(130)
		}
		os.Exit(1)
	}
}
