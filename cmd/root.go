// Package cmd provides the root command and CLI setup for minigrep.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"minigrep.dev/pkg/minigrep/internal/adapter"
	"minigrep.dev/pkg/minigrep/internal/controller"
	"minigrep.dev/pkg/minigrep/internal/domain"
	m "minigrep.dev/pkg/minigrep/internal/model"
)

var fileAdapter adapter.FileAdapter

func init() {
	configureRootFlags(rootCmd)

	fileAdapter = adapter.NewLocalFileAdapter()
}

const rootLongDescription = `Minigrep reads the file at <path> and prints every line that contains
<query>, in file order. Matching is a plain, case-sensitive substring test
unless --ignore-case is given.

Settings can also come from ./minigrep.yaml or MINIGREP_* environment
variables (for example MINIGREP_SEARCH_IGNORE_CASE=true).`

const versionTemplate = `{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
`

// rootCmd represents the base command.
var rootCmd = baseRootCmd()

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "minigrep [flags] <query> <path>",
		Short:   "Print the lines of a file that contain a query",
		Long:    rootLongDescription,
		Args:    cobra.ArbitraryArgs,
		Version: buildVersion(),
		// Errors are reported once, by Execute.
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runSearch,
	}

	cmd.SetVersionTemplate(versionTemplate)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &m.ValidationError{Reason: err}
	})

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.BoolP(ignoreCaseFlagName, "i", viper.GetBool(ignoreCaseKey), "match without regard to letter case")
	bindFlagToConfig(flags.Lookup(ignoreCaseFlagName), ignoreCaseKey)

	flags.BoolP(lineNumberFlagName, "n", viper.GetBool(lineNumberKey), "prefix each line with its line number")
	bindFlagToConfig(flags.Lookup(lineNumberFlagName), lineNumberKey)

	flags.Bool(highlightFlagName, viper.GetBool(highlightKey), "highlight matches on color terminals")
	bindFlagToConfig(flags.Lookup(highlightFlagName), highlightKey)

	flags.Bool(summaryFlagName, viper.GetBool(summaryKey), "write a summary table to stderr after the matches")
	bindFlagToConfig(flags.Lookup(summaryFlagName), summaryKey)

	flags.String(logFileFlagName, viper.GetString(logFilenameKey), "write logs to this file (disabled when empty)")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)

	flags.BoolP(verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func runSearch(cmd *cobra.Command, args []string) error {
	configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

	if configReadErr != nil {
		slog.Warn("ignoring unreadable config file", "file", configFileName, "error", configReadErr)
	}

	config, err := m.NewConfig(append([]string{cmd.Root().Name()}, args...))
	if err != nil {
		return err
	}

	ignoreCase := viper.GetBool(ignoreCaseKey)

	ui := controller.NewUI(cmd, controller.OutputOptions{
		LineNumbers: viper.GetBool(lineNumberKey),
		Highlight:   viper.GetBool(highlightKey),
		IgnoreCase:  ignoreCase,
	})

	runner := domain.NewRunner(
		fileAdapter,
		domain.NewSearcher(domain.SearchOptions{IgnoreCase: ignoreCase}),
		ui,
		domain.RunOptions{Summary: viper.GetBool(summaryKey)},
	)

	return runner.Run(cmd.Context(), config)
}

// Execute runs the root command. It is the only place that turns an error
// into a message and a non-zero exit status.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func reportError(w io.Writer, err error) {
	var validationErr *m.ValidationError
	if errors.As(err, &validationErr) {
		_, _ = fmt.Fprintf(w, "Problem parsing arguments: %v\n", err)
		return
	}

	_, _ = fmt.Fprintf(w, "Application error: %v\n", err)
}

func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" {
		return "unknown"
	}

	return fmt.Sprintf("%s (%s)", info.Main.Version, info.GoVersion)
}
