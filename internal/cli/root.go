// Package cli wires the walletthemes commands.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var (
	flagThemeDirs []string
	flagVarFiles  []string
	flagTheme     string
	flagNoColor   bool
	flagLogLevel  string
	flagLogFormat string
	flagJSON      bool
)

var rootCmd = &cobra.Command{
	Use:   "walletthemes",
	Short: "Inspect and preview wallet theme packs",
	Long: heredoc.Doc(`
		walletthemes loads theme packs, resolves which card theme a credential
		gets, which background a screen uses and how the tab bar is styled.

		Packs are read from the built-in set, the configured theme directories
		and every --theme-dir given on the command line.
	`),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging(cmd)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringSliceVar(&flagThemeDirs, "theme-dir", nil, "additional theme pack directory (repeatable)")
	pf.StringSliceVar(&flagVarFiles, "var-file", nil, "dotenv file with values for ${...} references (repeatable)")
	pf.StringVar(&flagTheme, "theme", "", "theme to activate (default: settings default_theme)")
	pf.BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	pf.StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&flagLogFormat, "log-format", "", "log format (console, json)")
	pf.BoolVar(&flagJSON, "json", false, "print machine readable JSON")
}

// SetVersion records build information shown by the version command.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

func Execute() error {
	return rootCmd.Execute()
}

// Main runs the root command and exits non-zero on failure.
func Main() {
	if err := Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "walletthemes: %v\n", err)
}
