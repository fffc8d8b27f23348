// Package cmd implements the binarycookies command line.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cixtor/binarycookies/v2/internal/config"
	"github.com/spf13/cobra"
)

// app carries the state shared by every command once the configuration has
// been loaded.
type app struct {
	config *config.Config
	logger *slog.Logger
}

// NewRootCommand returns the binarycookies command with all its children.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "binarycookies [/path/to/Cookies.binarycookies]",
		Short: "Read and write Safari binary cookie jars",
		Long: `binarycookies prints the cookies stored in a *.binarycookies file, the
format used by Safari, WebKit and NSHTTPCookieStorage, and writes new jars
for applications that keep their session in one.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Usage()
			}
			return a.dump(cmd, args[0])
		},
	}

	root.PersistentFlags().String("config", "", "config file (default "+config.DefaultConfigPath()+")")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")

	root.Flags().Bool("netscape", false, "use the Netscape cookie format")
	root.Flags().Bool("json", false, "print the decoded jar as JSON")
	root.Flags().String("filter", "", "filter results by regexp on domain")

	root.AddCommand(
		newWriteCommand(a),
		newRemoveCommand(a),
		newServeCommand(a),
		newConfigCommand(a),
	)

	return root
}

// Execute runs the root command and exits with status 1 on failure.
func Execute() {
	root := NewRootCommand()

	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		os.Exit(1)
	}
}

// load reads the configuration named by --config, or the default file when
// it exists, and prepares the logger.
func (a *app) load(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")

	switch {
	case path != "":
		cfg, err := config.LoadConfig(path)
		if err != nil {
			return err
		}
		a.config = cfg
	case config.ConfigExists(config.DefaultConfigPath()):
		cfg, err := config.LoadConfig(config.DefaultConfigPath())
		if err != nil {
			return err
		}
		a.config = cfg
	default:
		a.config = config.DefaultConfig()
	}

	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		a.config.Logging.Level = lvl
	}

	level, err := config.ParseLevel(a.config.Logging.Level)
	if err != nil {
		return err
	}

	a.logger = newLogger(cmd.ErrOrStderr(), level)

	return nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
