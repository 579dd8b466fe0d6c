// Command imgedit applies transforms to plain-text RGB images.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/imgedit"
)

var rootCmd = &cobra.Command{
	Use:               "imgedit",
	Short:             "Edit plain-text RGB images with undoable transforms",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// cfg is the active configuration, set by setup before any subcommand runs.
var cfg = imgedit.DefaultConfig()

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
}

func setup(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	logLevel, _ := cmd.Flags().GetString("log-level")

	if configPath != "" {
		c, err := imgedit.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = c
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	imgedit.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: cfg.Level(),
	})))
	return nil
}

func newEditor() *imgedit.Editor {
	return imgedit.NewEditor(imgedit.WithConfig(cfg))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
