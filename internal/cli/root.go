// Package cli wires the life commands together with cobra.
package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sparse-life/internal/app"
)

// extraCommands is filled by build-tag specific files.
var extraCommands []func() *cobra.Command

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "life",
		Short:         "Conway's Game of Life on an unbounded grid",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newPatternsCmd())
	for _, fn := range extraCommands {
		root.AddCommand(fn())
	}
	return root
}

// Execute runs the CLI root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logrus.Fatalf("life: %v", err)
	}
}

// prepare applies the config file and log level, then validates cfg.
func prepare(cmd *cobra.Command, cfg *app.Config, configFile string) error {
	if configFile != "" {
		if err := app.ApplyFile(configFile, cmd.Flags()); err != nil {
			return err
		}
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)
	return cfg.Validate()
}
