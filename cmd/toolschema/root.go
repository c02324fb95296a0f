package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/spetersoncode/toolschema/internal/config"
)

// app carries state shared by the subcommands.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configFile string
	cfg        *config.Config
	logger     *slog.Logger
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "toolschema",
		Short:         "Build and exercise strict function-calling tool descriptors",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	cmd.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (YAML, JSON or TOML)")

	cmd.AddCommand(
		newPrintCmd(a),
		newChatCmd(a),
		newMCPCmd(a),
	)
	return cmd
}

// init loads configuration and installs the logger.
func (a *app) init() error {
	cfg, err := config.Load(config.Options{ConfigFile: a.configFile})
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	return nil
}
