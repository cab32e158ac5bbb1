// Command meshssim measures how much visual quality simplified meshes lose
// and turns the measurements into figures and tables.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/netisu/meshssim/internal/config"
	"github.com/netisu/meshssim/internal/logger"
	"github.com/spf13/cobra"
	"github.com/unixpickle/essentials"
	"gopkg.in/yaml.v3"
)

var (
	flags config.Flags
	cfg   *config.Config
)

func main() {
	root := &cobra.Command{
		Use:   "meshssim",
		Short: "Perceptual quality of simplified meshes",
		Long: `meshssim renders an original and a simplified mesh from a ring of
cameras, scores the pairs with SSIM, and records how the score falls as
faces are removed.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(&flags, cmd.Flags())
			if err != nil {
				return err
			}
			cfg = c
			return logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}
	flags.Register(root.PersistentFlags())
	essentials.Must(root.MarkPersistentFlagFilename("config", "yaml", "yml"))

	root.AddCommand(
		curveCommand(),
		renderCommand(),
		infoCommand(),
		convertCommand(),
		simplifyCommand(),
		plotCommand(),
		correlateCommand(),
		exportCommand(),
		configCommand(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// models returns the command line models, or the configured ones.
func models(args []string) []string {
	if len(args) > 0 {
		return args
	}
	return cfg.Models
}

func configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config [path]",
		Short: "Print the effective configuration, or save it to path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return cfg.SaveTo(args[0])
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
