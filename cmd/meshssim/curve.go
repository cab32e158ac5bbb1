package main

import (
	"github.com/netisu/meshssim"
	"github.com/netisu/meshssim/curve"
	"github.com/netisu/meshssim/internal/logger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func curveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "curve [model...]",
		Short: "Compute the quality curve of each model",
		Long: `curve compares every simplification level of each model with its
baseline and appends "reduce,ssim" rows to <out-dir>/<model>.csv. Levels
that cannot be loaded or rendered are logged and skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			device, err := cfg.ResolveDevice()
			if err != nil {
				return err
			}
			settings, err := cfg.RenderSettings()
			if err != nil {
				return err
			}
			r, err := meshssim.NewRenderer(settings)
			if err != nil {
				return err
			}
			defer r.Close()

			logger.Log.Info("starting batch",
				zap.String("device", device),
				zap.Int("size", settings.ImageSize),
				zap.Int("views", cfg.Views.Count),
				zap.Strings("models", models(args)))

			runner := &curve.Runner{
				Layout:          cfg.CurveLayout(),
				Scorer:          curve.NewScorer(r, cfg.Cameras()),
				OutputDirectory: cfg.Output.Directory,
				Truncate:        cfg.Output.Truncate,
				Logger:          logger.Log,
			}
			var failed []string
			for _, model := range models(args) {
				_, err := runner.Run(cmd.Context(), model)
				if err == nil {
					continue
				}
				if cmd.Context().Err() != nil {
					return err
				}
				logger.Log.Error("model failed", zap.String("model", model), zap.Error(err))
				failed = append(failed, model)
			}
			if len(failed) > 0 {
				return errors.Errorf("%d of %d models failed: %v", len(failed), len(models(args)), failed)
			}
			return nil
		},
	}
}
