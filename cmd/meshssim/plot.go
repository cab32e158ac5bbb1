package main

import (
	"github.com/netisu/meshssim/internal/logger"
	"github.com/netisu/meshssim/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func plotCommand() *cobra.Command {
	opts := report.DefaultFigureOptions()
	var raw bool
	cmd := &cobra.Command{
		Use:   "plot <out> [model...]",
		Short: "Plot the quality curves of the models",
		Long: `plot reads <out-dir>/<model>.csv for each model and draws SSIM
against the reduction ratio with a least squares polynomial through all
points. The image format follows the extension of out.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			curves, err := report.LoadCurves(cfg.Output.Directory, models(args[1:]))
			if err != nil {
				return err
			}
			opts.Normalize = !raw
			if err := report.SaveCurveFigure(args[0], curves, opts); err != nil {
				return err
			}
			logger.Log.Info("wrote figure", zap.String("path", args[0]), zap.Int("curves", len(curves)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "plot SSIM without per model min-max normalization")
	cmd.Flags().IntVar(&opts.RegressionOrder, "order", opts.RegressionOrder, "regression polynomial order, negative to disable")
	return cmd
}
