package main

import (
	"github.com/netisu/meshssim/internal/logger"
	"github.com/netisu/meshssim/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func exportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <out.xlsx> [model...]",
		Short: "Merge the results files into one workbook",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			curves, err := report.LoadCurves(cfg.Output.Directory, models(args[1:]))
			if err != nil {
				return err
			}
			if err := report.WriteWorkbook(args[0], curves); err != nil {
				return err
			}
			logger.Log.Info("wrote workbook", zap.String("path", args[0]), zap.Int("sheets", len(curves)))
			return nil
		},
	}
}
