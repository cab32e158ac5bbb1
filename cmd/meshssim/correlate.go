package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/netisu/meshssim/report"
	"github.com/spf13/cobra"
)

func correlateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "correlate [model...]",
		Short: "Summarize the correlation between reduction and SSIM",
		RunE: func(cmd *cobra.Command, args []string) error {
			curves, err := report.LoadCurves(cfg.Output.Directory, models(args))
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "model\tn\tpearson\tkendall\tmean\tstd\tmin\tmax")
			for _, c := range curves {
				s := report.Summarize(c.Model, c.Points)
				fmt.Fprintf(w, "%s\t%d\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
					s.Model, s.N, s.Pearson, s.Kendall, s.MeanSSIM, s.StdDev, s.MinSSIM, s.MaxSSIM)
			}
			return w.Flush()
		},
	}
}
