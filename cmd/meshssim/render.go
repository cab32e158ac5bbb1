package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/netisu/meshssim"
	"github.com/netisu/meshssim/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func renderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "render <mesh> <out-dir>",
		Short: "Render every configured view of a mesh to PNG",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := meshssim.LoadAndNormalize(args[0])
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

			if err := os.MkdirAll(args[1], 0755); err != nil {
				return err
			}
			base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			for i, cam := range cfg.Cameras() {
				img, err := r.Render(m, cam)
				if err != nil {
					return err
				}
				path := filepath.Join(args[1], fmt.Sprintf("%s_view%d.png", base, i))
				if err := img.SavePNG(path); err != nil {
					return err
				}
				logger.Log.Info("wrote view",
					zap.String("path", path),
					zap.Float64("azimuth", cam.Azimuth),
					zap.Float64("elevation", cam.Elevation))
			}
			return nil
		},
	}
}
