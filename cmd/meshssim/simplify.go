package main

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/netisu/meshssim"
	"github.com/netisu/meshssim/curve"
	"github.com/netisu/meshssim/internal/logger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func simplifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "simplify <mesh> <model> <levels>",
		Short: "Write the simplification levels of a model",
		Long: `simplify copies mesh to level 0 of model under --models-dir and
writes levels 1..levels-1, each keeping a linearly smaller share of the
faces.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[2])
			if err != nil {
				return errors.Wrap(err, "levels")
			}
			layout := cfg.CurveLayout()
			layout.LevelCount = n
			layout.BaselineIndex = 0
			if err := layout.Validate(); err != nil {
				return err
			}
			src, err := meshssim.Load(args[0])
			if err != nil {
				return err
			}
			model := args[1]
			if err := os.MkdirAll(filepath.Dir(layout.Path(model, 0)), 0755); err != nil {
				return err
			}
			if err := save(layout, model, 0, src); err != nil {
				return err
			}
			for i, f := range meshssim.LevelFactors(n) {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				m := meshssim.Simplify(src, f)
				if err := save(layout, model, i+1, m); err != nil {
					return err
				}
				logger.Log.Debug("wrote level",
					zap.Int("level", i+1),
					zap.Float64("factor", f),
					zap.Int("faces", m.FaceCount()))
			}
			logger.Log.Info("wrote levels",
				zap.String("model", model),
				zap.Int("levels", n),
				zap.Int("faces", src.FaceCount()))
			return nil
		},
	}
}

func save(layout curve.Layout, model string, level int, m *meshssim.Mesh) error {
	path := layout.Path(model, level)
	return errors.Wrapf(meshssim.Save(path, m), "level %d", level)
}
