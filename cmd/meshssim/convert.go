package main

import (
	"path/filepath"
	"strings"

	"github.com/netisu/meshssim"
	"github.com/netisu/meshssim/internal/logger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func convertCommand() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "convert <out-ext> <input...>",
		Short: "Convert meshes to another format",
		Long: `convert writes each input next to itself (or into --dest) with the
given extension, obj or stl. Inputs that cannot be read are logged and
skipped.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ext := "." + strings.TrimPrefix(strings.ToLower(args[0]), ".")
			if ext != ".obj" && ext != ".stl" {
				return errors.Errorf("cannot write %s files", ext)
			}
			var skipped int
			for _, in := range args[1:] {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				dir := filepath.Dir(in)
				if outDir != "" {
					dir = outDir
				}
				out := filepath.Join(dir, strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))+ext)
				if err := convert(in, out); err != nil {
					logger.Log.Warn("skipping input", zap.String("path", in), zap.Error(err))
					skipped++
					continue
				}
				logger.Log.Info("converted", zap.String("from", in), zap.String("to", out))
			}
			if skipped == len(args)-1 {
				return errors.New("no input could be converted")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "dest", "", "write converted files into this directory")
	return cmd
}

func convert(in, out string) error {
	m, err := meshssim.Load(in)
	if err != nil {
		return err
	}
	return meshssim.Save(out, m)
}
