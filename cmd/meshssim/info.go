package main

import (
	"fmt"

	"github.com/netisu/meshssim"
	"github.com/spf13/cobra"
)

func infoCommand() *cobra.Command {
	var normalize bool
	cmd := &cobra.Command{
		Use:   "info <mesh>",
		Short: "Print vertex and face counts and the bounding box of a mesh",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := meshssim.Load(args[0])
			if err != nil {
				return err
			}
			if normalize {
				if err := m.Normalize(); err != nil {
					return err
				}
			}
			lo, hi := m.BoundingBox()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Vertices: %d\n", m.VertexCount())
			fmt.Fprintf(out, "Faces: %d\n", m.FaceCount())
			fmt.Fprintf(out, "Vertex colors: %v\n", m.HasColors())
			fmt.Fprintf(out, "Bounding Box Min: %v\n", lo)
			fmt.Fprintf(out, "Bounding Box Max: %v\n", hi)
			fmt.Fprintf(out, "Centroid: %v\n", m.Centroid())
			fmt.Fprintf(out, "Max abs coordinate: %g\n", m.MaxAbs())
			return nil
		},
	}
	cmd.Flags().BoolVar(&normalize, "normalize", false, "report the normalized mesh")
	return cmd
}
