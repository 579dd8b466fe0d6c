package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/imgedit"
)

var applyCmd = &cobra.Command{
	Use:   "apply OP...",
	Short: "Load an image, apply transforms in order and save the result",
	Long: `Load an image, apply transforms in order and save the result.

Ops:
  zero-red
  grayscale
  invert
  mirror:vertical | mirror:horizontal
  rotate:cw | rotate:ccw
  repeat:N[:horizontal|vertical]
  zoom:F`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringP("input", "i", "", "Input image (.ppm text or .bmp)")
	applyCmd.Flags().StringP("output", "o", "", "Output image (.ppm text or .bmp)")
	applyCmd.MarkFlagRequired("input")
	applyCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")

	// Parse everything first so a typo in the last op fails before any work.
	ops := make([]imgedit.Op, 0, len(args))
	for _, a := range args {
		op, err := imgedit.ParseOp(a)
		if err != nil {
			return err
		}
		ops = append(ops, op)
	}

	ed := newEditor()
	if err := ed.Load(inputPath); err != nil {
		return fmt.Errorf("loading %s: %w", inputPath, err)
	}
	for _, op := range ops {
		if _, err := ed.Apply(op); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	if err := ed.Save(outputPath); err != nil {
		return fmt.Errorf("saving %s: %w", outputPath, err)
	}

	w, h := ed.Current().Bounds()
	fmt.Fprintf(cmd.OutOrStdout(), "Applied %d ops → %s (%dx%d)\n", len(ops), outputPath, w, h)
	return nil
}
