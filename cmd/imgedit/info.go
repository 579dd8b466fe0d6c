package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/imgedit"
)

var infoCmd = &cobra.Command{
	Use:   "info FILE",
	Short: "Print image dimensions and per-channel means",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	path := args[0]
	img, err := imgedit.LoadImage(path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "File:       %s\n", path)
	printInfo(cmd.OutOrStdout(), img)
	return nil
}

// printer formats counts with digit grouping.
var printer = message.NewPrinter(language.English)

type channelMeans struct {
	r, g, b float64
}

func means(img *imgedit.Buffer) channelMeans {
	var r, g, b uint64
	img.Each(func(_, _ int, c imgedit.RGB) {
		r += uint64(c.R)
		g += uint64(c.G)
		b += uint64(c.B)
	})
	n := float64(img.Len())
	return channelMeans{float64(r) / n, float64(g) / n, float64(b) / n}
}

func printInfo(w io.Writer, img *imgedit.Buffer) {
	m := means(img)
	printer.Fprintf(w, "Dimensions: %d x %d\n", img.Width(), img.Height())
	printer.Fprintf(w, "Pixels:     %d\n", img.Len())
	printer.Fprintf(w, "Mean RGB:   %.1f %.1f %.1f\n", m.r, m.g, m.b)
}
