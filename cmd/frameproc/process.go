package main

import (
	"fmt"

	"frame-bridge/internal/bridge"
	"frame-bridge/internal/pipeline"

	"github.com/spf13/cobra"
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Apply grayscale, Gaussian blur and Canny edge detection to a frame",
	Long: `Reads a PNG/JPEG image or a raw RGBA buffer (.rgba, optionally zstd
compressed as .rgba.zst) and writes the RGBA edge map. The output format
follows the output extension: .png, .jpg, .rgba, .rgba.zst, or .txt for a
base64 PNG.`,
	Args: cobra.NoArgs,
	RunE: runProcess,
}

func init() {
	processCmd.Flags().StringP("input", "i", "", "Input frame file")
	processCmd.Flags().StringP("output", "o", "", "Output frame file")
	processCmd.Flags().Int32("width", 0, "Frame width, required for raw input")
	processCmd.Flags().Int32("height", 0, "Frame height, required for raw input")
	processCmd.MarkFlagRequired("input")
	processCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	width, _ := cmd.Flags().GetInt32("width")
	height, _ := cmd.Flags().GetInt32("height")

	log := newLogger()
	processor := bridge.NewProcessor(log)
	runner := pipeline.NewRunner(processor, log)

	out, err := runner.Run(pipeline.RunOptions{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Width:      width,
		Height:     height,
	})
	if err != nil {
		return err
	}

	stats := processor.Stats()
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %dx%d edge map, %s\n",
		outputPath, out.Width, out.Height, stats.AverageTime)
	return nil
}
