package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/jtay/glowcube/pkg/core"
	"github.com/jtay/glowcube/pkg/renderer"
)

func main() {
	// Parse command line flags
	width := flag.Int("width", 640, "Image width in pixels")
	height := flag.Int("height", 480, "Image height in pixels")
	pitch := flag.Float64("pitch", 0, "Pitch angle in radians")
	yaw := flag.Float64("yaw", 0, "Yaw angle in radians")
	led := flag.String("led", "off", "Indicator LED color: 'off', 'green' or 'red'")
	camera := flag.Float64("camera", renderer.DefaultCameraDistance, "Camera distance from the origin")
	outputDir := flag.String("output", "output", "Output directory")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("glowcube snapshot renderer")
		fmt.Println("Usage: glowcube [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Output will be saved to <output>/frame_<timestamp>.png")
		return
	}

	ledColor, err := parseLedColor(*led)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	frameRenderer := renderer.NewRenderer(renderer.NewCamera(*camera), 0)

	startTime := time.Now()
	img, stats := frameRenderer.RenderFrame(core.FrameInputs{
		Width:    *width,
		Height:   *height,
		Pitch:    *pitch,
		Yaw:      *yaw,
		LedColor: ledColor,
	})

	fmt.Printf("Render completed in %v\n", time.Since(startTime))
	fmt.Printf("Coverage: %.1f%% (%d of %d pixels)\n",
		100*stats.Coverage(), stats.HitPixels, stats.TotalPixels)

	// Create timestamped filename
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(*outputDir, fmt.Sprintf("frame_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Frame saved as %s\n", filename)
}

// parseLedColor maps the led flag to its palette color
func parseLedColor(name string) (core.Vec3, error) {
	switch name {
	case "off":
		return core.Vec3{}, nil
	case "green":
		return core.NewVec3(0, 1, 0), nil
	case "red":
		return core.NewVec3(1, 0, 0), nil
	default:
		return core.Vec3{}, fmt.Errorf("unknown led color %q (want off, green or red)", name)
	}
}
