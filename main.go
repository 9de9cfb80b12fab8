package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-strip-raytracer/pkg/renderer"
	"github.com/df07/go-strip-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene name or path to a .json scene file")
	workers := flag.Int("workers", 0, "Number of worker strips; must divide the image height (0 = auto)")
	outPath := flag.String("out", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	format := flag.String("format", "ppm", "Output format: 'ppm' or 'png'")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Strip Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		if scenes, err := scene.ListScenes(); err == nil {
			for _, info := range scenes {
				fmt.Printf("  %-10s %s\n", info.ID, info.DisplayName)
			}
		}
		return
	}

	if err := run(*sceneType, *workers, *outPath, *format); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(sceneType string, workers int, outPath, format string) error {
	if format != "ppm" && format != "png" {
		return fmt.Errorf("unknown output format %q", format)
	}

	fmt.Println("Starting Strip Raytracer...")

	selectedScene, err := scene.Create(sceneType)
	if err != nil {
		return err
	}

	coordinator, err := renderer.NewCoordinator(selectedScene, renderer.Config{Workers: workers}, renderer.NewDefaultLogger())
	if err != nil {
		if errors.Is(err, renderer.ErrInvalidWorkers) {
			return fmt.Errorf("%w (valid counts for height %d: %s)",
				err, selectedScene.Height, formatCounts(renderer.ValidWorkerCounts(selectedScene.Height)))
		}
		return err
	}

	startTime := time.Now()
	buffer, _, err := coordinator.Render(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("Execution time of render: %.6f sec\n", time.Since(startTime).Seconds())

	if outPath == "" {
		outputDir := createOutputDir(sceneType)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		timestamp := time.Now().Format("20060102_150405")
		outPath = filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, format))
	}

	if err := saveImage(buffer, outPath, format); err != nil {
		return err
	}

	fmt.Printf("Render saved as %s\n", outPath)
	return nil
}

// createOutputDir returns output/<scene name>, using the file stem for JSON paths
func createOutputDir(sceneType string) string {
	name := strings.TrimSuffix(filepath.Base(sceneType), ".json")
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "scene"
	}
	return filepath.Join("output", name)
}

// saveImage writes the rendered buffer to path in the given format
func saveImage(buffer *renderer.ImageBuffer, path, format string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	switch format {
	case "png":
		err = png.Encode(file, buffer.ToRGBA())
	default:
		err = buffer.WritePPM(file)
	}
	if err != nil {
		return fmt.Errorf("saving %s: %w", format, err)
	}
	return file.Close()
}

func formatCounts(counts []int) string {
	parts := make([]string, len(counts))
	for i, n := range counts {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}
