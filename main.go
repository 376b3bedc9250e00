package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/dglen/go-whitted-raytracer/pkg/renderer"
	"github.com/dglen/go-whitted-raytracer/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "default", "Scene name: 'default', 'glass', or 'mirrors'")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 600, "Image height in pixels")
	maxDepth := flag.Int("depth", 5, "Maximum ray recursion depth")
	workers := flag.Int("workers", 0, "Parallel row workers (0 = all CPUs)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Checkered cube and mirrored cube above a gray floor")
		fmt.Println("  glass   - Glass cube with refraction over a checkered floor")
		fmt.Println("  mirrors - Two facing mirror walls (recursion stress test)")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
		return
	}

	startTime := time.Now()
	img, err := render(*sceneName, *width, *height, *maxDepth, *workers)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	outputDir := filepath.Join("output", *sceneName)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

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

	fmt.Printf("Render saved as %s\n", filename)
}

// render builds the named scene and renders a single frame
func render(sceneName string, width, height, maxDepth, workers int) (*image.RGBA, error) {
	selectedScene, err := scene.ByName(sceneName)
	if err != nil {
		return nil, err
	}

	config := renderer.DefaultConfig()
	config.MaxDepth = maxDepth
	config.Workers = workers

	camera := renderer.NewCamera(selectedScene.Camera, float64(width)/float64(height))
	rt := renderer.NewRaytracer(selectedScene, camera, width, height, config, renderer.NewDefaultLogger())

	return rt.Render(), nil
}
