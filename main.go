package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Built-in scene name, scene file name in scenes/, or path to a .json scene")
	outputRoot := flag.String("output", "output", "Root directory for rendered images")
	format := flag.String("format", "png", "Output format: 'png' or 'jpg'")
	depth := flag.Int("depth", 0, "Maximum recursion depth (0 = scene default)")
	width := flag.Int("width", 0, "Image width override (0 = scene default)")
	height := flag.Int("height", 0, "Image height override (0 = scene default)")
	reflectance := flag.String("reflectance", "fresnel", "Reflectance model for refractive surfaces: 'fresnel' or 'schlick'")
	list := flag.Bool("list", false, "List available scenes and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		showHelp()
		return
	}

	logger := renderer.NewDefaultLogger()

	if *list {
		if err := listScenes(); err != nil {
			fmt.Printf("Error listing scenes: %v\n", err)
			os.Exit(1)
		}
		return
	}

	outputFormat, err := loaders.ParseFormat(*format)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	config, err := createConfig(*reflectance)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	logger.Printf("Starting Whitted Raytracer...\n")

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		fmt.Printf("Error loading scene: %v\n", err)
		os.Exit(1)
	}
	if *depth > 0 {
		selectedScene.MaxRecursionDepth = *depth
	}
	if *width > 0 {
		selectedScene.Width = *width
	}
	if *height > 0 {
		selectedScene.Height = *height
	}

	// Create output directory for this scene type
	outputDir := filepath.Join(*outputRoot, sceneName(*sceneType))
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	raytracer := renderer.NewRaytracer(selectedScene, config, logger)
	img, _ := raytracer.Render()

	// Create timestamped filename
	timestamp := time.Now().Format("20060102_150405")
	filename := loaders.Filename(outputDir, timestamp, outputFormat)
	if err := loaders.SaveImage(filename, img, outputFormat); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}

	logger.Printf("Render saved as %s\n", filename)
}

func showHelp() {
	fmt.Println("Whitted Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Built-in scenes:")
	for _, info := range scene.ListBuiltinScenes() {
		fmt.Printf("  %-8s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.<format>")
}

func listScenes() error {
	groups, err := scene.ListAllScenes()
	if err != nil {
		return err
	}
	for _, group := range groups {
		fmt.Printf("%s:\n", group.Name)
		for _, info := range group.Scenes {
			line := fmt.Sprintf("  %-20s %s", info.ID, info.DisplayName)
			if info.Description != "" {
				line += " - " + info.Description
			}
			fmt.Println(line)
		}
	}
	return nil
}

// createConfig maps a reflectance model name to a renderer config
func createConfig(reflectance string) (renderer.Config, error) {
	config := renderer.DefaultConfig()
	switch strings.ToLower(reflectance) {
	case "fresnel":
		config.Reflectance = material.Fresnel
	case "schlick":
		config.Reflectance = material.Schlick
	default:
		return config, fmt.Errorf("unknown reflectance model %q (want fresnel or schlick)", reflectance)
	}
	return config, nil
}

// createScene resolves a built-in scene or a JSON scene file
func createScene(sceneType string) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("scene name is required")
	}
	return scene.Load(sceneType)
}

// sceneName returns the output subdirectory name for a scene argument
func sceneName(sceneType string) string {
	if strings.HasSuffix(sceneType, ".json") {
		base := filepath.Base(sceneType)
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	return sceneType
}
