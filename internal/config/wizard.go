package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and saves the result
// to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to walka! Let's configure your workspace.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for exported archives",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = outputDir

	// 2. Assets directory.
	assetsPrompt := promptui.Prompt{
		Label:   "Directory with images to bundle (blank to skip)",
		Default: "",
		Validate: func(s string) error {
			if s == "" {
				return nil
			}
			if info, err := os.Stat(s); err != nil || !info.IsDir() {
				return fmt.Errorf("%s is not a directory", s)
			}
			return nil
		},
	}
	assetsDir, err := assetsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("assets dir: %w", err)
	}
	cfg.AssetsDir = assetsDir

	// 3. Asset patterns.
	if assetsDir != "" {
		patternPrompt := promptui.Prompt{
			Label:   "Asset patterns (comma-separated globs)",
			Default: strings.Join(cfg.AssetPatterns, ","),
		}
		patternStr, err := patternPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("asset patterns: %w", err)
		}
		cfg.AssetPatterns = splitAndTrim(patternStr)
	}

	// 4. Highlighted price card.
	tierPrompt := promptui.Select{
		Label: "Which price card is highlighted",
		Items: []string{"third (default)", "first", "second", "fourth", "none"},
	}
	tierIdx, _, err := tierPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("highlight tier: %w", err)
	}
	cfg.HighlightTier = []int{2, 0, 1, 3, -1}[tierIdx]

	// 5. Server port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port for walka serve",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			if n, err := strconv.Atoi(s); err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("invalid port")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
