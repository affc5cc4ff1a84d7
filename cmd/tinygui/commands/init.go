package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/agiangrant/tinygui"
)

// Init implements the 'tinygui init' command
func Init(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	width := fs.Int("width", 240, "Display width in pixels")
	height := fs.Int("height", 320, "Display height in pixels")
	budget := fs.Int("budget", 0, "Widget memory budget in bytes (0 = unlimited)")
	force := fs.Bool("force", false, "Overwrite existing files")
	fs.Parse(args)

	if _, err := os.Stat(tinygui.ConfigFile); err == nil && !*force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", tinygui.ConfigFile)
	}

	cfg := tinygui.DefaultConfig()
	cfg.Display.Width = *width
	cfg.Display.Height = *height
	cfg.Memory.Budget = *budget
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := saveConfig(tinygui.ConfigFile, cfg); err != nil {
		return err
	}
	fmt.Printf("  ✓ Created %s\n", tinygui.ConfigFile)
	return nil
}
