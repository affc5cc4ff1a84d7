package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/agiangrant/tinygui/display"
	"github.com/agiangrant/tinygui/retained"
)

// Render implements the 'tinygui render' command
func Render(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	configPath := fs.String("config", "", "Config file (default: tinygui.toml if present)")
	output := fs.String("o", "scene.png", "Output PNG file")
	fs.Parse(args)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	opts, err := cfg.Options(os.Stderr)
	if err != nil {
		return err
	}

	g := retained.New(opts)
	if _, err := buildScene(g); err != nil {
		return err
	}

	fb := display.NewFramebuffer(cfg.Display.Width, cfg.Display.Height)
	g.Render(fb)
	if err := fb.SavePNG(*output); err != nil {
		return err
	}

	fmt.Printf("  ✓ Rendered %dx%d scene to %s\n", fb.Width(), fb.Height(), *output)
	return nil
}
