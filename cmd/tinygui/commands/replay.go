package commands

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/agiangrant/tinygui/display"
	"github.com/agiangrant/tinygui/internal/script"
	"github.com/agiangrant/tinygui/retained"
)

// Replay implements the 'tinygui replay' command
func Replay(args []string) error {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	configPath := fs.String("config", "", "Config file (default: tinygui.toml if present)")
	output := fs.String("o", "", "Write the final frame to this PNG file")
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: tinygui replay [options] <script.yaml>")
	}

	s, err := script.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	opts, err := cfg.Options(os.Stderr)
	if err != nil {
		return err
	}

	g := retained.New(opts)
	sc, err := buildScene(g)
	if err != nil {
		return err
	}

	fb := display.NewFramebuffer(cfg.Display.Width, cfg.Display.Height)
	g.Render(fb)

	frames := 0
	for _, sample := range s.Samples() {
		g.Touch(sample)
		if g.Redraw(fb) {
			frames++
		}
	}

	g.Logger().Info("replay finished",
		slog.String("script", s.Name),
		slog.Int("frames", frames),
		slog.String("drag", g.DragMode().String()))

	fmt.Printf("status window at (%d,%d)\n", g.AbsoluteX(sc.status), g.AbsoluteY(sc.status))
	if f := g.Focused(); f != nil {
		fmt.Printf("focused: %s\n", f)
	}

	if *output != "" {
		if err := fb.SavePNG(*output); err != nil {
			return err
		}
		fmt.Printf("  ✓ Wrote %s\n", *output)
	}
	return nil
}
