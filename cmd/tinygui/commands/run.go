package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agiangrant/tinygui/internal/ffi"
	"github.com/agiangrant/tinygui/retained"
	"github.com/agiangrant/tinygui/widgets/led"
)

// Run implements the 'tinygui run' command
func Run(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	configPath := fs.String("config", "", "Config file (default: tinygui.toml if present)")
	driverPath := fs.String("driver", "", "LCD driver library (default: $TINYGUI_DRIVER or platform name)")
	pollInterval := fs.Duration("poll", 20*time.Millisecond, "Touch polling interval")
	frameInterval := fs.Duration("frame", 33*time.Millisecond, "Redraw interval")
	blink := fs.Duration("blink", time.Second, "Link LED blink interval (0 disables)")
	fs.Parse(args)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	opts, err := cfg.Options(os.Stderr)
	if err != nil {
		return err
	}

	path := *driverPath
	if path == "" {
		path = ffi.LibraryPath()
	}
	drv, err := ffi.Open(path)
	if err != nil {
		return err
	}
	defer drv.Close()

	// The panel reports its own size
	opts.Geometry = drv
	g := retained.New(opts)
	sc, err := buildScene(g)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g.Logger().Info("driver running",
		slog.String("driver", path),
		slog.Int("width", g.LCDWidth()),
		slog.Int("height", g.LCDHeight()))

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return every(ctx, *pollInterval, func() { g.Touch(drv.ReadTouch()) })
	})
	eg.Go(func() error {
		g.Render(drv)
		drv.Flush()
		return every(ctx, *frameInterval, func() {
			if g.Redraw(drv) {
				drv.Flush()
			}
		})
	})
	if *blink > 0 {
		eg.Go(func() error {
			return every(ctx, *blink, func() {
				if err := led.Toggle(sc.link); err != nil {
					g.Logger().Warn("blink failed", slog.Any("error", err))
				}
			})
		})
	}

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("run loop failed: %w", err)
	}
	fmt.Println("  ✓ Stopped")
	return nil
}

// every calls fn on each tick until ctx is done.
func every(ctx context.Context, interval time.Duration, fn func()) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			fn()
		}
	}
}
