// Command xformdemo renders the demo scene through a set of display
// transforms and writes the physical results side by side into one image.
//
// Usage:
//
//	xformdemo [-config demo.toml] [-output overview.png] [-width 128] [-height 64]
//
// Flags given on the command line override values from the config file.
// Use -dump-config to print the effective configuration as TOML.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	transform "github.com/gogpu/gg-transform"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file")
		output     = flag.String("output", "", "output file (.png or .tif)")
		backend    = flag.String("backend", "", "surface backend name")
		width      = flag.Int("width", 0, "display width in pixels")
		height     = flag.Int("height", 0, "display height in pixels")
		scale      = flag.Int("scale", 0, "upscaling factor per panel")
		padding    = flag.Int("padding", 0, "gap between panels")
		verbose    = flag.Bool("v", false, "verbose logging")
		dump       = flag.Bool("dump-config", false, "print the effective config and exit")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	transform.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := defaultConfig()
	if *configPath != "" {
		if err := loadConfig(*configPath, &cfg); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	// Only flags that were set explicitly override the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "output":
			cfg.Output = *output
		case "backend":
			cfg.Backend = *backend
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "scale":
			cfg.Scale = *scale
		case "padding":
			cfg.Padding = *padding
		}
	})

	if *dump {
		if err := writeConfig(os.Stdout, cfg); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		return
	}

	if err := run(context.Background(), cfg, os.Stderr); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
}

// run validates cfg, renders every panel and saves the composed image.
// A summary line is written to w.
func run(ctx context.Context, cfg config, w io.Writer) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	panels, err := renderPanels(ctx, cfg)
	if err != nil {
		return err
	}
	img, err := compose(cfg, panels)
	if err != nil {
		return err
	}
	if err := save(cfg.Output, img); err != nil {
		return fmt.Errorf("save %s: %w", cfg.Output, err)
	}

	b := img.Bounds()
	_, err = fmt.Fprintf(w, "Overview saved to %s (%dx%d, %d panels)\n", cfg.Output, b.Dx(), b.Dy(), len(panels))
	return err
}
