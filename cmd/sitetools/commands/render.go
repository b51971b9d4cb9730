package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/sitetools/internal/render"
	"git.home.luguber.info/inful/sitetools/internal/watch"
)

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	Output string `short:"o" help:"Output directory for rendered pages (overrides config)"`
	Watch  bool   `short:"w" help:"Watch the content directory and re-render on change"`
}

// Run executes the render command.
func (r *RenderCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config, false)
	if err != nil {
		return err
	}

	outputDir := cfg.Render.OutputDir
	if r.Output != "" {
		outputDir = r.Output
	}

	renderer, err := render.NewRenderer(cfg.Render.Layout)
	if err != nil {
		return err
	}

	renderAll := func() error {
		start := time.Now()
		count, err := renderer.RenderDir(cfg.Render.ContentDir, outputDir)
		if err != nil {
			return err
		}
		slog.Info("Render completed",
			"pages", count,
			"content", cfg.Render.ContentDir,
			"output", outputDir,
			"duration", time.Since(start))
		return nil
	}

	if err := renderAll(); err != nil {
		return err
	}
	if !r.Watch {
		return nil
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return watch.Run(ctx, cfg.Render.ContentDir, watch.DebounceConfig{
		QuietWindow: 300 * time.Millisecond,
		MaxDelay:    5 * time.Second,
	}, renderAll)
}
