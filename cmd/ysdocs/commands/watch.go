package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/exbotanical/ysdocs/internal/emit"
	"github.com/exbotanical/ysdocs/internal/foundation/errors"
	"github.com/exbotanical/ysdocs/internal/logfields"
	"github.com/exbotanical/ysdocs/internal/nav"
	"github.com/exbotanical/ysdocs/internal/site"
	"github.com/exbotanical/ysdocs/internal/watch"
)

// WatchCmd implements the 'watch' command. It rewrites the generated file
// whenever it is edited or removed by hand.
type WatchCmd struct {
	Output   string        `short:"o" help:"Output file (default from configuration)"`
	Format   string        `short:"f" help:"Output format (default from configuration or file extension)"`
	Debounce time.Duration `help:"Quiet period before regenerating" default:"250ms"`
}

func (c *WatchCmd) Run(g *Global, _ *CLI) error {
	path, format, err := outputTarget(g, c.Output, c.Format)
	if err != nil {
		return err
	}

	cfg := site.Config()
	if err := nav.Validate(cfg); err != nil {
		return err
	}
	if _, err := syncOutput(g, path, format, cfg); err != nil {
		return err
	}

	w, err := watch.New(func(context.Context, string) error {
		_, err := syncOutput(g, path, format, cfg)
		return err
	}, c.Debounce, path)
	if err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "start watcher").
			WithContext("path", path).
			Build()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, _ = fmt.Fprintf(g.Stdout, "Watching %s (Ctrl+C to stop)\n", filepath.Clean(path))
	if err := w.Run(ctx); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "watch output").
			WithContext("path", path).
			Build()
	}
	return nil
}

// syncOutput rewrites path when it is missing, unreadable or differs from cfg.
// It reports whether the file was written, so the watcher's own writes settle.
func syncOutput(g *Global, path string, format emit.Format, cfg nav.SiteConfig) (bool, error) {
	existing, err := emit.ReadFile(path, format)
	if err == nil && len(nav.Diff(cfg, existing)) == 0 {
		g.Logger.Debug("Site configuration is current", logfields.Path(path))
		return false, nil
	}
	if err != nil && !errors.HasCategory(err, errors.CategoryNotFound) {
		g.Logger.Warn("Replacing unreadable site configuration", logfields.Path(path), logfields.Error(err))
	}

	n, err := emit.WriteFile(path, cfg, format)
	if err != nil {
		return false, err
	}
	g.Logger.Info("Regenerated site configuration", logfields.Path(path), logfields.Bytes(n))
	return true, nil
}
