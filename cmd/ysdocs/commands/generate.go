package commands

import (
	"fmt"
	"time"

	"github.com/exbotanical/ysdocs/internal/emit"
	"github.com/exbotanical/ysdocs/internal/logfields"
	"github.com/exbotanical/ysdocs/internal/nav"
	"github.com/exbotanical/ysdocs/internal/site"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Output string `short:"o" help:"Output file (default from configuration)"`
	Format string `short:"f" help:"Output format: ts, json or yaml (default from configuration or file extension)"`
}

func (c *GenerateCmd) Run(g *Global, _ *CLI) error {
	start := time.Now()

	path, format, err := outputTarget(g, c.Output, c.Format)
	if err != nil {
		return err
	}

	cfg := site.Config()
	if err := nav.Validate(cfg); err != nil {
		return err
	}

	n, err := emit.WriteFile(path, cfg, format)
	if err != nil {
		return err
	}

	g.Logger.Info("Generated site configuration",
		logfields.Path(path),
		logfields.Format(string(format)),
		logfields.Bytes(n),
		logfields.Groups(countGroups(cfg)),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	_, err = fmt.Fprintf(g.Stdout, "Wrote %s (%d bytes)\n", path, n)
	return err
}

func countGroups(cfg nav.SiteConfig) int {
	total := 0
	for _, sec := range cfg.Theme.Sidebar.Sections() {
		total += len(sec.Tree)
	}
	return total
}
