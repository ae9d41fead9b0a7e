package commands

import (
	"github.com/exbotanical/ysdocs/internal/emit"
	"github.com/exbotanical/ysdocs/internal/nav"
	"github.com/exbotanical/ysdocs/internal/site"
)

// ShowCmd implements the 'show' command.
type ShowCmd struct {
	Format string `short:"f" help:"Output format: ts, json or yaml" default:"json"`
}

func (c *ShowCmd) Run(g *Global, _ *CLI) error {
	format, err := emit.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	cfg := site.Config()
	if err := nav.Validate(cfg); err != nil {
		return err
	}
	data, err := emit.Encode(cfg, format)
	if err != nil {
		return err
	}
	_, err = g.Stdout.Write(data)
	return err
}

// OutlineCmd implements the 'outline' command.
type OutlineCmd struct{}

func (c *OutlineCmd) Run(g *Global, _ *CLI) error {
	return nav.WriteOutline(g.Stdout, site.Config())
}
