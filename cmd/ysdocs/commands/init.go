package commands

import (
	"fmt"

	"github.com/exbotanical/ysdocs/internal/config"
	"github.com/exbotanical/ysdocs/internal/logfields"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	if err := config.Init(root.Config, i.Force); err != nil {
		return err
	}
	g.Logger.Info("Wrote configuration", logfields.Path(root.Config))
	_, err := fmt.Fprintf(g.Stdout, "Initialized %s\n", root.Config)
	return err
}
