package commands

import (
	"fmt"

	"github.com/exbotanical/ysdocs/internal/emit"
	"github.com/exbotanical/ysdocs/internal/foundation/errors"
	"github.com/exbotanical/ysdocs/internal/logfields"
	"github.com/exbotanical/ysdocs/internal/nav"
	"github.com/exbotanical/ysdocs/internal/site"
)

// CheckCmd implements the 'check' command for CI pipelines.
type CheckCmd struct {
	Output string `short:"o" help:"File to verify (default from configuration)"`
	Format string `short:"f" help:"Format of the file (default from configuration or file extension)"`
}

func (c *CheckCmd) Run(g *Global, _ *CLI) error {
	path, format, err := outputTarget(g, c.Output, c.Format)
	if err != nil {
		return err
	}

	existing, err := emit.ReadFile(path, format)
	if err != nil {
		return err
	}
	if err := nav.Validate(existing); err != nil {
		return err
	}

	diff := nav.Diff(site.Config(), existing)
	if len(diff) > 0 {
		g.Logger.Warn("Site configuration is stale", logfields.Path(path), logfields.Entries(len(diff)))
		return errors.ValidationError(fmt.Sprintf("%s is out of date; run ysdocs generate", path)).
			WithIssues(diff).
			WithContext("path", path).
			Build()
	}

	_, err = fmt.Fprintf(g.Stdout, "%s is up to date\n", path)
	return err
}
