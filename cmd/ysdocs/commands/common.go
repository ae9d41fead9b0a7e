package commands

import (
	"io"
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/exbotanical/ysdocs/internal/config"
	"github.com/exbotanical/ysdocs/internal/emit"
	"github.com/exbotanical/ysdocs/internal/foundation/errors"
	"github.com/exbotanical/ysdocs/internal/logfields"
	"github.com/exbotanical/ysdocs/internal/version"
)

// Global carries process-wide state into every command.
type Global struct {
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Settings *config.Config
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"ysdocs.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" default:"1" help:"Write the site configuration for the documentation generator"`
	Check    CheckCmd    `cmd:"" help:"Verify that the generated site configuration is up to date"`
	Show     ShowCmd     `cmd:"" help:"Print the site configuration to stdout"`
	Outline  OutlineCmd  `cmd:"" help:"Print the navigation as an indented tree"`
	Watch    WatchCmd    `cmd:"" help:"Keep the generated site configuration in sync"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file"`
}

// New builds the kong parser for cli. Extra options are appended, which
// tests use to capture output and exit calls.
func New(cli *CLI, global *Global, opts ...kong.Option) (*kong.Kong, error) {
	base := []kong.Option{
		kong.Name("ysdocs"),
		kong.Description("Generate the navigation config of the Ys documentation site."),
		kong.UsageOnError(),
		kong.Bind(global),
		kong.Vars{"version": version.String()},
	}
	return kong.New(cli, append(base, opts...)...)
}

// Execute parses args and runs the selected command. Classified errors raised
// while parsing, such as an unreadable configuration file from AfterApply, are
// returned so the caller can map them to exit codes. Other parse errors are
// usage mistakes and go through kong's own reporting.
func Execute(parser *kong.Kong, cli *CLI, global *Global, args []string) error {
	ctx, err := parser.Parse(args)
	if err != nil {
		if _, ok := errors.AsClassified(err); ok {
			return err
		}
		parser.FatalIfErrorf(err)
		return err
	}
	return ctx.Run(global, cli)
}

// AfterApply runs after flag parsing; loads the tool configuration and sets up logging once.
// The default configuration path may be absent, an explicit one must exist
// unless the command is about to create it.
func (c *CLI) AfterApply(ctx *kong.Context, g *Global) error {
	missingOK := c.Config == config.DefaultPath || ctx.Command() == "init"
	settings, err := config.Load(c.Config, missingOK)
	if err != nil {
		return err
	}
	stderr := g.Stderr
	if stderr == nil {
		stderr = io.Discard
	}
	logger := settings.Logging.NewLogger(stderr, c.Verbose)
	slog.SetDefault(logger)

	g.Settings = settings
	g.Logger = logger
	logger.Debug("Configuration loaded", logfields.Path(c.Config))
	return nil
}

// outputTarget resolves path and format from flags, then configuration, then
// the file extension.
func outputTarget(g *Global, pathFlag, formatFlag string) (string, emit.Format, error) {
	path := pathFlag
	if path == "" {
		path = g.Settings.Output.Path
	}
	format := formatFlag
	if format == "" {
		format = g.Settings.Output.Format
	}
	f, err := emit.ResolveFormat(format, path)
	if err != nil {
		return "", "", err
	}
	return path, f, nil
}
