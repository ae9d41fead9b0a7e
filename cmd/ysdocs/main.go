package main

import (
	"log/slog"
	"os"

	"github.com/exbotanical/ysdocs/cmd/ysdocs/commands"
	"github.com/exbotanical/ysdocs/internal/foundation/errors"
)

func main() {
	cli := &commands.CLI{}
	global := &commands.Global{Stdout: os.Stdout, Stderr: os.Stderr}

	parser, err := commands.New(cli, global)
	if err != nil {
		errors.NewCLIErrorAdapter(true, nil).HandleError(errors.WrapError(err, errors.CategoryInternal, "build command line").Build())
		return
	}

	if err := commands.Execute(parser, cli, global, os.Args[1:]); err != nil {
		logger := global.Logger
		if logger == nil {
			logger = slog.Default()
		}
		errors.NewCLIErrorAdapter(cli.Verbose, logger).HandleError(err)
	}
}
