package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"stylec/misc"
	"stylec/state"
)

func main() {
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "generates minimal conditional CSS from declarative styles",
		Version:         fmt.Sprintf("%s (%s) : %s", misc.GetVersion(), runtime.Version(), misc.GetGitHash()),
		HideHelpCommand: true,
		Before:          setup,
		After:           teardown,
		OnUsageError:    passUsageError,
		ExitErrHandler:  logExitError,
		CommandNotFound: unknownCommand,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "collect configuration, logs, inputs and analysis into report archive"},
		},
		Commands: []*cli.Command{
			generateCommand(),
			inspectCommand(),
			dumpConfigCommand(),
		},
	}

	err := app.Run(ctx, os.Args)
	stop()
	if err != nil {
		// log may not exist yet or is already closed
		if !errLogged {
			fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
		}
		os.Exit(1)
	}
}

// errLogged is set when subcommand error went to the program log.
var errLogged bool

func logExitError(ctx context.Context, _ *cli.Command, err error) {
	if log := state.EnvFromContext(ctx).Log; log != nil {
		log.Error("Program ended with error", zap.Error(err))
		errLogged = true
	}
}

func passUsageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func unknownCommand(ctx context.Context, _ *cli.Command, name string) {
	if log := state.EnvFromContext(ctx).Log; log != nil {
		log.Warn("Unknown command, nothing to do", zap.String("command", name))
	}
}
