package main

import (
	"context"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"stylec/config"
	"stylec/generate"
	"stylec/state"
)

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:         "generate",
		Usage:        "Generates stylesheet from stylebook",
		OnUsageError: passUsageError,
		Action:       generate.Run,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "overwrite destination file if it exists"},
		},
		ArgsUsage: "STYLEBOOK [DESTINATION]",
		CustomHelpTemplate: cli.CommandHelpTemplate + `
STYLEBOOK:
    YAML file with themes, styles, ad-hoc and responsive rules

DESTINATION:
    resulting stylesheet, or directory to put it into
    if absent - current working directory, file name derived from STYLEBOOK

With --debug variation analysis of every style is added to the report.
`,
	}
}

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:         "inspect",
		Usage:        "Lists classes and media queries a stylesheet defines",
		OnUsageError: passUsageError,
		Action:       generate.Inspect,
		ArgsUsage:    "CSSFILE",
	}
}

func dumpConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "dumpconfig",
		Usage: "Dumps either default or actual configuration (YAML)",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
		},
		OnUsageError: passUsageError,
		Action:       dumpConfiguration,
		ArgsUsage:    "DESTINATION",
		CustomHelpTemplate: cli.CommandHelpTemplate + `
DESTINATION:
    file to write configuration to, if absent - STDOUT

Actual configuration combines embedded defaults with the configuration file.
Use --default to see the embedded defaults alone.
`,
	}
}

func dumpConfiguration(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	kind, produce := "actual", func() ([]byte, error) { return config.Dump(env.Cfg) }
	if cmd.Bool("default") {
		kind, produce = "default", config.Prepare
	}
	data, err := produce()
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	fname := cmd.Args().Get(0)
	if fname == "" {
		env.Log.Info("Outputting configuration", zap.String("state", kind), zap.String("file", "STDOUT"))
		_, err = os.Stdout.Write(data)
	} else {
		env.Log.Info("Outputting configuration", zap.String("state", kind), zap.String("file", fname))
		err = os.WriteFile(fname, data, 0644)
	}
	if err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
