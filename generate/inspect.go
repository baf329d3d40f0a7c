package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"stylec/css"
	"stylec/state"
	"stylec/utils/debug"
)

// Inspect reads stylesheet and prints what it defines.
func Inspect(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("inspect")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no stylesheet has been specified")
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read stylesheet: %w", err)
	}
	env.Rpt.Store("inspect/"+filepath.Base(src), src)

	sheet := css.NewParser(log).Parse(data, src)
	for _, w := range sheet.Warnings {
		log.Warn("Stylesheet problem", zap.String("file", src), zap.String("warning", w))
	}

	_, err = fmt.Fprint(os.Stdout, describe(src, sheet))
	return err
}

func describe(name string, sheet *css.Stylesheet) string {
	var rules int
	var queries []string
	for _, item := range sheet.Items {
		switch {
		case item.Rule != nil:
			rules++
		case item.MediaBlock != nil:
			rules += len(item.MediaBlock.Rules)
			queries = append(queries, item.MediaBlock.Query.String())
		}
	}

	tw := debug.NewTreeWriter()
	tw.Line(0, "%s", name)
	tw.Line(1, "rules: %d", rules)
	tw.Sorted(1, "classes", sheet.Classes())
	tw.Sorted(1, "media", queries)
	if len(sheet.Warnings) > 0 {
		tw.Sorted(1, "warnings", sheet.Warnings)
	}
	return tw.String()
}
