// Package generate implements stylec subcommands producing and examining
// stylesheets.
package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"stylec/config"
	"stylec/css"
	"stylec/misc"
	"stylec/resolve"
	"stylec/state"
	"stylec/style"
	"stylec/stylebook"
	"stylec/synth"
	"stylec/theme"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("generate")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no stylebook has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	dst, err := buildOutputPath(src, cmd.Args().Get(1))
	if err != nil {
		return err
	}
	env.Overwrite = cmd.Bool("overwrite")

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, env, src, dst, log)
}

// process handles stylebook to stylesheet conversion independently of CLI
// framework.
func process(ctx context.Context, env *state.LocalEnv, src, dst string, log *zap.Logger) error {
	if !env.Overwrite {
		if _, err := os.Stat(dst); err == nil {
			return fmt.Errorf("destination file already exists: %s", dst)
		}
	}

	book, err := stylebook.Load(src, log)
	if err != nil {
		return err
	}
	env.Rpt.Store("stylebook/"+filepath.Base(src), src)

	reg := env.NewRegistry()
	if err := book.Register(reg); err != nil {
		return fmt.Errorf("unable to register stylebook entries: %w", err)
	}

	var sheet *css.Stylesheet
	if env.Cfg.Generation.IncludeAdHoc {
		sheet, err = reg.Stylesheet(ctx, book.Themes())
	} else {
		sheet, err = reg.Build(ctx, book.Themes())
	}
	if sheet == nil {
		return err
	}
	if err != nil {
		// degraded styles are left out, the rest is still useful
		log.Warn("Some styles were not generated", zap.Error(err))
	}

	if env.Rpt != nil {
		storeAnalysis(env, book, log)
	}

	header, err := env.Cfg.Generation.Header(headerValues(src, reg.Classes(), book.Themes()))
	if err != nil {
		return err
	}
	out := &css.Stylesheet{}
	if header != "" {
		out.AddComment(header)
	}
	out.Append(sheet)

	data := []byte(out.String())
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("unable to create destination directory: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("unable to write stylesheet: %w", err)
	}
	env.Rpt.StoreData(filepath.Base(dst), data)

	log.Info("Stylesheet written",
		zap.String("file", dst),
		zap.Int("classes", len(out.Classes())),
		zap.Int("items", out.Len()))
	return nil
}

func headerValues(src string, classes []string, themes []theme.Theme) config.HeaderValues {
	values := config.HeaderValues{
		App:       misc.GetAppName(),
		Version:   misc.GetVersion(),
		Stylebook: src,
		Styles:    classes,
	}
	for _, t := range theme.Active(themes) {
		values.Themes = append(values.Themes, t.ID)
	}
	return values
}

// storeAnalysis puts variation analysis of every style into the report.
func storeAnalysis(env *state.LocalEnv, book *stylebook.Book, log *zap.Logger) {
	space := synth.New(book.Themes(), log).Space()
	analyzer := resolve.NewAnalyzer(log)
	for _, s := range book.Styles() {
		res, err := analyzer.Analyze(s, space)
		if err != nil {
			continue
		}
		env.Rpt.StoreData("analysis/"+style.ClassName(s)+".txt", []byte(res.String()))
	}
}
