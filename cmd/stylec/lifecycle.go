package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"stylec/config"
	"stylec/misc"
	"stylec/state"
)

// setup runs after command line is parsed and before any subcommand.
func setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.NArg() == 0 {
		return ctx, nil
	}
	env := state.EnvFromContext(ctx)
	if err := prepareEnv(env, cmd.String("config"), cmd.Bool("debug")); err != nil {
		return ctx, err
	}
	env.RedirectStdLog()

	env.Log.Debug("Program started",
		zap.Strings("args", os.Args),
		zap.String("ver", misc.GetVersion()),
		zap.String("runtime", runtime.Version()),
		zap.String("hash", misc.GetGitHash()))
	if env.Rpt != nil {
		env.Log.Info("Creating debug report", zap.String("location", env.Rpt.Name()))
	}
	return ctx, nil
}

func prepareEnv(env *state.LocalEnv, configFile string, withReport bool) (err error) {
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if withReport {
		if env.Rpt, err = env.Cfg.Reporting.Prepare(); err != nil {
			return fmt.Errorf("unable to prepare debug reporter: %w", err)
		}
		if configFile != "" {
			if data, err := config.Dump(env.Cfg); err == nil {
				env.Rpt.StoreData("config/"+filepath.Base(configFile), data)
			}
		}
	}
	if env.Log, err = env.Cfg.Logging.Prepare(env.Rpt); err != nil {
		return fmt.Errorf("unable to prepare logs: %w", err)
	}
	return nil
}

// teardown closes log and report. Errors from here on cannot be logged.
func teardown(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if env.Log != nil {
		env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	}
	env.RestoreStdLog()

	var err error
	if cerr := env.Rpt.Close(); cerr != nil {
		err = multierr.Append(err, fmt.Errorf("unable to close debug report: %w", cerr))
	}
	if env.Cfg != nil {
		err = multierr.Append(err, removeEmptyPanicLog(&env.Cfg.Logging))
	}
	return err
}

func removeEmptyPanicLog(conf *config.LoggingConfig) error {
	if conf.FileLogger.Destination == "" {
		return nil
	}
	debug.SetCrashOutput(nil, debug.CrashOptions{})

	name := conf.PanicLogName()
	fi, err := os.Stat(name)
	if err != nil || fi.Size() > 0 {
		return nil
	}
	if err := os.Remove(name); err != nil {
		return fmt.Errorf("unable to remove empty panic log file '%s': %w", name, err)
	}
	return nil
}
