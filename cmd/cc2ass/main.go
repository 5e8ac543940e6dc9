package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cc2ass/config"
	"cc2ass/convert"
	"cc2ass/misc"
	"cc2ass/state"
)

// defaultsReportName is used for configuration in the report when no file was given.
const defaultsReportName = "config/defaults.yaml"

// setupEnv runs once command line is parsed, before any action.
func setupEnv(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.NArg() == 0 {
		// help or version only
		return ctx, nil
	}

	env := state.EnvFromContext(ctx)
	configFile := cmd.String("config")

	cfg, err := config.LoadConfiguration(configFile)
	if err != nil {
		return ctx, fmt.Errorf("unable to load configuration: %w", err)
	}
	env.Cfg = cfg

	if cmd.Bool("debug") {
		if env.Rpt, err = cfg.Reporting.Prepare(); err != nil {
			return ctx, fmt.Errorf("unable to create debug report: %w", err)
		}
		storeConfiguration(env, configFile)
	}

	if env.Log, err = cfg.Logging.Prepare(env.Rpt); err != nil {
		return ctx, fmt.Errorf("unable to set up logging: %w", err)
	}
	env.RedirectStdLog()

	env.Log.Debug("Starting",
		zap.Strings("args", os.Args),
		zap.String("version", misc.GetVersion()),
		zap.String("hash", misc.GetGitHash()),
		zap.String("runtime", runtime.Version()))
	switch {
	case env.Rpt != nil:
		env.Log.Info("Debug report requested", zap.String("location", env.Rpt.Name()))
	case len(configFile) == 0:
		env.Log.Debug("No configuration file, using defaults")
	}
	return ctx, nil
}

// storeConfiguration puts effective configuration into the report.
func storeConfiguration(env *state.LocalEnv, configFile string) {
	data, err := config.Dump(env.Cfg)
	if err != nil {
		return
	}
	name := defaultsReportName
	if len(configFile) > 0 {
		name = "config/" + filepath.Base(configFile)
	}
	env.Rpt.StoreData(name, data)
}

func teardownEnv(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if env.Log != nil {
		env.Log.Debug("Finished", zap.Duration("elapsed", env.Uptime()), zap.Strings("args", cmd.Args().Slice()))
	}
	env.RestoreStdLog()

	// logger is synced, report may include log file now, from here on
	// errors go to stderr only
	var err error
	if env.Rpt != nil {
		if e := env.Rpt.Close(); e != nil {
			err = multierr.Append(err, fmt.Errorf("unable to finalize debug report: %w", e))
		}
	}
	if env.Cfg != nil {
		err = multierr.Append(err, dropEmptyPanicLog(env.Cfg.Logging.FileLogger.Destination))
	}
	return err
}

// dropEmptyPanicLog removes crash output file when nothing was written to it.
func dropEmptyPanicLog(logFile string) error {
	if len(logFile) == 0 {
		return nil
	}
	debug.SetCrashOutput(nil, debug.CrashOptions{})

	name := filepath.Join(filepath.Dir(logFile), misc.GetAppName()+"-panic.log")
	fi, err := os.Stat(name)
	if err != nil || fi.Size() != 0 {
		return nil
	}
	if err := os.Remove(name); err != nil {
		return fmt.Errorf("unable to remove empty crash log '%s': %w", name, err)
	}
	return nil
}

// errLogged is set when error reached log, so it is not printed twice.
var errLogged bool

// reportError is invoked before teardown, logger is still available.
func reportError(ctx context.Context, _ *cli.Command, err error) {
	if log := state.EnvFromContext(ctx).Log; log != nil {
		log.Error("Conversion failed", zap.Error(err))
		errLogged = true
	}
}

func onUsageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func onUnknownCommand(ctx context.Context, _ *cli.Command, name string) {
	if log := state.EnvFromContext(ctx).Log; log != nil {
		log.Warn("Unknown command, nothing to do", zap.String("command", name))
	}
}

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:         "convert",
		Usage:        "Converts CineCanvas subtitles to ASS",
		ArgsUsage:    "SOURCE [DESTINATION]",
		OnUsageError: onUsageError,
		Action:       convert.Run,
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "width", Usage: "target frame width in `PIXELS` (overrides configuration)"},
			&cli.IntFlag{Name: "height", Usage: "target frame height in `PIXELS` (overrides configuration)"},
			&cli.BoolFlag{Name: "ruby-experimental", Aliases: []string{"ruby"}, Usage: "emit separate approximately positioned lines for ruby annotations"},
			&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "replace existing output files"},
		},
		CustomHelpTemplate: cli.CommandHelpTemplate + `
SOURCE:
    CineCanvas XML file, directory or zip archive with packed DCP. Directories
    and archives are searched recursively, only documents with DCSubtitle root
    element are converted. Fonts are read relative to the document, from the
    archive itself for archived documents.

DESTINATION:
    output directory, current working directory when absent. For a single
    file SOURCE it could be exact output file name with ".ass" extension.
`,
	}
}

func inspectCommand(name, usage string, action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:         name,
		Usage:        usage,
		ArgsUsage:    "SOURCE",
		OnUsageError: onUsageError,
		Action:       action,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "dom", Usage: "load document into DOM first instead of streaming it into subtitle tree"},
		},
	}
}

func dumpConfigCommand() *cli.Command {
	return &cli.Command{
		Name:         "dumpconfig",
		Usage:        "Writes default or effective configuration (YAML)",
		ArgsUsage:    "[FILE]",
		OnUsageError: onUsageError,
		Action:       writeConfiguration,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "default", Usage: "write configuration embedded into the program"},
		},
		CustomHelpTemplate: cli.CommandHelpTemplate + `
FILE:
    where to write configuration, standard output when absent

Effective configuration combines embedded defaults with values from the file
given by --config. Use --default to see embedded defaults alone.
`,
	}
}

func writeConfiguration(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Too many arguments, extra ignored", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	var (
		kind = "effective"
		data []byte
		err  error
	)
	if cmd.Bool("default") {
		kind = "default"
		data, err = config.Prepare()
	} else {
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to produce %s configuration: %w", kind, err)
	}

	fname := cmd.Args().First()
	if len(fname) == 0 {
		_, err = env.Out.Write(data)
	} else {
		env.Log.Info("Writing configuration", zap.String("kind", kind), zap.String("file", fname))
		err = os.WriteFile(fname, data, 0644)
	}
	if err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "converts CineCanvas (DCP) XML subtitles to Advanced SubStation Alpha",
		Version:         fmt.Sprintf("%s (%s) : %s", misc.GetVersion(), runtime.Version(), misc.GetGitHash()),
		HideHelpCommand: true,
		Before:          setupEnv,
		After:           teardownEnv,
		OnUsageError:    onUsageError,
		ExitErrHandler:  reportError,
		CommandNotFound: onUnknownCommand,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "read configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log everything and collect sources, results and logs into report archive"},
		},
		Commands: []*cli.Command{
			convertCommand(),
			inspectCommand("info", "Prints document metadata, fonts and subtitle list", convert.Info),
			inspectCommand("dump", "Prints parsed subtitle tree", convert.Dump),
			dumpConfigCommand(),
		},
	}

	err := app.Run(ctx, os.Args)
	stop()
	if err != nil {
		if !errLogged {
			fmt.Fprintf(os.Stderr, "%s: %v\n", misc.GetAppName(), err)
		}
		// no deferred calls, exit code must be set
		os.Exit(1)
	}
}
