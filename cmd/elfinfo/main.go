package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/elfinfo/internal/diag"
	"github.com/samcharles93/elfinfo/internal/logger"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	app := newApp(&options{})
	if err := app.Run(context.Background(), os.Args); err != nil {
		os.Exit(exitCode(os.Stderr, err))
	}
}

func newApp(o *options) *cli.Command {
	flags := append(loggingFlags(o), outputFlags(o)...)
	return &cli.Command{
		Name:         "elfinfo",
		Usage:        "Decode and print ELF file headers",
		ArgsUsage:    "[path|-]",
		Flags:        flags,
		OnUsageError: usageError,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return cli.ShowAppHelp(cmd)
			}
			return runInspect(ctx, cmd, o)
		},
		Commands: []*cli.Command{
			inspectCmd(o),
			diffCmd(o),
			serveCmd(o),
			versionCmd(),
		},
		// Exit codes are resolved in main so the app can run inside tests.
		ExitErrHandler: func(ctx context.Context, cmd *cli.Command, err error) {},
	}
}

func usageError(ctx context.Context, cmd *cli.Command, err error, isSubcommand bool) error {
	return cli.Exit(err.Error(), exitUsage)
}

// prepare loads the config file and installs the logger into ctx. It runs at
// the start of every action so flags given after a subcommand are honoured.
func prepare(ctx context.Context, cmd *cli.Command, o *options) (context.Context, Config, error) {
	cfg, err := LoadConfig(configPath(o.configFile))
	if err != nil {
		return ctx, Config{}, cli.Exit(fmt.Sprintf("config: %v", err), exitUsage)
	}
	applyLoggingConfig(cmd, cfg, o)
	mode, err := diag.ParseColorMode(o.color)
	if err != nil {
		return ctx, Config{}, cli.Exit(err.Error(), exitUsage)
	}

	level := logger.ParseLevel(o.logLevel)
	if o.debug {
		level = logger.ParseLevel("debug")
	}
	stderr := cmd.Root().ErrWriter
	f, _ := stderr.(*os.File)
	log, err := logger.New(stderr, logger.Options{
		Level:   level,
		Format:  logger.Format(o.logFormat),
		NoColor: !mode.Enabled(f),
	})
	if err != nil {
		return ctx, Config{}, cli.Exit(err.Error(), exitUsage)
	}
	return logger.WithContext(ctx, log), cfg, nil
}

// exitCode reports err on w unless it was already shown and returns the
// process status for it.
func exitCode(w io.Writer, err error) int {
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		if msg := ec.Error(); msg != "" {
			_, _ = fmt.Fprintln(w, msg)
		}
		return ec.ExitCode()
	}
	_, _ = fmt.Fprintln(w, err)
	return exitFailure
}
