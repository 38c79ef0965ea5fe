package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/elfinfo/internal/diag"
	"github.com/samcharles93/elfinfo/internal/logger"
	"github.com/samcharles93/elfinfo/internal/report"
	"github.com/samcharles93/elfinfo/internal/source"
	"github.com/samcharles93/elfinfo/pkg/elf"
)

func inspectCmd(o *options) *cli.Command {
	return &cli.Command{
		Name:         "inspect",
		Usage:        "Decode an ELF header and print it",
		ArgsUsage:    "<path|->",
		OnUsageError: usageError,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return cli.Exit("inspect: expected exactly one path (use - for stdin)", exitUsage)
			}
			return runInspect(ctx, cmd, o)
		},
	}
}

func runInspect(ctx context.Context, cmd *cli.Command, o *options) error {
	ctx, cfg, err := prepare(ctx, cmd, o)
	if err != nil {
		return err
	}
	applyInspectConfig(cmd, cfg, o)
	log := logger.FromContext(ctx)

	format, err := report.ParseFormat(o.format)
	if err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}
	mode, err := diag.ParseColorMode(o.color)
	if err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}

	root := cmd.Root()
	stdout, stderr := root.Writer, root.ErrWriter
	outFile, _ := stdout.(*os.File)
	errFile, _ := stderr.(*os.File)

	path := cmd.Args().First()
	h, err := decodePath(ctx, root, path, o.noMmap, log)
	if err != nil {
		if perr := diag.NewPrinter(stderr, mode.Enabled(errFile)).Print(err); perr != nil {
			return cli.Exit(err.Error(), exitFailure)
		}
		return cli.Exit("", exitFailure)
	}

	log.Debug("decoded header", "path", path, "class", h.Ident.Class, "machine", h.Machine)
	opts := report.Options{
		Color:  format == report.FormatText && mode.Enabled(outFile),
		Source: path,
	}
	if err := report.Write(stdout, h, format, opts); err != nil {
		return cli.Exit(err.Error(), exitFailure)
	}
	return nil
}

func decodePath(ctx context.Context, root *cli.Command, path string, noMmap bool, log logger.Logger) (elf.Header, error) {
	if path == "-" {
		return source.DecodeStream(ctx, root.Reader, log)
	}

	buf, err := source.Open(path, source.Options{NoMmap: noMmap})
	if err != nil {
		return elf.Header{}, err
	}
	defer func() { _ = buf.Close() }()
	log.Debug("opened input", "path", path, "bytes", len(buf.Bytes()), "mmap", buf.Mapped())

	h, _, err := elf.DecodeHeader(buf.Bytes())
	return h, err
}
