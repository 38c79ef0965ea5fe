package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/elfinfo/internal/diag"
	"github.com/samcharles93/elfinfo/internal/logger"
	"github.com/samcharles93/elfinfo/internal/report"
	"github.com/samcharles93/elfinfo/pkg/elf"
)

func diffCmd(o *options) *cli.Command {
	return &cli.Command{
		Name:         "diff",
		Usage:        "Compare the headers of two files",
		ArgsUsage:    "<a> <b>",
		OnUsageError: usageError,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return cli.Exit("diff: expected two paths", exitUsage)
			}
			ctx, cfg, err := prepare(ctx, cmd, o)
			if err != nil {
				return err
			}
			applyInspectConfig(cmd, cfg, o)
			log := logger.FromContext(ctx)

			mode, err := diag.ParseColorMode(o.color)
			if err != nil {
				return cli.Exit(err.Error(), exitUsage)
			}
			root := cmd.Root()
			errFile, _ := root.ErrWriter.(*os.File)
			printer := diag.NewPrinter(root.ErrWriter, mode.Enabled(errFile))

			var headers [2]elf.Header
			for i, path := range cmd.Args().Slice() {
				h, err := decodePath(ctx, root, path, o.noMmap, log)
				if err != nil {
					_ = printer.Print(err)
					return cli.Exit("", exitFailure)
				}
				headers[i] = h
			}

			diffs := report.Diff(headers[0], headers[1])
			log.Debug("compared headers", "differences", len(diffs))
			if err := report.WriteDiff(root.Writer, diffs); err != nil {
				return cli.Exit(err.Error(), exitFailure)
			}
			return nil
		},
	}
}
