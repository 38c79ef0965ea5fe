package main

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/elfinfo/internal/api"
	"github.com/samcharles93/elfinfo/internal/logger"
)

func serveCmd(o *options) *cli.Command {
	return &cli.Command{
		Name:         "serve",
		Usage:        "Serve header inspection over HTTP",
		Flags:        serveFlags(o),
		OnUsageError: usageError,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, cfg, err := prepare(ctx, cmd, o)
			if err != nil {
				return err
			}
			applyServeConfig(cmd, cfg, o)
			log := logger.FromContext(ctx)

			server := api.NewServer(api.Config{
				MaxBodyBytes: o.maxBody,
				MaxResults:   int(o.maxResults),
				Logger:       log,
			})
			e := echo.New()
			e.Use(middleware.RequestLogger())
			e.Use(middleware.Recover())
			server.Register(e)
			log.Info("starting server", "address", o.addr, "max_body", o.maxBody)
			sc := echo.StartConfig{
				Address: o.addr,
				BeforeServeFunc: func(srv *http.Server) error {
					srv.ReadHeaderTimeout = o.readTimeout
					srv.ReadTimeout = o.readTimeout
					return nil
				},
			}
			return sc.Start(ctx, e)
		},
	}
}
