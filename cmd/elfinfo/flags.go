package main

import (
	"time"

	"github.com/urfave/cli/v3"
)

// options holds flag destinations for one invocation of the app.
type options struct {
	configFile string
	logLevel   string
	logFormat  string
	debug      bool

	format string
	color  string
	noMmap bool

	addr        string
	maxBody     int64
	maxResults  int64
	readTimeout time.Duration
}

func loggingFlags(o *options) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "path to config.yaml (default: $ELFINFO_CONFIG or the user config dir)",
			Destination: &o.configFile,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "warn",
			Destination: &o.logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (pretty, json, text)",
			Value:       "pretty",
			Destination: &o.logFormat,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "enable debug logging (shorthand for --log-level=debug)",
			Destination: &o.debug,
		},
	}
}

func outputFlags(o *options) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "report format (text, json, yaml)",
			Value:       "text",
			Destination: &o.format,
		},
		&cli.StringFlag{
			Name:        "color",
			Usage:       "colorize output (auto, always, never)",
			Value:       "auto",
			Destination: &o.color,
		},
		&cli.BoolFlag{
			Name:        "no-mmap",
			Usage:       "read input files instead of mapping them",
			Destination: &o.noMmap,
		},
	}
}

func serveFlags(o *options) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "listen address",
			Value:       "127.0.0.1:8080",
			Destination: &o.addr,
		},
		&cli.Int64Flag{
			Name:        "max-body",
			Usage:       "maximum upload size in bytes",
			Value:       1 << 20,
			Destination: &o.maxBody,
		},
		&cli.Int64Flag{
			Name:        "max-results",
			Usage:       "number of inspections kept for GET /v1/headers/:id",
			Value:       256,
			Destination: &o.maxResults,
		},
		&cli.DurationFlag{
			Name:        "read-timeout",
			Usage:       "read timeout",
			Value:       30 * time.Second,
			Destination: &o.readTimeout,
		},
	}
}
