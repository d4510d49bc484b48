// Package main implements the main entry point for the Action Replay DS code decoder
package main

import (
	"context"
	"errors"

	"github.com/retroenv/arcodes/internal/cli"
	"github.com/retroenv/arcodes/internal/config"
	"github.com/retroenv/arcodes/internal/fileprocessor"
	"github.com/retroenv/arcodes/internal/options"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
	"github.com/tebeka/atexit"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, reportOptions, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Error("Invalid options", log.Err(err))
		}
		atexit.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	files, err := fileprocessor.GetFilesToProcess(&opts)
	if err != nil {
		logger.Error("Finding input files failed", log.Err(err))
		atexit.Exit(1)
	}

	batchFormat, _ := options.FormatFromString(opts.Format)
	failed := false
	for _, file := range files {
		opts.Input = file
		if opts.Batch != "" {
			opts.Output = fileprocessor.GenerateOutputFilename(file, batchFormat)
		}

		if err := fileprocessor.ProcessFile(ctx, logger, opts, reportOptions); err != nil {
			if errors.Is(err, context.Canceled) {
				logger.Info("Operation cancelled")
				atexit.Exit(1)
			}
			logger.Error("Decoding failed", log.String("file", file), log.Err(err))
			failed = true
		}
	}

	if failed {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
