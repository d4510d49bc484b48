// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/arcodes/internal/config"
	"github.com/retroenv/arcodes/internal/options"
	"github.com/retroenv/arcodes/internal/pipeline"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete file processing workflow. The report is only
// written once the document decoded without errors.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, reportOpts options.Report) error {
	var report bytes.Buffer
	p := pipeline.New(logger)
	if _, err := p.Execute(ctx, opts, reportOpts, &report); err != nil {
		return fmt.Errorf("processing %s: %w", opts.Input, err)
	}

	return writeReport(opts, report.Bytes())
}

func writeReport(opts options.Program, data []byte) (err error) {
	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if closeErr := writer.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing output file %s: %w", opts.Output, closeErr)
		}
	}()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch == "" {
		return []string{opts.Input}, nil
	}

	matches, err := filepath.Glob(opts.Batch)
	if err != nil {
		return nil, fmt.Errorf("globbing batch pattern: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match batch pattern '%s'", opts.Batch)
	}
	return matches, nil
}

// GenerateOutputFilename generates the report filename for a given input file
func GenerateOutputFilename(inputFile string, format options.Format) string {
	ext := filepath.Ext(inputFile)
	base := inputFile[:len(inputFile)-len(ext)]

	if format == options.FormatYAML {
		return base + ".report.yaml"
	}
	return base + ".report.txt"
}

func createWriter(opts options.Program) (io.WriteCloser, error) {
	if opts.Output == "" {
		return &nopCloser{os.Stdout}, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet || !config.IsInteractive(opts.Output) {
		return
	}

	versionString := buildinfo.Version(version, commit, date)
	logger.Info("arcodes", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Debug("Build", log.String("date", date))
	}
}

// nopCloser wraps an io.Writer to add a no-op Close method
type nopCloser struct {
	io.Writer
}

func (nc *nopCloser) Close() error {
	return nil
}
