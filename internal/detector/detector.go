// Package detector handles report format detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/arcodes/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Detector handles report format detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new format detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the report format from options or output file auto-detection.
// It first checks if a format is explicitly specified in options, otherwise
// attempts to detect the format from the output filename extension.
func (d *Detector) Detect(opts options.Program) options.Format {
	format, _ := options.FormatFromString(opts.Format)
	if format == "" {
		format = d.detectFromFile(opts.Output)
		d.logger.Debug("Auto-detected report format",
			log.String("format", string(format)),
			log.String("file", opts.Output))
	}
	return format
}

// detectFromFile determines the report format based on file extension.
func (d *Detector) detectFromFile(filename string) options.Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".yaml", ".yml":
		return options.FormatYAML
	default:
		// stdout and unknown extensions get a text report
		return options.FormatText
	}
}
