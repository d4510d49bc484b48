// Package pipeline orchestrates the decoding workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/arcodes/internal/decoder"
	"github.com/retroenv/arcodes/internal/detector"
	"github.com/retroenv/arcodes/internal/document"
	"github.com/retroenv/arcodes/internal/export"
	"github.com/retroenv/arcodes/internal/loader"
	"github.com/retroenv/arcodes/internal/options"
	"github.com/retroenv/arcodes/internal/writer"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// Pipeline orchestrates the complete decoding workflow.
type Pipeline struct {
	logger     *log.Logger
	detector   *detector.Detector
	loader     *loader.Loader
	dumpWriter io.Writer
}

// New creates a new decoding pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:     logger,
		detector:   detector.New(logger),
		loader:     loader.New(),
		dumpWriter: os.Stderr,
	}
}

// Execute runs the complete decoding pipeline.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, reportOpts options.Report,
	w io.Writer) (*document.Document, error) {

	text, err := p.loader.Load(opts)
	if err != nil {
		return nil, fmt.Errorf("loading document: %w", err)
	}

	return p.ExecuteWithText(ctx, text, opts, reportOpts, w)
}

// ExecuteWithText runs the decoding pipeline with a pre-loaded document text.
// This is useful for testing and programmatic usage where the document is already in memory.
func (p *Pipeline) ExecuteWithText(ctx context.Context, text string, opts options.Program,
	reportOpts options.Report, w io.Writer) (*document.Document, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("decoding cancelled: %w", err)
	}

	if reportOpts.Format == "" {
		reportOpts.Format = p.detector.Detect(opts)
	}
	newReportWriter, err := p.initializeReport(reportOpts.Format)
	if err != nil {
		return nil, fmt.Errorf("initializing report: %w", err)
	}

	dec := decoder.New(decoder.NewLogWarnings(p.logger))
	doc, err := document.NewParser(dec).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	p.checkTitles(doc)
	p.printInfo(opts, doc)

	if opts.Dump {
		writer.Dump(p.dumpWriter, doc)
	}

	if err := newReportWriter(doc, w, reportOpts).Write(); err != nil {
		return nil, fmt.Errorf("writing report: %w", err)
	}
	return doc, nil
}

// initializeReport returns the report writer constructor for the specified format.
func (p *Pipeline) initializeReport(format options.Format) (writer.Constructor, error) {
	switch format {
	case options.FormatText:
		return writer.New, nil
	case options.FormatYAML:
		return export.New, nil
	default:
		return nil, fmt.Errorf("unsupported report format '%s'", format)
	}
}

// checkTitles warns about codes that share a title.
func (p *Pipeline) checkTitles(doc *document.Document) {
	titles := set.New[string]()
	for _, code := range doc.Codes {
		if titles.Contains(code.Title) {
			p.logger.Warn("Duplicate code title", log.String("title", code.Title))
			continue
		}
		titles.Add(code.Title)

		if len(code.Instructions) == 0 {
			p.logger.Debug("Code without instructions", log.String("title", code.Title))
		}
	}
}

// printInfo prints information about the decoded document.
func (p *Pipeline) printInfo(opts options.Program, doc *document.Document) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Decoded code document",
		log.String("file", opts.Input),
		log.Int("codes", len(doc.Codes)),
		log.Int("instructions", doc.InstructionCount()),
	)
}
