// Package writer implements the report output of decoded documents.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/retroenv/arcodes/internal/document"
	"github.com/retroenv/arcodes/internal/instruction"
	"github.com/retroenv/arcodes/internal/options"
)

// ReportWriter defines a shared interface used by the different report formats.
// Their constructors need to return this shared interface, having them return the actual type instead of
// the interface results in compiler errors for the constructor variable that they are assigned to.
type ReportWriter interface {
	Write() error
}

// Constructor creates a report writer for a document.
type Constructor func(doc *document.Document, writer io.Writer, opts options.Report) ReportWriter

// Writer writes a plain text report.
type Writer struct {
	doc     *document.Document
	options options.Report
	writer  io.Writer
}

// New creates a new text report writer.
func New(doc *document.Document, writer io.Writer, opts options.Report) ReportWriter {
	return &Writer{
		doc:     doc,
		options: opts,
		writer:  writer,
	}
}

// Write writes every code as title line followed by one line per instruction.
func (w *Writer) Write() error {
	for _, code := range w.doc.Codes {
		if _, err := fmt.Fprintf(w.writer, "\n[%s]\n", code.Title); err != nil {
			return fmt.Errorf("writing title: %w", err)
		}

		for _, inst := range code.Instructions {
			if err := w.writeInstruction(inst); err != nil {
				return fmt.Errorf("writing instruction '%s': %w", inst, err)
			}
		}
	}
	return nil
}

func (w *Writer) writeInstruction(inst *instruction.Instruction) error {
	prefix := inst.String() + ": "

	var lines []string
	switch w.options.Mode {
	case options.ModePseudocode:
		lines = []string{prefix + inst.Pseudocode(w.options.Comments)}
	case options.ModeBoth:
		indent := strings.Repeat(" ", len(prefix))
		lines = []string{
			prefix + inst.Prose(w.options.Comments),
			indent + inst.Pseudocode(w.options.Comments),
		}
	default:
		lines = []string{prefix + inst.Prose(w.options.Comments)}
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w.writer, line); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	return nil
}

// Dump writes the complete decoded document structure including all unexported
// instruction fields, for debugging.
func Dump(writer io.Writer, doc *document.Document) {
	cfg := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		DisableMethods:          true,
	}
	cfg.Fdump(writer, doc)
}
