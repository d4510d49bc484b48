// Package document splits a code document into titled codes and decodes their lines.
package document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/retroenv/arcodes/internal/decoder"
	"github.com/retroenv/arcodes/internal/instruction"
)

var (
	// ErrMalformedLine is returned for lines that are neither a title nor a code line
	// at a position where one of them is required.
	ErrMalformedLine = errors.New("malformed line")
	// ErrIncompletePatch is returned when a title is reached before a patch read all
	// of its data.
	ErrIncompletePatch = errors.New("incomplete patch")
)

// LineError wraps an error with the position of the line that caused it.
type LineError struct {
	Line int // 1 based
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d '%s': %s", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Document is the ordered list of codes of a code document.
type Document struct {
	Codes []*Code
}

// InstructionCount returns the number of instructions of all codes.
func (d *Document) InstructionCount() int {
	count := 0
	for _, code := range d.Codes {
		count += len(code.Instructions)
	}
	return count
}

type state int

const (
	beforeFirstTitle state = iota
	awaitingFirstBlock
	inBlocks
)

// Parser processes a document line by line. A parser can be reused, all state is
// reset for every document.
type Parser struct {
	decoder *decoder.Decoder

	state   state
	doc     *Document
	code    *Code
	pending *instruction.Instruction // patch that still expects data
}

// NewParser returns a new parser that uses the given decoder for code lines.
func NewParser(dec *decoder.Decoder) *Parser {
	return &Parser{
		decoder: dec,
	}
}

// Parse parses a document using a decoder that discards warnings.
func Parse(text string) (*Document, error) {
	return NewParser(decoder.New(nil)).Parse(text)
}

// Parse parses the document text. The first malformed line aborts the parsing and
// no document is returned. A patch that is missing data at the end of the text is kept
// and reported as warning.
func (p *Parser) Parse(text string) (*Document, error) {
	p.state = beforeFirstTitle
	p.doc = &Document{}
	p.code = nil
	p.pending = nil

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if err := p.processLine(line); err != nil {
			return nil, &LineError{Line: i + 1, Text: line, Err: err}
		}
	}

	p.decoder.Finish(p.pending)
	return p.doc, nil
}

func (p *Parser) processLine(line string) error {
	switch p.state {
	case beforeFirstTitle:
		if IsTitle(line) {
			return p.startCode(line)
		}
		return nil

	case awaitingFirstBlock:
		if line == "" {
			return nil
		}
		if err := p.parseBlock(line); err != nil {
			return err
		}
		p.state = inBlocks
		return nil

	default:
		if line == "" {
			return nil
		}
		if IsTitle(line) {
			if p.pending != nil {
				return fmt.Errorf("%w: %s", ErrIncompletePatch, p.pending)
			}
			return p.startCode(line)
		}
		return p.parseBlock(line)
	}
}

func (p *Parser) startCode(line string) error {
	code, err := NewCode(line)
	if err != nil {
		return err
	}
	p.doc.Codes = append(p.doc.Codes, code)
	p.code = code
	p.pending = nil
	p.state = awaitingFirstBlock
	return nil
}

// parseBlock decodes a code line into the current code. The pending patch is passed
// as previous instruction so that it consumes the line.
func (p *Parser) parseBlock(line string) error {
	inst, err := p.code.ParseBlock(line, p.decoder, p.pending)
	if err != nil {
		return err
	}

	if inst != nil {
		p.pending = inst
	}
	if p.pending != nil && p.pending.PatchComplete() {
		p.pending = nil
	}
	return nil
}
