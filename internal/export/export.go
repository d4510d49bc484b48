// Package export implements the structured YAML report of decoded documents.
package export

import (
	"fmt"
	"io"

	"github.com/retroenv/arcodes/internal/document"
	"github.com/retroenv/arcodes/internal/field"
	"github.com/retroenv/arcodes/internal/instruction"
	"github.com/retroenv/arcodes/internal/options"
	"github.com/retroenv/arcodes/internal/writer"
	"gopkg.in/yaml.v3"
)

// Report is the exported form of a document.
type Report struct {
	Codes []Code `yaml:"codes"`
}

// Code is the exported form of a titled code.
type Code struct {
	Title        string        `yaml:"title"`
	Instructions []Instruction `yaml:"instructions"`
}

// Instruction is the exported form of a single instruction.
type Instruction struct {
	Code       string   `yaml:"code"`
	Kind       string   `yaml:"kind"`
	Address    string   `yaml:"address,omitempty"`
	Value      string   `yaml:"value,omitempty"`
	Mask       string   `yaml:"mask,omitempty"`
	Buttons    []string `yaml:"buttons,omitempty"`
	Patch      string   `yaml:"patch,omitempty"`
	Prose      string   `yaml:"prose,omitempty"`
	Pseudocode string   `yaml:"pseudocode,omitempty"`
}

// YAML writes a report in YAML format.
type YAML struct {
	doc     *document.Document
	options options.Report
	writer  io.Writer
}

// New creates a new YAML report writer.
func New(doc *document.Document, w io.Writer, opts options.Report) writer.ReportWriter {
	return &YAML{
		doc:     doc,
		options: opts,
		writer:  w,
	}
}

// Write encodes the report.
func (y *YAML) Write() error {
	encoder := yaml.NewEncoder(y.writer)
	encoder.SetIndent(2)

	if err := encoder.Encode(NewReport(y.doc, y.options)); err != nil {
		return fmt.Errorf("encoding yaml report: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("closing yaml encoder: %w", err)
	}
	return nil
}

// NewReport converts a document into its exported form.
func NewReport(doc *document.Document, opts options.Report) Report {
	report := Report{
		Codes: make([]Code, 0, len(doc.Codes)),
	}

	for _, code := range doc.Codes {
		exported := Code{
			Title:        code.Title,
			Instructions: make([]Instruction, 0, len(code.Instructions)),
		}
		for _, inst := range code.Instructions {
			exported.Instructions = append(exported.Instructions, convertInstruction(inst, opts))
		}
		report.Codes = append(report.Codes, exported)
	}

	return report
}

func convertInstruction(inst *instruction.Instruction, opts options.Report) Instruction {
	kind := inst.Kind()
	exported := Instruction{
		Code: inst.String(),
		Kind: kind.String(),
	}

	switch kind {
	case instruction.ConditionEnd, instruction.Reset:
		// no fields

	case instruction.WaitForButton:
		exported.Buttons = inst.Buttons().Names()

	case instruction.LoadOffset,
		instruction.DxDataWordWrite, instruction.DxDataShortWrite, instruction.DxDataByteWrite,
		instruction.DxDataWordRead, instruction.DxDataShortRead, instruction.DxDataByteRead:
		exported.Address = hex(inst.Address())

	case instruction.Repeat, instruction.RepetitionEnd, instruction.SetOffset,
		instruction.AddToDxData, instruction.SetDxData, instruction.AddToOffset:
		exported.Value = hex(inst.Value())

	case instruction.Patch:
		exported.Address = hex(inst.Address())
		exported.Value = hex(inst.Value())
		exported.Patch = inst.PatchDigits()

	default:
		exported.Address = hex(inst.Address())
		exported.Value = hex(inst.Value())
		if kind.IsConditional() && kind.Width() == instruction.WidthShort {
			exported.Mask = hex(uint32(inst.Mask()))
		}
	}

	if opts.Mode != options.ModePseudocode {
		exported.Prose = inst.Prose(opts.Comments)
	}
	if opts.Mode != options.ModeProse {
		exported.Pseudocode = inst.Pseudocode(opts.Comments)
	}
	return exported
}

func hex(value uint32) string {
	return "0x" + field.FormatHex(uint64(value), field.WordDigits)
}
