package document

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/retroenv/arcodes/internal/decoder"
	"github.com/retroenv/arcodes/internal/instruction"
)

var titleExpression = regexp.MustCompile(`^\[(.+)\]$`)

// Code is a titled sequence of instructions. The instructions are kept in document
// order, which is their execution order.
type Code struct {
	Title        string
	Instructions []*instruction.Instruction
}

// IsTitle returns whether the line is a code title in brackets.
func IsTitle(line string) bool {
	return titleExpression.MatchString(strings.TrimSpace(line))
}

// ParseTitle returns the title between the brackets of a title line.
func ParseTitle(line string) (string, bool) {
	matches := titleExpression.FindStringSubmatch(strings.TrimSpace(line))
	if matches == nil {
		return "", false
	}
	return matches[1], true
}

// NewCode returns a new empty code for the title line.
func NewCode(titleLine string) (*Code, error) {
	title, ok := ParseTitle(titleLine)
	if !ok {
		return nil, fmt.Errorf("%w: '%s' is not a title", ErrMalformedLine, titleLine)
	}
	return &Code{
		Title: title,
	}, nil
}

// ParseBlock decodes a code line with previous as the preceding instruction and
// appends the resulting instruction, which is also returned. Lines that are consumed as
// patch data return no instruction.
func (c *Code) ParseBlock(line string, dec *decoder.Decoder,
	previous *instruction.Instruction) (*instruction.Instruction, error) {

	pair, ok := decoder.ParseLine(line)
	if !ok {
		return nil, ErrMalformedLine
	}

	inst, err := dec.Decode(pair, previous)
	if err != nil {
		return nil, err
	}
	if inst != nil {
		c.Instructions = append(c.Instructions, inst)
	}
	return inst, nil
}

func (c *Code) String() string {
	return c.Title
}
