package decoder

import (
	"fmt"
	"regexp"

	"github.com/retroenv/arcodes/internal/field"
)

var lineExpression = regexp.MustCompile(`^\s*([0-9A-Fa-f]{8})\s*([0-9A-Fa-f]{8})\s*$`)

// LinePair is a single code line made of two 8 digit hex words.
type LinePair struct {
	First  string
	Second string
}

// ParseLine returns the line pair of a code line. The words can be separated by any
// amount of whitespace and are returned in canonical uppercase form.
func ParseLine(line string) (LinePair, bool) {
	matches := lineExpression.FindStringSubmatch(line)
	if matches == nil {
		return LinePair{}, false
	}
	return LinePair{
		First:  field.Canonical(matches[1]),
		Second: field.Canonical(matches[2]),
	}, true
}

func (p LinePair) String() string {
	return p.First + " " + p.Second
}

// words returns the numeric values of both words.
func (p LinePair) words() (uint32, uint32, error) {
	first, err := field.ParseHex(p.First)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing first word: %w", err)
	}
	second, err := field.ParseHex(p.Second)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing second word: %w", err)
	}
	return first, second, nil
}

func (p LinePair) canonical() LinePair {
	return LinePair{
		First:  field.Canonical(p.First),
		Second: field.Canonical(p.Second),
	}
}
