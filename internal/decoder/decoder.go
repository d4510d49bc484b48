// Package decoder converts code lines into instructions.
package decoder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/retroenv/arcodes/internal/instruction"
	"github.com/retroenv/retrogolib/log"
)

// ErrNoMatchingPattern is returned for line pairs that no code type claims.
var ErrNoMatchingPattern = errors.New("no matching pattern")

// NoMatchingPatternError contains the line pair that could not be decoded.
type NoMatchingPatternError struct {
	Pair LinePair
}

func (e *NoMatchingPatternError) Error() string {
	return fmt.Sprintf("%s for line '%s'", ErrNoMatchingPattern, e.Pair)
}

func (e *NoMatchingPatternError) Unwrap() error {
	return ErrNoMatchingPattern
}

// WarningHandler receives non fatal decoding diagnostics.
type WarningHandler interface {
	// TrailingPatchData is called when the line that completes a patch contains data
	// after the patch data that is not 0 or F padding.
	TrailingPatchData(pair LinePair, remainder string)

	// IncompletePatch is called when the input ends before a patch read all of its data.
	IncompletePatch(patch *instruction.Instruction)
}

// Decoder decodes line pairs into instructions. It keeps no state between calls, a
// pending patch is passed in as previous instruction by the caller.
type Decoder struct {
	warnings WarningHandler
}

// New returns a new decoder. If warnings is nil, warnings are discarded.
func New(warnings WarningHandler) *Decoder {
	if warnings == nil {
		warnings = discardWarnings{}
	}
	return &Decoder{
		warnings: warnings,
	}
}

// Decode decodes the line pair. If previous is a patch that has not read all of its
// digits yet, the line pair is consumed as patch data and no instruction is returned.
func (d *Decoder) Decode(pair LinePair, previous *instruction.Instruction) (*instruction.Instruction, error) {
	pair = pair.canonical()
	first, second, err := pair.words()
	if err != nil {
		return nil, err
	}

	if previous != nil && !previous.PatchComplete() {
		d.continuePatch(pair, previous)
		return nil, nil //nolint:nilnil // line was consumed as patch data
	}

	for _, sel := range selectors {
		if !sel.matches(pair, second) {
			continue
		}

		inst, err := sel.build(sel.kind, first, second)
		if err != nil {
			return nil, fmt.Errorf("decoding '%s' as %s: %w", pair, sel.kind, err)
		}
		return inst, nil
	}

	return nil, &NoMatchingPatternError{Pair: pair}
}

// Match returns the code type that claims the line pair without constructing an
// instruction.
func Match(pair LinePair) (instruction.Kind, bool) {
	pair = pair.canonical()
	_, second, err := pair.words()
	if err != nil {
		return 0, false
	}
	for _, sel := range selectors {
		if sel.matches(pair, second) {
			return sel.kind, true
		}
	}
	return 0, false
}

// Finish reports the last instruction of the input if it is a patch that is still
// missing data.
func (d *Decoder) Finish(previous *instruction.Instruction) {
	if previous != nil && !previous.PatchComplete() {
		d.warnings.IncompletePatch(previous)
	}
}

// continuePatch appends the digits of the line pair to the pending patch.
// Digits following the patch data are expected to be 0 or F padding.
func (d *Decoder) continuePatch(pair LinePair, patch *instruction.Instruction) {
	remainder := patch.ConsumePatch(pair.First + pair.Second)
	if strings.Trim(remainder, "0F") != "" {
		d.warnings.TrailingPatchData(pair, remainder)
	}
}

// LogWarnings reports decoding warnings to a logger.
type LogWarnings struct {
	logger *log.Logger
}

// NewLogWarnings returns a warning handler that logs all warnings.
func NewLogWarnings(logger *log.Logger) *LogWarnings {
	return &LogWarnings{
		logger: logger,
	}
}

// TrailingPatchData logs unexpected data after the patch data.
func (w *LogWarnings) TrailingPatchData(pair LinePair, remainder string) {
	w.logger.Warn("Unexpected data after patch data",
		log.String("line", pair.String()),
		log.String("data", remainder))
}

// IncompletePatch logs a patch that ended with missing data.
func (w *LogWarnings) IncompletePatch(patch *instruction.Instruction) {
	w.logger.Warn("Patch is missing data at end of document",
		log.String("line", patch.String()),
		log.Int("digits", len(patch.PatchDigits())),
		log.Hex("expected", patch.PatchLength()))
}

type discardWarnings struct{}

func (discardWarnings) TrailingPatchData(LinePair, string) {}

func (discardWarnings) IncompletePatch(*instruction.Instruction) {}
