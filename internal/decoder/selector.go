package decoder

import (
	"github.com/retroenv/arcodes/internal/field"
	"github.com/retroenv/arcodes/internal/instruction"
)

type buildFunc func(kind instruction.Kind, first, second uint32) (*instruction.Instruction, error)

// selector claims a line pair for a code type. The type digit or fixed opcode of the
// kind has to match, guard can add restrictions on the second word.
type selector struct {
	kind  instruction.Kind
	guard func(pair LinePair, second uint32) bool
	build buildFunc
}

// selectors is sorted by decoding priority.
var selectors = []selector{
	{kind: instruction.WordWrite, build: buildWrite},
	{kind: instruction.ShortWrite, guard: highDigitsZero(4), build: buildWrite},
	{kind: instruction.ByteWrite, guard: highDigitsZero(6), build: buildWrite},

	{kind: instruction.WordGreaterThan, build: buildCondition32},
	{kind: instruction.WordLessThan, build: buildCondition32},
	{kind: instruction.WordEqualTo, build: buildCondition32},
	{kind: instruction.WordNotEqualTo, build: buildCondition32},

	{kind: instruction.ShortGreaterThan, build: buildCondition16},
	{kind: instruction.ShortLessThan, build: buildCondition16},
	{kind: instruction.ShortEqualTo, build: buildCondition16},
	{kind: instruction.ShortNotEqualTo, build: buildCondition16},

	{kind: instruction.LoadOffset, guard: secondZero, build: buildLoadOffset},
	{kind: instruction.Repeat, build: buildValue(instruction.NewRepeat)},
	{kind: instruction.ConditionEnd, guard: secondZero, build: buildFixed(instruction.NewConditionEnd)},
	{kind: instruction.RepetitionEnd, build: buildValue(instruction.NewRepetitionEnd)},
	{kind: instruction.Reset, guard: secondZero, build: buildFixed(instruction.NewReset)},
	{kind: instruction.SetOffset, build: buildValue(instruction.NewSetOffset)},
	{kind: instruction.AddToDxData, build: buildValue(instruction.NewAddToDxData)},
	{kind: instruction.SetDxData, build: buildValue(instruction.NewSetDxData)},

	{kind: instruction.DxDataWordWrite, build: buildDxDataWrite},
	{kind: instruction.DxDataShortWrite, build: buildDxDataWrite},
	{kind: instruction.DxDataByteWrite, build: buildDxDataWrite},
	{kind: instruction.DxDataWordRead, build: buildDxDataRead},
	{kind: instruction.DxDataShortRead, build: buildDxDataRead},
	{kind: instruction.DxDataByteRead, build: buildDxDataRead},

	{kind: instruction.AddToOffset, build: buildValue(instruction.NewAddToOffset)},
	{kind: instruction.WaitForButton, guard: secondNonZero, build: buildWaitForButton},
	{kind: instruction.Patch, build: buildPatch},
	{kind: instruction.Memory, build: buildMemory},
}

func (s selector) matches(pair LinePair, second uint32) bool {
	prefix := s.kind.Prefix()
	if s.kind.FixedOpcode() {
		if pair.First != prefix {
			return false
		}
	} else if pair.First[0] != prefix[0] {
		return false
	}
	return s.guard == nil || s.guard(pair, second)
}

func secondZero(_ LinePair, second uint32) bool {
	return second == 0
}

func secondNonZero(_ LinePair, second uint32) bool {
	return second != 0
}

// highDigitsZero returns a guard that requires the leading digits of the second word
// to be zero, making the value fit into the narrower width.
func highDigitsZero(digits int) func(LinePair, uint32) bool {
	return func(pair LinePair, _ uint32) bool {
		for _, c := range pair.Second[:digits] {
			if c != '0' {
				return false
			}
		}
		return true
	}
}

func address(first uint32) uint64 {
	return uint64(first & field.Offset)
}

func buildWrite(kind instruction.Kind, first, second uint32) (*instruction.Instruction, error) {
	return instruction.NewWrite(kind.Width(), address(first), uint64(second))
}

func buildCondition32(kind instruction.Kind, first, second uint32) (*instruction.Instruction, error) {
	return instruction.NewCondition32(kind.Condition(), address(first), uint64(second))
}

// buildCondition16 splits the second word into the mask in the high and the value in
// the low half.
func buildCondition16(kind instruction.Kind, first, second uint32) (*instruction.Instruction, error) {
	mask := uint64(second >> 16)
	value := uint64(second & field.Short)
	return instruction.NewCondition16(kind.Condition(), address(first), value, mask)
}

func buildLoadOffset(_ instruction.Kind, first, _ uint32) (*instruction.Instruction, error) {
	return instruction.NewLoadOffset(address(first))
}

func buildValue(create func(uint64) (*instruction.Instruction, error)) buildFunc {
	return func(_ instruction.Kind, _, second uint32) (*instruction.Instruction, error) {
		return create(uint64(second))
	}
}

func buildFixed(create func() *instruction.Instruction) buildFunc {
	return func(instruction.Kind, uint32, uint32) (*instruction.Instruction, error) {
		return create(), nil
	}
}

func buildDxDataWrite(kind instruction.Kind, _, second uint32) (*instruction.Instruction, error) {
	return instruction.NewDxDataWrite(kind.Width(), uint64(second))
}

func buildDxDataRead(kind instruction.Kind, _, second uint32) (*instruction.Instruction, error) {
	return instruction.NewDxDataRead(kind.Width(), uint64(second))
}

func buildWaitForButton(_ instruction.Kind, _, second uint32) (*instruction.Instruction, error) {
	buttons, err := instruction.DecodeButtons(second)
	if err != nil {
		return nil, err
	}
	return instruction.NewWaitForButton(buttons)
}

func buildPatch(_ instruction.Kind, first, second uint32) (*instruction.Instruction, error) {
	return instruction.NewPatch(address(first), uint64(second))
}

func buildMemory(_ instruction.Kind, first, second uint32) (*instruction.Instruction, error) {
	return instruction.NewMemory(address(first), uint64(second))
}
