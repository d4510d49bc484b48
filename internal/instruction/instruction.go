// Package instruction contains the catalog of Action Replay code types.
//
// Every code type is a variant of the single Instruction type, tagged by its Kind.
// Instructions are created through the constructors of this package, which validate all
// fields against their widths before the canonical code words are rendered. The
// canonical words of an instruction never change after construction.
//
// The offset and DxData registers referenced by the rendered output are labels only,
// instructions are never executed.
package instruction

import (
	"fmt"
	"strings"

	"github.com/retroenv/arcodes/internal/field"
)

// Register labels used in rendered output.
const (
	OffsetLabel = "offset"
	DxDataLabel = "DxDATA"
)

// Instruction is a single decoded code line.
type Instruction struct {
	kind   Kind
	first  string
	second string

	address uint32
	value   uint32 // value, count or declared patch length depending on the kind
	mask    uint16
	buttons Buttons

	patch string // hex digits read from the following lines
}

// Kind returns the code type of the instruction.
func (i *Instruction) Kind() Kind {
	return i.kind
}

// Words returns the canonical first and second code words.
func (i *Instruction) Words() (string, string) {
	return i.first, i.second
}

// String returns the canonical code line.
func (i *Instruction) String() string {
	return i.first + " " + i.second
}

// Address returns the memory address of the instruction.
func (i *Instruction) Address() uint32 {
	return i.address
}

// Value returns the value, count or declared patch length of the instruction.
func (i *Instruction) Value() uint32 {
	return i.value
}

// Mask returns the mask of a 16 bit conditional.
func (i *Instruction) Mask() uint16 {
	return i.mask
}

// Condition returns the comparison of a conditional instruction.
func (i *Instruction) Condition() Condition {
	return i.kind.Condition()
}

// Buttons returns the key set of a wait for button instruction.
func (i *Instruction) Buttons() Buttons {
	return i.buttons
}

// PatchLength returns the declared number of hex digits of a patch instruction.
func (i *Instruction) PatchLength() uint32 {
	if i.kind != Patch {
		return 0
	}
	return i.value
}

// PatchDigits returns the hex digits of the patch read so far.
func (i *Instruction) PatchDigits() string {
	return i.patch
}

// PatchComplete returns whether a patch instruction has read all of its declared digits.
// It returns true for all other code types.
func (i *Instruction) PatchComplete() bool {
	return i.kind != Patch || uint64(len(i.patch)) >= uint64(i.value)
}

// ConsumePatch appends the given hex digits to the patch buffer until the declared
// length is reached and returns the unused digits.
func (i *Instruction) ConsumePatch(digits string) string {
	if i.PatchComplete() {
		return digits
	}

	missing := uint64(i.value) - uint64(len(i.patch))
	n := uint64(len(digits))
	if n > missing {
		n = missing
	}
	i.patch += field.Canonical(digits[:n])
	return digits[n:]
}

// Equal returns whether both instructions are of the same kind with identical code words
// and patch contents.
func (i *Instruction) Equal(other *Instruction) bool {
	if i == nil || other == nil {
		return i == other
	}
	return i.kind == other.kind &&
		i.first == other.first &&
		i.second == other.second &&
		i.patch == other.patch
}

// NewWrite returns a constant RAM write of the given width.
func NewWrite(width Width, address, value uint64) (*Instruction, error) {
	kind, err := widthKind(width, WordWrite, ShortWrite, ByteWrite)
	if err != nil {
		return nil, err
	}
	return newAddressValue(kind, address, value)
}

// NewWordWrite returns a 32 bit constant RAM write.
func NewWordWrite(address, value uint64) (*Instruction, error) {
	return newAddressValue(WordWrite, address, value)
}

// NewShortWrite returns a 16 bit constant RAM write.
func NewShortWrite(address, value uint64) (*Instruction, error) {
	return newAddressValue(ShortWrite, address, value)
}

// NewByteWrite returns an 8 bit constant RAM write.
func NewByteWrite(address, value uint64) (*Instruction, error) {
	return newAddressValue(ByteWrite, address, value)
}

// NewMemoryWrite returns the narrowest constant RAM write that can hold the value.
func NewMemoryWrite(address, value uint64) (*Instruction, error) {
	switch {
	case value <= field.Byte:
		return NewByteWrite(address, value)
	case value <= field.Short:
		return NewShortWrite(address, value)
	default:
		return NewWordWrite(address, value)
	}
}

// NewCondition32 returns a 32 bit conditional code for the given comparison.
func NewCondition32(condition Condition, address, value uint64) (*Instruction, error) {
	kind, err := conditionKind(condition, WordGreaterThan, WordLessThan, WordEqualTo, WordNotEqualTo)
	if err != nil {
		return nil, err
	}
	return newAddressValue(kind, address, value)
}

// NewCondition16 returns a 16 bit masked conditional code for the given comparison.
func NewCondition16(condition Condition, address, value, mask uint64) (*Instruction, error) {
	kind, err := conditionKind(condition, ShortGreaterThan, ShortLessThan, ShortEqualTo, ShortNotEqualTo)
	if err != nil {
		return nil, err
	}
	if err := validateAddressValue(kind, address, value); err != nil {
		return nil, err
	}
	if err := field.ValidateRange("Mask", mask, 0, field.Mask); err != nil {
		return nil, err
	}

	return &Instruction{
		kind:    kind,
		first:   kind.Prefix() + field.FormatHex(address, 7),
		second:  field.FormatHex(mask, field.ShortDigits) + field.FormatHex(value, field.ShortDigits),
		address: uint32(address),
		value:   uint32(value),
		mask:    uint16(mask),
	}, nil
}

// NewLoadOffset returns a code that loads the offset register from memory.
func NewLoadOffset(address uint64) (*Instruction, error) {
	if err := field.ValidateRange("Address", address, 0, field.Offset); err != nil {
		return nil, err
	}
	return &Instruction{
		kind:    LoadOffset,
		first:   LoadOffset.Prefix() + field.FormatHex(address, 7),
		second:  field.FormatHex(0, field.WordDigits),
		address: uint32(address),
	}, nil
}

// NewRepeat returns a code that starts a repeat block.
func NewRepeat(count uint64) (*Instruction, error) {
	return newFixedValue(Repeat, "Count", count)
}

// NewConditionEnd returns a code that ends a conditional block.
func NewConditionEnd() *Instruction {
	return newFixed(ConditionEnd)
}

// NewRepetitionEnd returns a code that ends a repeat block.
func NewRepetitionEnd(count uint64) (*Instruction, error) {
	return newFixedValue(RepetitionEnd, "Count", count)
}

// NewReset returns a code that ends all blocks and resets the registers.
func NewReset() *Instruction {
	return newFixed(Reset)
}

// NewSetOffset returns a code that sets the offset register.
func NewSetOffset(value uint64) (*Instruction, error) {
	return newFixedValue(SetOffset, "Value", value)
}

// NewAddToDxData returns a code that adds to the DxData register.
func NewAddToDxData(value uint64) (*Instruction, error) {
	return newFixedValue(AddToDxData, "Value", value)
}

// NewSetDxData returns a code that sets the DxData register.
func NewSetDxData(value uint64) (*Instruction, error) {
	return newFixedValue(SetDxData, "Value", value)
}

// NewDxDataWrite returns a DxData write code of the given width.
func NewDxDataWrite(width Width, address uint64) (*Instruction, error) {
	kind, err := widthKind(width, DxDataWordWrite, DxDataShortWrite, DxDataByteWrite)
	if err != nil {
		return nil, err
	}
	return newFixedAddress(kind, address)
}

// NewDxDataRead returns a DxData read code of the given width.
func NewDxDataRead(width Width, address uint64) (*Instruction, error) {
	kind, err := widthKind(width, DxDataWordRead, DxDataShortRead, DxDataByteRead)
	if err != nil {
		return nil, err
	}
	return newFixedAddress(kind, address)
}

// NewAddToOffset returns a code that adds to the offset register.
func NewAddToOffset(value uint64) (*Instruction, error) {
	return newFixedValue(AddToOffset, "Value", value)
}

// NewWaitForButton returns a code that executes the following block only while the
// given keys are pressed.
func NewWaitForButton(buttons Buttons) (*Instruction, error) {
	if _, err := DecodeButtons(uint32(buttons)); err != nil {
		return nil, err
	}
	return &Instruction{
		kind:    WaitForButton,
		first:   WaitForButton.Prefix(),
		second:  field.FormatHex(uint64(buttons), field.WordDigits),
		buttons: buttons,
	}, nil
}

// NewPatch returns a patch code that copies the data of length hex digits, read from
// the following code lines, to the address. The patch buffer starts empty.
func NewPatch(address, length uint64) (*Instruction, error) {
	if err := field.ValidateRange("Address", address, 0, field.Offset); err != nil {
		return nil, err
	}
	if err := field.ValidateRange("Count", length, 0, field.Word); err != nil {
		return nil, err
	}
	return &Instruction{
		kind:    Patch,
		first:   Patch.Prefix() + field.FormatHex(address, 7),
		second:  field.FormatHex(length, field.WordDigits),
		address: uint32(address),
		value:   uint32(length),
	}, nil
}

// NewMemory returns a code that copies count bytes from the offset to the address.
func NewMemory(address, count uint64) (*Instruction, error) {
	if err := field.ValidateRange("Address", address, 0, field.Offset); err != nil {
		return nil, err
	}
	if err := field.ValidateRange("Count", count, 0, field.Word); err != nil {
		return nil, err
	}
	return &Instruction{
		kind:    Memory,
		first:   Memory.Prefix() + field.FormatHex(address, 7),
		second:  field.FormatHex(count, field.WordDigits),
		address: uint32(address),
		value:   uint32(count),
	}, nil
}

func newAddressValue(kind Kind, address, value uint64) (*Instruction, error) {
	if err := validateAddressValue(kind, address, value); err != nil {
		return nil, err
	}
	return &Instruction{
		kind:    kind,
		first:   kind.Prefix() + field.FormatHex(address, 7),
		second:  field.FormatHex(value, field.WordDigits),
		address: uint32(address),
		value:   uint32(value),
	}, nil
}

func validateAddressValue(kind Kind, address, value uint64) error {
	if err := field.ValidateRange("Value", value, 0, kind.Width().Max()); err != nil {
		return err
	}
	if err := field.ValidateRange("Address", address, 0, field.Offset); err != nil {
		return err
	}
	return nil
}

func newFixed(kind Kind) *Instruction {
	return &Instruction{
		kind:   kind,
		first:  kind.Prefix(),
		second: field.FormatHex(0, field.WordDigits),
	}
}

func newFixedValue(kind Kind, name string, value uint64) (*Instruction, error) {
	if err := field.ValidateRange(name, value, 0, field.Word); err != nil {
		return nil, err
	}
	return &Instruction{
		kind:   kind,
		first:  kind.Prefix(),
		second: field.FormatHex(value, field.WordDigits),
		value:  uint32(value),
	}, nil
}

// newFixedAddress creates a DxData code, these take a full 32 bit address from the
// second word.
func newFixedAddress(kind Kind, address uint64) (*Instruction, error) {
	if err := field.ValidateRange("Address", address, 0, field.Word); err != nil {
		return nil, err
	}
	return &Instruction{
		kind:    kind,
		first:   kind.Prefix(),
		second:  field.FormatHex(address, field.WordDigits),
		address: uint32(address),
	}, nil
}

func widthKind(width Width, word, half, single Kind) (Kind, error) {
	switch width {
	case WidthWord:
		return word, nil
	case WidthShort:
		return half, nil
	case WidthByte:
		return single, nil
	default:
		return 0, fmt.Errorf("unknown width %d", width)
	}
}

func conditionKind(condition Condition, greater, less, equal, notEqual Kind) (Kind, error) {
	switch condition {
	case GreaterThan:
		return greater, nil
	case LessThan:
		return less, nil
	case EqualTo:
		return equal, nil
	case NotEqualTo:
		return notEqual, nil
	default:
		return 0, fmt.Errorf("unknown condition %d", condition)
	}
}

// patchChunks groups the patch digits as 8 digit chunks.
func (i *Instruction) patchChunks() string {
	digits := i.patch
	var chunks []string
	for len(digits) > field.TokenLength {
		chunks = append(chunks, digits[:field.TokenLength])
		digits = digits[field.TokenLength:]
	}
	chunks = append(chunks, digits)
	return strings.Join(chunks, " ")
}
