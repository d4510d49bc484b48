package instruction

import "github.com/retroenv/arcodes/internal/field"

// Kind identifies the code type of an instruction.
type Kind int

// Code types, in decoder priority order.
const (
	WordWrite Kind = iota
	ShortWrite
	ByteWrite
	WordGreaterThan
	WordLessThan
	WordEqualTo
	WordNotEqualTo
	ShortGreaterThan
	ShortLessThan
	ShortEqualTo
	ShortNotEqualTo
	LoadOffset
	Repeat
	ConditionEnd
	RepetitionEnd
	Reset
	SetOffset
	AddToDxData
	SetDxData
	DxDataWordWrite
	DxDataShortWrite
	DxDataByteWrite
	DxDataWordRead
	DxDataShortRead
	DxDataByteRead
	AddToOffset
	WaitForButton
	Patch
	Memory

	kindCount
)

// kindInfo describes the static encoding properties of a code type.
type kindInfo struct {
	name      string
	prefix    string // type digit or complete first word for fixed opcodes
	width     Width
	condition Condition
}

var kinds = [kindCount]kindInfo{
	WordWrite:        {name: "WordWrite", prefix: "0", width: WidthWord},
	ShortWrite:       {name: "ShortWrite", prefix: "1", width: WidthShort},
	ByteWrite:        {name: "ByteWrite", prefix: "2", width: WidthByte},
	WordGreaterThan:  {name: "WordGreaterThan", prefix: "3", width: WidthWord, condition: GreaterThan},
	WordLessThan:     {name: "WordLessThan", prefix: "4", width: WidthWord, condition: LessThan},
	WordEqualTo:      {name: "WordEqualTo", prefix: "5", width: WidthWord, condition: EqualTo},
	WordNotEqualTo:   {name: "WordNotEqualTo", prefix: "6", width: WidthWord, condition: NotEqualTo},
	ShortGreaterThan: {name: "ShortGreaterThan", prefix: "7", width: WidthShort, condition: GreaterThan},
	ShortLessThan:    {name: "ShortLessThan", prefix: "8", width: WidthShort, condition: LessThan},
	ShortEqualTo:     {name: "ShortEqualTo", prefix: "9", width: WidthShort, condition: EqualTo},
	ShortNotEqualTo:  {name: "ShortNotEqualTo", prefix: "A", width: WidthShort, condition: NotEqualTo},
	LoadOffset:       {name: "LoadOffset", prefix: "B"},
	Repeat:           {name: "Repeat", prefix: "C0000000", width: WidthWord},
	ConditionEnd:     {name: "ConditionEnd", prefix: "D0000000"},
	RepetitionEnd:    {name: "RepetitionEnd", prefix: "D1000000", width: WidthWord},
	Reset:            {name: "Reset", prefix: "D2000000"},
	SetOffset:        {name: "SetOffset", prefix: "D3000000", width: WidthWord},
	AddToDxData:      {name: "AddToDxData", prefix: "D4000000", width: WidthWord},
	SetDxData:        {name: "SetDxData", prefix: "D5000000", width: WidthWord},
	DxDataWordWrite:  {name: "DxDataWordWrite", prefix: "D6000000", width: WidthWord},
	DxDataShortWrite: {name: "DxDataShortWrite", prefix: "D7000000", width: WidthShort},
	DxDataByteWrite:  {name: "DxDataByteWrite", prefix: "D8000000", width: WidthByte},
	DxDataWordRead:   {name: "DxDataWordRead", prefix: "D9000000", width: WidthWord},
	DxDataShortRead:  {name: "DxDataShortRead", prefix: "DA000000", width: WidthShort},
	DxDataByteRead:   {name: "DxDataByteRead", prefix: "DB000000", width: WidthByte},
	AddToOffset:      {name: "AddToOffset", prefix: "DC000000", width: WidthWord},
	WaitForButton:    {name: "WaitForButton", prefix: "DD000000"},
	Patch:            {name: "Patch", prefix: "E"},
	Memory:           {name: "Memory", prefix: "F", width: WidthWord},
}

// Kinds returns all code types in decoder priority order.
func Kinds() []Kind {
	all := make([]Kind, kindCount)
	for i := range all {
		all[i] = Kind(i)
	}
	return all
}

// String returns the name of the code type.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "Unknown"
	}
	return kinds[k].name
}

// Prefix returns the type digit of the first word, or the complete first word for
// code types that use a fixed opcode.
func (k Kind) Prefix() string {
	return kinds[k].prefix
}

// FixedOpcode returns whether the first word of the code type is a constant.
func (k Kind) FixedOpcode() bool {
	return len(kinds[k].prefix) == field.TokenLength
}

// Width returns the value width of the code type.
func (k Kind) Width() Width {
	return kinds[k].width
}

// Condition returns the comparison of a conditional code type or NoCondition.
func (k Kind) Condition() Condition {
	return kinds[k].condition
}

// IsConditional returns whether the code type is a 32 or 16 bit conditional.
func (k Kind) IsConditional() bool {
	return kinds[k].condition != NoCondition
}

// Width of a value or memory access.
type Width int

// Supported widths.
const (
	WidthWord Width = iota
	WidthShort
	WidthByte
)

// String returns the width name as used in rendered output.
func (w Width) String() string {
	switch w {
	case WidthShort:
		return "short"
	case WidthByte:
		return "byte"
	default:
		return "word"
	}
}

// Max returns the largest value of the width.
func (w Width) Max() uint64 {
	switch w {
	case WidthShort:
		return field.Short
	case WidthByte:
		return field.Byte
	default:
		return field.Word
	}
}

// Digits returns the number of hex digits of the width.
func (w Width) Digits() int {
	switch w {
	case WidthShort:
		return field.ShortDigits
	case WidthByte:
		return field.ByteDigits
	default:
		return field.WordDigits
	}
}

// Size returns the width in bytes.
func (w Width) Size() int {
	return w.Digits() / 2
}

func (w Width) cType() string {
	switch w {
	case WidthShort:
		return "uint16_t"
	case WidthByte:
		return "uint8_t"
	default:
		return "uint32_t"
	}
}

// Condition is the comparison operator of a conditional code.
type Condition int

// Supported conditions.
const (
	NoCondition Condition = iota
	LessThan
	GreaterThan
	EqualTo
	NotEqualTo
)

// String returns the operator of the condition.
func (c Condition) String() string {
	switch c {
	case LessThan:
		return "<"
	case GreaterThan:
		return ">"
	case EqualTo:
		return "=="
	case NotEqualTo:
		return "!="
	default:
		return ""
	}
}
