package instruction

import (
	"fmt"
	"strings"

	"github.com/retroenv/arcodes/internal/field"
)

// Prose returns a human readable description of the instruction. If comments is set,
// numeric values are followed by their decimal value.
func (i *Instruction) Prose(comments bool) string {
	switch i.kind {
	case WordWrite, ShortWrite, ByteWrite:
		return fmt.Sprintf("Write %s %s to [%s]", i.kind.Width(), i.hexValue(comments, false), i.targetAddress())

	case WordGreaterThan, WordLessThan, WordEqualTo, WordNotEqualTo:
		return fmt.Sprintf("Assert that %s %s [%s]", i.hexValue(comments, false), i.Condition(), i.targetAddress())

	case ShortGreaterThan, ShortLessThan, ShortEqualTo, ShortNotEqualTo:
		return fmt.Sprintf("Assert that %s %s ([%s] & ~%s)",
			i.hexValue(comments, false), i.Condition(), i.targetAddress(), i.hexMask(comments, false))

	case LoadOffset:
		return fmt.Sprintf("%s = *%s", OffsetLabel, i.hexAddress())
	case Repeat:
		return fmt.Sprintf("for 0..%s:", i.hexValue(comments, false))
	case ConditionEnd:
		return "fi"
	case RepetitionEnd:
		return fmt.Sprintf("Done; %s += %s", OffsetLabel, i.hexValue(comments, false))
	case Reset:
		return "Reset"
	case SetOffset:
		return fmt.Sprintf("%s = %s", OffsetLabel, i.hexValue(comments, false))
	case AddToDxData:
		return fmt.Sprintf("*%s += %s", DxDataLabel, i.hexValue(comments, false))
	case SetDxData:
		return fmt.Sprintf("*%s = %s", DxDataLabel, i.hexValue(comments, false))

	case DxDataWordWrite, DxDataShortWrite, DxDataByteWrite:
		return fmt.Sprintf("*%s = %s *(%s)", DxDataLabel, i.kind.Width(), i.targetAddress())

	case DxDataWordRead, DxDataShortRead, DxDataByteRead:
		return fmt.Sprintf("*(%s) = %s *%s; %s += %d",
			i.targetAddress(), i.kind.Width(), DxDataLabel, OffsetLabel, i.kind.Width().Size())

	case AddToOffset:
		return fmt.Sprintf("%s += *%s", OffsetLabel, i.hexValue(comments, false))
	case WaitForButton:
		return fmt.Sprintf("On %s:", i.buttons)
	case Patch:
		return fmt.Sprintf("Copy 0x%s(%d bytes) to %s", i.patchChunks(), i.value, i.targetAddress())
	case Memory:
		return fmt.Sprintf("Copy %d bytes from %s to %s", i.value, OffsetLabel, i.hexAddress())
	}
	return i.String()
}

// Pseudocode returns a C like representation of the instruction. If comments is set,
// numeric values are followed by their decimal value as C comment.
func (i *Instruction) Pseudocode(comments bool) string {
	width := i.kind.Width()

	switch i.kind {
	case WordWrite, ShortWrite, ByteWrite:
		return fmt.Sprintf("*(%s*)(%s) = %s;", width.cType(), i.targetAddress(), i.hexValue(comments, true))

	case WordGreaterThan, WordLessThan, WordEqualTo, WordNotEqualTo:
		return fmt.Sprintf("assert(%s %s *(%s*)(%s));",
			i.hexValue(comments, true), i.Condition(), width.cType(), i.targetAddress())

	case ShortGreaterThan, ShortLessThan, ShortEqualTo, ShortNotEqualTo:
		return fmt.Sprintf("assert(%s %s (*(%s*)(%s) & ~%s));",
			i.hexValue(comments, true), i.Condition(), width.cType(), i.targetAddress(), i.hexMask(comments, true))

	case LoadOffset:
		return fmt.Sprintf("%s = *(uint32_t*)(%s);", OffsetLabel, i.targetAddress())
	case Repeat:
		return fmt.Sprintf("for (uint32_t i = 0; i < %s; i++) {", i.hexValue(comments, true))
	case ConditionEnd:
		return "}"
	case RepetitionEnd:
		return fmt.Sprintf("} %s += %s;", OffsetLabel, i.hexValue(comments, true))
	case Reset:
		return "reset();"
	case SetOffset:
		return fmt.Sprintf("%s = %s;", OffsetLabel, i.hexValue(comments, true))
	case AddToDxData:
		return fmt.Sprintf("%s += %s;", DxDataLabel, i.hexValue(comments, true))
	case SetDxData:
		return fmt.Sprintf("%s = %s;", DxDataLabel, i.hexValue(comments, true))

	case DxDataWordWrite, DxDataShortWrite, DxDataByteWrite:
		return fmt.Sprintf("%s = *(%s*)(%s);", DxDataLabel, width.cType(), i.targetAddress())

	case DxDataWordRead, DxDataShortRead, DxDataByteRead:
		return fmt.Sprintf("*(%s*)(%s) = %s; %s += %d;",
			width.cType(), i.targetAddress(), DxDataLabel, OffsetLabel, width.Size())

	case AddToOffset:
		return fmt.Sprintf("%s += *(uint32_t*)(%s);", OffsetLabel, i.hexValue(comments, true))
	case WaitForButton:
		return fmt.Sprintf("if (keys(%s)) {", i.buttons.cExpression())
	case Patch:
		return fmt.Sprintf("memcpy((void*)(%s), \"%s\", %d);", i.targetAddress(), i.escapedPatch(), (len(i.patch)+1)/2)
	case Memory:
		return fmt.Sprintf("memcpy((void*)(%s), (void*)%s, %d);", i.targetAddress(), OffsetLabel, i.value)
	}
	return "/* " + i.String() + " */"
}

func (i *Instruction) hexValue(comments, cStyle bool) string {
	return field.Value(uint64(i.value), i.kind.Width().Digits(), comments, cStyle)
}

func (i *Instruction) hexMask(comments, cStyle bool) string {
	return field.Value(uint64(i.mask), field.ShortDigits, comments, cStyle)
}

func (i *Instruction) hexAddress() string {
	return field.Value(uint64(i.address), field.WordDigits, false, false)
}

// targetAddress returns the address annotated with the offset register that is added
// to it for memory accesses.
func (i *Instruction) targetAddress() string {
	return i.hexAddress() + " + " + OffsetLabel
}

// escapedPatch renders the patch digits as C string escapes, two digits per byte.
// An odd trailing digit becomes a single digit escape.
func (i *Instruction) escapedPatch() string {
	var sb strings.Builder
	digits := i.patch
	for len(digits) > 0 {
		n := min(2, len(digits))
		sb.WriteString("\\x")
		sb.WriteString(digits[:n])
		digits = digits[n:]
	}
	return sb.String()
}
