package instruction

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// mustCreate returns a helper that unwraps constructor results.
func mustCreate(t *testing.T) func(*Instruction, error) *Instruction {
	t.Helper()
	return func(inst *Instruction, err error) *Instruction {
		t.Helper()
		assert.NoError(t, err)
		return inst
	}
}

//nolint:funlen // test functions can be long
func TestRender(t *testing.T) {
	must := mustCreate(t)
	patch := must(NewPatch(0x100, 8))
	patch.ConsumePatch("FFFFFFFF00000000")
	oddPatch := must(NewPatch(0, 3))
	oddPatch.ConsumePatch("ABCDEF0000000000")

	tests := []struct {
		name       string
		inst       *Instruction
		comments   bool
		prose      string
		pseudocode string
	}{
		{
			name:       "word write",
			inst:       must(NewWordWrite(0x01234567, 0x89ABCDEF)),
			prose:      "Write word 0x89ABCDEF to [0x01234567 + offset]",
			pseudocode: "*(uint32_t*)(0x01234567 + offset) = 0x89ABCDEF;",
		},
		{
			name:       "short write with comments",
			inst:       must(NewShortWrite(0x10, 0x0102)),
			comments:   true,
			prose:      "Write short 0x0102(258) to [0x00000010 + offset]",
			pseudocode: "*(uint16_t*)(0x00000010 + offset) = 0x0102 /* 258 */;",
		},
		{
			name:       "byte write",
			inst:       must(NewByteWrite(0x10, 0x7F)),
			prose:      "Write byte 0x7F to [0x00000010 + offset]",
			pseudocode: "*(uint8_t*)(0x00000010 + offset) = 0x7F;",
		},
		{
			name:       "32 bit condition",
			inst:       must(NewCondition32(GreaterThan, 0x200, 5)),
			prose:      "Assert that 0x00000005 > [0x00000200 + offset]",
			pseudocode: "assert(0x00000005 > *(uint32_t*)(0x00000200 + offset));",
		},
		{
			name:       "16 bit condition",
			inst:       must(NewCondition16(EqualTo, 0x100, 0x1234, 0xFF00)),
			prose:      "Assert that 0x1234 == ([0x00000100 + offset] & ~0xFF00)",
			pseudocode: "assert(0x1234 == (*(uint16_t*)(0x00000100 + offset) & ~0xFF00));",
		},
		{
			name:       "load offset",
			inst:       must(NewLoadOffset(0x2000)),
			prose:      "offset = *0x00002000",
			pseudocode: "offset = *(uint32_t*)(0x00002000 + offset);",
		},
		{
			name:       "repeat",
			inst:       must(NewRepeat(3)),
			prose:      "for 0..0x00000003:",
			pseudocode: "for (uint32_t i = 0; i < 0x00000003; i++) {",
		},
		{
			name:       "condition end",
			inst:       NewConditionEnd(),
			prose:      "fi",
			pseudocode: "}",
		},
		{
			name:       "repetition end",
			inst:       must(NewRepetitionEnd(4)),
			prose:      "Done; offset += 0x00000004",
			pseudocode: "} offset += 0x00000004;",
		},
		{
			name:       "reset",
			inst:       NewReset(),
			prose:      "Reset",
			pseudocode: "reset();",
		},
		{
			name:       "set offset",
			inst:       must(NewSetOffset(0x10)),
			prose:      "offset = 0x00000010",
			pseudocode: "offset = 0x00000010;",
		},
		{
			name:       "add to dxdata",
			inst:       must(NewAddToDxData(1)),
			prose:      "*DxDATA += 0x00000001",
			pseudocode: "DxDATA += 0x00000001;",
		},
		{
			name:       "set dxdata",
			inst:       must(NewSetDxData(2)),
			prose:      "*DxDATA = 0x00000002",
			pseudocode: "DxDATA = 0x00000002;",
		},
		{
			name:       "dxdata write",
			inst:       must(NewDxDataWrite(WidthWord, 0x890ABCDE)),
			prose:      "*DxDATA = word *(0x890ABCDE + offset)",
			pseudocode: "DxDATA = *(uint32_t*)(0x890ABCDE + offset);",
		},
		{
			name:       "dxdata read",
			inst:       must(NewDxDataRead(WidthShort, 0x890ABCDE)),
			prose:      "*(0x890ABCDE + offset) = short *DxDATA; offset += 2",
			pseudocode: "*(uint16_t*)(0x890ABCDE + offset) = DxDATA; offset += 2;",
		},
		{
			name:       "add to offset",
			inst:       must(NewAddToOffset(0x20)),
			prose:      "offset += *0x00000020",
			pseudocode: "offset += *(uint32_t*)(0x00000020);",
		},
		{
			name:       "wait for button",
			inst:       must(NewWaitForButton(ButtonSelect|ButtonUp)),
			prose:      "On SELECT + UP:",
			pseudocode: "if (keys(KEY_SELECT | KEY_UP)) {",
		},
		{
			name:       "patch",
			inst:       patch,
			prose:      "Copy 0xFFFFFFFF(8 bytes) to 0x00000100 + offset",
			pseudocode: `memcpy((void*)(0x00000100 + offset), "\xFF\xFF\xFF\xFF", 4);`,
		},
		{
			name:       "patch with odd length",
			inst:       oddPatch,
			prose:      "Copy 0xABC(3 bytes) to 0x00000000 + offset",
			pseudocode: `memcpy((void*)(0x00000000 + offset), "\xAB\xC", 2);`,
		},
		{
			name:       "memory",
			inst:       must(NewMemory(0x300, 16)),
			prose:      "Copy 16 bytes from offset to 0x00000300",
			pseudocode: "memcpy((void*)(0x00000300 + offset), (void*)offset, 16);",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.prose, tt.inst.Prose(tt.comments))
			assert.Equal(t, tt.pseudocode, tt.inst.Pseudocode(tt.comments))

			// rendering keeps no state
			assert.Equal(t, tt.inst.Prose(tt.comments), tt.inst.Prose(tt.comments))
			assert.Equal(t, tt.inst.Pseudocode(tt.comments), tt.inst.Pseudocode(tt.comments))
		})
	}
}

func TestRenderPatchChunks(t *testing.T) {
	must := mustCreate(t)
	inst := must(NewPatch(0, 20))
	inst.ConsumePatch("0102030405060708")
	inst.ConsumePatch("090A0B0C00000000")
	assert.Equal(t, "Copy 0x01020304 05060708 090A(20 bytes) to 0x00000000 + offset", inst.Prose(false))
}
