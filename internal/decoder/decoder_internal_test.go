package decoder

import (
	"fmt"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/retroenv/arcodes/internal/instruction"
)

var _ = Describe("Decoder", func() {
	var (
		mockCtrl *gomock.Controller
		warnings *MockWarningHandler
		dec      *Decoder
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		warnings = NewMockWarningHandler(mockCtrl)
		dec = New(warnings)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	Describe("selectors", func() {
		seconds := []string{"00000000", "00000001", "000000FF", "0000FFFF", "FFFF0000", "12345678"}

		firstWords := func(nibble int) []string {
			words := []string{fmt.Sprintf("%X0000000", nibble), fmt.Sprintf("%X1234567", nibble)}
			if nibble == 0xD {
				for op := 0; op <= 0xF; op++ {
					words = append(words, fmt.Sprintf("D%X000000", op))
				}
			}
			return words
		}

		It("should claim every line pair by at most one code type", func() {
			for nibble := 0; nibble <= 0xF; nibble++ {
				claimed := false

				for _, first := range firstWords(nibble) {
					for _, second := range seconds {
						pair := LinePair{First: first, Second: second}

						var matching []instruction.Kind
						for _, sel := range selectors {
							if sel.matches(pair, mustSecond(pair)) {
								matching = append(matching, sel.kind)
							}
						}
						Expect(len(matching)).To(BeNumerically("<=", 1), pair.String())
						claimed = claimed || len(matching) == 1
					}
				}

				Expect(claimed).To(BeTrue(), "nibble %X", nibble)
			}
		})

		It("should only claim the fixed opcodes for the C type digit", func() {
			kind, ok := Match(LinePair{First: "C0000000", Second: "00000001"})
			Expect(ok).To(BeTrue())
			Expect(kind).To(Equal(instruction.Repeat))

			_, ok = Match(LinePair{First: "C0000001", Second: "00000001"})
			Expect(ok).To(BeFalse())
		})

		It("should prefer the patch selector for the E type digit", func() {
			kind, ok := Match(LinePair{First: "EFFFFFFF", Second: "FFFFFFFF"})
			Expect(ok).To(BeTrue())
			Expect(kind).To(Equal(instruction.Patch))
		})
	})

	Describe("patch continuation", func() {
		var patch *instruction.Instruction

		BeforeEach(func() {
			var err error
			patch, err = dec.Decode(LinePair{First: "E0000000", Second: "00000008"}, nil)
			Expect(err).ToNot(HaveOccurred())
		})

		It("should accept 0 and F padding after the patch data", func() {
			inst, err := dec.Decode(LinePair{First: "DEADBEEF", Second: "FF00FF00"}, patch)

			Expect(err).ToNot(HaveOccurred())
			Expect(inst).To(BeNil())
			Expect(patch.PatchDigits()).To(Equal("DEADBEEF"))
		})

		It("should report other data after the patch data", func() {
			pair := LinePair{First: "DEADBEEF", Second: "12345678"}
			warnings.EXPECT().TrailingPatchData(pair, "12345678")

			inst, err := dec.Decode(pair, patch)

			Expect(err).ToNot(HaveOccurred())
			Expect(inst).To(BeNil())
			Expect(patch.PatchComplete()).To(BeTrue())
		})

		It("should decode the following line normally", func() {
			_, err := dec.Decode(LinePair{First: "DEADBEEF", Second: "00000000"}, patch)
			Expect(err).ToNot(HaveOccurred())

			inst, err := dec.Decode(LinePair{First: "D2000000", Second: "00000000"}, patch)
			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Kind()).To(Equal(instruction.Reset))
		})

		It("should report a patch that is incomplete at the end of the input", func() {
			warnings.EXPECT().IncompletePatch(patch)

			dec.Finish(patch)
		})

		It("should not report a complete patch at the end of the input", func() {
			_, err := dec.Decode(LinePair{First: "DEADBEEF", Second: "00000000"}, patch)
			Expect(err).ToNot(HaveOccurred())

			dec.Finish(patch)
			dec.Finish(nil)
		})
	})
})

func mustSecond(pair LinePair) uint32 {
	_, second, err := pair.words()
	Expect(err).ToNot(HaveOccurred())
	return second
}
