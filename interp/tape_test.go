package interp_test

import (
	"math/big"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/dhamidi/tape/interp"
)

var _ = Describe("Tape", func() {
	var tape *interp.Tape

	BeforeEach(func() {
		tape = interp.NewTape(0)
	})

	It("should start with a single zero cell", func() {
		Expect(tape.Len()).To(Equal(1))
		Expect(tape.Pointer()).To(Equal(0))
		Expect(tape.IsZero()).To(BeTrue())
	})

	It("should reject moving below zero", func() {
		Expect(tape.Move(-1)).To(MatchError(interp.ErrIllegalMemoryAccess))
		Expect(tape.Pointer()).To(Equal(0))
		Expect(tape.Len()).To(Equal(1))
	})

	It("should grow exactly up to the target index", func() {
		Expect(tape.Move(1)).To(Succeed())
		Expect(tape.Len()).To(Equal(2))

		Expect(tape.Move(10)).To(Succeed())
		Expect(tape.Pointer()).To(Equal(11))
		Expect(tape.Len()).To(Equal(12))
		for i := 0; i < tape.Len(); i++ {
			Expect(tape.Cell(i).Sign()).To(BeZero())
		}
	})

	It("should never shrink", func() {
		Expect(tape.Move(5)).To(Succeed())
		Expect(tape.Move(-5)).To(Succeed())
		Expect(tape.Pointer()).To(Equal(0))
		Expect(tape.Len()).To(Equal(6))
	})

	It("should keep the pointer in range after any successful move", func() {
		moves := []int{1, 1, -1, 3, -4, 2, -2, 7, -1, -6}
		for _, m := range moves {
			if err := tape.Move(m); err != nil {
				continue
			}
			Expect(tape.Pointer()).To(BeNumerically(">=", 0))
			Expect(tape.Pointer()).To(BeNumerically("<", tape.Len()))
		}
	})

	It("should keep written cells when moving past the end and back", func() {
		tape.Modify(3)
		Expect(tape.Move(1)).To(Succeed())
		tape.Modify(-7)
		Expect(tape.Move(20)).To(Succeed())
		Expect(tape.Move(-21)).To(Succeed())

		Expect(tape.Value().String()).To(Equal("3"))
		Expect(tape.Cell(1).String()).To(Equal("-7"))
	})

	It("should not wrap unbounded cells", func() {
		for i := 0; i < 300; i++ {
			tape.Modify(1)
		}
		Expect(tape.Value().Int64()).To(Equal(int64(300)))

		for i := 0; i < 301; i++ {
			tape.Modify(-1)
		}
		Expect(tape.Value().Int64()).To(Equal(int64(-1)))
	})

	It("should grow past 64 bits", func() {
		huge, _ := new(big.Int).SetString("18446744073709551616", 10)
		tape.Store(huge)
		tape.Modify(1)
		Expect(tape.Value().String()).To(Equal("18446744073709551617"))
	})

	It("should return copies of cells", func() {
		tape.Modify(1)
		v := tape.Value()
		v.SetInt64(99)
		Expect(tape.Value().Int64()).To(Equal(int64(1)))
		Expect(tape.Cell(-1)).To(BeNil())
		Expect(tape.Cell(1)).To(BeNil())
		Expect(tape.Cells()).To(HaveLen(1))
	})

	Context("with 8-bit cells", func() {
		BeforeEach(func() {
			tape = interp.NewTape(8)
		})

		It("should wrap below zero", func() {
			tape.Modify(-1)
			Expect(tape.Value().Int64()).To(Equal(int64(255)))
		})

		It("should wrap above 255", func() {
			tape.Store(big.NewInt(255))
			tape.Modify(1)
			Expect(tape.IsZero()).To(BeTrue())
		})

		It("should reduce stored values", func() {
			tape.Store(big.NewInt(-3))
			Expect(tape.Value().Int64()).To(Equal(int64(253)))
		})
	})
})
