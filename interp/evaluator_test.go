package interp_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"time"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/dhamidi/tape/interp"
	"github.com/dhamidi/tape/lang"
)

func compile(src string) []lang.Instruction {
	tree, err := lang.Compile(src)
	Expect(err).NotTo(HaveOccurred())
	return tree
}

var _ = Describe("Evaluator", func() {
	var (
		mockCtrl    *gomock.Controller
		mockConsole *MockConsole
		evaluator   *interp.Evaluator
		ctx         context.Context
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockConsole = NewMockConsole(mockCtrl)
		evaluator = interp.New(
			interp.WithConsole(mockConsole),
			interp.WithRetryDelay(0),
		)
		ctx = context.Background()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should print the bell character for the transfer loop", func() {
		gomock.InOrder(
			mockConsole.EXPECT().Print(rune(7)).Return(nil),
			mockConsole.EXPECT().Flush().Return(nil),
		)

		err := evaluator.Run(ctx, compile("++>+++++[<+>-]<."))

		Expect(err).NotTo(HaveOccurred())
		Expect(evaluator.Tape().Cell(0).Int64()).To(Equal(int64(7)))
		Expect(evaluator.Tape().Cell(1).Sign()).To(BeZero())
		Expect(evaluator.Tape().Pointer()).To(Equal(0))
	})

	It("should fail when moving left of the first cell", func() {
		mockConsole.EXPECT().Flush().Return(nil)

		err := evaluator.Run(ctx, compile("<"))

		Expect(err).To(MatchError(interp.ErrIllegalMemoryAccess))
	})

	It("should propagate failures out of nested loops", func() {
		mockConsole.EXPECT().Flush().Return(nil)

		err := evaluator.Run(ctx, compile("+[>+[<<]]"))

		Expect(err).To(MatchError(interp.ErrIllegalMemoryAccess))
		Expect(evaluator.Tape().Cell(1).Int64()).To(Equal(int64(1)))
	})

	It("should skip a loop whose cell is zero on entry", func() {
		mockConsole.EXPECT().Flush().Return(nil)

		err := evaluator.Run(ctx, compile("[<]+"))

		Expect(err).NotTo(HaveOccurred())
		Expect(evaluator.Tape().Value().Int64()).To(Equal(int64(1)))
	})

	It("should report negative cells as unprintable", func() {
		mockConsole.EXPECT().Flush().Return(nil)

		err := evaluator.Run(ctx, compile("-."))

		Expect(err).To(MatchError(interp.ErrUnableToPrintValueAsCharacter))
		var valueErr *interp.UnprintableValueError
		Expect(errors.As(err, &valueErr)).To(BeTrue())
		Expect(valueErr.Value.Int64()).To(Equal(int64(-1)))
		Expect(err.Error()).To(Equal("unable to print value -1 as character"))
	})

	It("should report surrogate code points as unprintable", func() {
		gomock.InOrder(
			mockConsole.EXPECT().ReadLine(gomock.Any(), interp.DefaultPrompt).Return("55296\n", nil),
			mockConsole.EXPECT().Flush().Return(nil),
		)

		err := evaluator.Run(ctx, compile(",."))

		Expect(err).To(MatchError(interp.ErrUnableToPrintValueAsCharacter))
	})

	It("should re-prompt until a line parses as an integer", func() {
		gomock.InOrder(
			mockConsole.EXPECT().ReadLine(gomock.Any(), interp.DefaultPrompt).Return("abc\n", nil),
			mockConsole.EXPECT().ReadLine(gomock.Any(), interp.DefaultPrompt).Return("", errors.New("transient")),
			mockConsole.EXPECT().ReadLine(gomock.Any(), interp.DefaultPrompt).Return("  1.5\n", nil),
			mockConsole.EXPECT().ReadLine(gomock.Any(), interp.DefaultPrompt).Return(" -42 \n", nil),
			mockConsole.EXPECT().Flush().Return(nil),
		)

		err := evaluator.Run(ctx, compile("+++,"))

		Expect(err).NotTo(HaveOccurred())
		Expect(evaluator.Tape().Value().Int64()).To(Equal(int64(-42)))
	})

	It("should use the configured prompt", func() {
		evaluator = interp.New(
			interp.WithConsole(mockConsole),
			interp.WithPrompt("? "),
		)
		gomock.InOrder(
			mockConsole.EXPECT().ReadLine(gomock.Any(), "? ").Return("65\n", nil),
			mockConsole.EXPECT().Print('A').Return(nil),
			mockConsole.EXPECT().Flush().Return(nil),
		)

		Expect(evaluator.Run(ctx, compile(",."))).To(Succeed())
	})

	It("should stop an endless loop when the context is cancelled", func() {
		mockConsole.EXPECT().Flush().Return(nil)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		err := evaluator.Run(cancelled, compile("+[]"))

		Expect(err).To(MatchError(context.Canceled))
	})

	It("should stop retrying input when the context is cancelled", func() {
		cancelled, cancel := context.WithCancel(ctx)
		gomock.InOrder(
			mockConsole.EXPECT().ReadLine(gomock.Any(), interp.DefaultPrompt).DoAndReturn(func(context.Context, string) (string, error) {
				cancel()
				return "nope\n", nil
			}),
			mockConsole.EXPECT().Flush().Return(nil),
		)

		err := evaluator.Run(cancelled, compile(","))

		Expect(err).To(MatchError(context.Canceled))
	})

	It("should return a flush failure when the program succeeded", func() {
		flushErr := errors.New("broken pipe")
		mockConsole.EXPECT().Print('\x01').Return(nil)
		mockConsole.EXPECT().Flush().Return(flushErr)

		Expect(evaluator.Run(ctx, compile("+."))).To(MatchError(flushErr))
	})

	It("should start every run on a fresh tape", func() {
		mockConsole.EXPECT().Flush().Return(nil).Times(2)

		Expect(evaluator.Run(ctx, compile(">>+++"))).To(Succeed())
		Expect(evaluator.Tape().Len()).To(Equal(3))
		Expect(evaluator.Steps()).To(Equal(5))

		Expect(evaluator.Run(ctx, compile("+"))).To(Succeed())
		Expect(evaluator.Tape().Len()).To(Equal(1))
		Expect(evaluator.Tape().Value().Int64()).To(Equal(int64(1)))
	})

	Context("with 8-bit cells", func() {
		BeforeEach(func() {
			evaluator = interp.New(
				interp.WithConsole(mockConsole),
				interp.WithCellBits(8),
			)
		})

		It("should wrap a decrement below zero", func() {
			mockConsole.EXPECT().Print(rune(255)).Return(nil)
			mockConsole.EXPECT().Flush().Return(nil)

			Expect(evaluator.Run(ctx, compile("-."))).To(Succeed())
		})
	})
})

var _ = Describe("Console", func() {
	It("should print output and keep it after a failure", func() {
		var out bytes.Buffer
		console := interp.NewConsole(strings.NewReader(""), &out)
		evaluator := interp.New(interp.WithConsole(console))

		src := strings.Repeat("+", 33) + ".>-."
		err := evaluator.Run(context.Background(), compile(src))

		Expect(err).To(MatchError(interp.ErrUnableToPrintValueAsCharacter))
		Expect(out.String()).To(Equal("!"))
	})

	It("should prompt again after an invalid line", func() {
		var out bytes.Buffer
		console := interp.NewConsole(strings.NewReader("x\n65\n"), &out)
		evaluator := interp.New(interp.WithConsole(console))

		Expect(evaluator.Run(context.Background(), compile(",."))).To(Succeed())
		Expect(out.String()).To(Equal("Input: Input: A"))
	})

	It("should accept a final line without a newline", func() {
		var out bytes.Buffer
		console := interp.NewConsole(strings.NewReader("104"), &out)
		evaluator := interp.New(interp.WithConsole(console), interp.WithPrompt(""))

		Expect(evaluator.Run(context.Background(), compile(",.+."))).To(Succeed())
		Expect(out.String()).To(Equal("hi"))
	})

	It("should stop waiting at the prompt when the context is cancelled", func() {
		r, w := io.Pipe()
		defer w.Close()
		var out bytes.Buffer
		console := interp.NewConsole(r, &out)
		evaluator := interp.New(interp.WithConsole(console))

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- evaluator.Run(ctx, compile(","))
		}()

		Consistently(done, 50*time.Millisecond).ShouldNot(Receive())
		cancel()

		var err error
		Eventually(done, time.Second).Should(Receive(&err))
		Expect(err).To(MatchError(context.Canceled))
	})

	It("should hand a line read after cancellation to the next prompt", func() {
		r, w := io.Pipe()
		var out bytes.Buffer
		console := interp.NewConsole(r, &out)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := console.ReadLine(ctx, "")
		Expect(err).To(MatchError(context.Canceled))

		go func() {
			w.Write([]byte("7\n"))
		}()
		line, err := console.ReadLine(context.Background(), "")
		Expect(err).NotTo(HaveOccurred())
		Expect(line).To(Equal("7\n"))
	})
})
