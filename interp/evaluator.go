package interp

import (
	"context"
	"math/big"
	"os"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/tape/lang"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("tape.interp")

const (
	DefaultPrompt     = "Input: "
	DefaultRetryDelay = 50 * time.Millisecond
)

type Option func(*Evaluator)

// WithConsole replaces the stdin/stdout console.
func WithConsole(c Console) Option {
	return func(e *Evaluator) {
		e.console = c
	}
}

// WithPrompt sets the text written before each input line is read.
func WithPrompt(prompt string) Option {
	return func(e *Evaluator) {
		e.prompt = prompt
	}
}

// WithCellBits makes cells wrap modulo 2^bits. Zero keeps them unbounded.
func WithCellBits(bits uint) Option {
	return func(e *Evaluator) {
		e.cellBits = bits
	}
}

// WithRetryDelay sets the pause before re-prompting after a failed read.
// Lines that do not parse as integers are re-prompted without delay.
func WithRetryDelay(d time.Duration) Option {
	return func(e *Evaluator) {
		e.retryDelay = d
	}
}

// Evaluator walks an instruction tree against a fresh tape. It is not
// safe for concurrent use; each Run owns its tape until the next Run.
type Evaluator struct {
	console    Console
	prompt     string
	cellBits   uint
	retryDelay time.Duration

	tape  *Tape
	steps int
}

func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		prompt:     DefaultPrompt,
		retryDelay: DefaultRetryDelay,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.console == nil {
		e.console = NewConsole(os.Stdin, os.Stdout)
	}
	return e
}

// Tape returns the tape of the most recent run.
func (e *Evaluator) Tape() *Tape {
	return e.tape
}

// Steps returns the number of instructions executed by the most recent
// run, loop condition checks excluded.
func (e *Evaluator) Steps() int {
	return e.steps
}

// Run executes program to completion or to its first error. Output
// written before an error is flushed.
//
// There is no step or time limit. ctx is consulted before loop
// iterations and while waiting for input, so a cancelled context stops a
// program that never terminates or is blocked at the prompt.
func (e *Evaluator) Run(ctx context.Context, program []lang.Instruction) (err error) {
	e.tape = NewTape(e.cellBits)
	e.steps = 0
	start := time.Now()

	defer func() {
		if flushErr := e.console.Flush(); flushErr != nil && err == nil {
			err = flushErr
		}
		log.Debugf("executed %d steps in %s, tape length %d", e.steps, time.Since(start), e.tape.Len())
	}()

	return e.exec(ctx, program)
}

func (e *Evaluator) exec(ctx context.Context, block []lang.Instruction) error {
	for i := range block {
		in := &block[i]
		e.steps++
		switch in.Kind {
		case lang.KindMovePointer:
			if err := e.tape.Move(in.Value); err != nil {
				return err
			}
		case lang.KindModifyCell:
			e.tape.Modify(in.Value)
		case lang.KindLoop:
			for !e.tape.IsZero() {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := e.exec(ctx, in.Body); err != nil {
					return err
				}
			}
		case lang.KindOutput:
			if err := e.output(); err != nil {
				return err
			}
		case lang.KindInput:
			if err := e.input(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Evaluator) output() error {
	v := e.tape.Value()
	r, ok := toRune(v)
	if !ok {
		return &UnprintableValueError{Value: v}
	}
	return e.console.Print(r)
}

func toRune(v *big.Int) (rune, bool) {
	if !v.IsInt64() {
		return 0, false
	}
	n := v.Int64()
	if n < 0 || n > unicode.MaxRune {
		return 0, false
	}
	r := rune(n)
	return r, utf8.ValidRune(r)
}

// input reads lines until one parses as a signed decimal integer. Read
// failures are retried after the retry delay; only ctx ends the loop.
func (e *Evaluator) input(ctx context.Context) error {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := e.console.ReadLine(ctx, e.prompt)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Debugf("input attempt %d: read failed: %s", attempt, err)
			if err := e.wait(ctx); err != nil {
				return err
			}
			continue
		}
		v, ok := new(big.Int).SetString(strings.TrimSpace(line), 10)
		if !ok {
			log.Debugf("input attempt %d: %q is not an integer", attempt, strings.TrimSpace(line))
			continue
		}
		e.tape.Store(v)
		return nil
	}
}

func (e *Evaluator) wait(ctx context.Context) error {
	if e.retryDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(e.retryDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
