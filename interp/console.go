package interp

import (
	"bufio"
	"context"
	"io"
)

// Console is the character I/O seen by a running program.
type Console interface {
	// Print writes one character of program output.
	Print(r rune) error
	// ReadLine shows prompt and blocks for one line of input or until ctx
	// is done. The line is returned without interpretation.
	ReadLine(ctx context.Context, prompt string) (string, error)
	// Flush pushes buffered output to the underlying writer.
	Flush() error
}

type lineResult struct {
	line string
	err  error
}

type stdConsole struct {
	in  *bufio.Reader
	out *bufio.Writer

	// pending holds a read abandoned by a cancelled ReadLine. The next
	// ReadLine collects it instead of starting a second reader.
	pending chan lineResult
}

// NewConsole returns a Console that buffers output to out and reads lines
// from in. Output is flushed before every prompt.
func NewConsole(in io.Reader, out io.Writer) Console {
	return &stdConsole{
		in:  bufio.NewReader(in),
		out: bufio.NewWriter(out),
	}
}

func (c *stdConsole) Print(r rune) error {
	_, err := c.out.WriteRune(r)
	return err
}

func (c *stdConsole) ReadLine(ctx context.Context, prompt string) (string, error) {
	if _, err := c.out.WriteString(prompt); err != nil {
		return "", err
	}
	if err := c.out.Flush(); err != nil {
		return "", err
	}

	if c.pending == nil {
		ch := make(chan lineResult, 1)
		go func() {
			line, err := c.in.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
		c.pending = ch
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-c.pending:
		c.pending = nil
		if res.err == io.EOF && res.line != "" {
			return res.line, nil
		}
		return res.line, res.err
	}
}

func (c *stdConsole) Flush() error {
	return c.out.Flush()
}
