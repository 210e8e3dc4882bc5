// Package repl reads commands line by line and prints their replies.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/oaiiae/address-book/handlers"
)

type Handler interface {
	Handle(ctx context.Context, command string, args []string) handlers.Reply
}

// HandlerFunc adapts a function to [Handler].
type HandlerFunc func(ctx context.Context, command string, args []string) handlers.Reply

func (f HandlerFunc) Handle(ctx context.Context, command string, args []string) handlers.Reply {
	return f(ctx, command, args)
}

// MaxLineSize bounds one input line; a longer line ends [Run] with [bufio.ErrTooLong].
const MaxLineSize = 1 << 20

const (
	Welcome = "Welcome to the Contact Assistant!"
	Prompt  = "> "
)

// Parse splits a line into a lowercased command and its arguments.
// Arguments keep their case.
func Parse(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// Run prompts on out for each line of in until a reply asks to quit, in is
// exhausted or ctx is done.
func Run(ctx context.Context, in io.Reader, out io.Writer, h Handler) error {
	fmt.Fprintln(out, Welcome)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineSize)
	for {
		fmt.Fprint(out, Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		command, args := Parse(scanner.Text())
		reply := h.Handle(ctx, command, args)
		fmt.Fprintln(out, reply.Text)
		if reply.Quit {
			return nil
		}
	}
}
