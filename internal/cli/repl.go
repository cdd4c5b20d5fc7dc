package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// dispatcher is the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type dispatcher interface {
	Dispatch(ctx context.Context, tokens []string) (lines []string, quit bool)
}

// runREPL reads input line by line, tokenizes each line, dispatches it, and
// prints the resulting lines to out. Blank input produces no output. The
// loop ends on EOF or when the dispatcher reports quit.
func runREPL(ctx context.Context, d dispatcher, scanner *bufio.Scanner, out io.Writer, promptFn func()) error {
	for {
		if promptFn != nil {
			promptFn()
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		tokens := Tokenize(scanner.Text())
		if len(tokens) == 0 {
			continue
		}
		lines, quit := d.Dispatch(ctx, tokens)
		for _, l := range lines {
			fmt.Fprintln(out, l)
		}
		if quit {
			return nil
		}
	}
}
