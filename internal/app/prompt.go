package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

var stdin = bufio.NewReader(os.Stdin)

// Ask print question (only for interactive input) and read one trimmed line.
// Empty string means no answer.
func Ask(question string) string {
	var out io.Writer
	if IsTerminal(os.Stdin) {
		out = os.Stdout
	}
	return ask(stdin, out, question)
}

func ask(r *bufio.Reader, w io.Writer, question string) string {
	if w != nil {
		_, _ = fmt.Fprint(w, question)
	}

	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}

	return strings.TrimSpace(line)
}
