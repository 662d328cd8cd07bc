package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword. Tests replace it to
// avoid touching the terminal.
var readPassword = term.ReadPassword

// readLine prints prompt to w and reads one line, trimming surrounding
// whitespace. If EOF arrives after some input was read, the partial line is
// returned.
func readLine(r *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readSecret prints prompt to w and reads a password from the terminal
// without echo. A newline is printed afterwards to keep the output tidy.
func readSecret(prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// readInt keeps prompting until the user enters an integer.
func readInt(r *bufio.Reader, prompt string, w io.Writer) (int, error) {
	for {
		line, err := readLine(r, prompt, w)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(w, "Invalid input. Please enter a number.")
			continue
		}
		return n, nil
	}
}
