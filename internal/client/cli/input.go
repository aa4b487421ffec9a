package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chandra/dmacli/internal/numx"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input was
// read, the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a password prompt to w and reads a password from the
// user's terminal without echo. A newline is printed after the read to keep
// the UI tidy.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetNumber prompts for a numeric field and coerces the answer. Empty or
// non-numeric input yields nil, exactly like an empty form field.
func GetNumber(reader *bufio.Reader, prompt string, w io.Writer) (*float64, error) {
	line, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return nil, err
	}
	return numx.Parse(line), nil
}

// GetBool prompts for a yes/no style field. Only the literal answer "true"
// (case-insensitive) counts as true, mirroring the original form's
// true/false selector.
func GetBool(reader *bufio.Reader, prompt string, w io.Writer) (bool, error) {
	line, err := GetSimpleText(reader, prompt+" (true/false)", w)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(line, "true"), nil
}

// Indirections used to facilitate testing: stubs replace these to script
// interactive input.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getNumber     = GetNumber
	getBool       = GetBool
)
