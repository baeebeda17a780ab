package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abitblue/filebin/internal/client/sshx"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// PassphrasePrompt returns a sshx.PassphraseFunc that asks on the user's
// terminal without echo. A newline is printed after the read to keep the
// UI tidy.
func PassphrasePrompt(w io.Writer) sshx.PassphraseFunc {
	return func(keyName string) ([]byte, error) {
		if _, err := fmt.Fprintf(w, "Enter passphrase for key '%s': ", keyName); err != nil {
			return nil, err
		}
		pw, err := readPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(w)
		if err != nil {
			return nil, err
		}
		return pw, nil
	}
}

// Confirm prints a yes/no prompt to w and reads one line from reader. Only
// an answer starting with 'y' or 'Y' counts as yes; everything else,
// including EOF, is no.
func Confirm(reader *bufio.Reader, prompt string, w io.Writer) bool {
	if _, err := fmt.Fprint(w, prompt+" [y/N] "); err != nil {
		return false
	}
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return strings.HasPrefix(line, "y")
}
