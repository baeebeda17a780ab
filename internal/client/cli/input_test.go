package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "y\n", true},
		{"yes word", "yes\n", true},
		{"capital", "Y\n", true},
		{"no", "n\n", false},
		{"empty line", "\n", false},
		{"eof", "", false},
		{"garbage", "maybe\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := bufio.NewReader(strings.NewReader(tt.input))
			var out bytes.Buffer
			got := Confirm(in, "Save?", &out)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "[y/N]")
		})
	}
}

func TestPassphrasePrompt(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return []byte("s3cret"), nil
	}

	var out bytes.Buffer
	prompt := PassphrasePrompt(&out)

	pw, err := prompt("id_rsa")
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), pw)
	assert.Contains(t, out.String(), "Enter passphrase for key 'id_rsa'")
}

func TestPassphrasePrompt_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("no tty")
	}

	var out bytes.Buffer
	_, err := PassphrasePrompt(&out)("id_rsa")
	require.Error(t, err)
}

func TestPrintProgress(t *testing.T) {
	var out bytes.Buffer
	fn := printProgress(&out)

	fn(50, 200)
	assert.Equal(t, "Transferred: 50 of 200 bytes (25.00 %)\r", out.String())

	out.Reset()
	fn(50, 0) // unknown total
	assert.Equal(t, "Transferred: 50 bytes\r", out.String())
}
