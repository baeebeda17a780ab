package sshx

import (
	"crypto/x509"
	"errors"
	"fmt"

	"github.com/abitblue/filebin/internal/common"
	"golang.org/x/crypto/ssh"
)

// LoadSigner parses PEM key material into a signing-capable credential.
//
// If the key is encrypted, prompt is asked for the passphrase; a wrong guess
// re-prompts instead of failing, so one typo never aborts a whole
// negotiation. The loop has no attempt limit — the only exits are a correct
// passphrase, an error from prompt itself, or key material that fails to
// decode for a reason other than the passphrase.
func LoadSigner(pem []byte, name string, prompt PassphraseFunc) (ssh.Signer, error) {
	signer, err := ssh.ParsePrivateKey(pem)
	if err == nil {
		return signer, nil
	}

	var missing *ssh.PassphraseMissingError
	if !errors.As(err, &missing) {
		return nil, fmt.Errorf("parse private key %s: %w", name, err)
	}
	if prompt == nil {
		return nil, fmt.Errorf("private key %s is encrypted and no passphrase prompt is available", name)
	}

	for {
		passphrase, perr := prompt(name)
		if perr != nil {
			return nil, fmt.Errorf("passphrase prompt for %s: %w", name, perr)
		}

		signer, err = ssh.ParsePrivateKeyWithPassphrase(pem, passphrase)
		common.WipeByteArray(passphrase)

		if err == nil {
			return signer, nil
		}
		if errors.Is(err, x509.IncorrectPasswordError) {
			// wrong guess, ask again
			continue
		}
		return nil, fmt.Errorf("decrypt private key %s: %w", name, err)
	}
}
