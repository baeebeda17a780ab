// Package sshx implements authentication negotiation against a remote SSH
// endpoint: credential candidates are tried in the order given (password
// before key, since a password needs no interactive decryption) and the
// first attempt that yields an authenticated session wins. Encrypted private
// keys are decrypted through a caller-supplied passphrase prompt that is
// re-asked on a wrong guess rather than aborting the negotiation.
package sshx

// MethodKind identifies an authentication method in outcomes and logs.
type MethodKind string

const (
	MethodPassword MethodKind = "password"
	MethodKey      MethodKind = "publickey"
)

// PassphraseFunc supplies the passphrase protecting the key named keyName.
// Interactive implementations prompt the user; non-interactive embeddings
// can return an error, which aborts key decryption instead of looping.
type PassphraseFunc func(keyName string) ([]byte, error)

// Credential is one authentication method instance offered to a negotiation.
// The negotiator borrows it for a single Connect call and never retains it.
type Credential interface {
	Method() MethodKind
}

// Password authenticates with a plain secret.
type Password struct {
	Secret string
}

func (Password) Method() MethodKind { return MethodPassword }

// PrivateKey authenticates with raw (possibly encrypted) PEM key material.
type PrivateKey struct {
	// PEM is the raw private key material.
	PEM []byte

	// Name identifies the key in prompts and errors, usually its file path.
	Name string

	// Prompt supplies the passphrase when PEM turns out to be encrypted.
	Prompt PassphraseFunc
}

func (PrivateKey) Method() MethodKind { return MethodKey }
