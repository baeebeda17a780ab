package sshx

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMethodUnsupported reports that the remote refused the attempted
	// method itself, not the credential. The negotiator treats it the same
	// as a rejection (try the next candidate) but keeps it distinguishable
	// in the recorded attempts.
	ErrMethodUnsupported = errors.New("auth method unsupported by remote")

	// ErrCredentialRejected reports that the remote refused the credential.
	ErrCredentialRejected = errors.New("credential rejected")

	// ErrNotAuthenticated reports a session whose authenticated flag was
	// not set after an otherwise successful transport call.
	ErrNotAuthenticated = errors.New("session not authenticated")
)

// Attempt records one tried method and why it did not authenticate.
type Attempt struct {
	Method MethodKind
	Err    error
}

// ExhaustedError is returned by Negotiator.Connect when every candidate was
// tried without obtaining an authenticated session. It is fatal at this
// layer; retry policy belongs to the caller.
type ExhaustedError struct {
	Endpoint Endpoint
	User     string
	Attempts []Attempt
}

func (e *ExhaustedError) Error() string {
	methods := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		methods = append(methods, string(a.Method))
	}
	return fmt.Sprintf("could not connect to %s@%s using provided auth method(s) [%s]",
		e.User, e.Endpoint.Addr(), strings.Join(methods, " "))
}

// Tried returns the method kinds in the order they were attempted.
func (e *ExhaustedError) Tried() []MethodKind {
	tried := make([]MethodKind, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		tried = append(tried, a.Method)
	}
	return tried
}
