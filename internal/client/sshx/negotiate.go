package sshx

import (
	"context"
	"errors"
	"fmt"

	"github.com/abitblue/filebin/internal/logging"
)

// Negotiator tries credential candidates against a Transport and stops at
// the first authenticated session. It holds no state between Connect calls.
type Negotiator struct {
	transport Transport
	log       logging.Logger
}

func NewNegotiator(transport Transport, log logging.Logger) *Negotiator {
	return &Negotiator{transport: transport, log: log.With("component", "auth")}
}

// Connect attempts each candidate in order and returns the first session
// whose Authenticated flag is set.
//
// An unsupported-method refusal and a rejected credential both advance to
// the next candidate; they stay distinguishable in the Attempts of the
// *ExhaustedError returned once all candidates are spent. With no
// candidates, Connect fails immediately with an empty attempt list.
func (n *Negotiator) Connect(ctx context.Context, endpoint Endpoint, user string, candidates []Credential) (Session, error) {
	attempts := make([]Attempt, 0, len(candidates))

	for _, cand := range candidates {
		sess, err := n.attempt(ctx, endpoint, user, cand)
		if err != nil {
			if errors.Is(err, ErrMethodUnsupported) {
				n.log.Warn(ctx, "method not supported by remote", "method", cand.Method())
			} else {
				n.log.Debug(ctx, "attempt failed", "method", cand.Method(), "error", err)
			}
			attempts = append(attempts, Attempt{Method: cand.Method(), Err: err})
			continue
		}

		n.log.Info(ctx, "authenticated", "method", cand.Method(), "user", user, "endpoint", endpoint.Addr())
		return sess, nil
	}

	return nil, &ExhaustedError{Endpoint: endpoint, User: user, Attempts: attempts}
}

func (n *Negotiator) attempt(ctx context.Context, endpoint Endpoint, user string, cand Credential) (Session, error) {
	var (
		sess Session
		err  error
	)

	switch c := cand.(type) {
	case Password:
		sess, err = n.transport.AuthPassword(ctx, endpoint, user, c.Secret)
	case PrivateKey:
		signer, kerr := LoadSigner(c.PEM, c.Name, c.Prompt)
		if kerr != nil {
			return nil, kerr
		}
		sess, err = n.transport.AuthKey(ctx, endpoint, user, signer)
	default:
		return nil, fmt.Errorf("unknown credential kind %q", cand.Method())
	}
	if err != nil {
		return nil, err
	}

	// The transport call succeeding is not the source of truth.
	if !sess.Authenticated() {
		_ = sess.Close()
		return nil, ErrNotAuthenticated
	}
	return sess, nil
}
