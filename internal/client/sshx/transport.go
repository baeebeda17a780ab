package sshx

import (
	"context"
	"io"
	"net"
	"strconv"

	"golang.org/x/crypto/ssh"
)

// Endpoint identifies the remote SSH endpoint.
type Endpoint struct {
	Host string
	Port int
}

func (e Endpoint) Addr() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

// Transport establishes sessions with exactly one credential per call. It is
// an interface so negotiation logic can be exercised against fakes; the
// production implementation is SSHTransport.
type Transport interface {
	AuthPassword(ctx context.Context, endpoint Endpoint, user, secret string) (Session, error)
	AuthKey(ctx context.Context, endpoint Endpoint, user string, signer ssh.Signer) (Session, error)
}

// Session is an authenticated connection usable to run remote commands and
// open a file-transfer sub-channel.
type Session interface {
	// Authenticated reports whether the transport completed user
	// authentication. The negotiator re-checks this after every attempt;
	// a transport call returning without error is not by itself proof.
	Authenticated() bool

	// Output runs cmd on the remote host and returns its standard output.
	Output(ctx context.Context, cmd string) ([]byte, error)

	// FileTransfer opens the file-transfer sub-channel.
	FileTransfer() (FileTransfer, error)

	Close() error
}

// FileTransfer is a streamed-write file channel on top of a Session.
type FileTransfer interface {
	// Create opens the remote path for writing, truncating it if present.
	Create(path string) (io.WriteCloser, error)

	// Rename moves oldpath to newpath, replacing newpath if it exists.
	Rename(oldpath, newpath string) error

	Close() error
}
