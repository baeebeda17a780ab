package sshx

import (
	"context"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

// SSHTransport is the production Transport, built on golang.org/x/crypto/ssh
// with the file-transfer sub-channel served by github.com/pkg/sftp.
type SSHTransport struct {
	// DialTimeout bounds the TCP connect and the handshake; zero means none.
	DialTimeout time.Duration

	// HostKeyCallback defaults to accepting any host key. Supply a
	// pinning callback to harden a deployment.
	HostKeyCallback ssh.HostKeyCallback
}

func (t *SSHTransport) AuthPassword(ctx context.Context, endpoint Endpoint, user, secret string) (Session, error) {
	return t.dial(ctx, endpoint, user, ssh.Password(secret))
}

func (t *SSHTransport) AuthKey(ctx context.Context, endpoint Endpoint, user string, signer ssh.Signer) (Session, error) {
	return t.dial(ctx, endpoint, user, ssh.PublicKeys(signer))
}

func (t *SSHTransport) dial(ctx context.Context, endpoint Endpoint, user string, method ssh.AuthMethod) (Session, error) {
	hostKey := t.HostKeyCallback
	if hostKey == nil {
		hostKey = ssh.InsecureIgnoreHostKey()
	}

	cfg := &ssh.ClientConfig{
		User:            user,
		Auth:            []ssh.AuthMethod{method},
		HostKeyCallback: hostKey,
		Timeout:         t.DialTimeout,
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", endpoint.Addr())
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", endpoint.Addr(), err)
	}
	if t.DialTimeout > 0 {
		_ = conn.SetDeadline(time.Now().Add(t.DialTimeout))
	}

	c, chans, reqs, err := ssh.NewClientConn(conn, endpoint.Addr(), cfg)
	if err != nil {
		_ = conn.Close()
		return nil, classifyAuthError(err)
	}
	_ = conn.SetDeadline(time.Time{})

	return &sshSession{client: ssh.NewClient(c, chans, reqs)}, nil
}

// classifyAuthError maps the ssh library's flat handshake errors onto the
// negotiation sentinels. x/crypto/ssh does not report "method unsupported"
// separately from "credential rejected" on the client side, so every
// authentication failure surfaces as ErrCredentialRejected here;
// ErrMethodUnsupported remains part of the Transport contract for
// implementations that can tell the difference.
func classifyAuthError(err error) error {
	if strings.Contains(err.Error(), "unable to authenticate") {
		return fmt.Errorf("%w: %v", ErrCredentialRejected, err)
	}
	return err
}

// sshSession adapts *ssh.Client to the Session interface.
type sshSession struct {
	client *ssh.Client
}

// Authenticated is true for any live client: the x/crypto/ssh handshake
// only completes after user authentication succeeded.
func (s *sshSession) Authenticated() bool {
	return s.client != nil
}

func (s *sshSession) Output(ctx context.Context, cmd string) ([]byte, error) {
	sess, err := s.client.NewSession()
	if err != nil {
		return nil, fmt.Errorf("open exec session: %w", err)
	}
	defer sess.Close()

	type result struct {
		out []byte
		err error
	}
	done := make(chan result, 1)
	go func() {
		out, err := sess.Output(cmd)
		done <- result{out, err}
	}()

	select {
	case <-ctx.Done():
		_ = sess.Signal(ssh.SIGKILL)
		return nil, ctx.Err()
	case r := <-done:
		if r.err != nil {
			return nil, fmt.Errorf("run %q: %w", cmd, r.err)
		}
		return r.out, nil
	}
}

func (s *sshSession) FileTransfer() (FileTransfer, error) {
	c, err := sftp.NewClient(s.client)
	if err != nil {
		return nil, fmt.Errorf("open sftp channel: %w", err)
	}
	return &sftpTransfer{c: c}, nil
}

func (s *sshSession) Close() error {
	return s.client.Close()
}

// sftpTransfer adapts *sftp.Client to the FileTransfer interface.
type sftpTransfer struct {
	c *sftp.Client
}

func (t *sftpTransfer) Create(path string) (io.WriteCloser, error) {
	return t.c.Create(path)
}

func (t *sftpTransfer) Rename(oldpath, newpath string) error {
	// PosixRename replaces newpath atomically if it exists.
	return t.c.PosixRename(oldpath, newpath)
}

func (t *sftpTransfer) Close() error {
	return t.c.Close()
}
