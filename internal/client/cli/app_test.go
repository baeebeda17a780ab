package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/abitblue/filebin/internal/client/config"
	"github.com/abitblue/filebin/internal/client/sshx"
	"github.com/abitblue/filebin/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
)

// stubTransfer collects writes in memory.
type stubTransfer struct {
	files map[string]*bytes.Buffer
}

type stubFile struct{ buf *bytes.Buffer }

func (f *stubFile) Write(p []byte) (int, error) { return f.buf.Write(p) }
func (f *stubFile) Close() error                { return nil }

func (t *stubTransfer) Create(path string) (io.WriteCloser, error) {
	buf := &bytes.Buffer{}
	t.files[path] = buf
	return &stubFile{buf: buf}, nil
}

func (t *stubTransfer) Rename(oldpath, newpath string) error {
	t.files[newpath] = t.files[oldpath]
	delete(t.files, oldpath)
	return nil
}

func (t *stubTransfer) Close() error { return nil }

type stubSession struct {
	transfer *stubTransfer
}

func (s *stubSession) Authenticated() bool { return true }

func (s *stubSession) Output(context.Context, string) ([]byte, error) {
	return []byte("a1b2c3 1788264000\n"), nil
}

func (s *stubSession) FileTransfer() (sshx.FileTransfer, error) { return s.transfer, nil }

func (s *stubSession) Close() error { return nil }

// stubTransport accepts any password and rejects keys.
type stubTransport struct {
	session *stubSession
}

func (t *stubTransport) AuthPassword(context.Context, sshx.Endpoint, string, string) (sshx.Session, error) {
	return t.session, nil
}

func (t *stubTransport) AuthKey(context.Context, sshx.Endpoint, string, ssh.Signer) (sshx.Session, error) {
	return nil, errors.New("unexpected key attempt")
}

func newTestApp(t *testing.T, cfg *config.Config, stdin string) (*App, *bytes.Buffer, *stubTransfer) {
	t.Helper()
	transfer := &stubTransfer{files: make(map[string]*bytes.Buffer)}
	var out bytes.Buffer

	app := &App{
		config: cfg,
		logger: logging.NewSlogLogger(slog.New(slog.DiscardHandler)),
		reader: bufio.NewReader(strings.NewReader(stdin)),
		out:    &out,
		newTransport: func() sshx.Transport {
			return &stubTransport{session: &stubSession{transfer: transfer}}
		},
	}
	return app, &out, transfer
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.ArgsFile = filepath.Join(t.TempDir(), "filebin.args")
	return cfg
}

func TestRun_UploadsFileAndPrintsLink(t *testing.T) {
	src := filepath.Join(t.TempDir(), "note.md")
	require.NoError(t, os.WriteFile(src, []byte("hello"), 0o600))

	cfg := testConfig(t)
	app, out, transfer := newTestApp(t, cfg, "n\n")

	args := []string{"alice:pw@example.com:22/srv/assets", src}
	require.NoError(t, app.Run(context.Background(), args))

	buf, ok := transfer.files["/srv/assets/a1b2c3.md"]
	require.True(t, ok, "uploaded file must keep its extension under the allocated name")
	assert.Equal(t, "hello", buf.String())

	assert.Contains(t, out.String(), "Link: https://bin.abitblue.com/a1b2c3.md")
	expire := time.Unix(1788264000, 0).UTC().Format("2006-01-02 15:04:05 MST")
	assert.Contains(t, out.String(), "Link will expire at: "+expire)
}

func TestRun_SavesArgsWhenConfirmed(t *testing.T) {
	src := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0o600))

	cfg := testConfig(t)
	app, out, _ := newTestApp(t, cfg, "y\n")

	args := []string{"alice:pw@example.com:22/srv/assets", src}
	require.NoError(t, app.Run(context.Background(), args))

	saved, err := os.ReadFile(cfg.ArgsFile)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(args, "\n")+"\n", string(saved))
	assert.Contains(t, out.String(), "filebin +"+cfg.ArgsFile)
}

func TestRun_DoesNotOfferSaveWhenArgsFileExists(t *testing.T) {
	src := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0o600))

	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.ArgsFile, []byte("old\n"), 0o600))

	app, out, _ := newTestApp(t, cfg, "")
	args := []string{"alice:pw@example.com:22/srv/assets", src}
	require.NoError(t, app.Run(context.Background(), args))

	assert.NotContains(t, out.String(), "[y/N]")

	saved, err := os.ReadFile(cfg.ArgsFile)
	require.NoError(t, err)
	assert.Equal(t, "old\n", string(saved))
}

func TestRun_NoArguments(t *testing.T) {
	cfg := testConfig(t)
	app, _, _ := newTestApp(t, cfg, "")

	err := app.Run(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage:")
}

func TestRun_BadConnString(t *testing.T) {
	cfg := testConfig(t)
	app, _, _ := newTestApp(t, cfg, "")

	err := app.Run(context.Background(), []string{"not-a-connstring"})
	require.Error(t, err)
}

func TestRun_MissingSourceFile(t *testing.T) {
	cfg := testConfig(t)
	app, _, _ := newTestApp(t, cfg, "")

	err := app.Run(context.Background(), []string{"a:b@h:22/d", "/no/such/file"})
	require.Error(t, err)
}

func TestCredentials_Order(t *testing.T) {
	key := filepath.Join(t.TempDir(), "id_ed25519")
	require.NoError(t, os.WriteFile(key, []byte("pem"), 0o600))

	cfg := testConfig(t)
	cfg.Password = "pw"
	cfg.IdentityFile = key

	app, _, _ := newTestApp(t, cfg, "")
	candidates, err := app.credentials()
	require.NoError(t, err)

	require.Len(t, candidates, 2)
	assert.Equal(t, sshx.MethodPassword, candidates[0].Method())
	assert.Equal(t, sshx.MethodKey, candidates[1].Method())
}

func TestCredentials_Empty(t *testing.T) {
	cfg := testConfig(t)
	app, _, _ := newTestApp(t, cfg, "")

	candidates, err := app.credentials()
	require.NoError(t, err)
	assert.Empty(t, candidates)
}
