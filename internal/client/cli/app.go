// Package cli is the interactive shell around the filebin core: it parses
// the connection string and source file, offers to save the invocation to an
// args file, negotiates authentication, and renders upload progress and the
// resulting link.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/abitblue/filebin/internal/client/config"
	"github.com/abitblue/filebin/internal/client/sshx"
	"github.com/abitblue/filebin/internal/client/upload"
	"github.com/abitblue/filebin/internal/flagx"
	"github.com/abitblue/filebin/internal/logging"
)

const usage = "usage: filebin [flags] user[:password]@host:port/dir [file|-]"

type App struct {
	config *config.Config
	logger logging.Logger
	reader *bufio.Reader
	out    io.Writer

	// newTransport is a test seam; defaults to the production SSH transport.
	newTransport func() sshx.Transport
}

func NewApp(c *config.Config) *App {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})

	return &App{
		config: c,
		logger: logging.NewSlogLogger(slog.New(handler)),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		newTransport: func() sshx.Transport {
			return &sshx.SSHTransport{DialTimeout: c.DialTimeout}
		},
	}
}

// Run uploads one file: the first positional argument is the connection
// string, the optional second is the source file ("-" or absent for stdin).
func (a *App) Run(ctx context.Context, args []string) error {
	positionals := flagx.Positionals(args, config.FlagsWithValue)
	if len(positionals) == 0 || len(positionals) > 2 {
		return errors.New(usage)
	}
	if err := a.config.ApplyConnString(positionals[0]); err != nil {
		return fmt.Errorf("%v\n%s", err, usage)
	}

	src, srcName, size, cleanup, err := a.openSource(positionals)
	if err != nil {
		return err
	}
	defer cleanup()

	// Prompting while the upload body is arriving on stdin would deadlock.
	if srcName != "-" {
		a.offerSaveArgs(args)
	}

	candidates, err := a.credentials()
	if err != nil {
		return err
	}

	endpoint := sshx.Endpoint{Host: a.config.Host, Port: a.config.Port}
	negotiator := sshx.NewNegotiator(a.newTransport(), a.logger)

	sess, err := negotiator.Connect(ctx, endpoint, a.config.User, candidates)
	if err != nil {
		return err
	}
	defer sess.Close()

	uploader := upload.NewUploader(sess, upload.Options{
		RequestNameCmd: a.config.RequestNameCmd,
		RemoteDir:      a.config.RemoteDir,
		LinkBase:       a.config.LinkBase,
		DefaultExt:     a.config.DefaultExt,
	}, a.logger)

	res, err := uploader.Upload(ctx, src, srcName, size, printProgress(a.out))
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Link: %s\n", res.Link)
	fmt.Fprintf(a.out, "Link will expire at: %s\n", res.ExpireAt.Format("2006-01-02 15:04:05 MST"))
	return nil
}

// credentials builds the candidate list in negotiation order: password
// first (cheap, non-interactive), then the identity file if one was given.
func (a *App) credentials() ([]sshx.Credential, error) {
	var candidates []sshx.Credential

	if a.config.Password != "" {
		candidates = append(candidates, sshx.Password{Secret: a.config.Password})
	}

	if a.config.IdentityFile != "" {
		pem, err := os.ReadFile(a.config.IdentityFile)
		if err != nil {
			return nil, fmt.Errorf("read identity file: %w", err)
		}
		candidates = append(candidates, sshx.PrivateKey{
			PEM:    pem,
			Name:   a.config.IdentityFile,
			Prompt: PassphrasePrompt(a.out),
		})
	}

	return candidates, nil
}

// openSource resolves the upload source. A missing second positional or "-"
// means stdin with unknown size.
func (a *App) openSource(positionals []string) (io.Reader, string, int64, func(), error) {
	if len(positionals) < 2 || positionals[1] == "-" {
		return os.Stdin, "-", 0, func() {}, nil
	}

	f, err := os.Open(positionals[1])
	if err != nil {
		return nil, "", 0, func() {}, fmt.Errorf("open source: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, "", 0, func() {}, fmt.Errorf("stat source: %w", err)
	}

	return f, f.Name(), info.Size(), func() { _ = f.Close() }, nil
}

// offerSaveArgs asks, on the first run only, whether to save the current
// invocation to the args file for replay via "filebin +<file>". Declining or
// a write failure is not fatal.
func (a *App) offerSaveArgs(args []string) {
	path := a.config.ArgsFile
	if path == "" {
		return
	}
	if _, err := os.Stat(path); err == nil {
		return
	}

	if !Confirm(a.reader, "Would you like to save the current arguments to file?", a.out) {
		return
	}

	if err := os.WriteFile(path, []byte(strings.Join(args, "\n")+"\n"), 0o600); err != nil {
		a.logger.Warn(context.Background(), "could not save args file", "path", path, "error", err)
		return
	}

	fmt.Fprintf(a.out, "Saving current arguments to %s\n", path)
	fmt.Fprintf(a.out, "You can rerun filebin with the current args using: 'filebin +%s'\n", path)
}
