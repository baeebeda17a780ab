// Package upload drives one file push over an authenticated session:
// request an obfuscated name from the remote allocator, stream the file
// through the file-transfer sub-channel, and build the public link.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/abitblue/filebin/internal/client/sshx"
	"github.com/abitblue/filebin/internal/logging"
	"github.com/google/uuid"
)

// ErrBadNameResponse reports malformed output from the remote name request:
// anything other than "name expireUnix".
var ErrBadNameResponse = errors.New("malformed name response")

// ProgressFunc receives running transfer totals. total is 0 when the source
// size is unknown (stdin).
type ProgressFunc func(transferred, total int64)

// Options configure one Uploader.
type Options struct {
	// RequestNameCmd is the remote command that mints a name and prints
	// "name expireUnix" on stdout.
	RequestNameCmd string

	// RemoteDir is the assets directory on the remote host.
	RemoteDir string

	// LinkBase is the public URL prefix the name is served under.
	LinkBase string

	// DefaultExt is appended when the source has no extension.
	DefaultExt string
}

// Result describes one completed upload.
type Result struct {
	// Name is the public basename: allocated name plus extension.
	Name     string
	Link     string
	ExpireAt time.Time
	Bytes    int64
}

type Uploader struct {
	session sshx.Session
	opts    Options
	log     logging.Logger
}

func NewUploader(session sshx.Session, opts Options, log logging.Logger) *Uploader {
	return &Uploader{session: session, opts: opts, log: log.With("component", "upload")}
}

// RequestName invokes the remote mint operation and parses its output: two
// whitespace-separated tokens, the name and the expiration as unix seconds.
func (u *Uploader) RequestName(ctx context.Context) (string, time.Time, error) {
	out, err := u.session.Output(ctx, u.opts.RequestNameCmd)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("request name: %w", err)
	}

	fields := strings.Fields(string(out))
	if len(fields) != 2 {
		return "", time.Time{}, fmt.Errorf("%w: expected two tokens in %q", ErrBadNameResponse, strings.TrimSpace(string(out)))
	}

	unix, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: bad expiration %q", ErrBadNameResponse, fields[1])
	}

	return fields[0], time.Unix(unix, 0).UTC(), nil
}

// Upload streams src to the remote assets directory under a freshly
// allocated name. size <= 0 means the total is unknown. The data is written
// to a unique temporary name first and renamed into place, so a half-written
// upload is never retrievable under the public name.
func (u *Uploader) Upload(ctx context.Context, src io.Reader, srcName string, size int64, progress ProgressFunc) (*Result, error) {
	name, expireAt, err := u.RequestName(ctx)
	if err != nil {
		return nil, err
	}

	base := name + u.remoteExt(srcName)
	final := path.Join(u.opts.RemoteDir, base)
	tmp := path.Join(u.opts.RemoteDir, fmt.Sprintf(".%s.part", uuid.NewString()))

	ft, err := u.session.FileTransfer()
	if err != nil {
		return nil, err
	}
	defer ft.Close()

	f, err := ft.Create(tmp)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", tmp, err)
	}

	reader := src
	if progress != nil {
		if size < 0 {
			size = 0
		}
		reader = &progressReader{r: src, total: size, fn: progress}
	}

	written, err := io.Copy(f, reader)
	cerr := f.Close()
	if err != nil {
		return nil, fmt.Errorf("write %s: %w", tmp, err)
	}
	if cerr != nil {
		return nil, fmt.Errorf("close %s: %w", tmp, cerr)
	}

	if err := ft.Rename(tmp, final); err != nil {
		return nil, fmt.Errorf("rename %s to %s: %w", tmp, final, err)
	}

	u.log.Info(ctx, "upload complete", "name", base, "bytes", written, "expire", expireAt.Unix())

	return &Result{
		Name:     base,
		Link:     strings.TrimRight(u.opts.LinkBase, "/") + "/" + base,
		ExpireAt: expireAt,
		Bytes:    written,
	}, nil
}

// remoteExt keeps the source's extension; stdin and extensionless files get
// DefaultExt.
func (u *Uploader) remoteExt(srcName string) string {
	ext := filepath.Ext(srcName)
	if ext == "" {
		ext = u.opts.DefaultExt
	}
	return ext
}

// progressReader reports a running total to fn after every read.
type progressReader struct {
	r     io.Reader
	total int64
	sent  int64
	fn    ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.sent += int64(n)
		p.fn(p.sent, p.total)
	}
	return n, err
}
