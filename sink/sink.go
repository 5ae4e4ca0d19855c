// Package sink persists catalog records as JSON files.
package sink

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrNoDir indicates Options without an output directory.
	ErrNoDir = errors.New("sink: output directory required")
	// ErrInvalidName indicates a name that does not map to a file.
	ErrInvalidName = errors.New("sink: invalid file name")
)

// Options configures an FS sink.
type Options struct {
	// Dir is the output directory. Required.
	Dir string
	// Atomic writes through a temporary file and rename. Defaults to true.
	Atomic *bool
	// PermFile and PermDir default to 0o644 and 0o755.
	PermFile os.FileMode
	PermDir  os.FileMode
	// Indent is the JSON indentation. Defaults to four spaces.
	Indent string
}

// Result describes a completed write.
type Result struct {
	Path  string
	Bytes int64
}

// FS writes JSON documents into a directory.
type FS struct {
	dir    string
	atomic bool
	permF  os.FileMode
	permD  os.FileMode
	indent string
}

// New returns an FS sink.
func New(opts *Options) (*FS, error) {
	if opts == nil || strings.TrimSpace(opts.Dir) == "" {
		return nil, ErrNoDir
	}
	w := &FS{dir: opts.Dir, atomic: true, permF: 0o644, permD: 0o755, indent: "    "}
	if opts.Atomic != nil {
		w.atomic = *opts.Atomic
	}
	if opts.PermFile != 0 {
		w.permF = opts.PermFile
	}
	if opts.PermDir != 0 {
		w.permD = opts.PermDir
	}
	if opts.Indent != "" {
		w.indent = opts.Indent
	}
	return w, nil
}

// Path returns the destination for name. Directory components of name are
// dropped.
func (w *FS) Path(name string) (string, error) {
	base := filepath.Base(filepath.Clean(name))
	if base == "." || base == ".." || base == string(filepath.Separator) || strings.TrimSpace(base) == "" {
		return "", ErrInvalidName
	}
	return filepath.Join(w.dir, base), nil
}

// WriteJSON encodes v (indented, HTML characters unescaped, trailing
// newline) and writes it to name inside the sink directory.
func (w *FS) WriteJSON(ctx context.Context, name string, v any) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	dest, err := w.Path(name)
	if err != nil {
		return Result{}, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", w.indent)
	if err := enc.Encode(v); err != nil {
		return Result{}, err
	}
	size := int64(buf.Len())

	if err := os.MkdirAll(filepath.Dir(dest), w.permD); err != nil {
		return Result{}, err
	}
	if w.atomic {
		err = w.writeAtomic(ctx, dest, &buf)
	} else {
		err = w.writeOverwrite(ctx, dest, &buf)
	}
	if err != nil {
		return Result{}, err
	}
	return Result{Path: dest, Bytes: size}, nil
}

func (w *FS) writeOverwrite(ctx context.Context, dest string, r io.Reader) error {
	f, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, w.permF)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if _, err := io.Copy(bw, readerWithCtx(ctx, r)); err != nil {
		return err
	}
	return bw.Flush()
}

func (w *FS) writeAtomic(ctx context.Context, dest string, r io.Reader) error {
	dir := filepath.Dir(dest)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	_ = os.Chmod(tmpPath, w.permF)

	fail := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}

	bw := bufio.NewWriter(tmp)
	if _, err := io.Copy(bw, readerWithCtx(ctx, r)); err != nil {
		return fail(err)
	}
	if err := bw.Flush(); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := ctx.Err(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := osReplace(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	// Best effort: persist the rename on platforms that support it.
	_ = syncDir(dir)
	return nil
}

// readerWithCtx checks ctx before every Read.
func readerWithCtx(ctx context.Context, r io.Reader) io.Reader {
	return &ctxReader{ctx: ctx, r: r}
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr *ctxReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}
	return cr.r.Read(p)
}
