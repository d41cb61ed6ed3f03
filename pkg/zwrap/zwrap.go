// Package zwrap takes a file pointer and optionally wraps it so upon
// calling Close, the decompressor will be closed, followed by the
// underlying file.
// Expression tables are often shipped as .gz. We do not trust the
// file name, but look at the first two bytes.
package zwrap

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"io"
)

var gzMagic = []byte{0x1f, 0x8b}

// IsGzip says if a slice starts like a gzip stream.
func IsGzip(b []byte) bool { return bytes.HasPrefix(b, gzMagic) }

// Rdr is what we return. zrdr is nil if the source was not compressed.
type Rdr struct {
	fp   io.Closer
	src  io.Reader
	zrdr *gzip.Reader
}

// Close closes the decompressor, then the underlying backing readCloser.
func (r *Rdr) Close() error {
	var zerr error
	if r.zrdr != nil {
		zerr = r.zrdr.Close()
	}
	return errors.Join(zerr, r.fp.Close())
}

// Read makes sure we read from the compressed stream and
// not the underlying file stream.
func (r *Rdr) Read(p []byte) (int, error) {
	if r.zrdr != nil {
		return r.zrdr.Read(p)
	}
	return r.src.Read(p)
}

// Compressed tells us if we are decompressing.
func (r *Rdr) Compressed() bool { return r.zrdr != nil }

// Wrap insists that fp is gzipped and returns an error if not.
func Wrap(fp io.ReadCloser) (*Rdr, error) {
	zrdr, err := gzip.NewReader(fp)
	if err != nil {
		return nil, err
	}
	return &Rdr{fp: fp, src: fp, zrdr: zrdr}, nil
}

// WrapMaybe will decide if the underlying stream is compressed
// and wrap the file pointer if necessary. It peeks rather than seeks,
// so it is happy with standard input or a pipe.
func WrapMaybe(fp io.ReadCloser) (*Rdr, error) {
	br := bufio.NewReader(fp)
	r := &Rdr{fp: fp, src: br}
	head, err := br.Peek(len(gzMagic))
	if err != nil && err != io.EOF { // short file is fine, it is not gzip
		return nil, err
	}
	if !IsGzip(head) {
		return r, nil
	}
	if r.zrdr, err = gzip.NewReader(br); err != nil {
		return nil, err
	}
	return r, nil
}
