// brokenio wraps readers and writers so they fail after a set number
// of bytes. It is for testing the error paths in code that reads and
// writes tables.
// Typical use: You get a file pointer or some other reader. You write
// reader = brokenio.NewReader(reader, 100) and everything works as
// before for 100 bytes, then you get ErrBroken.

package brokenio

import (
	"errors"
	"fmt"
	"io"
)

// ErrBroken is returned once the byte budget is spent.
var ErrBroken = errors.New("brokenio: artificial failure")

// A BrknRdrClsr passes reads through until failAfter bytes have been
// delivered. If verbose is true, print out the amount of data when
// closed.
type BrknRdrClsr struct {
	rdr_orig  io.Reader
	failAfter int
	nCalled   int
	nByte     int
	verbose   bool
}

// NewReader returns a reader which will break after n bytes.
// A negative n means it never breaks.
func NewReader(rIn io.Reader, n int) *BrknRdrClsr {
	return &BrknRdrClsr{rdr_orig: rIn, failAfter: n}
}

// SetVerbose sets the verbosity flag to true or false
func (r *BrknRdrClsr) SetVerbose(newV bool) { r.verbose = newV }

// Read hands back at most the bytes left in the budget.
func (r *BrknRdrClsr) Read(p []byte) (int, error) {
	r.nCalled++
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, ErrBroken
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	n, err := r.rdr_orig.Read(p)
	r.nByte += n
	return n, err
}

// Close closes the original if it can be closed.
func (r *BrknRdrClsr) Close() error {
	if r.verbose {
		fmt.Println("Closing", r.nCalled, "calls and", r.nByte, "bytes")
	}
	if c, ok := r.rdr_orig.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// BrknWrtr is the writing version. Writes which would go over the
// budget write what they can and return ErrBroken.
type BrknWrtr struct {
	w         io.Writer
	failAfter int
	nByte     int
}

// NewWriter returns a writer which will break after n bytes.
func NewWriter(w io.Writer, n int) *BrknWrtr { return &BrknWrtr{w: w, failAfter: n} }

func (b *BrknWrtr) Write(p []byte) (int, error) {
	left := b.failAfter - b.nByte
	if left >= len(p) {
		n, err := b.w.Write(p)
		b.nByte += n
		return n, err
	}
	if left < 0 {
		left = 0
	}
	n, err := b.w.Write(p[:left])
	b.nByte += n
	if err != nil {
		return n, err
	}
	return n, ErrBroken
}
