// 14 Oct 2026
// The three ways a run can go wrong. Callers look for them with
// errors.As after they have been wrapped on the way up.

package table

import (
	"errors"
	"io/fs"
	"os"

	"github.com/andrew-torda/geneexpr/pkg/common"
)

// MissingFileError says an input file is not there at all.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return "file " + e.Path + " does not exist"
}

// IOError is any failure to open, read or write once we have got going.
type IOError struct {
	Op   string // "open", "read", "write", ...
	Path string // may be empty for a plain reader
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }

// PatternError is a regular expression which would not compile.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return "bad key pattern \"" + e.Pattern + "\": " + e.Err.Error()
}

func (e *PatternError) Unwrap() error { return e.Err }

// CheckExist looks at each path in turn and complains about the first
// one which is missing. We do this before creating any output.
// "-" is standard input and is always there.
func CheckExist(paths ...string) error {
	for _, p := range paths {
		if p == common.Stdio {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return &MissingFileError{Path: p}
			}
			return &IOError{Op: "stat", Path: p, Err: err}
		}
	}
	return nil
}
