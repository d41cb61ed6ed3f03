package table

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/andrew-torda/geneexpr/pkg/common"
	"github.com/andrew-torda/geneexpr/pkg/zwrap"
)

// Open opens a file for streaming, decompressing if it starts like a
// gzip file. "-" is standard input.
func Open(fname string) (io.ReadCloser, error) {
	var fp io.ReadCloser
	if fname == common.Stdio {
		fp = io.NopCloser(os.Stdin)
	} else {
		f, err := os.Open(fname)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, &MissingFileError{Path: fname}
			}
			return nil, &IOError{Op: "open", Path: fname, Err: err}
		}
		fp = f
	}
	z, err := zwrap.WrapMaybe(fp)
	if err != nil {
		fp.Close()
		return nil, &IOError{Op: "open", Path: fname, Err: err}
	}
	return z, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// Create opens an output file, warning if it is already there.
// An empty name or "-" means standard output, which is not closed.
func Create(fname string) (io.WriteCloser, error) {
	if fname == "" || fname == common.Stdio {
		return nopWriteCloser{os.Stdout}, nil
	}
	common.WarnExists(fname)
	fp, err := os.Create(fname)
	if err != nil {
		return nil, &IOError{Op: "create", Path: fname, Err: err}
	}
	return fp, nil
}
