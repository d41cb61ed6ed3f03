// 14 Oct 2026

// Package table reads tab separated expression tables. The first line
// is a header. Its first column names the row labels and is thrown
// away. Every other line is a key (gene name) followed by values,
// which we keep as strings. We never check that rows have the same
// number of columns as the header.
package table

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"

	"github.com/andrew-torda/geneexpr/pkg/common"
	"github.com/andrew-torda/geneexpr/pkg/zwrap"
)

// Row is one line of a table after the header.
type Row struct {
	Key  string
	Vals []string
}

// Table is a header and the rows in the order they were read, at
// least until someone sorts them.
type Table struct {
	Header []string // column names, without the name of the key column
	Rows   []Row
}

// Width is the number of value columns the header promises.
func (t *Table) Width() int { return len(t.Header) }

// NRow returns the number of data rows
func (t *Table) NRow() int { return len(t.Rows) }

// Chomp removes a trailing newline, and a carriage return if the
// file came from windows.
func Chomp(s string) string {
	s = strings.TrimSuffix(s, common.NL)
	return strings.TrimSuffix(s, "\r")
}

// Key returns everything before the first tab in a line.
func Key(line string) string {
	if i := strings.IndexByte(line, '\t'); i >= 0 {
		return line[:i]
	}
	return line
}

// SplitRow breaks a line (without its newline) into key and values.
func SplitRow(line string) Row {
	f := strings.Split(line, common.Tab)
	return Row{Key: f[0], Vals: f[1:]}
}

// splitHeader drops the first column name and tidies up the rest.
func splitHeader(line string) []string {
	f := strings.Split(line, common.Tab)[1:]
	for i := range f {
		f[i] = strings.TrimSpace(f[i])
	}
	return f
}

// read does the work for Read and ReadFile, returning plain errors.
func read(rdr io.Reader) (*Table, error) {
	br := bufio.NewReader(rdr)
	t := new(Table)
	for first := true; ; first = false {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if line == "" && err == io.EOF { // no trailing partial line
			break
		}
		line = Chomp(line)
		if first {
			t.Header = splitHeader(line)
		} else {
			t.Rows = append(t.Rows, SplitRow(line))
		}
		if err == io.EOF {
			break
		}
	}
	return t, nil
}

// Read reads a whole table from rdr. An empty input gives an
// empty table, not an error.
func Read(rdr io.Reader) (*Table, error) {
	t, err := read(rdr)
	if err != nil {
		return nil, &IOError{Op: "read", Err: err}
	}
	return t, nil
}

// stream reads a table from something we cannot map, such as a pipe
// or standard input. fp is closed.
func stream(fname string, fp io.ReadCloser) (*Table, error) {
	z, err := zwrap.WrapMaybe(fp)
	if err != nil {
		fp.Close()
		return nil, &IOError{Op: "gunzip", Path: fname, Err: err}
	}
	defer z.Close()
	t, err := read(z)
	if err != nil {
		return nil, &IOError{Op: "read", Path: fname, Err: err}
	}
	return t, nil
}

// ReadFile maps a file into memory and reads a table from it.
// Gzipped files are decompressed on the way. Pipes, devices and "-"
// for standard input are read as a stream.
func ReadFile(fname string) (*Table, error) {
	if fname == common.Stdio {
		return stream(fname, io.NopCloser(os.Stdin))
	}
	fp, err := os.Open(fname)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingFileError{Path: fname}
		}
		return nil, &IOError{Op: "open", Path: fname, Err: err}
	}
	fi, err := fp.Stat()
	if err != nil {
		fp.Close()
		return nil, &IOError{Op: "stat", Path: fname, Err: err}
	}
	if !fi.Mode().IsRegular() { // size means nothing here
		return stream(fname, fp)
	}
	defer fp.Close()
	if fi.Size() == 0 { // cannot map zero bytes
		return new(Table), nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, &IOError{Op: "mmap", Path: fname, Err: err}
	}
	defer mm.Unmap()

	var rdr io.Reader = bytes.NewReader(mm)
	if zwrap.IsGzip(mm) {
		z, err := zwrap.Wrap(io.NopCloser(rdr))
		if err != nil {
			return nil, &IOError{Op: "gunzip", Path: fname, Err: err}
		}
		defer z.Close()
		rdr = z
	}
	t, err := read(rdr) // strings are copied, so it is safe to unmap
	if err != nil {
		return nil, &IOError{Op: "read", Path: fname, Err: err}
	}
	return t, nil
}
