// 15 Oct 2026

package concat

import (
	"bufio"
	"io"
	"strings"

	"github.com/andrew-torda/geneexpr/pkg/common"
	"github.com/andrew-torda/geneexpr/pkg/table"
)

// zeroFill gives n "0" fields separated by tabs.
func zeroFill(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(common.ZeroVal+common.Tab, n-1) + common.ZeroVal
}

// writeLine writes the primary line, a tab, the extra columns and a
// newline. Errors stick in the bufio.Writer, so we only look at the last.
func writeLine(bw *bufio.Writer, line, tail string) error {
	bw.WriteString(line)
	bw.WriteString(common.Tab)
	bw.WriteString(tail)
	return bw.WriteByte('\n')
}

// Join streams the primary table from rdr and writes it to w with the
// columns of sec glued on the end. sec must already be normalised and
// sorted. The first line is the header. Every other line is looked up
// by its key (the text before the first tab). If sec has the key, its
// values are appended, otherwise a zero for each column in sec's
// header. Lines are written in the order they are read.
// Join returns the number of data rows written.
func Join(rdr io.Reader, sec *table.Table, w io.Writer) (int, error) {
	idx := table.NewIndex(sec)
	zeros := zeroFill(sec.Width())
	br := bufio.NewReader(rdr)
	bw := bufio.NewWriter(w)
	nrow := 0
	for first := true; ; first = false {
		line, rerr := br.ReadString('\n')
		if rerr != nil && rerr != io.EOF {
			return nrow, &table.IOError{Op: "read", Err: rerr}
		}
		if line == "" && rerr == io.EOF {
			break
		}
		line = table.Chomp(line)
		var tail string
		if first {
			tail = strings.Join(sec.Header, common.Tab)
		} else {
			if r, ok := idx.Find(table.Key(line)); ok {
				tail = strings.Join(r.Vals, common.Tab)
			} else {
				tail = zeros
			}
			nrow++
		}
		if err := writeLine(bw, line, tail); err != nil {
			return nrow, &table.IOError{Op: "write", Err: err}
		}
		if rerr == io.EOF {
			break
		}
	}
	if err := bw.Flush(); err != nil {
		return nrow, &table.IOError{Op: "write", Err: err}
	}
	return nrow, nil
}
