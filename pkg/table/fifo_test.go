// 17 Oct 2026

//go:build unix

package table_test

import (
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/andrew-torda/geneexpr/pkg/table"
)

// A named pipe has size zero but is not empty. This is what bash
// hands over for <(zcat secondary.tsv.gz).
func TestReadFileFifo(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "fifo")
	if err := syscall.Mkfifo(fname, 0o600); err != nil {
		t.Skip("no fifo:", err)
	}
	const body = "id\tX\nCRO_Tg1\t99\n"
	go func() {
		fp, err := os.OpenFile(fname, os.O_WRONLY, 0)
		if err != nil {
			return
		}
		fp.WriteString(body)
		fp.Close()
	}()
	got, err := ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := Read(strings.NewReader(body))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("fifo mismatch (-want +got):\n%s", diff)
	}
	if got.Width() != 1 || got.NRow() != 1 {
		t.Errorf("got width %d, %d rows", got.Width(), got.NRow())
	}
}
