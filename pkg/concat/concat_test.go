// 16 Oct 2026

package concat_test

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andrew-torda/geneexpr/pkg/brokenio"
	. "github.com/andrew-torda/geneexpr/pkg/concat"
	"github.com/andrew-torda/geneexpr/pkg/config"
	"github.com/andrew-torda/geneexpr/pkg/table"
)

var croFlags = CmdFlag{
	Pattern: config.Pattern{Pattern: "CRO_T", Replacement: "CRO_"},
}

// prepare does what Mymain does to the secondary table.
func prepare(t *testing.T, s string, pattern, repl string) *table.Table {
	t.Helper()
	sec, err := table.Read(strings.NewReader(s))
	if err != nil {
		t.Fatal(err)
	}
	norm, err := table.NewNormalizer(pattern, repl)
	if err != nil {
		t.Fatal(err)
	}
	norm.Apply(sec)
	sec.SortByKey()
	return sec
}

func join(t *testing.T, primary string, sec *table.Table) (string, int) {
	t.Helper()
	var out bytes.Buffer
	n, err := Join(strings.NewReader(primary), sec, &out)
	if err != nil {
		t.Fatal(err)
	}
	return out.String(), n
}

func TestJoinSimple(t *testing.T) {
	sec := prepare(t, "id\tX\nCRO_Tg1\t99\n", "CRO_T", "CRO_")
	// after normalising, the key is CRO_g1, so nothing should match g1
	got, n := join(t, "gene\tCond1\tCond2\ng1\t5\t6\nCRO_g1\t7\t8\n", sec)
	want := "gene\tCond1\tCond2\tX\ng1\t5\t6\t0\nCRO_g1\t7\t8\t99\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if n != 2 {
		t.Error("wanted 2 rows, got", n)
	}
}

func TestJoinDuplicates(t *testing.T) {
	sec := prepare(t, "id\tX\nCRO_Tg1\tfirst\nCRO_g1\tsecond\nCRO_Tg1\tthird\n", "CRO_T", "CRO_")
	for i := 0; i < 5; i++ {
		got, _ := join(t, "h\ta\nCRO_g1\t1\n", sec)
		if got != "h\ta\tX\nCRO_g1\t1\tfirst\n" {
			t.Fatal("duplicate keys, got", got)
		}
	}
}

func TestJoinRagged(t *testing.T) {
	sec := prepare(t, "id\tX\tY\tZ\ng1\t1\ng2\t1\t2\t3\t4\n", "nomatch", "")
	got, _ := join(t, "h\ta\ng1\tq\ng2\tq\ng3\n", sec)
	want := "h\ta\tX\tY\tZ\ng1\tq\t1\ng2\tq\t1\t2\t3\t4\ng3\t0\t0\t0\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestJoinEmpty(t *testing.T) {
	sec := prepare(t, "id\tX\n", "x", "y")
	if got, n := join(t, "", sec); got != "" || n != 0 {
		t.Errorf("empty primary gave %q %d", got, n)
	}
	if got, n := join(t, "h\ta\n", sec); got != "h\ta\tX\n" || n != 0 {
		t.Errorf("header only gave %q %d", got, n)
	}
}

// TestJoinProperties makes random tables and checks the header, the
// number of rows, the number of fields and that unmatched rows are
// filled with zeros.
func TestJoinProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for iter := 0; iter < 20; iter++ {
		nsec := 1 + rnd.Intn(5)
		var sb strings.Builder
		sb.WriteString("id")
		var h2 []string
		for j := 0; j < nsec; j++ {
			h2 = append(h2, fmt.Sprint("s", j))
			sb.WriteString("\ts" + fmt.Sprint(j))
		}
		sb.WriteString("\n")
		secKeys := make(map[string]bool)
		for i := 0; i < 50; i++ {
			k := fmt.Sprint("CRO_T", rnd.Intn(100))
			secKeys[strings.Replace(k, "CRO_T", "CRO_", 1)] = true
			sb.WriteString(k)
			for j := 0; j < nsec; j++ {
				sb.WriteString("\t7")
			}
			sb.WriteString("\n")
		}
		sec := prepare(t, sb.String(), "CRO_T", "CRO_")

		nprim := 1 + rnd.Intn(3)
		h1 := "gene" + strings.Repeat("\tc", nprim)
		var pb strings.Builder
		pb.WriteString(h1 + "\n")
		nrow := rnd.Intn(80)
		for i := 0; i < nrow; i++ {
			pb.WriteString(fmt.Sprint("CRO_", rnd.Intn(150)) + strings.Repeat("\t1", nprim) + "\n")
		}
		got, n := join(t, pb.String(), sec)
		lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
		if lines[0] != h1+"\t"+strings.Join(h2, "\t") {
			t.Fatal("bad header", lines[0])
		}
		if n != nrow || len(lines)-1 != nrow {
			t.Fatalf("wanted %d rows, got %d / %d", nrow, n, len(lines)-1)
		}
		for _, l := range lines[1:] {
			f := strings.Split(l, "\t")
			if len(f) != 1+nprim+nsec {
				t.Fatalf("line %q has %d fields", l, len(f))
			}
			tail := f[1+nprim:]
			want := "7"
			if !secKeys[f[0]] {
				want = "0"
			}
			for _, v := range tail {
				if v != want {
					t.Fatalf("line %q wanted %s", l, want)
				}
			}
		}
	}
}

func TestJoinWriteFail(t *testing.T) {
	sec := prepare(t, "id\tX\n", "x", "y")
	primary := strings.Repeat("g\t1\n", 5000)
	_, err := Join(strings.NewReader(primary), sec, brokenio.NewWriter(&bytes.Buffer{}, 100))
	var ioErr *table.IOError
	if !errors.As(err, &ioErr) || ioErr.Op != "write" {
		t.Fatal("wanted write IOError, got", err)
	}
}

func TestJoinReadFail(t *testing.T) {
	sec := prepare(t, "id\tX\n", "x", "y")
	rdr := brokenio.NewReader(strings.NewReader(strings.Repeat("g\t1\n", 100)), 50)
	_, err := Join(rdr, sec, &bytes.Buffer{})
	var ioErr *table.IOError
	if !errors.As(err, &ioErr) || ioErr.Op != "read" {
		t.Fatal("wanted read IOError, got", err)
	}
}

// TestMymain runs the example from the testdata directory.
func TestMymain(t *testing.T) {
	outfile := filepath.Join(t.TempDir(), "out.tsv")
	flags := croFlags
	if err := Mymain(&flags, "testdata/primary.tsv", "testdata/secondary.tsv", outfile); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(outfile)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := os.ReadFile("testdata/expected.tsv")
	if diff := cmp.Diff(string(want), string(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestMymainGzip(t *testing.T) {
	dir := t.TempDir()
	plain, _ := os.ReadFile("testdata/primary.tsv")
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	zw.Write(plain)
	zw.Close()
	gzname := filepath.Join(dir, "primary.tsv.gz")
	if err := os.WriteFile(gzname, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	outfile := filepath.Join(dir, "out.tsv")
	flags := croFlags
	if err := Mymain(&flags, gzname, "testdata/secondary.tsv", outfile); err != nil {
		t.Fatal(err)
	}
	got, _ := os.ReadFile(outfile)
	want, _ := os.ReadFile("testdata/expected.tsv")
	if string(got) != string(want) {
		t.Errorf("gzipped input gave\n%s", got)
	}
}

// TestError1 exercises broken input. No output file should appear.
func TestError1(t *testing.T) {
	dir := t.TempDir()
	outfile := filepath.Join(dir, "out.tsv")
	flags := croFlags
	var missing *table.MissingFileError
	err := Mymain(&flags, "notexist", "testdata/secondary.tsv", outfile)
	if !errors.As(err, &missing) || missing.Path != "notexist" {
		t.Error("wanted MissingFileError, got", err)
	}
	err = Mymain(&flags, "testdata/primary.tsv", "notexist", outfile)
	if !errors.As(err, &missing) {
		t.Error("wanted MissingFileError, got", err)
	}

	flags.Pattern.Pattern = "CRO_[T"
	var perr *table.PatternError
	if err = Mymain(&flags, "testdata/primary.tsv", "testdata/secondary.tsv", outfile); !errors.As(err, &perr) {
		t.Error("wanted PatternError, got", err)
	}
	if _, err := os.Stat(outfile); err == nil {
		t.Error("output file should not have been created")
	}
}

func ExampleJoin() {
	sec, _ := table.Read(strings.NewReader("id\tX\tY\nCRO_Tg1\t1.5\t2.5\n"))
	norm, _ := table.NewNormalizer("CRO_T", "CRO_")
	norm.Apply(sec)
	sec.SortByKey()
	primary := "gene\tA\nCRO_g1\t3\nCRO_g2\t4\n"
	Join(strings.NewReader(primary), sec, os.Stdout)
	// Output:
	// gene	A	X	Y
	// CRO_g1	3	1.5	2.5
	// CRO_g2	4	0	0
}
