package table_test

import (
	"fmt"
	"math/rand"
	"testing"

	. "github.com/andrew-torda/geneexpr/pkg/table"
)

func TestSortStable(t *testing.T) {
	tb := &Table{Rows: []Row{
		{"b", []string{"1"}},
		{"a", []string{"2"}},
		{"b", []string{"3"}},
		{"B", []string{"4"}},
		{"a", []string{"5"}},
	}}
	tb.SortByKey()
	want := []string{"B4", "a2", "a5", "b1", "b3"}
	for i, r := range tb.Rows {
		if got := r.Key + r.Vals[0]; got != want[i] {
			t.Errorf("row %d got %s want %s", i, got, want[i])
		}
	}
	r, ok := NewIndex(tb).Find("b")
	if !ok || r.Vals[0] != "1" {
		t.Error("first b in file should win, got", r, ok)
	}
}

// TestIndexLikeLinear checks the map gives the same answer as walking
// through the rows, including duplicate and missing keys.
func TestIndexLikeLinear(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	tb := new(Table)
	for i := 0; i < 500; i++ {
		k := fmt.Sprintf("g%d", rnd.Intn(200))
		tb.Rows = append(tb.Rows, Row{Key: k, Vals: []string{fmt.Sprint(i)}})
	}
	tb.SortByKey()
	idx := NewIndex(tb)
	for i := 0; i < 250; i++ {
		k := fmt.Sprintf("g%d", i)
		r1, ok1 := idx.Find(k)
		r2, ok2 := tb.FindLinear(k)
		if ok1 != ok2 || (ok1 && r1.Vals[0] != r2.Vals[0]) {
			t.Fatalf("key %s index %v %v linear %v %v", k, r1, ok1, r2, ok2)
		}
	}
	if idx.Len() > 200 {
		t.Error("too many keys in index", idx.Len())
	}
}

func BenchmarkIndex(b *testing.B) {
	tb := new(Table)
	for i := 0; i < 20000; i++ {
		tb.Rows = append(tb.Rows, Row{Key: fmt.Sprintf("CRO_%06d", i)})
	}
	tb.SortByKey()
	idx := NewIndex(tb)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx.Find("CRO_019999")
	}
}
