// 16 Oct 2026

package cluster

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/geneexpr/pkg/table"
)

// Metric says how we measure the distance between two expression
// profiles.
type Metric string

const (
	Correlation Metric = "correlation" // 1 - Pearson r
	Euclidean   Metric = "euclidean"
)

// Vectors turns the values of a table into numbers. Every row must
// have as many values as the header has columns.
func Vectors(tb *table.Table) ([][]float64, error) {
	if tb.NRow() == 0 {
		return nil, errors.New("no rows to cluster")
	}
	vecs := make([][]float64, tb.NRow())
	for i, r := range tb.Rows {
		if len(r.Vals) != tb.Width() {
			return nil, fmt.Errorf("row %s has %d values, header has %d", r.Key, len(r.Vals), tb.Width())
		}
		v := make([]float64, len(r.Vals))
		for j, s := range r.Vals {
			x, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("row %s column %d: %w", r.Key, j+1, err)
			}
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, fmt.Errorf("row %s column %d: value %s is not finite", r.Key, j+1, s)
			}
			v[j] = x
		}
		vecs[i] = v
	}
	return vecs, nil
}

// centre subtracts the mean from v and scales it to unit length.
// A flat profile becomes all zeros, so it has a correlation of
// zero with everything.
func centre(v []float64) []float64 {
	z := make([]float64, len(v))
	if len(v) == 0 {
		return z
	}
	var mean float64
	for _, x := range v {
		mean += x
	}
	mean /= float64(len(v))
	var ss float64
	for i, x := range v {
		z[i] = x - mean
		ss += z[i] * z[i]
	}
	if ss == 0 {
		for i := range z {
			z[i] = 0
		}
		return z
	}
	norm := math.Sqrt(ss)
	for i := range z {
		z[i] /= norm
	}
	return z
}

func dot(a, b []float64) (s float64) {
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func euclid(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return math.Sqrt(s)
}

// Distances gives the full, symmetric n x n matrix of distances
// between the vectors. A distance too big for a float32 is an error.
func Distances(vecs [][]float64, metric Metric) (*matrix.FMatrix2d, error) {
	n := len(vecs)
	d := matrix.NewFMatrix2d(n, n)
	var f func(i, j int) float64
	switch metric {
	case Correlation:
		z := make([][]float64, n)
		for i, v := range vecs {
			z[i] = centre(v)
		}
		f = func(i, j int) float64 {
			return math.Max(0, 1-dot(z[i], z[j])) // rounding can give -1e-16
		}
	case Euclidean:
		f = func(i, j int) float64 { return euclid(vecs[i], vecs[j]) }
	default:
		return nil, fmt.Errorf("unknown distance metric %q", metric)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			x := float32(f(i, j))
			if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
				return nil, fmt.Errorf("distance from row %d to %d is %g", i+1, j+1, x)
			}
			d.Mat[i][j] = x
			d.Mat[j][i] = x
		}
	}
	return d, nil
}
