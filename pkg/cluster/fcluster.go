// 17 Oct 2026
// Cutting the tree into flat clusters. The criteria and numbering
// follow scipy's fcluster, so results can be checked against it.

package cluster

import (
	"fmt"
	"math"
	"sort"
)

// Criterion picks the rule for cutting the tree.
type Criterion string

const (
	Inconsistent Criterion = "inconsistent"
	Distance     Criterion = "distance"
	MaxClust     Criterion = "maxclust"
)

// Stat is one row of the inconsistency matrix.
type Stat struct {
	Mean, Std float64 // of the link heights considered
	N         int     // number of links considered
	Coeff     float64 // (height - mean) / std, or zero
}

// InconsistencyStats looks at each link and the links up to depth-1
// levels below it.
func InconsistencyStats(links []Link, depth int) []Stat {
	n := len(links) + 1
	stats := make([]Stat, len(links))
	for i := range links {
		var sum, sumSq float64
		k := 0
		var visit func(node, level int)
		visit = func(node, level int) {
			l := links[node-n]
			sum += l.Dist
			sumSq += l.Dist * l.Dist
			k++
			if level+1 >= depth {
				return
			}
			for _, c := range [2]int{l.A, l.B} {
				if c >= n {
					visit(c, level+1)
				}
			}
		}
		visit(n+i, 0)
		s := Stat{Mean: sum / float64(k), N: k}
		if k > 1 {
			v := (sumSq - sum*sum/float64(k)) / float64(k-1)
			s.Std = math.Sqrt(math.Max(v, 0))
		}
		if s.Std > 0 {
			s.Coeff = (links[i].Dist - s.Mean) / s.Std
		}
		stats[i] = s
	}
	return stats
}

// subtreeMax replaces each value with the largest value in the
// subtree under the link. A child link is always numbered below its
// parent, so one pass in order is enough.
func subtreeMax(links []Link, val []float64) []float64 {
	n := len(links) + 1
	mx := make([]float64, len(val))
	for i, l := range links {
		mx[i] = val[i]
		for _, c := range [2]int{l.A, l.B} {
			if c >= n && mx[c-n] > mx[i] {
				mx[i] = mx[c-n]
			}
		}
	}
	return mx
}

// monocrit walks down from the root. The first link whose criterion
// is at or below cutoff becomes a flat cluster with all its leaves.
// Numbering is in the same order as scipy's.
func monocrit(links []Link, crit []float64, cutoff float64) []int {
	n := len(links) + 1
	assign := make([]int, n)
	if n == 1 {
		assign[0] = 1
		return assign
	}
	ncl := 0
	var walk func(node int, inside bool)
	walk = func(node int, inside bool) {
		l := links[node-n]
		if !inside && crit[node-n] <= cutoff {
			ncl++
			inside = true
		}
		if l.A >= n {
			walk(l.A, inside)
		}
		if l.B >= n {
			walk(l.B, inside)
		}
		for _, c := range [2]int{l.A, l.B} {
			if c < n {
				if !inside {
					ncl++
				}
				assign[c] = ncl
			}
		}
	}
	walk(2*n-2, false)
	return assign
}

func nClust(assign []int) int {
	mx := 0
	for _, c := range assign {
		if c > mx {
			mx = c
		}
	}
	return mx
}

// FCluster gives a flat cluster number, starting from 1, for each of
// the n leaves. For Inconsistent, t is the largest inconsistency
// coefficient allowed inside a cluster. For Distance, it is the
// largest height. For MaxClust, it is the most clusters wanted.
func FCluster(links []Link, crit Criterion, t float64, depth int) ([]int, error) {
	n := len(links) + 1
	heights := make([]float64, len(links))
	for i, l := range links {
		heights[i] = l.Dist
	}
	switch crit {
	case Inconsistent:
		if depth < 1 {
			return nil, fmt.Errorf("depth %d, must be at least 1", depth)
		}
		stats := InconsistencyStats(links, depth)
		coeff := make([]float64, len(stats))
		for i, s := range stats {
			coeff[i] = s.Coeff
		}
		return monocrit(links, subtreeMax(links, coeff), t), nil
	case Distance:
		return monocrit(links, subtreeMax(links, heights), t), nil
	case MaxClust:
		if t < 1 {
			return nil, fmt.Errorf("maxclust needs at least one cluster, got %g", t)
		}
		mx := subtreeMax(links, heights)
		if int(t) >= n {
			return monocrit(links, mx, math.Inf(-1)), nil
		}
		cand := append([]float64(nil), mx...)
		sort.Float64s(cand)
		// smallest cutoff giving no more than t clusters
		i := sort.Search(len(cand), func(i int) bool {
			return nClust(monocrit(links, mx, cand[i])) <= int(t)
		})
		return monocrit(links, mx, cand[i]), nil
	}
	return nil, fmt.Errorf("unknown cluster criterion %q", crit)
}
