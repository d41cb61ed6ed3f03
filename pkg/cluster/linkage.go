// 16 Oct 2026

package cluster

import (
	"fmt"
	"math"
	"sort"

	"github.com/andrew-torda/matrix"
)

// Method is the rule for the distance between two clusters.
type Method string

const (
	Single   Method = "single"
	Complete Method = "complete"
	Average  Method = "average"
	Weighted Method = "weighted"
)

// Link is one merge, like a row of a scipy linkage matrix. Leaves are
// numbered 0..n-1 and the cluster made by link i is numbered n+i.
// A < B always.
type Link struct {
	A, B int
	Dist float64
	Size int // number of leaves below this link
}

// update is the Lance-Williams formula for the distance from cluster
// i to the cluster made by merging x and y.
func update(m Method, dxi, dyi float64, nx, ny int) float64 {
	switch m {
	case Single:
		return math.Min(dxi, dyi)
	case Complete:
		return math.Max(dxi, dyi)
	case Average:
		return (float64(nx)*dxi + float64(ny)*dyi) / float64(nx+ny)
	default: // Weighted
		return (dxi + dyi) / 2
	}
}

// Linkage does agglomerative clustering on a distance matrix using
// the nearest neighbour chain algorithm. The matrix is not changed.
// Links come back sorted by height and labelled as scipy would.
func Linkage(dist *matrix.FMatrix2d, method Method) ([]Link, error) {
	switch method {
	case Single, Complete, Average, Weighted:
	default:
		return nil, fmt.Errorf("unknown linkage method %q", method)
	}
	n, ncol := dist.Size()
	if n != ncol {
		return nil, fmt.Errorf("distance matrix is %d x %d", n, ncol)
	}
	if n < 2 {
		return nil, nil
	}
	d := make([][]float64, n) // work in double precision on a copy
	for i := range d {
		d[i] = make([]float64, n)
		for j, x := range dist.Mat[i] {
			d[i][j] = float64(x)
		}
	}
	size := make([]int, n) // zero means the cluster has been merged away
	for i := range size {
		size[i] = 1
	}

	raw := make([]Link, 0, n-1)
	chain := make([]int, 0, n)
	for k := 0; k < n-1; k++ {
		if len(chain) == 0 {
			for i := range size {
				if size[i] > 0 {
					chain = append(chain, i)
					break
				}
			}
		}
		var x, y int
		var cur float64
		for {
			x = chain[len(chain)-1]
			if len(chain) > 1 {
				y = chain[len(chain)-2]
				cur = d[x][y]
			} else {
				cur = math.Inf(1)
				for i := range size { // in case nothing is below +Inf
					if size[i] > 0 && i != x {
						y = i
						break
					}
				}
			}
			for i := 0; i < n; i++ {
				if size[i] == 0 || i == x {
					continue
				}
				if d[x][i] < cur {
					cur = d[x][i]
					y = i
				}
			}
			if len(chain) > 1 && y == chain[len(chain)-2] {
				break
			}
			chain = append(chain, y)
		}
		chain = chain[:len(chain)-2]
		if x > y {
			x, y = y, x
		}
		nx, ny := size[x], size[y]
		raw = append(raw, Link{A: x, B: y, Dist: cur})
		size[x] = 0 // the merged cluster lives on in y
		size[y] = nx + ny
		for i := 0; i < n; i++ {
			if size[i] == 0 || i == y {
				continue
			}
			v := update(method, d[i][x], d[i][y], nx, ny)
			d[i][y] = v
			d[y][i] = v
		}
	}
	sort.SliceStable(raw, func(i, j int) bool { return raw[i].Dist < raw[j].Dist })
	return label(raw, n), nil
}

// label renames the merges from representative leaves to cluster
// numbers using union-find.
func label(raw []Link, n int) []Link {
	parent := make([]int, 2*n-1)
	size := make([]int, 2*n-1)
	for i := range parent {
		parent[i] = i
		size[i] = 1
	}
	find := func(x int) int {
		root := x
		for parent[root] != root {
			root = parent[root]
		}
		for parent[x] != root { // path compression
			parent[x], x = root, parent[x]
		}
		return root
	}
	out := make([]Link, len(raw))
	for i, l := range raw {
		a, b := find(l.A), find(l.B)
		if a > b {
			a, b = b, a
		}
		next := n + i
		size[next] = size[a] + size[b]
		parent[a], parent[b] = next, next
		out[i] = Link{A: a, B: b, Dist: l.Dist, Size: size[next]}
	}
	return out
}

// LeafOrder returns the leaves as they are met walking the tree from
// the top, A before B. This is the order for drawing a dendrogram.
func LeafOrder(links []Link, n int) []int {
	if n == 1 {
		return []int{0}
	}
	order := make([]int, 0, n)
	stack := []int{2*n - 2}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node < n {
			order = append(order, node)
			continue
		}
		l := links[node-n]
		stack = append(stack, l.B, l.A) // A comes off first
	}
	return order
}
