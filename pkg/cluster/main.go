// 17 Oct 2026
// Cluster the rows of an expression table. The old script called
// scipy with single linkage on correlation distance and cut the tree
// with the inconsistency criterion at 1. Those are the defaults here.

package cluster

import (
	"bufio"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/andrew-torda/geneexpr/pkg/common"
	"github.com/andrew-torda/geneexpr/pkg/table"
)

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	Metric    string  // correlation or euclidean
	Method    string  // single, complete, average, weighted
	Criterion string  // inconsistent, distance or maxclust
	T         float64 // threshold for the criterion
	Depth     int     // for inconsistency
	LinkFile  string  // if set, write the linkage matrix here
	PlotFile  string  // if set, draw a dendrogram here as png
}

// DefaultFlags are the settings of the original scipy call.
func DefaultFlags() CmdFlag {
	return CmdFlag{
		Metric:    string(Correlation),
		Method:    string(Single),
		Criterion: string(Inconsistent),
		T:         1,
		Depth:     2,
	}
}

// writeAssign writes key<tab>cluster for every row, in input order.
func writeAssign(fname string, keys []string, assign []int) (err error) {
	fp, err := table.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fp.Close(); cerr != nil && err == nil {
			err = &table.IOError{Op: "close", Path: fname, Err: cerr}
		}
	}()
	bw := bufio.NewWriter(fp)
	for i, k := range keys {
		bw.WriteString(k + common.Tab + strconv.Itoa(assign[i]) + common.NL)
	}
	if err := bw.Flush(); err != nil {
		return &table.IOError{Op: "write", Path: fname, Err: err}
	}
	return nil
}

// writeLinks writes the linkage matrix with a header, like scipy's
// columns.
func writeLinks(fname string, links []Link) (err error) {
	fp, err := table.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fp.Close(); cerr != nil && err == nil {
			err = &table.IOError{Op: "close", Path: fname, Err: cerr}
		}
	}()
	bw := bufio.NewWriter(fp)
	fmt.Fprintln(bw, "a\tb\tdist\tsize")
	for _, l := range links {
		dist := strconv.FormatFloat(l.Dist, 'g', -1, 32) // heights began as float32
		fmt.Fprintf(bw, "%d\t%d\t%s\t%d\n", l.A, l.B, dist, l.Size)
	}
	if err := bw.Flush(); err != nil {
		return &table.IOError{Op: "write", Path: fname, Err: err}
	}
	return nil
}

func writePlot(fname string, links []Link, keys []string) (err error) {
	fp, err := table.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fp.Close(); cerr != nil && err == nil {
			err = &table.IOError{Op: "close", Path: fname, Err: cerr}
		}
	}()
	p := Plot{Links: links, Labels: keys}
	return p.Draw(fp)
}

// Mymain reads infile, clusters its rows and writes the flat cluster
// of each row to outfile.
func Mymain(flags *CmdFlag, infile, outfile string) error {
	tb, err := table.ReadFile(infile)
	if err != nil {
		return err
	}
	vecs, err := Vectors(tb)
	if err != nil {
		return fmt.Errorf("%s: %w", infile, err)
	}
	dist, err := Distances(vecs, Metric(flags.Metric))
	if err != nil {
		return err
	}
	links, err := Linkage(dist, Method(flags.Method))
	if err != nil {
		return err
	}
	assign, err := FCluster(links, Criterion(flags.Criterion), flags.T, flags.Depth)
	if err != nil {
		return err
	}
	keys := make([]string, tb.NRow())
	for i, r := range tb.Rows {
		keys[i] = r.Key
	}
	slog.Debug("clustered", "rows", len(keys), "clusters", nClust(assign))

	if err := writeAssign(outfile, keys, assign); err != nil {
		return err
	}
	if flags.LinkFile != "" {
		if err := writeLinks(flags.LinkFile, links); err != nil {
			return err
		}
	}
	if flags.PlotFile != "" {
		if err := writePlot(flags.PlotFile, links, keys); err != nil {
			return err
		}
	}
	return nil
}
