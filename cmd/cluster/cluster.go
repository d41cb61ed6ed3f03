// 17 Oct 2026

package main

import (
	"fmt"
	"os"
	"path"

	"github.com/spf13/pflag"

	"github.com/andrew-torda/geneexpr/pkg/cluster"
	. "github.com/andrew-torda/geneexpr/pkg/common"
	"github.com/andrew-torda/geneexpr/pkg/logging"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[options] expression_table output")
	pflag.PrintDefaults()
}

func main() {
	flags := cluster.DefaultFlags()
	pflag.StringVarP(&flags.Metric, "metric", "m", flags.Metric, "distance, correlation or euclidean")
	pflag.StringVarP(&flags.Method, "method", "a", flags.Method, "linkage, single, complete, average or weighted")
	pflag.StringVarP(&flags.Criterion, "criterion", "k", flags.Criterion, "inconsistent, distance or maxclust")
	pflag.Float64VarP(&flags.T, "threshold", "t", flags.T, "threshold for the criterion")
	pflag.IntVar(&flags.Depth, "depth", flags.Depth, "depth for inconsistency")
	pflag.StringVarP(&flags.LinkFile, "linkage", "l", "", "write linkage matrix to file")
	pflag.StringVarP(&flags.PlotFile, "dendrogram", "d", "", "draw dendrogram to png file")
	verbose := pflag.BoolP("verbose", "v", false, "debug output on stderr")
	pflag.Usage = usage
	pflag.Parse()
	logging.Setup(logging.Level(*verbose), "text")

	if pflag.NArg() != 2 {
		usage()
		os.Exit(ExitUsageError)
	}
	if err := cluster.Mymain(&flags, pflag.Arg(0), pflag.Arg(1)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
