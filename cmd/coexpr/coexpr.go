// 16 Oct 2026
// Pick the clusters which have a gene we care about.

package main

import (
	"fmt"
	"os"
	"path"

	"github.com/spf13/pflag"

	"github.com/andrew-torda/geneexpr/pkg/coexpr"
	. "github.com/andrew-torda/geneexpr/pkg/common"
	"github.com/andrew-torda/geneexpr/pkg/logging"
)

// usage
func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[options] cluster_file gene_file output")
	pflag.PrintDefaults()
}

func main() {
	var flags coexpr.CmdFlag
	pflag.IntVarP(&flags.Column, "column", "n", 0, "column of the gene file with gene names, from 0")
	verbose := pflag.BoolP("verbose", "v", false, "debug output on stderr")
	pflag.Usage = usage
	pflag.Parse()
	logging.Setup(logging.Level(*verbose), "text")

	if pflag.NArg() != 3 {
		usage()
		os.Exit(ExitUsageError)
	}
	if err := coexpr.Mymain(&flags, pflag.Arg(0), pflag.Arg(1), pflag.Arg(2)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
