// 15 Oct 2026
// Join two expression tables on gene name.

package main

import (
	"fmt"
	"os"
	"path"

	"github.com/spf13/pflag"

	. "github.com/andrew-torda/geneexpr/pkg/common"
	"github.com/andrew-torda/geneexpr/pkg/concat"
	"github.com/andrew-torda/geneexpr/pkg/config"
	"github.com/andrew-torda/geneexpr/pkg/logging"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[options] primary secondary output")
	pflag.PrintDefaults()
}

func main() {
	var flags concat.CmdFlag
	config.AddFlags(pflag.CommandLine)
	cfgFile := pflag.StringP("config", "c", "", "YAML file with pattern and replacement")
	verbose := pflag.BoolP("verbose", "v", false, "debug output on stderr")
	pflag.BoolVarP(&flags.Time, "time", "t", true, "print start time and run time")
	pflag.Usage = usage
	pflag.Parse()
	logging.Setup(logging.Level(*verbose), "text")

	if pflag.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Got", pflag.NArg(), "args, expected 3")
		usage()
		os.Exit(ExitUsageError)
	}
	pattern, err := config.Load(*cfgFile, pflag.CommandLine)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	flags.Pattern = *pattern

	if err := concat.Mymain(&flags, pflag.Arg(0), pflag.Arg(1), pflag.Arg(2)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
