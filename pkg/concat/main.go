// 15 Oct 2026
// Glue the columns of one expression table onto another. Gene names in
// the second table are first rewritten with a regular expression so
// they match the names in the first.

package concat

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/andrew-torda/geneexpr/pkg/config"
	"github.com/andrew-torda/geneexpr/pkg/table"
)

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	Pattern config.Pattern // key rewriting for the secondary table
	Time    bool           // print start time and how long we took
}

// loadSecondary reads the secondary table, rewrites its keys and sorts
// it. Nothing from the primary table is touched until this is done.
func loadSecondary(fname string, norm *table.Normalizer) (*table.Table, error) {
	sec, err := table.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("secondary table: %w", err)
	}
	nchange := norm.Apply(sec)
	sec.SortByKey()
	slog.Debug("secondary table ready", "file", fname, "rows", sec.NRow(),
		"columns", sec.Width(), "changed", nchange)
	return sec, nil
}

// Mymain is the whole of a concatenation run. Both inputs must exist
// and the pattern must compile before the output file is created.
func Mymain(flags *CmdFlag, primary, secondary, outfile string) (err error) {
	startTime := time.Now()
	if err = table.CheckExist(primary, secondary); err != nil {
		return err
	}
	norm, err := table.NewNormalizer(flags.Pattern.Pattern, flags.Pattern.Replacement)
	if err != nil {
		return err
	}
	if flags.Time {
		fmt.Println("Started concatenation at", startTime.Format(time.DateTime))
	}

	sec, err := loadSecondary(secondary, norm)
	if err != nil {
		return err
	}

	fpIn, err := table.Open(primary)
	if err != nil {
		return fmt.Errorf("primary table: %w", err)
	}
	defer fpIn.Close()

	fpOut, err := table.Create(outfile)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fpOut.Close(); cerr != nil && err == nil {
			err = &table.IOError{Op: "close", Path: outfile, Err: cerr}
		}
	}()

	nrow, err := Join(fpIn, sec, fpOut)
	if err != nil {
		return fmt.Errorf("joining %s: %w", primary, err)
	}
	slog.Debug("wrote joined table", "file", outfile, "rows", nrow)
	if flags.Time {
		fmt.Println("Finished concatenation in", time.Since(startTime))
	}
	return nil
}
