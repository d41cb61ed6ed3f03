// 16 Oct 2026
// Find all the clusters which contain any of our genes of interest.
// A cluster file has lines like
//    C12<tab>CRO_T001, CRO_T002,CRO_T003
// and the gene file has one gene per line, possibly in a table where
// we have to pick the right column.

package coexpr

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/andrew-torda/geneexpr/pkg/common"
	"github.com/andrew-torda/geneexpr/pkg/table"
)

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	Column int // which column of the gene file has the names, from 0
}

// GeneSet is the set of genes we are interested in.
type GeneSet map[string]struct{}

// Has says if a gene is in the set.
func (g GeneSet) Has(gene string) bool {
	_, ok := g[gene]
	return ok
}

// eachLine calls fn for every line of rdr, without its newline.
// Line numbers start from 1.
func eachLine(rdr io.Reader, fn func(n int, line string) error) error {
	br := bufio.NewReader(rdr)
	for n := 1; ; n++ {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return &table.IOError{Op: "read", Err: err}
		}
		if line == "" && err == io.EOF {
			return nil
		}
		if ferr := fn(n, table.Chomp(line)); ferr != nil {
			return ferr
		}
		if err == io.EOF {
			return nil
		}
	}
}

// ReadGenes reads the genes of interest, taking the given column
// of each line. Blank lines are skipped.
func ReadGenes(rdr io.Reader, column int) (GeneSet, error) {
	if column < 0 {
		return nil, fmt.Errorf("gene column %d is negative", column)
	}
	genes := make(GeneSet)
	err := eachLine(rdr, func(n int, line string) error {
		line = strings.TrimSpace(line)
		if line == "" {
			return nil
		}
		f := strings.Split(line, common.Tab)
		if column >= len(f) {
			return fmt.Errorf("gene file line %d has %d columns, wanted column %d", n, len(f), column)
		}
		if f[column] != "" {
			genes[f[column]] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return genes, nil
}

// HasGene says if any gene in a comma separated list is in genes.
// One leading space is removed from each name, but only one.
func HasGene(geneList string, genes GeneSet) bool {
	for _, gene := range strings.Split(geneList, ",") {
		gene = strings.TrimPrefix(gene, " ")
		if genes.Has(gene) {
			return true
		}
	}
	return false
}

// Filter copies each cluster line which has a gene of interest from
// rdr to w. It returns the number of lines kept and read.
func Filter(rdr io.Reader, genes GeneSet, w io.Writer) (nkept, nread int, err error) {
	bw := bufio.NewWriter(w)
	err = eachLine(rdr, func(n int, line string) error {
		nread++
		f := strings.SplitN(line, common.Tab, 3)
		if len(f) < 2 || !HasGene(f[1], genes) {
			return nil
		}
		nkept++
		bw.WriteString(line)
		if err := bw.WriteByte('\n'); err != nil {
			return &table.IOError{Op: "write", Err: err}
		}
		return nil
	})
	if err != nil {
		return nkept, nread, err
	}
	if err := bw.Flush(); err != nil {
		return nkept, nread, &table.IOError{Op: "write", Err: err}
	}
	return nkept, nread, nil
}

// Mymain checks both input files are there, reads the genes and then
// filters the clusters into outfile.
func Mymain(flags *CmdFlag, clusterFile, geneFile, outfile string) (err error) {
	if err = table.CheckExist(clusterFile, geneFile); err != nil {
		return err
	}
	fpGene, err := table.Open(geneFile)
	if err != nil {
		return err
	}
	genes, err := ReadGenes(fpGene, flags.Column)
	fpGene.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", geneFile, err)
	}
	slog.Debug("read genes of interest", "file", geneFile, "n", len(genes))

	fpClst, err := table.Open(clusterFile)
	if err != nil {
		return err
	}
	defer fpClst.Close()
	fpOut, err := table.Create(outfile)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fpOut.Close(); cerr != nil && err == nil {
			err = &table.IOError{Op: "close", Path: outfile, Err: cerr}
		}
	}()
	nkept, nread, err := Filter(fpClst, genes, fpOut)
	if err != nil {
		return fmt.Errorf("%s: %w", clusterFile, err)
	}
	slog.Debug("filtered clusters", "read", nread, "kept", nkept)
	return nil
}
