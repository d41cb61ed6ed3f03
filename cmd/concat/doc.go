// 15 Oct 2026
/*
Concat glues the columns of a secondary expression table onto a primary
one, matching rows by gene name.

Usage:
	concat [flags] primary secondary output

Every line of the primary file appears in the output, in its original
order, followed by the matching row's values from the secondary file.
If the secondary file has no row for a gene, one "0" is written for each
of its columns. The header is the primary header followed by the
secondary column names.

Before matching, gene names in the secondary file are rewritten with a
regular expression. By default "CRO_T" becomes "CRO_". The first row in
the secondary file with a given name is the one used.

The flags are:
	-p pattern
		regular expression to replace in secondary gene names
	-r replacement
		literal text to put in its place
	-c config.yaml
		read pattern and replacement from a file with keys
		"pattern" and "replacement"
	-t
		print start time and run time (default true, -t=false to stop)
	-v
		debug messages on standard error

The environment variables GENEEXPR_PATTERN and GENEEXPR_REPLACEMENT
override the config file, and flags override both.
Inputs may be gzipped. An input name of "-" means standard input (use
it for one of the two at most) and an output name of "-" means standard
output.
*/
package main
