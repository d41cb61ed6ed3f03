/*
Coexpr finds all clusters that contain any gene of interest.

Usage:
	coexpr [-n column] cluster_file gene_file output

The cluster file has a cluster name, a tab and a comma separated list of
genes on each line. The gene file has one gene per line. If it is a
table, -n picks the column (counting from 0).
Each cluster line with at least one of the genes is copied to the
output unchanged. One of the inputs may be "-" for standard input, the
output "-" for standard output.
*/
package main
