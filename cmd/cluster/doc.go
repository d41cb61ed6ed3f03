// 17 Oct 2026

/*
Cluster does hierarchical clustering of the rows of an expression table
and writes the flat cluster each gene lands in.

Usage:
	cluster [flags] expression_table output

The defaults copy what we always did with scipy: correlation distance
(1 - Pearson r), single linkage, and flat clusters from the
inconsistency coefficient with a threshold of 1 and depth 2.

The output has gene<tab>cluster on each line, in the order of the
input. Cluster numbers start from 1. The table may be "-" for
standard input and the output "-" for standard output.

The flags are:
	-m metric
		correlation or euclidean
	-a method
		single, complete, average or weighted
	-k criterion
		inconsistent, distance or maxclust
	-t threshold
		for maxclust, the number of clusters wanted
	--depth n
		how many levels of links to use for inconsistency
	-l file
		write the linkage matrix (a, b, distance, size) as scipy would
	-d file.png
		draw a dendrogram. Gene names are written if there are
		not too many.

Every distance is kept in memory, so tens of thousands of genes need
a few Gb.
*/
package main
