// 29 Apr 2020, moved out of seq 14 Oct 2026

// Package common has the bits shared by all the table tools, exit
// codes and a helper for writing test files.
package common

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

const (
	Tab     = "\t"
	NL      = "\n"
	Stdio   = "-" // as a filename, means standard input or output
	ZeroVal = "0" // written for expression values we do not have
)

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}
	defer f_tmp.Close()

	if _, err := io.WriteString(f_tmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v: %w", f_tmp.Name(), err)
	}
	return f_tmp.Name(), nil
}

// WarnExists checks if a filename exists and logs a warning
// if we will trash a file. It does not return an error.
func WarnExists(fname string) {
	if fname == "" || fname == Stdio {
		return
	}
	if _, err := os.Stat(fname); err == nil {
		slog.Warn("trashing old version", "file", fname)
	}
}
