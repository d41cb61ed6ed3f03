package table

import (
	"regexp"
)

// Normalizer rewrites keys so names from one source line up with
// names from another, for example "CRO_T012345" becomes "CRO_012345".
type Normalizer struct {
	re   *regexp.Regexp
	repl string
}

// NewNormalizer compiles the pattern. The replacement is used
// literally, so "$1" means a dollar sign and a one.
func NewNormalizer(pattern, replacement string) (*Normalizer, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	return &Normalizer{re: re, repl: replacement}, nil
}

// Key returns the normalised version of one key.
func (n *Normalizer) Key(k string) string {
	return n.re.ReplaceAllLiteralString(k, n.repl)
}

// Apply normalises every key in a table, in place.
// It returns the number of keys which changed.
func (n *Normalizer) Apply(t *Table) int {
	nchange := 0
	for i := range t.Rows {
		k := n.Key(t.Rows[i].Key)
		if k != t.Rows[i].Key {
			t.Rows[i].Key = k
			nchange++
		}
	}
	return nchange
}
