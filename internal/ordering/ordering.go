// Package ordering defines the comparison policy that governs a sort run:
// one base comparator combined with an optional reversal. A single Policy
// value is constructed per run and never swapped afterwards.
package ordering

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/linesort/internal/natural"
)

// Kind selects the base comparator.
type Kind int

const (
	// Lexicographic compares code points byte-for-byte.
	Lexicographic Kind = iota
	// CaseInsensitive is Lexicographic with Unicode case folding.
	CaseInsensitive
	// Natural compares digit runs as numeric magnitudes.
	Natural
	// NaturalCaseInsensitive is Natural with Unicode case folding.
	NaturalCaseInsensitive
	// LocaleLogical delegates to locale-aware collation with numeric
	// ordering enabled.
	LocaleLogical
)

func (k Kind) String() string {
	switch k {
	case Lexicographic:
		return "lexicographic"
	case CaseInsensitive:
		return "case-insensitive"
	case Natural:
		return "natural"
	case NaturalCaseInsensitive:
		return "natural-case-insensitive"
	case LocaleLogical:
		return "locale"
	}
	return fmt.Sprintf("ordering.Kind(%d)", int(k))
}

// Policy is an immutable comparison policy. The zero value is ascending
// lexicographic order.
type Policy struct {
	kind    Kind
	reverse bool
	coll    *collate.Collator // LocaleLogical only
}

// New builds a Policy for any non-locale Kind. Use NewLocale for
// LocaleLogical, which needs a language tag.
func New(kind Kind, reverse bool) Policy {
	return Policy{kind: kind, reverse: reverse}
}

// NewLocale builds a LocaleLogical Policy collating under the given BCP 47
// tag. Numeric collation is always on, so digit runs order by magnitude;
// fold additionally ignores case.
func NewLocale(tag string, fold, reverse bool) (Policy, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return Policy{}, fmt.Errorf("invalid locale %q: %w", tag, err)
	}
	opts := []collate.Option{collate.Numeric}
	if fold {
		opts = append(opts, collate.IgnoreCase)
	}
	return Policy{kind: LocaleLogical, reverse: reverse, coll: collate.New(t, opts...)}, nil
}

// Kind returns the base comparator kind.
func (p Policy) Kind() Kind { return p.kind }

// Reversed reports whether the policy sorts descending.
func (p Policy) Reversed() bool { return p.reverse }

// Compare returns -1, 0 or 1 ordering a relative to b under the policy.
// Descending order negates the ascending relation rather than using a
// separate comparator.
func (p Policy) Compare(a, b string) int {
	c := p.base(a, b)
	if p.reverse {
		return -c
	}
	return c
}

// Less reports whether a must sort strictly before b.
func (p Policy) Less(a, b string) bool {
	return p.Compare(a, b) < 0
}

func (p Policy) base(a, b string) int {
	switch p.kind {
	case CaseInsensitive:
		return compareFold(a, b)
	case Natural:
		return natural.Compare(a, b)
	case NaturalCaseInsensitive:
		return natural.CompareFold(a, b)
	case LocaleLogical:
		return p.coll.CompareString(a, b)
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// compareFold orders a and b code point by code point under simple Unicode
// case folding, without allocating.
func compareFold(a, b string) int {
	for len(a) > 0 && len(b) > 0 {
		ca, na := utf8.DecodeRuneInString(a)
		cb, nb := utf8.DecodeRuneInString(b)
		ca, cb = unicode.ToLower(ca), unicode.ToLower(cb)
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
		a, b = a[na:], b[nb:]
	}
	switch {
	case len(a) > 0:
		return 1
	case len(b) > 0:
		return -1
	}
	return 0
}
