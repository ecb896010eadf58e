// Package natural implements three-way "natural" string comparison, where
// runs of decimal digits compare as numeric magnitudes instead of character
// by character, so "file2" sorts before "file10".
package natural

import "unicode"

// Compare returns -1, 0 or 1 ordering a relative to b under natural order.
// Comparison is case-sensitive.
func Compare(a, b string) int {
	return compare(a, b, false)
}

// CompareFold is Compare with Unicode case folding, so "File2" and "file2"
// compare equal.
func CompareFold(a, b string) int {
	return compare(a, b, true)
}

func compare(a, b string, fold bool) int {
	ra, rb := []rune(a), []rune(b)
	ia, ib := 0, 0

	for ia < len(ra) && ib < len(rb) {
		ca, cb := ra[ia], rb[ib]

		if isDigit(ca) && isDigit(cb) {
			ea := ia
			for ea < len(ra) && isDigit(ra[ea]) {
				ea++
			}
			eb := ib
			for eb < len(rb) && isDigit(rb[eb]) {
				eb++
			}
			if c := compareDigitRuns(ra[ia:ea], rb[ib:eb]); c != 0 {
				return c
			}
			ia, ib = ea, eb
			continue
		}

		if fold {
			ca, cb = unicode.ToLower(ca), unicode.ToLower(cb)
		}
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
		ia++
		ib++
	}

	// One side exhausted: the shorter string sorts first.
	switch {
	case ia < len(ra):
		return 1
	case ib < len(rb):
		return -1
	}
	return 0
}

// compareDigitRuns orders two maximal digit runs as numbers. Leading zeros
// are not significant ("007" == "7"); a run of only zeros counts as "0".
// After zero-stripping the longer run is the larger magnitude, equal lengths
// fall back to digit-by-digit comparison.
func compareDigitRuns(a, b []rune) int {
	for len(a) > 1 && a[0] == '0' {
		a = a[1:]
	}
	for len(b) > 1 && b[0] == '0' {
		b = b[1:]
	}
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
