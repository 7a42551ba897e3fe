// Package distance scores candidate lines against a target token and orders
// the results. Lower distances are more similar; zero is an exact match.
package distance

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Score is the result of comparing a target against one candidate line.
type Score struct {
	Distance uint
	// Complete is true when every target character was located, in order,
	// somewhere in the line.
	Complete bool
}

// Scorer computes the Score of line against target. Implementations are pure
// and safe for concurrent use.
type Scorer func(target, line string) Score

// Algorithm names a Scorer.
type Algorithm string

const (
	AlgorithmRefined Algorithm = "refined"
	AlgorithmSimple  Algorithm = "simple"
)

// DefaultAlgorithm is used when no algorithm is configured.
const DefaultAlgorithm = AlgorithmRefined

// ErrUnknownAlgorithm is returned by Lookup for unrecognised names.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithms lists the supported algorithm names.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmRefined, AlgorithmSimple}
}

// Lookup returns the Scorer registered under name. An empty name selects
// DefaultAlgorithm. Matching ignores case and surrounding whitespace.
func Lookup(name string) (Scorer, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(name))) {
	case "", AlgorithmRefined:
		return Refined, nil
	case AlgorithmSimple:
		return Simple, nil
	}
	return nil, fmt.Errorf("%w %q (want one of %s, %s)", ErrUnknownAlgorithm, name, AlgorithmRefined, AlgorithmSimple)
}

// Refined compares target and line case-sensitively.
//
// Both are walked in step. On a mismatch one point is charged and the line is
// scanned forward from the mismatching character for the current target
// character, charging a point for each character skipped. A failed scan costs
// one more point and exhausts the line. Leftover characters on either side
// cost their count plus one. When every target character was located the
// total is halved (rounding down).
//
// Because mismatches are charged twice and leftovers count plus one, Refined
// scores incomplete matches higher than Simple: "abc" against "def" is 8 and
// "xxxxxx" against "xyxyxy" is 10, where Simple gives 6 for both. An empty
// target against a line of n characters is (n+1)/2, not n. Use Simple when
// those sums are wanted.
func Refined(target, line string) Score {
	t := []rune(target)
	l := []rune(line)

	var d uint
	i, j := 0, 0
	missed := false
	for i < len(t) && j < len(l) {
		if t[i] == l[j] {
			i++
			j++
			continue
		}
		d++
		skipped, pos, found := scan(t[i], l[j:])
		d += skipped
		if found {
			j += pos + 1
		} else {
			d++
			missed = true
			j = len(l)
		}
		i++
	}
	if rest := len(l) - j; rest > 0 {
		d += uint(rest) + 1
	}
	if rest := len(t) - i; rest > 0 {
		d += uint(rest) + 1
	}

	complete := !missed && i == len(t)
	if complete {
		d /= 2
	}
	return Score{Distance: d, Complete: complete}
}

// Simple is the earlier variant: both strings are case folded, each target
// character is searched for in the remainder of the line, and every skipped
// line character costs one point. The first target character that cannot be
// found ends the walk, charging the remaining target characters plus one.
// Trailing line characters cost one point each. No halving is applied.
func Simple(target, line string) Score {
	// Casers are stateful, so each call gets its own.
	t := []rune(cases.Fold().String(target))
	l := []rune(cases.Fold().String(line))

	var d uint
	j := 0
	for i, tc := range t {
		skipped, pos, found := scan(tc, l[j:])
		d += skipped
		if !found {
			return Score{Distance: d + uint(len(t)-i-1) + 1, Complete: false}
		}
		j += pos + 1
	}
	return Score{Distance: d + uint(len(l)-j), Complete: true}
}

// scan looks for want in rest. It returns the number of characters skipped
// before the match (or all of rest when there is none), the match position
// and whether a match was found.
func scan(want rune, rest []rune) (skipped uint, pos int, found bool) {
	for k, c := range rest {
		if c == want {
			return skipped, k, true
		}
		skipped++
	}
	return skipped, -1, false
}
