// Package finder ranks the lines of a source text by similarity to a target.
package finder

import (
	"strings"
	"sync"

	"github.com/VoxDroid/vff/internal/distance"
)

// Options controls how lines are scored and which results are returned.
type Options struct {
	// Scorer scores each line. Nil selects distance.Refined.
	Scorer distance.Scorer
	// GroupComplete moves complete matches ahead of incomplete ones. Order
	// within each group is preserved.
	GroupComplete bool
	// MaxResults caps the number of results. Zero or less means no cap.
	MaxResults int
	// Workers is the number of goroutines used for scoring. Values below 2
	// score sequentially.
	Workers int
}

// Result is one ranked line.
type Result struct {
	// Index is the line's position in the source.
	Index int
	Line  string
	Score distance.Score
}

// SplitLines splits source on '\n'. A trailing newline yields a trailing
// empty line.
func SplitLines(source string) []string {
	return strings.Split(source, "\n")
}

// Find splits source into lines and ranks them against target.
func Find(target, source string, opts Options) []Result {
	return Rank(target, SplitLines(source), opts)
}

// Rank scores every line against target and returns them most similar first.
func Rank(target string, lines []string, opts Options) []Result {
	scorer := opts.Scorer
	if scorer == nil {
		scorer = distance.Refined
	}
	scores := ScoreAll(scorer, target, lines, opts.Workers)
	order := distance.Order(scores)
	if opts.GroupComplete {
		order = groupComplete(order, scores)
	}
	if opts.MaxResults > 0 && len(order) > opts.MaxResults {
		order = order[:opts.MaxResults]
	}

	out := make([]Result, len(order))
	for k, idx := range order {
		out[k] = Result{Index: idx, Line: lines[idx], Score: scores[idx]}
	}
	return out
}

// ScoreAll scores each line against target. scores[i] always belongs to
// lines[i] regardless of the number of workers.
func ScoreAll(scorer distance.Scorer, target string, lines []string, workers int) []distance.Score {
	scores := make([]distance.Score, len(lines))
	if workers > len(lines) {
		workers = len(lines)
	}
	if workers < 2 {
		for i, l := range lines {
			scores[i] = scorer(target, l)
		}
		return scores
	}

	chunk := (len(lines) + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < len(lines); start += chunk {
		end := min(start+chunk, len(lines))
		wg.Go(func() {
			for i := start; i < end; i++ {
				scores[i] = scorer(target, lines[i])
			}
		})
	}
	wg.Wait()
	return scores
}

func groupComplete(order []int, scores []distance.Score) []int {
	out := make([]int, 0, len(order))
	var incomplete []int
	for _, idx := range order {
		if scores[idx].Complete {
			out = append(out, idx)
		} else {
			incomplete = append(incomplete, idx)
		}
	}
	return append(out, incomplete...)
}

// CountComplete returns how many results are complete matches.
func CountComplete(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Score.Complete {
			n++
		}
	}
	return n
}
