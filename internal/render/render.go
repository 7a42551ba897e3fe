// Package render writes ranked lines to an output stream.
package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/VoxDroid/vff/internal/finder"
	"github.com/VoxDroid/vff/internal/sanitize"
)

// ColorMode selects when output is coloured.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ErrInvalidColorMode is returned by ParseColorMode for unknown modes.
var ErrInvalidColorMode = errors.New("invalid color mode")

// ParseColorMode parses auto, always or never. An empty string means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}
	return "", fmt.Errorf("%w %q (want auto, always or never)", ErrInvalidColorMode, s)
}

// UseColor reports whether output written to w should be coloured. In auto
// mode colour is used only for terminals and is disabled by NO_COLOR.
func UseColor(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Options controls the output format.
type Options struct {
	// ShowDistance prefixes each line with its distance and a tab.
	ShowDistance bool
	// Color styles complete and incomplete matches differently.
	Color bool
	// Sanitize strips terminal control sequences from lines.
	Sanitize bool
}

// Write writes one line per result, in order, and flushes once at the end.
func Write(w io.Writer, results []finder.Result, opts Options) error {
	p := newPrinter(w, opts)
	bw := bufio.NewWriter(w)
	for _, r := range results {
		if _, err := bw.WriteString(p.format(r)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

type printer struct {
	opts       Options
	complete   lipgloss.Style
	incomplete lipgloss.Style
	dist       lipgloss.Style
}

func newPrinter(w io.Writer, opts Options) *printer {
	p := &printer{opts: opts}
	if opts.Color {
		r := lipgloss.NewRenderer(w)
		r.SetColorProfile(termenv.ANSI256)
		p.complete = r.NewStyle().Bold(true).Foreground(lipgloss.Color("#0ea5a4"))
		p.incomplete = r.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
		p.dist = r.NewStyle().Faint(true)
	}
	return p
}

func (p *printer) format(r finder.Result) string {
	var b strings.Builder
	if p.opts.ShowDistance {
		d := strconv.FormatUint(uint64(r.Score.Distance), 10)
		if p.opts.Color {
			d = p.dist.Render(d)
		}
		b.WriteString(d)
		b.WriteByte('\t')
	}
	line := r.Line
	if p.opts.Sanitize {
		line = sanitize.Line(line)
	}
	if p.opts.Color && line != "" {
		if r.Score.Complete {
			line = p.complete.Render(line)
		} else {
			line = p.incomplete.Render(line)
		}
	}
	b.WriteString(line)
	b.WriteByte('\n')
	return b.String()
}
