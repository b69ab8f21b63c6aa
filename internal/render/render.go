// Package render pretty-prints a finished scoring table: the directional
// back-pointer arrows interleaved with the numeric scores, optionally
// highlighting the union of all co-optimal paths and colorizing
// semantic elements (top/side strings, optimal-path cells, match and
// mismatch arrows) with ANSI escapes.
package render

import (
	"fmt"
	"io"

	"nwsw/internal/engine"
)

// Tag names a semantic element of the rendered table, the same
// distinction the original hand-rolled ANSI macros drew between the
// top/side strings, the optimal-path highlight, and the three arrow
// kinds.
type Tag int

const (
	TagNone Tag = iota
	TagTopString
	TagSideString
	TagOptPath
	TagMatchArrow
	TagMismatchArrow
	TagGapArrow
)

// Colorizer maps a semantic tag to a rendering of s, e.g. wrapping it
// in ANSI escapes or returning it unchanged.
type Colorizer interface {
	Paint(tag Tag, s string) string
}

type plainColorizer struct{}

func (plainColorizer) Paint(_ Tag, s string) string { return s }

// NewPlainColorizer returns a Colorizer that performs no colorization,
// used when the caller did not request -c.
func NewPlainColorizer() Colorizer { return plainColorizer{} }

const (
	leftArrowASCII  = "<"
	upArrowASCII    = "^"
	diagArrowASCII  = "\\"
	leftArrowUni    = "←"
	upArrowUni      = "↑"
	diagArrowUni    = "↖"
)

// Renderer writes a scoring table to an io.Writer in the layout the
// original print-table.c produces: a top row of the first sequence's
// characters, then one directional-arrow row and one score row per
// table row, each bordered on the left by the second sequence.
type Renderer struct {
	Colorizer Colorizer
	Unicode   bool
}

// New builds a Renderer that paints through colorizer (an ANSI
// Colorizer for -c, otherwise a plain passthrough); a nil colorizer
// falls back to the plain passthrough.
func New(colorizer Colorizer, unicode bool) *Renderer {
	if colorizer == nil {
		colorizer = NewPlainColorizer()
	}
	return &Renderer{Colorizer: colorizer, Unicode: unicode}
}

func widthNeededToPrintInteger(x int) int {
	w := 0
	for {
		x /= 10
		w++
		if x == 0 {
			break
		}
	}
	return w + 1 // room for a sign
}

// Render writes the complete table (top string, then each row's
// directional-arrow line and score line) to w.
func (r *Renderer) Render(w io.Writer, t *engine.Table) {
	colWidth := widthNeededToPrintInteger(t.MaxAbsScore())
	m, n := t.Dims()
	s1 := t.TopString()

	r.printTopString(w, m, colWidth, s1)
	for row := 0; row < n; row++ {
		r.printDirectionalRow(w, t, m, row, colWidth)
		r.printScoreRow(w, t, m, row, colWidth, t.SideString())
	}
}

func (r *Renderer) printTopString(w io.Writer, m, colWidth int, s1 string) {
	fmt.Fprintf(w, "%s", r.Colorizer.Paint(TagTopString, fmt.Sprintf("*    %*s", colWidth, "-")))
	for i := 0; i < m-1; i++ {
		fmt.Fprint(w, r.Colorizer.Paint(TagTopString, fmt.Sprintf("    %*s%c", colWidth-1, "", s1[i])))
	}
	fmt.Fprintln(w)
}

func (r *Renderer) printDirectionalRow(w io.Writer, t *engine.Table, m, row, colWidth int) {
	fmt.Fprint(w, " ")
	for col := 0; col < m; col++ {
		cell := t.Cell(col, row)
		if cell.Diag {
			fmt.Fprint(w, r.arrow(diagDir, cell, colWidth))
		} else {
			fmt.Fprintf(w, "    ")
		}
		if cell.Up {
			fmt.Fprint(w, r.arrow(upDir, cell, colWidth))
		} else {
			fmt.Fprintf(w, "%*s", colWidth, "")
		}
	}
	fmt.Fprintln(w)
}

func (r *Renderer) printScoreRow(w io.Writer, t *engine.Table, m, row, colWidth int, s2 string) {
	sep := byte('-')
	if row > 0 {
		sep = s2[row-1]
	}
	fmt.Fprint(w, r.Colorizer.Paint(TagSideString, string(sep)))

	for col := 0; col < m; col++ {
		cell := t.Cell(col, row)
		if cell.Left {
			fmt.Fprint(w, r.arrow(leftDir, cell, colWidth))
		} else {
			fmt.Fprintf(w, "    ")
		}
		score := fmt.Sprintf("%+*d", colWidth, cell.Score)
		if cell.InOptimalPath {
			score = r.Colorizer.Paint(TagOptPath, score)
		}
		fmt.Fprint(w, score)
	}
	fmt.Fprintln(w)
}

type direction int

const (
	diagDir direction = iota
	upDir
	leftDir
)

func (r *Renderer) arrow(dir direction, cell engine.TableCell, colWidth int) string {
	var glyph string
	var tag Tag

	switch dir {
	case leftDir:
		glyph = fmt.Sprintf("  %s ", r.pick(leftArrowASCII, leftArrowUni))
		tag = TagGapArrow
	case upDir:
		width := colWidth
		if r.Unicode {
			width += 2
		}
		glyph = fmt.Sprintf("%*s", width, r.pick(upArrowASCII, upArrowUni))
		tag = TagGapArrow
	case diagDir:
		glyph = fmt.Sprintf("  %s ", r.pick(diagArrowASCII, diagArrowUni))
		if cell.Match {
			tag = TagMatchArrow
		} else {
			tag = TagMismatchArrow
		}
	}

	if !cell.InOptimalPath {
		return glyph
	}
	return r.Colorizer.Paint(tag, glyph)
}

func (r *Renderer) pick(ascii, unicode string) string {
	if r.Unicode {
		return unicode
	}
	return ascii
}
