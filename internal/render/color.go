package render

import "github.com/fatih/color"

// ansiColorizer maps each semantic tag to the same ANSI attributes the
// original's hand-rolled CSI macros used: bold for the two input
// strings, bold green for the optimal-path highlight, bold cyan/red/
// yellow for the match/mismatch/gap arrows.
type ansiColorizer struct {
	topString  *color.Color
	sideString *color.Color
	optPath    *color.Color
	match      *color.Color
	mismatch   *color.Color
	gap        *color.Color
}

// NewANSIColorizer returns a Colorizer that wraps each tagged string in
// the corresponding ANSI escape sequence, used when -c is given.
func NewANSIColorizer() Colorizer {
	return &ansiColorizer{
		topString:  color.New(color.Bold),
		sideString: color.New(color.Bold),
		optPath:    color.New(color.FgGreen, color.Bold),
		match:      color.New(color.FgCyan, color.Bold),
		mismatch:   color.New(color.FgRed, color.Bold),
		gap:        color.New(color.FgYellow, color.Bold),
	}
}

func (c *ansiColorizer) Paint(tag Tag, s string) string {
	switch tag {
	case TagTopString:
		return c.topString.Sprint(s)
	case TagSideString:
		return c.sideString.Sprint(s)
	case TagOptPath:
		return c.optPath.Sprint(s)
	case TagMatchArrow:
		return c.match.Sprint(s)
	case TagMismatchArrow:
		return c.mismatch.Sprint(s)
	case TagGapArrow:
		return c.gap.Sprint(s)
	default:
		return s
	}
}
