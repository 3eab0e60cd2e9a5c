package draw

import (
	"strings"

	"github.com/muesli/termenv"
)

// Colours of the light scheme follow the daytime background art; the dark
// scheme swaps to a night sky and a gray score label.
var (
	lightColors = schemeColors{
		sky:   "#87CEEB",
		label: "#000000",
		text:  "#1F2937",
		inks:  [inkCount]string{InkAirplane: "#B5651E", InkCloud: "#FFFFFF", InkGround: "#6B8E23", InkSpark: "#F59E0B"},
	}
	darkColors = schemeColors{
		sky:   "#0F172A",
		label: "#808080",
		text:  "#E5E7EB",
		inks:  [inkCount]string{InkAirplane: "#E5E7EB", InkCloud: "#64748B", InkGround: "#334155", InkSpark: "#F97316"},
	}
)

type schemeColors struct {
	sky   string
	label string
	text  string
	inks  [inkCount]string
}

// Theme is the terminal rendition of the background art and label colour.
type Theme struct {
	Dark    bool
	Palette *Palette

	label string // SGR prefix for the score label
	text  string // SGR prefix for overlay text
	reset string
}

// NewTheme builds the light or dark theme for out's colour profile.
func NewTheme(out *termenv.Output, dark bool) Theme {
	colors := lightColors
	if dark {
		colors = darkColors
	}
	sky := out.Color(colors.sky)

	p := &Palette{}
	p.empty = sgr(nil, sky) + " "
	for ink := InkAirplane; ink < inkCount; ink++ {
		p.inks[ink] = out.Color(colors.inks[ink])
	}
	p.sky = sky

	return Theme{
		Dark:    dark,
		Palette: p,
		label:   sgr(out.Color(colors.label), sky) + termenv.CSI + termenv.BoldSeq + "m",
		text:    sgr(out.Color(colors.text), sky),
		reset:   termenv.CSI + termenv.ResetSeq + "m",
	}
}

// Label wraps s in the score label style.
func (t Theme) Label(s string) string {
	return t.label + s
}

// Text wraps s in the overlay text style.
func (t Theme) Text(s string) string {
	return t.text + s
}

// Background returns the sequence that selects the sky as the erase colour.
func (t Theme) Background() string {
	if t.Palette == nil {
		return ""
	}
	return sgr(nil, t.Palette.sky)
}

// Reset returns the attribute reset sequence.
func (t Theme) Reset() string {
	return t.reset
}

// Palette maps inks to terminal colours.
type Palette struct {
	sky   termenv.Color
	inks  [inkCount]termenv.Color
	empty string
}

// cell returns the styled glyph for a pair of stacked sub-pixels.
func (p *Palette) cell(top, bottom Ink) string {
	if p == nil {
		switch {
		case top != InkNone && bottom != InkNone:
			return string(BlockFull)
		case top != InkNone:
			return string(BlockUpperHalf)
		case bottom != InkNone:
			return string(BlockLowerHalf)
		default:
			return " "
		}
	}
	switch {
	case top == InkNone && bottom == InkNone:
		return p.empty
	case top == bottom:
		return sgr(p.inks[top], p.sky) + string(BlockFull)
	case bottom == InkNone:
		return sgr(p.inks[top], p.sky) + string(BlockUpperHalf)
	case top == InkNone:
		return sgr(p.inks[bottom], p.sky) + string(BlockLowerHalf)
	default:
		return sgr(p.inks[top], p.inks[bottom]) + string(BlockUpperHalf)
	}
}

// sgr builds a full attribute sequence: reset, then foreground and background.
func sgr(fg, bg termenv.Color) string {
	parts := []string{termenv.ResetSeq}
	if fg != nil {
		if s := fg.Sequence(false); s != "" {
			parts = append(parts, s)
		}
	}
	if bg != nil {
		if s := bg.Sequence(true); s != "" {
			parts = append(parts, s)
		}
	}
	return termenv.CSI + strings.Join(parts, ";") + "m"
}

// ProfileFromEnv picks a colour profile from a session's TERM and
// environment, for writers that are not the process's own terminal.
func ProfileFromEnv(term string, environ []string) termenv.Profile {
	for _, kv := range environ {
		if kv == "COLORTERM=truecolor" || kv == "COLORTERM=24bit" {
			return termenv.TrueColor
		}
	}
	switch {
	case term == "" || term == "dumb":
		return termenv.Ascii
	case strings.Contains(term, "256color"):
		return termenv.ANSI256
	case strings.Contains(term, "truecolor") || strings.Contains(term, "direct"):
		return termenv.TrueColor
	default:
		return termenv.ANSI
	}
}

// DarkFromColorFGBG interprets the COLORFGBG convention ("fg;bg"): a
// background index of 0-6 or 8 is a dark terminal.
func DarkFromColorFGBG(environ []string) bool {
	for _, kv := range environ {
		value, ok := strings.CutPrefix(kv, "COLORFGBG=")
		if !ok {
			continue
		}
		fields := strings.Split(value, ";")
		bg := fields[len(fields)-1]
		switch bg {
		case "0", "1", "2", "3", "4", "5", "6", "8":
			return true
		}
		return false
	}
	return false
}
