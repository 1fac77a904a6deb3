package shellio

import (
	"strconv"
	"strings"
)

// ColorSpec is a color in one of three spaces: basic (16), indexed (256) or
// truecolor.
type ColorSpec struct {
	kind    int // 1=basic, 2=indexed, 3=truecolor
	index   int
	r, g, b uint8
}

// Basic colors (0-7 normal, 8-15 bright).
var (
	Red     = basic(1)
	Green   = basic(2)
	Yellow  = basic(3)
	Blue    = basic(4)
	Magenta = basic(5)
	Cyan    = basic(6)

	BrightBlack  = basic(8)
	BrightRed    = basic(9)
	BrightGreen  = basic(10)
	BrightYellow = basic(11)
	BrightBlue   = basic(12)
	BrightCyan   = basic(14)
)

func basic(i int) ColorSpec { return ColorSpec{kind: 1, index: i} }

// Indexed returns a color from the 256-color palette.
func Indexed(i int) ColorSpec { return ColorSpec{kind: 2, index: i} }

// Truecolor returns a 24-bit RGB color.
func Truecolor(r, g, b uint8) ColorSpec { return ColorSpec{kind: 3, r: r, g: g, b: b} }

// Style is a fluent builder for a foreground color and text attributes.
type Style struct {
	fg          *ColorSpec
	bold, faint bool
}

// NewStyle returns an empty style.
func NewStyle() *Style                 { return &Style{} }
func (s *Style) Fg(c ColorSpec) *Style { s.fg = &c; return s }
func (s *Style) Bold() *Style          { s.bold = true; return s }
func (s *Style) Faint() *Style         { s.faint = true; return s }

// Sprint styles text for m, or returns it unchanged when colors are off.
func (s *Style) Sprint(m *IOManager, text string) string {
	if !m.SupportsColor() {
		return text
	}
	seq := s.sgr(m.ColorLevel())
	if seq == "" {
		return text
	}
	return "\x1b[" + seq + "m" + text + "\x1b[0m"
}

func (s *Style) sgr(level int) string {
	codes := make([]string, 0, 3)
	if s.bold {
		codes = append(codes, "1")
	}
	if s.faint {
		codes = append(codes, "2")
	}
	if s.fg != nil {
		if c := colorCode(*s.fg, level); c != "" {
			codes = append(codes, c)
		}
	}
	return strings.Join(codes, ";")
}

// colorCode degrades indexed and truecolor specs to nothing when the terminal
// cannot show them.
func colorCode(c ColorSpec, level int) string {
	switch c.kind {
	case 1:
		if c.index < 8 {
			return strconv.Itoa(30 + c.index)
		}
		return strconv.Itoa(90 + c.index - 8)
	case 2:
		if level >= 2 {
			return "38;5;" + strconv.Itoa(c.index)
		}
	case 3:
		if level >= 3 {
			return "38;2;" + strconv.Itoa(int(c.r)) + ";" + strconv.Itoa(int(c.g)) + ";" + strconv.Itoa(int(c.b))
		}
	}
	return ""
}

// Theme holds the semantic colors used by the logger and the shell prompt.
type Theme struct {
	Debug, Info, Success, Warning, Error ColorSpec
	Prompt                               ColorSpec
}

// DefaultTheme picks a theme for the color level of m.
func DefaultTheme(m *IOManager) Theme {
	if m.ColorLevel() >= 3 {
		return Theme{
			Debug:   Truecolor(189, 147, 249),
			Info:    Truecolor(92, 148, 252),
			Success: Truecolor(80, 250, 123),
			Warning: Truecolor(255, 184, 108),
			Error:   Truecolor(255, 85, 85),
			Prompt:  Truecolor(139, 233, 253),
		}
	}
	return Theme{
		Debug:   Magenta,
		Info:    BrightBlue,
		Success: BrightGreen,
		Warning: BrightYellow,
		Error:   BrightRed,
		Prompt:  BrightCyan,
	}
}
