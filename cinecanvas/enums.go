package cinecanvas

//go:generate go tool go-enum --nocase --names

// Decoration applied around glyphs.
// ENUM(none, border, shadow)
type TextEffect int

// ENUM(normal, bold)
type TextWeight int

// ENUM(normal, super, sub)
type TextScript int

// ENUM(horizontal, vertical)
type TextDirection int

// Horizontal anchor of a text run.
// ENUM(left, right, center)
type AlignH int

// Shift returns column offset of the anchor on numpad grid.
func (a AlignH) Shift() int {
	switch a {
	case AlignHLeft:
		return -1
	case AlignHRight:
		return 1
	default:
		return 0
	}
}

// Vertical anchor of a text run.
// ENUM(top, bottom, center)
type AlignV int

// Side of the base text ruby is placed on.
// ENUM(before, after)
type RubyPosition int

// ENUM(unset, left, right)
type RotateDirection int

// FormatVersion is declared DCSubtitle version.
type FormatVersion string

const (
	FormatVersion10 FormatVersion = "1.0"
	FormatVersion11 FormatVersion = "1.1"
)
