package ass

import (
	"fmt"
	"math"
	"strconv"
)

// Tag is a single override tag, String returns it in ASS syntax including
// leading backslash.
type Tag interface {
	String() string
}

// Colour slots.
const (
	PrimarySlot   = 1
	SecondarySlot = 2
	OutlineSlot   = 3
	ShadowSlot    = 4
)

type (
	// Alignment is numpad anchor, \an.
	Alignment int
	// Position is absolute anchor position, \pos.
	Position struct{ X, Y float64 }
	// Colour sets color of slot without alpha, \1c..\4c.
	Colour struct {
		Slot  int
		Color Color
	}
	// Alpha sets transparency of slot, \1a..\4a.
	Alpha struct {
		Slot  int
		Value uint8
	}
	FontSize      float64
	FontName      string
	Bold          bool
	Italic        bool
	Underline     bool
	Border        float64
	Shadow        float64
	LetterSpacing float64
	ScaleX        float64
	ScaleY        float64
	// Reset restores named style, or line style when empty, \r.
	Reset     string
	RotationZ float64
	// Fade is \fad with fade in and fade out durations.
	Fade struct{ In, Out int64 }
)

func (t Alignment) String() string     { return fmt.Sprintf("\\an%d", int(t)) }
func (t Position) String() string      { return "\\pos(" + Number(t.X) + "," + Number(t.Y) + ")" }
func (t Colour) String() string        { return fmt.Sprintf("\\%dc%s", t.Slot, t.Color.BGR()) }
func (t Alpha) String() string         { return fmt.Sprintf("\\%da&H%02X&", t.Slot, t.Value) }
func (t FontSize) String() string      { return "\\fs" + Number(float64(t)) }
func (t FontName) String() string      { return "\\fn" + string(t) }
func (t Bold) String() string          { return "\\b" + flag(bool(t)) }
func (t Italic) String() string        { return "\\i" + flag(bool(t)) }
func (t Underline) String() string     { return "\\u" + flag(bool(t)) }
func (t Border) String() string        { return "\\bord" + Number(float64(t)) }
func (t Shadow) String() string        { return "\\shad" + Number(float64(t)) }
func (t LetterSpacing) String() string { return "\\fsp" + Number(float64(t)) }
func (t ScaleX) String() string        { return "\\fscx" + Number(float64(t)) }
func (t ScaleY) String() string        { return "\\fscy" + Number(float64(t)) }
func (t Reset) String() string         { return "\\r" + string(t) }
func (t RotationZ) String() string     { return "\\frz" + Number(float64(t)) }
func (t Fade) String() string          { return fmt.Sprintf("\\fad(%d,%d)", t.In, t.Out) }

func flag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// Number formats tag argument: at most 3 decimals, no trailing zeros.
func Number(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		// avoid "-0"
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// BGR returns color in inline tag form, &HBBGGRR&.
func (c Color) BGR() string {
	return fmt.Sprintf("&H%02X%02X%02X&", c.B, c.G, c.R)
}

// ABGR returns color in style form, &HAABBGGRR.
func (c Color) ABGR() string {
	return fmt.Sprintf("&H%02X%02X%02X%02X", c.Alpha, c.B, c.G, c.R)
}
