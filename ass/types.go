// Package ass models Advanced SubStation Alpha scripts: styles, dialogue
// events and inline override tags, and writes them out as text.
package ass

import (
	"time"
)

// Color is ASS color. Alpha is transparency: 0 is opaque, 255 is invisible.
type Color struct {
	R, G, B, Alpha uint8
}

var (
	White = Color{R: 255, G: 255, B: 255}
	Black = Color{}
	Red   = Color{R: 255}
)

// ScriptInfo is [Script Info] section.
type ScriptInfo struct {
	Title    string
	PlayResX int
	PlayResY int
	// Comment is written as first line of the section when not empty.
	Comment               string
	WrapStyle             int
	ScaledBorderAndShadow bool
}

// Style is a single line of [V4+ Styles] section.
type Style struct {
	Name            string
	Fontname        string
	Fontsize        float64
	PrimaryColour   Color
	SecondaryColour Color
	OutlineColour   Color
	BackColour      Color
	Bold            bool
	Italic          bool
	Underline       bool
	StrikeOut       bool
	ScaleX          float64
	ScaleY          float64
	Spacing         float64
	Angle           float64
	BorderStyle     int
	Outline         float64
	Shadow          float64
	Alignment       int
	MarginL         int
	MarginR         int
	MarginV         int
	Encoding        int
}

// NewStyle returns style with values renderers assume when fields are not
// given.
func NewStyle(name, fontname string) Style {
	return Style{
		Name:            name,
		Fontname:        fontname,
		Fontsize:        20,
		PrimaryColour:   White,
		SecondaryColour: Red,
		OutlineColour:   Black,
		BackColour:      Black,
		ScaleX:          100,
		ScaleY:          100,
		BorderStyle:     1,
		Outline:         2,
		Shadow:          2,
		Alignment:       2,
		MarginL:         10,
		MarginR:         10,
		MarginV:         10,
		Encoding:        1,
	}
}

// Event is a Dialogue line of [Events] section.
type Event struct {
	Layer   int
	Start   time.Duration
	End     time.Duration
	Style   string
	Name    string
	MarginL int
	MarginR int
	MarginV int
	Effect  string
	Text    string
}

// Script is complete ASS document.
type Script struct {
	Info   ScriptInfo
	Styles []Style
	Events []Event
}
