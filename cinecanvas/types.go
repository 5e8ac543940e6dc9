// Package cinecanvas reconstructs DCP subtitle documents (CineCanvas XML)
// into a typed tree.
package cinecanvas

import (
	"strings"
)

// ContentItem is one piece of text run content. The set of implementations
// is closed to this package.
type ContentItem interface {
	contentItem()
}

type (
	PlainText struct {
		Text string
	}

	// TextWithFont is text wrapped in inline Font element.
	TextWithFont struct {
		Text string
		Font FontOverride
	}

	RubyAnnotation struct {
		Base string
		Ruby string
		// Size is ruby scale relative to base font size.
		Size         float64
		Position     RubyPosition
		Offset       float64
		Spacing      float64
		AspectAdjust float64
	}

	// Spacing is horizontal space of Size em.
	Spacing struct {
		Size float64
	}

	// HorizontalGroup is text kept horizontal inside vertical run.
	HorizontalGroup struct {
		Text string
	}

	RotatedRun struct {
		Text      string
		Direction RotateDirection
	}
)

func (PlainText) contentItem()       {}
func (TextWithFont) contentItem()    {}
func (RubyAnnotation) contentItem()  {}
func (Spacing) contentItem()         {}
func (HorizontalGroup) contentItem() {}
func (RotatedRun) contentItem()      {}

const (
	DefaultRubySize    = 0.5
	DefaultSpacingSize = 0.5
)

// TextRun is a single positioned Text element.
type TextRun struct {
	Items     []ContentItem
	AlignH    AlignH
	AlignV    AlignV
	PositionH float64
	PositionV float64
	Direction TextDirection
	// Font is root font opened inside Subtitle around this run, nil if none.
	Font      *Font
}

// Text returns readable run content without styling.
func (r TextRun) Text() string {
	var sb strings.Builder
	for _, item := range r.Items {
		switch it := item.(type) {
		case PlainText:
			sb.WriteString(it.Text)
		case TextWithFont:
			sb.WriteString(it.Text)
		case RubyAnnotation:
			sb.WriteString(it.Base)
		case Spacing:
			sb.WriteByte(' ')
		case HorizontalGroup:
			sb.WriteString(it.Text)
		case RotatedRun:
			sb.WriteString(it.Text)
		}
	}
	return sb.String()
}

type Subtitle struct {
	Runs   []TextRun
	Start  Timing
	End    Timing
	Number string
	// Font is the root font wrapping the subtitle, nil if none.
	Font    *Font
	FadeIn  Timing
	FadeOut Timing
}

// Document is a parsed DCSubtitle.
type Document struct {
	ID        string
	Title     string
	Reel      int
	Language  string
	Subtitles []Subtitle
	Fonts     []*FontFile
	Version   FormatVersion
}
