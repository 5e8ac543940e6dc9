package convert

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"cc2ass/ass"
	"cc2ass/cinecanvas"
)

const (
	rotateLeft  = 90
	rotateOther = 270
	// nonBreakingSpace is hard space placeholder
	nonBreakingSpace = `\h`
	forcedBreak      = `\N`
)

// fragment is styled piece of dialogue line.
type fragment struct {
	tags  []ass.Tag
	text  string
	style string
}

// scope is context threaded through content dispatch.
type scope struct {
	run *cinecanvas.TextRun
	// font is current context, root is inherited root context
	font cinecanvas.FontContext
	root cinecanvas.FontContext
	// direction of payload, may differ from run direction
	direction cinecanvas.TextDirection
	extra     []ass.Tag
}

type emitter struct {
	width  int
	height int
	// fontName maps face id to name renderers know
	fontName func(face string) string
	log      *zap.Logger
}

// content dispatches single content item.
func (e *emitter) content(item cinecanvas.ContentItem, s scope) (fragment, error) {
	switch it := item.(type) {
	case cinecanvas.PlainText:
		return e.text(it.Text, s)

	case cinecanvas.TextWithFont:
		font, err := Resolve(it.Font, s.font)
		if err != nil {
			return fragment{}, err
		}
		s.font = font
		return e.content(cinecanvas.PlainText{Text: it.Text}, s)

	case cinecanvas.RubyAnnotation:
		return e.content(cinecanvas.PlainText{Text: it.Base}, s)

	case cinecanvas.Spacing:
		font, err := Resolve(s.font, s.root)
		if err != nil {
			return fragment{}, err
		}
		return fragment{
			tags:  []ass.Tag{ass.Reset(font.Face), ass.ScaleX(it.Size * 100)},
			text:  nonBreakingSpace,
			style: font.Face,
		}, nil

	case cinecanvas.HorizontalGroup:
		s.direction = cinecanvas.TextDirectionHorizontal
		return e.content(cinecanvas.PlainText{Text: it.Text}, s)

	case cinecanvas.RotatedRun:
		angle := rotateOther
		if it.Direction == cinecanvas.RotateDirectionLeft {
			angle = rotateLeft
		}
		s.extra = append(slices.Clip(s.extra), ass.RotationZ(angle))
		return e.content(cinecanvas.PlainText{Text: it.Text}, s)

	default:
		return fragment{}, fmt.Errorf("%w: content %T", ErrUnsupportedContent, item)
	}
}

func (e *emitter) text(payload string, s scope) (fragment, error) {
	font, err := Resolve(s.font, s.root)
	if err != nil {
		return fragment{}, err
	}

	tags, style := e.fontTags(font, s.root, float64(font.Size))
	if font.Spacing != 0 {
		tags = append(tags, ass.LetterSpacing(font.Spacing))
	}
	tags = append(tags, scaleTag(s.run.Direction, font.AspectAdjust))
	tags = append(tags, s.extra...)

	return fragment{tags: tags, text: directional(payload, s.direction), style: style}, nil
}

// ruby produces annotation line positioned relative to base anchor at x, y.
func (e *emitter) ruby(r cinecanvas.RubyAnnotation, s scope, x, y float64, alignment int) (fragment, error) {
	font, err := Resolve(s.font, s.root)
	if err != nil {
		return fragment{}, err
	}

	size := float64(font.Size) * r.Size
	tags, style := e.fontTags(font, s.root, size)
	if r.Spacing != 0 {
		tags = append(tags, ass.LetterSpacing(r.Spacing))
	}
	tags = append(tags, scaleTag(s.run.Direction, r.AspectAdjust))

	box := rubyBox(e.width, e.height, font, r, alignment, s.run.Direction)
	dx, dy := RubyOffset(box)
	if e.log.Core().Enabled(zap.DebugLevel) {
		w, h := box.Extent()
		e.log.Debug("Ruby placed",
			zap.String("base", r.Base), zap.String("ruby", r.Ruby),
			zap.Float64("dx", dx), zap.Float64("dy", dy), zap.Float64("width", w), zap.Float64("height", h))
	}
	tags = append(tags, ass.Position{X: x + dx, Y: y + dy})

	return fragment{tags: tags, text: directional(r.Ruby, s.run.Direction), style: style}, nil
}

// fontTags returns tags describing font and style name text should use.
func (e *emitter) fontTags(font cinecanvas.Font, root cinecanvas.FontContext, size float64) ([]ass.Tag, string) {
	tags := []ass.Tag{
		ass.Colour{Slot: ass.PrimarySlot, Color: assColor(font.Color)},
		ass.Alpha{Slot: ass.PrimarySlot, Value: 255 - font.Color.A},
		ass.FontSize(size),
	}

	var style string
	if face, ok := faceOf(root); ok {
		style = face
		if face != font.Face {
			tags = append(tags, ass.FontName(e.fontName(font.Face)))
			style = font.Face
		}
	}
	if style == "" {
		style = font.Face
	}

	tags = append(tags,
		ass.Bold(font.Weight == cinecanvas.TextWeightBold),
		ass.Italic(font.Italic),
		ass.Underline(font.Underline),
	)

	switch font.Effect {
	case cinecanvas.TextEffectBorder:
		tags = append(tags,
			ass.Colour{Slot: ass.OutlineSlot, Color: assColor(font.EffectColor)},
			ass.Alpha{Slot: ass.OutlineSlot, Value: 255 - font.EffectColor.A},
			ass.Border(EffectSize(size, e.width, e.height)),
		)
	case cinecanvas.TextEffectShadow:
		tags = append(tags,
			ass.Colour{Slot: ass.ShadowSlot, Color: assColor(font.EffectColor)},
			ass.Alpha{Slot: ass.ShadowSlot, Value: 255 - font.EffectColor.A},
			ass.Shadow(EffectSize(size, e.width, e.height)),
		)
	}
	return tags, style
}

func faceOf(ctx cinecanvas.FontContext) (string, bool) {
	switch f := ctx.(type) {
	case cinecanvas.Font:
		return f.Face, true
	case cinecanvas.FontOverride:
		return f.FaceName(), true
	}
	return "", false
}

func scaleTag(direction cinecanvas.TextDirection, aspect float64) ass.Tag {
	if direction == cinecanvas.TextDirectionVertical {
		return ass.ScaleY(aspect * 100)
	}
	return ass.ScaleX(aspect * 100)
}

func assColor(c cinecanvas.Color) ass.Color {
	return ass.Color{R: c.R, G: c.G, B: c.B, Alpha: 255 - c.A}
}

// directional turns line breaks into forced breaks, vertical text gets every
// character on its own line.
func directional(text string, direction cinecanvas.TextDirection) string {
	if direction != cinecanvas.TextDirectionVertical {
		return strings.ReplaceAll(text, "\n", forcedBreak)
	}
	var sb strings.Builder
	for _, r := range text {
		if r != '\n' {
			sb.WriteRune(r)
		}
		sb.WriteString(forcedBreak)
	}
	return sb.String()
}
