package convert

import (
	"math"

	"cc2ass/cinecanvas"
)

const (
	referenceWidth  = 1920
	referenceHeight = 1080

	effectRatio    = 0.08
	minEffectSize  = 1.0
	maxEffectRatio = 0.2

	// rough glyph box relative to frame, not real metrics
	baseWidthRatio  = 0.8
	baseHeightRatio = 1.6
	// advance of a single non CJK ruby glyph relative to its height
	rubyGlyphAspect = 0.6
)

// Alignment maps text anchor onto numpad grid used by \an.
func Alignment(h cinecanvas.AlignH, v cinecanvas.AlignV) int {
	switch v {
	case cinecanvas.AlignVCenter:
		return 5 + h.Shift()
	case cinecanvas.AlignVBottom:
		return 2 + h.Shift()
	case cinecanvas.AlignVTop:
		return 8 + h.Shift()
	}
	return 2
}

// Position converts percentage offsets into pixel coordinates of the anchor.
func Position(posH, posV float64, width, height int, h cinecanvas.AlignH, v cinecanvas.AlignV) (x, y float64) {
	w, ht := float64(width), float64(height)

	switch h {
	case cinecanvas.AlignHRight:
		x = w - clamp(posH, 0, 100)/100*w
	case cinecanvas.AlignHCenter:
		x = w/2 + clamp(posH, -100, 100)/100*w
	default:
		x = clamp(posH, 0, 100) / 100 * w
	}

	switch v {
	case cinecanvas.AlignVBottom:
		y = ht - clamp(posV, 0, 100)/100*ht
	case cinecanvas.AlignVCenter:
		y = ht/2 + clamp(posV, -100, 100)/100*ht
	default:
		y = clamp(posV, 0, 100) / 100 * ht
	}
	return round2(x), round2(y)
}

// EffectSize returns border or shadow thickness for font size scaled to frame.
func EffectSize(fontSize float64, width, height int) float64 {
	scale := math.Min(float64(width)/referenceWidth, float64(height)/referenceHeight)
	size := math.Max(fontSize*effectRatio*scale, minEffectSize)
	size = math.Min(size, fontSize*maxEffectRatio)
	return round2(size)
}

// RubyBox describes base text and annotation for RubyOffset.
type RubyBox struct {
	// BaseWidth and BaseHeight are approximate base box dimensions.
	BaseWidth  float64
	BaseHeight float64
	Scale      float64
	Chars      int
	Alignment  int
	Direction  cinecanvas.TextDirection
	Position   cinecanvas.RubyPosition
	// Buffer is gap between base box and ruby box.
	Buffer float64
}

var anchors = map[int][2]float64{
	1: {0, 1}, 2: {0.5, 1}, 3: {1, 1},
	4: {0, 0.5}, 5: {0.5, 0.5}, 6: {1, 0.5},
	7: {0, 0}, 8: {0.5, 0}, 9: {1, 0},
}

// RubyOffset returns displacement of ruby anchor from base anchor which puts
// ruby box outside of base box. Horizontal text gets ruby above (before) or
// below (after), vertical text to the right (before) or to the left (after).
func RubyOffset(b RubyBox) (dx, dy float64) {
	anchor, ok := anchors[b.Alignment]
	if !ok {
		anchor = anchors[2]
	}
	centerX := b.BaseWidth * (0.5 - anchor[0])
	centerY := b.BaseHeight * (0.5 - anchor[1])

	if b.Direction == cinecanvas.TextDirectionVertical {
		rubyW := b.BaseWidth * b.Scale
		dist := b.BaseWidth/2 + b.Buffer + rubyW/2
		if b.Position == cinecanvas.RubyPositionAfter {
			dist = -dist
		}
		return centerX + dist, centerY
	}

	rubyH := b.BaseHeight * b.Scale
	dist := b.BaseHeight/2 + b.Buffer + rubyH/2
	if b.Position != cinecanvas.RubyPositionAfter {
		dist = -dist
	}
	return centerX, centerY + dist
}

// Extent returns approximate size of ruby box.
func (b RubyBox) Extent() (w, h float64) {
	if b.Direction == cinecanvas.TextDirectionVertical {
		w = b.BaseWidth * b.Scale
		return w, w * rubyGlyphAspect * float64(b.Chars)
	}
	h = b.BaseHeight * b.Scale
	return h * rubyGlyphAspect * float64(b.Chars), h
}

// rubyBox builds approximate geometry for ruby annotated base text.
func rubyBox(width, height int, font cinecanvas.Font, ruby cinecanvas.RubyAnnotation, alignment int, direction cinecanvas.TextDirection) RubyBox {
	size := float64(font.Size)
	if size <= 0 {
		// box is inversely proportional to size
		size = cinecanvas.DefaultFontSize
	}
	return RubyBox{
		BaseWidth:  float64(width) / size * baseWidthRatio,
		BaseHeight: float64(height) / size * baseHeightRatio,
		Scale:      ruby.Size,
		Chars:      len([]rune(ruby.Ruby)),
		Alignment:  alignment,
		Direction:  direction,
		Position:   ruby.Position,
		Buffer:     size / 100 * (ruby.Offset * size),
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
