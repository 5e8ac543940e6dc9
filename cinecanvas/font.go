package cinecanvas

import (
	"fmt"
)

const (
	DefaultFontSize     = 42
	DefaultAspectAdjust = 1.0

	MinAspectAdjust = 0.25
	MaxAspectAdjust = 4.0
	MinSpacing      = -1.0
)

// FontContext is either fully resolved Font or partial FontOverride. Nil
// FontContext means "no font information available".
type FontContext interface {
	fontContext()
}

// Font is fully resolved text style.
type Font struct {
	// Face refers to FontFile id.
	Face         string
	Color        Color
	Effect       TextEffect
	EffectColor  Color
	Italic       bool
	Weight       TextWeight
	Script       TextScript
	Size         int
	AspectAdjust float64
	Underline    bool
	// Spacing is additional space between rendered characters in em.
	Spacing float64
}

func (Font) fontContext() {}

// DefaultFont returns font with CineCanvas defaults for the given face.
func DefaultFont(face string) Font {
	return Font{
		Face:         face,
		Color:        White,
		Effect:       TextEffectShadow,
		EffectColor:  Black,
		Weight:       TextWeightNormal,
		Script:       TextScriptNormal,
		Size:         DefaultFontSize,
		AspectAdjust: DefaultAspectAdjust,
	}
}

// Validate checks value ranges.
func (f Font) Validate() error {
	if err := checkSize(f.Size); err != nil {
		return err
	}
	if err := checkSpacing(f.Spacing); err != nil {
		return err
	}
	return checkAspectAdjust(f.AspectAdjust)
}

// FontOverride carries only the fields that were explicitly set.
type FontOverride struct {
	Face         *string
	Color        *Color
	Effect       *TextEffect
	EffectColor  *Color
	Italic       *bool
	Weight       *TextWeight
	Script       *TextScript
	Size         *int
	AspectAdjust *float64
	Underline    *bool
	Spacing      *float64
}

func (FontOverride) fontContext() {}

func (o FontOverride) Validate() error {
	if o.Size != nil {
		if err := checkSize(*o.Size); err != nil {
			return err
		}
	}
	if o.Spacing != nil {
		if err := checkSpacing(*o.Spacing); err != nil {
			return err
		}
	}
	if o.AspectAdjust != nil {
		return checkAspectAdjust(*o.AspectAdjust)
	}
	return nil
}

// FaceName returns override face or empty string.
func (o FontOverride) FaceName() string {
	if o.Face == nil {
		return ""
	}
	return *o.Face
}

// Apply merges override onto parent: every set field wins, the rest comes
// from parent. Parent is never modified.
func (o FontOverride) Apply(parent Font) Font {
	return Font{
		Face:         pick(o.Face, parent.Face),
		Color:        pick(o.Color, parent.Color),
		Effect:       pick(o.Effect, parent.Effect),
		EffectColor:  pick(o.EffectColor, parent.EffectColor),
		Italic:       pick(o.Italic, parent.Italic),
		Weight:       pick(o.Weight, parent.Weight),
		Script:       pick(o.Script, parent.Script),
		Size:         pick(o.Size, parent.Size),
		AspectAdjust: pick(o.AspectAdjust, parent.AspectAdjust),
		Underline:    pick(o.Underline, parent.Underline),
		Spacing:      pick(o.Spacing, parent.Spacing),
	}
}

// Over layers override on top of another partial override.
func (o FontOverride) Over(parent FontOverride) FontOverride {
	return FontOverride{
		Face:         first(o.Face, parent.Face),
		Color:        first(o.Color, parent.Color),
		Effect:       first(o.Effect, parent.Effect),
		EffectColor:  first(o.EffectColor, parent.EffectColor),
		Italic:       first(o.Italic, parent.Italic),
		Weight:       first(o.Weight, parent.Weight),
		Script:       first(o.Script, parent.Script),
		Size:         first(o.Size, parent.Size),
		AspectAdjust: first(o.AspectAdjust, parent.AspectAdjust),
		Underline:    first(o.Underline, parent.Underline),
		Spacing:      first(o.Spacing, parent.Spacing),
	}
}

func pick[T any](v *T, def T) T {
	if v != nil {
		return *v
	}
	return def
}

func first[T any](v, alt *T) *T {
	if v != nil {
		return v
	}
	return alt
}

func checkSize(v int) error {
	if v <= 0 {
		return fmt.Errorf("%w: font size must be positive, got %d", ErrInvalidFieldValue, v)
	}
	return nil
}

func checkSpacing(v float64) error {
	if v < MinSpacing {
		return fmt.Errorf("%w: spacing must not be less than %.1fem, got %v", ErrInvalidFieldValue, MinSpacing, v)
	}
	return nil
}

func checkAspectAdjust(v float64) error {
	if v < MinAspectAdjust || v > MaxAspectAdjust {
		return fmt.Errorf("%w: aspect adjust must be between %.2f-%.1f, got %v", ErrInvalidFieldValue, MinAspectAdjust, MaxAspectAdjust, v)
	}
	return nil
}
