package cinecanvas

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Color is RGBA color, CineCanvas serializes it as AARRGGBB hex.
type Color struct {
	R, G, B, A uint8
}

var (
	White = Color{R: 255, G: 255, B: 255, A: 255}
	Black = Color{A: 255}
)

// ParseColor decodes 8 hex digit AARRGGBB value.
func ParseColor(value string) (Color, error) {
	value = strings.TrimSpace(value)
	if len(value) != 8 {
		return Color{}, fmt.Errorf("%w: color hex data must be 8 characters long, got %d", ErrInvalidFieldValue, len(value))
	}
	b, err := hex.DecodeString(value)
	if err != nil {
		return Color{}, fmt.Errorf("%w: color %q: %v", ErrInvalidFieldValue, value, err)
	}
	return Color{A: b[0], R: b[1], G: b[2], B: b[3]}, nil
}

func (c Color) String() string {
	return fmt.Sprintf("%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
}
