package cinecanvas

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		value string
		want  Color
	}{
		{value: "FFFFFFFF", want: White},
		{value: "FF000000", want: Black},
		{value: "FFFF0000", want: Color{A: 255, R: 255}},
		{value: "80123456", want: Color{A: 0x80, R: 0x12, G: 0x34, B: 0x56}},
		{value: "00abcdef", want: Color{R: 0xab, G: 0xcd, B: 0xef}},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseColor(tt.value)
			if err != nil {
				t.Fatalf("ParseColor(%q) error = %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.value, got, tt.want)
			}
		})
	}
}

func TestParseColorComponents(t *testing.T) {
	// every component value survives in every slot
	for v := 0; v < 256; v++ {
		value := fmt.Sprintf("%02X%02X%02X%02X", v, 255-v, v/2, v)
		c, err := ParseColor(value)
		if err != nil {
			t.Fatalf("ParseColor(%q) error = %v", value, err)
		}
		if int(c.A) != v || int(c.R) != 255-v || int(c.G) != v/2 || int(c.B) != v {
			t.Fatalf("ParseColor(%q) = %+v", value, c)
		}
		if c.String() != value {
			t.Fatalf("String() = %q, want %q", c.String(), value)
		}
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, value := range []string{"", "FFF", "FFFFFF", "FFFFFFFFF", "GGFFFFFF", "0xFFFFFF"} {
		t.Run(value, func(t *testing.T) {
			if _, err := ParseColor(value); !errors.Is(err, ErrInvalidFieldValue) {
				t.Errorf("ParseColor(%q) error = %v, want ErrInvalidFieldValue", value, err)
			}
		})
	}
}
