package ass

import (
	"strings"
)

// Line accumulates dialogue text made of override blocks and text.
type Line struct {
	sb strings.Builder
}

// Block writes tags enclosed in braces, nothing is written for empty list.
func (l *Line) Block(tags ...Tag) *Line {
	if len(tags) == 0 {
		return l
	}
	l.sb.WriteByte('{')
	l.sb.WriteString(Join(tags))
	l.sb.WriteByte('}')
	return l
}

// Text writes dialogue text as is.
func (l *Line) Text(s string) *Line {
	l.sb.WriteString(s)
	return l
}

func (l *Line) String() string {
	return l.sb.String()
}

// Join renders tags without braces.
func Join(tags []Tag) string {
	var sb strings.Builder
	for _, t := range tags {
		sb.WriteString(t.String())
	}
	return sb.String()
}
