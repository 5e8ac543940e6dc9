// Package debug renders parsed structures as indented text for dumps and
// debug reports.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

// Indent is written once per depth level.
const Indent = "  "

// TreeWriter accumulates indented tree lines.
type TreeWriter struct {
	sb *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{sb: &strings.Builder{}}
}

func (tw *TreeWriter) String() string {
	return tw.sb.String()
}

func (tw *TreeWriter) pad(depth int) {
	for range depth {
		tw.sb.WriteString(Indent)
	}
}

// Line writes formatted line at depth.
func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.pad(depth)
	fmt.Fprintf(tw.sb, format, args...)
	tw.sb.WriteByte('\n')
}

// Text writes label with quoted value, empty value stays unquoted.
func (tw *TreeWriter) Text(depth int, label, value string) {
	tw.pad(depth)
	tw.sb.WriteString(label)
	tw.sb.WriteString(": ")
	tw.sb.WriteString(quote(value))
	tw.sb.WriteByte('\n')
}

// Node writes node kind followed by key=value pairs. Pairs are given as
// alternating keys and values, pairs with nil value are skipped.
func (tw *TreeWriter) Node(depth int, kind string, pairs ...any) {
	tw.pad(depth)
	tw.sb.WriteString(kind)
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == nil {
			continue
		}
		fmt.Fprintf(tw.sb, " %v=", pairs[i])
		switch v := pairs[i+1].(type) {
		case string:
			tw.sb.WriteString(strconv.Quote(v))
		default:
			fmt.Fprint(tw.sb, v)
		}
	}
	tw.sb.WriteByte('\n')
}

func quote(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
