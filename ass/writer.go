package ass

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	styleFormat = "Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding"
	eventFormat = "Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text"
)

// Write serializes script to w. When bom is set output starts with UTF-8 byte
// order mark.
func (s *Script) Write(w io.Writer, bom bool) error {
	var tw *transform.Writer
	if bom {
		tw = transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
		w = tw
	}

	bw := bufio.NewWriter(w)
	s.writeInfo(bw)
	bw.WriteByte('\n')
	s.writeStyles(bw)
	bw.WriteByte('\n')
	s.writeEvents(bw)
	if err := bw.Flush(); err != nil {
		return err
	}
	if tw != nil {
		return tw.Close()
	}
	return nil
}

// String returns serialized script without BOM.
func (s *Script) String() string {
	var sb strings.Builder
	_ = s.Write(&sb, false)
	return sb.String()
}

func (s *Script) writeInfo(w *bufio.Writer) {
	w.WriteString("[Script Info]\n")
	if s.Info.Comment != "" {
		fmt.Fprintf(w, "; %s\n", s.Info.Comment)
	}
	w.WriteString("ScriptType: v4.00+\n")
	if s.Info.Title != "" {
		fmt.Fprintf(w, "Title: %s\n", field(s.Info.Title))
	}
	fmt.Fprintf(w, "PlayResX: %d\n", s.Info.PlayResX)
	fmt.Fprintf(w, "PlayResY: %d\n", s.Info.PlayResY)
	fmt.Fprintf(w, "WrapStyle: %d\n", s.Info.WrapStyle)
	fmt.Fprintf(w, "ScaledBorderAndShadow: %s\n", yesNo(s.Info.ScaledBorderAndShadow))
}

func (s *Script) writeStyles(w *bufio.Writer) {
	w.WriteString("[V4+ Styles]\n")
	w.WriteString(styleFormat)
	w.WriteByte('\n')
	for _, st := range s.Styles {
		fmt.Fprintf(w, "Style: %s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%d,%s,%s,%d,%d,%d,%d,%d\n",
			field(st.Name), field(st.Fontname), Number(st.Fontsize),
			st.PrimaryColour.ABGR(), st.SecondaryColour.ABGR(), st.OutlineColour.ABGR(), st.BackColour.ABGR(),
			styleFlag(st.Bold), styleFlag(st.Italic), styleFlag(st.Underline), styleFlag(st.StrikeOut),
			Number(st.ScaleX), Number(st.ScaleY), Number(st.Spacing), Number(st.Angle),
			st.BorderStyle, Number(st.Outline), Number(st.Shadow),
			st.Alignment, st.MarginL, st.MarginR, st.MarginV, st.Encoding)
	}
}

func (s *Script) writeEvents(w *bufio.Writer) {
	w.WriteString("[Events]\n")
	w.WriteString(eventFormat)
	w.WriteByte('\n')
	for _, ev := range s.Events {
		fmt.Fprintf(w, "Dialogue: %d,%s,%s,%s,%s,%d,%d,%d,%s,%s\n",
			ev.Layer, FormatTime(ev.Start), FormatTime(ev.End),
			field(ev.Style), field(ev.Name), ev.MarginL, ev.MarginR, ev.MarginV,
			field(ev.Effect), strings.ReplaceAll(ev.Text, "\n", `\N`))
	}
}

// FormatTime renders duration as H:MM:SS.CC, centiseconds are truncated.
func FormatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	cs := d / (10 * time.Millisecond)
	return fmt.Sprintf("%d:%02d:%02d.%02d", cs/360000, (cs/6000)%60, (cs/100)%60, cs%100)
}

// field keeps commas and line breaks from breaking section syntax.
func field(s string) string {
	return strings.NewReplacer(",", ";", "\n", " ", "\r", "").Replace(s)
}

func styleFlag(v bool) string {
	if v {
		return "-1"
	}
	return "0"
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
