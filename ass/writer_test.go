package ass

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00:00.00"},
		{5 * time.Second, "0:00:05.00"},
		{1500 * time.Millisecond, "0:00:01.50"},
		{1999 * time.Millisecond, "0:00:01.99"},
		{time.Hour + 2*time.Minute + 3*time.Second + 40*time.Millisecond, "1:02:03.04"},
		{12 * time.Hour, "12:00:00.00"},
		{-time.Second, "0:00:00.00"},
	}
	for _, tt := range tests {
		if got := FormatTime(tt.in); got != tt.want {
			t.Errorf("FormatTime(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func sampleScript() *Script {
	st := NewStyle("F1", "Go Regular")
	st.MarginL, st.MarginR, st.MarginV = 0, 0, 0
	st.Outline, st.Shadow = 0, 0
	return &Script{
		Info:   ScriptInfo{Title: "Movie, reel 1", PlayResX: 1920, PlayResY: 1080, ScaledBorderAndShadow: true},
		Styles: []Style{st},
		Events: []Event{
			{Layer: 1, Start: 0, End: 5 * time.Second, Style: "F1", Text: `{\an2}HELLO`},
			{Layer: 101, Start: time.Second, End: 2 * time.Second, Style: "F1", Effect: "Ruby", Text: "a\nb"},
		},
	}
}

func TestScriptWrite(t *testing.T) {
	got := sampleScript().String()

	want := `[Script Info]
ScriptType: v4.00+
Title: Movie; reel 1
PlayResX: 1920
PlayResY: 1080
WrapStyle: 0
ScaledBorderAndShadow: yes

[V4+ Styles]
` + styleFormat + `
Style: F1,Go Regular,20,&H00FFFFFF,&H000000FF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,0,0,2,0,0,0,1

[Events]
` + eventFormat + `
Dialogue: 1,0:00:00.00,0:00:05.00,F1,,0,0,0,,{\an2}HELLO
Dialogue: 101,0:00:01.00,0:00:02.00,F1,,0,0,0,Ruby,a\Nb
`
	if got != want {
		t.Errorf("Write():\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestScriptWriteBOM(t *testing.T) {
	var withBOM, without bytes.Buffer
	if err := sampleScript().Write(&withBOM, true); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := sampleScript().Write(&without, false); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	bom := []byte{0xEF, 0xBB, 0xBF}
	if !bytes.HasPrefix(withBOM.Bytes(), bom) {
		t.Errorf("missing BOM: % X", withBOM.Bytes()[:3])
	}
	if bytes.HasPrefix(without.Bytes(), bom) {
		t.Error("unexpected BOM")
	}
	if !bytes.Equal(withBOM.Bytes()[3:], without.Bytes()) {
		t.Error("content differs apart from BOM")
	}
}

func TestScriptComment(t *testing.T) {
	s := sampleScript()
	s.Info.Comment = "generated"
	if !strings.HasPrefix(s.String(), "[Script Info]\n; generated\nScriptType") {
		t.Errorf("comment not written:\n%s", s.String())
	}
}
