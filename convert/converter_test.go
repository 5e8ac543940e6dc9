package convert

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"cc2ass/cinecanvas"
)

type stubLoader map[string]string

func (l stubLoader) LoadName(uri string) (string, error) {
	if name, ok := l[uri]; ok {
		return name, nil
	}
	return "", errors.New("no such font")
}

const header = `<?xml version="1.0" encoding="UTF-8"?>
<DCSubtitle Version="1.1">
  <SubtitleID>urn:uuid:00000000-0000-0000-0000-000000000001</SubtitleID>
  <MovieTitle>Movie</MovieTitle>
  <ReelNumber>1</ReelNumber>
  <Language>en</Language>
  <LoadFont Id="F1" URI="f1.ttf"/>
  <LoadFont Id="F2" URI="f2.ttf"/>
`

func parse(t *testing.T, body string) *cinecanvas.Document {
	t.Helper()
	doc, err := cinecanvas.Parse(strings.NewReader(header+body+"</DCSubtitle>"), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return doc
}

func convert(t *testing.T, doc *cinecanvas.Document, opts Options) *Converter {
	t.Helper()
	if opts.Width == 0 {
		opts.Width, opts.Height = 1920, 1080
	}
	c, err := New(doc, opts, stubLoader{"f1.ttf": "Font One", "f2.ttf": "Font Two"}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestConvertHello(t *testing.T) {
	doc := parse(t, `<Font Id="F1"><Subtitle SpotNumber="1" TimeIn="0:00:00:000" TimeOut="0:00:05:000"><Text>HELLO</Text></Subtitle></Font>`)
	script, err := convert(t, doc, Options{}).Convert()
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if len(script.Events) != 1 {
		t.Fatalf("Events = %+v", script.Events)
	}
	ev := script.Events[0]
	if ev.Layer != 1 || ev.Start != 0 || ev.End != 5*time.Second || ev.Style != "F1" || ev.Effect != "" {
		t.Errorf("event = %+v", ev)
	}
	want := `{\fad(80,80)\an2\pos(960,1080)}{\1c&HFFFFFF&\1a&H00&\fs42\b0\i0\u0\4c&H000000&\4a&H00&\shad3.36\fscx100}HELLO`
	if ev.Text != want {
		t.Errorf("Text =\n%s\nwant\n%s", ev.Text, want)
	}

	if script.Info.Title != "Movie" || script.Info.PlayResX != 1920 || script.Info.PlayResY != 1080 {
		t.Errorf("Info = %+v", script.Info)
	}
	if len(script.Styles) != 2 {
		t.Fatalf("Styles = %+v", script.Styles)
	}
	st := script.Styles[0]
	if st.Name != "F1" || st.Fontname != "Font One" || st.Alignment != 2 || st.Outline != 0 || st.Shadow != 0 || st.MarginV != 0 {
		t.Errorf("Style = %+v", st)
	}
}

func TestConvertInlineColor(t *testing.T) {
	doc := parse(t, `<Font Id="F1"><Subtitle TimeIn="0" TimeOut="100"><Text>a <Font Color="FFFF0000">red</Font> b</Text></Subtitle></Font>`)
	script, err := convert(t, doc, Options{}).Convert()
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if len(script.Events) != 1 {
		t.Fatalf("Events = %+v", script.Events)
	}
	text := script.Events[0].Text
	if !strings.Contains(text, `{\1c&H0000FF&\1a&H00&\fs42`) || !strings.Contains(text, "}red{") {
		t.Errorf("inline color missing: %s", text)
	}
	if strings.Count(text, `\1c&HFFFFFF&`) != 2 {
		t.Errorf("surrounding text must stay white: %s", text)
	}
}

func TestConvertFontName(t *testing.T) {
	doc := parse(t, `<Font Id="F1"><Subtitle TimeIn="0" TimeOut="100"><Text><Font Id="F2" Weight="bold" Effect="border" EffectColor="80102030">x</Font>y</Text></Subtitle></Font>`)
	script, err := convert(t, doc, Options{}).Convert()
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	ev := script.Events[0]
	if ev.Style != "F2" {
		t.Errorf("Style = %q, want style of first content", ev.Style)
	}
	want := `{\1c&HFFFFFF&\1a&H00&\fs42\fnFont Two\b1\i0\u0\3c&H302010&\3a&H7F&\bord3.36\fscx100}x`
	if !strings.Contains(ev.Text, want) {
		t.Errorf("Text = %s\nwant fragment %s", ev.Text, want)
	}
	if strings.Count(ev.Text, `\fn`) != 1 {
		t.Errorf("font name must change only once: %s", ev.Text)
	}
}

func TestConvertRuby(t *testing.T) {
	body := `<Font Id="F1" Size="40"><Subtitle TimeIn="00:00:01:000" TimeOut="00:00:02:000"><Text VAlign="bottom" VPosition="10"><Ruby><Rb>漢字</Rb><Rt Size="0.5">かんじ</Rt></Ruby></Text></Subtitle></Font>`

	t.Run("disabled", func(t *testing.T) {
		script, err := convert(t, parse(t, body), Options{}).Convert()
		if err != nil {
			t.Fatalf("Convert() error = %v", err)
		}
		if len(script.Events) != 1 {
			t.Fatalf("Events = %+v", script.Events)
		}
		if !strings.HasSuffix(script.Events[0].Text, "}漢字") || strings.Contains(script.Events[0].Text, "かんじ") {
			t.Errorf("Text = %s", script.Events[0].Text)
		}
	})

	t.Run("enabled", func(t *testing.T) {
		script, err := convert(t, parse(t, body), Options{Ruby: true}).Convert()
		if err != nil {
			t.Fatalf("Convert() error = %v", err)
		}
		if len(script.Events) != 2 {
			t.Fatalf("Events = %+v", script.Events)
		}
		ruby := script.Events[1]
		if ruby.Layer != 101 || ruby.Effect != "Ruby" || ruby.Style != "F1" || ruby.Start != time.Second {
			t.Errorf("ruby event = %+v", ruby)
		}
		// base box 38.4 x 43.2, ruby 21.6 high
		// anchor is bottom center at (960, 972), ruby center 54 above it
		want := `{\an2\1c&HFFFFFF&\1a&H00&\fs20\b0\i0\u0\4c&H000000&\4a&H00&\shad1.6\fscx100\pos(960,918)}かんじ`
		if ruby.Text != want {
			t.Errorf("Text =\n%s\nwant\n%s", ruby.Text, want)
		}
	})
}

func TestConvertRotate(t *testing.T) {
	doc := parse(t, `<Font Id="F1"><Subtitle TimeIn="0" TimeOut="100"><Text>`+
		`<Rotate Direction="left">L</Rotate><Rotate>U</Rotate><Rotate Direction="right">R</Rotate><Rotate Direction="sideways">S</Rotate>`+
		`</Text></Subtitle></Font>`)
	script, err := convert(t, doc, Options{}).Convert()
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	text := script.Events[0].Text
	for _, want := range []string{`\frz90}L`, `\frz270}U`, `\frz270}R`, `\frz270}S`} {
		if !strings.Contains(text, want) {
			t.Errorf("Text %s missing %s", text, want)
		}
	}
}

func TestConvertVertical(t *testing.T) {
	doc := parse(t, `<Font Id="F1" AspectAdjust="1.5"><Subtitle TimeIn="0" TimeOut="100"><Text Direction="vertical">縦書<HGroup>12</HGroup><Space Size="0.5"/></Text></Subtitle></Font>`)
	script, err := convert(t, doc, Options{}).Convert()
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	text := script.Events[0].Text
	for _, want := range []string{`\fscy150}縦\N書\N`, `\fscy150}12{`, `{\rF1\fscx50}\h`} {
		if !strings.Contains(text, want) {
			t.Errorf("Text %s missing %s", text, want)
		}
	}
}

func TestConvertLineBreaks(t *testing.T) {
	doc := parse(t, "<Font Id=\"F1\" Spacing=\"0.1\"><Subtitle TimeIn=\"0\" TimeOut=\"100\" FadeUpTime=\"0\" FadeDownTime=\"0\"><Text>one\ntwo</Text></Subtitle></Font>")
	script, err := convert(t, doc, Options{}).Convert()
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	text := script.Events[0].Text
	if strings.Contains(text, `\fad`) {
		t.Errorf("zero fades must not produce tag: %s", text)
	}
	if !strings.HasSuffix(text, `\fsp0.1\fscx100}one\Ntwo`) {
		t.Errorf("Text = %s", text)
	}
}

func TestConvertLayers(t *testing.T) {
	doc := parse(t, `<Font Id="F1">
<Subtitle TimeIn="0" TimeOut="100"><Text VPosition="20">first</Text><Text VPosition="10">second</Text></Subtitle>
<Subtitle TimeIn="100" TimeOut="200"><Text>third</Text></Subtitle>
</Font>`)
	script, err := convert(t, doc, Options{}).Convert()
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	var layers []int
	for _, ev := range script.Events {
		layers = append(layers, ev.Layer)
	}
	if !reflect.DeepEqual(layers, []int{1, 2, 1}) {
		t.Errorf("layers = %v", layers)
	}
}

func TestConvertCached(t *testing.T) {
	doc := parse(t, `<Font Id="F1"><Subtitle TimeIn="0" TimeOut="100"><Text>x</Text></Subtitle></Font>`)
	c := convert(t, doc, Options{})
	first, err := c.Convert()
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	second, err := c.Convert()
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if first != second {
		t.Error("second conversion must return cached script")
	}

	other, err := convert(t, doc, Options{}).Convert()
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !reflect.DeepEqual(first.Events, other.Events) {
		t.Error("conversion is not deterministic")
	}
}

func TestConvertRunFont(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		style string
		want  []string
		not   []string
	}{
		{
			name:  "inherits face",
			body:  `<Font Id="F1"><Subtitle TimeIn="0" TimeOut="100"><Font Italic="yes" Color="FFFF0000"><Text>x</Text></Font></Subtitle></Font>`,
			style: "F1",
			want:  []string{`\1c&H0000FF&`, `\i1`},
			not:   []string{`\fn`},
		},
		{
			name:  "other face",
			body:  `<Font Id="F1"><Subtitle TimeIn="0" TimeOut="100"><Font Id="F2" Size="30"><Text>x</Text></Font></Subtitle></Font>`,
			style: "F2",
			want:  []string{`\fs30`, `\fnFont Two`},
		},
		{
			name:  "no subtitle font",
			body:  `<Subtitle TimeIn="0" TimeOut="100"><Font Id="F2" Size="30"><Text>x</Text></Font></Subtitle>`,
			style: "F2",
			want:  []string{`\fs30`},
			not:   []string{`\fn`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script, err := convert(t, parse(t, tt.body), Options{}).Convert()
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			ev := script.Events[0]
			if ev.Style != tt.style {
				t.Errorf("Style = %q, want %q", ev.Style, tt.style)
			}
			for _, w := range tt.want {
				if !strings.Contains(ev.Text, w) {
					t.Errorf("Text = %q, missing %q", ev.Text, w)
				}
			}
			for _, n := range tt.not {
				if strings.Contains(ev.Text, n) {
					t.Errorf("Text = %q, unexpected %q", ev.Text, n)
				}
			}
		})
	}
}

func TestConvertErrors(t *testing.T) {
	t.Run("no font", func(t *testing.T) {
		doc := parse(t, `<Subtitle TimeIn="0" TimeOut="100"><Text>x</Text></Subtitle>`)
		if _, err := convert(t, doc, Options{}).Convert(); !errors.Is(err, ErrUnresolvableFontContext) {
			t.Errorf("Convert() error = %v", err)
		}
	})

	t.Run("bad options", func(t *testing.T) {
		doc := parse(t, "")
		for _, opts := range []Options{{Width: 0, Height: 1080}, {Width: 1920, Height: -1}} {
			if _, err := New(doc, opts, nil, nil); !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("New(%+v) error = %v", opts, err)
			}
		}
		if _, err := New(nil, Options{Width: 1, Height: 1}, nil, nil); !errors.Is(err, ErrInvalidOptions) {
			t.Errorf("New(nil) error = %v", err)
		}
	})

	t.Run("missing fonts", func(t *testing.T) {
		doc := parse(t, "")
		c, err := New(doc, Options{Width: 1920, Height: 1080}, stubLoader{}, zaptest.NewLogger(t))
		if err != nil {
			t.Fatal(err)
		}
		_, err = c.Convert()
		if err == nil || !strings.Contains(err.Error(), "font F1") || !strings.Contains(err.Error(), "font F2") {
			t.Errorf("Convert() error = %v, want both fonts reported", err)
		}
	})

	t.Run("font fallback", func(t *testing.T) {
		doc := parse(t, "")
		c, err := New(doc, Options{Width: 1920, Height: 1080, FontFallback: true}, stubLoader{}, zaptest.NewLogger(t))
		if err != nil {
			t.Fatal(err)
		}
		script, err := c.Convert()
		if err != nil {
			t.Fatalf("Convert() error = %v", err)
		}
		if script.Styles[1].Fontname != "F2" {
			t.Errorf("Styles = %+v", script.Styles)
		}
	})
}

func TestConvertDefaultStyle(t *testing.T) {
	src := `<?xml version="1.0"?><DCSubtitle><MovieTitle>M</MovieTitle><ReelNumber>1</ReelNumber><Language>en</Language>` +
		`<Font Id="X"><Subtitle TimeIn="0" TimeOut="1"><Text>x</Text></Subtitle></Font></DCSubtitle>`
	doc, err := cinecanvas.Parse(strings.NewReader(src), zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	c, err := New(doc, Options{Width: 1920, Height: 1080}, nil, zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	script, err := c.Convert()
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if len(script.Styles) != 1 || script.Styles[0].Name != DefaultStyleName {
		t.Errorf("Styles = %+v", script.Styles)
	}
	if len(script.Events) != 1 || script.Events[0].Style != DefaultStyleName {
		t.Errorf("Events = %+v, want %q style", script.Events, DefaultStyleName)
	}
}

func TestConvertUndeclaredFace(t *testing.T) {
	doc := parse(t, `<Font Id="F9"><Subtitle TimeIn="0" TimeOut="100"><Text>x</Text></Subtitle></Font>`)
	script, err := convert(t, doc, Options{}).Convert()
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if got := script.Events[0].Style; got != "F1" {
		t.Errorf("Style = %q, want first declared style", got)
	}
}
