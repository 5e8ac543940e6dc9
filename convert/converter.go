package convert

import (
	"fmt"
	"slices"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cc2ass/ass"
	"cc2ass/cinecanvas"
	"cc2ass/misc"
)

const (
	// DefaultStyleName is used when document declares no fonts.
	DefaultStyleName = "Default"
	defaultFontName  = "Arial"

	rubyLayerOffset = 100
	rubyEffect      = "Ruby"
)

// Options controls conversion.
type Options struct {
	Width  int
	Height int
	// Ruby enables experimental ruby annotation lines.
	Ruby bool
	// FontFallback uses font id as font name when font resource cannot be
	// loaded instead of failing conversion.
	FontFallback bool
}

// Converter turns parsed document into ASS script. Result of the successful
// conversion is kept and returned by subsequent calls.
type Converter struct {
	doc    *cinecanvas.Document
	opts   Options
	loader cinecanvas.FontLoader
	log    *zap.Logger

	names  map[string]string
	done   bool
	script *ass.Script
}

// New creates converter. Loader may be nil, then font ids are used as font
// names.
func New(doc *cinecanvas.Document, opts Options, loader cinecanvas.FontLoader, log *zap.Logger) (*Converter, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: no document", ErrInvalidOptions)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: frame size must be positive, got %dx%d", ErrInvalidOptions, opts.Width, opts.Height)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Converter{doc: doc, opts: opts, loader: loader, log: log}, nil
}

// Convert produces the script. Either complete script or error is returned.
func (c *Converter) Convert() (*ass.Script, error) {
	if c.done {
		return c.script, nil
	}

	styles, err := c.styles()
	if err != nil {
		return nil, err
	}

	e := &emitter{
		width:    c.opts.Width,
		height:   c.opts.Height,
		fontName: c.fontName,
		log:      c.log,
	}

	var events []ass.Event
	for i := range c.doc.Subtitles {
		evs, err := c.subtitle(e, &c.doc.Subtitles[i])
		if err != nil {
			return nil, fmt.Errorf("subtitle %d (%s): %w", i+1, c.doc.Subtitles[i].Number, err)
		}
		events = append(events, evs...)
	}

	c.script = &ass.Script{
		Info: ass.ScriptInfo{
			Title:                 c.doc.Title,
			PlayResX:              c.opts.Width,
			PlayResY:              c.opts.Height,
			Comment:               fmt.Sprintf("Script generated by %s %s", misc.GetAppName(), misc.GetVersion()),
			ScaledBorderAndShadow: true,
		},
		Styles: styles,
		Events: events,
	}
	c.done = true

	c.log.Debug("Document converted", zap.Int("styles", len(styles)), zap.Int("events", len(events)))
	return c.script, nil
}

// styles makes one style per declared font. All fonts are attempted before
// failing.
func (c *Converter) styles() ([]ass.Style, error) {
	c.names = make(map[string]string, len(c.doc.Fonts))

	var (
		styles []ass.Style
		errs   error
	)
	for _, f := range c.doc.Fonts {
		name := f.ID
		if c.loader != nil {
			n, err := f.DisplayName(c.loader)
			switch {
			case err == nil:
				name = n
			case c.opts.FontFallback:
				c.log.Warn("Unable to load font, using its id as name", zap.String("id", f.ID), zap.String("uri", f.URI), zap.Error(err))
			default:
				errs = multierr.Append(errs, fmt.Errorf("font %s: %w", f.ID, err))
				continue
			}
		}
		c.names[f.ID] = name
		styles = append(styles, newStyle(f.ID, name))
	}
	if errs != nil {
		return nil, errs
	}
	if len(styles) == 0 {
		styles = append(styles, newStyle(DefaultStyleName, defaultFontName))
	}
	return styles, nil
}

func newStyle(name, fontname string) ass.Style {
	st := ass.NewStyle(name, fontname)
	st.MarginL, st.MarginR, st.MarginV = 0, 0, 0
	st.Alignment = 2
	st.Outline, st.Shadow = 0, 0
	return st
}

func (c *Converter) fontName(face string) string {
	if name, ok := c.names[face]; ok {
		return name
	}
	return face
}

// subtitle produces primary event per text run followed by its ruby events.
func (c *Converter) subtitle(e *emitter, sub *cinecanvas.Subtitle) ([]ass.Event, error) {
	root := fontContext(sub.Font)
	start, end := sub.Start.Duration(), sub.End.Duration()

	var prefix []ass.Tag
	fadeIn, fadeOut := sub.FadeIn.Milliseconds(), sub.FadeOut.Milliseconds()
	if fadeIn > 0 || fadeOut > 0 {
		prefix = append(prefix, ass.Fade{In: fadeIn, Out: fadeOut})
	}

	var events []ass.Event
	for i := range sub.Runs {
		run := &sub.Runs[i]
		layer := i + 1

		x, y := Position(run.PositionH, run.PositionV, c.opts.Width, c.opts.Height, run.AlignH, run.AlignV)
		alignment := Alignment(run.AlignH, run.AlignV)

		// run font shadows subtitle font
		base := fontContext(run.Font)
		if base == nil {
			base = root
		}
		inherited := root
		if inherited == nil {
			inherited = base
		}
		s := scope{run: run, font: base, root: inherited, direction: run.Direction}

		var line ass.Line
		line.Block(append(slices.Clip(prefix), ass.Alignment(alignment), ass.Position{X: x, Y: y})...)

		var (
			style string
			rubys []ass.Event
		)
		for _, item := range run.Items {
			frag, err := e.content(item, s)
			if err != nil {
				return nil, fmt.Errorf("text %d: %w", layer, err)
			}
			line.Block(frag.tags...).Text(frag.text)
			if style == "" {
				style = frag.style
			}

			ruby, ok := item.(cinecanvas.RubyAnnotation)
			if !ok || !c.opts.Ruby {
				continue
			}
			rf, err := e.ruby(ruby, s, x, y, alignment)
			if err != nil {
				return nil, fmt.Errorf("text %d ruby: %w", layer, err)
			}
			if rf.style == "" {
				rf.style = style
			}
			rf.style = c.eventStyle(rf.style)
			var rl ass.Line
			rl.Block(append([]ass.Tag{ass.Alignment(alignment)}, rf.tags...)...).Text(rf.text)
			rubys = append(rubys, ass.Event{
				Layer:  layer + rubyLayerOffset,
				Start:  start,
				End:    end,
				Style:  rf.style,
				Effect: rubyEffect,
				Text:   rl.String(),
			})
		}
		style = c.eventStyle(style)

		events = append(events, ass.Event{
			Layer: layer,
			Start: start,
			End:   end,
			Style: style,
			Text:  line.String(),
		})
		events = append(events, rubys...)
	}
	return events, nil
}

// eventStyle makes sure event refers to style present in script.
func (c *Converter) eventStyle(style string) string {
	if _, ok := c.names[style]; ok {
		return style
	}
	return c.defaultStyle()
}

func (c *Converter) defaultStyle() string {
	if len(c.doc.Fonts) > 0 {
		return c.doc.Fonts[0].ID
	}
	return DefaultStyleName
}
