package cinecanvas

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Parse reads CineCanvas document from stream.
func Parse(r io.Reader, log *zap.Logger) (*Document, error) {
	b := NewBuilder(log)
	if err := Decode(r, b); err != nil {
		return nil, err
	}
	return b.Document()
}

// ParseFile reads CineCanvas document from file on disk.
func ParseFile(path string, log *zap.Logger) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f, log)
}

// ParseTree builds document from etree DOM.
func ParseTree(doc *etree.Document, log *zap.Logger) (*Document, error) {
	if doc == nil || doc.Root() == nil {
		return nil, fmt.Errorf("%w: document has no root element", ErrStructuralViolation)
	}
	b := NewBuilder(log)
	if err := Walk(doc.Root(), b); err != nil {
		return nil, err
	}
	return b.Document()
}

// scopeKind identifies buffer receiving character data.
type scopeKind int

const (
	scopeNone scopeKind = iota
	scopeMeta
	scopeRubyText
	scopeRubyBase
	scopeHGroup
	scopeRotate
	scopeInlineFont
	scopePlain
)

// metaScope captures character data of simple metadata elements.
type metaScope struct {
	name string
	buf  strings.Builder
}

type inlineScope struct {
	font FontOverride
	buf  strings.Builder
}

type rubyScope struct {
	base       strings.Builder
	baseSealed bool
	text       *strings.Builder
	textSealed bool
	ruby       RubyAnnotation
}

type rotateScope struct {
	direction RotateDirection
	buf       strings.Builder
}

// runScope is an open Text element with its nested scopes.
type runScope struct {
	run    TextRun
	plain  strings.Builder
	inline []*inlineScope
	ruby   *rubyScope
	hgroup *strings.Builder
	rotate *rotateScope
}

// Builder implements Handler and assembles Document from events. It is
// single use.
type Builder struct {
	log *zap.Logger

	version  FormatVersion
	id       string
	title    *string
	reel     *int
	language *string
	fonts    []*FontFile
	subs     []Subtitle

	meta      *metaScope
	rootFonts []Font
	// subFonts is rootFonts depth when current Subtitle opened
	subFonts  int
	subtitle  *Subtitle
	run       *runScope
}

func NewBuilder(log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{log: log}
}

var metaElements = map[string]bool{
	"SubtitleID": true,
	"MovieTitle": true,
	"ReelNumber": true,
	"Language":   true,
}

// current returns the single scope character data goes to now. Order
// matters: metadata, ruby text, ruby base, hgroup, rotate, innermost inline
// font, plain run text.
func (b *Builder) current() (scopeKind, *strings.Builder) {
	if b.meta != nil {
		return scopeMeta, &b.meta.buf
	}
	if b.run == nil {
		return scopeNone, nil
	}
	if r := b.run.ruby; r != nil {
		if r.text != nil {
			if r.textSealed {
				return scopeNone, nil
			}
			return scopeRubyText, r.text
		}
		if r.baseSealed {
			return scopeNone, nil
		}
		return scopeRubyBase, &r.base
	}
	if b.run.hgroup != nil {
		return scopeHGroup, b.run.hgroup
	}
	if b.run.rotate != nil {
		return scopeRotate, &b.run.rotate.buf
	}
	if n := len(b.run.inline); n > 0 {
		return scopeInlineFont, &b.run.inline[n-1].buf
	}
	return scopePlain, &b.run.plain
}

func (b *Builder) CharData(data string) error {
	if _, buf := b.current(); buf != nil {
		buf.WriteString(data)
	}
	return nil
}

func (b *Builder) StartElement(name string, list []Attr) error {
	a := attrs(list)

	if metaElements[name] {
		b.meta = &metaScope{name: name}
		return nil
	}

	switch name {
	case "DCSubtitle":
		switch FormatVersion(a.get("Version")) {
		case FormatVersion10:
			b.version = FormatVersion10
		case FormatVersion11:
			b.version = FormatVersion11
		}
	case "LoadFont":
		id, uri := a.get("Id"), a.get("URI")
		if id == "" || uri == "" {
			b.log.Debug("Incomplete LoadFont, ignoring", zap.String("id", id), zap.String("uri", uri))
			return nil
		}
		b.fonts = append(b.fonts, NewFontFile(id, uri))
	case "Font":
		return b.startFont(a)
	case "Subtitle":
		return b.startSubtitle(a)
	case "Text":
		return b.startText(a)
	case "Ruby", "Rb", "Rt", "Space", "HGroup", "Rotate":
		if b.run == nil {
			b.log.Debug("Element outside of Text, ignoring", zap.String("tag", name))
			return nil
		}
		return b.startInline(name, a)
	default:
		b.log.Debug("Unexpected element, ignoring", zap.String("tag", name))
	}
	return nil
}

func (b *Builder) EndElement(name string) error {
	if metaElements[name] {
		if b.meta == nil || b.meta.name != name {
			return nil
		}
		value := strings.TrimSpace(b.meta.buf.String())
		b.meta = nil
		return b.setMeta(name, value)
	}

	switch name {
	case "Font":
		b.endFont()
	case "Ruby":
		b.endRuby()
	case "Rb":
		if b.run != nil && b.run.ruby != nil {
			b.run.ruby.baseSealed = true
		}
	case "Rt":
		if b.run != nil && b.run.ruby != nil && b.run.ruby.text != nil {
			b.run.ruby.textSealed = true
		}
	case "HGroup":
		if b.run != nil && b.run.hgroup != nil {
			b.run.run.Items = append(b.run.run.Items, HorizontalGroup{Text: b.run.hgroup.String()})
			b.run.hgroup = nil
		}
	case "Rotate":
		if b.run != nil && b.run.rotate != nil {
			b.run.run.Items = append(b.run.run.Items, RotatedRun{Text: b.run.rotate.buf.String(), Direction: b.run.rotate.direction})
			b.run.rotate = nil
		}
	case "Text":
		return b.endText()
	case "Subtitle":
		if b.subtitle != nil {
			b.subs = append(b.subs, *b.subtitle)
			b.subtitle = nil
		}
	}
	return nil
}

func (b *Builder) setMeta(name, value string) error {
	switch name {
	case "SubtitleID":
		b.id = value
	case "MovieTitle":
		b.title = &value
	case "ReelNumber":
		reel, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: reel number %q is not a number", ErrInvalidFieldValue, value)
		}
		b.reel = &reel
	case "Language":
		b.language = &value
	}
	return nil
}

func (b *Builder) startFont(a attrs) error {
	if b.run != nil {
		override, err := parseFontOverride(a)
		if err != nil {
			return err
		}
		// text collected so far belongs to enclosing scope
		b.flushPending()
		if n := len(b.run.inline); n > 0 {
			override = override.Over(b.run.inline[n-1].font)
		}
		b.run.inline = append(b.run.inline, &inlineScope{font: override})
		return nil
	}

	override, err := parseFontOverride(a)
	if err != nil {
		return err
	}
	parent := DefaultFont("")
	if n := len(b.rootFonts); n > 0 {
		parent = b.rootFonts[n-1]
	}
	if face := a.get("Id", "Font", "Face"); face != "" {
		override.Face = &face
	}
	font := override.Apply(parent)
	if err := font.Validate(); err != nil {
		return err
	}
	b.rootFonts = append(b.rootFonts, font)
	return nil
}

func (b *Builder) endFont() {
	if b.run != nil && len(b.run.inline) > 0 {
		n := len(b.run.inline)
		scope := b.run.inline[n-1]
		b.run.inline = b.run.inline[:n-1]
		if scope.buf.Len() > 0 {
			b.run.run.Items = append(b.run.run.Items, TextWithFont{Text: scope.buf.String(), Font: scope.font})
		}
		return
	}
	if n := len(b.rootFonts); n > 0 {
		b.rootFonts = b.rootFonts[:n-1]
	}
}

func (b *Builder) startSubtitle(a attrs) error {
	timeIn, okIn := a.lookup("TimeIn")
	timeOut, okOut := a.lookup("TimeOut")
	if !okIn || !okOut {
		return fmt.Errorf("%w: Subtitle is missing TimeIn/TimeOut attributes", ErrMissingRequiredAttribute)
	}

	sub := Subtitle{FadeIn: DefaultFade, FadeOut: DefaultFade}

	var err error
	if sub.Start, err = ParseTiming(timeIn); err != nil {
		return fmt.Errorf("TimeIn: %w", err)
	}
	if sub.End, err = ParseTiming(timeOut); err != nil {
		return fmt.Errorf("TimeOut: %w", err)
	}
	if v, ok := a.lookup("FadeUpTime"); ok {
		if sub.FadeIn, err = ParseTiming(v); err != nil {
			return fmt.Errorf("FadeUpTime: %w", err)
		}
	}
	if v, ok := a.lookup("FadeDownTime"); ok {
		if sub.FadeOut, err = ParseTiming(v); err != nil {
			return fmt.Errorf("FadeDownTime: %w", err)
		}
	}
	sub.Number = a.get("SpotNumber")
	if n := len(b.rootFonts); n > 0 {
		font := b.rootFonts[n-1]
		sub.Font = &font
	}

	if b.subtitle != nil {
		b.log.Debug("Nested Subtitle, previous one is discarded", zap.String("spot", b.subtitle.Number))
	}
	b.subtitle = &sub
	b.subFonts = len(b.rootFonts)
	return nil
}

func (b *Builder) startText(a attrs) error {
	run := TextRun{
		AlignH:    AlignHCenter,
		AlignV:    AlignVBottom,
		Direction: TextDirectionHorizontal,
	}
	if v, err := ParseAlignH(strings.TrimSpace(a.get("HAlign"))); err == nil {
		run.AlignH = v
	}
	if v, err := ParseAlignV(strings.TrimSpace(a.get("VAlign"))); err == nil {
		run.AlignV = v
	}
	if v, err := ParseTextDirection(strings.TrimSpace(a.get("Direction"))); err == nil {
		run.Direction = v
	}

	var err error
	if run.PositionH, err = parseFloatAttr(a, "HPosition", 0); err != nil {
		return err
	}
	if run.PositionV, err = parseFloatAttr(a, "VPosition", 0); err != nil {
		return err
	}

	if n := len(b.rootFonts); b.subtitle != nil && n > b.subFonts {
		font := b.rootFonts[n-1]
		run.Font = &font
	}

	if b.run != nil {
		b.log.Debug("Nested Text, previous content is discarded")
	}
	b.run = &runScope{run: run}
	return nil
}

func (b *Builder) endText() error {
	if b.run == nil {
		return nil
	}
	b.flushPending()
	run := b.run.run
	b.run = nil

	if b.subtitle == nil {
		return fmt.Errorf("%w: Text element found outside Subtitle", ErrStructuralViolation)
	}
	b.subtitle.Runs = append(b.subtitle.Runs, run)
	return nil
}

// startInline handles elements which are only valid inside Text.
func (b *Builder) startInline(name string, a attrs) error {
	switch name {
	case "Ruby":
		b.flushPending()
		b.run.ruby = &rubyScope{ruby: RubyAnnotation{
			Size:         DefaultRubySize,
			Position:     RubyPositionBefore,
			AspectAdjust: DefaultAspectAdjust,
		}}
	case "Rb":
		if b.run.ruby == nil {
			b.log.Debug("Rb outside of Ruby, ignoring")
			return nil
		}
		b.run.ruby.base.Reset()
		b.run.ruby.baseSealed = false
	case "Rt":
		if b.run.ruby == nil {
			b.log.Debug("Rt outside of Ruby, ignoring")
			return nil
		}
		return b.startRubyText(a)
	case "Space":
		b.flushPending()
		size, err := parseEmAttr(a, "Size", DefaultSpacingSize)
		if err != nil {
			return err
		}
		b.run.run.Items = append(b.run.run.Items, Spacing{Size: size})
	case "HGroup":
		b.flushPending()
		b.run.hgroup = &strings.Builder{}
	case "Rotate":
		b.flushPending()
		scope := &rotateScope{}
		switch strings.ToLower(strings.TrimSpace(a.get("Direction"))) {
		case "left":
			scope.direction = RotateDirectionLeft
		case "right":
			scope.direction = RotateDirectionRight
		}
		b.run.rotate = scope
	}
	return nil
}

func (b *Builder) startRubyText(a attrs) error {
	r := &b.run.ruby.ruby

	var err error
	if r.Size, err = parseEmAttr(a, "Size", DefaultRubySize); err != nil {
		return err
	}
	if r.Offset, err = parseEmAttr(a, "Offset", 0); err != nil {
		return err
	}
	if r.Spacing, err = parseEmAttr(a, "Spacing", 0); err != nil {
		return err
	}
	if r.AspectAdjust, err = parseFloatAttr(a, "AspectAdjust", DefaultAspectAdjust); err != nil {
		return err
	}
	r.Position = RubyPositionBefore
	if v, err := ParseRubyPosition(strings.TrimSpace(a.get("Position"))); err == nil {
		r.Position = v
	}

	if r.Offset < MinSpacing {
		return fmt.Errorf("%w: ruby offset must not be less than %.1fem, got %v", ErrInvalidFieldValue, MinSpacing, r.Offset)
	}
	if err := checkSpacing(r.Spacing); err != nil {
		return err
	}
	if err := checkAspectAdjust(r.AspectAdjust); err != nil {
		return err
	}

	b.run.ruby.text = &strings.Builder{}
	b.run.ruby.textSealed = false
	return nil
}

func (b *Builder) endRuby() {
	if b.run == nil || b.run.ruby == nil {
		return
	}
	scope := b.run.ruby
	b.run.ruby = nil

	if scope.text == nil {
		b.log.Debug("Ruby without Rt, keeping base as plain text")
		if scope.base.Len() > 0 {
			b.run.run.Items = append(b.run.run.Items, PlainText{Text: scope.base.String()})
		}
		return
	}
	ruby := scope.ruby
	ruby.Base = scope.base.String()
	ruby.Ruby = scope.text.String()
	b.run.run.Items = append(b.run.run.Items, ruby)
}

// flushPending turns text accumulated by innermost inline font or by the run
// itself into content item.
func (b *Builder) flushPending() {
	if b.run == nil {
		return
	}
	if n := len(b.run.inline); n > 0 {
		scope := b.run.inline[n-1]
		if scope.buf.Len() > 0 {
			b.run.run.Items = append(b.run.run.Items, TextWithFont{Text: scope.buf.String(), Font: scope.font})
			scope.buf.Reset()
		}
		return
	}
	if b.run.plain.Len() > 0 {
		b.run.run.Items = append(b.run.run.Items, PlainText{Text: b.run.plain.String()})
		b.run.plain.Reset()
	}
}

// Document finalizes parsing.
func (b *Builder) Document() (*Document, error) {
	var missing []string
	if b.title == nil {
		missing = append(missing, "MovieTitle")
	}
	if b.reel == nil {
		missing = append(missing, "ReelNumber")
	}
	if b.language == nil {
		missing = append(missing, "Language")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: DCSubtitle metadata %s", ErrMissingRequiredAttribute, strings.Join(missing, ", "))
	}

	doc := &Document{
		ID:        b.id,
		Title:     *b.title,
		Reel:      *b.reel,
		Language:  *b.language,
		Subtitles: b.subs,
		Fonts:     b.fonts,
		Version:   b.version,
	}
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if doc.Version == "" {
		doc.Version = FormatVersion11
	}
	return doc, nil
}

func parseFontOverride(a attrs) (FontOverride, error) {
	var (
		o   FontOverride
		err error
	)
	if face := a.get("Face", "Font", "Family", "Id"); face != "" {
		o.Face = &face
	}
	if o.Color, err = optional(a, "Color", ParseColor); err != nil {
		return o, err
	}
	if o.EffectColor, err = optional(a, "EffectColor", ParseColor); err != nil {
		return o, err
	}
	o.Effect = tolerant(a, "Effect", ParseTextEffect)
	o.Weight = tolerant(a, "Weight", ParseTextWeight)
	o.Script = tolerant(a, "Script", ParseTextScript)
	o.Italic = tolerant(a, "Italic", parseBool)
	o.Underline = tolerant(a, "Underlined", parseBool)
	if o.Size, err = optional(a, "Size", parseInt); err != nil {
		return o, err
	}
	if o.AspectAdjust, err = optional(a, "AspectAdjust", parseFloat); err != nil {
		return o, err
	}
	if o.Spacing, err = optional(a, "Spacing", parseEm); err != nil {
		return o, err
	}
	return o, o.Validate()
}

// optional parses attribute when present, malformed value is an error.
func optional[T any](a attrs, name string, parse func(string) (T, error)) (*T, error) {
	v, ok := a.lookup(name)
	if !ok {
		return nil, nil
	}
	res, err := parse(strings.TrimSpace(v))
	if err != nil {
		return nil, fmt.Errorf("%w: attribute %s: %v", ErrInvalidFieldValue, name, err)
	}
	return &res, nil
}

// tolerant parses attribute when present, unknown value counts as absent.
func tolerant[T any](a attrs, name string, parse func(string) (T, error)) *T {
	v, ok := a.lookup(name)
	if !ok {
		return nil
	}
	res, err := parse(strings.TrimSpace(v))
	if err != nil {
		return nil
	}
	return &res
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("unexpected boolean value %q", v)
}

func parseInt(v string) (int, error) {
	return strconv.Atoi(v)
}

func parseFloat(v string) (float64, error) {
	return strconv.ParseFloat(v, 64)
}

// parseEm accepts plain numbers and numbers with "em" suffix.
func parseEm(v string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(v, "em")), 64)
}

func parseFloatAttr(a attrs, name string, def float64) (float64, error) {
	v, err := optional(a, name, parseFloat)
	if err != nil || v == nil {
		return def, err
	}
	return *v, nil
}

func parseEmAttr(a attrs, name string, def float64) (float64, error) {
	v, err := optional(a, name, parseEm)
	if err != nil || v == nil {
		return def, err
	}
	return *v, nil
}
