package cinecanvas

import (
	"cc2ass/utils/debug"
)

// String renders document tree for debugging.
func (d *Document) String() string {
	tw := debug.NewTreeWriter()

	tw.Line(0, "DCSubtitle %s", d.Version)
	tw.Text(1, "id", d.ID)
	tw.Text(1, "title", d.Title)
	tw.Line(1, "reel: %d", d.Reel)
	tw.Text(1, "language", d.Language)

	if len(d.Fonts) > 0 {
		tw.Line(1, "Fonts (%d)", len(d.Fonts))
		for _, f := range d.Fonts {
			tw.Node(2, "LoadFont", "id", f.ID, "uri", f.URI)
		}
	}

	tw.Line(1, "Subtitles (%d)", len(d.Subtitles))
	for i := range d.Subtitles {
		sub := &d.Subtitles[i]
		tw.Node(2, "Subtitle", "number", sub.Number, "in", sub.Start, "out", sub.End,
			"fadein", sub.FadeIn.Milliseconds(), "fadeout", sub.FadeOut.Milliseconds())
		if sub.Font != nil {
			dumpFont(tw, 3, *sub.Font)
		}
		for _, run := range sub.Runs {
			tw.Node(3, "Text", "halign", run.AlignH, "valign", run.AlignV,
				"hpos", run.PositionH, "vpos", run.PositionV, "direction", run.Direction)
			if run.Font != nil {
				dumpFont(tw, 4, *run.Font)
			}
			for _, item := range run.Items {
				dumpItem(tw, 4, item)
			}
		}
	}
	return tw.String()
}

func dumpFont(tw *debug.TreeWriter, depth int, f Font) {
	tw.Node(depth, "Font", "face", f.Face, "size", f.Size, "color", f.Color,
		"effect", f.Effect, "effectcolor", f.EffectColor, "weight", f.Weight,
		"italic", f.Italic, "underline", f.Underline, "script", f.Script,
		"aspect", f.AspectAdjust, "spacing", f.Spacing)
}

func dumpOverride(tw *debug.TreeWriter, depth int, o FontOverride) {
	var pairs []any
	add := func(name string, set bool, v func() any) {
		if set {
			pairs = append(pairs, name, v())
		}
	}
	add("face", o.Face != nil, func() any { return *o.Face })
	add("size", o.Size != nil, func() any { return *o.Size })
	add("color", o.Color != nil, func() any { return *o.Color })
	add("effect", o.Effect != nil, func() any { return *o.Effect })
	add("effectcolor", o.EffectColor != nil, func() any { return *o.EffectColor })
	add("weight", o.Weight != nil, func() any { return *o.Weight })
	add("italic", o.Italic != nil, func() any { return *o.Italic })
	add("underline", o.Underline != nil, func() any { return *o.Underline })
	add("script", o.Script != nil, func() any { return *o.Script })
	add("aspect", o.AspectAdjust != nil, func() any { return *o.AspectAdjust })
	add("spacing", o.Spacing != nil, func() any { return *o.Spacing })
	tw.Node(depth, "Override", pairs...)
}

func dumpItem(tw *debug.TreeWriter, depth int, item ContentItem) {
	switch it := item.(type) {
	case PlainText:
		tw.Text(depth, "PlainText", it.Text)
	case TextWithFont:
		tw.Text(depth, "TextWithFont", it.Text)
		dumpOverride(tw, depth+1, it.Font)
	case RubyAnnotation:
		tw.Node(depth, "Ruby", "base", it.Base, "ruby", it.Ruby, "size", it.Size,
			"position", it.Position, "offset", it.Offset, "spacing", it.Spacing, "aspect", it.AspectAdjust)
	case Spacing:
		tw.Node(depth, "Space", "size", it.Size)
	case HorizontalGroup:
		tw.Text(depth, "HGroup", it.Text)
	case RotatedRun:
		tw.Node(depth, "Rotate", "direction", it.Direction, "text", it.Text)
	default:
		tw.Line(depth, "unknown content %T", item)
	}
}
