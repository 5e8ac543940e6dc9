package cinecanvas

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Attr is element attribute as delivered by event source.
type Attr struct {
	Name  string
	Value string
}

// Handler receives parse events in document order.
type Handler interface {
	StartElement(name string, attrs []Attr) error
	EndElement(name string) error
	CharData(data string) error
}

// Decode reads XML from r and feeds its events to h. Leading BOM is skipped,
// non UTF-8 encodings declared in prolog are converted.
func Decode(r io.Reader, h Handler) error {
	dec := xml.NewDecoder(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	dec.CharsetReader = charset.NewReaderLabel

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			attrs := make([]Attr, 0, len(t.Attr))
			for _, a := range t.Attr {
				attrs = append(attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
			err = h.StartElement(t.Name.Local, attrs)
		case xml.EndElement:
			err = h.EndElement(t.Name.Local)
		case xml.CharData:
			err = h.CharData(string(t))
		}
		if err != nil {
			line, col := dec.InputPos()
			return fmt.Errorf("line %d, column %d: %w", line, col, err)
		}
	}
}

// Walk feeds events of already parsed DOM subtree to h.
func Walk(el *etree.Element, h Handler) error {
	if el == nil {
		return nil
	}
	attrs := make([]Attr, 0, len(el.Attr))
	for _, a := range el.Attr {
		attrs = append(attrs, Attr{Name: a.Key, Value: a.Value})
	}
	if err := h.StartElement(el.Tag, attrs); err != nil {
		return fmt.Errorf("%s: %w", el.GetPath(), err)
	}
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.Element:
			if err := Walk(t, h); err != nil {
				return err
			}
		case *etree.CharData:
			if err := h.CharData(t.Data); err != nil {
				return fmt.Errorf("%s: %w", el.GetPath(), err)
			}
		}
	}
	if err := h.EndElement(el.Tag); err != nil {
		return fmt.Errorf("%s: %w", el.GetPath(), err)
	}
	return nil
}

// attrs gives case insensitive access to element attributes.
type attrs []Attr

func (a attrs) lookup(names ...string) (string, bool) {
	for _, name := range names {
		for _, attr := range a {
			if strings.EqualFold(attr.Name, name) {
				return attr.Value, true
			}
		}
	}
	return "", false
}

// get returns first non-empty value among names.
func (a attrs) get(names ...string) string {
	for _, name := range names {
		if v, ok := a.lookup(name); ok && v != "" {
			return v
		}
	}
	return ""
}

// RootElement is document element of CineCanvas subtitles.
const RootElement = "DCSubtitle"

var errRootSeen = errors.New("root element seen")

type rootSniffer struct{ name string }

func (s *rootSniffer) StartElement(name string, _ []Attr) error {
	s.name = name
	return errRootSeen
}

func (*rootSniffer) EndElement(string) error { return nil }
func (*rootSniffer) CharData(string) error   { return nil }

// Detect reports whether r holds CineCanvas subtitles judging by its root
// element. Only the beginning of the stream is read.
func Detect(r io.Reader) (bool, error) {
	var s rootSniffer
	if err := Decode(r, &s); err != nil && !errors.Is(err, errRootSeen) {
		return false, err
	}
	return s.name == RootElement, nil
}
