package convert

import (
	"fmt"

	"cc2ass/cinecanvas"
)

// Resolve merges local font context with inherited one. Nil contexts mean
// "nothing known".
//
//   - no local: inherited is used as is, an inherited override must carry face
//   - resolved local: wins outright, inherited is ignored
//   - override on override: merged field by field, result must carry face
//   - override on resolved: override fields win, the rest is inherited
//   - override alone: face is required to start from defaults
func Resolve(local, inherited cinecanvas.FontContext) (cinecanvas.Font, error) {
	switch l := local.(type) {
	case nil:
		switch p := inherited.(type) {
		case nil:
			return cinecanvas.Font{}, fmt.Errorf("%w: no font information available", ErrUnresolvableFontContext)
		case cinecanvas.Font:
			return p, nil
		case cinecanvas.FontOverride:
			return upgrade(p)
		default:
			return cinecanvas.Font{}, fmt.Errorf("%w: font context %T", ErrUnsupportedContent, inherited)
		}

	case cinecanvas.Font:
		return l, nil

	case cinecanvas.FontOverride:
		switch p := inherited.(type) {
		case nil:
			return upgrade(l)
		case cinecanvas.Font:
			return l.Apply(p), nil
		case cinecanvas.FontOverride:
			return upgrade(l.Over(p))
		default:
			return cinecanvas.Font{}, fmt.Errorf("%w: font context %T", ErrUnsupportedContent, inherited)
		}

	default:
		return cinecanvas.Font{}, fmt.Errorf("%w: font context %T", ErrUnsupportedContent, local)
	}
}

// upgrade turns standalone override into resolved font.
func upgrade(o cinecanvas.FontOverride) (cinecanvas.Font, error) {
	face := o.FaceName()
	if face == "" {
		return cinecanvas.Font{}, fmt.Errorf("%w: font override without face and no inherited font", ErrUnresolvableFontContext)
	}
	return o.Apply(cinecanvas.DefaultFont(face)), nil
}

// fontContext converts optional pointers into FontContext keeping nil
// interface for absent values.
func fontContext[T cinecanvas.Font | cinecanvas.FontOverride](v *T) cinecanvas.FontContext {
	if v == nil {
		return nil
	}
	return any(*v).(cinecanvas.FontContext)
}
