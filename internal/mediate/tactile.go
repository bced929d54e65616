package mediate

import (
	"github.com/mj1618/kakao-a11y/internal/model"
)

// Region is one tactile display region.
type Region struct {
	Text   string `yaml:"text"   json:"text"`
	Cursor int    `yaml:"cursor" json:"cursor"`
}

// Point is a screen coordinate.
type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// TactileRegions returns the regions the braille handler should render.
// Tactile-suppressed overlays return an empty, non-nil slice.
func (o *Object) TactileRegions() []Region {
	if !o.policy.Tactile {
		return []Region{}
	}
	text := o.TactileText()
	return []Region{{Text: text, Cursor: len([]rune(text))}}
}

// TactileText returns the text rendered for the object.
func (o *Object) TactileText() string {
	if !o.policy.Tactile {
		return ""
	}
	return describe(o.Name(), string(o.Role()), o.Value())
}

// TactileName returns the name as shown on the braille display.
func (o *Object) TactileName() string {
	if !o.policy.Tactile {
		return ""
	}
	return o.Name()
}

// TactileDescription returns the description as shown on the display.
func (o *Object) TactileDescription() string {
	if !o.policy.Tactile {
		return ""
	}
	return o.Description()
}

// TactileRole returns the role shown on the display, RoleNone when absent.
func (o *Object) TactileRole() model.Role {
	if !o.policy.Tactile {
		return model.RoleNone
	}
	return o.Role()
}

// PositionToPoint maps an offset into TactileText to a screen point. The
// text is laid out in equal-width cells across the object's bounds; an
// offset lands on the centre of its cell, and the end-of-text offset on the
// right edge. ok is false when the mapping is not applicable.
func (o *Object) PositionToPoint(pos int) (p Point, ok bool) {
	b, n, ok := o.layout()
	if !ok || pos < 0 || pos > n {
		return Point{}, false
	}
	y := b[1] + b[3]/2
	if pos == n {
		return Point{X: b[0] + b[2] - 1, Y: y}, true
	}
	return Point{X: b[0] + (2*pos+1)*b[2]/(2*n), Y: y}, true
}

// PointToPosition maps a screen point to the offset of the TactileText cell
// under it. ok is false when the mapping is not applicable or the point is
// outside the object.
func (o *Object) PointToPosition(p Point) (pos int, ok bool) {
	b, n, ok := o.layout()
	if !ok {
		return 0, false
	}
	if p.X < b[0] || p.Y < b[1] || p.X >= b[0]+b[2] || p.Y >= b[1]+b[3] {
		return 0, false
	}
	return (p.X - b[0]) * n / b[2], true
}

// layout returns the bounds and rune count used by the position mapping.
func (o *Object) layout() (b [4]int, n int, ok bool) {
	if !o.policy.Tactile {
		return b, 0, false
	}
	n = len([]rune(o.TactileText()))
	if n == 0 {
		return b, 0, false
	}
	b, ok = o.bounds()
	if !ok || b[2] <= 0 || b[3] <= 0 {
		return b, 0, false
	}
	return b, n, true
}

// bounds reads [x, y, width, height] through the guarded accessor.
func (o *Object) bounds() ([4]int, bool) {
	v, err := o.m.acc.Read(o.remote, model.PropBounds).Get()
	if err != nil {
		return [4]int{}, false
	}
	switch b := v.(type) {
	case [4]int:
		return b, true
	case []int:
		if len(b) == 4 {
			return [4]int{b[0], b[1], b[2], b[3]}, true
		}
	case []any:
		// Decoded scenario files carry untyped lists.
		var out [4]int
		if len(b) != 4 {
			break
		}
		for i, e := range b {
			n, isInt := e.(int)
			if !isInt {
				return [4]int{}, false
			}
			out[i] = n
		}
		return out, true
	}
	return [4]int{}, false
}
