// Package anim sequences entrance, exit, looping and interaction animations
// for UI elements. Elements are driven by lifecycle events from the view
// layer and by a monotonic frame clock; the package never generates events
// itself.
package anim

import "math"

// Attr is a bit set of visual attributes.
type Attr uint8

const (
	AttrX Attr = 1 << iota
	AttrY
	AttrOpacity
	AttrScale
	AttrRotate
	AttrHeight
)

var allAttrs = []Attr{AttrX, AttrY, AttrOpacity, AttrScale, AttrRotate, AttrHeight}

// Visual is a partial visual state. Only attributes in Set are meaningful,
// which lets two visuals compose attribute by attribute.
//
// X and Y are offsets in cells and lines. Opacity, Scale and Height are
// fractions where 1 is the natural value. Rotate is in degrees.
type Visual struct {
	Set     Attr
	X       float64
	Y       float64
	Opacity float64
	Scale   float64
	Rotate  float64
	Height  float64
}

func (v Visual) WithX(x float64) Visual       { v.X = x; v.Set |= AttrX; return v }
func (v Visual) WithY(y float64) Visual       { v.Y = y; v.Set |= AttrY; return v }
func (v Visual) WithOpacity(o float64) Visual { v.Opacity = o; v.Set |= AttrOpacity; return v }
func (v Visual) WithScale(s float64) Visual   { v.Scale = s; v.Set |= AttrScale; return v }
func (v Visual) WithRotate(r float64) Visual  { v.Rotate = r; v.Set |= AttrRotate; return v }
func (v Visual) WithHeight(h float64) Visual  { v.Height = h; v.Set |= AttrHeight; return v }

// Has reports whether every attribute in a is set.
func (v Visual) Has(a Attr) bool {
	return v.Set&a == a
}

// Get returns attribute a, or its natural default when unset.
func (v Visual) Get(a Attr) float64 {
	if !v.Has(a) {
		return defaultOf(a)
	}
	switch a {
	case AttrX:
		return v.X
	case AttrY:
		return v.Y
	case AttrOpacity:
		return v.Opacity
	case AttrScale:
		return v.Scale
	case AttrRotate:
		return v.Rotate
	case AttrHeight:
		return v.Height
	}
	return 0
}

func (v Visual) with(a Attr, val float64) Visual {
	switch a {
	case AttrX:
		return v.WithX(val)
	case AttrY:
		return v.WithY(val)
	case AttrOpacity:
		return v.WithOpacity(val)
	case AttrScale:
		return v.WithScale(val)
	case AttrRotate:
		return v.WithRotate(val)
	case AttrHeight:
		return v.WithHeight(val)
	}
	return v
}

func defaultOf(a Attr) float64 {
	switch a {
	case AttrOpacity, AttrScale, AttrHeight:
		return 1
	}
	return 0
}

// Resolved returns v with every unset attribute filled with its default.
func (v Visual) Resolved() Visual {
	out := Visual{}
	for _, a := range allAttrs {
		out = out.with(a, v.Get(a))
	}
	return out
}

// Compose overlays top on v: attributes set in top replace those in v.
func (v Visual) Compose(top Visual) Visual {
	for _, a := range allAttrs {
		if top.Has(a) {
			v = v.with(a, top.Get(a))
		}
	}
	return v
}

// Lerp interpolates from a to b by t for every attribute set in either.
func Lerp(a, b Visual, t float64) Visual {
	out := Visual{}
	for _, attr := range allAttrs {
		if !a.Has(attr) && !b.Has(attr) {
			continue
		}
		from, to := a.Get(attr), b.Get(attr)
		out = out.with(attr, from+(to-from)*t)
	}
	return out
}

// Equal compares two visuals after resolving defaults, within a small
// tolerance.
func (v Visual) Equal(o Visual) bool {
	for _, a := range allAttrs {
		if math.Abs(v.Get(a)-o.Get(a)) > 1e-9 {
			return false
		}
	}
	return true
}
