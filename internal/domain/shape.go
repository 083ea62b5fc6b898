package domain

import (
	"fmt"
	"math"
)

// Shape is a flat figure with an area.
type Shape interface {
	Area() float64
}

// Solid is a three-dimensional figure with a volume. It is kept apart from
// Shape so flat figures never carry a volume they cannot compute.
type Solid interface {
	Volume() float64
}

// Rect is a rectangle. It implements Shape only.
type Rect struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Area returns width × height.
func (r Rect) Area() float64 { return r.Width * r.Height }

// Validate rejects negative or non-finite dimensions.
func (r Rect) Validate() error { return checkDimensions("rect", r.Width, r.Height) }

// Pyramid is a right pyramid on a rectangular base. It implements both
// Shape and Solid.
type Pyramid struct {
	BaseWidth  float64 `json:"base_width" yaml:"base_width"`
	BaseLength float64 `json:"base_length" yaml:"base_length"`
	Height     float64 `json:"height" yaml:"height"`
}

// Area returns the total surface area: the base plus four triangular faces.
func (p Pyramid) Area() float64 {
	w, l, h := p.BaseWidth, p.BaseLength, p.Height
	slantW := math.Sqrt(h*h + (l/2)*(l/2))
	slantL := math.Sqrt(h*h + (w/2)*(w/2))
	return w*l + w*slantW + l*slantL
}

// Volume returns base area × height / 3.
func (p Pyramid) Volume() float64 { return p.BaseWidth * p.BaseLength * p.Height / 3 }

// Validate rejects negative or non-finite dimensions.
func (p Pyramid) Validate() error {
	return checkDimensions("pyramid", p.BaseWidth, p.BaseLength, p.Height)
}

func checkDimensions(name string, dims ...float64) error {
	for _, d := range dims {
		if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return fmt.Errorf("%w: %s dimension %v", ErrInvalidShape, name, d)
		}
	}
	return nil
}
