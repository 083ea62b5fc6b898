package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRect_Area(t *testing.T) {
	assert.InDelta(t, 12.0, Rect{Width: 3, Height: 4}.Area(), 1e-9)
	assert.Zero(t, Rect{}.Area())
}

func TestPyramid(t *testing.T) {
	// Square base 6×6, height 4: slant height 5, four faces of 15 each.
	p := Pyramid{BaseWidth: 6, BaseLength: 6, Height: 4}

	assert.InDelta(t, 36.0+60.0, p.Area(), 1e-9)
	assert.InDelta(t, 48.0, p.Volume(), 1e-9)
}

func TestShapeInterfaces(t *testing.T) {
	shapes := []Shape{Rect{Width: 1, Height: 1}, Pyramid{BaseWidth: 1, BaseLength: 1, Height: 1}}

	var solids int
	for _, s := range shapes {
		if _, ok := s.(Solid); ok {
			solids++
		}
	}
	assert.Equal(t, 1, solids, "only the pyramid has a volume")
}

func TestShape_Validate(t *testing.T) {
	tests := []struct {
		name    string
		check   func() error
		wantErr bool
	}{
		{name: "valid rect", check: Rect{Width: 2, Height: 3}.Validate},
		{name: "negative rect", check: Rect{Width: -2, Height: 3}.Validate, wantErr: true},
		{name: "valid pyramid", check: Pyramid{BaseWidth: 1, BaseLength: 2, Height: 3}.Validate},
		{name: "nan pyramid", check: Pyramid{BaseWidth: math.NaN(), BaseLength: 2, Height: 3}.Validate, wantErr: true},
		{name: "inf pyramid", check: Pyramid{BaseWidth: 1, BaseLength: 2, Height: math.Inf(1)}.Validate, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.check()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidShape)
				return
			}
			assert.NoError(t, err)
		})
	}
}
