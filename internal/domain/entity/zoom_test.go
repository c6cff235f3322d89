package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampZoom(t *testing.T) {
	tests := []struct {
		name   string
		factor float64
		want   float64
	}{
		{name: "within range", factor: 1.5, want: 1.5},
		{name: "above max", factor: 10.0, want: 5.0},
		{name: "below min", factor: 0.01, want: 0.25},
		{name: "exact min", factor: 0.25, want: 0.25},
		{name: "exact max", factor: 5.0, want: 5.0},
		{name: "float drift rounded", factor: 1.0 + 0.05 + 0.05 + 0.05, want: 1.15},
		{name: "nan resets", factor: math.NaN(), want: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampZoom(tt.factor))
		})
	}
}

func TestZoomPercentage(t *testing.T) {
	assert.Equal(t, 115, ZoomPercentage(1.15))
	assert.Equal(t, 25, ZoomPercentage(ZoomMin))
}
