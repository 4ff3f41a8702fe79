package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teranos/benchsift/criterion"
)

func TestFormatPointsEmpty(t *testing.T) {
	assert.Equal(t, "[]", FormatPoints(nil))
	assert.Equal(t, "[]", FormatPoints([]criterion.Point{}))
}

func TestFormatPoints(t *testing.T) {
	points := []criterion.Point{
		{Index: 1, Time: 10.0},
		{Index: 2, Time: 20.0},
		{Index: 3, Time: 30.0},
	}
	assert.Equal(t, "[(1, 10.0), (2, 20.0), (3, 30.0)]", FormatPoints(points))
}

func TestFormatPointsSingle(t *testing.T) {
	assert.Equal(t, "[(12, 26412.5)]", FormatPoints([]criterion.Point{{Index: 12, Time: 26412.5}}))
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{10.0, "10.0"},
		{26412.5, "26412.5"},
		{0.5, "0.5"},
		{-3.0, "-3.0"},
		{1e21, "1e+21"},
		{0, "0.0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatTime(tt.in), "formatTime(%v)", tt.in)
	}
}
