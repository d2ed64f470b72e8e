package systems

import (
	"image/color"
	"testing"

	"github.com/gonewx/farmview/pkg/config"
)

func TestGradientColorAt(t *testing.T) {
	stops := []config.GradientStop{
		{Offset: 0, Color: config.HexColor(color.NRGBA{0, 0, 0, 255})},
		{Offset: 0.5, Color: config.HexColor(color.NRGBA{200, 100, 0, 255})},
		{Offset: 1, Color: config.HexColor(color.NRGBA{200, 100, 200, 255})},
	}

	tests := []struct {
		name string
		t    float64
		want color.NRGBA
	}{
		{"顶部", 0, color.NRGBA{0, 0, 0, 255}},
		{"第一段中点", 0.25, color.NRGBA{100, 50, 0, 255}},
		{"色标处", 0.5, color.NRGBA{200, 100, 0, 255}},
		{"第二段中点", 0.75, color.NRGBA{200, 100, 100, 255}},
		{"底部", 1, color.NRGBA{200, 100, 200, 255}},
		{"超出底部", 1.5, color.NRGBA{200, 100, 200, 255}},
		{"超出顶部", -1, color.NRGBA{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GradientColorAt(stops, tt.t); got != tt.want {
				t.Errorf("GradientColorAt(%v) = %+v, 期望 %+v", tt.t, got, tt.want)
			}
		})
	}

	if got := GradientColorAt(nil, 0.5); got != (color.NRGBA{}) {
		t.Errorf("空色标应返回零值, 实际 %+v", got)
	}
}

func TestCloudOffset(t *testing.T) {
	tests := []struct {
		frame int
		width float64
		want  float64
	}{
		{0, 800, 0},
		{100, 800, 20},
		{4000, 800, 0},
		{4005, 800, 1},
		{10, 0, 0},
	}
	for _, tt := range tests {
		got := CloudOffset(tt.frame, tt.width)
		if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("CloudOffset(%d, %v) = %v, 期望 %v", tt.frame, tt.width, got, tt.want)
		}
		if tt.width > 0 && (got < 0 || got >= tt.width) {
			t.Errorf("CloudOffset(%d, %v) = %v 超出 [0, width)", tt.frame, tt.width, got)
		}
	}
}
