package utils

import (
	"image/color"
	"math"
	"testing"
)

func TestEllipsePoints(t *testing.T) {
	tests := []struct {
		name     string
		rx, ry   float64
		rotation float64
		first    Point
	}{
		{"无旋转", 20, 10, 0, Point{X: 120, Y: 50}},
		{"旋转90度", 20, 10, math.Pi / 2, Point{X: 100, Y: 70}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := EllipsePoints(100, 50, tt.rx, tt.ry, tt.rotation, 16)
			if len(pts) != 16 {
				t.Fatalf("顶点数 = %d, 期望 16", len(pts))
			}
			if math.Abs(pts[0].X-tt.first.X) > 1e-9 || math.Abs(pts[0].Y-tt.first.Y) > 1e-9 {
				t.Errorf("第一个顶点 = %+v, 期望 %+v", pts[0], tt.first)
			}
			for i, p := range pts {
				// 旋转不改变到中心的距离范围
				d := math.Hypot(p.X-100, p.Y-50)
				if d < tt.ry-1e-9 || d > tt.rx+1e-9 {
					t.Errorf("顶点 %d 到中心距离 %v 超出 [%v, %v]", i, d, tt.ry, tt.rx)
				}
			}
		})
	}

	if got := len(EllipsePoints(0, 0, 1, 1, 0, 1)); got != 3 {
		t.Errorf("顶点数下限应为 3, 实际 %d", got)
	}
}

func TestLerpColor(t *testing.T) {
	black := color.NRGBA{0, 0, 0, 255}
	white := color.NRGBA{255, 255, 255, 255}

	tests := []struct {
		name string
		t    float64
		want color.NRGBA
	}{
		{"起点", 0, black},
		{"终点", 1, white},
		{"中点", 0.5, color.NRGBA{128, 128, 128, 255}},
		{"超出范围被钳制", 2, white},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LerpColor(black, white, tt.t); got != tt.want {
				t.Errorf("LerpColor(t=%v) = %+v, 期望 %+v", tt.t, got, tt.want)
			}
		})
	}
}

func TestWithAlpha(t *testing.T) {
	c := WithAlpha(color.NRGBA{255, 0, 0, 255}, 0.3)
	if c.R != 255 || c.A != 77 {
		t.Errorf("WithAlpha(0.3) = %+v, 期望 alpha 77", c)
	}
}
