package utils

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 矢量图形辅助函数
//
// 农场场景全部由程序绘制，不使用任何贴图。这里对 ebiten vector 包做一层
// float64 包装，并补充椭圆、多边形、二次曲线等组合图形。
// 所有函数都开启抗锯齿。

// Point 二维点
type Point struct {
	X, Y float64
}

// FillRect 填充矩形
func FillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, true)
}

// StrokeRect 描边矩形
func StrokeRect(dst *ebiten.Image, x, y, w, h, width float64, clr color.Color) {
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), float32(width), clr, true)
}

// FillCircle 填充圆
func FillCircle(dst *ebiten.Image, cx, cy, r float64, clr color.Color) {
	vector.FillCircle(dst, float32(cx), float32(cy), float32(r), clr, true)
}

// StrokeLine 绘制线段
func StrokeLine(dst *ebiten.Image, x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

// FillPolygon 填充多边形（少于 3 个顶点时不绘制）
func FillPolygon(dst *ebiten.Image, pts []Point, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	path := vector.Path{}
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	drawOp := &vector.DrawPathOptions{AntiAlias: true}
	drawOp.ColorScale.ScaleWithColor(clr)
	vector.FillPath(dst, &path, nil, drawOp)
}

// FillEllipse 填充椭圆，rotation 为绕中心的旋转角（弧度）
func FillEllipse(dst *ebiten.Image, cx, cy, rx, ry, rotation float64, clr color.Color) {
	FillPolygon(dst, EllipsePoints(cx, cy, rx, ry, rotation, 32), clr)
}

// FillSemicircle 填充上半圆（平边朝下）
func FillSemicircle(dst *ebiten.Image, cx, cy, r float64, clr color.Color) {
	const segments = 16
	pts := make([]Point, 0, segments+1)
	for i := 0; i <= segments; i++ {
		a := math.Pi + math.Pi*float64(i)/segments
		pts = append(pts, Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)})
	}
	FillPolygon(dst, pts, clr)
}

// StrokeQuadCurve 绘制二次贝塞尔曲线
func StrokeQuadCurve(dst *ebiten.Image, x0, y0, cx, cy, x1, y1, width float64, clr color.Color) {
	path := vector.Path{}
	path.MoveTo(float32(x0), float32(y0))
	path.QuadTo(float32(cx), float32(cy), float32(x1), float32(y1))

	strokeOp := &vector.StrokeOptions{Width: float32(width)}
	drawOp := &vector.DrawPathOptions{AntiAlias: true}
	drawOp.ColorScale.ScaleWithColor(clr)
	vector.StrokePath(dst, &path, strokeOp, drawOp)
}

// EllipsePoints 返回椭圆轮廓上均匀分布的 segments 个顶点
func EllipsePoints(cx, cy, rx, ry, rotation float64, segments int) []Point {
	if segments < 3 {
		segments = 3
	}
	sin, cos := math.Sincos(rotation)
	pts := make([]Point, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(segments)
		x := rx * math.Cos(a)
		y := ry * math.Sin(a)
		pts[i] = Point{
			X: cx + x*cos - y*sin,
			Y: cy + x*sin + y*cos,
		}
	}
	return pts
}

// LerpColor 在两个颜色之间线性插值（逐通道，包括 alpha）
func LerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	t = Clamp01(t)
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(Lerp(float64(x), float64(y), t)))
	}
	return color.NRGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}

// WithAlpha 返回替换了 alpha 的颜色
func WithAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(math.Round(Clamp01(alpha) * 255))
	return c
}
