package systems

import (
	"math"

	"github.com/gonewx/farmview/pkg/config"
	"github.com/gonewx/farmview/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ojrac/opensimplex-go"
)

// SoilRenderSystem 绘制土壤带、纹理和顶部草边
//
// 散落土粒的位置取自 OpenSimplex 噪声，同一种子下每帧完全相同，画面不会闪烁。
type SoilRenderSystem struct {
	noise opensimplex.Noise
}

// NewSoilRenderSystem 创建土壤渲染系统
func NewSoilRenderSystem(seed int64) *SoilRenderSystem {
	return &SoilRenderSystem{
		noise: opensimplex.NewNormalized(seed),
	}
}

// FleckPositions 返回 count 个土粒的位置，均位于 [0,width) × [top, top+SoilHeight)
func (s *SoilRenderSystem) FleckPositions(count int, width, top float64) []utils.Point {
	pts := make([]utils.Point, 0, count)
	for i := 0; i < count; i++ {
		u := s.sample(float64(i)*0.731, 0)
		v := s.sample(float64(i)*0.731, 17.3)
		pts = append(pts, utils.Point{
			X: u * width,
			Y: top + v*config.SoilHeight,
		})
	}
	return pts
}

// GrassBladeHeights 返回 count 根草叶相对土壤顶部的纵向偏移，范围 [0,30)
func (s *SoilRenderSystem) GrassBladeHeights(count int) []float64 {
	out := make([]float64, count)
	for i := range out {
		out[i] = s.sample(float64(i)*0.913, 41.7) * 30
	}
	return out
}

// sample 取 [0,1) 内的噪声值
// 原始噪声集中在 0.5 附近，取放大后的小数部分使分布接近均匀
func (s *SoilRenderSystem) sample(x, y float64) float64 {
	v := s.noise.Eval2(x, y) * 997
	return v - math.Floor(v)
}

// Draw 绘制土壤层
func (s *SoilRenderSystem) Draw(screen *ebiten.Image, cfg *config.SceneConfig, frame int, width, height float64) {
	top := config.SoilTop(height)
	soil := cfg.Soil
	utils.FillRect(screen, 0, top, width, config.SoilHeight, soil.Color.Color())

	texture := soil.TextureColor.Color()
	switch soil.Texture {
	case config.SoilFlecks:
		for _, p := range s.FleckPositions(soil.Density, width, top) {
			utils.FillRect(screen, p.X, p.Y, 3, 2, texture)
		}

	case config.SoilGrass:
		for i, dy := range s.GrassBladeHeights(soil.Density) {
			x := float64(i) * width / float64(soil.Density)
			sway := leafSway(frame, i, 2)
			utils.FillRect(screen, x+sway, top+dy, 2, 4, texture)
		}

	case config.SoilFurrows:
		for i := 0; i < 5; i++ {
			y := top + 40 + float64(i)*30
			utils.StrokeLine(screen, 0, y, width, y, 2, texture)
		}
		droplet := soil.AccentColor.Color()
		for i := 0; i < soil.Density; i++ {
			x := float64(i) * width / float64(soil.Density)
			utils.FillCircle(screen, x, top+40, 2, droplet)
		}
	}

	utils.FillRect(screen, 0, top-config.GrassEdgeHeight, width, config.GrassEdgeHeight, colorGrassEdge)
}
