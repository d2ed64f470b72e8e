package systems

import (
	"math"

	"github.com/gonewx/farmview/pkg/components"
	"github.com/gonewx/farmview/pkg/config"
	"github.com/gonewx/farmview/pkg/ecs"
	"github.com/gonewx/farmview/pkg/types"
	"github.com/gonewx/farmview/pkg/utils"
	"github.com/gonewx/farmview/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
)

// VisibleStage 渲染使用的生长阶段
// 第 1 阶段的作物仍在地下，与第 0 阶段一样不绘制
func VisibleStage(stage int) int {
	if stage < 2 {
		return 0
	}
	return min(stage, config.CropMaxGrowthStage)
}

// CropAppearance 作物外观：可见阶段、配色等级以及各部件是否出现
type CropAppearance struct {
	Stage int
	Tier  HealthTier
	// Factor 钳制后的健康系数，缩放植株高度
	Factor float64
	// Size 基础尺寸 = 10 + Stage*6
	Size float64

	Stem    bool
	Foliage bool
	Fruit   bool
	// Ripe 果实已成熟（番茄变红、胡萝卜变深橙）
	Ripe bool
}

// CropAppearanceFor 计算作物外观
func CropAppearanceFor(cropType types.CropType, stage int, health float64) CropAppearance {
	visible := VisibleStage(stage)
	factor := HealthFactor(health)
	a := CropAppearance{
		Stage:  visible,
		Tier:   TierFor(factor),
		Factor: factor,
		Size:   10 + float64(visible)*6,
	}
	if visible < 1 {
		return a
	}

	switch cropType {
	case types.CropCorn:
		a.Stem = true
		a.Foliage = visible >= 2
		a.Fruit = visible >= 5
		a.Ripe = a.Fruit
	case types.CropTomato:
		a.Stem = true
		a.Foliage = visible >= 2
		a.Fruit = visible >= 4
		a.Ripe = visible >= 5
	case types.CropLettuce:
		a.Foliage = true
		a.Fruit = visible >= 5
		a.Ripe = a.Fruit
	case types.CropCarrot:
		a.Foliage = true
		a.Fruit = visible >= 4
		a.Ripe = visible >= 5
	}
	return a
}

// CropRenderSystem 绘制作物网格
type CropRenderSystem struct{}

// NewCropRenderSystem 创建作物渲染系统
func NewCropRenderSystem() *CropRenderSystem {
	return &CropRenderSystem{}
}

// Draw 按网格顺序绘制全部作物
func (s *CropRenderSystem) Draw(screen *ebiten.Image, w *world.World, frame int, health float64) {
	for _, id := range w.Crops() {
		crop, ok := ecs.GetComponent[*components.CropComponent](w.Entities, id)
		if !ok {
			continue
		}
		x, y := w.CropPosition(crop)
		a := CropAppearanceFor(crop.Type, crop.GrowthStage, health)
		if a.Stage < 1 {
			continue
		}
		x += crop.SwayOffset

		switch crop.Type {
		case types.CropCorn:
			drawCorn(screen, x, y, a, frame)
		case types.CropTomato:
			drawTomato(screen, x, y, a, frame)
		case types.CropLettuce:
			drawLettuce(screen, x, y, a, frame)
		case types.CropCarrot:
			drawCarrot(screen, x, y, a, frame)
		}
	}
}

// leafSway 叶片随帧的轻微摆动
func leafSway(frame, i int, amplitude float64) float64 {
	return math.Sin(float64(frame)*0.05+float64(i)) * amplitude
}

func drawCorn(dst *ebiten.Image, x, y float64, a CropAppearance, frame int) {
	height := a.Size * 3 * a.Factor
	utils.FillRect(dst, x-3, y-height, 6, height, cornStemPalette.pick(a.Tier))

	if a.Foliage {
		leaf := cornLeafPalette.pick(a.Tier)
		for i := 0; i < min(a.Stage, 4); i++ {
			leafY := y - height*0.3 - float64(i)*8
			sway := leafSway(frame, i, 2)
			utils.FillPolygon(dst, []utils.Point{
				{X: x - 3, Y: leafY},
				{X: x - 15 + sway, Y: leafY - 5},
				{X: x - 12 + sway, Y: leafY + 5},
			}, leaf)
			utils.FillPolygon(dst, []utils.Point{
				{X: x + 3, Y: leafY},
				{X: x + 15 - sway, Y: leafY - 5},
				{X: x + 12 - sway, Y: leafY + 5},
			}, leaf)
		}
	}

	if a.Fruit {
		// 玉米棒与籽粒
		utils.FillRect(dst, x-6, y-height-12, 12, 16, colorCornCob)
		kernel := colorCornKernel
		for i := 0; i < 3; i++ {
			for j := 0; j < 4; j++ {
				utils.FillRect(dst, x-5+float64(i)*4, y-height-10+float64(j)*4, 2, 2, kernel)
			}
		}
	}
}

func drawTomato(dst *ebiten.Image, x, y float64, a CropAppearance, frame int) {
	height := a.Size * 2.5 * a.Factor
	utils.FillRect(dst, x-2, y-height, 4, height, tomatoStemPalette.pick(a.Tier))

	if a.Foliage {
		leaf := tomatoLeafPalette.pick(a.Tier)
		for i := 0; i < min(a.Stage, 3); i++ {
			leafY := y - height*0.4 - float64(i)*10
			sway := leafSway(frame, i, 1.5)
			for j := 0; j < 3; j++ {
				utils.FillCircle(dst, x-10+float64(j)*5+sway, leafY, 4, leaf)
				utils.FillCircle(dst, x+10-float64(j)*5-sway, leafY, 4, leaf)
			}
		}
	}

	if a.Fruit {
		fruit := colorTomatoUnripe
		if a.Ripe {
			fruit = colorTomatoRipe
		}
		bounce := math.Sin(float64(frame)*0.03) * 0.5
		utils.FillCircle(dst, x-8, y-height*0.6+bounce, 6, fruit)
		utils.FillCircle(dst, x+8, y-height*0.5-bounce, 6, fruit)
		// 高光
		utils.FillCircle(dst, x-10, y-height*0.6-2+bounce, 2, utils.WithAlpha(colorWhite, 0.5))
	}
}

func drawLettuce(dst *ebiten.Image, x, y float64, a CropAppearance, frame int) {
	leafSize := a.Size * a.Factor
	leaf := utils.WithAlpha(lettuceLeafPalette.pick(a.Tier), 0.8)

	for layer := 0; layer < min(a.Stage, 4); layer++ {
		size := leafSize - float64(layer)*3
		if size <= 0 {
			break
		}
		for i := 0; i < 6; i++ {
			angle := float64(i)*math.Pi/3 + math.Sin(float64(frame)*0.03+float64(i))*0.1
			lx := x + math.Cos(angle)*size*0.5
			ly := y - 10 - float64(layer)*5 + math.Sin(angle)*size*0.5
			utils.FillEllipse(dst, lx, ly, size*0.6, size*0.4, angle, leaf)
		}
	}

	if a.Fruit && leafSize > 0 {
		utils.FillCircle(dst, x, y-15, leafSize*0.8, colorLettuceHead)
	}
}

func drawCarrot(dst *ebiten.Image, x, y float64, a CropAppearance, frame int) {
	topHeight := a.Size * 1.5 * a.Factor
	leaf := carrotLeafPalette.pick(a.Tier)
	for i := 0; i < min(a.Stage, 5); i++ {
		angle := float64(i)*math.Pi/2.5 - math.Pi/2
		sway := leafSway(frame, i, 2)
		utils.FillPolygon(dst, []utils.Point{
			{X: x, Y: y - 5},
			{X: x + math.Cos(angle)*12 + sway, Y: y - topHeight},
			{X: x + math.Cos(angle)*10 + sway, Y: y - 5},
		}, leaf)
	}

	if a.Fruit {
		rootSize := math.Min(float64(a.Stage)*3, 15) * a.Factor
		root := colorCarrotRoot
		if a.Ripe {
			root = colorCarrotRipe
		}
		utils.FillPolygon(dst, []utils.Point{
			{X: x - rootSize*0.4, Y: y},
			{X: x, Y: y + rootSize},
			{X: x + rootSize*0.4, Y: y},
		}, root)

		ring := colorCarrotRing
		for i := 0; i < 3; i++ {
			ry := y + float64(i)*4
			utils.StrokeLine(dst, x-2, ry, x+2, ry, 1, ring)
		}
	}
}
