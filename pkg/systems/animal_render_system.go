package systems

import (
	"image/color"

	"github.com/gonewx/farmview/pkg/components"
	"github.com/gonewx/farmview/pkg/config"
	"github.com/gonewx/farmview/pkg/ecs"
	"github.com/gonewx/farmview/pkg/types"
	"github.com/gonewx/farmview/pkg/utils"
	"github.com/gonewx/farmview/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WarningGlyphFor 返回牲畜头顶警告符号是否显示及其颜色
// 健康值低于 70 时显示，低于 40 为红色，否则为琥珀色
func WarningGlyphFor(health float64) (show bool, clr color.NRGBA) {
	if health >= config.AnimalWarningHealth {
		return false, color.NRGBA{}
	}
	if health < config.AnimalDangerHealth {
		return true, colorDanger
	}
	return true, colorWarning
}

// AnimalSize 牲畜的基础尺寸，随月份长大
func AnimalSize(animalType types.AnimalType, month int) float64 {
	m := float64(min(max(month, 0), config.CropMaxGrowthStage))
	if animalType == types.AnimalChicken {
		return 20 + m*2
	}
	return 40 + m*5
}

// gaitOffset 两帧交替的腿部偏移
func gaitOffset(gait int) float64 {
	if gait%2 == 0 {
		return 2
	}
	return -2
}

// AnimalRenderSystem 绘制牲畜及其警告符号
type AnimalRenderSystem struct {
	cowGlyph     *text.GoTextFace
	chickenGlyph *text.GoTextFace
}

// NewAnimalRenderSystem 创建牲畜渲染系统
func NewAnimalRenderSystem(font *text.GoTextFaceSource) *AnimalRenderSystem {
	return &AnimalRenderSystem{
		cowGlyph:     &text.GoTextFace{Source: font, Size: 20},
		chickenGlyph: &text.GoTextFace{Source: font, Size: 16},
	}
}

// Draw 按实体顺序绘制全部牲畜
func (s *AnimalRenderSystem) Draw(screen *ebiten.Image, w *world.World, month int) {
	for _, id := range w.Animals() {
		animal, ok := ecs.GetComponent[*components.AnimalComponent](w.Entities, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](w.Entities, id)
		if !ok {
			continue
		}

		switch animal.Type {
		case types.AnimalCow:
			s.drawCow(screen, pos.X, pos.Y, animal, month)
		case types.AnimalChicken:
			s.drawChicken(screen, pos.X, pos.Y, animal, month)
		}
	}
}

func (s *AnimalRenderSystem) drawCow(dst *ebiten.Image, x, y float64, animal *components.AnimalComponent, month int) {
	size := AnimalSize(types.AnimalCow, month)
	tier := TierFor(HealthFactor(animal.Health))

	// 身体与斑点
	utils.FillRect(dst, x, y, size*1.5, size, cowBodyPalette.pick(tier))
	utils.FillCircle(dst, x+size*0.3, y+size*0.3, size*0.2, colorWhite)
	utils.FillCircle(dst, x+size*0.9, y+size*0.5, size*0.25, colorWhite)

	// 头、耳、角
	utils.FillRect(dst, x+size*1.5, y+size*0.2, size*0.8, size*0.6, cowHeadPalette.pick(tier))
	utils.FillRect(dst, x+size*1.5, y, size*0.2, size*0.3, colorHoof)
	utils.FillRect(dst, x+size*2.1, y, size*0.2, size*0.3, colorHoof)
	utils.StrokeLine(dst, x+size*1.6, y, x+size*1.5, y-size*0.3, 3, colorHorn)
	utils.StrokeLine(dst, x+size*2.2, y, x+size*2.3, y-size*0.3, 3, colorHorn)

	// 腿
	leg := gaitOffset(animal.GaitFrame)
	for i, lx := range []float64{0.2, 0.7, 1.0, 1.3} {
		offset := leg
		if i%2 == 1 {
			offset = -leg
		}
		utils.FillRect(dst, x+size*lx, y+size, size*0.3, size*0.6+offset, colorHoof)
	}

	// 尾巴与眼睛
	utils.StrokeQuadCurve(dst, x, y+size*0.5, x-size*0.3, y+size*0.3, x-size*0.2, y+size*0.8, 4, colorHoof)
	utils.FillCircle(dst, x+size*1.7, y+size*0.4, 3, colorBlack)

	if show, clr := WarningGlyphFor(animal.Health); show {
		drawTextAtBaseline(dst, "!", s.cowGlyph, x+size, y-10, clr)
	}
}

func (s *AnimalRenderSystem) drawChicken(dst *ebiten.Image, x, y float64, animal *components.AnimalComponent, month int) {
	size := AnimalSize(types.AnimalChicken, month)
	tier := TierFor(HealthFactor(animal.Health))
	body := chickenBodyPalette.pick(tier)

	// 身体与头
	utils.FillEllipse(dst, x, y, size*0.8, size, 0, body)
	utils.FillCircle(dst, x+size*0.6, y-size*0.5, size*0.5, body)

	// 鸡冠、喙、眼
	utils.FillPolygon(dst, []utils.Point{
		{X: x + size*0.5, Y: y - size*0.8},
		{X: x + size*0.6, Y: y - size*1.1},
		{X: x + size*0.7, Y: y - size*0.8},
	}, colorDanger)
	utils.FillPolygon(dst, []utils.Point{
		{X: x + size*0.9, Y: y - size*0.5},
		{X: x + size*1.2, Y: y - size*0.4},
		{X: x + size*0.9, Y: y - size*0.3},
	}, colorWarning)
	utils.FillCircle(dst, x+size*0.7, y-size*0.6, 2, colorBlack)

	// 翅膀随步态扇动
	flap := 0.0
	if animal.GaitFrame%2 == 1 {
		flap = -5
	}
	utils.FillEllipse(dst, x-size*0.3, y+flap, size*0.4, size*0.6, -0.3, chickenWingPalette.pick(tier))

	// 腿与脚趾
	leg := gaitOffset(animal.GaitFrame)
	for _, side := range []float64{-1, 1} {
		lx := x + side*size*0.2
		footY := y + size + 10 - side*leg
		utils.StrokeLine(dst, lx, y+size, lx, footY, 3, colorWarning)
		utils.StrokeLine(dst, lx, footY, lx-size*0.2, footY, 3, colorWarning)
		utils.StrokeLine(dst, lx, footY, lx+size*0.2, footY, 3, colorWarning)
	}

	// 健康的成年母鸡会下蛋
	if animal.Health >= config.AnimalWarningHealth && month >= 4 {
		utils.FillEllipse(dst, x-size*1.2, y+size+5, 6, 8, 0, colorEgg)
	}

	if show, clr := WarningGlyphFor(animal.Health); show {
		drawTextAtBaseline(dst, "!", s.chickenGlyph, x+size*0.5, y-size*1.2, clr)
	}
}

// drawTextAtBaseline 以基线坐标绘制文本
func drawTextAtBaseline(dst *ebiten.Image, s string, face *text.GoTextFace, x, baseline float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, baseline-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}
