package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// HiddenScene 农场视图隐藏时显示的占位场景，不推进任何动画
type HiddenScene struct {
	hint string
}

// NewHiddenScene 创建占位场景，hint 为提示文字
func NewHiddenScene(hint string) *HiddenScene {
	return &HiddenScene{hint: hint}
}

// Update 实现 game.Scene
func (s *HiddenScene) Update(deltaTime float64) {}

// Draw 实现 game.Scene
func (s *HiddenScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 16, G: 24, B: 32, A: 255})
	ebitenutil.DebugPrintAt(screen, s.hint, 20, 20)
}
