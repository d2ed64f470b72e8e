// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置（逻辑屏幕坐标）；触摸优先于鼠标
func IsJustTouchedOrClicked() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// TapZone 点击区域
type TapZone int

const (
	// TapNone 区域外（画面尺寸为 0 或坐标越界）
	TapNone TapZone = iota
	// TapTop 顶部条带（状态面板所在高度）
	TapTop
	// TapLeft 左侧三分之一
	TapLeft
	// TapCenter 中间三分之一
	TapCenter
	// TapRight 右侧三分之一
	TapRight
)

// ClassifyTap 将点击位置划分到区域
// topHeight 以上为顶部条带，其余部分按宽度三等分
func ClassifyTap(x, y int, width, height, topHeight float64) TapZone {
	fx, fy := float64(x), float64(y)
	if width <= 0 || height <= 0 || fx < 0 || fy < 0 || fx >= width || fy >= height {
		return TapNone
	}
	if fy < topHeight {
		return TapTop
	}
	switch {
	case fx < width/3:
		return TapLeft
	case fx < width*2/3:
		return TapCenter
	default:
		return TapRight
	}
}
