package components

import "github.com/gonewx/farmview/pkg/types"

// CropComponent 标识实体为作物
// 包含作物种类、所在网格位置、生长阶段以及待机摇摆动画的状态
//
// 作物没有 PositionComponent：屏幕位置由网格坐标和场景配置推导，
// 这样同一批作物在画面尺寸变化时无需重新计算位置。
type CropComponent struct {
	// Type 作物种类
	Type types.CropType
	// GridCol 所在列（从左到右，从0开始）
	GridCol int
	// GridRow 所在行（从上到下，从0开始）
	GridRow int

	// GrowthStage 生长阶段 0-6
	// 始终等于 min(当前月份, 6)，由外部月份驱动，从不独立推进
	GrowthStage int

	// SwayPhase 摇摆相位（弧度），每帧增加 SwaySpeed
	SwayPhase float64
	// SwaySpeed 摇摆角速度（弧度/帧），创建时随机确定
	SwaySpeed float64
	// SwayOffset 当前帧的横向摇摆偏移 = sin(SwayPhase) * 振幅
	SwayOffset float64
}
