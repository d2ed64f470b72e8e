package components

import (
	"github.com/gonewx/farmview/pkg/types"
	"gonum.org/v1/gonum/spatial/r2"
)

// AnimalComponent 标识实体为牲畜
//
// 牲畜以固定的物种速度朝游荡目标移动（位置存放在 PositionComponent）。
// 目标每隔固定帧数重新随机分配；距离目标足够近时视为已到达。
type AnimalComponent struct {
	// Type 牲畜种类
	Type types.AnimalType
	// Speed 每帧移动距离
	Speed float64
	// Target 当前游荡目标
	Target r2.Vec
	// GaitFrame 步态帧 0-3，驱动腿部/翅膀的交替
	GaitFrame int
	// Health 健康值，每帧从外部输入复制
	Health float64
}
