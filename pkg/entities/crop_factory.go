package entities

import (
	"github.com/gonewx/farmview/pkg/components"
	"github.com/gonewx/farmview/pkg/ecs"
	"github.com/gonewx/farmview/pkg/types"
)

// NewCropEntity 创建一个作物实体
// 参数:
//   - em: EntityManager 实例
//   - cropType: 作物种类
//   - col, row: 网格坐标
//   - swayPhase: 初始摇摆相位（弧度）
//   - swaySpeed: 摇摆角速度（弧度/帧）
//
// 返回: 创建的实体ID
//
// 生长阶段初始为 0，由下一帧的生长系统根据月份写入。
func NewCropEntity(em *ecs.EntityManager, cropType types.CropType, col, row int, swayPhase, swaySpeed float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.CropComponent{
		Type:      cropType,
		GridCol:   col,
		GridRow:   row,
		SwayPhase: swayPhase,
		SwaySpeed: swaySpeed,
	})
	return id
}
