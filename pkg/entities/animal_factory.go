package entities

import (
	"github.com/gonewx/farmview/pkg/components"
	"github.com/gonewx/farmview/pkg/ecs"
	"github.com/gonewx/farmview/pkg/types"
	"gonum.org/v1/gonum/spatial/r2"
)

// NewAnimalEntity 创建一个牲畜实体
// 参数:
//   - em: EntityManager 实例
//   - animalType: 物种
//   - x, y: 初始位置
//   - speed: 每帧移动速度
//
// 返回: 创建的实体ID
//
// 初始目标即当前位置，因此第一次重新分配目标之前牲畜保持静止。
func NewAnimalEntity(em *ecs.EntityManager, animalType types.AnimalType, x, y, speed float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.AnimalComponent{
		Type:   animalType,
		Speed:  speed,
		Target: r2.Vec{X: x, Y: y},
		Health: 100,
	})
	return id
}
