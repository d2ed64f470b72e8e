package entities

import (
	"github.com/gonewx/farmview/pkg/components"
	"github.com/gonewx/farmview/pkg/ecs"
)

// NewWorkerEntity 创建一个农夫实体，初始向右行走
// secondary 为 true 时创建只在右半场活动的副农夫
func NewWorkerEntity(em *ecs.EntityManager, x float64, secondary bool) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.WorkerComponent{
		X:         x,
		Direction: 1,
		Mode:      components.WorkerWalking,
		Secondary: secondary,
	})
	return id
}
