package systems

import (
	"github.com/gonewx/farmview/pkg/components"
	"github.com/gonewx/farmview/pkg/config"
	"github.com/gonewx/farmview/pkg/ecs"
	"github.com/gonewx/farmview/pkg/game"
	"github.com/gonewx/farmview/pkg/world"
	"gonum.org/v1/gonum/spatial/r2"
)

// AnimalSteeringSystem 牲畜游荡：周期性随机选择目标，并以物种速度朝目标移动
type AnimalSteeringSystem struct {
	world *world.World
	rng   game.Rand
}

// NewAnimalSteeringSystem 创建牲畜游荡系统
func NewAnimalSteeringSystem(w *world.World, rng game.Rand) *AnimalSteeringSystem {
	return &AnimalSteeringSystem{
		world: w,
		rng:   rng,
	}
}

// Update 每帧调用一次
// frame 为调度器帧号（从 1 开始），health 为当前牲畜健康值
func (s *AnimalSteeringSystem) Update(frame int, health float64) {
	retarget := frame%config.AnimalRetargetInterval == 0
	minX, maxX, minY, maxY := s.world.WanderBounds()
	gait := (frame / config.AnimalGaitFrameDivisor) % 4

	em := s.world.Entities
	for _, id := range s.world.Animals() {
		animal, ok := ecs.GetComponent[*components.AnimalComponent](em, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}

		animal.Health = health
		animal.GaitFrame = gait

		if retarget {
			animal.Target = r2.Vec{
				X: minX + s.rng.Float64()*(maxX-minX),
				Y: minY + s.rng.Float64()*(maxY-minY),
			}
		}

		next := SteerTowards(r2.Vec{X: pos.X, Y: pos.Y}, animal.Target, animal.Speed)
		pos.X, pos.Y = next.X, next.Y
	}
}

// SteerTowards 返回从 from 朝 target 移动一步后的位置
//
// 距离不超过到达阈值时原地不动；步长不超过剩余距离，因此不会越过目标。
func SteerTowards(from, target r2.Vec, speed float64) r2.Vec {
	delta := r2.Sub(target, from)
	dist := r2.Norm(delta)
	if dist <= config.AnimalArriveDistance {
		return from
	}
	step := min(speed, dist)
	return r2.Add(from, r2.Scale(step/dist, delta))
}
