package systems

import (
	"github.com/gonewx/farmview/pkg/components"
	"github.com/gonewx/farmview/pkg/config"
	"github.com/gonewx/farmview/pkg/ecs"
	"github.com/gonewx/farmview/pkg/game"
	"github.com/gonewx/farmview/pkg/world"
)

// WorkerBehaviorSystem 农夫状态机：在活动范围内来回行走，到达边界时可能停下劳作
type WorkerBehaviorSystem struct {
	world *world.World
	rng   game.Rand
}

// NewWorkerBehaviorSystem 创建农夫行为系统
func NewWorkerBehaviorSystem(w *world.World, rng game.Rand) *WorkerBehaviorSystem {
	return &WorkerBehaviorSystem{
		world: w,
		rng:   rng,
	}
}

// Update 每帧调用一次，只更新当前关卡中活动的农夫
func (s *WorkerBehaviorSystem) Update(frame int) {
	phase := (frame / config.WorkerPhaseDivisor) % 4
	em := s.world.Entities
	for _, id := range s.world.Workers() {
		worker, ok := ecs.GetComponent[*components.WorkerComponent](em, id)
		if !ok {
			continue
		}
		worker.Phase = phase
		s.step(worker)
	}
}

func (s *WorkerBehaviorSystem) step(worker *components.WorkerComponent) {
	minX, maxX := config.WorkerRange(s.world.Width, worker.Secondary)

	// 画面缩小后农夫可能位于范围之外
	worker.X = min(max(worker.X, minX), maxX)
	worker.ModeTimer++

	switch worker.Mode {
	case components.WorkerWalking:
		worker.X += worker.Direction * config.WorkerStep

		bounced := false
		if worker.Direction > 0 && worker.X >= maxX {
			worker.X = maxX
			bounced = true
		} else if worker.Direction < 0 && worker.X <= minX {
			worker.X = minX
			bounced = true
		}
		if !bounced {
			return
		}

		worker.Direction = -worker.Direction
		if s.rng.Float64() < config.WorkerWorkChance {
			worker.Mode = components.WorkerWorking
			worker.ModeTimer = 0
		}

	case components.WorkerWorking:
		if worker.ModeTimer > config.WorkerWorkFrames {
			worker.Mode = components.WorkerWalking
			worker.ModeTimer = 0
		}
	}
}
