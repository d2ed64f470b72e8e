package systems

import (
	"github.com/gonewx/farmview/pkg/game"
	"github.com/gonewx/farmview/pkg/world"
)

// AnimationUpdater 每帧推进一次全部动画状态
//
// 顺序固定：作物 -> 牲畜 -> 农夫。三者互不依赖，顺序只为保证回放可重复。
type AnimationUpdater struct {
	crops   *CropGrowthSystem
	animals *AnimalSteeringSystem
	workers *WorkerBehaviorSystem
}

// NewAnimationUpdater 创建动画更新器，所有随机决定共享同一个随机数源
func NewAnimationUpdater(w *world.World, rng game.Rand) *AnimationUpdater {
	return &AnimationUpdater{
		crops:   NewCropGrowthSystem(w),
		animals: NewAnimalSteeringSystem(w, rng),
		workers: NewWorkerBehaviorSystem(w, rng),
	}
}

// Advance 推进一帧
// frame 为调度器帧号（从 1 开始），in 为本帧的外部输入
func (u *AnimationUpdater) Advance(frame int, in game.Inputs) {
	u.crops.Update(in.Month)
	u.animals.Update(frame, in.Health.Animals)
	u.workers.Update(frame)
}
