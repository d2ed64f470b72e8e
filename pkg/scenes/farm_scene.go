package scenes

import (
	"log"

	"github.com/gonewx/farmview/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// FarmScene 农场视图场景
//
// 进入场景时启动帧调度器，离开时停止；同一个调度器可反复进入，
// 每次进入都只有一个活动循环，宿主每个 tick 只推进一帧。
type FarmScene struct {
	scheduler *FrameScheduler
	inputs    func() game.Inputs
}

// NewFarmScene 创建农场视图场景
// inputs 在每个 tick 调用一次，返回宿主当前的输入快照
func NewFarmScene(scheduler *FrameScheduler, inputs func() game.Inputs) *FarmScene {
	return &FarmScene{
		scheduler: scheduler,
		inputs:    inputs,
	}
}

// Scheduler 返回场景使用的帧调度器
func (s *FarmScene) Scheduler() *FrameScheduler {
	return s.scheduler
}

// OnEnter 实现 game.Lifecycle
func (s *FarmScene) OnEnter() {
	s.scheduler.Start()
	log.Printf("[FarmScene] 帧循环启动")
}

// OnExit 实现 game.Lifecycle
func (s *FarmScene) OnExit() {
	s.scheduler.Stop()
	log.Printf("[FarmScene] 帧循环停止")
}

// Update 推进一帧
func (s *FarmScene) Update(deltaTime float64) {
	s.scheduler.Step(s.inputs())
}

// Draw 按当前画面尺寸绘制；尺寸变化在下一帧的更新中生效
func (s *FarmScene) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	s.scheduler.World().Resize(float64(bounds.Dx()), float64(bounds.Dy()))
	s.scheduler.Draw(screen)
}
