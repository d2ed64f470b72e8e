package scenes

import (
	"context"
	"fmt"

	"github.com/gonewx/farmview/pkg/game"
	"github.com/gonewx/farmview/pkg/systems"
	"github.com/gonewx/farmview/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/time/rate"
)

// FrameSink 接收每个已推进的帧；返回 false 时停止 Run
type FrameSink func(frame int, w *world.World) bool

// FrameScheduler 帧调度器：持有场景状态，并保证任一时刻至多一个活动的帧循环
//
// 生命周期：
//   - Start: 先 Stop，再创建新循环（新的代号，帧号从 0 开始）
//   - Stop:  幂等；之后不再推进任何帧
//   - Step:  宿主每个 tick 调用一次，推进一帧
//
// 非并发安全：Start/Stop/Step/Run 必须在同一个 goroutine 中调用。
type FrameScheduler struct {
	world      *world.World
	population *systems.PopulationSystem
	updater    *systems.AnimationUpdater
	renderer   *systems.RenderSystem

	loop       *frameLoop
	generation uint64
	inputs     game.Inputs
}

// frameLoop 一次 Start 创建的帧循环
type frameLoop struct {
	generation uint64
	frame      int
}

// NewFrameScheduler 创建帧调度器，初始为停止状态
// renderer 可以为 nil（无界面运行）
func NewFrameScheduler(w *world.World, rng game.Rand, renderer *systems.RenderSystem) *FrameScheduler {
	return &FrameScheduler{
		world:      w,
		population: systems.NewPopulationSystem(w, rng),
		updater:    systems.NewAnimationUpdater(w, rng),
		renderer:   renderer,
	}
}

// World 返回调度器持有的场景状态
func (s *FrameScheduler) World() *world.World {
	return s.world
}

// Start 启动新的帧循环，已有的循环先被停止
func (s *FrameScheduler) Start() {
	s.Stop()
	s.generation++
	s.loop = &frameLoop{generation: s.generation}
}

// Stop 停止当前帧循环，可重复调用
func (s *FrameScheduler) Stop() {
	s.loop = nil
}

// Running 是否有活动的帧循环
func (s *FrameScheduler) Running() bool {
	return s.loop != nil
}

// Frame 返回当前循环已推进的帧数，停止时为 0
func (s *FrameScheduler) Frame() int {
	if s.loop == nil {
		return 0
	}
	return s.loop.frame
}

// Step 推进一帧：关卡变化时重建群体，然后推进全部动画
// 没有活动循环时返回 false
func (s *FrameScheduler) Step(in game.Inputs) bool {
	if s.loop == nil {
		return false
	}
	s.loop.frame++
	if in.Level != s.world.Level {
		s.population.EnsurePopulation(in.Level)
	}
	s.updater.Advance(s.loop.frame, in)
	s.inputs = in
	return true
}

// Draw 绘制最近推进的一帧；停止时不绘制
func (s *FrameScheduler) Draw(screen *ebiten.Image) {
	if s.loop == nil || s.renderer == nil {
		return
	}
	s.renderer.Paint(screen, s.world, s.loop.frame, s.inputs)
}

// Run 无界面的协作式帧循环
//
// 启动新循环后，每帧等待限速器（唯一的让出点），从 source 取输入快照，
// 推进一帧并交给 sink。以下情况返回：
//   - sink 返回 false 或循环被 Stop/Start 替换：返回 nil
//   - ctx 取消：返回 ctx 的错误
func (s *FrameScheduler) Run(ctx context.Context, hz float64, source func() game.Inputs, sink FrameSink) error {
	if hz <= 0 {
		return fmt.Errorf("frame rate must be positive, got %v", hz)
	}
	s.Start()
	generation := s.generation
	limiter := rate.NewLimiter(rate.Limit(hz), 1)

	for {
		if err := limiter.Wait(ctx); err != nil {
			if s.isCurrent(generation) {
				s.Stop()
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("frame limiter: %w", err)
		}
		if !s.isCurrent(generation) {
			return nil
		}

		s.Step(source())
		if sink != nil && !sink(s.loop.frame, s.world) {
			if s.isCurrent(generation) {
				s.Stop()
			}
			return nil
		}
	}
}

// isCurrent 指定代号的循环是否仍是活动循环
func (s *FrameScheduler) isCurrent(generation uint64) bool {
	return s.loop != nil && s.loop.generation == generation
}
