package scenes

import (
	"context"
	"errors"
	"testing"

	"github.com/gonewx/farmview/pkg/components"
	"github.com/gonewx/farmview/pkg/config"
	"github.com/gonewx/farmview/pkg/ecs"
	"github.com/gonewx/farmview/pkg/game"
	"github.com/gonewx/farmview/pkg/types"
	"github.com/gonewx/farmview/pkg/world"
)

func newTestScheduler(t *testing.T) *FrameScheduler {
	t.Helper()
	configs, err := config.LoadSceneConfigs("../../data/scenes")
	if err != nil {
		t.Fatalf("加载场景配置失败: %v", err)
	}
	w, err := world.New(configs, config.GameWindowWidth, config.GameWindowHeight)
	if err != nil {
		t.Fatalf("world.New() 失败: %v", err)
	}
	// 随机值固定为 0.9：农夫到达边界时不会转入劳作
	return NewFrameScheduler(w, game.NewSequenceRand(0.9), nil)
}

func cropInputs() game.Inputs {
	return game.Inputs{Health: game.HealthRecord{Crops: 100, Animals: 100}, Month: 1, Level: types.LevelCropOnly}
}

func primaryWorkerX(t *testing.T, s *FrameScheduler) float64 {
	t.Helper()
	w := s.World()
	worker, ok := ecs.GetComponent[*components.WorkerComponent](w.Entities, w.Workers()[0])
	if !ok {
		t.Fatal("找不到主农夫")
	}
	return worker.X
}

func TestSchedulerStepRequiresStart(t *testing.T) {
	s := newTestScheduler(t)
	if s.Step(cropInputs()) {
		t.Error("未启动时 Step 应返回 false")
	}
	if s.Running() || s.Frame() != 0 {
		t.Error("未启动时不应有活动循环")
	}
}

func TestSchedulerStartStop(t *testing.T) {
	s := newTestScheduler(t)
	s.Start()
	for i := 0; i < 5; i++ {
		if !s.Step(cropInputs()) {
			t.Fatal("启动后 Step 应返回 true")
		}
	}
	if s.Frame() != 5 {
		t.Errorf("Frame() = %d, 期望 5", s.Frame())
	}

	s.Stop()
	s.Stop()
	if s.Running() {
		t.Error("Stop 后不应有活动循环")
	}
	if s.Step(cropInputs()) {
		t.Error("Stop 后 Step 应返回 false")
	}

	// 重新启动从第 0 帧开始
	s.Start()
	s.Start()
	if s.Frame() != 0 {
		t.Errorf("重新启动后 Frame() = %d, 期望 0", s.Frame())
	}
}

func TestSchedulerStepPopulatesOnLevelChange(t *testing.T) {
	s := newTestScheduler(t)
	s.Start()

	s.Step(cropInputs())
	if got := len(s.World().Crops()); got != 18 {
		t.Fatalf("作物数量 = %d, 期望 18", got)
	}

	in := cropInputs()
	in.Level = types.LevelAnimalOnly
	s.Step(in)
	if got := len(s.World().Crops()); got != 0 {
		t.Errorf("切换到牧场后作物数量 = %d, 期望 0", got)
	}
	if got := len(s.World().Animals()); got != 10 {
		t.Errorf("切换到牧场后牲畜数量 = %d, 期望 10", got)
	}
}

// TestRepeatedViewEntryDoesNotSpeedUpWorkers 反复进入农场视图后，每个 tick 农夫仍只走一步
func TestRepeatedViewEntryDoesNotSpeedUpWorkers(t *testing.T) {
	s := newTestScheduler(t)
	farm := NewFarmScene(s, cropInputs)
	hidden := NewHiddenScene("hidden")

	sm := game.NewSceneManager()
	sm.SwitchTo(farm)
	sm.SwitchTo(hidden)
	sm.SwitchTo(farm)
	sm.SwitchTo(farm)
	sm.SwitchTo(farm)

	start := primaryWorkerX(t, s)
	const ticks = 100
	for i := 0; i < ticks; i++ {
		sm.Update(1.0 / 60.0)
	}

	if got, want := primaryWorkerX(t, s)-start, ticks*config.WorkerStep; got != want {
		t.Errorf("%d 个 tick 后农夫位移 = %v, 期望 %v", ticks, got, want)
	}
	if s.Frame() != ticks {
		t.Errorf("Frame() = %d, 期望 %d", s.Frame(), ticks)
	}
}

func TestHiddenViewFreezesScene(t *testing.T) {
	s := newTestScheduler(t)
	farm := NewFarmScene(s, cropInputs)
	sm := game.NewSceneManager()
	sm.SwitchTo(farm)
	sm.Update(1.0 / 60.0)

	sm.SwitchTo(NewHiddenScene("hidden"))
	x := primaryWorkerX(t, s)
	for i := 0; i < 10; i++ {
		sm.Update(1.0 / 60.0)
	}
	if primaryWorkerX(t, s) != x {
		t.Error("视图隐藏期间农夫不应移动")
	}
}

func TestSchedulerRunStopsWhenSinkDeclines(t *testing.T) {
	s := newTestScheduler(t)
	calls := 0
	err := s.Run(context.Background(), 1000, cropInputs, func(frame int, w *world.World) bool {
		calls++
		if frame != calls {
			t.Errorf("sink 收到帧号 %d, 期望 %d", frame, calls)
		}
		return frame < 10
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if calls != 10 {
		t.Errorf("sink 调用次数 = %d, 期望 10", calls)
	}
	if s.Running() {
		t.Error("Run 返回后不应有活动循环")
	}
}

func TestSchedulerRunStopsOnStop(t *testing.T) {
	s := newTestScheduler(t)
	calls := 0
	err := s.Run(context.Background(), 1000, cropInputs, func(frame int, w *world.World) bool {
		calls++
		if frame == 3 {
			s.Stop()
		}
		return true
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if calls != 3 {
		t.Errorf("Stop 后不应再推进帧, sink 调用次数 = %d", calls)
	}
}

func TestSchedulerRunContextCanceled(t *testing.T) {
	s := newTestScheduler(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Run(ctx, 60, cropInputs, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, 期望 context.Canceled", err)
	}
	if s.Running() {
		t.Error("取消后不应有活动循环")
	}
}

func TestSchedulerRunRejectsBadRate(t *testing.T) {
	s := newTestScheduler(t)
	if err := s.Run(context.Background(), 0, cropInputs, nil); err == nil {
		t.Error("帧率为 0 时应返回错误")
	}
}
