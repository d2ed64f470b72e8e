package systems

import (
	"testing"

	"github.com/gonewx/farmview/pkg/components"
	"github.com/gonewx/farmview/pkg/config"
	"github.com/gonewx/farmview/pkg/game"
	"github.com/gonewx/farmview/pkg/types"
)

func TestWorkerWalksOneStepPerFrame(t *testing.T) {
	w := newFarmWorld(t)
	w.SetLevel(types.LevelCropOnly)
	sys := NewWorkerBehaviorSystem(w, game.NewSequenceRand(0.9))
	worker := workerOf(t, w, 0)

	for frame := 1; frame <= 10; frame++ {
		sys.Update(frame)
	}
	if want := config.WorkerPrimaryStartX + 10*config.WorkerStep; worker.X != want {
		t.Errorf("10 帧后 X = %v, 期望 %v", worker.X, want)
	}
	if worker.Phase != (10/config.WorkerPhaseDivisor)%4 {
		t.Errorf("动画相位 = %d, 期望 %d", worker.Phase, (10/config.WorkerPhaseDivisor)%4)
	}
}

func TestWorkerBounceWithoutWorking(t *testing.T) {
	w := newFarmWorld(t)
	w.SetLevel(types.LevelCropOnly)
	sys := NewWorkerBehaviorSystem(w, game.NewSequenceRand(0.9))
	worker := workerOf(t, w, 0)
	_, maxX := config.WorkerRange(w.Width, false)
	worker.X = maxX - 1

	sys.Update(1)

	if worker.X != maxX {
		t.Errorf("到达边界后 X = %v, 期望钳制为 %v", worker.X, maxX)
	}
	if worker.Direction != -1 {
		t.Errorf("到达右边界后应掉头, Direction = %v", worker.Direction)
	}
	if worker.Mode != components.WorkerWalking {
		t.Errorf("随机值 0.9 不应转入劳作, Mode = %v", worker.Mode)
	}

	sys.Update(2)
	if worker.X != maxX-config.WorkerStep {
		t.Errorf("掉头后应向左行走, X = %v", worker.X)
	}
}

func TestWorkerBounceIntoWorking(t *testing.T) {
	w := newFarmWorld(t)
	w.SetLevel(types.LevelCropOnly)
	sys := NewWorkerBehaviorSystem(w, game.NewSequenceRand(0.1))
	worker := workerOf(t, w, 0)
	minX, _ := config.WorkerRange(w.Width, false)
	worker.X = minX + 1
	worker.Direction = -1

	sys.Update(1)
	if worker.Mode != components.WorkerWorking || worker.ModeTimer != 0 {
		t.Fatalf("到达边界且随机值 0.1 时应转入劳作, 实际 %v timer=%d", worker.Mode, worker.ModeTimer)
	}
	if worker.Direction != 1 {
		t.Errorf("到达左边界后应掉头, Direction = %v", worker.Direction)
	}

	frozenX := worker.X
	for frame := 2; frame <= 1+config.WorkerWorkFrames; frame++ {
		sys.Update(frame)
		if worker.X != frozenX {
			t.Fatalf("劳作期间位置应冻结, 第 %d 帧 X = %v", frame, worker.X)
		}
		if worker.Mode != components.WorkerWorking {
			t.Fatalf("劳作未满 %d 帧就恢复行走 (第 %d 帧)", config.WorkerWorkFrames, frame)
		}
	}

	sys.Update(2 + config.WorkerWorkFrames)
	if worker.Mode != components.WorkerWalking {
		t.Errorf("劳作超过 %d 帧后应恢复行走", config.WorkerWorkFrames)
	}
}

func TestSecondaryWorkerOnlyInCombinedLevel(t *testing.T) {
	w := newFarmWorld(t)
	w.SetLevel(types.LevelCombined)
	secondary := workerOf(t, w, 1)

	w.SetLevel(types.LevelAnimalOnly)
	sys := NewWorkerBehaviorSystem(w, game.NewSequenceRand(0.9))
	for frame := 1; frame <= 5; frame++ {
		sys.Update(frame)
	}
	if secondary.X != config.WorkerSecondaryStartX {
		t.Errorf("非综合关卡中副农夫不应移动, X = %v", secondary.X)
	}

	w.SetLevel(types.LevelCombined)
	sys.Update(6)
	if secondary.X != config.WorkerSecondaryStartX+config.WorkerStep {
		t.Errorf("综合关卡中副农夫应移动, X = %v", secondary.X)
	}
}

func TestWorkerClampedAfterResize(t *testing.T) {
	w := newFarmWorld(t)
	w.SetLevel(types.LevelCombined)
	sys := NewWorkerBehaviorSystem(w, game.NewSequenceRand(0.9))
	secondary := workerOf(t, w, 1)

	w.Resize(400, 600)
	sys.Update(1)

	minX, maxX := config.WorkerRange(400, true)
	if secondary.X < minX || secondary.X > maxX {
		t.Errorf("缩小画面后副农夫 X = %v 超出 [%v, %v]", secondary.X, minX, maxX)
	}
}
