package telemetry

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/gonewx/farmview/pkg/config"
	"github.com/gonewx/farmview/pkg/game"
	"github.com/gonewx/farmview/pkg/systems"
	"github.com/gonewx/farmview/pkg/types"
	"github.com/gonewx/farmview/pkg/world"
)

func newTraceWorld(t *testing.T, level types.Level) *world.World {
	t.Helper()
	configs, err := config.LoadSceneConfigs("../../data/scenes")
	if err != nil {
		t.Fatalf("加载场景配置失败: %v", err)
	}
	w, err := world.New(configs, 800, 600)
	if err != nil {
		t.Fatalf("world.New() 失败: %v", err)
	}
	rng := game.NewRand(9)
	systems.NewPopulationSystem(w, rng).EnsurePopulation(level)
	systems.NewAnimationUpdater(w, rng).Advance(1, game.Inputs{
		Health: game.HealthRecord{Crops: 80, Animals: 65},
		Month:  3,
		Level:  level,
	})
	return w
}

func TestSnapshotCombinedLevel(t *testing.T) {
	w := newTraceWorld(t, types.LevelCombined)
	records := Snapshot(1, w)

	counts := map[string]int{}
	for _, r := range records {
		counts[r.Kind]++
		if r.Frame != 1 {
			t.Fatalf("帧号应为 1，got %d", r.Frame)
		}
	}
	if counts[KindCrop] != 32 || counts[KindAnimal] != 14 || counts[KindWorker] != 2 {
		t.Errorf("实体数量: got %v, want crop=32 animal=14 worker=2", counts)
	}

	// 顺序：作物、牲畜、农夫
	if records[0].Kind != KindCrop || records[len(records)-1].Kind != KindWorker {
		t.Errorf("记录顺序错误: first=%s last=%s", records[0].Kind, records[len(records)-1].Kind)
	}

	for _, r := range records {
		switch r.Kind {
		case KindCrop:
			if r.Stage != 3 {
				t.Errorf("第 3 个月作物阶段应为 3，got %d", r.Stage)
			}
		case KindAnimal:
			if r.Health != 65 {
				t.Errorf("牲畜健康应复制自输入，got %v", r.Health)
			}
		case KindWorker:
			if r.Mode != "walking" {
				t.Errorf("第 1 帧农夫应在行走，got %s", r.Mode)
			}
		}
	}
}

func TestSnapshotSingleLevels(t *testing.T) {
	field := Snapshot(1, newTraceWorld(t, types.LevelCropOnly))
	for _, r := range field {
		if r.Kind == KindAnimal {
			t.Fatal("作物关卡不应有牲畜记录")
		}
	}

	pasture := Snapshot(1, newTraceWorld(t, types.LevelAnimalOnly))
	workers := 0
	for _, r := range pasture {
		if r.Kind == KindCrop {
			t.Fatal("牲畜关卡不应有作物记录")
		}
		if r.Kind == KindWorker {
			workers++
		}
	}
	if workers != 1 {
		t.Errorf("单一关卡应只有主农夫，got %d", workers)
	}
}

func TestTraceWriterHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTraceWriter(&buf)

	if err := tw.Write(nil); err != nil {
		t.Fatalf("空批次 Write() 失败: %v", err)
	}
	if buf.Len() != 0 {
		t.Error("空批次不应写入任何内容")
	}

	batch := []TraceRecord{
		{Frame: 1, Kind: KindCrop, Species: "corn", X: 50, Y: 420, Stage: 2},
		{Frame: 1, Kind: KindWorker, Species: "primary", X: 101.5, Mode: "walking"},
	}
	if err := tw.Write(batch); err != nil {
		t.Fatalf("Write() 失败: %v", err)
	}
	if err := tw.Write(batch[:1]); err != nil {
		t.Fatalf("第二次 Write() 失败: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("应为 1 行表头 + 3 行数据，got %d 行:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "frame,kind,species,x,y") {
		t.Errorf("表头错误: %s", lines[0])
	}
	if strings.Count(buf.String(), "frame,kind") != 1 {
		t.Error("表头只应写入一次")
	}
	if tw.Rows() != 3 {
		t.Errorf("Rows() = %d, want 3", tw.Rows())
	}
	if tw.BytesWritten() != int64(buf.Len()) {
		t.Errorf("BytesWritten() = %d, want %d", tw.BytesWritten(), buf.Len())
	}

	// 写出的 CSV 可以读回
	var decoded []TraceRecord
	if err := gocsv.UnmarshalString(buf.String(), &decoded); err != nil {
		t.Fatalf("读回 CSV 失败: %v", err)
	}
	if len(decoded) != 3 || decoded[1].Mode != "walking" || decoded[1].X != 101.5 {
		t.Errorf("读回内容不一致: %+v", decoded)
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestTraceWriterPropagatesErrors(t *testing.T) {
	tw := NewTraceWriter(failingWriter{})
	err := tw.Write([]TraceRecord{{Frame: 1, Kind: KindCrop}})
	if err == nil {
		t.Fatal("底层写入失败时应返回错误")
	}
	if tw.Rows() != 0 {
		t.Errorf("失败的写入不应计入行数，got %d", tw.Rows())
	}
}
