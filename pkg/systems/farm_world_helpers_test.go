package systems

import (
	"testing"

	"github.com/gonewx/farmview/pkg/components"
	"github.com/gonewx/farmview/pkg/config"
	"github.com/gonewx/farmview/pkg/ecs"
	"github.com/gonewx/farmview/pkg/world"
)

// newFarmWorld 加载仓库中的场景配置，创建 800x600 的场景
func newFarmWorld(t *testing.T) *world.World {
	t.Helper()
	configs, err := config.LoadSceneConfigs("../../data/scenes")
	if err != nil {
		t.Fatalf("加载场景配置失败: %v", err)
	}
	w, err := world.New(configs, 800, 600)
	if err != nil {
		t.Fatalf("world.New() 失败: %v", err)
	}
	return w
}

// workerOf 返回场景中第 i 名活动农夫
func workerOf(t *testing.T, w *world.World, i int) *components.WorkerComponent {
	t.Helper()
	ids := w.Workers()
	if i >= len(ids) {
		t.Fatalf("活动农夫只有 %d 名", len(ids))
	}
	worker, ok := ecs.GetComponent[*components.WorkerComponent](w.Entities, ids[i])
	if !ok {
		t.Fatal("农夫实体缺少 WorkerComponent")
	}
	return worker
}
