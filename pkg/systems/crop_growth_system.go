package systems

import (
	"math"

	"github.com/gonewx/farmview/pkg/components"
	"github.com/gonewx/farmview/pkg/config"
	"github.com/gonewx/farmview/pkg/ecs"
	"github.com/gonewx/farmview/pkg/world"
)

// CropGrowthSystem 推进作物摇摆动画，并将生长阶段与当前月份同步
type CropGrowthSystem struct {
	world *world.World
}

// NewCropGrowthSystem 创建作物生长系统
func NewCropGrowthSystem(w *world.World) *CropGrowthSystem {
	return &CropGrowthSystem{world: w}
}

// GrowthStageForMonth 月份对应的生长阶段，钳制在 [0, 6]
func GrowthStageForMonth(month int) int {
	return min(max(month, 0), config.CropMaxGrowthStage)
}

// Update 每帧调用一次
func (s *CropGrowthSystem) Update(month int) {
	stage := GrowthStageForMonth(month)
	em := s.world.Entities
	for _, id := range s.world.Crops() {
		crop, ok := ecs.GetComponent[*components.CropComponent](em, id)
		if !ok {
			continue
		}
		crop.SwayPhase += crop.SwaySpeed
		crop.SwayOffset = math.Sin(crop.SwayPhase) * config.CropSwayAmplitude
		crop.GrowthStage = stage
	}
}
