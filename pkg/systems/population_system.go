package systems

import (
	"math"

	"github.com/gonewx/farmview/pkg/config"
	"github.com/gonewx/farmview/pkg/entities"
	"github.com/gonewx/farmview/pkg/game"
	"github.com/gonewx/farmview/pkg/types"
	"github.com/gonewx/farmview/pkg/world"
)

// PopulationSystem 保证场景中的作物和牲畜群体与当前关卡一致
//
// 切换关卡时整体替换两类群体：旧群体全部销毁，再按新关卡的配置重新生成。
// 农夫不受影响。
type PopulationSystem struct {
	world *world.World
	rng   game.Rand
}

// NewPopulationSystem 创建群体系统
func NewPopulationSystem(w *world.World, rng game.Rand) *PopulationSystem {
	return &PopulationSystem{
		world: w,
		rng:   rng,
	}
}

// EnsurePopulation 确保群体与关卡匹配
//
// 关卡未变化且群体数量与配置一致时不做任何事；无效关卡被忽略。
func (s *PopulationSystem) EnsurePopulation(level types.Level) {
	if !level.Valid() {
		return
	}
	cfg := s.world.SceneConfig(level)
	if cfg == nil {
		return
	}

	em := s.world.Entities
	if s.world.Level == level &&
		len(s.world.Crops()) == cfg.CropCount() &&
		len(s.world.Animals()) == cfg.HerdSize() {
		return
	}

	for _, id := range s.world.Crops() {
		em.DestroyEntity(id)
	}
	for _, id := range s.world.Animals() {
		em.DestroyEntity(id)
	}
	em.RemoveMarkedEntities()

	s.world.SetLevel(level)
	s.spawnCrops(cfg)
	s.spawnAnimals(cfg)
}

// spawnCrops 按行优先顺序填满作物网格，每格随机选择作物种类与摇摆参数
func (s *PopulationSystem) spawnCrops(cfg *config.SceneConfig) {
	grid := cfg.Crops
	if grid == nil {
		return
	}
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			cropType := types.AllCropTypes[s.rng.IntN(len(types.AllCropTypes))]
			phase := s.rng.Float64() * 2 * math.Pi
			speed := grid.SwaySpeedMin + s.rng.Float64()*grid.SwaySpeedRange
			entities.NewCropEntity(s.world.Entities, cropType, col, row, phase, speed)
		}
	}
}

// spawnAnimals 按物种依次生成牲畜，横向等距排列，纵向随机
func (s *PopulationSystem) spawnAnimals(cfg *config.SceneConfig) {
	for _, herd := range cfg.Herd {
		animalType := herd.AnimalType()
		for i := 0; i < herd.Count; i++ {
			x := herd.StartX + float64(i)*herd.SpacingX
			y := herd.MinY + s.rng.Float64()*herd.RangeY
			entities.NewAnimalEntity(s.world.Entities, animalType, x, y, herd.Speed)
		}
	}
}
