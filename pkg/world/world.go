// Package world 保存农场场景的全部可变状态：关卡、画面尺寸以及
// 作物、牲畜、农夫三类实体集合。
//
// World 由帧调度器独占；更新系统修改它，渲染系统只读取它。
package world

import (
	"fmt"

	"github.com/gonewx/farmview/pkg/components"
	"github.com/gonewx/farmview/pkg/config"
	"github.com/gonewx/farmview/pkg/ecs"
	"github.com/gonewx/farmview/pkg/entities"
	"github.com/gonewx/farmview/pkg/types"
)

// World 场景状态聚合
type World struct {
	// Level 当前已生成实体的关卡，尚未生成时为 0
	Level types.Level
	// Config 当前关卡的场景配置，尚未生成时为 nil
	Config *config.SceneConfig

	// Width, Height 画面尺寸（像素）
	Width  float64
	Height float64

	Entities *ecs.EntityManager

	configs         map[types.Level]*config.SceneConfig
	primaryWorker   ecs.EntityID
	secondaryWorker ecs.EntityID
}

// New 创建场景状态并放置两名农夫
// configs 必须包含全部三个关卡的配置
func New(configs map[types.Level]*config.SceneConfig, width, height float64) (*World, error) {
	for _, level := range types.AllLevels {
		if configs[level] == nil {
			return nil, fmt.Errorf("missing scene config for level %d (%s)", level, level)
		}
	}

	em := ecs.NewEntityManager()
	w := &World{
		Width:    width,
		Height:   height,
		Entities: em,
		configs:  configs,
	}
	w.primaryWorker = entities.NewWorkerEntity(em, config.WorkerPrimaryStartX, false)
	w.secondaryWorker = entities.NewWorkerEntity(em, config.WorkerSecondaryStartX, true)
	return w, nil
}

// SceneConfig 返回指定关卡的配置，无效关卡返回 nil
func (w *World) SceneConfig(level types.Level) *config.SceneConfig {
	return w.configs[level]
}

// SetLevel 切换当前关卡及其配置，不触碰实体
func (w *World) SetLevel(level types.Level) {
	w.Level = level
	w.Config = w.configs[level]
}

// Resize 更新画面尺寸，负值按 0 处理
func (w *World) Resize(width, height float64) {
	w.Width = max(width, 0)
	w.Height = max(height, 0)
}

// SoilTop 返回土壤带顶部纵坐标
func (w *World) SoilTop() float64 {
	return config.SoilTop(w.Height)
}

// Crops 返回全部作物实体（按ID升序）
func (w *World) Crops() []ecs.EntityID {
	return ecs.GetEntitiesWith1[*components.CropComponent](w.Entities)
}

// Animals 返回全部牲畜实体（按ID升序）
func (w *World) Animals() []ecs.EntityID {
	return ecs.GetEntitiesWith2[*components.AnimalComponent, *components.PositionComponent](w.Entities)
}

// Workers 返回当前关卡中活动的农夫：综合关卡两名，其余关卡只有主农夫
func (w *World) Workers() []ecs.EntityID {
	if w.Level == types.LevelCombined {
		return []ecs.EntityID{w.primaryWorker, w.secondaryWorker}
	}
	return []ecs.EntityID{w.primaryWorker}
}

// CropPosition 返回作物根部的屏幕坐标（不含摇摆偏移）
func (w *World) CropPosition(crop *components.CropComponent) (x, y float64) {
	if w.Config == nil || w.Config.Crops == nil {
		return 0, 0
	}
	grid := w.Config.Crops
	x = grid.StartX + float64(crop.GridCol)*grid.SpacingX
	y = w.SoilTop() + config.CropGridOffsetY + float64(crop.GridRow)*grid.SpacingY
	return x, y
}

// WanderBounds 返回牲畜游荡目标的取值区域 [minX,maxX) × [minY,maxY)
// 画面过窄时 maxX 退化为 minX
func (w *World) WanderBounds() (minX, maxX, minY, maxY float64) {
	if w.Config == nil {
		return 0, 0, 0, 0
	}
	wander := w.Config.Wander
	minX = wander.MinX
	maxX = max(w.Width-wander.MarginRight, minX)
	minY = w.SoilTop() + wander.OffsetY
	maxY = minY + wander.RangeY
	return minX, maxX, minY, maxY
}
