package systems

import (
	"bytes"
	"fmt"

	"github.com/gonewx/farmview/pkg/game"
	"github.com/gonewx/farmview/pkg/types"
	"github.com/gonewx/farmview/pkg/utils"
	"github.com/gonewx/farmview/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomonobold"
)

// RenderSystem 程序化渲染器：每帧按画家算法从后往前绘制整个场景
//
// 图层顺序：天空 -> 太阳装饰 -> 云 -> 土壤 -> 草边 -> 作物/牲畜 -> 农夫 -> 状态面板。
// 渲染器只读取 World，不修改任何实体。
type RenderSystem struct {
	sky     *SkyRenderSystem
	soil    *SoilRenderSystem
	crops   *CropRenderSystem
	animals *AnimalRenderSystem
	workers *WorkerRenderSystem
	hud     *HUDRenderSystem

	hudHidden bool
}

// LoadHUDFont 加载状态面板使用的等宽粗体字体
func LoadHUDFont() (*text.GoTextFaceSource, error) {
	font, err := text.NewGoTextFaceSource(bytes.NewReader(gomonobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load HUD font: %w", err)
	}
	return font, nil
}

// NewRenderSystem 创建渲染器
// noiseSeed 决定土壤纹理的布局
func NewRenderSystem(noiseSeed int64) (*RenderSystem, error) {
	font, err := LoadHUDFont()
	if err != nil {
		return nil, err
	}
	return &RenderSystem{
		sky:     NewSkyRenderSystem(),
		soil:    NewSoilRenderSystem(noiseSeed),
		crops:   NewCropRenderSystem(),
		animals: NewAnimalRenderSystem(font),
		workers: NewWorkerRenderSystem(),
		hud:     NewHUDRenderSystem(font),
	}, nil
}

// SetHUDVisible 设置是否绘制状态面板
func (r *RenderSystem) SetHUDVisible(visible bool) {
	r.hudHidden = !visible
}

// HUDVisible 状态面板是否可见
func (r *RenderSystem) HUDVisible() bool {
	return !r.hudHidden
}

// Paint 绘制一帧
// screen 为 nil 或尺寸为 0 时跳过；场景尚未生成实体时只绘制背景和面板
func (r *RenderSystem) Paint(screen *ebiten.Image, w *world.World, frame int, in game.Inputs) {
	if screen == nil || w == nil {
		return
	}
	bounds := screen.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return
	}
	width, height := float64(bounds.Dx()), float64(bounds.Dy())

	level := w.Level
	cfg := w.Config
	if cfg == nil {
		level = in.Level
		cfg = w.SceneConfig(level)
	}
	if cfg == nil {
		return
	}

	r.sky.Draw(screen, cfg, frame, width, height)
	r.soil.Draw(screen, cfg, frame, width, height)

	r.crops.Draw(screen, w, frame, in.Health.Crops)
	r.animals.Draw(screen, w, in.Month)
	if level == types.LevelCombined {
		// 作物区与牧场之间的篱笆
		utils.StrokeLine(screen, width/2, w.SoilTop(), width/2, height, 4, colorFence)
	}

	r.workers.Draw(screen, w)
	if r.hudHidden {
		return
	}
	r.hud.Draw(screen, level, in, len(w.Crops()), len(w.Animals()))
}
