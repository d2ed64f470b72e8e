package systems

import (
	"image/color"
	"math"

	"github.com/gonewx/farmview/pkg/components"
	"github.com/gonewx/farmview/pkg/config"
	"github.com/gonewx/farmview/pkg/ecs"
	"github.com/gonewx/farmview/pkg/utils"
	"github.com/gonewx/farmview/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
)

// workerFigureWidth 人物包围盒宽度，朝左时以此为轴镜像
const workerFigureWidth = 40.0

// WorkerPose 农夫当前帧的肢体姿态
type WorkerPose struct {
	// ArmOffset 手臂纵向摆动（左臂 +，右臂 -）
	ArmOffset float64
	// LegOffset 腿部纵向摆动，劳作时为 0
	LegOffset float64
	// Tool 是否手持锄头
	Tool bool
}

// WorkerPoseFor 根据状态和动画相位计算姿态
// 劳作时手臂按三角波大幅挥动；行走时手臂小幅摆动并迈腿
func WorkerPoseFor(worker *components.WorkerComponent) WorkerPose {
	if worker.Mode == components.WorkerWorking {
		return WorkerPose{
			ArmOffset: 10 * utils.TriangleWave(float64(worker.Phase)/4),
			Tool:      true,
		}
	}
	swing := math.Sin(float64(worker.Phase) * math.Pi / 2)
	return WorkerPose{
		ArmOffset: 5 * swing,
		LegOffset: 8 * swing,
	}
}

// WorkerRenderSystem 绘制农夫
type WorkerRenderSystem struct{}

// NewWorkerRenderSystem 创建农夫渲染系统
func NewWorkerRenderSystem() *WorkerRenderSystem {
	return &WorkerRenderSystem{}
}

// Draw 绘制当前关卡中活动的农夫
func (s *WorkerRenderSystem) Draw(screen *ebiten.Image, w *world.World) {
	y := w.SoilTop() - config.WorkerHeightAboveSoil
	for _, id := range w.Workers() {
		worker, ok := ecs.GetComponent[*components.WorkerComponent](w.Entities, id)
		if !ok {
			continue
		}
		drawWorker(screen, worker.X, y, worker.Direction < 0, WorkerPoseFor(worker))
	}
}

// figure 以人物包围盒左上角为原点的局部坐标绘制，朝左时水平镜像
type figure struct {
	dst    *ebiten.Image
	x, y   float64
	mirror bool
}

func (f figure) px(dx float64) float64 {
	if f.mirror {
		return f.x + workerFigureWidth - dx
	}
	return f.x + dx
}

func (f figure) rect(dx, dy, w, h float64, clr color.Color) {
	x := f.px(dx)
	if f.mirror {
		x -= w
	}
	utils.FillRect(f.dst, x, f.y+dy, w, h, clr)
}

func drawWorker(dst *ebiten.Image, x, y float64, facingLeft bool, pose WorkerPose) {
	f := figure{dst: dst, x: x, y: y, mirror: facingLeft}

	// 头和草帽
	f.rect(12, 0, 16, 16, colorSkin)
	f.rect(8, -8, 24, 8, colorHat)
	f.rect(12, -12, 16, 4, colorHat)

	// 身体
	f.rect(8, 16, 24, 24, colorShirt)

	// 手臂
	f.rect(4, 20+pose.ArmOffset, 8, 16, colorSkin)
	f.rect(28, 20-pose.ArmOffset, 8, 16, colorSkin)

	// 腿
	f.rect(12, 40+pose.LegOffset, 8, 20, colorTrousers)
	f.rect(20, 40-pose.LegOffset, 8, 20, colorTrousers)

	if pose.Tool {
		utils.StrokeLine(dst, f.px(36), y+24, f.px(44), y+40, 3, colorHat)
		f.rect(42, 40, 8, 4, colorHoeBlade)
	}
}
