package systems

import (
	"fmt"

	"github.com/gonewx/farmview/pkg/config"
	"github.com/gonewx/farmview/pkg/game"
	"github.com/gonewx/farmview/pkg/types"
	"github.com/gonewx/farmview/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// HUDLine 状态面板中的一行文本
type HUDLine struct {
	Text string
	// Size 字号
	Size float64
	// Baseline 基线纵坐标
	Baseline float64
}

// HUDLines 生成状态面板的全部文本行
//   - 标题行："<视图> - <月份> m/6"
//   - 健康行：单群体关卡一行，综合关卡作物和牲畜各一行
//   - 数量行：当前场景中的作物/牲畜数量
func HUDLines(level types.Level, in game.Inputs, crops, animals int) []HUDLine {
	labels := in.LabelSet()
	title := config.HUDTitleFontSize
	small := config.HUDCountFontSize

	healthLine := func(prefix string, health float64, baseline float64) HUDLine {
		status := labels.StatusName(types.ClassifyHealth(health))
		return HUDLine{
			Text:     fmt.Sprintf("%s %s: %s", prefix, labels.Health, status),
			Size:     title,
			Baseline: baseline,
		}
	}

	lines := []HUDLine{{
		Text:     fmt.Sprintf("%s - %s %d/6", labels.ViewTitle(level), labels.Month, in.Month),
		Size:     title,
		Baseline: 35,
	}}

	switch level {
	case types.LevelCropOnly:
		lines = append(lines,
			healthLine(labels.Crops, in.Health.Crops, 60),
			HUDLine{Text: fmt.Sprintf("%d %s", crops, labels.PlantsNoun), Size: small, Baseline: 80},
		)
	case types.LevelAnimalOnly:
		lines = append(lines,
			healthLine(labels.Animals, in.Health.Animals, 60),
			HUDLine{Text: fmt.Sprintf("%d %s", animals, labels.AnimalsNoun), Size: small, Baseline: 80},
		)
	default:
		lines = append(lines,
			healthLine(labels.Crops, in.Health.Crops, 60),
			healthLine(labels.Animals, in.Health.Animals, 80),
			HUDLine{
				Text:     fmt.Sprintf("%d %s, %d %s", crops, labels.PlantsNoun, animals, labels.AnimalsNoun),
				Size:     small,
				Baseline: 95,
			},
		)
	}
	return lines
}

// HUDRenderSystem 绘制左上角的状态面板
type HUDRenderSystem struct {
	faces map[float64]*text.GoTextFace
	font  *text.GoTextFaceSource
}

// NewHUDRenderSystem 创建状态面板渲染系统
func NewHUDRenderSystem(font *text.GoTextFaceSource) *HUDRenderSystem {
	return &HUDRenderSystem{
		faces: make(map[float64]*text.GoTextFace),
		font:  font,
	}
}

func (s *HUDRenderSystem) face(size float64) *text.GoTextFace {
	f, ok := s.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: s.font, Size: size}
		s.faces[size] = f
	}
	return f
}

// Draw 绘制面板与文本
func (s *HUDRenderSystem) Draw(screen *ebiten.Image, level types.Level, in game.Inputs, crops, animals int) {
	height := config.HUDPanelHeight
	if level == types.LevelCombined {
		height = config.HUDPanelHeightCombined
	}
	utils.FillRect(screen, config.HUDPanelX, config.HUDPanelY, config.HUDPanelWidth, height, colorHUDPanel)
	utils.StrokeRect(screen, config.HUDPanelX, config.HUDPanelY, config.HUDPanelWidth, height, 2, colorHUDText)

	for _, line := range HUDLines(level, in, crops, animals) {
		drawTextAtBaseline(screen, line.Text, s.face(line.Size), config.HUDPanelX+10, line.Baseline, colorHUDText)
	}
}
