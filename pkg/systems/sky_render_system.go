package systems

import (
	"image/color"
	"math"

	"github.com/gonewx/farmview/pkg/config"
	"github.com/gonewx/farmview/pkg/types"
	"github.com/gonewx/farmview/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// GradientColorAt 返回纵向渐变在 t (0=顶部, 1=底部) 处的颜色
// t 超出首尾色标时取首尾色标的颜色
func GradientColorAt(stops []config.GradientStop, t float64) color.NRGBA {
	if len(stops) == 0 {
		return color.NRGBA{}
	}
	if t <= stops[0].Offset {
		return stops[0].Color.Color()
	}
	for i := 1; i < len(stops); i++ {
		prev, next := stops[i-1], stops[i]
		if t > next.Offset {
			continue
		}
		span := next.Offset - prev.Offset
		if span <= 0 {
			return next.Color.Color()
		}
		return utils.LerpColor(prev.Color.Color(), next.Color.Color(), (t-prev.Offset)/span)
	}
	return stops[len(stops)-1].Color.Color()
}

// CloudOffset 云朵在第 frame 帧的水平漂移量，范围 [0, width)
func CloudOffset(frame int, width float64) float64 {
	if width <= 0 {
		return 0
	}
	return math.Mod(float64(frame)*config.CloudDriftSpeed, width)
}

type skyKey struct {
	level  types.Level
	height int
}

// SkyRenderSystem 绘制天空渐变、太阳装饰和云朵
//
// 渐变按 (关卡, 画面高度) 预先生成 1 像素宽的竖条，每帧横向拉伸绘制。
type SkyRenderSystem struct {
	gradients map[skyKey]*ebiten.Image
	clouds    map[int]*ebiten.Image
}

// NewSkyRenderSystem 创建天空渲染系统
func NewSkyRenderSystem() *SkyRenderSystem {
	return &SkyRenderSystem{
		gradients: make(map[skyKey]*ebiten.Image),
		clouds:    make(map[int]*ebiten.Image),
	}
}

// Draw 绘制天空层
func (s *SkyRenderSystem) Draw(screen *ebiten.Image, cfg *config.SceneConfig, frame int, width, height float64) {
	s.drawGradient(screen, cfg, width, height)
	drawOrnament(screen, cfg.Ornament, width)

	offset := CloudOffset(frame, width)
	for _, c := range []struct{ x, y, size float64 }{
		{100, 50, 60},
		{width - 200, 80, 50},
	} {
		// 移出右侧的部分从左侧补回
		s.drawCloud(screen, c.x+offset, c.y, c.size)
		s.drawCloud(screen, c.x+offset-width, c.y, c.size)
	}
}

func (s *SkyRenderSystem) drawGradient(screen *ebiten.Image, cfg *config.SceneConfig, width, height float64) {
	h := int(height)
	if h <= 0 {
		return
	}
	key := skyKey{level: cfg.Level, height: h}
	strip, ok := s.gradients[key]
	if !ok {
		strip = ebiten.NewImage(1, h)
		pixels := make([]byte, 4*h)
		for y := 0; y < h; y++ {
			t := 0.0
			if h > 1 {
				t = float64(y) / float64(h-1)
			}
			c := color.RGBAModel.Convert(GradientColorAt(cfg.Sky.Stops, t)).(color.RGBA)
			pixels[4*y], pixels[4*y+1], pixels[4*y+2], pixels[4*y+3] = c.R, c.G, c.B, c.A
		}
		strip.WritePixels(pixels)
		s.gradients[key] = strip
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(width, 1)
	screen.DrawImage(strip, op)
}

func drawOrnament(screen *ebiten.Image, o config.OrnamentConfig, width float64) {
	cx, cy := width-config.SunOffsetX, config.SunY
	sun := o.SunColor.Color()
	accent := o.AccentColor.Color()

	utils.FillCircle(screen, cx, cy, o.Radius, sun)

	switch o.Kind {
	case config.OrnamentRays:
		for i := 0; i < 8; i++ {
			angle := float64(i) * math.Pi / 4
			cos, sin := math.Cos(angle), math.Sin(angle)
			utils.StrokeLine(screen,
				cx+cos*(o.Radius+5), cy+sin*(o.Radius+5),
				cx+cos*(o.Radius+20), cy+sin*(o.Radius+20),
				3, accent)
		}

	case config.OrnamentHalo:
		utils.FillCircle(screen, cx, cy, o.Radius+15, accent)

	case config.OrnamentReservoir:
		// 蓄水池图标：外框、水面和两条分隔线
		x := width - 150
		utils.StrokeRect(screen, x, 40, 30, 20, 2, accent)
		utils.FillRect(screen, x+2, 42, 26, 16, accent)
		divider := utils.LerpColor(accent, colorBlack, 0.4)
		for i := 1; i < 3; i++ {
			lx := x + 2 + float64(i)*8
			utils.StrokeLine(screen, lx, 42, lx, 58, 1, divider)
		}
	}
}

// drawCloud 云朵由三个圆组成，先合成到不透明贴图再整体半透明绘制，避免重叠处颜色加深
func (s *SkyRenderSystem) drawCloud(screen *ebiten.Image, x, y, size float64) {
	key := int(size)
	sprite, ok := s.clouds[key]
	if !ok {
		w, h := int(math.Ceil(size*1.8)), int(math.Ceil(size))
		sprite = ebiten.NewImage(w, h)
		r := size * 0.5
		utils.FillCircle(sprite, r, r, r, colorCloud)
		utils.FillCircle(sprite, r+size*0.4, r, size*0.4, colorCloud)
		utils.FillCircle(sprite, r+size*0.8, r, r, colorCloud)
		s.clouds[key] = sprite
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleAlpha(0.8)
	screen.DrawImage(sprite, op)
}
