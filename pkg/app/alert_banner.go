package app

import (
	"image/color"
	"strings"

	"github.com/gonewx/farmview/pkg/config"
	"github.com/gonewx/farmview/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	// alertFrames 横幅显示总帧数（60 TPS 下约 3 秒）
	alertFrames = 180
	// alertFadeFrames 最后若干帧淡出
	alertFadeFrames = 45
	alertFontSize   = 18.0
	alertPaddingX   = 16.0
	alertPaddingY   = 10.0
	alertBottom     = 40.0
	alertMarginX    = 20.0
	alertLineHeight = alertFontSize * 1.3
)

var (
	alertColorInfo    = config.MustHexColor("#2E8B57")
	alertColorWarning = config.MustHexColor("#FFA500")
	alertColorDanger  = config.MustHexColor("#FF0000")
)

// alertBanner 决策结果提示横幅，显示在画面底部并逐渐淡出
type alertBanner struct {
	message   string
	color     color.NRGBA
	remaining int
	face      *text.GoTextFace
}

func newAlertBanner(font *text.GoTextFaceSource) *alertBanner {
	return &alertBanner{
		face: &text.GoTextFace{Source: font, Size: alertFontSize},
	}
}

// Show 显示新消息，覆盖正在显示的消息
func (b *alertBanner) Show(message string, clr color.NRGBA) {
	b.message = message
	b.color = clr
	b.remaining = alertFrames
}

// Update 每个 tick 调用一次
func (b *alertBanner) Update() {
	if b.remaining > 0 {
		b.remaining--
	}
}

// Active 是否仍在显示
func (b *alertBanner) Active() bool {
	return b.remaining > 0 && b.message != ""
}

// Alpha 当前不透明度
// 淡出阶段按 EaseOutCubic 曲线衰减
func (b *alertBanner) Alpha() float64 {
	if !b.Active() {
		return 0
	}
	if b.remaining >= alertFadeFrames {
		return 1
	}
	return utils.EaseOutCubic(float64(b.remaining) / alertFadeFrames)
}

// Draw 在画面底部居中绘制横幅，过长的消息自动换行
func (b *alertBanner) Draw(screen *ebiten.Image) {
	alpha := b.Alpha()
	if alpha <= 0 || b.face == nil || b.face.Source == nil {
		return
	}

	bounds := screen.Bounds()
	maxTextW := float64(bounds.Dx()) - 2*(alertMarginX+alertPaddingX)
	message := strings.Join(utils.WrapText(b.message, b.face, maxTextW), "\n")
	textW, textH := text.Measure(message, b.face, alertLineHeight)
	w := textW + alertPaddingX*2
	h := textH + alertPaddingY*2
	x := (float64(bounds.Dx()) - w) / 2
	y := float64(bounds.Dy()) - alertBottom - h

	utils.FillRect(screen, x, y, w, h, utils.WithAlpha(color.NRGBA{A: 255}, 0.75*alpha))
	utils.StrokeRect(screen, x, y, w, h, 2, utils.WithAlpha(b.color, alpha))

	op := &text.DrawOptions{}
	op.GeoM.Translate(x+alertPaddingX, y+alertPaddingY)
	op.LineSpacing = alertLineHeight
	op.ColorScale.ScaleWithColor(utils.WithAlpha(b.color, alpha))
	text.Draw(screen, message, b.face, op)
}
