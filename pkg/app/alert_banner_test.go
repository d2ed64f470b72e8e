package app

import (
	"testing"

	"github.com/gonewx/farmview/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestAlertBannerLifetime(t *testing.T) {
	b := newAlertBanner(nil)
	if b.Active() || b.Alpha() != 0 {
		t.Fatal("新横幅不应处于显示状态")
	}

	b.Show("hello", alertColorInfo)
	if !b.Active() {
		t.Fatal("Show 之后横幅应显示")
	}
	if b.Alpha() != 1 {
		t.Errorf("淡出前不透明度应为 1，got %v", b.Alpha())
	}

	for i := 0; i < alertFrames-alertFadeFrames/2; i++ {
		b.Update()
	}
	alpha := b.Alpha()
	if alpha <= 0 || alpha >= 1 {
		t.Errorf("淡出阶段不透明度应在 (0, 1) 之间，got %v", alpha)
	}

	b.Update()
	if b.Alpha() > alpha {
		t.Error("淡出阶段不透明度不应回升")
	}

	for i := 0; i < alertFrames; i++ {
		b.Update()
	}
	if b.Active() || b.Alpha() != 0 {
		t.Error("显示时间结束后横幅应隐藏")
	}
}

func TestAlertBannerShowRestarts(t *testing.T) {
	b := newAlertBanner(nil)
	b.Show("first", alertColorWarning)
	for i := 0; i < alertFrames-1; i++ {
		b.Update()
	}

	b.Show("second", alertColorDanger)
	if b.message != "second" || b.color != alertColorDanger {
		t.Errorf("新消息应覆盖旧消息，got %q", b.message)
	}
	if b.Alpha() != 1 {
		t.Errorf("重新显示后不透明度应为 1，got %v", b.Alpha())
	}
}

func TestAlertBannerDraw(t *testing.T) {
	font, err := systems.LoadHUDFont()
	if err != nil {
		t.Fatalf("LoadHUDFont() 失败: %v", err)
	}
	screen := ebiten.NewImage(400, 300)

	// 未显示时不绘制，没有字体时也不绘制，均不应 panic
	newAlertBanner(font).Draw(screen)
	noFont := newAlertBanner(nil)
	noFont.Show("x", alertColorInfo)
	noFont.Draw(screen)

	b := newAlertBanner(font)
	b.Show("CRITICAL HEALTH ALERT", alertColorDanger)
	b.Draw(screen)

	// 窄画面上的长消息自动换行
	b.Show("Wrong decision: health -15, sustainability -10", alertColorWarning)
	b.Draw(ebiten.NewImage(200, 150))
}
