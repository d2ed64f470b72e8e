//go:build mobile

// Package mobile 是农场视图的 ebitenmobile 绑定入口
//
// 只在 -tags mobile 时编译，产物为 Android .aar 或 iOS .xcframework。
// 移动端没有键盘，App 在 utils.IsMobile() 为 true 时改用触摸分区操作：
// 顶部切换关卡，左右两侧切换月份，中间隐藏/显示农场视图。
//
//	make build-android    # Android
//	make build-ios        # iOS (仅 macOS)
//
// 两个目标都会先执行 make prepare-mobile，把 data/ 复制到本目录供 embed.go 使用。
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/gonewx/farmview/pkg/app"
	"github.com/gonewx/farmview/pkg/embedded"
)

func init() {
	embedded.Init(dataFS)

	// 关卡、月份、语言和种子均从存档与设置恢复
	farmApp, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("[Mobile] 初始化失败: %v", err)
	}

	mobile.SetGame(farmApp)
}

// Dummy 供 ebitenmobile 识别本包的导出符号
func Dummy() {}
