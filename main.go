package main

import (
	"flag"
	"log"

	"github.com/gonewx/farmview/pkg/app"
	"github.com/gonewx/farmview/pkg/config"
	"github.com/gonewx/farmview/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	level := flag.String("level", "", "起始关卡：field/pasture/farm 或 1/2/3（为空则从存档恢复）")
	month := flag.Int("month", 0, "起始月份 1-6（0 表示从存档恢复）")
	lang := flag.String("lang", "", "语言：en/es（为空则使用上次的设置）")
	seed := flag.Uint64("seed", 0, "随机种子（0 表示使用设置或按时间生成）")
	verbose := flag.Bool("verbose", false, "输出详细日志")
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:  *verbose,
		Level:    *level,
		Month:    *month,
		Language: *lang,
		Seed:     *seed,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Living Farm")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(gameApp.Settings().Fullscreen)

	runErr := ebiten.RunGame(gameApp)
	if err := gameApp.Close(); err != nil {
		log.Printf("[Main] Warning: failed to save on exit: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
