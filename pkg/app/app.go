// Package app 提供农场应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"slices"
	"time"

	"github.com/gonewx/farmview/pkg/config"
	"github.com/gonewx/farmview/pkg/game"
	"github.com/gonewx/farmview/pkg/scenes"
	"github.com/gonewx/farmview/pkg/systems"
	"github.com/gonewx/farmview/pkg/types"
	"github.com/gonewx/farmview/pkg/utils"
	"github.com/gonewx/farmview/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// 数据目录
const (
	scenesDir  = "data/scenes"
	localesDir = "data/locales"
)

// healthStep 每次按键调整的健康值
const healthStep = 10.0

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Level 指定关卡（"field" / "2" 等），为空则从存档恢复
	Level string
	// Month 指定起始月份，0 表示从存档恢复
	Month int
	// Language 指定语言，为空则使用设置中的语言
	Language string
	// Seed 随机种子，0 表示使用设置中的种子（仍为 0 时按时间生成）
	Seed uint64
	// AppName gdata 存储目录名，为空时使用 "farmview"
	AppName string
	// NoStorage 不读写存档和设置（仅内存）
	NoStorage bool
}

// App 是农场应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	farmScene    *scenes.FarmScene
	hiddenScene  *scenes.HiddenScene
	renderer     *systems.RenderSystem

	saveManager     *game.SaveManager
	settingsManager *game.SettingsManager
	state           *game.FarmState

	labels    map[string]*config.LabelSet
	languages []string
	banner    *alertBanner

	viewHidden               bool
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，桌面端和移动端必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	sceneConfigs, err := config.LoadSceneConfigs(scenesDir)
	if err != nil {
		return nil, fmt.Errorf("场景配置加载失败: %w", err)
	}
	labels, err := config.LoadLabelSets(localesDir)
	if err != nil {
		return nil, fmt.Errorf("语言包加载失败: %w", err)
	}
	log.Printf("[Config] 加载 %d 个场景配置, %d 个语言包", len(sceneConfigs), len(labels))

	gdataManager := openStorage(cfg)
	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("设置管理器初始化失败: %w", err)
	}
	saveManager, err := game.NewSaveManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("存档管理器初始化失败: %w", err)
	}

	settings := settingsManager.GetSettings()
	if cfg.Language != "" {
		settingsManager.SetLanguage(cfg.Language)
	}
	if _, ok := labels[settings.Language]; !ok {
		log.Printf("[App] Warning: unknown language %q, falling back to en", settings.Language)
		settingsManager.SetLanguage("en")
	}

	state := saveManager.GetState()
	if cfg.Level != "" {
		level, err := types.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid level: %w", err)
		}
		if err := state.SelectLevel(level); err != nil {
			return nil, err
		}
	}
	if cfg.Month != 0 {
		state.SetMonth(cfg.Month)
	}
	log.Printf("[App] Starting level %v, month %d", state.Level, state.Month)

	seed := cfg.Seed
	if seed == 0 {
		seed = settings.Seed
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("[App] Seed: %d", seed)

	renderer, err := systems.NewRenderSystem(int64(seed))
	if err != nil {
		return nil, err
	}
	renderer.SetHUDVisible(settings.ShowHUD)

	w, err := world.New(sceneConfigs, config.GameWindowWidth, config.GameWindowHeight)
	if err != nil {
		return nil, fmt.Errorf("场景初始化失败: %w", err)
	}

	font, err := systems.LoadHUDFont()
	if err != nil {
		return nil, err
	}

	a := &App{
		sceneManager:    game.NewSceneManager(),
		renderer:        renderer,
		saveManager:     saveManager,
		settingsManager: settingsManager,
		state:           state,
		labels:          labels,
		languages:       sortedLanguages(labels),
		banner:          newAlertBanner(font),
		verbose:         cfg.Verbose,
	}

	scheduler := scenes.NewFrameScheduler(w, game.NewRand(seed), renderer)
	a.farmScene = scenes.NewFarmScene(scheduler, a.currentInputs)
	hint := "Farm view hidden - press V to show"
	if utils.IsMobile() {
		hint = "Farm view hidden - tap to show"
	}
	a.hiddenScene = scenes.NewHiddenScene(hint)
	a.sceneManager.SwitchTo(a.farmScene)

	return a, nil
}

// openStorage 打开 gdata 存储，失败时返回 nil（降级为仅内存）
func openStorage(cfg Config) *gdata.Manager {
	if cfg.NoStorage {
		return nil
	}
	appName := cfg.AppName
	if appName == "" {
		appName = "farmview"
	}
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[App] Warning: storage unavailable: %v (progress will not be saved)", err)
		return nil
	}
	return manager
}

func sortedLanguages(labels map[string]*config.LabelSet) []string {
	languages := make([]string, 0, len(labels))
	for lang := range labels {
		languages = append(languages, lang)
	}
	slices.Sort(languages)
	return languages
}

// currentInputs 返回当前的输入快照，每个 tick 由 FarmScene 调用
func (a *App) currentInputs() game.Inputs {
	return a.state.Inputs(a.currentLabels())
}

func (a *App) currentLabels() *config.LabelSet {
	if labels, ok := a.labels[a.settingsManager.GetSettings().Language]; ok {
		return labels
	}
	return config.DefaultLabelSet()
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}
	for _, act := range pressedActions() {
		a.apply(act)
	}
	if act := tappedAction(a.viewHidden); act != actionNone {
		a.apply(act)
	}

	a.banner.Update()
	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// toggleFullscreen 切换全屏并记录到设置
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settingsManager.SetFullscreen(false)
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		return
	}
	ebiten.SetFullscreen(true)
	a.settingsManager.SetFullscreen(true)
}

// apply 执行一个宿主动作
func (a *App) apply(act action) {
	switch act {
	case actionLevel1, actionLevel2, actionLevel3:
		level := types.Level(int(act-actionLevel1) + 1)
		if err := a.state.SelectLevel(level); err != nil {
			log.Printf("[App] Warning: %v", err)
			return
		}
		log.Printf("[App] 选择关卡: %v", level)
	case actionNextLevel:
		next := types.Level(int(a.state.Level)%len(types.AllLevels) + 1)
		if err := a.state.SelectLevel(next); err != nil {
			log.Printf("[App] Warning: %v", err)
			return
		}
		log.Printf("[App] 选择关卡: %v", next)
	case actionPrevMonth:
		a.state.SetMonth(a.state.Month - 1)
	case actionNextMonth:
		a.state.SetMonth(a.state.Month + 1)
	case actionCropHealthUp:
		a.state.AdjustCropHealth(healthStep)
	case actionCropHealthDown:
		a.state.AdjustCropHealth(-healthStep)
	case actionAnimalHealthUp:
		a.state.AdjustAnimalHealth(healthStep)
	case actionAnimalHealthDown:
		a.state.AdjustAnimalHealth(-healthStep)
	case actionDecideCorrect:
		a.announce(a.state.ApplyDecision(true))
	case actionDecideWrong:
		a.announce(a.state.ApplyDecision(false))
	case actionToggleView:
		a.SetViewHidden(!a.viewHidden)
	case actionToggleLanguage:
		a.nextLanguage()
	case actionToggleHUD:
		visible := !a.renderer.HUDVisible()
		a.renderer.SetHUDVisible(visible)
		a.settingsManager.SetShowHUD(visible)
	}
}

// announce 根据决策结果显示提示横幅
// 优先级：季节结算 > 危急警报 > 普通结果
func (a *App) announce(out game.Outcome) {
	labels := a.currentLabels()
	log.Printf("[App] 决策结果: %+v", out)

	var key string
	var clr color.NRGBA
	switch {
	case out.SeasonOver && out.LevelComplete:
		key, clr = config.AlertComplete, alertColorInfo
	case out.SeasonOver:
		key, clr = config.AlertFailed, alertColorDanger
	case out.CriticalAlert:
		key, clr = config.AlertCritical, alertColorDanger
	case out.Correct:
		key, clr = config.AlertCorrect, alertColorInfo
	default:
		key, clr = config.AlertWrong, alertColorWarning
	}
	a.banner.Show(labels.AlertText(key), clr)
}

// nextLanguage 切换到下一个语言包
func (a *App) nextLanguage() {
	if len(a.languages) == 0 {
		return
	}
	current := a.settingsManager.GetSettings().Language
	idx := slices.Index(a.languages, current)
	next := a.languages[(idx+1)%len(a.languages)]
	a.settingsManager.SetLanguage(next)
	log.Printf("[App] 切换语言: %s -> %s", current, next)
}

// SetViewHidden 隐藏或显示农场视图
// 隐藏时帧循环停止；重新显示时启动新的帧循环
func (a *App) SetViewHidden(hidden bool) {
	if a.viewHidden == hidden {
		return
	}
	a.viewHidden = hidden
	if hidden {
		a.sceneManager.SwitchTo(a.hiddenScene)
	} else {
		a.sceneManager.SwitchTo(a.farmScene)
	}
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
	a.banner.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Close 停止帧循环并保存设置与进度
func (a *App) Close() error {
	a.sceneManager.Close()

	var errs []error
	if err := a.settingsManager.Save(); err != nil {
		errs = append(errs, err)
	}
	if err := a.saveManager.Save(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// State 返回宿主侧的农场进度
func (a *App) State() *game.FarmState {
	return a.state
}

// Settings 返回当前显示设置
func (a *App) Settings() *game.FarmSettings {
	return a.settingsManager.GetSettings()
}

// Scheduler 返回农场视图使用的帧调度器
func (a *App) Scheduler() *scenes.FrameScheduler {
	return a.farmScene.Scheduler()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
