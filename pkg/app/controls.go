package app

import (
	"github.com/gonewx/farmview/pkg/config"
	"github.com/gonewx/farmview/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// action 宿主动作，由按键或触摸映射而来
type action int

const (
	actionNone action = iota
	actionLevel1
	actionLevel2
	actionLevel3
	actionPrevMonth
	actionNextMonth
	actionCropHealthUp
	actionCropHealthDown
	actionAnimalHealthUp
	actionAnimalHealthDown
	actionDecideCorrect
	actionDecideWrong
	actionToggleView
	actionToggleLanguage
	actionToggleHUD
	actionNextLevel
)

// keyBinding 按键到动作的映射；shift 版本在按住 Shift 时生效
type keyBinding struct {
	key     ebiten.Key
	plain   action
	shifted action
}

var keyBindings = []keyBinding{
	{ebiten.Key1, actionLevel1, actionLevel1},
	{ebiten.Key2, actionLevel2, actionLevel2},
	{ebiten.Key3, actionLevel3, actionLevel3},
	{ebiten.KeyArrowLeft, actionPrevMonth, actionPrevMonth},
	{ebiten.KeyArrowRight, actionNextMonth, actionNextMonth},
	{ebiten.KeyC, actionCropHealthUp, actionCropHealthDown},
	{ebiten.KeyA, actionAnimalHealthUp, actionAnimalHealthDown},
	{ebiten.KeyY, actionDecideCorrect, actionDecideCorrect},
	{ebiten.KeyN, actionDecideWrong, actionDecideWrong},
	{ebiten.KeyV, actionToggleView, actionToggleView},
	{ebiten.KeyL, actionToggleLanguage, actionToggleLanguage},
	{ebiten.KeyH, actionToggleHUD, actionToggleHUD},
}

// resolveAction 根据按键和 Shift 状态返回动作
func resolveAction(key ebiten.Key, shift bool) action {
	for _, b := range keyBindings {
		if b.key != key {
			continue
		}
		if shift {
			return b.shifted
		}
		return b.plain
	}
	return actionNone
}

// pressedActions 返回本 tick 刚按下的按键对应的动作
func pressedActions() []action {
	keys := inpututil.AppendJustPressedKeys(nil)
	if len(keys) == 0 {
		return nil
	}
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)

	actions := make([]action, 0, len(keys))
	for _, key := range keys {
		if act := resolveAction(key, shift); act != actionNone {
			actions = append(actions, act)
		}
	}
	return actions
}

// tapTopHeight 顶部条带高度，覆盖状态面板
const tapTopHeight = config.HUDPanelY + config.HUDPanelHeightCombined

// resolveTap 触摸操作：顶部切换关卡，左/右切换月份，中间隐藏视图
// 视图隐藏时任意位置都恢复显示
func resolveTap(zone utils.TapZone, viewHidden bool) action {
	if zone == utils.TapNone {
		return actionNone
	}
	if viewHidden {
		return actionToggleView
	}
	switch zone {
	case utils.TapTop:
		return actionNextLevel
	case utils.TapLeft:
		return actionPrevMonth
	case utils.TapRight:
		return actionNextMonth
	default:
		return actionToggleView
	}
}

// tappedAction 返回本 tick 的触摸动作（仅移动端）
func tappedAction(viewHidden bool) action {
	if !utils.IsMobile() {
		return actionNone
	}
	ok, x, y := utils.IsJustTouchedOrClicked()
	if !ok {
		return actionNone
	}
	zone := utils.ClassifyTap(x, y, config.GameWindowWidth, config.GameWindowHeight, tapTopHeight)
	return resolveTap(zone, viewHidden)
}
