package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager 持有当前场景，App 的 Update/Draw 都转发给它
// 同一时刻只有一个场景在运行：农场视图隐藏时切到占位场景，帧循环随之停止
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager 创建场景管理器，初始没有活动场景，需调用 SwitchTo 设置
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 切换当前场景
// 实现了 Lifecycle 的场景会收到 OnExit / OnEnter 通知。
func (sm *SceneManager) SwitchTo(scene Scene) {
	if lc, ok := sm.currentScene.(Lifecycle); ok {
		lc.OnExit()
	}
	sm.currentScene = scene
	if lc, ok := scene.(Lifecycle); ok {
		lc.OnEnter()
	}
	log.Printf("[SceneManager] 切换场景: %T", scene)
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Close 退出当前场景（程序关闭时调用）
func (sm *SceneManager) Close() {
	if lc, ok := sm.currentScene.(Lifecycle); ok {
		lc.OnExit()
	}
	sm.currentScene = nil
}

// Update 推进当前场景，deltaTime 单位为秒
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
