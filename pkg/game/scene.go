package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a view hosted by the application (e.g., the farm view or the hidden placeholder).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Lifecycle 是一个可选接口，场景借此在成为/不再是当前场景时启停内部资源
//
// SceneManager.SwitchTo 保证：
//   - 旧场景的 OnExit 先于新场景的 OnEnter 调用
//   - 切换到同一个场景时先 OnExit 再 OnEnter（重新进入）
type Lifecycle interface {
	// OnEnter 场景成为当前场景时调用
	OnEnter()
	// OnExit 场景不再是当前场景时调用
	OnExit()
}
