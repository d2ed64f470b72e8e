package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 存储路径常量
const (
	progressObject   = "farm"
	progressProperty = "progress"
)

// SaveManager 农场进度存档管理器
//
// 职责：
//   - 加载和保存 FarmState（YAML 格式，与项目其他配置文件保持一致）
//   - 读档后修正越界数据
//
// gdataManager 为 nil 时进入降级模式：进度只保存在内存中。
type SaveManager struct {
	gdataManager *gdata.Manager
	state        *FarmState
}

// NewSaveManager 创建存档管理器并尝试读取已有进度
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
//
// 返回：
//   - *SaveManager: 存档管理器，读档失败时持有新进度
//   - error: 保留给调用方统一处理，读档失败不会返回错误
func NewSaveManager(gdataManager *gdata.Manager) (*SaveManager, error) {
	sm := &SaveManager{
		gdataManager: gdataManager,
		state:        NewFarmState(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SaveManager] Warning: Failed to load progress: %v (starting new season)", err)
	}

	return sm, nil
}

// HasSave 是否存在已保存的进度
func (sm *SaveManager) HasSave() bool {
	if sm.gdataManager == nil {
		return false
	}
	return sm.gdataManager.ObjectPropExists(progressObject, progressProperty)
}

// Load 从 gdata 读取进度
// 没有存档时使用新进度；读取或解析失败时同样回退到新进度并返回错误
func (sm *SaveManager) Load() error {
	if !sm.HasSave() {
		sm.state = NewFarmState()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		sm.state = NewFarmState()
		return fmt.Errorf("failed to load progress: %w", err)
	}

	loaded := NewFarmState()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.state = NewFarmState()
		return fmt.Errorf("failed to unmarshal progress: %w", err)
	}
	loaded.Normalize()

	sm.state = loaded
	log.Printf("[SaveManager] Progress loaded: level=%v month=%d", loaded.Level, loaded.Month)
	return nil
}

// Save 保存当前进度
// 降级模式下直接返回 nil
func (sm *SaveManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.state)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(progressObject, progressProperty, data); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}

	log.Printf("[SaveManager] Progress saved")
	return nil
}

// GetState 返回当前进度（同一实例，修改后调用 Save 持久化）
func (sm *SaveManager) GetState() *FarmState {
	return sm.state
}

// Reset 丢弃当前进度，并用新进度覆盖存档
func (sm *SaveManager) Reset() error {
	sm.state = NewFarmState()
	if err := sm.Save(); err != nil {
		return fmt.Errorf("failed to reset progress: %w", err)
	}
	log.Printf("[SaveManager] Progress reset")
	return nil
}
