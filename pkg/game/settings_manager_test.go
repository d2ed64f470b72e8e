package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下打开 gdata 存储
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()

	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return gdataManager
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}
	if settings.Language != "en" {
		t.Errorf("Language: got %q, want \"en\"", settings.Language)
	}
	if !settings.ShowHUD {
		t.Error("ShowHUD: got false, want true")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if settings.Seed != 0 {
		t.Errorf("Seed: got %d, want 0", settings.Seed)
	}
}

// TestNewSettingsManager 测试正常初始化 SettingsManager
func TestNewSettingsManager(t *testing.T) {
	gdataManager := openTestGdata(t, "test_farm_settings")

	sm, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}
	if sm == nil {
		t.Fatal("NewSettingsManager() returned nil")
	}

	settings := sm.GetSettings()
	if settings == nil {
		t.Fatal("GetSettings() returned nil after initialization")
	}
	if settings.Language != "en" {
		t.Errorf("Initial Language: got %q, want \"en\"", settings.Language)
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	settings := sm.GetSettings()
	if settings == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}
	if !settings.ShowHUD {
		t.Error("Degraded mode ShowHUD: got false, want true")
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := openTestGdata(t, "test_farm_settings_load_save")

	sm1, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	sm1.SetLanguage("es")
	sm1.SetShowHUD(false)
	sm1.SetFullscreen(true)
	sm1.SetSeed(42)

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 创建新的设置管理器，验证加载
	sm2, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error on reload: %v", err)
	}

	settings := sm2.GetSettings()
	if settings.Language != "es" {
		t.Errorf("Loaded Language: got %q, want \"es\"", settings.Language)
	}
	if settings.ShowHUD {
		t.Error("Loaded ShowHUD: got true, want false")
	}
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
	if settings.Seed != 42 {
		t.Errorf("Loaded Seed: got %d, want 42", settings.Seed)
	}
}

// TestSettingsLoadPartialYAML 测试缺失字段保留默认值
func TestSettingsLoadPartialYAML(t *testing.T) {
	gdataManager := openTestGdata(t, "test_farm_settings_partial")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("fullscreen: true\n")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm, _ := NewSettingsManager(gdataManager)
	settings := sm.GetSettings()

	if !settings.Fullscreen {
		t.Error("Fullscreen: got false, want true")
	}
	if !settings.ShowHUD {
		t.Error("缺失的 showHUD 应保留默认值 true")
	}
	if settings.Language != "en" {
		t.Errorf("缺失的 language 应保留默认值，got %q", settings.Language)
	}
}

// TestSettingsLoadCorruptYAML 测试损坏的设置文件回退到默认值
func TestSettingsLoadCorruptYAML(t *testing.T) {
	gdataManager := openTestGdata(t, "test_farm_settings_corrupt")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("language: [unclosed")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() 不应因损坏文件失败: %v", err)
	}
	if err := sm.Load(); err == nil {
		t.Error("Load() 应返回反序列化错误")
	}
	if sm.GetSettings().Language != "en" {
		t.Errorf("损坏文件后 Language 应为默认值，got %q", sm.GetSettings().Language)
	}
}

// TestSetLanguage 测试语言代码规范化
func TestSetLanguage(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	tests := []struct {
		input    string
		expected string
	}{
		{"es", "es"},
		{"EN", "en"},
		{"  Es ", "es"},
		{"", "en"},
		{"   ", "en"},
	}

	for _, tt := range tests {
		sm.SetLanguage(tt.input)
		if sm.GetSettings().Language != tt.expected {
			t.Errorf("SetLanguage(%q): got %q, want %q",
				tt.input, sm.GetSettings().Language, tt.expected)
		}
	}
}

// TestSetShowHUD 测试 SetShowHUD 功能
func TestSetShowHUD(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	sm.SetShowHUD(false)
	if sm.GetSettings().ShowHUD {
		t.Error("After SetShowHUD(false): got true, want false")
	}

	sm.SetShowHUD(true)
	if !sm.GetSettings().ShowHUD {
		t.Error("After SetShowHUD(true): got false, want true")
	}
}

// TestSetFullscreen 测试 SetFullscreen 功能
func TestSetFullscreen(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	if sm.GetSettings().Fullscreen {
		t.Error("Initial Fullscreen: got true, want false")
	}

	sm.SetFullscreen(true)
	if !sm.GetSettings().Fullscreen {
		t.Error("After SetFullscreen(true): got false, want true")
	}

	sm.SetFullscreen(false)
	if sm.GetSettings().Fullscreen {
		t.Error("After SetFullscreen(false): got true, want false")
	}
}

// TestGetSettings 测试 GetSettings() 返回同一实例
func TestGetSettings(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	settings1 := sm.GetSettings()
	settings2 := sm.GetSettings()
	if settings1 != settings2 {
		t.Error("GetSettings() should return the same instance")
	}

	settings1.Seed = 7
	if settings2.Seed != 7 {
		t.Error("Settings should be the same instance")
	}
}

// TestSaveNilGdataManager 测试降级模式下 Save() 不报错
func TestSaveNilGdataManager(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should return nil, got: %v", err)
	}
}

// TestLoadNilGdataManager 测试降级模式下 Load() 使用默认设置
func TestLoadNilGdataManager(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	sm.SetSeed(99)

	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode should return nil, got: %v", err)
	}
	if sm.GetSettings().Seed != 0 {
		t.Errorf("After Load() in degraded mode, Seed: got %d, want 0", sm.GetSettings().Seed)
	}
}
