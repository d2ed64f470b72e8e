//go:build !mobile

package utils

import "testing"

// TestIsMobile_Desktop 测试桌面端编译时 IsMobile() 默认返回 false
func TestIsMobile_Desktop(t *testing.T) {
	t.Setenv("FARMVIEW_MOBILE_EMULATE", "")
	if IsMobile() {
		t.Error("IsMobile() should return false on desktop")
	}
}

// TestIsMobile_Emulate 测试环境变量强制启用移动模式
func TestIsMobile_Emulate(t *testing.T) {
	t.Setenv("FARMVIEW_MOBILE_EMULATE", "1")
	if !IsMobile() {
		t.Error("IsMobile() should return true when FARMVIEW_MOBILE_EMULATE=1")
	}
}
