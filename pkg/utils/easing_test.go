package utils

import (
	"math"
	"testing"
)

// TestEaseOutCubic 测试三次方缓出函数
func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.875}, // 1 - (1-0.5)^3 = 1 - 0.125 = 0.875
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a, b, t  float64
		expected float64
	}{
		{"起点", 10, 20, 0, 10},
		{"终点", 10, 20, 1, 20},
		{"中点", 10, 20, 0.5, 15},
		{"反向", 20, 10, 0.25, 17.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Lerp(tt.a, tt.b, tt.t); math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, result, tt.expected)
			}
		})
	}
}

// TestClamp01 测试钳制
func TestClamp01(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{-0.5, 0},
		{0.3, 0.3},
		{1.7, 1},
	}
	for _, tt := range tests {
		if result := Clamp01(tt.input); result != tt.expected {
			t.Errorf("Clamp01(%v) = %v, 期望 %v", tt.input, result, tt.expected)
		}
	}
}

// TestTriangleWave 测试三角波
func TestTriangleWave(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"零点", 0, 0},
		{"波峰", 0.25, 1},
		{"回零", 0.5, 0},
		{"波谷", 0.75, -1},
		{"一个周期后", 1.25, 1},
		{"负输入", -0.25, -1},
		{"上升段", 0.125, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := TriangleWave(tt.input); math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("TriangleWave(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}
