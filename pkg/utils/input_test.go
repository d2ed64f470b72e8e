package utils

import "testing"

func TestClassifyTap(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want TapZone
	}{
		{"顶部条带", 400, 50, TapTop},
		{"左侧", 100, 300, TapLeft},
		{"中间", 400, 300, TapCenter},
		{"右侧", 700, 300, TapRight},
		{"三分点属于中间", 267, 300, TapCenter},
		{"负坐标", -1, 300, TapNone},
		{"超出右边界", 800, 300, TapNone},
		{"超出下边界", 400, 600, TapNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyTap(tt.x, tt.y, 800, 600, 110); got != tt.want {
				t.Errorf("ClassifyTap(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	if got := ClassifyTap(0, 0, 0, 0, 110); got != TapNone {
		t.Errorf("零尺寸画面应返回 TapNone，got %v", got)
	}
}
