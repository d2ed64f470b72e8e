package systems

import (
	"testing"

	"github.com/gonewx/farmview/pkg/config"
)

func TestFleckPositionsStableAndInBounds(t *testing.T) {
	s := NewSoilRenderSystem(99)
	top := config.SoilTop(600)

	first := s.FleckPositions(50, 800, top)
	second := s.FleckPositions(50, 800, top)
	if len(first) != 50 {
		t.Fatalf("土粒数量 = %d, 期望 50", len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("土粒 %d 两次位置不同: %+v != %+v", i, first[i], second[i])
		}
		p := first[i]
		if p.X < 0 || p.X >= 800 || p.Y < top || p.Y >= top+config.SoilHeight {
			t.Errorf("土粒 %d 位置 %+v 超出土壤带", i, p)
		}
	}
}

func TestGrassBladeHeights(t *testing.T) {
	s := NewSoilRenderSystem(1)
	heights := s.GrassBladeHeights(100)
	if len(heights) != 100 {
		t.Fatalf("草叶数量 = %d, 期望 100", len(heights))
	}
	distinct := make(map[float64]bool)
	for i, h := range heights {
		if h < 0 || h >= 30 {
			t.Errorf("草叶 %d 偏移 %v 超出 [0, 30)", i, h)
		}
		distinct[h] = true
	}
	if len(distinct) < 50 {
		t.Errorf("草叶高度过于集中: 只有 %d 个不同值", len(distinct))
	}
}
