package systems

import (
	"testing"

	"github.com/gonewx/farmview/pkg/config"
	"github.com/gonewx/farmview/pkg/game"
	"github.com/gonewx/farmview/pkg/types"
)

func TestHUDLines(t *testing.T) {
	tests := []struct {
		name  string
		level types.Level
		in    game.Inputs
		want  []string
	}{
		{
			name:  "田野视图",
			level: types.LevelCropOnly,
			in:    game.Inputs{Health: game.HealthRecord{Crops: 85, Animals: 10}, Month: 2},
			want:  []string{"Field View - Month 2/6", "Crops Health: Excellent", "18 plants"},
		},
		{
			name:  "牧场视图",
			level: types.LevelAnimalOnly,
			in:    game.Inputs{Health: game.HealthRecord{Crops: 85, Animals: 45}, Month: 4},
			want:  []string{"Pasture View - Month 4/6", "Animals Health: Fair", "10 animals"},
		},
		{
			name:  "农场全景",
			level: types.LevelCombined,
			in:    game.Inputs{Health: game.HealthRecord{Crops: 65, Animals: 5}, Month: 6},
			want: []string{
				"Farm View - Month 6/6",
				"Crops Health: Good",
				"Animals Health: Critical",
				"18 plants, 10 animals",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := HUDLines(tt.level, tt.in, 18, 10)
			if len(lines) != len(tt.want) {
				t.Fatalf("行数 = %d, 期望 %d", len(lines), len(tt.want))
			}
			for i, line := range lines {
				if line.Text != tt.want[i] {
					t.Errorf("第 %d 行 = %q, 期望 %q", i, line.Text, tt.want[i])
				}
			}
			if lines[0].Size != config.HUDTitleFontSize || lines[len(lines)-1].Size != config.HUDCountFontSize {
				t.Errorf("字号错误: 标题 %v, 数量行 %v", lines[0].Size, lines[len(lines)-1].Size)
			}
		})
	}
}

func TestHUDLinesLocalized(t *testing.T) {
	labels, err := config.LoadLabelSet("../../data/locales/es.yaml")
	if err != nil {
		t.Fatalf("加载西班牙语语言包失败: %v", err)
	}
	in := game.Inputs{Health: game.HealthRecord{Crops: 10}, Month: 1, Labels: labels}
	lines := HUDLines(types.LevelCropOnly, in, 18, 0)

	if lines[0].Text == "Field View - Month 1/6" {
		t.Errorf("标题未本地化: %q", lines[0].Text)
	}
	if want := "18 " + labels.PlantsNoun; lines[2].Text != want {
		t.Errorf("数量行 = %q, 期望 %q", lines[2].Text, want)
	}
}
