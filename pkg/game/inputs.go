package game

import (
	"github.com/gonewx/farmview/pkg/config"
	"github.com/gonewx/farmview/pkg/types"
)

// HealthRecord 作物与牲畜的健康值（0-100，超出范围的值在使用处钳制）
type HealthRecord struct {
	Crops   float64
	Animals float64
}

// Inputs 每帧提供给场景的外部输入快照
//
// 场景从不修改 Inputs；宿主（FarmState）在帧与帧之间随意变更，
// 下一帧自动读取最新值。
type Inputs struct {
	Health HealthRecord
	// Month 当前月份（1 起）
	Month int
	// Level 当前关卡
	Level types.Level
	// Labels 本地化文本，为 nil 时使用英文默认值
	Labels *config.LabelSet
}

// LabelSet 返回本地化文本，未设置时回退到英文默认值
func (in Inputs) LabelSet() *config.LabelSet {
	if in.Labels == nil {
		return config.DefaultLabelSet()
	}
	return in.Labels
}
