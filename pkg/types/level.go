package types

import "fmt"

// Level 场景关卡
//
// 三种关卡决定了场景中存在哪些实体群体：
//   - LevelCropOnly: 只有作物（田野视图）
//   - LevelAnimalOnly: 只有牲畜（牧场视图）
//   - LevelCombined: 作物 + 牲畜 + 两名农夫（农场全景）
type Level int

const (
	// LevelCropOnly 作物关卡
	LevelCropOnly Level = iota + 1
	// LevelAnimalOnly 牲畜关卡
	LevelAnimalOnly
	// LevelCombined 综合关卡
	LevelCombined
)

// AllLevels 按关卡顺序列出所有关卡
var AllLevels = []Level{LevelCropOnly, LevelAnimalOnly, LevelCombined}

// String 返回关卡的配置名（与 data/scenes/<name>.yaml 对应）
func (l Level) String() string {
	switch l {
	case LevelCropOnly:
		return "field"
	case LevelAnimalOnly:
		return "pasture"
	case LevelCombined:
		return "farm"
	default:
		return "unknown"
	}
}

// Valid 判断关卡值是否合法
func (l Level) Valid() bool {
	return l >= LevelCropOnly && l <= LevelCombined
}

// HasCrops 关卡是否包含作物
func (l Level) HasCrops() bool {
	return l == LevelCropOnly || l == LevelCombined
}

// HasAnimals 关卡是否包含牲畜
func (l Level) HasAnimals() bool {
	return l == LevelAnimalOnly || l == LevelCombined
}

// WorkerCount 关卡中活动的农夫数量
func (l Level) WorkerCount() int {
	if l == LevelCombined {
		return 2
	}
	return 1
}

// ParseLevel 解析关卡名称或编号（"field" / "1" 等）
func ParseLevel(s string) (Level, error) {
	switch s {
	case "field", "crop", "1":
		return LevelCropOnly, nil
	case "pasture", "animal", "2":
		return LevelAnimalOnly, nil
	case "farm", "combined", "3":
		return LevelCombined, nil
	}
	return 0, fmt.Errorf("unknown level %q", s)
}
