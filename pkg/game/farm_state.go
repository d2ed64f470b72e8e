package game

import (
	"fmt"
	"math"
	"slices"

	"github.com/gonewx/farmview/pkg/config"
	"github.com/gonewx/farmview/pkg/types"
)

// 季节与决策规则
const (
	// FirstMonth 季节的第一个月
	FirstMonth = 1
	// LastMonth 季节的最后一个月，在此月做出决策后结算关卡
	LastMonth = 6

	// MaxHealth 健康值上限
	MaxHealth = 100.0
	// CorrectHealthGain 正确决策为受影响群体增加的健康值
	CorrectHealthGain = 10.0
	// WrongHealthDrop 错误决策为受影响群体扣除的健康值
	WrongHealthDrop = 15.0
	// CorrectProductivityGain 正确决策增加的生产力分数
	CorrectProductivityGain = 20
	// WrongSustainabilityDrop 错误决策扣除的可持续性分数
	WrongSustainabilityDrop = 10
	// InitialSustainability 新季节的可持续性分数
	InitialSustainability = 100

	// CompletionThreshold 季末健康值必须严格高于此值才算通关
	CompletionThreshold = 60.0
	// CriticalThreshold 错误决策后健康值低于此值（且大于 0）触发危急警报
	CriticalThreshold = 30.0
)

// DecisionRecord 一次决策的记录
type DecisionRecord struct {
	Level   types.Level `yaml:"level"`
	Month   int         `yaml:"month"`
	Correct bool        `yaml:"correct"`
}

// Outcome ApplyDecision 的结果
type Outcome struct {
	Correct bool
	// Health 决策生效后的健康值
	Health HealthRecord
	// Month 决策生效后的月份
	Month int
	// SeasonOver 本次决策发生在最后一个月，季节结束
	SeasonOver bool
	// LevelComplete 季节结束且健康值达标
	LevelComplete bool
	// CriticalAlert 错误决策使健康值跌入危急区间
	CriticalAlert bool
}

// FarmState 宿主侧的农场进度
//
// 场景引擎只通过 Inputs 快照读取这里的数据；FarmState 由按键、决策和存档驱动。
// 健康值保存在 [0, 100] 区间内，月份保存在 [1, 6] 区间内。
type FarmState struct {
	Level          types.Level      `yaml:"level"`
	Month          int              `yaml:"month"`
	CropHealth     float64          `yaml:"cropHealth"`
	AnimalHealth   float64          `yaml:"animalHealth"`
	Productivity   int              `yaml:"productivity"`
	Sustainability int              `yaml:"sustainability"`
	Decisions      []DecisionRecord `yaml:"decisions"`
	Completed      []types.Level    `yaml:"completed"`
}

// NewFarmState 创建从作物关卡第一个月开始的新进度
func NewFarmState() *FarmState {
	fs := &FarmState{}
	fs.resetSeason(types.LevelCropOnly)
	return fs
}

// resetSeason 切换到指定关卡并重置本季节数据，通关记录保留
func (fs *FarmState) resetSeason(level types.Level) {
	fs.Level = level
	fs.Month = FirstMonth
	fs.CropHealth = MaxHealth
	fs.AnimalHealth = MaxHealth
	fs.Productivity = 0
	fs.Sustainability = InitialSustainability
	fs.Decisions = nil
}

// SelectLevel 选择关卡，月份回到 1，健康值回满
func (fs *FarmState) SelectLevel(level types.Level) error {
	if !level.Valid() {
		return fmt.Errorf("invalid level %d", level)
	}
	fs.resetSeason(level)
	return nil
}

// SetMonth 设置月份，超出 [1, 6] 的值被钳制
func (fs *FarmState) SetMonth(month int) {
	fs.Month = min(max(month, FirstMonth), LastMonth)
}

// AdjustCropHealth 调整作物健康值，结果钳制在 [0, 100]
func (fs *FarmState) AdjustCropHealth(delta float64) {
	fs.CropHealth = clampHealth(fs.CropHealth + delta)
}

// AdjustAnimalHealth 调整牲畜健康值，结果钳制在 [0, 100]
func (fs *FarmState) AdjustAnimalHealth(delta float64) {
	fs.AnimalHealth = clampHealth(fs.AnimalHealth + delta)
}

// RelevantHealth 当前关卡的代表健康值
// 作物关卡取作物健康，牲畜关卡取牲畜健康，综合关卡取两者较小值
func (fs *FarmState) RelevantHealth() float64 {
	switch fs.Level {
	case types.LevelAnimalOnly:
		return fs.AnimalHealth
	case types.LevelCombined:
		return math.Min(fs.CropHealth, fs.AnimalHealth)
	default:
		return fs.CropHealth
	}
}

// ApplyDecision 结算本月的决策
//
// 正确：受影响群体 +10（上限 100），生产力 +20。
// 错误：受影响群体 -15（下限 0），可持续性 -10（下限 0）。
// 最后一个月的决策结束季节并评估通关，否则月份 +1。
// 危急警报根据更新后的健康值计算。
func (fs *FarmState) ApplyDecision(correct bool) Outcome {
	fs.Decisions = append(fs.Decisions, DecisionRecord{
		Level:   fs.Level,
		Month:   fs.Month,
		Correct: correct,
	})

	delta := -WrongHealthDrop
	if correct {
		delta = CorrectHealthGain
		fs.Productivity += CorrectProductivityGain
	} else {
		fs.Sustainability = max(fs.Sustainability-WrongSustainabilityDrop, 0)
	}
	if fs.Level.HasCrops() {
		fs.AdjustCropHealth(delta)
	}
	if fs.Level.HasAnimals() {
		fs.AdjustAnimalHealth(delta)
	}

	health := fs.RelevantHealth()
	outcome := Outcome{
		Correct:       correct,
		CriticalAlert: !correct && health > 0 && health < CriticalThreshold,
	}

	if fs.Month >= LastMonth {
		outcome.SeasonOver = true
		if health > CompletionThreshold {
			outcome.LevelComplete = true
			fs.markCompleted(fs.Level)
		}
	} else {
		fs.Month++
	}

	outcome.Month = fs.Month
	outcome.Health = HealthRecord{Crops: fs.CropHealth, Animals: fs.AnimalHealth}
	return outcome
}

// markCompleted 记录通关，保持升序且不重复
func (fs *FarmState) markCompleted(level types.Level) {
	if fs.IsCompleted(level) {
		return
	}
	fs.Completed = append(fs.Completed, level)
	slices.Sort(fs.Completed)
}

// IsCompleted 关卡是否已通关
func (fs *FarmState) IsCompleted(level types.Level) bool {
	return slices.Contains(fs.Completed, level)
}

// Normalize 修正读档后的越界数据
func (fs *FarmState) Normalize() {
	if !fs.Level.Valid() {
		fs.Level = types.LevelCropOnly
	}
	fs.SetMonth(fs.Month)
	fs.CropHealth = clampHealth(fs.CropHealth)
	fs.AnimalHealth = clampHealth(fs.AnimalHealth)
	fs.Productivity = max(fs.Productivity, 0)
	fs.Sustainability = min(max(fs.Sustainability, 0), InitialSustainability)
	fs.Completed = slices.DeleteFunc(fs.Completed, func(l types.Level) bool { return !l.Valid() })
	slices.Sort(fs.Completed)
	fs.Completed = slices.Compact(fs.Completed)
}

// Inputs 生成供场景读取的输入快照
// labels 为 nil 时场景使用英文默认文本
func (fs *FarmState) Inputs(labels *config.LabelSet) Inputs {
	return Inputs{
		Health: HealthRecord{
			Crops:   fs.CropHealth,
			Animals: fs.AnimalHealth,
		},
		Month:  fs.Month,
		Level:  fs.Level,
		Labels: labels,
	}
}

func clampHealth(h float64) float64 {
	if math.IsNaN(h) {
		return 0
	}
	return math.Min(math.Max(h, 0), MaxHealth)
}
