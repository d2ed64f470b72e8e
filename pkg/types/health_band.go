package types

// HealthBand 健康状况的定性分级
type HealthBand int

const (
	// HealthCritical 危急 (< 20)
	HealthCritical HealthBand = iota
	// HealthPoor 较差 [20, 40)
	HealthPoor
	// HealthFair 一般 [40, 60)
	HealthFair
	// HealthGood 良好 [60, 80)
	HealthGood
	// HealthExcellent 优秀 (>= 80)
	HealthExcellent
)

// 分级阈值，下界归属较高的一级
const (
	ExcellentThreshold = 80.0
	GoodThreshold      = 60.0
	FairThreshold      = 40.0
	PoorThreshold      = 20.0
)

// ClassifyHealth 将 0-100 的健康值映射为定性分级
// 只做阈值比较，越界值（负数、>100）自然落入最近的分级
func ClassifyHealth(health float64) HealthBand {
	switch {
	case health >= ExcellentThreshold:
		return HealthExcellent
	case health >= GoodThreshold:
		return HealthGood
	case health >= FairThreshold:
		return HealthFair
	case health >= PoorThreshold:
		return HealthPoor
	default:
		return HealthCritical
	}
}

// Key 返回分级在语言包中的键名
func (b HealthBand) Key() string {
	switch b {
	case HealthExcellent:
		return "excellent"
	case HealthGood:
		return "good"
	case HealthFair:
		return "fair"
	case HealthPoor:
		return "poor"
	default:
		return "critical"
	}
}
