package components

// WorkerMode 农夫行为状态
type WorkerMode int

const (
	// WorkerWalking 行走（初始状态）
	WorkerWalking WorkerMode = iota
	// WorkerWorking 原地劳作
	WorkerWorking
)

// String 返回状态名
func (m WorkerMode) String() string {
	if m == WorkerWorking {
		return "working"
	}
	return "walking"
}

// WorkerComponent 农夫（纯氛围角色，不影响玩法）
//
// 状态机：
//   - Walking: 每帧按朝向移动；到达活动范围边界时掉头，并以一定概率转入 Working
//   - Working: 位置冻结；ModeTimer 超过阈值后恢复 Walking
type WorkerComponent struct {
	// X 水平位置（人物左边缘）
	X float64
	// Direction 朝向，+1 向右，-1 向左
	Direction float64
	// Mode 当前状态
	Mode WorkerMode
	// ModeTimer 进入当前状态后经过的帧数
	ModeTimer int
	// Phase 动画相位 0-3
	Phase int
	// Secondary 是否为副农夫（只在右半场活动，仅综合关卡出现）
	Secondary bool
}
