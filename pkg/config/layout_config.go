package config

// 布局与动画常量
// 本文件定义了农场场景中与关卡无关的固定参数，包括画面尺寸、土壤带、
// 动画节奏以及 HUD 面板几何。所有坐标均为屏幕像素坐标（左上角为原点）。

// Window (窗口)
const (
	// GameWindowWidth 是逻辑画面宽度
	GameWindowWidth = 800
	// GameWindowHeight 是逻辑画面高度
	GameWindowHeight = 600
)

// Soil (土壤带)
const (
	// SoilHeight 是土壤带从画面底部向上的固定高度
	SoilHeight = 200.0
	// GrassEdgeHeight 是土壤带顶部草边高光条的高度
	GrassEdgeHeight = 5.0
)

// Crops (作物)
const (
	// CropSwayAmplitude 是作物摇摆的最大横向偏移（像素）
	CropSwayAmplitude = 3.0
	// CropMaxGrowthStage 是作物的最大生长阶段
	CropMaxGrowthStage = 6
	// CropGridOffsetY 是作物网格第一行相对土壤顶部的偏移
	CropGridOffsetY = 20.0
)

// Animals (牲畜)
const (
	// AnimalRetargetInterval 每隔多少帧为所有牲畜重新分配游荡目标
	AnimalRetargetInterval = 120
	// AnimalArriveDistance 与目标距离小于该值时视为已到达，不再移动
	AnimalArriveDistance = 2.0
	// AnimalGaitFrameDivisor 步态帧 = (frame / divisor) % 4
	AnimalGaitFrameDivisor = 10
	// AnimalWarningHealth 低于该健康值时显示警告符号
	AnimalWarningHealth = 70.0
	// AnimalDangerHealth 低于该健康值时警告符号为红色（否则为琥珀色）
	AnimalDangerHealth = 40.0
)

// Workers (农夫)
const (
	// WorkerStep 行走状态下每帧的横向位移
	WorkerStep = 1.5
	// WorkerRangeMinX 主农夫活动范围的左边界
	WorkerRangeMinX = 50.0
	// WorkerRangeMarginRight 活动范围右边界距画面右侧的距离
	WorkerRangeMarginRight = 100.0
	// WorkerSplitMargin 副农夫活动范围左边界距画面中线的距离
	WorkerSplitMargin = 50.0
	// WorkerWorkChance 到达边界时转入劳作状态的概率
	WorkerWorkChance = 0.3
	// WorkerWorkFrames 劳作状态持续超过该帧数后恢复行走
	WorkerWorkFrames = 60
	// WorkerPhaseDivisor 动画相位 = (frame / divisor) % 4
	WorkerPhaseDivisor = 8
	// WorkerHeightAboveSoil 农夫头顶位于土壤顶部之上的高度
	WorkerHeightAboveSoil = 60.0
	// WorkerPrimaryStartX 主农夫初始位置
	WorkerPrimaryStartX = 100.0
	// WorkerSecondaryStartX 副农夫初始位置
	WorkerSecondaryStartX = 500.0
)

// Sky (天空)
const (
	// CloudDriftSpeed 云朵每帧的水平漂移速度
	CloudDriftSpeed = 0.2
	// SunOffsetX 太阳中心距画面右侧的距离
	SunOffsetX = 80.0
	// SunY 太阳中心的纵坐标
	SunY = 60.0
)

// HUD (状态面板)
const (
	// HUDPanelX 面板左上角 X
	HUDPanelX = 10.0
	// HUDPanelY 面板左上角 Y
	HUDPanelY = 10.0
	// HUDPanelWidth 面板宽度
	HUDPanelWidth = 280.0
	// HUDPanelHeight 单群体关卡的面板高度
	HUDPanelHeight = 80.0
	// HUDPanelHeightCombined 综合关卡的面板高度（多一行状态）
	HUDPanelHeightCombined = 100.0
	// HUDTitleFontSize 标题行字号
	HUDTitleFontSize = 16.0
	// HUDCountFontSize 数量行字号
	HUDCountFontSize = 12.0
)

// SoilTop 返回土壤带顶部的纵坐标
func SoilTop(screenHeight float64) float64 {
	return screenHeight - SoilHeight
}

// WorkerRange 返回农夫的水平活动范围
// secondary 为 true 时只使用画面右半部分（综合关卡的第二名农夫）
func WorkerRange(screenWidth float64, secondary bool) (minX, maxX float64) {
	maxX = screenWidth - WorkerRangeMarginRight
	minX = WorkerRangeMinX
	if secondary {
		minX = screenWidth/2 + WorkerSplitMargin
	}
	if maxX < minX {
		// 画面过窄时退化为单点
		maxX = minX
	}
	return minX, maxX
}
