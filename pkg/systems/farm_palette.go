package systems

import (
	"image/color"

	"github.com/gonewx/farmview/pkg/config"
	"github.com/gonewx/farmview/pkg/utils"
)

// HealthTier 三级健康配色
type HealthTier int

const (
	// TierHealthy 健康（健康系数 >= 0.7）
	TierHealthy HealthTier = iota
	// TierStressed 受压（健康系数 >= 0.4）
	TierStressed
	// TierDegraded 衰退
	TierDegraded
)

// String 返回配色等级名
func (t HealthTier) String() string {
	switch t {
	case TierHealthy:
		return "healthy"
	case TierStressed:
		return "stressed"
	default:
		return "degraded"
	}
}

// HealthFactor 将 0-100 的健康值换算为 [0,1] 的几何系数
func HealthFactor(health float64) float64 {
	return utils.Clamp01(health / 100)
}

// TierFor 根据健康系数选择配色等级
func TierFor(factor float64) HealthTier {
	switch {
	case factor >= 0.7:
		return TierHealthy
	case factor >= 0.4:
		return TierStressed
	default:
		return TierDegraded
	}
}

// tierPalette 按 HealthTier 索引的三种颜色
type tierPalette [3]color.NRGBA

func (p tierPalette) pick(t HealthTier) color.NRGBA {
	return p[t]
}

func palette(healthy, stressed, degraded string) tierPalette {
	return tierPalette{
		config.MustHexColor(healthy),
		config.MustHexColor(stressed),
		config.MustHexColor(degraded),
	}
}

var (
	cornStemPalette    = palette("#228B22", "#9ACD32", "#8B8B00")
	cornLeafPalette    = palette("#32CD32", "#9ACD32", "#808000")
	tomatoStemPalette  = palette("#2F4F2F", "#556B2F", "#6B6B2F")
	tomatoLeafPalette  = palette("#228B22", "#6B8E23", "#808000")
	lettuceLeafPalette = palette("#90EE90", "#9ACD32", "#808000")
	carrotLeafPalette  = palette("#228B22", "#6B8E23", "#808000")

	cowBodyPalette     = palette("#8B4513", "#A0826D", "#8B7355")
	cowHeadPalette     = palette("#8B4513", "#A0826D", "#A0826D")
	chickenBodyPalette = palette("#FFFFFF", "#F5F5DC", "#D3D3D3")
	chickenWingPalette = palette("#F0E68C", "#D3D3D3", "#D3D3D3")
)

// 固定颜色
var (
	colorBlack     = config.MustHexColor("#000000")
	colorWhite     = config.MustHexColor("#FFFFFF")
	colorDanger    = config.MustHexColor("#FF0000")
	colorWarning   = config.MustHexColor("#FFA500")
	colorGrassEdge = config.MustHexColor("#228B22")
	colorFence     = config.MustHexColor("#8B4513")
	colorHUDText   = config.MustHexColor("#00FFFF")
	colorHUDPanel  = color.NRGBA{A: 204}
	colorCloud     = colorWhite

	colorCornCob      = config.MustHexColor("#FFD700")
	colorCornKernel   = config.MustHexColor("#FFA500")
	colorTomatoUnripe = config.MustHexColor("#90EE90")
	colorTomatoRipe   = config.MustHexColor("#FF6347")
	colorLettuceHead  = config.MustHexColor("#7FFF00")
	colorCarrotRoot   = config.MustHexColor("#FFA500")
	colorCarrotRipe   = config.MustHexColor("#FF8C00")
	colorCarrotRing   = config.MustHexColor("#D2691E")

	colorHoof = config.MustHexColor("#654321")
	colorHorn = config.MustHexColor("#F5DEB3")
	colorEgg  = colorHorn

	colorSkin     = config.MustHexColor("#FFD4A3")
	colorHat      = config.MustHexColor("#8B4513")
	colorShirt    = config.MustHexColor("#4169E1")
	colorTrousers = config.MustHexColor("#2F4F4F")
	colorHoeBlade = config.MustHexColor("#696969")
)
