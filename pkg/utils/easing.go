package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动与周期波形函数，用于控制动画的速度曲线与肢体摆动。
// 缓动函数接受进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（用于提示横幅的淡出）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将 t 钳制到 [0, 1]
func Clamp01(t float64) float64 {
	return math.Min(math.Max(t, 0), 1)
}

// TriangleWave 周期为 1 的三角波，取值 [-1, 1]
// t=0 -> 0, t=0.25 -> 1, t=0.5 -> 0, t=0.75 -> -1
func TriangleWave(t float64) float64 {
	t -= math.Floor(t)
	switch {
	case t < 0.25:
		return 4 * t
	case t < 0.75:
		return 2 - 4*t
	default:
		return 4*t - 4
	}
}
