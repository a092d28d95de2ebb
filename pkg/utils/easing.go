package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EaseLinear 线性缓动（无缓动）
// 返回值 = 输入值（匀速运动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（用于角色落下、按钮飞出）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutQuad 二次方缓入缓出
// 特点：开始慢，中间快，结束慢（灯光来回摆动）
// 公式：
//
//	t < 0.5: f(t) = 2t²
//	t >= 0.5: f(t) = 1 - (-2t + 2)² / 2
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// EaseInOutCubic 三次方缓入缓出
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// Clamp01 将值限制在 [0, 1]
func Clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值：a + (b-a)*t
// t=0 精确返回 a，t=1 精确返回 b；t 超出 [0,1] 时外推，不报错
func Lerp(a, b, t float64) float64 {
	if t == 1 {
		// a + (b-a) 在浮点下不一定等于 b
		return b
	}
	return a + (b-a)*t
}
