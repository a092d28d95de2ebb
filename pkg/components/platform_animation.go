package components

// AnimationPhase 平台动画所处阶段
//
// 阶段只能单向推进：Idle → Transitioning → Spinning。
// 回到初始状态的唯一方式是整个场景重建。
type AnimationPhase int

const (
	// PhaseIdle 等待触发，变换停在起始关键帧
	PhaseIdle AnimationPhase = iota
	// PhaseTransitioning 按进度在起止关键帧之间线性插值
	PhaseTransitioning
	// PhaseSpinning 过渡结束后绕旋转轴无限匀速旋转
	PhaseSpinning
)

// String 返回阶段名称，用于日志
func (p AnimationPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseTransitioning:
		return "transitioning"
	case PhaseSpinning:
		return "spinning"
	default:
		return "unknown"
	}
}

// PlatformAnimationComponent 平台脚本动画的状态机数据
//
// 与 TransformComponent 挂在同一实体上，由 PlatformAnimationSystem 驱动。
type PlatformAnimationComponent struct {
	// Phase 当前阶段
	Phase AnimationPhase

	// Progress 过渡进度 [0, 1]，仅在 Transitioning 阶段有意义
	Progress float64

	// Start / End 起止关键帧，一个触发周期内不可变
	Start Transform
	End   Transform

	// TransitionSpeed 进度增长速度（每秒）
	TransitionSpeed float64

	// SpinSpeed 旋转阶段的角速度（弧度/秒）
	SpinSpeed float64

	// SpinAxis 旋转阶段推进的轴
	SpinAxis Axis

	// LastSignal 上一次收到的触发信号电平，用于检测 false→true 上升沿
	LastSignal bool
}
