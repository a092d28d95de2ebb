package components

// FlowState 问候页面的界面流程状态
type FlowState int

const (
	// FlowAsking 显示提问和 Yes/No 按钮
	FlowAsking FlowState = iota
	// FlowAccepted 已点击 Yes，按钮和提问正在退场，平台开始过渡
	FlowAccepted
	// FlowCelebrating 显示庆祝文字、灯光和返回按钮
	FlowCelebrating
)

// String 返回状态名称，用于日志
func (s FlowState) String() string {
	switch s {
	case FlowAsking:
		return "asking"
	case FlowAccepted:
		return "accepted"
	case FlowCelebrating:
		return "celebrating"
	default:
		return "unknown"
	}
}

// GreetingFlowComponent 界面流程状态机数据
type GreetingFlowComponent struct {
	State FlowState
	// ElapsedTime 当前状态已用时间（秒）
	ElapsedTime float64
}

// AvatarComponent 标记角色实体（绘制为站在平台上方的旋转光环）
type AvatarComponent struct {
	// Radius 光环半径（场景单位）
	Radius float64
	// Scale 整体缩放
	Scale float64
}

// PlatformComponent 标记作为动画主体的平台盒
type PlatformComponent struct{}
