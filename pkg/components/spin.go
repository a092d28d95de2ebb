package components

// SpinComponent 让实体绕某个轴持续匀速旋转
// 角度直接累加到 TransformComponent.Rotation，不做回绕
type SpinComponent struct {
	// Axis 旋转轴
	Axis Axis
	// Speed 角速度（弧度/秒）
	Speed float64
	// Enabled 是否启用
	Enabled bool
}
