package components

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// SpotLight 聚光灯
type SpotLight struct {
	Position mgl64.Vec3
	Color    color.RGBA
}

// LightRigComponent 一组围绕 Y 轴公转、沿 X 轴来回摆动的聚光灯
type LightRigComponent struct {
	Lights []SpotLight

	// Yaw 当前绕 Y 轴的角度（弧度），每个周期回绕到 [0, 2π)
	Yaw float64
	// YawPeriod 公转一周的时间（秒）
	YawPeriod float64

	// SwayX 当前 X 偏移
	SwayX float64
	// SwayAmplitude X 摆动幅度
	SwayAmplitude float64
	// SwayDuration 单程摆动时间（秒）
	SwayDuration float64
	// SwayElapsed 摆动累计时间（秒）
	SwayElapsed float64

	// Visible 是否显示（庆祝阶段才打开）
	Visible bool
}
