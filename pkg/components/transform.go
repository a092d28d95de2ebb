package components

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Axis 旋转轴
type Axis int

const (
	// AxisX 绕 X 轴
	AxisX Axis = iota
	// AxisY 绕 Y 轴
	AxisY
	// AxisZ 绕 Z 轴
	AxisZ
)

// String 返回轴名称（"x" / "y" / "z"）
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis 将配置中的轴名称解析为 Axis，大小写不敏感
func ParseAxis(name string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return AxisX, fmt.Errorf("unknown axis %q (want x, y or z)", name)
}

// Size3 盒体尺寸（宽、高、深），单位与场景坐标一致
type Size3 struct {
	Width  float64
	Height float64
	Depth  float64
}

// Transform 一个 3D 物体的完整变换状态
//
// Rotation 为 XYZ 顺序的欧拉角（弧度），与 three.js 的默认约定一致。
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3
	Size     Size3
}

// TransformComponent 实体当前的 3D 变换
//
// 由动画系统写入，渲染系统只读。
type TransformComponent struct {
	Transform
}
