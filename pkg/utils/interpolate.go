package utils

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/bemine/pkg/components"
)

// LerpVec3 对三个分量分别做线性插值
func LerpVec3(start, end mgl64.Vec3, t float64) mgl64.Vec3 {
	return mgl64.Vec3{
		Lerp(start[0], end[0], t),
		Lerp(start[1], end[1], t),
		Lerp(start[2], end[2], t),
	}
}

// LerpSize 对宽、高、深分别做线性插值
func LerpSize(start, end components.Size3, t float64) components.Size3 {
	return components.Size3{
		Width:  Lerp(start.Width, end.Width, t),
		Height: Lerp(start.Height, end.Height, t),
		Depth:  Lerp(start.Depth, end.Depth, t),
	}
}

// LerpTransform 用同一个 t 对位置、旋转、尺寸共九个标量独立插值
func LerpTransform(start, end components.Transform, t float64) components.Transform {
	return components.Transform{
		Position: LerpVec3(start.Position, end.Position, t),
		Rotation: LerpVec3(start.Rotation, end.Rotation, t),
		Size:     LerpSize(start.Size, end.Size, t),
	}
}
