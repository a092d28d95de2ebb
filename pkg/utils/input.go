// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 存储当前帧的指针输入状态
// 用于统一处理鼠标和触摸输入
type InputState struct {
	// X, Y 指针位置（屏幕坐标）
	X, Y int
	// Pressed 指针是否处于按下状态
	Pressed bool
	// JustReleased 指针是否在本帧刚刚释放
	JustReleased bool
	// IsTouching 是否来自触摸
	IsTouching bool
}

// InputSource 每帧提供一次输入快照
// 系统通过它读取输入，测试中可以替换为固定序列
type InputSource func() InputState

// PointerTracker 从 ebiten 读取鼠标和触摸输入
//
// 触摸释放的那一帧 ebiten 已无法提供触摸坐标，所以需要记住最后一次触摸位置。
type PointerTracker struct {
	lastTouchX, lastTouchY int
}

// NewPointerTracker 创建指针跟踪器
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{}
}

// Poll 获取当前帧的输入状态，优先检测触摸
func (p *PointerTracker) Poll() InputState {
	state := InputState{}

	// 触摸释放：使用保存的最后触摸位置
	if released := inpututil.AppendJustReleasedTouchIDs(nil); len(released) > 0 {
		state.X, state.Y = p.lastTouchX, p.lastTouchY
		state.JustReleased = true
		state.IsTouching = true
		return state
	}

	// 活动的触摸
	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		p.lastTouchX, p.lastTouchY = x, y
		state.X, state.Y = x, y
		state.Pressed = true
		state.IsTouching = true
		return state
	}

	// 鼠标
	state.X, state.Y = ebiten.CursorPosition()
	state.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	state.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	return state
}
