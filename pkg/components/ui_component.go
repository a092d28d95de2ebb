package components

import "image/color"

// UIState represents the current state of a UI element (e.g., button).
type UIState int

const (
	// UINormal indicates the UI element is in its default state.
	UINormal UIState = iota
	// UIHovered indicates the pointer is hovering over the UI element.
	UIHovered
	// UIClicked indicates the UI element is being pressed.
	UIClicked
	// UIDisabled indicates the UI element is disabled and cannot be interacted with.
	UIDisabled
)

// ScreenPositionComponent 屏幕空间位置（左上角，像素）
//
// OffsetX/OffsetY 由补间动画写入，与基准位置叠加后参与绘制和点击检测。
type ScreenPositionComponent struct {
	X, Y             float64
	OffsetX, OffsetY float64
}

// Resolved 返回叠加偏移后的实际位置
func (p *ScreenPositionComponent) Resolved() (float64, float64) {
	return p.X + p.OffsetX, p.Y + p.OffsetY
}

// VisibilityComponent 透明度（0 = 完全隐藏，1 = 完全可见）
type VisibilityComponent struct {
	Alpha float64
}

// Visible 返回是否可见
func (v *VisibilityComponent) Visible() bool {
	return v.Alpha > 0
}

// LabelComponent 文本标签
type LabelComponent struct {
	// Text 显示的文字，支持 "\n" 换行
	Text string
	// Scale 字体缩放（基础字体为 7x13 像素位图字体）
	Scale float64
	// Color 文字颜色
	Color color.RGBA
}

// ButtonComponent 按钮组件
//
// 纯数据：尺寸、交互状态和点击回调。文字由同一实体上的 LabelComponent 提供。
type ButtonComponent struct {
	// Width / Height 按钮尺寸（像素）
	Width  float64
	Height float64

	// Fill 背景颜色
	Fill color.RGBA

	// State 当前交互状态
	State UIState

	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool

	// HoverEntered 本帧是否刚刚进入悬停（只保持一帧）
	HoverEntered bool

	// OnClick 点击回调函数（在按钮内释放时触发）
	OnClick func()
}
