package config

// 布局配置常量
// 所有坐标为逻辑屏幕坐标（像素），Ebitengine 负责缩放到实际窗口

const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 1280
	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 720

	// ButtonWidth / ButtonHeight Yes、No、Go back 按钮尺寸
	ButtonWidth  = 140.0
	ButtonHeight = 48.0

	// ButtonRowY 按钮行的 Y 坐标
	ButtonRowY = 470.0
	// YesButtonX / NoButtonX 按钮的初始 X 坐标（居中两侧）
	YesButtonX = GameWindowWidth/2 - 260.0
	NoButtonX  = GameWindowWidth/2 + 120.0

	// BackButtonX / BackButtonY 返回按钮位置（左下角）
	BackButtonX = 80.0
	BackButtonY = GameWindowHeight - 120.0

	// AskMessageY 提问文字的 Y 坐标
	AskMessageY = 150.0
	// CelebrateMessageY 庆祝文字的 Y 坐标
	CelebrateMessageY = 110.0

	// MessageScale 文字缩放（基础字体 7x13）
	MessageScale = 4.0
	// ButtonLabelScale 按钮文字缩放
	ButtonLabelScale = 2.0

	// CameraDistance 相机到原点的距离（场景单位）
	CameraDistance = 5.0
	// CameraFovYDeg 垂直视角（度）
	CameraFovYDeg = 75.0
)
