package game

import (
	"github.com/gonewx/bemine/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the app.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene. deltaTime is in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Reconfigurable 是一个可选接口，用于支持配置热重载
//
// 场景自行决定新配置的哪些部分可以立即生效；
// 无法在当前状态下应用时返回错误，调用方只记录日志。
type Reconfigurable interface {
	ApplyConfig(cfg *config.SceneConfig) error
}
