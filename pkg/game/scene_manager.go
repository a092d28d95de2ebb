package game

import (
	"fmt"
	"log"

	"github.com/gonewx/bemine/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 每次调用都返回一个全新的场景实例（返回按钮依赖它重置整个页面）
type SceneFactory func() Scene

// SceneManager manages which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene  Scene
	sceneFactory  SceneFactory
	pendingReload bool
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or Reload to set one.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Reload 请求用工厂重新创建当前场景
//
// 通常在场景自己的 Update 里（按钮回调中）调用，所以推迟到下一次 Update 开始时执行。
func (sm *SceneManager) Reload() {
	sm.pendingReload = true
}

// reloadNow 立即用工厂创建新场景
func (sm *SceneManager) reloadNow() {
	sm.pendingReload = false

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}

	newScene := sm.sceneFactory()
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景")
		return
	}
	sm.SwitchTo(newScene)
	log.Printf("[SceneManager] 场景已重新加载")
}

// ApplyConfig 把新配置交给当前场景（如果它支持热重载）
func (sm *SceneManager) ApplyConfig(cfg *config.SceneConfig) error {
	if sm.currentScene == nil {
		return fmt.Errorf("no active scene")
	}
	r, ok := sm.currentScene.(Reconfigurable)
	if !ok {
		return fmt.Errorf("scene %T does not support reconfiguration", sm.currentScene)
	}
	return r.ApplyConfig(cfg)
}

// Update updates the currently active scene.
// A pending reload is executed first, so the new scene receives this frame's deltaTime.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.pendingReload {
		sm.reloadNow()
	}
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
