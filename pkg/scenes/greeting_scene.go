package scenes

import (
	"fmt"
	"log"

	"github.com/gonewx/bemine/pkg/components"
	"github.com/gonewx/bemine/pkg/config"
	"github.com/gonewx/bemine/pkg/ecs"
	"github.com/gonewx/bemine/pkg/entities"
	"github.com/gonewx/bemine/pkg/game"
	"github.com/gonewx/bemine/pkg/systems"
	"github.com/gonewx/bemine/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// GreetingScene 问候页面：提问、Yes/No 按钮、平台动画和庆祝
type GreetingScene struct {
	sceneManager *game.SceneManager
	audio        *game.AudioManager
	cfg          *config.SceneConfig

	entityManager *ecs.EntityManager
	ents          *entities.SceneEntities

	// 系统按 Update 调用顺序排列
	buttonSystem   *systems.ButtonSystem
	flowSystem     *systems.GreetingFlowSystem
	platformSystem *systems.PlatformAnimationSystem
	tweenSystem    *systems.TweenSystem
	spinSystem     *systems.SpinSystem
	lightSystem    *systems.LightRigSystem
	dodgeSystem    *systems.DodgeSystem
	renderSystem   *systems.RenderSystem
}

// NewGreetingScene 创建问候场景
//
// 参数：
//   - sm: 场景管理器，返回按钮通过它重新加载场景（可为 nil）
//   - cfg: 场景配置
//   - audio: 音频管理器（可为 nil）
//   - input: 指针输入源
func NewGreetingScene(sm *game.SceneManager, cfg *config.SceneConfig, audio *game.AudioManager, input utils.InputSource) (*GreetingScene, error) {
	em := ecs.NewEntityManager()
	ents, err := entities.NewGreetingScene(em, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build greeting scene: %w", err)
	}

	s := &GreetingScene{
		sceneManager:  sm,
		audio:         audio,
		cfg:           cfg,
		entityManager: em,
		ents:          ents,
	}

	camera := systems.NewCamera(config.GameWindowWidth, config.GameWindowHeight, config.CameraFovYDeg, config.CameraDistance)

	s.platformSystem = systems.NewPlatformAnimationSystem(em, ents.Platform)
	s.buttonSystem = systems.NewButtonSystem(em, input)
	s.flowSystem = systems.NewGreetingFlowSystem(em, ents, s.platformSystem, cfg, audio, s.goBack)
	s.tweenSystem = systems.NewTweenSystem(em)
	s.spinSystem = systems.NewSpinSystem(em)
	s.lightSystem = systems.NewLightRigSystem(em)
	s.dodgeSystem = systems.NewDodgeSystem(em)
	s.renderSystem = systems.NewRenderSystem(em, camera)

	log.Printf("[GreetingScene] Created with %d entities", em.EntityCount())
	return s, nil
}

// goBack 停止音乐并重新加载整个页面
func (s *GreetingScene) goBack() {
	s.audio.Stop()
	if s.sceneManager != nil {
		s.sceneManager.Reload()
	}
}

// Update 按固定顺序更新所有系统
//
// 流程系统先于平台动画系统运行，所以点击 Yes 的那一帧平台就开始过渡。
func (s *GreetingScene) Update(deltaTime float64) {
	s.buttonSystem.Update(deltaTime)
	s.flowSystem.Update(deltaTime)
	s.platformSystem.Update(deltaTime)
	s.tweenSystem.Update(deltaTime)
	s.spinSystem.Update(deltaTime)
	s.lightSystem.Update(deltaTime)
	s.dodgeSystem.Update(deltaTime)

	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制场景
func (s *GreetingScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
}

// ApplyConfig 热重载配置
//
// 平台关键帧只在 idle 阶段替换；提问文字和按钮文字只在 asking 状态更新。
func (s *GreetingScene) ApplyConfig(cfg *config.SceneConfig) error {
	axis, err := components.ParseAxis(cfg.Platform.SpinAxis)
	if err != nil {
		return err
	}
	start, end := entities.PlatformKeyframes(&cfg.Platform)
	if err := s.platformSystem.Reconfigure(start, end, cfg.Platform.TransitionSpeed, cfg.Platform.SpinSpeed, axis); err != nil {
		return fmt.Errorf("platform: %w", err)
	}
	s.cfg.Platform = cfg.Platform

	if s.flowSystem.State() == components.FlowAsking {
		s.setLabel(s.ents.AskMessage, cfg.UI.AskMessage)
		s.setLabel(s.ents.CelebrateMessage, cfg.UI.CelebrateMessage)
		s.setLabel(s.ents.YesButton, cfg.UI.YesLabel)
		s.setLabel(s.ents.NoButton, cfg.UI.NoLabel)
		s.setLabel(s.ents.BackButton, cfg.UI.BackLabel)
		s.cfg.UI.AskMessage = cfg.UI.AskMessage
		s.cfg.UI.CelebrateMessage = cfg.UI.CelebrateMessage
	}

	log.Printf("[GreetingScene] Config applied")
	return nil
}

func (s *GreetingScene) setLabel(id ecs.EntityID, text string) {
	if label, ok := ecs.GetComponent[*components.LabelComponent](s.entityManager, id); ok {
		label.Text = text
	}
}

// Platform 返回平台动画系统，用于读取当前变换和阶段
func (s *GreetingScene) Platform() *systems.PlatformAnimationSystem {
	return s.platformSystem
}

// Flow 返回界面流程系统
func (s *GreetingScene) Flow() *systems.GreetingFlowSystem {
	return s.flowSystem
}

// Entities 返回场景实体
func (s *GreetingScene) Entities() *entities.SceneEntities {
	return s.ents
}

// EntityManager 返回实体管理器
func (s *GreetingScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}
