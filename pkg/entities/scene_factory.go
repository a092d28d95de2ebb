package entities

import (
	"fmt"
	"strings"

	"github.com/gonewx/bemine/pkg/components"
	"github.com/gonewx/bemine/pkg/config"
	"github.com/gonewx/bemine/pkg/ecs"
	"golang.org/x/image/colornames"
)

// SceneEntities 问候场景中所有需要被系统引用的实体
type SceneEntities struct {
	Platform         ecs.EntityID
	Avatar           ecs.EntityID
	Lights           ecs.EntityID
	Flow             ecs.EntityID
	AskMessage       ecs.EntityID
	CelebrateMessage ecs.EntityID
	YesButton        ecs.EntityID
	NoButton         ecs.EntityID
	BackButton       ecs.EntityID
}

// NewAvatarEntity 创建角色实体
//
// 角色一开始在画面外（Y 方向偏移 DropOffset），接受后落到配置位置。
func NewAvatarEntity(em *ecs.EntityManager, cfg *config.AvatarConfig) ecs.EntityID {
	pos := cfg.Position.Vec3()
	pos[1] += cfg.DropOffset

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.AvatarComponent{Radius: cfg.Radius, Scale: cfg.Scale})
	ecs.AddComponent(em, id, &components.TransformComponent{Transform: components.Transform{
		Position: pos,
		Rotation: cfg.Rotation.Vec3(),
		Size:     components.Size3{Width: cfg.Scale, Height: cfg.Scale, Depth: cfg.Scale},
	}})
	ecs.AddComponent(em, id, &components.SpinComponent{
		Axis:    components.AxisZ,
		Speed:   cfg.SpinSpeed,
		Enabled: true,
	})
	ecs.AddComponent(em, id, &components.TweenComponent{})
	return id
}

// NewLightRigEntity 创建聚光灯组（初始隐藏）
func NewLightRigEntity(em *ecs.EntityManager, cfg *config.LightsConfig) ecs.EntityID {
	lights := make([]components.SpotLight, len(cfg.Positions))
	for i, p := range cfg.Positions {
		lights[i] = components.SpotLight{
			Position: p.Vec3(),
			Color:    colornames.Map[strings.ToLower(cfg.Colors[i])],
		}
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.LightRigComponent{
		Lights:        lights,
		YawPeriod:     cfg.YawPeriod,
		SwayAmplitude: cfg.SwayAmplitude,
		SwayDuration:  cfg.SwayDuration,
	})
	return id
}

// NewGreetingScene 按配置创建问候场景的全部实体
func NewGreetingScene(em *ecs.EntityManager, cfg *config.SceneConfig) (*SceneEntities, error) {
	platform, err := NewPlatformEntity(em, &cfg.Platform)
	if err != nil {
		return nil, fmt.Errorf("create platform: %w", err)
	}

	flow := em.CreateEntity()
	ecs.AddComponent(em, flow, &components.GreetingFlowComponent{State: components.FlowAsking})

	slots := GenerateDodgeSlots(cfg.UI.DodgeSlots, cfg.UI.DodgeSeed, config.GameWindowWidth, config.GameWindowHeight)

	se := &SceneEntities{
		Platform:         platform,
		Avatar:           NewAvatarEntity(em, &cfg.Avatar),
		Lights:           NewLightRigEntity(em, &cfg.Lights),
		Flow:             flow,
		AskMessage:       NewMessageEntity(em, config.AskMessageY, cfg.UI.AskMessage, true),
		CelebrateMessage: NewMessageEntity(em, config.CelebrateMessageY, cfg.UI.CelebrateMessage, false),
		YesButton:        NewButtonEntity(em, config.YesButtonX, config.ButtonRowY, cfg.UI.YesLabel, true),
		NoButton:         NewDodgeButtonEntity(em, config.NoButtonX, config.ButtonRowY, cfg.UI.NoLabel, slots),
		BackButton:       NewButtonEntity(em, config.BackButtonX, config.BackButtonY, cfg.UI.BackLabel, false),
	}
	return se, nil
}

// AvatarRestY 角色落下后的 Y 坐标
func AvatarRestY(cfg *config.AvatarConfig) float64 {
	return cfg.Position[1]
}
