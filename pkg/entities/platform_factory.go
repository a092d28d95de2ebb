package entities

import (
	"fmt"

	"github.com/gonewx/bemine/pkg/components"
	"github.com/gonewx/bemine/pkg/config"
	"github.com/gonewx/bemine/pkg/ecs"
)

// PlatformKeyframes 将配置转换为起止关键帧
func PlatformKeyframes(cfg *config.PlatformConfig) (start, end components.Transform) {
	start = components.Transform{
		Position: cfg.StartPosition.Vec3(),
		Rotation: cfg.StartRotation.Vec3(),
		Size:     sizeFromConfig(cfg.StartSize),
	}
	end = components.Transform{
		Position: cfg.EndPosition.Vec3(),
		Rotation: cfg.EndRotation.Vec3(),
		Size:     sizeFromConfig(cfg.EndSize),
	}
	return start, end
}

func sizeFromConfig(s config.SizeConfig) components.Size3 {
	return components.Size3{Width: s.Width, Height: s.Height, Depth: s.Depth}
}

// NewPlatformEntity 创建平台实体
//
// 初始变换等于起始关键帧，阶段为 idle。
func NewPlatformEntity(em *ecs.EntityManager, cfg *config.PlatformConfig) (ecs.EntityID, error) {
	axis, err := components.ParseAxis(cfg.SpinAxis)
	if err != nil {
		return 0, fmt.Errorf("platform spin axis: %w", err)
	}

	start, end := PlatformKeyframes(cfg)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PlatformComponent{})
	ecs.AddComponent(em, id, &components.TransformComponent{Transform: start})
	ecs.AddComponent(em, id, &components.PlatformAnimationComponent{
		Phase:           components.PhaseIdle,
		Progress:        0,
		Start:           start,
		End:             end,
		TransitionSpeed: cfg.TransitionSpeed,
		SpinSpeed:       cfg.SpinSpeed,
		SpinAxis:        axis,
	})

	return id, nil
}
