package systems

import (
	"github.com/gonewx/bemine/pkg/components"
	"github.com/gonewx/bemine/pkg/ecs"
)

// SpinSystem 让带 SpinComponent 的实体绕指定轴匀速旋转
type SpinSystem struct {
	entityManager *ecs.EntityManager
}

// NewSpinSystem 创建旋转系统
func NewSpinSystem(em *ecs.EntityManager) *SpinSystem {
	return &SpinSystem{entityManager: em}
}

// Update 累加旋转角
func (s *SpinSystem) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	for _, id := range ecs.GetEntitiesWith2[*components.SpinComponent, *components.TransformComponent](s.entityManager) {
		spin, _ := ecs.GetComponent[*components.SpinComponent](s.entityManager, id)
		if !spin.Enabled {
			continue
		}
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		tr.Rotation[spin.Axis] += deltaTime * spin.Speed
	}
}
