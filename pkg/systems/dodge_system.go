package systems

import (
	"log"

	"github.com/gonewx/bemine/pkg/components"
	"github.com/gonewx/bemine/pkg/ecs"
)

// DodgeSystem 按钮一被悬停就跳到下一个预设位置
//
// 需要在 ButtonSystem 之后运行（依赖本帧的 HoverEntered）。
type DodgeSystem struct {
	entityManager *ecs.EntityManager
}

// NewDodgeSystem 创建躲闪系统
func NewDodgeSystem(em *ecs.EntityManager) *DodgeSystem {
	return &DodgeSystem{entityManager: em}
}

// Update 处理本帧刚进入悬停的按钮
func (s *DodgeSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith3[*components.DodgeComponent, *components.ButtonComponent, *components.ScreenPositionComponent](s.entityManager)
	for _, id := range entities {
		dodge, _ := ecs.GetComponent[*components.DodgeComponent](s.entityManager, id)
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		if !button.HoverEntered || len(dodge.Slots) == 0 {
			continue
		}

		pos, _ := ecs.GetComponent[*components.ScreenPositionComponent](s.entityManager, id)
		dodge.Index = (dodge.Index + 1) % len(dodge.Slots)
		dodge.Hops++
		pos.X, pos.Y = dodge.Slots[dodge.Index][0], dodge.Slots[dodge.Index][1]

		// 跳走后指针已不在按钮上
		button.State = components.UINormal
		button.HoverEntered = false

		log.Printf("[DodgeSystem] Entity %d hopped to slot %d (%.0f, %.0f)", id, dodge.Index, pos.X, pos.Y)
	}
}
