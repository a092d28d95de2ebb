package systems

import (
	"github.com/gonewx/bemine/pkg/components"
	"github.com/gonewx/bemine/pkg/ecs"
	"github.com/gonewx/bemine/pkg/utils"
)

// TweenSystem 推进所有实体上的补间动画，并把结果写回对应组件
type TweenSystem struct {
	entityManager *ecs.EntityManager
}

// NewTweenSystem 创建补间系统
func NewTweenSystem(em *ecs.EntityManager) *TweenSystem {
	return &TweenSystem{entityManager: em}
}

// Update 推进补间，完成的补间在写入终值后移除
func (s *TweenSystem) Update(deltaTime float64) {
	if deltaTime < 0 {
		deltaTime = 0
	}

	for _, id := range ecs.GetEntitiesWith1[*components.TweenComponent](s.entityManager) {
		tc, _ := ecs.GetComponent[*components.TweenComponent](s.entityManager, id)

		remaining := tc.Tweens[:0]
		for _, tw := range tc.Tweens {
			if tw.Done {
				continue
			}
			tw.Elapsed += deltaTime
			if tw.Elapsed < tw.Delay {
				remaining = append(remaining, tw)
				continue
			}

			t := 1.0
			if tw.Duration > 0 {
				t = utils.Clamp01((tw.Elapsed - tw.Delay) / tw.Duration)
			}
			eased := t
			if tw.Easing != nil {
				eased = tw.Easing(t)
			}
			if t >= 1 {
				// 终值精确落在 To 上，不受缓动函数浮点误差影响
				eased = 1
				tw.Done = true
			}

			s.apply(id, tw.Property, utils.Lerp(tw.From, tw.To, eased))

			if !tw.Done {
				remaining = append(remaining, tw)
			}
		}
		tc.Tweens = remaining
	}
}

func (s *TweenSystem) apply(id ecs.EntityID, prop components.TweenProperty, value float64) {
	switch prop {
	case components.TweenOffsetX, components.TweenOffsetY:
		pos, ok := ecs.GetComponent[*components.ScreenPositionComponent](s.entityManager, id)
		if !ok {
			return
		}
		if prop == components.TweenOffsetX {
			pos.OffsetX = value
		} else {
			pos.OffsetY = value
		}
	case components.TweenAlpha:
		if vis, ok := ecs.GetComponent[*components.VisibilityComponent](s.entityManager, id); ok {
			vis.Alpha = utils.Clamp01(value)
		}
	case components.TweenPositionY:
		if tr, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id); ok {
			tr.Position[1] = value
		}
	}
}
