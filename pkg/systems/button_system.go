package systems

import (
	"github.com/gonewx/bemine/pkg/components"
	"github.com/gonewx/bemine/pkg/ecs"
	"github.com/gonewx/bemine/pkg/utils"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的指针悬停、点击等交互逻辑
//
// 职责：
//   - 检测指针悬停（更新按钮状态为 UIHovered，并在进入悬停的那一帧设置 HoverEntered）
//   - 检测指针释放（触发 OnClick 回调）
//   - 不可见或禁用的按钮不响应交互
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	input         utils.InputSource
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager, input utils.InputSource) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
		input:         input,
	}
}

// Update 更新按钮交互状态
func (s *ButtonSystem) Update(deltaTime float64) {
	in := s.input()
	px, py := float64(in.X), float64(in.Y)

	// 回调可能修改其他按钮，先收集再执行
	var clicked []func()

	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.ScreenPositionComponent](s.entityManager)
	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.ScreenPositionComponent](s.entityManager, entityID)

		button.HoverEntered = false

		if vis, ok := ecs.GetComponent[*components.VisibilityComponent](s.entityManager, entityID); ok && !vis.Visible() {
			button.State = components.UINormal
			continue
		}
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		x, y := pos.Resolved()
		hovered := pointInRect(px, py, x, y, button.Width, button.Height)
		if !hovered {
			button.State = components.UINormal
			continue
		}

		if button.State != components.UIHovered && button.State != components.UIClicked {
			button.HoverEntered = true
		}

		switch {
		case in.Pressed:
			button.State = components.UIClicked
		case in.JustReleased:
			if button.OnClick != nil {
				clicked = append(clicked, button.OnClick)
			}
			button.State = components.UIHovered
		default:
			button.State = components.UIHovered
		}
	}

	for _, fn := range clicked {
		fn()
	}
}

// pointInRect 检测点是否在矩形内（含边界）
func pointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}
