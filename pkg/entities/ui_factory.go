package entities

import (
	"image/color"
	"math/rand/v2"

	"github.com/gonewx/bemine/pkg/components"
	"github.com/gonewx/bemine/pkg/config"
	"github.com/gonewx/bemine/pkg/ecs"
	"golang.org/x/image/colornames"
)

// 按钮配色
var (
	buttonFill      = color.RGBA{R: 0xf4, G: 0xe3, B: 0xc9, A: 0xff}
	buttonTextColor = color.RGBA{R: 0x5a, G: 0x2e, B: 0x1f, A: 0xff}
)

// NewButtonEntity 创建按钮实体
//
// 参数：
//   - x, y: 左上角屏幕坐标
//   - label: 按钮文字
//   - visible: 初始是否可见（不可见的按钮同时处于禁用状态）
func NewButtonEntity(em *ecs.EntityManager, x, y float64, label string, visible bool) ecs.EntityID {
	alpha := 0.0
	if visible {
		alpha = 1
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.ScreenPositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VisibilityComponent{Alpha: alpha})
	ecs.AddComponent(em, id, &components.LabelComponent{
		Text:  label,
		Scale: config.ButtonLabelScale,
		Color: buttonTextColor,
	})
	ecs.AddComponent(em, id, &components.ButtonComponent{
		Width:   config.ButtonWidth,
		Height:  config.ButtonHeight,
		Fill:    buttonFill,
		State:   components.UINormal,
		Enabled: visible,
	})
	ecs.AddComponent(em, id, &components.TweenComponent{})
	return id
}

// NewMessageEntity 创建居中显示的文字实体
func NewMessageEntity(em *ecs.EntityManager, y float64, text string, visible bool) ecs.EntityID {
	alpha := 0.0
	if visible {
		alpha = 1
	}

	id := em.CreateEntity()
	// X 为水平中心，渲染时居中对齐
	ecs.AddComponent(em, id, &components.ScreenPositionComponent{X: config.GameWindowWidth / 2, Y: y})
	ecs.AddComponent(em, id, &components.VisibilityComponent{Alpha: alpha})
	ecs.AddComponent(em, id, &components.LabelComponent{
		Text:  text,
		Scale: config.MessageScale,
		Color: colornames.Crimson,
	})
	ecs.AddComponent(em, id, &components.TweenComponent{})
	return id
}

// GenerateDodgeSlots 在屏幕范围内生成按钮可以跳去的随机位置
//
// seed 为 0 时使用随机种子。返回的位置保证按钮完整落在屏幕内。
func GenerateDodgeSlots(count int, seed uint64, width, height float64) [][2]float64 {
	var rng *rand.Rand
	if seed == 0 {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	} else {
		rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}

	maxX := width - config.ButtonWidth
	maxY := height - config.ButtonHeight
	slots := make([][2]float64, count)
	for i := range slots {
		slots[i] = [2]float64{rng.Float64() * maxX, rng.Float64() * maxY}
	}
	return slots
}

// NewDodgeButtonEntity 创建会躲开指针的按钮（"No!"）
func NewDodgeButtonEntity(em *ecs.EntityManager, x, y float64, label string, slots [][2]float64) ecs.EntityID {
	id := NewButtonEntity(em, x, y, label, true)
	ecs.AddComponent(em, id, &components.DodgeComponent{
		Slots: slots,
		Index: -1,
	})
	return id
}
