package components

// TweenProperty 补间动画作用的属性
type TweenProperty int

const (
	// TweenOffsetX 写入 ScreenPositionComponent.OffsetX
	TweenOffsetX TweenProperty = iota
	// TweenOffsetY 写入 ScreenPositionComponent.OffsetY
	TweenOffsetY
	// TweenAlpha 写入 VisibilityComponent.Alpha
	TweenAlpha
	// TweenPositionY 写入 TransformComponent.Position.Y()
	TweenPositionY
)

// Tween 单个属性的补间
type Tween struct {
	Property TweenProperty
	From, To float64
	// Duration 持续时间（秒），<= 0 表示立即到达终值
	Duration float64
	// Delay 开始前的等待时间（秒），等待期间属性保持不变
	Delay float64
	// Elapsed 已用时间（秒，包含 Delay）
	Elapsed float64
	// Easing 缓动函数，nil 表示线性
	Easing func(float64) float64
	// Done 是否已完成
	Done bool
}

// TweenComponent 挂在实体上的一组补间动画，同一属性后加入的会覆盖先加入的效果
type TweenComponent struct {
	Tweens []*Tween
}

// Add 追加一个补间
func (c *TweenComponent) Add(t *Tween) {
	c.Tweens = append(c.Tweens, t)
}

// Active 是否仍有未完成的补间
func (c *TweenComponent) Active() bool {
	for _, t := range c.Tweens {
		if !t.Done {
			return true
		}
	}
	return false
}
