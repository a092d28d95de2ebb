package components

// DodgeComponent 让按钮在被悬停时跳到下一个预设位置
//
// Slots 在创建时随机生成，Index 为 -1 时按钮停在初始布局位置。
type DodgeComponent struct {
	Slots [][2]float64
	Index int
	// Hops 累计跳跃次数
	Hops int
}
