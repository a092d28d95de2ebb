package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/bemine/pkg/components"
	"github.com/gonewx/bemine/pkg/ecs"
	"github.com/gonewx/bemine/pkg/utils"
)

// LightRigSystem 聚光灯动画
//
// 灯组每 YawPeriod 秒绕 Y 轴转一圈；同时沿 X 轴在 0 和 SwayAmplitude 之间往返，
// 单程 SwayDuration 秒，使用 EaseInOutQuad。灯组隐藏时不推进。
type LightRigSystem struct {
	entityManager *ecs.EntityManager
}

// NewLightRigSystem 创建灯光系统
func NewLightRigSystem(em *ecs.EntityManager) *LightRigSystem {
	return &LightRigSystem{entityManager: em}
}

// Update 推进所有可见灯组
func (s *LightRigSystem) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	for _, id := range ecs.GetEntitiesWith1[*components.LightRigComponent](s.entityManager) {
		rig, _ := ecs.GetComponent[*components.LightRigComponent](s.entityManager, id)
		if !rig.Visible {
			continue
		}

		if rig.YawPeriod > 0 {
			rig.Yaw = math.Mod(rig.Yaw+deltaTime*2*math.Pi/rig.YawPeriod, 2*math.Pi)
		}

		if rig.SwayDuration > 0 {
			rig.SwayElapsed = math.Mod(rig.SwayElapsed+deltaTime, 2*rig.SwayDuration)
			rig.SwayX = SwayOffset(rig.SwayElapsed, rig.SwayDuration, rig.SwayAmplitude)
		}
	}
}

// SwayOffset 往返摆动的 X 偏移：前半程 0→amplitude，后半程 amplitude→0
func SwayOffset(elapsed, duration, amplitude float64) float64 {
	if elapsed <= duration {
		return amplitude * utils.EaseInOutQuad(elapsed/duration)
	}
	return amplitude * utils.EaseInOutQuad((2*duration-elapsed)/duration)
}

// LightWorldPosition 返回第 i 盏灯在当前公转和摆动下的世界坐标
func LightWorldPosition(rig *components.LightRigComponent, i int) mgl64.Vec3 {
	p := mgl64.Rotate3DY(rig.Yaw).Mul3x1(rig.Lights[i].Position)
	p[0] += rig.SwayX
	return p
}
