package systems

import (
	"fmt"
	"log"
	"math"

	"github.com/gonewx/bemine/pkg/components"
	"github.com/gonewx/bemine/pkg/ecs"
	"github.com/gonewx/bemine/pkg/utils"
)

// PlatformAnimationSystem 驱动平台的脚本动画状态机
//
// 流程：idle --触发上升沿--> transitioning --进度到 1--> spinning（永不结束）
//
// 变换只在 Update 中修改；渲染层每帧通过 Transform() 拉取最新状态。
type PlatformAnimationSystem struct {
	entityManager  *ecs.EntityManager
	platformEntity ecs.EntityID
}

// NewPlatformAnimationSystem 创建平台动画系统
//
// platformEntity 必须同时拥有 TransformComponent 和 PlatformAnimationComponent，
// 见 entities.NewPlatformEntity。
func NewPlatformAnimationSystem(em *ecs.EntityManager, platformEntity ecs.EntityID) *PlatformAnimationSystem {
	return &PlatformAnimationSystem{
		entityManager:  em,
		platformEntity: platformEntity,
	}
}

// Entity 返回平台实体ID
func (s *PlatformAnimationSystem) Entity() ecs.EntityID {
	return s.platformEntity
}

func (s *PlatformAnimationSystem) lookup() (*components.PlatformAnimationComponent, *components.TransformComponent, bool) {
	anim, ok := ecs.GetComponent[*components.PlatformAnimationComponent](s.entityManager, s.platformEntity)
	if !ok {
		return nil, nil, false
	}
	transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, s.platformEntity)
	if !ok {
		return nil, nil, false
	}
	return anim, transform, true
}

// Trigger 接收外部触发信号的当前电平
//
// 只有在 idle 阶段检测到 false→true 的上升沿时才开始过渡；
// 信号保持为 true、或过渡/旋转中再次触发都会被忽略，保证每次会话只播放一次。
func (s *PlatformAnimationSystem) Trigger(signal bool) {
	anim, _, ok := s.lookup()
	if !ok {
		return
	}

	rising := signal && !anim.LastSignal
	anim.LastSignal = signal

	if !rising || anim.Phase != components.PhaseIdle {
		return
	}

	anim.Phase = components.PhaseTransitioning
	anim.Progress = 0
	log.Printf("[PlatformAnimationSystem] Phase: %s → %s", components.PhaseIdle, components.PhaseTransitioning)
}

// Update 每帧推进动画
//
// deltaTime 为负时按 0 处理（进度不会倒退）；过大的 deltaTime 由进度上限 1 截断。
func (s *PlatformAnimationSystem) Update(deltaTime float64) {
	anim, transform, ok := s.lookup()
	if !ok {
		return
	}

	dt := math.Max(0, deltaTime)

	switch anim.Phase {
	case components.PhaseIdle:
		// 等待触发
	case components.PhaseTransitioning:
		s.updateTransitioning(anim, transform, dt)
	case components.PhaseSpinning:
		s.updateSpinning(anim, transform, dt)
	}
}

// updateTransitioning 推进进度并对九个分量插值
func (s *PlatformAnimationSystem) updateTransitioning(anim *components.PlatformAnimationComponent, transform *components.TransformComponent, dt float64) {
	anim.Progress = math.Min(1, anim.Progress+dt*anim.TransitionSpeed)
	transform.Transform = utils.LerpTransform(anim.Start, anim.End, anim.Progress)

	if anim.Progress == 1 {
		// 进度停在 1，最后一帧插值结果即为旋转阶段的初始值
		anim.Phase = components.PhaseSpinning
		log.Printf("[PlatformAnimationSystem] Phase: %s → %s", components.PhaseTransitioning, components.PhaseSpinning)
	}
}

// updateSpinning 只推进旋转轴，其余字段保持过渡结束时的值
func (s *PlatformAnimationSystem) updateSpinning(anim *components.PlatformAnimationComponent, transform *components.TransformComponent, dt float64) {
	transform.Rotation[anim.SpinAxis] += dt * anim.SpinSpeed
}

// Transform 返回平台当前变换的副本
func (s *PlatformAnimationSystem) Transform() components.Transform {
	_, transform, ok := s.lookup()
	if !ok {
		return components.Transform{}
	}
	return transform.Transform
}

// Phase 返回当前阶段
func (s *PlatformAnimationSystem) Phase() components.AnimationPhase {
	anim, _, ok := s.lookup()
	if !ok {
		return components.PhaseIdle
	}
	return anim.Phase
}

// Progress 返回过渡进度
func (s *PlatformAnimationSystem) Progress() float64 {
	anim, _, ok := s.lookup()
	if !ok {
		return 0
	}
	return anim.Progress
}

// Reconfigure 替换关键帧和速度
//
// 只允许在 idle 阶段调用：一个触发周期内关键帧不可变。
// 成功时变换立即回到新的起始关键帧。
func (s *PlatformAnimationSystem) Reconfigure(start, end components.Transform, transitionSpeed, spinSpeed float64, axis components.Axis) error {
	anim, transform, ok := s.lookup()
	if !ok {
		return fmt.Errorf("platform entity %d is missing animation components", s.platformEntity)
	}
	if anim.Phase != components.PhaseIdle {
		return fmt.Errorf("cannot reconfigure platform while %s", anim.Phase)
	}
	if transitionSpeed <= 0 {
		return fmt.Errorf("transition speed must be > 0, got %v", transitionSpeed)
	}

	anim.Start = start
	anim.End = end
	anim.TransitionSpeed = transitionSpeed
	anim.SpinSpeed = spinSpeed
	anim.SpinAxis = axis
	transform.Transform = start

	log.Printf("[PlatformAnimationSystem] Reconfigured: speed=%.2f spin=%.2f axis=%s", transitionSpeed, spinSpeed, axis)
	return nil
}
