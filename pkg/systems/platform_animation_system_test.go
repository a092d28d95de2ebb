package systems

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/bemine/pkg/components"
	"github.com/gonewx/bemine/pkg/ecs"
)

const animEpsilon = 1e-9

func testKeyframes() (components.Transform, components.Transform) {
	start := components.Transform{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.Vec3{0, 0, 0},
		Size:     components.Size3{Width: 13, Height: 8, Depth: 0.2},
	}
	end := components.Transform{
		Position: mgl64.Vec3{0, 0, -5},
		Rotation: mgl64.Vec3{-math.Pi / 2.5, 0, 0},
		Size:     components.Size3{Width: 10, Height: 10, Depth: 0.2},
	}
	return start, end
}

// newTestPlatform 创建带动画组件的平台实体（speed 0.5，绕 Z 轴 0.8 rad/s）
func newTestPlatform(t *testing.T) (*ecs.EntityManager, *PlatformAnimationSystem) {
	t.Helper()
	em := ecs.NewEntityManager()
	start, end := testKeyframes()

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{Transform: start})
	ecs.AddComponent(em, id, &components.PlatformAnimationComponent{
		Phase:           components.PhaseIdle,
		Start:           start,
		End:             end,
		TransitionSpeed: 0.5,
		SpinSpeed:       0.8,
		SpinAxis:        components.AxisZ,
	})
	return em, NewPlatformAnimationSystem(em, id)
}

func vecNear(a, b mgl64.Vec3) bool {
	return a.ApproxEqualThreshold(b, animEpsilon)
}

func transformNear(a, b components.Transform) bool {
	return vecNear(a.Position, b.Position) &&
		vecNear(a.Rotation, b.Rotation) &&
		math.Abs(a.Size.Width-b.Size.Width) < animEpsilon &&
		math.Abs(a.Size.Height-b.Size.Height) < animEpsilon &&
		math.Abs(a.Size.Depth-b.Size.Depth) < animEpsilon
}

// TestPlatformAnimation_IdleHoldsStart 未触发时任意帧数都保持起始关键帧
func TestPlatformAnimation_IdleHoldsStart(t *testing.T) {
	_, sys := newTestPlatform(t)
	start, _ := testKeyframes()

	for i := 0; i < 100; i++ {
		sys.Update(0.5)
	}

	if sys.Phase() != components.PhaseIdle {
		t.Errorf("阶段 = %s, 期望 idle", sys.Phase())
	}
	if sys.Progress() != 0 {
		t.Errorf("进度 = %v, 期望 0", sys.Progress())
	}
	if !transformNear(sys.Transform(), start) {
		t.Errorf("变换 = %+v, 期望起始关键帧 %+v", sys.Transform(), start)
	}
}

// TestPlatformAnimation_ScenarioA 两个 1 秒帧走完过渡
func TestPlatformAnimation_ScenarioA(t *testing.T) {
	_, sys := newTestPlatform(t)
	_, end := testKeyframes()

	sys.Trigger(true)
	if sys.Phase() != components.PhaseTransitioning {
		t.Fatalf("触发后阶段 = %s, 期望 transitioning", sys.Phase())
	}

	sys.Update(1.0)
	if math.Abs(sys.Progress()-0.5) > animEpsilon {
		t.Errorf("第一帧后进度 = %v, 期望 0.5", sys.Progress())
	}
	tr := sys.Transform()
	if !vecNear(tr.Position, mgl64.Vec3{0, 0, -2.5}) {
		t.Errorf("第一帧后位置 = %v, 期望 (0,0,-2.5)", tr.Position)
	}
	if math.Abs(tr.Size.Width-11.5) > animEpsilon || math.Abs(tr.Size.Height-9) > animEpsilon {
		t.Errorf("第一帧后尺寸 = %+v, 期望 11.5x9", tr.Size)
	}
	if math.Abs(tr.Rotation.X()-(-math.Pi/5)) > animEpsilon {
		t.Errorf("第一帧后 X 旋转 = %v, 期望 %v", tr.Rotation.X(), -math.Pi/5)
	}

	sys.Update(1.0)
	if sys.Progress() != 1 {
		t.Errorf("第二帧后进度 = %v, 期望 1", sys.Progress())
	}
	if sys.Phase() != components.PhaseSpinning {
		t.Errorf("第二帧后阶段 = %s, 期望 spinning", sys.Phase())
	}
	if !transformNear(sys.Transform(), end) {
		t.Errorf("第二帧后变换 = %+v, 期望结束关键帧 %+v", sys.Transform(), end)
	}
}

// TestPlatformAnimation_ScenarioB 单个超大帧直接截断到 1
func TestPlatformAnimation_ScenarioB(t *testing.T) {
	_, sys := newTestPlatform(t)
	_, end := testKeyframes()

	sys.Trigger(true)
	sys.Update(10)

	if sys.Progress() != 1 {
		t.Errorf("进度 = %v, 期望 1", sys.Progress())
	}
	if sys.Phase() != components.PhaseSpinning {
		t.Errorf("阶段 = %s, 期望 spinning", sys.Phase())
	}
	// 旋转在进入 spinning 的那一帧不额外累加
	if !transformNear(sys.Transform(), end) {
		t.Errorf("变换 = %+v, 期望结束关键帧", sys.Transform())
	}
}

// TestPlatformAnimation_ScenarioC 旋转阶段只累加旋转轴
func TestPlatformAnimation_ScenarioC(t *testing.T) {
	_, sys := newTestPlatform(t)
	_, end := testKeyframes()

	sys.Trigger(true)
	sys.Update(2)
	before := sys.Transform()

	for i := 0; i < 10; i++ {
		sys.Update(0.1)
	}

	after := sys.Transform()
	if got := after.Rotation.Z() - before.Rotation.Z(); math.Abs(got-0.8) > animEpsilon {
		t.Errorf("Z 旋转增量 = %v, 期望 0.8", got)
	}
	if !vecNear(after.Position, end.Position) {
		t.Errorf("位置在旋转阶段被改变: %v", after.Position)
	}
	if after.Rotation.X() != before.Rotation.X() || after.Rotation.Y() != before.Rotation.Y() {
		t.Errorf("非旋转轴被改变: before=%v after=%v", before.Rotation, after.Rotation)
	}
	if after.Size != before.Size {
		t.Errorf("尺寸在旋转阶段被改变: %+v", after.Size)
	}
}

// TestPlatformAnimation_ProgressMonotonic 进度单调不减且不超过 1
func TestPlatformAnimation_ProgressMonotonic(t *testing.T) {
	deltas := []float64{0.016, 0.3, 0, -0.5, 0.7, 0.2, 3, 0.016}

	_, sys := newTestPlatform(t)
	sys.Trigger(true)

	prev := sys.Progress()
	for i, dt := range deltas {
		sys.Update(dt)
		p := sys.Progress()
		if p < prev {
			t.Fatalf("第 %d 帧 (dt=%v) 进度倒退: %v -> %v", i, dt, prev, p)
		}
		if p > 1 {
			t.Fatalf("第 %d 帧进度超过 1: %v", i, p)
		}
		prev = p
	}
}

// TestPlatformAnimation_NegativeDelta 负 deltaTime 按 0 处理
func TestPlatformAnimation_NegativeDelta(t *testing.T) {
	tests := []struct {
		name    string
		trigger bool
		warmup  float64
	}{
		{name: "过渡阶段", trigger: true, warmup: 0.5},
		{name: "旋转阶段", trigger: true, warmup: 5},
		{name: "空闲阶段", trigger: false, warmup: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, sys := newTestPlatform(t)
			if tt.trigger {
				sys.Trigger(true)
			}
			sys.Update(tt.warmup)

			before := sys.Transform()
			progress := sys.Progress()
			sys.Update(-1)

			if sys.Progress() != progress {
				t.Errorf("进度 = %v, 期望保持 %v", sys.Progress(), progress)
			}
			if !transformNear(sys.Transform(), before) {
				t.Errorf("变换被负 deltaTime 改变")
			}
		})
	}
}

// TestPlatformAnimation_TriggerEdge 只有 idle 阶段的上升沿能启动过渡
func TestPlatformAnimation_TriggerEdge(t *testing.T) {
	tests := []struct {
		name          string
		signals       []bool
		expectedPhase components.AnimationPhase
	}{
		{name: "从未触发", signals: nil, expectedPhase: components.PhaseIdle},
		{name: "持续为 false", signals: []bool{false, false, false}, expectedPhase: components.PhaseIdle},
		{name: "一次上升沿", signals: []bool{false, true}, expectedPhase: components.PhaseTransitioning},
		{name: "首帧即为 true", signals: []bool{true}, expectedPhase: components.PhaseTransitioning},
		{name: "保持 true", signals: []bool{true, true, true}, expectedPhase: components.PhaseTransitioning},
		{name: "回落后再次上升", signals: []bool{true, false, true}, expectedPhase: components.PhaseTransitioning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, sys := newTestPlatform(t)
			for _, s := range tt.signals {
				sys.Trigger(s)
				sys.Update(0.1)
			}
			if sys.Phase() != tt.expectedPhase {
				t.Errorf("阶段 = %s, 期望 %s", sys.Phase(), tt.expectedPhase)
			}
		})
	}
}

// TestPlatformAnimation_RetriggerDoesNotRestart 过渡或旋转中再次触发不会重置进度
func TestPlatformAnimation_RetriggerDoesNotRestart(t *testing.T) {
	_, sys := newTestPlatform(t)

	sys.Trigger(true)
	sys.Update(0.6)
	sys.Trigger(false)
	sys.Trigger(true)

	if math.Abs(sys.Progress()-0.3) > animEpsilon {
		t.Errorf("过渡中再次触发后进度 = %v, 期望 0.3", sys.Progress())
	}

	sys.Update(5)
	rot := sys.Transform().Rotation.Z()
	sys.Trigger(false)
	sys.Trigger(true)
	if sys.Phase() != components.PhaseSpinning {
		t.Errorf("旋转中再次触发后阶段 = %s, 期望 spinning", sys.Phase())
	}
	if sys.Transform().Rotation.Z() != rot {
		t.Errorf("触发不应修改变换")
	}
}

// TestPlatformAnimation_Reconfigure 关键帧只能在 idle 阶段替换
func TestPlatformAnimation_Reconfigure(t *testing.T) {
	_, sys := newTestPlatform(t)
	start, end := testKeyframes()

	newStart := start
	newStart.Position = mgl64.Vec3{1, 2, 3}

	if err := sys.Reconfigure(newStart, end, 1, 0.4, components.AxisY); err != nil {
		t.Fatalf("idle 阶段重配置失败: %v", err)
	}
	if !vecNear(sys.Transform().Position, newStart.Position) {
		t.Errorf("重配置后位置 = %v, 期望新的起始位置", sys.Transform().Position)
	}

	if err := sys.Reconfigure(start, end, 0, 0.4, components.AxisY); err == nil {
		t.Error("速度为 0 应当返回错误")
	}

	sys.Trigger(true)
	sys.Update(0.5)
	if err := sys.Reconfigure(start, end, 1, 0.4, components.AxisZ); err == nil {
		t.Error("过渡阶段重配置应当返回错误")
	}

	sys.Update(1)
	before := sys.Transform().Rotation
	sys.Update(1)
	after := sys.Transform().Rotation
	if math.Abs(after.Y()-before.Y()-0.4) > animEpsilon {
		t.Errorf("新旋转轴 Y 增量 = %v, 期望 0.4", after.Y()-before.Y())
	}
}

// TestPlatformAnimation_MissingEntity 实体不存在时所有操作安全返回
func TestPlatformAnimation_MissingEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	sys := NewPlatformAnimationSystem(em, 42)

	sys.Trigger(true)
	sys.Update(1)

	if sys.Phase() != components.PhaseIdle {
		t.Errorf("阶段 = %s, 期望 idle", sys.Phase())
	}
	if sys.Progress() != 0 {
		t.Errorf("进度 = %v, 期望 0", sys.Progress())
	}
	if err := sys.Reconfigure(components.Transform{}, components.Transform{}, 1, 1, components.AxisZ); err == nil {
		t.Error("实体不存在时重配置应当返回错误")
	}
}
