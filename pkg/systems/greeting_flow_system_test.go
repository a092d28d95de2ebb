package systems

import (
	"math"
	"testing"

	"github.com/gonewx/bemine/pkg/components"
	"github.com/gonewx/bemine/pkg/config"
	"github.com/gonewx/bemine/pkg/ecs"
	"github.com/gonewx/bemine/pkg/entities"
)

type countingPlayer struct {
	plays int
}

func (p *countingPlayer) PlayMelody() { p.plays++ }

type flowFixture struct {
	em       *ecs.EntityManager
	cfg      *config.SceneConfig
	ents     *entities.SceneEntities
	platform *PlatformAnimationSystem
	tweens   *TweenSystem
	flow     *GreetingFlowSystem
	player   *countingPlayer
	backs    int
}

func newFlowFixture(t *testing.T) *flowFixture {
	t.Helper()
	f := &flowFixture{
		em:     ecs.NewEntityManager(),
		cfg:    config.DefaultSceneConfig(),
		player: &countingPlayer{},
	}
	f.cfg.UI.DodgeSeed = 7

	ents, err := entities.NewGreetingScene(f.em, f.cfg)
	if err != nil {
		t.Fatalf("创建场景实体失败: %v", err)
	}
	f.ents = ents
	f.platform = NewPlatformAnimationSystem(f.em, ents.Platform)
	f.tweens = NewTweenSystem(f.em)
	f.flow = NewGreetingFlowSystem(f.em, ents, f.platform, f.cfg, f.player, func() { f.backs++ })
	return f
}

func (f *flowFixture) step(dt float64) {
	f.flow.Update(dt)
	f.platform.Update(dt)
	f.tweens.Update(dt)
}

func (f *flowFixture) button(id ecs.EntityID) *components.ButtonComponent {
	b, _ := ecs.GetComponent[*components.ButtonComponent](f.em, id)
	return b
}

func TestGreetingFlow_AskingKeepsPlatformIdle(t *testing.T) {
	f := newFlowFixture(t)
	for i := 0; i < 60; i++ {
		f.step(0.1)
	}
	if f.flow.State() != components.FlowAsking {
		t.Errorf("状态 = %s, 期望 asking", f.flow.State())
	}
	if f.platform.Phase() != components.PhaseIdle {
		t.Errorf("平台阶段 = %s, 期望 idle", f.platform.Phase())
	}
	if f.player.plays != 0 {
		t.Errorf("未接受时播放了 %d 次旋律", f.player.plays)
	}
}

func TestGreetingFlow_AcceptStartsEverything(t *testing.T) {
	f := newFlowFixture(t)

	f.button(f.ents.YesButton).OnClick()

	if f.flow.State() != components.FlowAccepted {
		t.Fatalf("状态 = %s, 期望 accepted", f.flow.State())
	}
	if f.platform.Phase() != components.PhaseTransitioning {
		t.Errorf("平台阶段 = %s, 期望 transitioning", f.platform.Phase())
	}
	if f.player.plays != 1 {
		t.Errorf("旋律播放次数 = %d, 期望 1", f.player.plays)
	}
	if f.button(f.ents.YesButton).Enabled || f.button(f.ents.NoButton).Enabled {
		t.Error("接受后 Yes/No 按钮应被禁用")
	}

	// 重复点击无效
	f.flow.Accept()
	if f.player.plays != 1 {
		t.Errorf("重复接受后播放次数 = %d, 期望 1", f.player.plays)
	}
}

func TestGreetingFlow_ExitAndDrop(t *testing.T) {
	f := newFlowFixture(t)
	f.flow.Accept()

	avatar, _ := ecs.GetComponent[*components.TransformComponent](f.em, f.ents.Avatar)
	f.step(0.01)
	rest := f.cfg.Avatar.Position[1]
	if avatar.Position.Y() <= rest {
		t.Errorf("落下刚开始时角色 Y = %v, 应当高于 %v", avatar.Position.Y(), rest)
	}

	for i := 0; i < 30; i++ {
		f.step(0.1)
	}

	yesPos, _ := ecs.GetComponent[*components.ScreenPositionComponent](f.em, f.ents.YesButton)
	noPos, _ := ecs.GetComponent[*components.ScreenPositionComponent](f.em, f.ents.NoButton)
	askPos, _ := ecs.GetComponent[*components.ScreenPositionComponent](f.em, f.ents.AskMessage)
	askVis, _ := ecs.GetComponent[*components.VisibilityComponent](f.em, f.ents.AskMessage)

	if yesPos.OffsetX != -f.cfg.UI.ExitDistance {
		t.Errorf("Yes 偏移 = %v, 期望 %v", yesPos.OffsetX, -f.cfg.UI.ExitDistance)
	}
	if noPos.OffsetX != f.cfg.UI.ExitDistance {
		t.Errorf("No 偏移 = %v, 期望 %v", noPos.OffsetX, f.cfg.UI.ExitDistance)
	}
	if askPos.OffsetY != -f.cfg.UI.ExitDistance || askVis.Alpha != 0 {
		t.Errorf("提问文字未退场: offsetY=%v alpha=%v", askPos.OffsetY, askVis.Alpha)
	}
	if math.Abs(avatar.Position.Y()-rest) > 1e-9 {
		t.Errorf("角色最终 Y = %v, 期望 %v", avatar.Position.Y(), rest)
	}
}

func TestGreetingFlow_Celebrate(t *testing.T) {
	f := newFlowFixture(t)
	f.flow.Accept()

	f.step(f.cfg.UI.RevealDelay / 2)
	if f.flow.State() != components.FlowAccepted {
		t.Fatalf("等待期间状态 = %s, 期望 accepted", f.flow.State())
	}
	f.flow.GoBack()
	if f.backs != 0 {
		t.Error("庆祝前返回不应生效")
	}

	f.step(f.cfg.UI.RevealDelay / 2)
	if f.flow.State() != components.FlowCelebrating {
		t.Fatalf("状态 = %s, 期望 celebrating", f.flow.State())
	}

	rig, _ := ecs.GetComponent[*components.LightRigComponent](f.em, f.ents.Lights)
	if !rig.Visible {
		t.Error("庆祝阶段灯光应当可见")
	}
	if !f.button(f.ents.BackButton).Enabled {
		t.Error("庆祝阶段返回按钮应当启用")
	}

	msgVis, _ := ecs.GetComponent[*components.VisibilityComponent](f.em, f.ents.CelebrateMessage)
	if msgVis.Alpha != 0 {
		t.Errorf("淡入延迟前透明度 = %v, 期望 0", msgVis.Alpha)
	}
	for i := 0; i < 40; i++ {
		f.step(0.1)
	}
	if msgVis.Alpha != 1 {
		t.Errorf("淡入完成后透明度 = %v, 期望 1", msgVis.Alpha)
	}

	// 平台在整个过程中一直保持触发，已进入旋转
	if f.platform.Phase() != components.PhaseSpinning {
		t.Errorf("平台阶段 = %s, 期望 spinning", f.platform.Phase())
	}

	f.button(f.ents.BackButton).OnClick()
	if f.backs != 1 {
		t.Errorf("返回回调次数 = %d, 期望 1", f.backs)
	}
}

func TestGreetingFlow_NilAudio(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultSceneConfig()
	ents, err := entities.NewGreetingScene(em, cfg)
	if err != nil {
		t.Fatal(err)
	}
	platform := NewPlatformAnimationSystem(em, ents.Platform)
	flow := NewGreetingFlowSystem(em, ents, platform, cfg, nil, nil)

	flow.Accept()
	if flow.State() != components.FlowAccepted {
		t.Errorf("状态 = %s, 期望 accepted", flow.State())
	}
}
