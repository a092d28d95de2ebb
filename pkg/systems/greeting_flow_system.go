package systems

import (
	"log"

	"github.com/gonewx/bemine/pkg/components"
	"github.com/gonewx/bemine/pkg/config"
	"github.com/gonewx/bemine/pkg/ecs"
	"github.com/gonewx/bemine/pkg/entities"
	"github.com/gonewx/bemine/pkg/utils"
)

// MelodyPlayer 接受后播放旋律
type MelodyPlayer interface {
	PlayMelody()
}

// GreetingFlowSystem 问候页面的界面流程
//
// 流程：asking --点击 Yes--> accepted --RevealDelay 秒--> celebrating
//
// 每帧把"是否已接受"作为触发信号电平发给平台动画系统。
type GreetingFlowSystem struct {
	entityManager *ecs.EntityManager
	ents          *entities.SceneEntities
	platform      *PlatformAnimationSystem
	cfg           *config.SceneConfig
	audio         MelodyPlayer
	onBack        func()
}

// NewGreetingFlowSystem 创建界面流程系统，并绑定 Yes 和 Go back 按钮的回调
//
// 参数：
//   - audio: 可为 nil（不播放声音）
//   - onBack: 点击返回按钮时调用，通常是重新加载场景
func NewGreetingFlowSystem(em *ecs.EntityManager, ents *entities.SceneEntities, platform *PlatformAnimationSystem, cfg *config.SceneConfig, audio MelodyPlayer, onBack func()) *GreetingFlowSystem {
	s := &GreetingFlowSystem{
		entityManager: em,
		ents:          ents,
		platform:      platform,
		cfg:           cfg,
		audio:         audio,
		onBack:        onBack,
	}

	if yes, ok := ecs.GetComponent[*components.ButtonComponent](em, ents.YesButton); ok {
		yes.OnClick = s.Accept
	}
	if back, ok := ecs.GetComponent[*components.ButtonComponent](em, ents.BackButton); ok {
		back.OnClick = s.GoBack
	}

	return s
}

func (s *GreetingFlowSystem) flow() *components.GreetingFlowComponent {
	flow, _ := ecs.GetComponent[*components.GreetingFlowComponent](s.entityManager, s.ents.Flow)
	return flow
}

// State 返回当前流程状态
func (s *GreetingFlowSystem) State() components.FlowState {
	if flow := s.flow(); flow != nil {
		return flow.State
	}
	return components.FlowAsking
}

// Accept 用户点击 Yes
//
// 只在 asking 状态有效：按钮和提问退场，角色落下，播放旋律，平台开始过渡。
func (s *GreetingFlowSystem) Accept() {
	flow := s.flow()
	if flow == nil || flow.State != components.FlowAsking {
		return
	}

	ui := s.cfg.UI
	s.exit(s.ents.YesButton, components.TweenOffsetX, -ui.ExitDistance)
	s.exit(s.ents.NoButton, components.TweenOffsetX, ui.ExitDistance)
	s.exit(s.ents.AskMessage, components.TweenOffsetY, -ui.ExitDistance)

	s.dropAvatar()

	if s.audio != nil {
		s.audio.PlayMelody()
	}

	flow.State = components.FlowAccepted
	flow.ElapsedTime = 0
	s.platform.Trigger(true)

	log.Printf("[GreetingFlowSystem] State: %s → %s", components.FlowAsking, components.FlowAccepted)
}

// GoBack 用户点击返回按钮
func (s *GreetingFlowSystem) GoBack() {
	if s.State() != components.FlowCelebrating {
		return
	}
	log.Println("[GreetingFlowSystem] Go back")
	if s.onBack != nil {
		s.onBack()
	}
}

// Update 推进流程计时，并把触发信号发给平台
func (s *GreetingFlowSystem) Update(deltaTime float64) {
	flow := s.flow()
	if flow == nil {
		return
	}
	if deltaTime > 0 {
		flow.ElapsedTime += deltaTime
	}

	s.platform.Trigger(flow.State != components.FlowAsking)

	if flow.State == components.FlowAccepted && flow.ElapsedTime >= s.cfg.UI.RevealDelay {
		s.celebrate(flow)
	}
}

// exit 禁用并移出一个界面元素
func (s *GreetingFlowSystem) exit(id ecs.EntityID, prop components.TweenProperty, distance float64) {
	if button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id); ok {
		button.Enabled = false
	}
	tc, ok := ecs.GetComponent[*components.TweenComponent](s.entityManager, id)
	if !ok {
		return
	}
	d := s.cfg.UI.ExitDuration
	tc.Add(&components.Tween{Property: prop, From: 0, To: distance, Duration: d, Easing: utils.EaseInOutCubic})
	tc.Add(&components.Tween{Property: components.TweenAlpha, From: 1, To: 0, Duration: d})
}

// dropAvatar 角色从上方落到平台上
func (s *GreetingFlowSystem) dropAvatar() {
	tc, ok := ecs.GetComponent[*components.TweenComponent](s.entityManager, s.ents.Avatar)
	if !ok {
		return
	}
	rest := entities.AvatarRestY(&s.cfg.Avatar)
	tc.Add(&components.Tween{
		Property: components.TweenPositionY,
		From:     rest + s.cfg.Avatar.DropOffset,
		To:       rest,
		Duration: s.cfg.Avatar.DropDuration,
		Easing:   utils.EaseOutCubic,
	})
}

// celebrate 显示庆祝文字、灯光和返回按钮
func (s *GreetingFlowSystem) celebrate(flow *components.GreetingFlowComponent) {
	ui := s.cfg.UI
	for _, id := range []ecs.EntityID{s.ents.CelebrateMessage, s.ents.BackButton} {
		if tc, ok := ecs.GetComponent[*components.TweenComponent](s.entityManager, id); ok {
			tc.Add(&components.Tween{
				Property: components.TweenAlpha,
				From:     0,
				To:       1,
				Delay:    ui.FadeInDelay,
				Duration: ui.FadeInDuration,
			})
		}
	}
	if back, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, s.ents.BackButton); ok {
		back.Enabled = true
	}
	if rig, ok := ecs.GetComponent[*components.LightRigComponent](s.entityManager, s.ents.Lights); ok {
		rig.Visible = true
	}

	flow.State = components.FlowCelebrating
	flow.ElapsedTime = 0
	log.Printf("[GreetingFlowSystem] State: %s → %s", components.FlowAccepted, components.FlowCelebrating)
}
