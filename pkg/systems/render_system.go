package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/bemine/pkg/components"
	"github.com/gonewx/bemine/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// 渲染配色
var (
	backgroundColor = colornames.Lavenderblush
	platformColor   = colornames.Hotpink
	avatarColor     = colornames.Gold
)

// 光源方向（光线传播方向）
var platformLightDir = mgl64.Vec3{-0.3, -1, -0.6}

const (
	// basicfont.Face7x13 行高
	baseLineHeight = 13.0
	// avatarSegments 光环折线段数
	avatarSegments = 48
)

// RenderSystem 绘制问候场景
//
// 绘制顺序：背景 → 聚光灯 → 平台 → 角色 → 界面（文字、按钮）。
// 系统只读取组件，不修改任何状态。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	camera        *Camera
	face          *text.GoXFace
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
	vertices      []ebiten.Vertex // 复用，避免每帧分配
	indices       []uint16
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, camera *Camera) *RenderSystem {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &RenderSystem{
		entityManager: em,
		camera:        camera,
		face:          text.NewGoXFace(basicfont.Face7x13),
		whiteImage:    white,
		whiteSubImage: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		vertices:      make([]ebiten.Vertex, 0, 24),
		indices:       make([]uint16, 0, 36),
	}
}

// Draw 绘制整个场景
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.drawLights(screen)
	s.drawPlatforms(screen)
	s.drawAvatars(screen)
	s.drawMessages(screen)
	s.drawButtons(screen)
}

// drawLights 聚光灯：光晕加一条指向原点的光束
func (s *RenderSystem) drawLights(screen *ebiten.Image) {
	ox, oy, _, originOK := s.camera.Project(mgl64.Vec3{})
	for _, id := range ecs.GetEntitiesWith1[*components.LightRigComponent](s.entityManager) {
		rig, _ := ecs.GetComponent[*components.LightRigComponent](s.entityManager, id)
		if !rig.Visible {
			continue
		}
		for i, l := range rig.Lights {
			x, y, depth, ok := s.camera.Project(LightWorldPosition(rig, i))
			if !ok {
				continue
			}
			r := float32(math.Max(8, 240/depth))
			glow := withAlpha(l.Color, 0.35)
			vector.DrawFilledCircle(screen, float32(x), float32(y), r, glow, true)
			vector.DrawFilledCircle(screen, float32(x), float32(y), r/3, withAlpha(l.Color, 0.9), true)
			if originOK {
				vector.StrokeLine(screen, float32(x), float32(y), float32(ox), float32(oy), 2, withAlpha(l.Color, 0.25), true)
			}
		}
	}
}

// drawPlatforms 平台盒：可见面按画家算法排序后用三角形填充
func (s *RenderSystem) drawPlatforms(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.PlatformComponent, *components.TransformComponent](s.entityManager) {
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		s.vertices = s.vertices[:0]
		s.indices = s.indices[:0]
		for _, f := range s.camera.ProjectBox(tr.Transform, platformLightDir) {
			base := uint16(len(s.vertices))
			cr := float32(platformColor.R) / 255 * float32(f.Shade)
			cg := float32(platformColor.G) / 255 * float32(f.Shade)
			cb := float32(platformColor.B) / 255 * float32(f.Shade)
			for _, p := range f.Points {
				s.vertices = append(s.vertices, ebiten.Vertex{
					DstX: float32(p[0]), DstY: float32(p[1]),
					SrcX: 1, SrcY: 1,
					ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1,
				})
			}
			s.indices = append(s.indices, base, base+1, base+2, base, base+2, base+3)
		}
		if len(s.indices) == 0 {
			continue
		}
		screen.DrawTriangles(s.vertices, s.indices, s.whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
	}
}

// drawAvatars 角色：在局部 XY 平面上的光环，带一个标记点显示自转
func (s *RenderSystem) drawAvatars(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.AvatarComponent, *components.TransformComponent](s.entityManager) {
		avatar, _ := ecs.GetComponent[*components.AvatarComponent](s.entityManager, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		m := ModelMatrix(tr.Transform)

		var prevX, prevY float64
		prevOK := false
		for i := 0; i <= avatarSegments; i++ {
			a := 2 * math.Pi * float64(i) / avatarSegments
			local := mgl64.Vec3{avatar.Radius * math.Cos(a), avatar.Radius * math.Sin(a), 0}
			x, y, _, ok := s.camera.Project(mgl64.TransformCoordinate(local, m))
			if ok && prevOK {
				vector.StrokeLine(screen, float32(prevX), float32(prevY), float32(x), float32(y), 4, avatarColor, true)
			}
			prevX, prevY, prevOK = x, y, ok
		}

		marker := mgl64.Vec3{avatar.Radius, 0, 0}
		if x, y, _, ok := s.camera.Project(mgl64.TransformCoordinate(marker, m)); ok {
			vector.DrawFilledCircle(screen, float32(x), float32(y), 7, colornames.Crimson, true)
		}
	}
}

// drawMessages 居中文字（不带按钮的标签）
func (s *RenderSystem) drawMessages(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith3[*components.LabelComponent, *components.ScreenPositionComponent, *components.VisibilityComponent](s.entityManager) {
		if ecs.HasComponent[*components.ButtonComponent](s.entityManager, id) {
			continue
		}
		label, _ := ecs.GetComponent[*components.LabelComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.ScreenPositionComponent](s.entityManager, id)
		vis, _ := ecs.GetComponent[*components.VisibilityComponent](s.entityManager, id)
		if !vis.Visible() {
			continue
		}
		x, y := pos.Resolved()
		s.drawLabel(screen, label, x, y, vis.Alpha, text.AlignStart)
	}
}

// drawButtons 按钮：带描边的填充矩形加居中文字
func (s *RenderSystem) drawButtons(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.ScreenPositionComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.ScreenPositionComponent](s.entityManager, id)

		alpha := 1.0
		if vis, ok := ecs.GetComponent[*components.VisibilityComponent](s.entityManager, id); ok {
			alpha = vis.Alpha
		}
		if alpha <= 0 {
			continue
		}

		x, y := pos.Resolved()
		fill := button.Fill
		switch button.State {
		case components.UIHovered:
			fill = scaleRGB(fill, 1.08)
		case components.UIClicked:
			fill = scaleRGB(fill, 0.85)
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(button.Width), float32(button.Height), withAlpha(fill, alpha), true)
		vector.StrokeRect(screen, float32(x), float32(y), float32(button.Width), float32(button.Height), 2, withAlpha(colornames.Crimson, alpha), true)

		if label, ok := ecs.GetComponent[*components.LabelComponent](s.entityManager, id); ok {
			s.drawLabel(screen, label, x+button.Width/2, y+button.Height/2, alpha, text.AlignCenter)
		}
	}
}

// drawLabel 绘制文字，水平以 x 为中心
//
// vertical 为 AlignStart 时 y 是文字顶部，为 AlignCenter 时 y 是文字中心。
func (s *RenderSystem) drawLabel(screen *ebiten.Image, label *components.LabelComponent, x, y, alpha float64, vertical text.Align) {
	scale := label.Scale
	if scale <= 0 {
		scale = 1
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = vertical
	op.LineSpacing = baseLineHeight + 2
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(label.Color)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, label.Text, s.face, op)
}

// withAlpha 返回乘上透明度的颜色
func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	a := math.Max(0, math.Min(1, alpha)) * float64(c.A)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a)}
}

// scaleRGB 调整亮度
func scaleRGB(c color.RGBA, f float64) color.RGBA {
	ch := func(v uint8) uint8 { return uint8(math.Min(255, float64(v)*f)) }
	return color.RGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: c.A}
}
