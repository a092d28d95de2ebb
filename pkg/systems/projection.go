package systems

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/bemine/pkg/components"
)

// Camera 固定透视相机，把世界坐标投影到逻辑屏幕
type Camera struct {
	viewProj      mgl64.Mat4
	eye           mgl64.Vec3
	width, height float64
}

// NewCamera 创建位于 (0, 0, distance)、看向原点的相机
func NewCamera(width, height, fovYDeg, distance float64) *Camera {
	proj := mgl64.Perspective(mgl64.DegToRad(fovYDeg), width/height, 0.1, 1000)
	eye := mgl64.Vec3{0, 0, distance}
	view := mgl64.LookAtV(eye, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0})
	return &Camera{
		viewProj: proj.Mul4(view),
		eye:      eye,
		width:    width,
		height:   height,
	}
}

// Project 返回世界坐标点的屏幕坐标和视空间深度（越大越远）
//
// 点位于相机背后时 ok 为 false。
func (c *Camera) Project(p mgl64.Vec3) (x, y, depth float64, ok bool) {
	clip := c.viewProj.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= 1e-9 {
		return 0, 0, 0, false
	}
	ndcX, ndcY := clip.X()/w, clip.Y()/w
	x = (ndcX + 1) / 2 * c.width
	y = (1 - ndcY) / 2 * c.height
	// 透视矩阵下 w 等于视空间 -z
	return x, y, w, true
}

// ModelMatrix 由变换构造模型矩阵：平移 × 欧拉旋转（XYZ 顺序）× 缩放
func ModelMatrix(tr components.Transform) mgl64.Mat4 {
	rot := mgl64.HomogRotate3DX(tr.Rotation.X()).
		Mul4(mgl64.HomogRotate3DY(tr.Rotation.Y())).
		Mul4(mgl64.HomogRotate3DZ(tr.Rotation.Z()))
	return mgl64.Translate3D(tr.Position.X(), tr.Position.Y(), tr.Position.Z()).
		Mul4(rot).
		Mul4(mgl64.Scale3D(tr.Size.Width, tr.Size.Height, tr.Size.Depth))
}

// 单位立方体的八个角
var unitCube = [8]mgl64.Vec3{
	{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5},
	{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5},
}

// 六个面（逆时针，从外侧看），以及对应的局部法线
var cubeFaces = [6]struct {
	idx    [4]int
	normal mgl64.Vec3
}{
	{[4]int{4, 5, 6, 7}, mgl64.Vec3{0, 0, 1}},
	{[4]int{1, 0, 3, 2}, mgl64.Vec3{0, 0, -1}},
	{[4]int{5, 1, 2, 6}, mgl64.Vec3{1, 0, 0}},
	{[4]int{0, 4, 7, 3}, mgl64.Vec3{-1, 0, 0}},
	{[4]int{7, 6, 2, 3}, mgl64.Vec3{0, 1, 0}},
	{[4]int{0, 1, 5, 4}, mgl64.Vec3{0, -1, 0}},
}

// BoxCorners 返回变换后盒体八个角的世界坐标
func BoxCorners(tr components.Transform) [8]mgl64.Vec3 {
	m := ModelMatrix(tr)
	var out [8]mgl64.Vec3
	for i, c := range unitCube {
		out[i] = mgl64.TransformCoordinate(c, m)
	}
	return out
}

// ProjectedFace 投影到屏幕上的一个盒面
type ProjectedFace struct {
	Points [4][2]float64
	// Depth 四个角的平均深度，用于画家算法排序
	Depth float64
	// Shade 面朝光源的程度 [0, 1]
	Shade float64
}

// ProjectBox 投影盒体的可见面，按从远到近排序
func (c *Camera) ProjectBox(tr components.Transform, lightDir mgl64.Vec3) []ProjectedFace {
	corners := BoxCorners(tr)
	m := ModelMatrix(tr)
	light := lightDir.Normalize()

	faces := make([]ProjectedFace, 0, 3)
	for _, f := range cubeFaces {
		n := mgl64.TransformNormal(f.normal, m)
		if n.Len() == 0 {
			continue
		}
		n = n.Normalize()
		center := corners[f.idx[0]].Add(corners[f.idx[2]]).Mul(0.5)
		// 背面剔除
		if n.Dot(c.eye.Sub(center)) <= 0 {
			continue
		}

		var pf ProjectedFace
		visible := true
		for i, ci := range f.idx {
			x, y, d, ok := c.Project(corners[ci])
			if !ok {
				visible = false
				break
			}
			pf.Points[i] = [2]float64{x, y}
			pf.Depth += d / 4
		}
		if !visible {
			continue
		}
		pf.Shade = 0.35 + 0.65*max(0, n.Dot(light.Mul(-1)))
		faces = append(faces, pf)
	}

	sort.Slice(faces, func(i, j int) bool { return faces[i].Depth > faces[j].Depth })
	return faces
}
