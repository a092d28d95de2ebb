package app

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/gonewx/bemine/pkg/embedded"
)

// fakeNow 可控的时钟
type fakeNow struct {
	t time.Time
}

func (f *fakeNow) now() time.Time { return f.t }

func (f *fakeNow) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestFrameClock_Tick(t *testing.T) {
	tests := []struct {
		name    string
		advance time.Duration
		want    float64
	}{
		{name: "正常帧", advance: 16 * time.Millisecond, want: 0.016},
		{name: "零间隔", advance: 0, want: 0},
		{name: "长时间卡顿被截断", advance: 3 * time.Second, want: 0.1},
		{name: "时钟回拨", advance: -time.Second, want: 0},
		{name: "刚好等于上限", advance: 100 * time.Millisecond, want: 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeNow{t: time.Unix(1700000000, 0)}
			fc := newFrameClock(0.1, clock.now)

			if got := fc.Tick(); got != 0 {
				t.Fatalf("第一次 Tick() = %v, 期望 0", got)
			}
			clock.advance(tt.advance)
			if got := fc.Tick(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Tick() = %v, 期望 %v", got, tt.want)
			}
		})
	}
}

func TestFrameClock_Accumulates(t *testing.T) {
	clock := &fakeNow{t: time.Unix(0, 0)}
	fc := newFrameClock(0.1, clock.now)
	fc.Tick()

	total := 0.0
	for i := 0; i < 60; i++ {
		clock.advance(time.Second / 60)
		total += fc.Tick()
	}
	if math.Abs(total-1) > 1e-6 {
		t.Errorf("60 帧累计时间 = %v, 期望 1", total)
	}
}

func TestLoadSceneConfig(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(good, []byte("platform:\n  transitionSpeed: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("platform:\n  transitionSpeed: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("磁盘文件", func(t *testing.T) {
		cfg, err := loadSceneConfig(good)
		if err != nil {
			t.Fatalf("加载失败: %v", err)
		}
		if cfg.Platform.TransitionSpeed != 2 {
			t.Errorf("TransitionSpeed = %v, 期望 2", cfg.Platform.TransitionSpeed)
		}
	})

	t.Run("磁盘文件无效", func(t *testing.T) {
		if _, err := loadSceneConfig(bad); err == nil {
			t.Error("无效配置应当返回错误")
		}
	})

	t.Run("文件不存在", func(t *testing.T) {
		if _, err := loadSceneConfig(filepath.Join(dir, "missing.yaml")); err == nil {
			t.Error("文件不存在应当返回错误")
		}
	})

	t.Run("未初始化嵌入资源时使用默认值", func(t *testing.T) {
		embedded.Init(nil)
		cfg, err := loadSceneConfig("")
		if err != nil {
			t.Fatalf("加载失败: %v", err)
		}
		if cfg.Platform.TransitionSpeed != 0.5 {
			t.Errorf("TransitionSpeed = %v, 期望默认值 0.5", cfg.Platform.TransitionSpeed)
		}
	})

	t.Run("嵌入资源", func(t *testing.T) {
		embedded.Init(fstest.MapFS{
			"data/scene.yaml": {Data: []byte("platform:\n  spinSpeed: 1.5\n")},
		})
		defer embedded.Init(nil)

		cfg, err := loadSceneConfig("")
		if err != nil {
			t.Fatalf("加载失败: %v", err)
		}
		if cfg.Platform.SpinSpeed != 1.5 {
			t.Errorf("SpinSpeed = %v, 期望 1.5", cfg.Platform.SpinSpeed)
		}
	})
}
