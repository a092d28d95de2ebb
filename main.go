package main

import (
	"flag"
	"log"

	"github.com/gonewx/bemine/pkg/app"
	"github.com/gonewx/bemine/pkg/config"
	"github.com/gonewx/bemine/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	envCfg, err := config.LoadEnvConfig()
	if err != nil {
		log.Fatalf("环境变量解析失败: %v", err)
	}

	// 命令行参数优先于环境变量
	verbose := flag.Bool("verbose", envCfg.Verbose, "显示详细日志")
	configPath := flag.String("config", envCfg.SceneConfigPath, "场景配置文件（默认使用嵌入的 data/scene.yaml）")
	watch := flag.Bool("watch", envCfg.Watch, "监听配置文件变化并热重载（需要 --config）")
	maxDelta := flag.Float64("max-frame-delta", envCfg.MaxFrameDelta, "单帧时间步长上限（秒）")
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:         *verbose,
		SceneConfigPath: *configPath,
		Watch:           *watch,
		MaxFrameDelta:   *maxDelta,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer gameApp.Close()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Will you be my valentine?")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
