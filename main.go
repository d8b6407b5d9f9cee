package main

import (
	"flag"
	"log"

	"github.com/decker502/golf/pkg/app"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose     = flag.Bool("verbose", false, "显示详细调试信息")
	level       = flag.Int("level", 0, "起始关卡（0 = 默认布局，1~6 = 正式关卡）")
	configPath  = flag.String("config", "", "覆盖默认值的 YAML 配置文件")
	shotLogPath = flag.String("shot-log", "", "把每次击球和过关写入该 CSV 文件")
	assetsDir   = flag.String("assets", "", "外部素材目录（ball.png、hole.mp3 等）")
)

func main() {
	flag.Parse()

	gameApp, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		Level:       *level,
		ConfigPath:  *configPath,
		ShotLogPath: *shotLogPath,
		AssetsDir:   *assetsDir,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}
	defer gameApp.Shutdown()

	gameApp.ApplyWindowSettings()

	// This will call Update() and Draw() repeatedly until the window is closed
	if err := ebiten.RunGame(gameApp); err != nil {
		log.Printf("RunGame: %v", err)
	}
}
