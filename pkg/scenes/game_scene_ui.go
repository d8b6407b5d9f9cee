package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/golf/pkg/components"
	"github.com/decker502/golf/pkg/game"
	"github.com/decker502/golf/pkg/levels"
	"github.com/decker502/golf/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"gonum.org/v1/gonum/spatial/r2"
)

// 界面布局（相对于球或屏幕中心）
const (
	barOffsetX     = 40.0 // 力度条在球右侧的距离
	arrowOffsetY   = -5.0 // 箭头相对球心的偏移
	strokesLineY   = 25.0 // HUD 第二行
	bannerOffsetX  = 200.0
	bannerOffsetY  = 100.0
	summaryOffsetX = 100.0
	bestLineGap    = 50.0
)

var (
	colorBackdrop = color.RGBA{R: 0, G: 200, B: 0, A: 255}
	colorText     = color.White
)

// Draw 绘制场景
// 顺序：背景 → 障碍物 → 洞 → 球 → 箭头 → 力度条 → 文字
func (s *GameScene) Draw(screen *ebiten.Image) {
	if s.resourceManager == nil {
		return
	}
	screen.Fill(colorBackdrop)
	s.drawBackground(screen)

	if !s.session.Completed {
		s.drawObstacles(screen)
	}
	drawCentered(screen, s.resourceManager.Sprite(game.SpriteHole), s.session.HolePosition(), 0, 1, 1)
	s.drawBall(screen)
	s.drawBars(screen)

	if s.session.Completed {
		s.drawCompletion(screen)
	} else {
		s.drawHUD(screen)
	}
}

// drawBackground 平铺背景图
func (s *GameScene) drawBackground(screen *ebiten.Image) {
	bg := s.resourceManager.Sprite(game.SpriteBackground)
	bw, bh := bg.Bounds().Dx(), bg.Bounds().Dy()
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	if bw == 0 || bh == 0 {
		return
	}
	for y := 0; y < sh; y += bh {
		for x := 0; x < sw; x += bw {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x), float64(y))
			screen.DrawImage(bg, op)
		}
	}
}

func (s *GameScene) drawObstacles(screen *ebiten.Image) {
	small := s.resourceManager.Sprite(game.SpriteObstacleSmall)
	large := s.resourceManager.Sprite(game.SpriteObstacleLarge)
	sizes := s.session.ObstacleSizeClasses()
	for i, pos := range s.session.ObstaclePositions() {
		img := large
		if sizes[i] == components.SizeSmall {
			img = small
		}
		drawCentered(screen, img, pos, 0, 1, 1)
	}
}

// drawBall 绘制球（含入洞缩小和抖动），按住时绘制瞄准箭头
func (s *GameScene) drawBall(screen *ebiten.Image) {
	ball := s.session.Ball
	rotation := utils.ScreenRotation(ball.Rotation)
	drawCentered(screen, s.resourceManager.Sprite(game.SpriteBall), s.session.RenderPosition(), rotation, ball.Scale, ball.Scale)

	if s.session.Holding {
		pos := r2.Add(ball.Position, r2.Vec{Y: arrowOffsetY})
		drawCentered(screen, s.resourceManager.Sprite(game.SpriteArrow), pos, rotation, ball.Scale, ball.Scale)
	}
}

// drawBars 按住时显示蓄力条，球运动时显示剩余速度条
func (s *GameScene) drawBars(screen *ebiten.Image) {
	pos := r2.Add(s.session.Ball.Position, r2.Vec{X: barOffsetX})
	hud := s.cfg.HUD

	switch {
	case s.session.Holding:
		drawCentered(screen, s.resourceManager.Sprite(game.SpriteChargeBar), pos, 0, 1, s.session.ChargeFraction(hud.ChargeBarFull))
	case s.session.Ball.Velocity > 0:
		drawCentered(screen, s.resourceManager.Sprite(game.SpriteVelocityBar), pos, 0, 1, s.session.VelocityFraction(hud.VelocityBarDivisor))
	}
}

func (s *GameScene) drawHUD(screen *ebiten.Image) {
	face := s.resourceManager.Font(s.cfg.HUD.FontSize)
	drawText(screen, levels.Name(s.session.Level), face, 0, 0)
	drawText(screen, fmt.Sprintf("Strokes: %d", s.session.Strokes), face, 0, strokesLineY)

	if s.audioManager != nil && !s.audioManager.SoundEnabled() {
		label := "Sound off (M)"
		w, _ := text.Measure(label, face, 0)
		drawText(screen, label, face, float64(screen.Bounds().Dx())-w, 0)
	}
}

// drawCompletion 通关画面：祝贺语、总杆数和历史最好成绩
func (s *GameScene) drawCompletion(screen *ebiten.Image) {
	w, h := s.cfg.ScreenSize()
	banner := s.resourceManager.Font(s.cfg.HUD.BannerFontSize)

	drawText(screen, "You completed the game!", banner, w*0.5-bannerOffsetX, h*0.5-bannerOffsetY)
	drawText(screen, fmt.Sprintf("Strokes: %d", s.session.Strokes), banner, w*0.5-summaryOffsetX, h*0.5)

	if s.saveManager != nil && s.saveManager.BestTotalStrokes() > 0 {
		face := s.resourceManager.Font(s.cfg.HUD.FontSize)
		best := fmt.Sprintf("Best: %d", s.saveManager.BestTotalStrokes())
		drawText(screen, best, face, w*0.5-summaryOffsetX, h*0.5+bestLineGap)
	}
}

// drawCentered 以贴图中心为锚点绘制（先缩放、再旋转、最后平移）
func drawCentered(screen, img *ebiten.Image, pos r2.Vec, rotation, scaleX, scaleY float64) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(scaleX, scaleY)
	op.GeoM.Rotate(rotation)
	op.GeoM.Translate(pos.X, pos.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func drawText(screen *ebiten.Image, str string, face *text.GoTextFace, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(colorText)
	text.Draw(screen, str, face, op)
}
