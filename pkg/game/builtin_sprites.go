package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 程序绘制的默认贴图，在没有素材目录时使用
// 尺寸与原版素材一致，绘制时都以贴图中心为锚点

var (
	colorBall        = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	colorBallShade   = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	colorHole        = color.RGBA{R: 20, G: 30, B: 20, A: 255}
	colorHoleRim     = color.RGBA{R: 60, G: 90, B: 60, A: 255}
	colorObstacle    = color.RGBA{R: 130, G: 90, B: 55, A: 255}
	colorObstacleRim = color.RGBA{R: 85, G: 55, B: 30, A: 255}
	colorArrow       = color.RGBA{R: 255, G: 230, B: 80, A: 255}
	colorGrassLight  = color.RGBA{R: 110, G: 190, B: 90, A: 255}
	colorGrassDark   = color.RGBA{R: 95, G: 175, B: 78, A: 255}
	colorChargeBar   = color.RGBA{R: 240, G: 80, B: 60, A: 255}
	colorVelocityBar = color.RGBA{R: 70, G: 160, B: 240, A: 255}
)

// 背景条纹宽度
const grassStripe = 40

func drawBuiltinSprite(name string) *ebiten.Image {
	switch name {
	case SpriteBall:
		img := ebiten.NewImage(32, 32)
		vector.DrawFilledCircle(img, 16, 16, 16, colorBallShade, true)
		vector.DrawFilledCircle(img, 15, 15, 14, colorBall, true)
		return img
	case SpriteHole:
		img := ebiten.NewImage(32, 32)
		vector.DrawFilledCircle(img, 16, 16, 16, colorHoleRim, true)
		vector.DrawFilledCircle(img, 16, 16, 13, colorHole, true)
		return img
	case SpriteObstacleSmall:
		return drawBlock(32, 34)
	case SpriteObstacleLarge:
		return drawBlock(64, 67)
	case SpriteArrow:
		// 朝上的箭头，尾部在贴图底部中心
		img := ebiten.NewImage(16, 64)
		vector.StrokeLine(img, 8, 64, 8, 10, 3, colorArrow, true)
		vector.StrokeLine(img, 8, 2, 1, 14, 3, colorArrow, true)
		vector.StrokeLine(img, 8, 2, 15, 14, 3, colorArrow, true)
		return img
	case SpriteBackground:
		img := ebiten.NewImage(grassStripe*2, grassStripe*2)
		img.Fill(colorGrassLight)
		vector.DrawFilledRect(img, 0, 0, grassStripe, grassStripe*2, colorGrassDark, false)
		return img
	case SpriteChargeBar:
		return drawBar(colorChargeBar)
	case SpriteVelocityBar:
		return drawBar(colorVelocityBar)
	default:
		img := ebiten.NewImage(1, 1)
		img.Fill(color.White)
		return img
	}
}

func drawBlock(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(colorObstacleRim)
	vector.DrawFilledRect(img, 2, 2, float32(w-4), float32(h-4), colorObstacle, false)
	return img
}

func drawBar(c color.Color) *ebiten.Image {
	img := ebiten.NewImage(10, 64)
	img.Fill(c)
	return img
}
