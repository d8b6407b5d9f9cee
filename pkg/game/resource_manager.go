package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Sprite names. They double as file names inside the optional assets directory.
const (
	SpriteBall          = "ball.png"
	SpriteHole          = "hole.png"
	SpriteArrow         = "arrow.png"
	SpriteBackground    = "bg.png"
	SpriteObstacleSmall = "obstacle_32x34.png"
	SpriteObstacleLarge = "obstacle_64x67.png"
	SpriteChargeBar     = "velocity_bar.png"
	SpriteVelocityBar   = "velocity_bar2.png"

	fontFileName = "font.ttf"
)

// soundFiles maps sound IDs to the file names looked up in the assets directory.
var soundFiles = map[string]string{
	SoundShoot:  "shoot.mp3",
	SoundCharge: "charge.mp3",
	SoundHole:   "hole.mp3",
}

// ResourceManager is responsible for centralized management of game resources.
// It loads images, sound effects and fonts from an optional assets directory
// and caches them so each resource is loaded only once.
//
// Every resource has a built-in fallback: sprites are drawn procedurally,
// sound effects are synthesized, and the HUD font falls back to Go Regular.
// A missing or broken asset therefore never stops the game; it is logged and
// replaced.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The caches use standard Go maps and
// are only touched from the game loop goroutine.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext, "resources")
//	ball := rm.Sprite(SpriteBall)
type ResourceManager struct {
	assetsDir     string                      // Optional directory with external assets ("" = built-in only)
	imageCache    map[string]*ebiten.Image    // Cache for loaded images: path -> Image
	spriteCache   map[string]*ebiten.Image    // Cache for resolved sprites: sprite name -> Image
	audioCache    map[string]*audio.Player    // Cache for loaded audio players: path or sound ID -> Player
	audioContext  *audio.Context              // Global audio context for audio decoding
	fontSource    *text.GoTextFaceSource      // Resolved font source
	fontFaceCache map[float64]*text.GoTextFace // Cache for text faces: size -> face
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - audioContext: The global audio context. May be nil in headless runs, in
//     which case no sound players are created.
//   - assetsDir: Directory with external assets, or "" to use built-in resources only.
//
// Returns:
//   - A pointer to a newly initialized ResourceManager with empty caches.
func NewResourceManager(audioContext *audio.Context, assetsDir string) *ResourceManager {
	return &ResourceManager{
		assetsDir:     assetsDir,
		imageCache:    make(map[string]*ebiten.Image),
		spriteCache:   make(map[string]*ebiten.Image),
		audioCache:    make(map[string]*audio.Player),
		audioContext:  audioContext,
		fontFaceCache: make(map[float64]*text.GoTextFace),
	}
}

// assetPath returns the full path of an asset file, or "" when no assets
// directory is configured.
func (rm *ResourceManager) assetPath(name string) string {
	if rm.assetsDir == "" {
		return ""
	}
	return filepath.Join(rm.assetsDir, name)
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
// Supported formats: PNG.
//
// Parameters:
//   - path: The file path to the image resource (e.g., "resources/ball.png").
//
// Returns:
//   - A pointer to the loaded ebiten.Image.
//   - An error if the file cannot be opened or decoded.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// Sprite returns the image for a sprite name.
// The assets directory is tried first; on any failure the procedurally drawn
// sprite is used instead. The result is cached either way.
//
// Sprites are created lazily, so this should be called from the game loop
// (Update or Draw), not before ebiten.RunGame.
func (rm *ResourceManager) Sprite(name string) *ebiten.Image {
	if img, exists := rm.spriteCache[name]; exists {
		return img
	}

	var img *ebiten.Image
	if path := rm.assetPath(name); path != "" {
		loaded, err := rm.LoadImage(path)
		if err != nil {
			log.Printf("[ResourceManager] Warning: %v (using built-in sprite)", err)
		} else {
			img = loaded
		}
	}
	if img == nil {
		img = drawBuiltinSprite(name)
	}

	rm.spriteCache[name] = img
	return img
}

// LoadSoundEffect loads a sound effect from the specified path and caches it for future use.
// The audio is NOT wrapped in an infinite loop, making it suitable for
// one-shot sound effects.
// Supported formats: MP3 (.mp3) and OGG Vorbis (.ogg).
//
// Parameters:
//   - path: The file path to the sound effect resource (e.g., "resources/shoot.mp3").
//
// Returns:
//   - A pointer to the audio player (ready to play, but not started).
//   - An error if the file cannot be opened, decoded, or the format is unsupported.
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context available for %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound effect file %s: %w", path, err)
	}
	defer file.Close()

	// Read the entire file into memory so the stream can seek without the file handle
	audioData, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound effect file %s: %w", path, err)
	}
	reader := bytes.NewReader(audioData)

	var stream io.ReadSeeker
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		decodedStream, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 sound effect %s: %w", path, err)
		}
		stream = decodedStream
	case ".ogg":
		decodedStream, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG sound effect %s: %w", path, err)
		}
		stream = decodedStream
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg)", ext)
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// SoundPlayer returns the player for a sound ID.
// The assets directory is tried first, then the synthesized tone for the ID.
// Returns nil when there is no audio context or the ID is unknown.
func (rm *ResourceManager) SoundPlayer(soundID string) *audio.Player {
	if player, exists := rm.audioCache[soundID]; exists {
		return player
	}
	if rm.audioContext == nil {
		return nil
	}

	var player *audio.Player
	if fileName, ok := soundFiles[soundID]; ok {
		if path := rm.assetPath(fileName); path != "" {
			loaded, err := rm.LoadSoundEffect(path)
			if err != nil {
				log.Printf("[ResourceManager] Warning: %v (using synthesized sound)", err)
			} else {
				player = loaded
			}
		}
	}
	if player == nil {
		pcm := synthesizeSound(soundID, rm.audioContext.SampleRate())
		if pcm == nil {
			log.Printf("[ResourceManager] Warning: Unknown sound ID: %s", soundID)
			return nil
		}
		player = rm.audioContext.NewPlayerFromBytes(pcm)
	}

	rm.audioCache[soundID] = player
	return player
}

// Font returns a text face of the given size.
// The font is read from the assets directory if present, otherwise Go Regular is used.
func (rm *ResourceManager) Font(size float64) *text.GoTextFace {
	if face, exists := rm.fontFaceCache[size]; exists {
		return face
	}

	if rm.fontSource == nil {
		rm.fontSource = rm.loadFontSource()
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face
}

// loadFontSource resolves the font source once.
func (rm *ResourceManager) loadFontSource() *text.GoTextFaceSource {
	if path := rm.assetPath(fontFileName); path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
			if err == nil {
				return source
			}
			log.Printf("[ResourceManager] Warning: failed to parse font %s: %v", path, err)
		} else {
			log.Printf("[ResourceManager] Warning: failed to read font file %s: %v", path, err)
		}
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		// goregular.TTF 是编译期内嵌字体，解析失败只可能是依赖损坏
		panic(fmt.Sprintf("failed to parse built-in font: %v", err))
	}
	return source
}
