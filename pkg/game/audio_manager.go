package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// 音效 ID
const (
	SoundShoot  = "SOUND_SHOOT"  // 击球
	SoundCharge = "SOUND_CHARGE" // 开始蓄力
	SoundHole   = "SOUND_HOLE"   // 入洞
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理游戏中所有音效的播放
//   - 实现音量控制与静音（从 SettingsManager 读取设置）
//
// 错误策略：所有音效播放失败都只记录日志并继续，
// 调用方只拿到一个 bool，模拟流程不会因为音频问题中断。
type AudioManager struct {
	resourceManager *ResourceManager         // 资源管理器（用于加载音频）
	settingsManager *SettingsManager         // 设置管理器（用于读取音量设置，可为 nil）
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（资源ID -> 播放器）
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
	}
}

// PlaySound 播放音效
// 音效使用 SoundVolume 设置控制音量，单次播放
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false // 音效已禁用
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())

	// 重置并播放
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// SetSoundVolume 设置音效音量，影响后续播放的所有音效
//
// 参数：
//   - volume: 音量值 (0.0 ~ 1.0)
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
	for _, player := range am.soundPlayers {
		player.SetVolume(am.getSoundVolume())
	}
}

// AdjustSoundVolume 按增量调整音量并保存设置，返回调整后的音量
func (am *AudioManager) AdjustSoundVolume(delta float64) float64 {
	am.SetSoundVolume(am.getSoundVolume() + delta)
	if am.settingsManager != nil {
		if err := am.settingsManager.Save(); err != nil {
			log.Printf("[AudioManager] Warning: Failed to save settings: %v", err)
		}
	}
	volume := am.getSoundVolume()
	log.Printf("[AudioManager] Sound volume: %.1f", volume)
	return volume
}

// ToggleSound 切换音效开关，返回切换后的状态
func (am *AudioManager) ToggleSound() bool {
	if am.settingsManager == nil {
		return true
	}
	enabled := !am.settingsManager.GetSettings().SoundEnabled
	am.settingsManager.SetSoundEnabled(enabled)
	if err := am.settingsManager.Save(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to save settings: %v", err)
	}
	log.Printf("[AudioManager] Sound enabled: %v", enabled)
	return enabled
}

// SoundEnabled 音效是否开启（没有设置管理器时视为开启）
func (am *AudioManager) SoundEnabled() bool {
	if am.settingsManager == nil {
		return true
	}
	return am.settingsManager.GetSettings().SoundEnabled
}

// PreloadSounds 预加载音效，避免首次播放时的延迟
func (am *AudioManager) PreloadSounds(soundIDs []string) {
	for _, soundID := range soundIDs {
		am.getSoundPlayer(soundID)
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(soundIDs))
}

// getSoundPlayer 获取或加载音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}

	player := am.resourceManager.SoundPlayer(soundID)
	if player == nil {
		log.Printf("[AudioManager] Warning: Sound not available: %s", soundID)
		return nil
	}
	am.soundPlayers[soundID] = player
	return player
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8 // 默认值
}
