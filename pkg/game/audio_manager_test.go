package game

import (
	"math"
	"testing"
)

// TestAudioManagerAdjustSoundVolume 音量调整写入设置并截断到 0~1
func TestAudioManagerAdjustSoundVolume(t *testing.T) {
	settings := NewSettingsManager(nil)
	am := NewAudioManager(NewResourceManager(testAudioContext, ""), settings)

	if got := am.AdjustSoundVolume(-0.3); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("AdjustSoundVolume(-0.3) = %v, want 0.5", got)
	}
	if got := settings.GetSettings().SoundVolume; math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Settings volume = %v, want 0.5", got)
	}
	if got := am.AdjustSoundVolume(2); got != 1 {
		t.Errorf("AdjustSoundVolume(2) = %v, want 1", got)
	}
	if got := am.AdjustSoundVolume(-5); got != 0 {
		t.Errorf("AdjustSoundVolume(-5) = %v, want 0", got)
	}
}

// TestAudioManagerSetSoundVolumeUpdatesPlayers 已缓存的播放器同步新音量
func TestAudioManagerSetSoundVolumeUpdatesPlayers(t *testing.T) {
	am := NewAudioManager(NewResourceManager(testAudioContext, ""), NewSettingsManager(nil))
	am.PreloadSounds([]string{SoundShoot})

	player := am.getSoundPlayer(SoundShoot)
	if player == nil {
		t.Fatal("Synthesized sound should always be available")
	}

	am.SetSoundVolume(0.25)
	if math.Abs(player.Volume()-0.25) > 1e-9 {
		t.Errorf("Player volume = %v, want 0.25", player.Volume())
	}
}

// TestAudioManagerToggleSound 关闭音效后不再播放
func TestAudioManagerToggleSound(t *testing.T) {
	am := NewAudioManager(NewResourceManager(testAudioContext, ""), NewSettingsManager(nil))

	if am.ToggleSound() {
		t.Fatal("First toggle should disable sound")
	}
	if am.SoundEnabled() {
		t.Error("SoundEnabled should be false")
	}
	if am.PlaySound(SoundShoot) {
		t.Error("PlaySound should return false while sound is off")
	}
}
