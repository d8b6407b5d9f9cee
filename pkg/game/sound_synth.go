package game

import (
	"encoding/binary"
	"math"
)

// tone 一段正弦音
type tone struct {
	startHz  float64
	endHz    float64 // 线性滑音到此频率
	duration float64 // 秒
}

// 合成音效定义，在没有素材文件时使用
var synthesizedSounds = map[string][]tone{
	SoundShoot:  {{startHz: 660, endHz: 440, duration: 0.08}},
	SoundCharge: {{startHz: 300, endHz: 600, duration: 0.15}},
	SoundHole:   {{startHz: 523, endHz: 523, duration: 0.12}, {startHz: 784, endHz: 784, duration: 0.2}},
}

// synthesizeSound 生成 16 位小端双声道 PCM，未知 ID 返回 nil
func synthesizeSound(soundID string, sampleRate int) []byte {
	tones, ok := synthesizedSounds[soundID]
	if !ok || sampleRate <= 0 {
		return nil
	}

	var buf []byte
	for _, t := range tones {
		buf = appendTone(buf, t, sampleRate)
	}
	return buf
}

func appendTone(buf []byte, t tone, sampleRate int) []byte {
	n := int(t.duration * float64(sampleRate))
	phase := 0.0
	frame := make([]byte, 4)
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		hz := t.startHz + (t.endHz-t.startHz)*progress
		phase += 2 * math.Pi * hz / float64(sampleRate)

		// 线性淡出，避免结尾爆音
		amp := 0.3 * (1 - progress)
		v := int16(math.Sin(phase) * amp * math.MaxInt16)

		binary.LittleEndian.PutUint16(frame[0:], uint16(v))
		binary.LittleEndian.PutUint16(frame[2:], uint16(v))
		buf = append(buf, frame...)
	}
	return buf
}
