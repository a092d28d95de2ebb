package game

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/gonewx/bemine/pkg/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate 音频采样率，与 audio.NewContext 的参数一致
const SampleRate = 48000

// bytesPerFrame 16 位立体声：每帧 4 字节
const bytesPerFrame = 4

// 每个音符两端的淡入淡出时长（秒），避免爆音
const noteFade = 0.01

// 音名到半音偏移（相对 C）
var noteOffsets = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// NoteFrequency 解析音名并返回频率（Hz）
//
// 格式：字母 [#|b] 八度，例如 "A4"（440 Hz）、"C#5"、"Eb4"。
// "-" 表示休止，返回 0。
func NoteFrequency(name string) (float64, error) {
	name = strings.TrimSpace(name)
	if name == "-" {
		return 0, nil
	}
	if len(name) < 2 {
		return 0, fmt.Errorf("invalid note %q", name)
	}

	offset, ok := noteOffsets[strings.ToUpper(name[:1])[0]]
	if !ok {
		return 0, fmt.Errorf("invalid note letter in %q", name)
	}
	rest := name[1:]
	switch rest[0] {
	case '#':
		offset++
		rest = rest[1:]
	case 'b':
		offset--
		rest = rest[1:]
	}

	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("invalid octave in %q: %w", name, err)
	}

	// MIDI 编号：C4 = 60，A4 = 69
	midi := (octave+1)*12 + offset
	return 440 * math.Pow(2, float64(midi-69)/12), nil
}

// SynthesizeMelody 把音符序列合成为 16 位立体声小端 PCM
//
// 每个音符是一段带淡入淡出的正弦波，休止为静音。
func SynthesizeMelody(notes []string, noteDuration, volume float64) ([]byte, error) {
	framesPerNote := int(noteDuration * SampleRate)
	fadeFrames := int(noteFade * SampleRate)
	buf := make([]byte, 0, len(notes)*framesPerNote*bytesPerFrame)

	for _, n := range notes {
		freq, err := NoteFrequency(n)
		if err != nil {
			return nil, err
		}
		for i := 0; i < framesPerNote; i++ {
			var sample float64
			if freq > 0 {
				env := 1.0
				if i < fadeFrames {
					env = float64(i) / float64(fadeFrames)
				} else if framesPerNote-i < fadeFrames {
					env = float64(framesPerNote-i) / float64(fadeFrames)
				}
				sample = volume * env * math.Sin(2*math.Pi*freq*float64(i)/SampleRate)
			}
			v := int16(sample * math.MaxInt16)
			buf = binary.LittleEndian.AppendUint16(buf, uint16(v))
			buf = binary.LittleEndian.AppendUint16(buf, uint16(v))
		}
	}
	return buf, nil
}

// AudioManager 播放接受后的循环旋律
//
// 没有音频上下文或配置关闭音频时，所有方法都是空操作。
type AudioManager struct {
	context *audio.Context
	pcm     []byte
	player  *audio.Player
}

// NewAudioManager 创建音频管理器并预先合成旋律
//
// 参数：
//   - ctx: 音频上下文（可为 nil）
//   - cfg: 音频配置
func NewAudioManager(ctx *audio.Context, cfg config.AudioConfig) (*AudioManager, error) {
	am := &AudioManager{context: ctx}
	if !cfg.Enabled || len(cfg.Notes) == 0 {
		return am, nil
	}

	pcm, err := SynthesizeMelody(cfg.Notes, cfg.NoteDuration, cfg.Volume)
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize melody: %w", err)
	}
	am.pcm = pcm
	return am, nil
}

// PlayMelody 从头开始循环播放旋律
func (am *AudioManager) PlayMelody() {
	if am == nil || am.context == nil || len(am.pcm) == 0 {
		return
	}

	if am.player == nil {
		loop := audio.NewInfiniteLoop(bytes.NewReader(am.pcm), int64(len(am.pcm)))
		player, err := am.context.NewPlayer(loop)
		if err != nil {
			log.Printf("[AudioManager] Warning: Failed to create player: %v", err)
			return
		}
		am.player = player
	}

	if err := am.player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind melody: %v", err)
	}
	am.player.Play()
	log.Printf("[AudioManager] Playing melody (%d bytes)", len(am.pcm))
}

// Stop 停止播放
func (am *AudioManager) Stop() {
	if am == nil || am.player == nil {
		return
	}
	am.player.Pause()
}

// IsPlaying 是否正在播放
func (am *AudioManager) IsPlaying() bool {
	return am != nil && am.player != nil && am.player.IsPlaying()
}
