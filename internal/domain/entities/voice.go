package entities

import "strings"

// VoiceOption は音声合成モデルのプリセット音声です。
// The value is passed through to the speech model untouched.
type VoiceOption string

const (
	VoiceZephyr VoiceOption = "Zephyr"
	VoicePuck   VoiceOption = "Puck"
	VoiceCharon VoiceOption = "Charon"
	VoiceKore   VoiceOption = "Kore"
	VoiceFenrir VoiceOption = "Fenrir"
	VoiceAoede  VoiceOption = "Aoede"
)

var voiceOptions = map[string]VoiceOption{
	"zephyr": VoiceZephyr,
	"puck":   VoicePuck,
	"charon": VoiceCharon,
	"kore":   VoiceKore,
	"fenrir": VoiceFenrir,
	"aoede":  VoiceAoede,
}

// DefaultVoice is used when the caller does not pick a voice.
const DefaultVoice = VoiceKore

func ParseVoice(s string) VoiceOption {
	if v, ok := voiceOptions[strings.ToLower(strings.TrimSpace(s))]; ok {
		return v
	}
	return DefaultVoice
}
