package entities

import "strings"

// Platform は動画の公開先プラットフォームです。
type Platform string

const (
	PlatformTikTok    Platform = "tiktok"
	PlatformYouTube   Platform = "youtube"
	PlatformInstagram Platform = "instagram"
	PlatformGeneric   Platform = "generic"
)

// ParsePlatform maps arbitrary user input onto the closed platform set.
// Anything unknown falls back to the generic platform.
func ParsePlatform(s string) Platform {
	switch Platform(strings.ToLower(strings.TrimSpace(s))) {
	case PlatformTikTok:
		return PlatformTikTok
	case PlatformYouTube:
		return PlatformYouTube
	case PlatformInstagram:
		return PlatformInstagram
	default:
		return PlatformGeneric
	}
}

// IsPortrait reports whether the platform uses a vertical format.
func (p Platform) IsPortrait() bool {
	return p == PlatformTikTok || p == PlatformInstagram
}

// ImageSize returns the generation resolution for the platform orientation.
func (p Platform) ImageSize() (width, height int) {
	if p.IsPortrait() {
		return 768, 1024
	}
	return 1024, 768
}

// AspectRatio returns the aspect ratio string understood by the fallback
// image model.
func (p Platform) AspectRatio() string {
	if p.IsPortrait() {
		return "9:16"
	}
	return "16:9"
}

// ToneInstructions returns the platform specific tone and format block that
// gets embedded in the script prompt. Exactly one block per platform.
func (p Platform) ToneInstructions() string {
	switch p {
	case PlatformTikTok:
		return `Tone: high energy, punchy, hook the viewer in the first sentence.
Format: vertical short-form video for TikTok. Use short sentences and a conversational voice. End with a line that loops naturally back to the opening.`
	case PlatformYouTube:
		return `Tone: confident and informative, like a polished product teaser.
Format: landscape video for YouTube. Open with the problem the project solves, then the highlight features, then a clear call to action.`
	case PlatformInstagram:
		return `Tone: aspirational and visual, light on jargon.
Format: vertical Reel for Instagram. Keep sentences rhythmic and easy to follow while scrolling with the sound on.`
	default:
		return `Tone: clear, friendly and enthusiastic.
Format: short promotional video. Introduce the project, highlight what makes it useful, and close with an invitation to try it.`
	}
}
