package entities

import "testing"

func TestPlatformDimensions(t *testing.T) {
	tests := []struct {
		platform    Platform
		wantW       int
		wantH       int
		wantAspect  string
	}{
		{PlatformTikTok, 768, 1024, "9:16"},
		{PlatformInstagram, 768, 1024, "9:16"},
		{PlatformYouTube, 1024, 768, "16:9"},
		{PlatformGeneric, 1024, 768, "16:9"},
	}

	for _, tt := range tests {
		t.Run(string(tt.platform), func(t *testing.T) {
			w, h := tt.platform.ImageSize()
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("ImageSize() = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
			if got := tt.platform.AspectRatio(); got != tt.wantAspect {
				t.Errorf("AspectRatio() = %q, want %q", got, tt.wantAspect)
			}
		})
	}
}

func TestParsePlatform(t *testing.T) {
	if got := ParsePlatform("  TikTok "); got != PlatformTikTok {
		t.Errorf("ParsePlatform(TikTok) = %v", got)
	}
	if got := ParsePlatform("vimeo"); got != PlatformGeneric {
		t.Errorf("unknown platform should map to generic, got %v", got)
	}

	// Every platform maps to exactly one tone template.
	seen := map[string]Platform{}
	for _, p := range []Platform{PlatformTikTok, PlatformYouTube, PlatformInstagram, PlatformGeneric} {
		tone := p.ToneInstructions()
		if tone == "" {
			t.Errorf("platform %v has no tone template", p)
		}
		if other, dup := seen[tone]; dup {
			t.Errorf("platforms %v and %v share a tone template", p, other)
		}
		seen[tone] = p
	}
}
