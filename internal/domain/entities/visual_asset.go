package entities

import "promoreel/internal/domain/valueobjects"

// AssetKind は生成された素材の種別です。
type AssetKind string

const (
	AssetImage AssetKind = "image"
	AssetVideo AssetKind = "video"
)

// VisualAsset is the terminal output of the asset generator, one per plan
// item. Exactly one of the Image/Video payloads is populated depending on
// Kind.
type VisualAsset struct {
	kind        AssetKind
	description string

	// image payload
	image  *valueobjects.ImageData
	prompt string

	// video payload: clip boundaries in seconds, extraction is deferred to
	// an external collaborator. VideoURL is set when a source URL is known.
	videoStart float64
	videoEnd   float64
	videoURL   string
}

func NewImageAsset(image *valueobjects.ImageData, prompt, description string) *VisualAsset {
	return &VisualAsset{
		kind:        AssetImage,
		description: description,
		image:       image,
		prompt:      prompt,
	}
}

func NewVideoAsset(start, end float64, description, videoURL string) *VisualAsset {
	return &VisualAsset{
		kind:        AssetVideo,
		description: description,
		videoStart:  start,
		videoEnd:    end,
		videoURL:    videoURL,
	}
}

func (a *VisualAsset) Kind() AssetKind                { return a.kind }
func (a *VisualAsset) Description() string            { return a.description }
func (a *VisualAsset) Image() *valueobjects.ImageData { return a.image }
func (a *VisualAsset) Prompt() string                 { return a.prompt }
func (a *VisualAsset) VideoStart() float64            { return a.videoStart }
func (a *VisualAsset) VideoEnd() float64              { return a.videoEnd }
func (a *VisualAsset) VideoURL() string               { return a.videoURL }
func (a *VisualAsset) IsImage() bool                  { return a.kind == AssetImage }
func (a *VisualAsset) IsVideo() bool                  { return a.kind == AssetVideo }
