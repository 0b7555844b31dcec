package entities

// SceneType は各シーンの素材種別です。
type SceneType string

const (
	SceneImage SceneType = "IMAGE"
	SceneVideo SceneType = "VIDEO"
)

// VisualPlanItem is one scene descriptor produced by the visual planner.
// ImagePrompt is optional for IMAGE scenes (Description is used when absent).
// VideoStartTime/VideoEndTime are only meaningful for VIDEO scenes.
type VisualPlanItem struct {
	Type           SceneType `json:"type"`
	Description    string    `json:"description"`
	ImagePrompt    string    `json:"imagePrompt,omitempty"`
	VideoStartTime *float64  `json:"videoStartTime,omitempty"`
	VideoEndTime   *float64  `json:"videoEndTime,omitempty"`
}

// PromptOrDescription returns the image prompt, falling back to the scene
// description when the planner left it out.
func (i VisualPlanItem) PromptOrDescription() string {
	if i.ImagePrompt != "" {
		return i.ImagePrompt
	}
	return i.Description
}

// FallbackPlan is the fixed generic plan substituted when planning fails.
// Downstream stages always receive a non-empty, well-formed plan.
func FallbackPlan() []VisualPlanItem {
	return []VisualPlanItem{
		{
			Type:        SceneImage,
			Description: "Project introduction",
			ImagePrompt: "A sleek modern laptop on a clean desk displaying elegant code, soft ambient lighting, professional tech aesthetic",
		},
		{
			Type:        SceneImage,
			Description: "Feature highlight",
			ImagePrompt: "An abstract visualization of connected glowing nodes and data flowing between them, deep blue background, futuristic",
		},
		{
			Type:        SceneImage,
			Description: "User benefit",
			ImagePrompt: "A smiling developer leaning back from a bright screen looking satisfied, warm natural light, shallow depth of field",
		},
		{
			Type:        SceneImage,
			Description: "Call to action",
			ImagePrompt: "A bold glowing download arrow over a dark gradient background with subtle circuit patterns, minimal and striking",
		},
	}
}
