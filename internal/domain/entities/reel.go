package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"promoreel/internal/domain/valueobjects"
)

type ReelRequestID string

// ReelRequest はプロモ動画生成1回分のリクエストです。
// Files and Frames are immutable snapshots for the duration of the run.
type ReelRequest struct {
	id           ReelRequestID
	files        []ProjectFile
	platform     Platform
	voice        VoiceOption
	frames       []VideoFrame
	referenceURL string
	createdAt    time.Time
}

func NewReelRequest(files []ProjectFile, platform Platform, voice VoiceOption) (*ReelRequest, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("at least one project file is required")
	}

	return &ReelRequest{
		id:        ReelRequestID("reel_" + uuid.NewString()),
		files:     files,
		platform:  platform,
		voice:     voice,
		createdAt: time.Now(),
	}, nil
}

func (r *ReelRequest) ID() ReelRequestID    { return r.id }
func (r *ReelRequest) Files() []ProjectFile { return r.files }
func (r *ReelRequest) Platform() Platform   { return r.platform }
func (r *ReelRequest) Voice() VoiceOption   { return r.voice }
func (r *ReelRequest) Frames() []VideoFrame { return r.frames }
func (r *ReelRequest) ReferenceURL() string { return r.referenceURL }
func (r *ReelRequest) CreatedAt() time.Time { return r.createdAt }

func (r *ReelRequest) SetFrames(frames []VideoFrame) {
	r.frames = frames
}

func (r *ReelRequest) SetReferenceURL(url string) {
	r.referenceURL = url
}

// ReelResult is the terminal output of one pipeline run. Assets holds one
// entry per plan item; an entry is nil when every generation strategy for
// that scene failed.
type ReelResult struct {
	requestID    ReelRequestID
	script       string
	narration    *valueobjects.AudioData
	plan         []VisualPlanItem
	planFellBack bool
	assets       []*VisualAsset
	completedAt  time.Time
}

func NewReelResult(
	requestID ReelRequestID,
	script string,
	narration *valueobjects.AudioData,
	plan []VisualPlanItem,
	planFellBack bool,
	assets []*VisualAsset,
) *ReelResult {
	return &ReelResult{
		requestID:    requestID,
		script:       script,
		narration:    narration,
		plan:         plan,
		planFellBack: planFellBack,
		assets:       assets,
		completedAt:  time.Now(),
	}
}

func (r *ReelResult) RequestID() ReelRequestID           { return r.requestID }
func (r *ReelResult) Script() string                     { return r.script }
func (r *ReelResult) Narration() *valueobjects.AudioData { return r.narration }
func (r *ReelResult) Plan() []VisualPlanItem             { return r.plan }
func (r *ReelResult) PlanFellBack() bool                 { return r.planFellBack }
func (r *ReelResult) Assets() []*VisualAsset             { return r.assets }
func (r *ReelResult) CompletedAt() time.Time             { return r.completedAt }
