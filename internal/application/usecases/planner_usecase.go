package usecases

import (
	"context"
	"encoding/json"
	"fmt"

	"promoreel/internal/domain/entities"
	"promoreel/internal/domain/repositories"
	"promoreel/internal/domain/services"
)

// maxPlannerFrames caps how many demo-video stills accompany the plan
// request.
const maxPlannerFrames = 5

// PlanOutcome reports which path produced the plan. Fallback is true when
// the fixed generic plan was substituted; Err then carries the trigger.
type PlanOutcome struct {
	Items    []entities.VisualPlanItem
	Fallback bool
	Err      error
}

type PlannerUseCase struct {
	plannerService repositories.PlannerService
	sink           repositories.ProgressSink
}

func NewPlannerUseCase(plannerService repositories.PlannerService, sink repositories.ProgressSink) *PlannerUseCase {
	return &PlannerUseCase{
		plannerService: plannerService,
		sink:           sink,
	}
}

// Plan asks the model for a scene-by-scene breakdown of the script. It never
// fails: any request or parse problem yields the fixed 4-scene fallback plan
// so downstream stages always receive a usable, non-empty plan.
func (uc *PlannerUseCase) Plan(ctx context.Context, script string, files []entities.ProjectFile, frames []entities.VideoFrame) PlanOutcome {
	uc.sink.Emit(repositories.LevelInfo, "Planning visuals...")

	request := repositories.PlanRequest{
		Script:      script,
		CodeContext: services.CondenseFileContext(files),
		Frames:      services.SampleFrames(frames, maxPlannerFrames),
	}

	raw, err := uc.plannerService.PlanScenes(ctx, request)
	if err != nil {
		uc.sink.Emit(repositories.LevelWarning, fmt.Sprintf("Visual planning failed, using generic plan: %v", err))
		return uc.fallback(err)
	}

	cleaned := services.CleanModelJSON(raw)

	var items []entities.VisualPlanItem
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		uc.sink.Emit(repositories.LevelWarning, fmt.Sprintf(
			"Visual plan was not valid JSON, using generic plan: %v (raw=%q cleaned=%q)", err, raw, cleaned))
		return uc.fallback(fmt.Errorf("parsing visual plan: %w", err))
	}

	valid := items[:0]
	for _, item := range items {
		if item.Description == "" {
			continue
		}
		if item.Type != entities.SceneImage && item.Type != entities.SceneVideo {
			continue
		}
		valid = append(valid, item)
	}

	if len(valid) == 0 {
		uc.sink.Emit(repositories.LevelWarning, "Visual plan had no usable scenes, using generic plan")
		return uc.fallback(fmt.Errorf("visual plan had no usable scenes"))
	}

	uc.sink.Emit(repositories.LevelSuccess, fmt.Sprintf("Visual plan ready with %d scenes", len(valid)))
	return PlanOutcome{Items: valid}
}

func (uc *PlannerUseCase) fallback(cause error) PlanOutcome {
	return PlanOutcome{
		Items:    entities.FallbackPlan(),
		Fallback: true,
		Err:      cause,
	}
}
