package usecases

import (
	"context"
	"fmt"

	"promoreel/internal/domain/entities"
	"promoreel/internal/domain/repositories"
)

// ReelUseCase drives one full pipeline run: script, narration, visual plan,
// then one asset per scene. Stages run strictly in sequence - every model
// provider here is rate-limited, so the pipeline never has two requests in
// flight.
type ReelUseCase struct {
	reelRepository repositories.ReelRepository
	script         *ScriptUseCase
	voice          *VoiceUseCase
	planner        *PlannerUseCase
	asset          *AssetUseCase
	sink           repositories.ProgressSink
}

func NewReelUseCase(
	reelRepository repositories.ReelRepository,
	script *ScriptUseCase,
	voice *VoiceUseCase,
	planner *PlannerUseCase,
	asset *AssetUseCase,
	sink repositories.ProgressSink,
) *ReelUseCase {
	return &ReelUseCase{
		reelRepository: reelRepository,
		script:         script,
		voice:          voice,
		planner:        planner,
		asset:          asset,
		sink:           sink,
	}
}

// Produce runs the pipeline end to end. Script and voice failures abort the
// run; planning failures are absorbed by the fallback plan; a failed scene
// leaves a nil asset slot and the run continues.
func (uc *ReelUseCase) Produce(ctx context.Context, request *entities.ReelRequest) (*entities.ReelResult, error) {
	if err := uc.reelRepository.Save(ctx, request); err != nil {
		return nil, fmt.Errorf("saving reel request: %w", err)
	}

	script, err := uc.script.Generate(ctx, request.Files(), request.Platform(), request.ReferenceURL())
	if err != nil {
		return nil, err
	}

	narration, err := uc.voice.Synthesize(ctx, script, request.Voice())
	if err != nil {
		return nil, err
	}

	outcome := uc.planner.Plan(ctx, script, request.Files(), request.Frames())

	assets := make([]*entities.VisualAsset, 0, len(outcome.Items))
	for i, item := range outcome.Items {
		uc.sink.Emit(repositories.LevelInfo, fmt.Sprintf("Generating asset for scene %d/%d...", i+1, len(outcome.Items)))

		asset, err := uc.asset.Generate(ctx, item, request.Platform())
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}

	result := entities.NewReelResult(request.ID(), script, narration, outcome.Items, outcome.Fallback, assets)

	if err := uc.reelRepository.SaveResult(ctx, result); err != nil {
		return nil, fmt.Errorf("saving reel result: %w", err)
	}

	uc.sink.Emit(repositories.LevelSuccess, "Reel pipeline complete")
	return result, nil
}
