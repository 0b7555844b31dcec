package usecases

import (
	"context"
	"fmt"
	"strings"

	"promoreel/internal/domain/entities"
	"promoreel/internal/domain/repositories"
	"promoreel/internal/domain/services"
)

// ScriptPlaceholder replaces an empty model response instead of failing the
// run; the synthesizer will reject it downstream if it reaches that far.
const ScriptPlaceholder = "Script generation returned no content."

type ScriptUseCase struct {
	scriptService repositories.ScriptService
	sink          repositories.ProgressSink
}

func NewScriptUseCase(scriptService repositories.ScriptService, sink repositories.ProgressSink) *ScriptUseCase {
	return &ScriptUseCase{
		scriptService: scriptService,
		sink:          sink,
	}
}

// Generate requests a platform-tailored voiceover script in a single shot.
// Any provider failure is logged and surfaced as a generic script error;
// there is no fallback script because every later stage depends on it.
func (uc *ScriptUseCase) Generate(ctx context.Context, files []entities.ProjectFile, platform entities.Platform, referenceURL string) (string, error) {
	uc.sink.Emit(repositories.LevelInfo, "Generating voiceover script...")

	fileContext := services.BuildFileContext(files)

	script, err := uc.scriptService.GenerateScript(ctx, fileContext, platform, referenceURL)
	if err != nil {
		uc.sink.Emit(repositories.LevelError, fmt.Sprintf("Script generation failed: %v", err))
		return "", fmt.Errorf("script generation failed: %w", err)
	}

	if strings.TrimSpace(script) == "" {
		uc.sink.Emit(repositories.LevelWarning, "Script model returned an empty response")
		return ScriptPlaceholder, nil
	}

	uc.sink.Emit(repositories.LevelSuccess, "Voiceover script ready")
	return script, nil
}
