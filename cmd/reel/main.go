package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"promoreel/internal/application/usecases"
	"promoreel/internal/config"
	"promoreel/internal/domain/entities"
	"promoreel/internal/infrastructure/archive"
	"promoreel/internal/infrastructure/external"
	"promoreel/internal/infrastructure/media"
	"promoreel/internal/infrastructure/progress"
	"promoreel/internal/infrastructure/repositories"
	"promoreel/internal/infrastructure/services"
)

// Runs the full pipeline once against a project zip and writes the script,
// narration and scene assets to the output directory.
func main() {
	zipPath := flag.String("zip", "", "path to the project zip archive")
	platformName := flag.String("platform", "generic", "target platform: tiktok, youtube, instagram, generic")
	voiceName := flag.String("voice", string(entities.DefaultVoice), "narration voice")
	framesDir := flag.String("frames", "", "optional directory of demo video stills named <seconds>.jpg")
	referenceURL := flag.String("ref", "", "optional project URL for the script prompt")
	outDir := flag.String("out", "reel-out", "output directory")
	flag.Parse()

	if *zipPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zipData, err := os.ReadFile(*zipPath)
	if err != nil {
		log.Fatalf("Failed to read archive: %v", err)
	}

	files, err := archive.ExtractTextFiles(zipData)
	if err != nil {
		log.Fatalf("Failed to extract project files: %v", err)
	}
	log.Printf("[boot] Extracted %d text files from %s", len(files), *zipPath)

	request, err := entities.NewReelRequest(files, entities.ParsePlatform(*platformName), entities.ParseVoice(*voiceName))
	if err != nil {
		log.Fatalf("Invalid request: %v", err)
	}
	if *referenceURL != "" {
		request.SetReferenceURL(*referenceURL)
	}
	if *framesDir != "" {
		frames, err := media.LoadFrames(*framesDir)
		if err != nil {
			log.Fatalf("Failed to load frames: %v", err)
		}
		log.Printf("[boot] Loaded %d demo frames", len(frames))
		request.SetFrames(frames)
	}

	ctx := context.Background()

	clientPool := services.NewGenAIClientPool()
	defer clientPool.Close()

	genAIClient, err := clientPool.GetGenAIClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("Failed to create GenAI client: %v", err)
	}

	sink := progress.NewSlogSink(64)
	defer sink.Close()

	reelUseCase := usecases.NewReelUseCase(
		repositories.NewMemoryReelRepository(),
		usecases.NewScriptUseCase(external.NewGeminiScriptService(genAIClient, cfg.ScriptModel), sink),
		usecases.NewVoiceUseCase(external.NewGeminiSpeechService(genAIClient, cfg.SpeechModel), sink),
		usecases.NewPlannerUseCase(external.NewGeminiPlannerService(genAIClient, cfg.PlannerModel), sink),
		usecases.NewAssetUseCase(external.NewFluxSpaceService(cfg.FluxSpaceURL), external.NewGeminiImageService(genAIClient, cfg.ImageModel), sink),
		sink,
	)

	result, err := reelUseCase.Produce(ctx, request)
	if err != nil {
		log.Fatalf("Reel production failed: %v", err)
	}

	if err := writeOutputs(result, *outDir); err != nil {
		log.Fatalf("Failed to write outputs: %v", err)
	}

	log.Printf("Done. Outputs in %s", *outDir)
}

func writeOutputs(result *entities.ReelResult, outDir string) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(outDir, "script.txt"), []byte(result.Script()), 0644); err != nil {
		return err
	}

	if narration := result.Narration(); narration != nil {
		if err := os.WriteFile(filepath.Join(outDir, "narration.wav"), narration.WAV(), 0644); err != nil {
			return err
		}
	}

	plan, err := json.MarshalIndent(result.Plan(), "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, "plan.json"), plan, 0644); err != nil {
		return err
	}

	for i, asset := range result.Assets() {
		if asset == nil {
			log.Printf("Scene %d has no asset, skipping", i+1)
			continue
		}
		if !asset.IsImage() {
			log.Printf("Scene %d is a demo clip %.1fs-%.1fs", i+1, asset.VideoStart(), asset.VideoEnd())
			continue
		}

		name := fmt.Sprintf("scene_%02d.%s", i+1, asset.Image().Format())
		if err := os.WriteFile(filepath.Join(outDir, name), asset.Image().Data(), 0644); err != nil {
			return err
		}
	}

	return nil
}
