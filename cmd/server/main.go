package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"promoreel/internal/application/usecases"
	"promoreel/internal/config"
	"promoreel/internal/infrastructure/api"
	"promoreel/internal/infrastructure/external"
	"promoreel/internal/infrastructure/progress"
	"promoreel/internal/infrastructure/repositories"
	"promoreel/internal/infrastructure/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("[boot] Script model: %s", cfg.ScriptModel)
	log.Printf("[boot] Speech model: %s", cfg.SpeechModel)
	log.Printf("[boot] Image fallback model: %s", cfg.ImageModel)
	log.Printf("[boot] FLUX space: %s", cfg.FluxSpaceURL)

	ctx := context.Background()

	// インフラ層を初期化
	clientPool := services.NewGenAIClientPool()
	defer clientPool.Close()

	genAIClient, err := clientPool.GetGenAIClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("Failed to create GenAI client: %v", err)
	}

	sink := progress.NewSlogSink(64)
	defer sink.Close()

	scriptService := external.NewGeminiScriptService(genAIClient, cfg.ScriptModel)
	speechService := external.NewGeminiSpeechService(genAIClient, cfg.SpeechModel)
	plannerService := external.NewGeminiPlannerService(genAIClient, cfg.PlannerModel)
	fallbackImageService := external.NewGeminiImageService(genAIClient, cfg.ImageModel)
	communityImageService := external.NewFluxSpaceService(cfg.FluxSpaceURL)

	reelRepository := repositories.NewMemoryReelRepository()

	// アプリケーション層を初期化
	scriptUseCase := usecases.NewScriptUseCase(scriptService, sink)
	voiceUseCase := usecases.NewVoiceUseCase(speechService, sink)
	plannerUseCase := usecases.NewPlannerUseCase(plannerService, sink)
	assetUseCase := usecases.NewAssetUseCase(communityImageService, fallbackImageService, sink)
	reelUseCase := usecases.NewReelUseCase(reelRepository, scriptUseCase, voiceUseCase, plannerUseCase, assetUseCase, sink)

	// API層を初期化
	handler := api.NewReelHandler(reelUseCase, reelRepository)

	// ルートを設定
	r := mux.NewRouter()
	r.HandleFunc("/reels", handler.HandleCreateReel).Methods("POST")
	r.HandleFunc("/reels/{id}", handler.HandleGetReel).Methods("GET")
	r.HandleFunc("/healthz", handler.HandleHealth).Methods("GET")

	log.Printf("Starting server on port %s", cfg.Port)

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
