package api

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"promoreel/internal/application/usecases"
	"promoreel/internal/domain/entities"
	domainrepos "promoreel/internal/domain/repositories"
	"promoreel/internal/infrastructure/archive"
)

type ReelHandler struct {
	reelUseCase    *usecases.ReelUseCase
	reelRepository domainrepos.ReelRepository
}

func NewReelHandler(reelUseCase *usecases.ReelUseCase, reelRepository domainrepos.ReelRepository) *ReelHandler {
	return &ReelHandler{
		reelUseCase:    reelUseCase,
		reelRepository: reelRepository,
	}
}

// HandleCreateReel runs the whole pipeline synchronously on an uploaded
// project zip. The pipeline processes one project at a time end to end, so
// the response carries the finished result.
func (h *ReelHandler) HandleCreateReel(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "failed to parse form data")
		return
	}

	file, _, err := r.FormFile("project")
	if err != nil {
		writeError(w, http.StatusBadRequest, "project zip file is required")
		return
	}
	defer file.Close()

	zipData, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read project archive")
		return
	}

	files, err := archive.ExtractTextFiles(zipData)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to extract project files: %v", err))
		return
	}

	platform := entities.ParsePlatform(r.FormValue("platform"))
	voice := entities.ParseVoice(r.FormValue("voice"))

	request, err := entities.NewReelRequest(files, platform, voice)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if ref := r.FormValue("reference_url"); ref != "" {
		request.SetReferenceURL(ref)
	}

	result, err := h.reelUseCase.Produce(r.Context(), request)
	if err != nil {
		log.Printf("Error producing reel: %v", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("reel production failed: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, resultResponse(result))
}

func (h *ReelHandler) HandleGetReel(w http.ResponseWriter, r *http.Request) {
	id := entities.ReelRequestID(mux.Vars(r)["id"])

	result, err := h.reelRepository.FindResultByRequestID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resultResponse(result))
}

func (h *ReelHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"status": "ok"})
}

func resultResponse(result *entities.ReelResult) map[string]interface{} {
	scenes := make([]interface{}, 0, len(result.Assets()))
	for _, asset := range result.Assets() {
		if asset == nil {
			// Every generation strategy for this scene failed; the caller
			// decides whether to skip it or substitute a placeholder.
			scenes = append(scenes, nil)
			continue
		}

		scene := map[string]interface{}{
			"kind":        string(asset.Kind()),
			"description": asset.Description(),
		}
		if asset.IsImage() {
			scene["image"] = map[string]interface{}{
				"data":   asset.Image().ToBase64(),
				"type":   asset.Image().MimeType(),
				"prompt": asset.Prompt(),
			}
		} else {
			video := map[string]interface{}{
				"start": asset.VideoStart(),
				"end":   asset.VideoEnd(),
			}
			if asset.VideoURL() != "" {
				video["url"] = asset.VideoURL()
			}
			scene["video"] = video
		}
		scenes = append(scenes, scene)
	}

	response := map[string]interface{}{
		"success":      true,
		"id":           string(result.RequestID()),
		"script":       result.Script(),
		"planFellBack": result.PlanFellBack(),
		"scenes":       scenes,
	}

	if narration := result.Narration(); narration != nil {
		response["narration"] = map[string]interface{}{
			"data":     narration.WAV(),
			"type":     "audio/wav",
			"duration": narration.Duration(),
		}
	}

	return response
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}
