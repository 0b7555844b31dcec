package external

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"promoreel/internal/domain/repositories"
	"promoreel/internal/domain/valueobjects"
)

// FluxSpaceService is the first-tier image provider: a community-hosted
// FLUX.1-schnell space behind the Gradio queue API. A call is two requests:
// POST the inputs to get an event id, then read the event stream until the
// completion event carries the result descriptors.
type FluxSpaceService struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewFluxSpaceService(baseURL string) repositories.CommunityImageService {
	return &FluxSpaceService{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
		// Free-tier host: at most one request per second keeps us polite.
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

type gradioCallResponse struct {
	EventID string `json:"event_id"`
}

func (s *FluxSpaceService) GenerateImage(ctx context.Context, request repositories.ImageRequest) (*valueobjects.ImageData, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	eventID, err := s.submit(ctx, request)
	if err != nil {
		return nil, err
	}

	slog.Info("FluxSpace submit", "eventID", eventID, "width", request.Width, "height", request.Height, "steps", request.Steps)

	imageURL, err := s.awaitResult(ctx, eventID)
	if err != nil {
		return nil, err
	}

	return s.download(ctx, imageURL)
}

// submit enqueues the generation job. Inputs mirror the space signature:
// prompt, seed, randomize flag, width, height, inference steps.
func (s *FluxSpaceService) submit(ctx context.Context, request repositories.ImageRequest) (string, error) {
	payload := map[string]any{
		"data": []any{
			request.Prompt,
			request.Seed,
			true,
			request.Width,
			request.Height,
			request.Steps,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal inference payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/gradio_api/call/infer", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build inference request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach inference endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("inference endpoint returned status %d", resp.StatusCode)
	}

	var call gradioCallResponse
	if err := json.NewDecoder(resp.Body).Decode(&call); err != nil {
		return "", fmt.Errorf("failed to decode call response: %w", err)
	}
	if call.EventID == "" {
		return "", fmt.Errorf("inference endpoint returned no event id")
	}

	return call.EventID, nil
}

// awaitResult reads the server-sent event stream for the job until the
// completion event arrives, then extracts the first result URL.
func (s *FluxSpaceService) awaitResult(ctx context.Context, eventID string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/gradio_api/call/infer/"+eventID, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build stream request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to open result stream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("result stream returned status %d", resp.StatusCode)
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	event := ""
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			switch event {
			case "complete":
				return s.resultURL(data)
			case "error":
				return "", fmt.Errorf("inference failed: %s", data)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading result stream: %w", err)
	}

	return "", fmt.Errorf("result stream ended without a completion event")
}

// resultURL parses the completion payload: an array of result descriptors,
// each either a direct URL string or an object carrying a url (or a
// space-relative path).
func (s *FluxSpaceService) resultURL(data string) (string, error) {
	var results []json.RawMessage
	if err := json.Unmarshal([]byte(data), &results); err != nil {
		return "", fmt.Errorf("failed to decode completion payload: %w", err)
	}

	for _, raw := range results {
		var direct string
		if err := json.Unmarshal(raw, &direct); err == nil {
			if strings.HasPrefix(direct, "http") {
				return direct, nil
			}
			continue
		}

		var descriptor struct {
			URL  string `json:"url"`
			Path string `json:"path"`
		}
		if err := json.Unmarshal(raw, &descriptor); err != nil {
			continue
		}
		if descriptor.URL != "" {
			return descriptor.URL, nil
		}
		if descriptor.Path != "" {
			return s.baseURL + "/gradio_api/file=" + descriptor.Path, nil
		}
	}

	return "", fmt.Errorf("completion payload had no image result")
}

func (s *FluxSpaceService) download(ctx context.Context, url string) (*valueobjects.ImageData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build download request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image body: %w", err)
	}

	image, err := valueobjects.NewImageData(data)
	if err != nil {
		return nil, fmt.Errorf("downloaded payload is not an image: %w", err)
	}

	slog.Info("FluxSpace download done", "bytes", len(data), "format", image.Format())
	return image, nil
}
