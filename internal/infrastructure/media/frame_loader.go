package media

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"promoreel/internal/domain/entities"
)

// LoadFrames reads pre-sampled demo-video stills from a directory. Each
// frame is a JPEG named after its timestamp in seconds, e.g. "2.5.jpg".
// This stands in for the video frame sampler collaborator.
func LoadFrames(dir string) ([]entities.VideoFrame, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read frames directory: %w", err)
	}

	var frames []entities.VideoFrame
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".jpg" && ext != ".jpeg" {
			continue
		}

		timestamp, err := strconv.ParseFloat(strings.TrimSuffix(name, filepath.Ext(name)), 64)
		if err != nil {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read frame %s: %w", name, err)
		}

		frames = append(frames, entities.VideoFrame{
			Timestamp: timestamp,
			Base64:    base64.StdEncoding.EncodeToString(data),
		})
	}

	sort.Slice(frames, func(i, j int) bool {
		return frames[i].Timestamp < frames[j].Timestamp
	})

	return frames, nil
}
