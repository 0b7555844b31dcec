package services

import "promoreel/internal/domain/entities"

// SampleFrames selects at most max representative frames by even stride
// across the full sequence: step = ceil(len/max), indices 0, step, 2*step...
func SampleFrames(frames []entities.VideoFrame, max int) []entities.VideoFrame {
	if max <= 0 || len(frames) == 0 {
		return nil
	}
	if len(frames) <= max {
		return frames
	}

	step := (len(frames) + max - 1) / max

	sampled := make([]entities.VideoFrame, 0, max)
	for i := 0; i < len(frames) && len(sampled) < max; i += step {
		sampled = append(sampled, frames[i])
	}
	return sampled
}
