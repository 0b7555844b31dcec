package entities

// VideoFrame is a timestamped still sampled from an uploaded demo video by
// an external collaborator. Base64 carries JPEG data.
type VideoFrame struct {
	Timestamp float64
	Base64    string
}
