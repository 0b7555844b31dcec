package repositories

// ProgressLevel は進捗通知の種別です。
type ProgressLevel string

const (
	LevelInfo    ProgressLevel = "info"
	LevelSuccess ProgressLevel = "success"
	LevelWarning ProgressLevel = "warning"
	LevelError   ProgressLevel = "error"
	LevelConnect ProgressLevel = "connect"
)

// ProgressSink receives human-readable pipeline progress. Implementations
// are fire-and-forget: Emit must never block or fail the pipeline.
type ProgressSink interface {
	Emit(level ProgressLevel, message string)
}

// NopSink discards all progress events.
type NopSink struct{}

func (NopSink) Emit(ProgressLevel, string) {}
