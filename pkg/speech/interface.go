package speech

import (
	"context"
)

// ISpeech defines the interface for speech-to-text transcription.
// Implementations are safe for concurrent use.
type ISpeech interface {
	Transcribe(ctx context.Context, req TranscribeRequest) (*TranscribeResult, error)
}
