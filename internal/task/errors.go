package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput          = errors.New("input text is empty")
	ErrEmptyAudioURL       = errors.New("audio URL is empty")
	ErrTranscriptionFailed = errors.New("failed to transcribe audio")
	ErrStorageDisabled     = errors.New("task storage is not configured")
)
