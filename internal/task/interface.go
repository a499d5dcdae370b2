package task

import (
	"context"

	"mindgarden-backend/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// ProcessText cleans raw text, extracts tasks, persists them and
	// optionally schedules calendar events for dated ones.
	ProcessText(ctx context.Context, sc model.Scope, input ProcessTextInput) (ProcessTextOutput, error)

	// Transcribe converts a hosted voice note to text and runs the
	// transcript through the same pipeline as ProcessText.
	Transcribe(ctx context.Context, sc model.Scope, input TranscribeInput) (TranscribeOutput, error)

	// ListTasks returns the caller's stored tasks, newest first.
	ListTasks(ctx context.Context, sc model.Scope, input ListTasksInput) ([]model.Task, error)
}
