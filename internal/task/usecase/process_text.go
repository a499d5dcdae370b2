package usecase

import (
	"context"
	"strings"

	"mindgarden-backend/internal/model"
	"mindgarden-backend/internal/task"
)

// ProcessText cleans raw text, extracts tasks, persists them and
// schedules calendar events for dated ones.
func (uc *implUseCase) ProcessText(ctx context.Context, sc model.Scope, input task.ProcessTextInput) (task.ProcessTextOutput, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return task.ProcessTextOutput{}, task.ErrEmptyInput
	}

	uc.l.Infof(ctx, "ProcessText: user=%s platform=%s input_length=%d", sc.UserID, sc.Platform, len(input.RawText))

	return uc.runPipeline(ctx, sc, input.RawText, input.Timezone, model.SourceText), nil
}
