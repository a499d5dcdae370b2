package usecase

import (
	"context"
	"fmt"
	"time"

	"mindgarden-backend/internal/model"
	"mindgarden-backend/internal/task"
	"mindgarden-backend/pkg/speech"
)

// Transcribe converts a hosted voice note to text and runs the
// transcript through the same pipeline as ProcessText.
func (uc *implUseCase) Transcribe(ctx context.Context, sc model.Scope, input task.TranscribeInput) (task.TranscribeOutput, error) {
	if input.AudioURL == "" {
		return task.TranscribeOutput{}, task.ErrEmptyAudioURL
	}
	if uc.speech == nil {
		return task.TranscribeOutput{}, fmt.Errorf("%w: no speech provider configured", task.ErrTranscriptionFailed)
	}

	uc.l.Infof(ctx, "Transcribe: user=%s audio_url=%s", sc.UserID, input.AudioURL)

	res, err := uc.speech.Transcribe(ctx, speech.TranscribeRequest{
		AudioURL: input.AudioURL,
		Language: input.Language,
	})
	if err != nil {
		return task.TranscribeOutput{}, fmt.Errorf("%w: %v", task.ErrTranscriptionFailed, err)
	}

	// Silent or unintelligible audio is not an error: the client gets an
	// empty result and can prompt the user to retry.
	if res.Text == "" {
		uc.l.Warnf(ctx, "Transcribe: empty transcript for %s", input.AudioURL)
		parser := uc.parserFor(ctx, input.Timezone)
		return task.TranscribeOutput{
			Confidence: res.Confidence,
			ProcessTextOutput: task.ProcessTextOutput{
				Provider:    pipelineProvider,
				ProcessedAt: time.Now().In(parser.Location()),
			},
		}, nil
	}

	out := uc.runPipeline(ctx, sc, res.Text, input.Timezone, model.SourceVoice)
	return task.TranscribeOutput{
		RawText:           res.Text,
		Confidence:        res.Confidence,
		ProcessTextOutput: out,
	}, nil
}
