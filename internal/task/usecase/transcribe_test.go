package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"mindgarden-backend/internal/task"
)

func TestTranscribeEmptyAudioURL(t *testing.T) {
	uc := newTestUseCase(t, nil, nil, &mockSpeech{})

	_, err := uc.Transcribe(context.Background(), testScope, task.TranscribeInput{})
	if !errors.Is(err, task.ErrEmptyAudioURL) {
		t.Fatalf("expected ErrEmptyAudioURL, got %v", err)
	}
}

func TestTranscribeNoProvider(t *testing.T) {
	uc := newTestUseCase(t, nil, nil, nil)

	_, err := uc.Transcribe(context.Background(), testScope, task.TranscribeInput{
		AudioURL: "https://storage.example.com/note.m4a",
	})
	if !errors.Is(err, task.ErrTranscriptionFailed) {
		t.Fatalf("expected ErrTranscriptionFailed, got %v", err)
	}
}

func TestTranscribeProviderError(t *testing.T) {
	stt := &mockSpeech{err: fmt.Errorf("deepgram timeout")}
	uc := newTestUseCase(t, nil, nil, stt)

	_, err := uc.Transcribe(context.Background(), testScope, task.TranscribeInput{
		AudioURL: "https://storage.example.com/note.m4a",
	})
	if !errors.Is(err, task.ErrTranscriptionFailed) {
		t.Fatalf("expected ErrTranscriptionFailed, got %v", err)
	}
}

func TestTranscribeEmptyTranscript(t *testing.T) {
	stt := &mockSpeech{text: "", confidence: 0.1}
	uc := newTestUseCase(t, nil, nil, stt)

	out, err := uc.Transcribe(context.Background(), testScope, task.TranscribeInput{
		AudioURL: "https://storage.example.com/silence.m4a",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.RawText != "" || out.CleanedText != "" || len(out.Tasks) != 0 {
		t.Errorf("expected empty result, got %+v", out)
	}
	if out.Provider != pipelineProvider || out.ProcessedAt.IsZero() {
		t.Errorf("expected provider and timestamp set, got %+v", out)
	}
}

func TestTranscribeEndToEnd(t *testing.T) {
	repo := &mockRepo{}
	stt := &mockSpeech{text: "um I need to call the doctor tomorrow", confidence: 0.97}
	uc := newTestUseCase(t, repo, nil, stt)

	out, err := uc.Transcribe(context.Background(), testScope, task.TranscribeInput{
		AudioURL: "https://storage.example.com/note.m4a",
		Language: "en-US",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.RawText != "um I need to call the doctor tomorrow" {
		t.Errorf("raw text = %q", out.RawText)
	}
	if out.Confidence != 0.97 {
		t.Errorf("confidence = %v", out.Confidence)
	}
	if out.CleanedText != "I need to call the doctor tomorrow." {
		t.Errorf("cleaned text = %q", out.CleanedText)
	}
	if len(out.Tasks) != 1 {
		t.Fatalf("expected 1 task, got %+v", out.Tasks)
	}
	if len(repo.created) != 1 || repo.created[0].Source != "voice" {
		t.Errorf("unexpected repo calls: %+v", repo.created)
	}
}
