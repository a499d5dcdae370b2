package usecase

import (
	"context"
	"fmt"

	"mindgarden-backend/internal/model"
	"mindgarden-backend/internal/task/repository"
	"mindgarden-backend/pkg/gcalendar"
	"mindgarden-backend/pkg/speech"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock task repository for testing
type mockRepo struct {
	created    []repository.CreateTaskOptions
	failCreate bool

	stored   []model.Task
	listed   []repository.ListTasksOptions
	failList bool
}

func (m *mockRepo) CreateTask(ctx context.Context, sc model.Scope, opt repository.CreateTaskOptions) (model.Task, error) {
	if m.failCreate {
		return model.Task{}, fmt.Errorf("supabase unavailable")
	}
	m.created = append(m.created, opt)
	return model.Task{
		ID:       fmt.Sprintf("row-%d", len(m.created)),
		UserID:   sc.UserID,
		Title:    opt.Title,
		Due:      opt.Due,
		Tags:     opt.Tags,
		Priority: opt.Priority,
		Source:   opt.Source,
	}, nil
}

func (m *mockRepo) ListTasks(ctx context.Context, sc model.Scope, opt repository.ListTasksOptions) ([]model.Task, error) {
	if m.failList {
		return nil, fmt.Errorf("supabase unavailable")
	}
	m.listed = append(m.listed, opt)
	return m.stored, nil
}

// Mock calendar client for testing
type mockCalendar struct {
	events     []gcalendar.CreateEventRequest
	failCreate bool
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.failCreate {
		return nil, fmt.Errorf("calendar unavailable")
	}
	m.events = append(m.events, req)
	return &gcalendar.Event{
		ID:       fmt.Sprintf("event-%d", len(m.events)),
		Summary:  req.Summary,
		HtmlLink: fmt.Sprintf("https://calendar.google.com/event-%d", len(m.events)),
	}, nil
}

// Mock speech client for testing
type mockSpeech struct {
	text       string
	confidence float64
	err        error
}

func (m *mockSpeech) Transcribe(ctx context.Context, req speech.TranscribeRequest) (*speech.TranscribeResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &speech.TranscribeResult{Text: m.text, Confidence: m.confidence}, nil
}
