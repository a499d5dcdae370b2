package usecase

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"mindgarden-backend/internal/task/repository"
	"mindgarden-backend/pkg/datemath"
	"mindgarden-backend/pkg/gcalendar"
	pkgLog "mindgarden-backend/pkg/log"
	"mindgarden-backend/pkg/speech"
	"mindgarden-backend/pkg/taskextract"
	"mindgarden-backend/pkg/textclean"
)

// pipelineProvider identifies the extraction pipeline in responses.
const pipelineProvider = "rules/v1"

// parserCacheSize bounds the per-timezone date parser cache.
const parserCacheSize = 64

// CalendarClient is the slice of the Google Calendar client the task
// use case needs. Satisfied by *gcalendar.Client.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type implUseCase struct {
	l             pkgLog.Logger
	cleaner       *textclean.Cleaner
	extractor     *taskextract.Extractor
	repo          repository.TaskRepository // nil disables persistence
	calendar      CalendarClient            // nil disables event scheduling
	speech        speech.ISpeech            // nil disables voice notes
	calendarID    string
	defaultParser *datemath.Parser
	parsers       *lru.Cache[string, *datemath.Parser]
}

// New creates a new task UseCase instance. repo, calendar and speech
// may be nil; the corresponding step degrades to a no-op.
func New(
	l pkgLog.Logger,
	cleaner *textclean.Cleaner,
	extractor *taskextract.Extractor,
	repo repository.TaskRepository,
	calendar CalendarClient,
	stt speech.ISpeech,
	calendarID string,
	defaultParser *datemath.Parser,
) *implUseCase {
	parsers, err := lru.New[string, *datemath.Parser](parserCacheSize)
	if err != nil {
		// Only fails for a non-positive size.
		panic(err)
	}
	return &implUseCase{
		l:             l,
		cleaner:       cleaner,
		extractor:     extractor,
		repo:          repo,
		calendar:      calendar,
		speech:        stt,
		calendarID:    calendarID,
		defaultParser: defaultParser,
		parsers:       parsers,
	}
}
