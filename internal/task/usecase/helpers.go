package usecase

import (
	"context"
	"time"

	"mindgarden-backend/internal/model"
	"mindgarden-backend/internal/task"
	"mindgarden-backend/internal/task/repository"
	"mindgarden-backend/pkg/datemath"
	"mindgarden-backend/pkg/gcalendar"
	"mindgarden-backend/pkg/taskextract"
)

// eventStartHour is the local hour dated tasks are scheduled at.
const eventStartHour = 9

// runPipeline is the shared clean -> extract -> store -> schedule flow.
func (uc *implUseCase) runPipeline(ctx context.Context, sc model.Scope, rawText, timezone string, source model.Source) task.ProcessTextOutput {
	parser := uc.parserFor(ctx, timezone)
	now := time.Now().In(parser.Location())

	cleaned := uc.cleaner.Clean(rawText)
	extracted := uc.extractor.Extract(cleaned, parser, now)

	uc.l.Infof(ctx, "pipeline: user=%s source=%s extracted=%d", sc.UserID, source, len(extracted))

	return task.ProcessTextOutput{
		CleanedText: cleaned,
		Tasks:       uc.storeAndSchedule(ctx, sc, extracted, parser, source),
		Provider:    pipelineProvider,
		ProcessedAt: now,
	}
}

// parserFor returns a date parser for the given timezone, caching one
// parser per zone. Unknown or empty zones fall back to the default.
func (uc *implUseCase) parserFor(ctx context.Context, timezone string) *datemath.Parser {
	if timezone == "" {
		return uc.defaultParser
	}
	if p, ok := uc.parsers.Get(timezone); ok {
		return p
	}

	p, err := datemath.NewParser(timezone)
	if err != nil {
		uc.l.Warnf(ctx, "unknown timezone %q, falling back to default: %v", timezone, err)
		return uc.defaultParser
	}
	uc.parsers.Add(timezone, p)
	return p
}

// storeAndSchedule persists each extracted task and schedules a calendar
// event for dated ones. Failures are per-task and non-fatal: the caller
// always gets the full extraction result back.
func (uc *implUseCase) storeAndSchedule(ctx context.Context, sc model.Scope, extracted []taskextract.Task, parser *datemath.Parser, source model.Source) []task.ExtractedTask {
	out := make([]task.ExtractedTask, 0, len(extracted))

	for _, t := range extracted {
		item := task.ExtractedTask{
			Title:    t.Title,
			Due:      t.Due,
			Tags:     t.Tags,
			Priority: string(t.Priority),
		}

		if uc.repo != nil {
			record, err := uc.repo.CreateTask(ctx, sc, repository.CreateTaskOptions{
				Title:    t.Title,
				Due:      t.Due,
				Tags:     t.Tags,
				Priority: string(t.Priority),
				Source:   source,
			})
			if err != nil {
				uc.l.Errorf(ctx, "storeAndSchedule: failed to persist task %q: %v", t.Title, err)
			} else {
				item.RecordID = record.ID
			}
		}

		item.CalendarLink = uc.tryScheduleEvent(ctx, item, parser)

		out = append(out, item)
	}

	return out
}

// tryScheduleEvent attempts to create a Google Calendar event for a
// dated task. Returns the event HTML link, or empty string on failure.
func (uc *implUseCase) tryScheduleEvent(ctx context.Context, item task.ExtractedTask, parser *datemath.Parser) string {
	if uc.calendar == nil || item.Due == "" {
		return ""
	}

	due, err := time.ParseInLocation(datemath.DateFormatISO, item.Due, parser.Location())
	if err != nil {
		uc.l.Warnf(ctx, "tryScheduleEvent: bad due date %q for %q: %v", item.Due, item.Title, err)
		return ""
	}

	start := due.Add(eventStartHour * time.Hour)
	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID: uc.calendarID,
		Summary:    item.Title,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Timezone:   parser.Location().String(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "tryScheduleEvent: calendar event creation failed for %q (non-fatal): %v", item.Title, err)
		return ""
	}

	return event.HtmlLink
}
