package http

import (
	"mindgarden-backend/internal/model"
	"mindgarden-backend/internal/task"
	"mindgarden-backend/pkg/response"
)

// --- Request DTOs ---

type processReq struct {
	Text     string `json:"text"     binding:"required,min=1,max=10000"`
	Platform string `json:"platform" binding:"omitempty,max=32"`
	Timezone string `json:"timezone" binding:"omitempty,max=64"`
}

func (r processReq) validate() error { return nil }

func (r processReq) toInput() task.ProcessTextInput {
	return task.ProcessTextInput{
		RawText:  r.Text,
		Timezone: r.Timezone,
	}
}

// ---

type transcribeReq struct {
	AudioURL string `json:"audio_url" binding:"required,url"`
	Platform string `json:"platform"  binding:"omitempty,max=32"`
	Language string `json:"language"  binding:"omitempty,max=16"`
	Timezone string `json:"timezone"  binding:"omitempty,max=64"`
}

func (r transcribeReq) validate() error { return nil }

func (r transcribeReq) toInput() task.TranscribeInput {
	return task.TranscribeInput{
		AudioURL: r.AudioURL,
		Language: r.Language,
		Timezone: r.Timezone,
	}
}

// ---

type listTasksReq struct {
	Tag    string `form:"tag"    binding:"omitempty,max=64"`
	Limit  int    `form:"limit"  binding:"omitempty,min=1,max=100"`
	Offset int    `form:"offset" binding:"omitempty,min=0"`
}

func (r listTasksReq) toInput() task.ListTasksInput {
	return task.ListTasksInput{
		Tag:    r.Tag,
		Limit:  r.Limit,
		Offset: r.Offset,
	}
}

// --- Response DTOs ---

type taskResp struct {
	Title        string   `json:"title"`
	Due          string   `json:"due,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Priority     string   `json:"priority"`
	RecordID     string   `json:"record_id,omitempty"`
	CalendarLink string   `json:"calendar_link,omitempty"`
}

func newTaskResp(t task.ExtractedTask) taskResp {
	return taskResp{
		Title:        t.Title,
		Due:          t.Due,
		Tags:         t.Tags,
		Priority:     t.Priority,
		RecordID:     t.RecordID,
		CalendarLink: t.CalendarLink,
	}
}

type processResp struct {
	CleanedText string            `json:"cleaned_text"`
	Tasks       []taskResp        `json:"tasks"`
	Provider    string            `json:"provider"`
	ProcessedAt response.DateTime `json:"processed_at"`
}

func (h *handler) newProcessResp(out task.ProcessTextOutput) processResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return processResp{
		CleanedText: out.CleanedText,
		Tasks:       tasks,
		Provider:    out.Provider,
		ProcessedAt: response.DateTime(out.ProcessedAt),
	}
}

type transcribeResp struct {
	RawText    string  `json:"raw_text"`
	Confidence float64 `json:"confidence"`
	processResp
}

func (h *handler) newTranscribeResp(out task.TranscribeOutput) transcribeResp {
	return transcribeResp{
		RawText:     out.RawText,
		Confidence:  out.Confidence,
		processResp: h.newProcessResp(out.ProcessTextOutput),
	}
}

type storedTaskResp struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Due       string            `json:"due,omitempty"`
	Tags      []string          `json:"tags,omitempty"`
	Priority  string            `json:"priority"`
	Source    string            `json:"source"`
	CreatedAt response.DateTime `json:"created_at"`
}

type listTasksResp struct {
	Tasks []storedTaskResp `json:"tasks"`
}

func (h *handler) newListTasksResp(tasks []model.Task) listTasksResp {
	out := make([]storedTaskResp, len(tasks))
	for i, t := range tasks {
		out[i] = storedTaskResp{
			ID:        t.ID,
			Title:     t.Title,
			Due:       t.Due,
			Tags:      t.Tags,
			Priority:  t.Priority,
			Source:    string(t.Source),
			CreatedAt: response.DateTime(t.CreatedAt),
		}
	}
	return listTasksResp{Tasks: out}
}
