package task

import "time"

// ProcessTextInput is the input for text processing.
type ProcessTextInput struct {
	RawText  string // natural language from typing or a prior transcription
	Timezone string // IANA name, e.g. "America/New_York"; empty falls back to the server default
}

// ExtractedTask is a single task produced by the pipeline, with the IDs
// of whatever side records were created for it.
type ExtractedTask struct {
	Title        string
	Due          string // ISO date YYYY-MM-DD, empty when undated
	Tags         []string
	Priority     string
	RecordID     string // Supabase row ID (may be empty when persistence is off or failed)
	CalendarLink string // deep link to the Google Calendar event (may be empty)
}

// ProcessTextOutput is the result of the text processing pipeline.
type ProcessTextOutput struct {
	CleanedText string
	Tasks       []ExtractedTask
	Provider    string // pipeline identifier, e.g. "rules/v1"
	ProcessedAt time.Time
}

// ListTasksInput is the input for listing stored tasks.
type ListTasksInput struct {
	Tag    string // only tasks carrying this tag, empty for all
	Limit  int    // page size; 0 falls back to the default
	Offset int
}

// TranscribeInput is the input for voice note processing.
type TranscribeInput struct {
	AudioURL string // hosted recording to transcribe
	Language string // BCP-47 tag; empty lets the provider detect
	Timezone string // IANA name for due-date resolution
}

// TranscribeOutput is the result of transcribing a voice note and
// running the transcript through the text pipeline.
type TranscribeOutput struct {
	RawText    string  // transcript before cleaning
	Confidence float64 // provider confidence in [0, 1]
	ProcessTextOutput
}
