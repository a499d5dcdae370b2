package model

import "time"

// Source identifies how a task entered the system.
type Source string

const (
	SourceText  Source = "text"
	SourceVoice Source = "voice"
)

// Task represents a task record persisted in Supabase.
type Task struct {
	ID        string    // row UUID
	UserID    string    // owning user
	Title     string    // action phrase, hashtags stripped
	Due       string    // ISO date YYYY-MM-DD, empty when undated
	Tags      []string  // lowercase hashtag bodies
	Priority  string    // "low" | "med" | "high"
	Source    Source    // entry channel
	CreatedAt time.Time // row creation time
}

// Scope carries the caller identity resolved by the delivery layer.
type Scope struct {
	UserID   string
	Platform string // "ios" | "android" | "web"
}
