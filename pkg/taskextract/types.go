package taskextract

// Priority is a task priority level.
type Priority string

const (
	PriorityLow  Priority = "low"
	PriorityMed  Priority = "med"
	PriorityHigh Priority = "high"
)

// Task is a structured task extracted from free-form text. Tasks are
// values: constructed during extraction, immutable afterwards.
type Task struct {
	Title    string   `json:"title"`          // action-verb-led phrase, hashtags stripped
	Due      string   `json:"due,omitempty"`  // ISO calendar date YYYY-MM-DD, empty when no date expression matched
	Tags     []string `json:"tags,omitempty"` // lowercase hashtag bodies, insertion order
	Priority Priority `json:"priority"`       // explicit marker wins over the matched pattern's default
}

// candidate is a raw pattern match prior to title/tag/date derivation.
type candidate struct {
	raw      string
	priority Priority
}
