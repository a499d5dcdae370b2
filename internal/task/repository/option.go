package repository

import "mindgarden-backend/internal/model"

// CreateTaskOptions holds the parameters for persisting a task.
type CreateTaskOptions struct {
	Title    string
	Due      string // ISO date YYYY-MM-DD, empty when undated
	Tags     []string
	Priority string
	Source   model.Source
}

// ListTasksOptions holds the parameters for listing a user's tasks.
type ListTasksOptions struct {
	Tag    string // filter by a specific tag
	Limit  int    // max number of results (default 20)
	Offset int    // pagination offset
}
