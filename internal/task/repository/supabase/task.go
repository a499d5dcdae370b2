package supabase

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"mindgarden-backend/internal/model"
	"mindgarden-backend/internal/task/repository"
	pkgLog "mindgarden-backend/pkg/log"
)

type implRepository struct {
	client *Client
	table  string // e.g. "tasks"
	l      pkgLog.Logger
}

// New creates a new Supabase task repository.
func New(client *Client, table string, l pkgLog.Logger) repository.TaskRepository {
	if table == "" {
		table = "tasks"
	}
	return &implRepository{
		client: client,
		table:  table,
		l:      l,
	}
}

// taskRow is the PostgREST row shape of the tasks table.
type taskRow struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Due       *string   `json:"due,omitempty"` // date column, null when undated
	Tags      []string  `json:"tags,omitempty"`
	Priority  string    `json:"priority"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

func (r *implRepository) CreateTask(ctx context.Context, sc model.Scope, opt repository.CreateTaskOptions) (model.Task, error) {
	row := taskRow{
		UserID:   sc.UserID,
		Title:    opt.Title,
		Tags:     opt.Tags,
		Priority: opt.Priority,
		Source:   string(opt.Source),
	}
	if opt.Due != "" {
		row.Due = &opt.Due
	}

	var created []taskRow
	if err := r.client.Insert(ctx, r.table, row, &created); err != nil {
		r.l.Errorf(ctx, "supabase repository: failed to create task: %v", err)
		return model.Task{}, err
	}
	if len(created) == 0 {
		return model.Task{}, fmt.Errorf("supabase insert returned no rows")
	}

	return rowToTask(created[0]), nil
}

func (r *implRepository) ListTasks(ctx context.Context, sc model.Scope, opt repository.ListTasksOptions) ([]model.Task, error) {
	limit := opt.Limit
	if limit == 0 {
		limit = 20
	}

	query := fmt.Sprintf("user_id=eq.%s&order=created_at.desc&limit=%d&offset=%d",
		url.QueryEscape(sc.UserID), limit, opt.Offset)
	if opt.Tag != "" {
		query += fmt.Sprintf("&tags=cs.{%s}", url.QueryEscape(opt.Tag))
	}

	var rows []taskRow
	if err := r.client.Select(ctx, r.table, query, &rows); err != nil {
		return nil, err
	}

	tasks := make([]model.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, rowToTask(row))
	}
	return tasks, nil
}

// rowToTask converts a PostgREST row to the internal model.Task.
func rowToTask(row taskRow) model.Task {
	due := ""
	if row.Due != nil {
		due = *row.Due
	}
	return model.Task{
		ID:        row.ID,
		UserID:    row.UserID,
		Title:     row.Title,
		Due:       due,
		Tags:      row.Tags,
		Priority:  row.Priority,
		Source:    model.Source(row.Source),
		CreatedAt: row.CreatedAt,
	}
}
