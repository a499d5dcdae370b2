package supabase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mindgarden-backend/internal/model"
	"mindgarden-backend/internal/task/repository"
	"mindgarden-backend/internal/task/repository/supabase"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func TestSupabaseRepository(t *testing.T) {
	mux := http.NewServeMux()

	mux.HandleFunc("/rest/v1/tasks", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("apikey") != "service-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		switch r.Method {
		case http.MethodPost:
			var row struct {
				UserID   string   `json:"user_id"`
				Title    string   `json:"title"`
				Due      *string  `json:"due"`
				Tags     []string `json:"tags"`
				Priority string   `json:"priority"`
				Source   string   `json:"source"`
			}
			json.NewDecoder(r.Body).Decode(&row)
			if strings.Contains(row.Title, "error") {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode([]map[string]any{{
				"id":         "row-1",
				"user_id":    row.UserID,
				"title":      row.Title,
				"due":        row.Due,
				"tags":       row.Tags,
				"priority":   row.Priority,
				"source":     row.Source,
				"created_at": time.Now().UTC().Format(time.RFC3339),
			}})

		case http.MethodGet:
			if strings.Contains(r.URL.RawQuery, "user_id=eq.fail") {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode([]map[string]any{{
				"id":       "row-1",
				"user_id":  "user-1",
				"title":    "call the doctor",
				"due":      "2024-01-16",
				"priority": "med",
				"source":   "text",
			}})
		}
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := supabase.NewClient(ts.URL, "service-key")
	repo := supabase.New(client, "tasks", &mockLogger{})
	sc := model.Scope{UserID: "user-1", Platform: "ios"}

	t.Run("Create Task Flow", func(t *testing.T) {
		created, err := repo.CreateTask(context.Background(), sc, repository.CreateTaskOptions{
			Title:    "buy groceries",
			Due:      "2024-01-15",
			Tags:     []string{"shopping"},
			Priority: "low",
			Source:   model.SourceText,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "row-1" || created.UserID != "user-1" {
			t.Errorf("unexpected record: %+v", created)
		}
		if created.Due != "2024-01-15" {
			t.Errorf("due = %q, want 2024-01-15", created.Due)
		}
	})

	t.Run("Create Task Undated", func(t *testing.T) {
		created, err := repo.CreateTask(context.Background(), sc, repository.CreateTaskOptions{
			Title:    "water the plants",
			Priority: "med",
			Source:   model.SourceVoice,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Due != "" {
			t.Errorf("expected empty due, got %q", created.Due)
		}
	})

	t.Run("Create Task Error Flow", func(t *testing.T) {
		_, err := repo.CreateTask(context.Background(), sc, repository.CreateTaskOptions{
			Title: "error task",
		})
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("List Tasks Flow", func(t *testing.T) {
		tasks, err := repo.ListTasks(context.Background(), sc, repository.ListTasksOptions{Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tasks) != 1 || tasks[0].Title != "call the doctor" {
			t.Fatalf("unexpected tasks: %+v", tasks)
		}
	})

	t.Run("List Tasks Error Flow", func(t *testing.T) {
		_, err := repo.ListTasks(context.Background(), model.Scope{UserID: "fail"}, repository.ListTasksOptions{})
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Unauthorized Flow", func(t *testing.T) {
		badRepo := supabase.New(supabase.NewClient(ts.URL, "wrong-key"), "tasks", &mockLogger{})
		_, err := badRepo.CreateTask(context.Background(), sc, repository.CreateTaskOptions{Title: "anything"})
		if err == nil {
			t.Fatalf("expected 401 error")
		}
	})
}
